package request

import (
	"regexp"
	"time"

	"cotfact/pkg"
)

// FieldError and FieldErrors come from pkg so handlers can embed them in the
// HTTP error body without an import cycle.
type (
	FieldError  = pkg.FieldError
	FieldErrors = pkg.FieldErrors
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(v string) bool {
	return emailPattern.MatchString(v)
}

// dateLayouts are the accepted document date formats, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

func parseableDate(v string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}
