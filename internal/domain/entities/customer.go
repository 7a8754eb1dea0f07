package entities

import "time"

// CustomerType distinguishes individual customers from companies.

type CustomerType string

const (
	CustomerTypePerson   CustomerType = "person"
	CustomerTypeBusiness CustomerType = "business"
)

func (t CustomerType) Valid() bool {
	return t == CustomerTypePerson || t == CustomerTypeBusiness
}

// Customer is a directory entry. When a document is issued the customer is
// embedded into it as a snapshot, so directory edits do not rewrite history.
//
// Email is a pointer: nil means "no email" (both an explicit null and an
// omitted field map to it).
type Customer struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Company   string            `json:"company"`
	Location  string            `json:"location"`
	Phone     string            `json:"phone"`
	Email     *string           `json:"email,omitempty"`
	Type      CustomerType      `json:"type"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// EmailValue returns the email or "" when unset.
func (c Customer) EmailValue() string {
	if c.Email == nil {
		return ""
	}
	return *c.Email
}
