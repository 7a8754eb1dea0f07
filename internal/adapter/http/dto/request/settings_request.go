package request

import (
	"strings"

	"cotfact/internal/domain/entities"
)

// CompanyInfoRequest is the letterhead settings payload.
type CompanyInfoRequest struct {
	Name    string `json:"name"`
	RUC     string `json:"ruc"`
	DV      string `json:"dv"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	LogoURL string `json:"logoUrl"`
}

func (r CompanyInfoRequest) Validate() FieldErrors {
	var errs FieldErrors
	if strings.TrimSpace(r.Name) == "" {
		errs.Add("name", "name is required")
	}
	if r.Email != "" && !validEmail(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	return errs
}

func (r CompanyInfoRequest) ToEntity(ownerID string) entities.CompanyInfo {
	return entities.CompanyInfo{
		OwnerID: ownerID,
		Name:    strings.TrimSpace(r.Name),
		RUC:     r.RUC,
		DV:      r.DV,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		LogoURL: r.LogoURL,
	}
}

// TemplatePreferencesRequest is the document rendering settings payload.
type TemplatePreferencesRequest struct {
	PrimaryColor  string `json:"primaryColor"`
	AccentColor   string `json:"accentColor"`
	Font          string `json:"font"`
	ShowLogo      bool   `json:"showLogo"`
	DateFormat    string `json:"dateFormat"`
	InvoiceFooter string `json:"invoiceFooter"`
}

func (r TemplatePreferencesRequest) ToEntity(ownerID string) entities.TemplatePreferences {
	return entities.TemplatePreferences{
		OwnerID:       ownerID,
		PrimaryColor:  r.PrimaryColor,
		AccentColor:   r.AccentColor,
		Font:          r.Font,
		ShowLogo:      r.ShowLogo,
		DateFormat:    r.DateFormat,
		InvoiceFooter: r.InvoiceFooter,
	}
}
