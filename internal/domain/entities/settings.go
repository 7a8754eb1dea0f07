package entities

import "time"

// CompanyInfo is the issuing company's letterhead data, one row per owner.
//
// Storage model (DynamoDB):
//   - PK: owner_id
//
// RUC and DV are kept separate in the application model but stored as a
// single "tax_id" column (RUC-DV); the repository owns that translation.
type CompanyInfo struct {
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	RUC       string    `json:"ruc"`
	DV        string    `json:"dv"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	LogoURL   string    `json:"logoUrl"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TemplatePreferences holds per-owner document rendering preferences.
type TemplatePreferences struct {
	OwnerID       string    `json:"ownerId"`
	PrimaryColor  string    `json:"primaryColor"`
	AccentColor   string    `json:"accentColor"`
	Font          string    `json:"font"`
	ShowLogo      bool      `json:"showLogo"`
	DateFormat    string    `json:"dateFormat"`
	InvoiceFooter string    `json:"invoiceFooter"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
