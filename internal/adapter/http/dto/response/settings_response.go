package response

import (
	"time"

	"cotfact/internal/domain/entities"
)

type CompanyInfoResponse struct {
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

func FromCompanyInfo(info entities.CompanyInfo) CompanyInfoResponse {
	return CompanyInfoResponse{
		OwnerID:   info.OwnerID,
		Name:      info.Name,
		RUC:       info.RUC,
		DV:        info.DV,
		Address:   info.Address,
		Phone:     info.Phone,
		Email:     info.Email,
		LogoURL:   info.LogoURL,
		UpdatedAt: info.UpdatedAt,
	}
}

type TemplatePreferencesResponse struct {
	OwnerID       string    `json:"ownerId"`
	PrimaryColor  string    `json:"primaryColor"`
	AccentColor   string    `json:"accentColor"`
	Font          string    `json:"font"`
	ShowLogo      bool      `json:"showLogo"`
	DateFormat    string    `json:"dateFormat"`
	InvoiceFooter string    `json:"invoiceFooter"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromTemplatePreferences(prefs entities.TemplatePreferences) TemplatePreferencesResponse {
	return TemplatePreferencesResponse{
		OwnerID:       prefs.OwnerID,
		PrimaryColor:  prefs.PrimaryColor,
		AccentColor:   prefs.AccentColor,
		Font:          prefs.Font,
		ShowLogo:      prefs.ShowLogo,
		DateFormat:    prefs.DateFormat,
		InvoiceFooter: prefs.InvoiceFooter,
		UpdatedAt:     prefs.UpdatedAt,
	}
}
