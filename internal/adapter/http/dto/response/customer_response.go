package response

import (
	"time"

	"cotfact/internal/domain/entities"
)

type CustomerResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Company   string            `json:"company"`
	Location  string            `json:"location"`
	Phone     string            `json:"phone"`
	Email     *string           `json:"email,omitempty"`
	Type      string            `json:"type"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Location:  c.Location,
		Phone:     c.Phone,
		Email:     c.Email,
		Type:      string(c.Type),
		Metadata:  c.Metadata,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}
