package request

import (
	"strings"

	"cotfact/internal/domain/entities"
	"cotfact/internal/usecase"
)

// CreateCustomerRequest is the directory creation payload. Everything except
// the name is optional and defaults to the empty string.
type CreateCustomerRequest struct {
	Name     string            `json:"name"`
	Company  string            `json:"company"`
	Location string            `json:"location"`
	Phone    string            `json:"phone"`
	Email    *string           `json:"email"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata"`
}

func (r CreateCustomerRequest) payload() CustomerPayload {
	return CustomerPayload{
		Name:     r.Name,
		Company:  r.Company,
		Location: r.Location,
		Phone:    r.Phone,
		Email:    r.Email,
		Type:     r.Type,
		Metadata: r.Metadata,
	}
}

func (r CreateCustomerRequest) Validate() FieldErrors {
	return r.payload().Validate("")
}

func (r CreateCustomerRequest) ToEntity() entities.Customer {
	return r.payload().ToEntity()
}

// UpdateCustomerRequest is the directory merge-patch payload.
type UpdateCustomerRequest struct {
	Name     *string           `json:"name"`
	Company  *string           `json:"company"`
	Location *string           `json:"location"`
	Phone    *string           `json:"phone"`
	Email    *string           `json:"email"`
	Type     *string           `json:"type"`
	Metadata map[string]string `json:"metadata"`
}

func (r UpdateCustomerRequest) isEmpty() bool {
	return r.Name == nil && r.Company == nil && r.Location == nil &&
		r.Phone == nil && r.Email == nil && r.Type == nil && r.Metadata == nil
}

func (r UpdateCustomerRequest) Validate() FieldErrors {
	var errs FieldErrors

	if r.isEmpty() {
		errs.Add("", "must provide at least one field")
		return errs
	}

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs.Add("name", "name is required")
	}
	if r.Email != nil && *r.Email != "" && !validEmail(*r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if r.Type != nil && !entities.CustomerType(*r.Type).Valid() {
		errs.Add("type", "type must be person or business")
	}

	return errs
}

func (r UpdateCustomerRequest) ToPatch() usecase.CustomerPatch {
	patch := usecase.CustomerPatch{
		Name:     r.Name,
		Company:  r.Company,
		Location: r.Location,
		Phone:    r.Phone,
		Email:    r.Email,
		Metadata: r.Metadata,
	}
	if r.Type != nil {
		t := entities.CustomerType(*r.Type)
		patch.Type = &t
	}
	return patch
}
