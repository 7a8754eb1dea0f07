package request

import (
	"fmt"
	"strings"

	"cotfact/internal/domain/entities"
	"cotfact/internal/usecase"
)

// CustomerPayload is the customer snapshot embedded in document payloads and
// the body of the customer directory endpoints.
//
// Email is a pointer so that an explicit null and an omitted field are both
// accepted as "no email".
type CustomerPayload struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Company  string            `json:"company"`
	Location string            `json:"location"`
	Phone    string            `json:"phone"`
	Email    *string           `json:"email"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata"`
}

// Validate checks the customer fields. prefix scopes the reported field paths
// ("customer" when embedded, "" at the top level).
func (p CustomerPayload) Validate(prefix string) FieldErrors {
	path := func(f string) string {
		if prefix == "" {
			return f
		}
		return prefix + "." + f
	}

	var errs FieldErrors
	if strings.TrimSpace(p.Name) == "" {
		errs.Add(path("name"), "name is required")
	}
	if p.Email != nil && *p.Email != "" && !validEmail(*p.Email) {
		errs.Add(path("email"), "email must be a valid email address")
	}
	if p.Type != "" && !entities.CustomerType(p.Type).Valid() {
		errs.Add(path("type"), "type must be person or business")
	}
	return errs
}

// ToEntity maps the payload to the domain customer. A blank type falls back
// to business.
func (p CustomerPayload) ToEntity() entities.Customer {
	t := entities.CustomerType(p.Type)
	if p.Type == "" {
		t = entities.CustomerTypeBusiness
	}
	email := p.Email
	if email != nil && *email == "" {
		email = nil
	}
	return entities.Customer{
		ID:       p.ID,
		Name:     strings.TrimSpace(p.Name),
		Company:  p.Company,
		Location: p.Location,
		Phone:    p.Phone,
		Email:    email,
		Type:     t,
		Metadata: p.Metadata,
	}
}

type LineItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// validate checks a single line item. Total is sign-checked only; it is the
// caller's job to keep it equal to quantity*unitPrice.
func (r LineItemRequest) validate(path string) FieldErrors {
	var errs FieldErrors
	if strings.TrimSpace(r.Description) == "" {
		errs.Add(path+".description", "description is required")
	}
	if r.Quantity <= 0 {
		errs.Add(path+".quantity", "quantity must be greater than zero")
	}
	if r.UnitPrice < 0 {
		errs.Add(path+".unitPrice", "unitPrice cannot be negative")
	}
	if r.Total < 0 {
		errs.Add(path+".total", "total cannot be negative")
	}
	return errs
}

func (r LineItemRequest) toEntity() entities.LineItem {
	return entities.LineItem{
		ID:          r.ID,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Total:       r.Total,
	}
}

type PaymentMethodRequest struct {
	ID            string `json:"id"`
	Bank          string `json:"bank"`
	AccountHolder string `json:"accountHolder"`
	AccountNumber string `json:"accountNumber"`
	AccountType   string `json:"accountType"`
	IsYappy       bool   `json:"isYappy"`
	YappyPhone    string `json:"yappyPhone"`
}

func (r PaymentMethodRequest) toEntity() entities.PaymentMethod {
	return entities.PaymentMethod{
		ID:            r.ID,
		Bank:          r.Bank,
		AccountHolder: r.AccountHolder,
		AccountNumber: r.AccountNumber,
		AccountType:   r.AccountType,
		IsYappy:       r.IsYappy,
		YappyPhone:    r.YappyPhone,
	}
}

// CreateDocumentRequest is the full document creation payload. Numeric fields
// are pointers so "missing" and "zero" stay distinguishable.
type CreateDocumentRequest struct {
	Date               string                 `json:"date"`
	Customer           *CustomerPayload       `json:"customer"`
	Items              []LineItemRequest      `json:"items"`
	Subtotal           *float64               `json:"subtotal"`
	Tax                *float64               `json:"tax"`
	Total              *float64               `json:"total"`
	Status             string                 `json:"status"`
	Type               string                 `json:"type"`
	ValidDays          *int                   `json:"validDays"`
	TermsAndConditions []string               `json:"termsAndConditions"`
	PaymentMethods     []PaymentMethodRequest `json:"paymentMethods"`
}

// Validate checks every base-document field and returns the failures in field
// order. It never panics on any input shape.
func (r CreateDocumentRequest) Validate() FieldErrors {
	var errs FieldErrors

	if strings.TrimSpace(r.Date) == "" {
		errs.Add("date", "date is required")
	} else if !parseableDate(r.Date) {
		errs.Add("date", "date must be a parseable date")
	}

	if r.Customer == nil {
		errs.Add("customer", "customer is required")
	} else {
		errs = append(errs, r.Customer.Validate("customer")...)
	}

	if len(r.Items) == 0 {
		errs.Add("items", "at least one item is required")
	}
	for i, item := range r.Items {
		errs = append(errs, item.validate(fmt.Sprintf("items[%d]", i))...)
	}

	errs = append(errs, validateAmount("subtotal", r.Subtotal, true)...)
	errs = append(errs, validateAmount("tax", r.Tax, true)...)
	errs = append(errs, validateAmount("total", r.Total, true)...)

	if r.Status == "" {
		errs.Add("status", "status is required")
	} else if !entities.DocumentStatus(r.Status).Valid() {
		errs.Add("status", "status is not a valid document status")
	}

	if r.Type == "" {
		errs.Add("type", "type is required")
	} else if !entities.DocumentType(r.Type).Valid() {
		errs.Add("type", "type must be quote or invoice")
	}

	if r.ValidDays == nil {
		errs.Add("validDays", "validDays is required")
	} else if *r.ValidDays <= 0 {
		errs.Add("validDays", "validDays must be a positive integer")
	}

	return errs
}

// ToEntity maps a validated request to the domain document, defaulting the
// optional sequences to empty slices.
func (r CreateDocumentRequest) ToEntity() entities.Document {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, item.toEntity())
	}
	methods := make([]entities.PaymentMethod, 0, len(r.PaymentMethods))
	for _, pm := range r.PaymentMethods {
		methods = append(methods, pm.toEntity())
	}
	terms := r.TermsAndConditions
	if terms == nil {
		terms = []string{}
	}

	return entities.Document{
		Date:               r.Date,
		Customer:           r.Customer.ToEntity(),
		Items:              items,
		Subtotal:           *r.Subtotal,
		Tax:                *r.Tax,
		Total:              *r.Total,
		Status:             entities.DocumentStatus(r.Status),
		Type:               entities.DocumentType(r.Type),
		ValidDays:          *r.ValidDays,
		TermsAndConditions: terms,
		PaymentMethods:     methods,
	}
}

// UpdateDocumentRequest is the merge-patch payload: every field is optional,
// but at least one must be present.
type UpdateDocumentRequest struct {
	Date               *string                `json:"date"`
	Customer           *CustomerPayload       `json:"customer"`
	Items              []LineItemRequest      `json:"items"`
	Subtotal           *float64               `json:"subtotal"`
	Tax                *float64               `json:"tax"`
	Total              *float64               `json:"total"`
	Status             *string                `json:"status"`
	ValidDays          *int                   `json:"validDays"`
	TermsAndConditions []string               `json:"termsAndConditions"`
	PaymentMethods     []PaymentMethodRequest `json:"paymentMethods"`
}

func (r UpdateDocumentRequest) isEmpty() bool {
	return r.Date == nil && r.Customer == nil && r.Items == nil &&
		r.Subtotal == nil && r.Tax == nil && r.Total == nil &&
		r.Status == nil && r.ValidDays == nil &&
		r.TermsAndConditions == nil && r.PaymentMethods == nil
}

// Validate applies the same field rules as creation to whichever fields are
// present, and rejects an entirely empty patch.
func (r UpdateDocumentRequest) Validate() FieldErrors {
	var errs FieldErrors

	if r.isEmpty() {
		errs.Add("", "must provide at least one field")
		return errs
	}

	if r.Date != nil && !parseableDate(*r.Date) {
		errs.Add("date", "date must be a parseable date")
	}
	if r.Customer != nil {
		errs = append(errs, r.Customer.Validate("customer")...)
	}
	if r.Items != nil && len(r.Items) == 0 {
		errs.Add("items", "at least one item is required")
	}
	for i, item := range r.Items {
		errs = append(errs, item.validate(fmt.Sprintf("items[%d]", i))...)
	}
	errs = append(errs, validateAmount("subtotal", r.Subtotal, false)...)
	errs = append(errs, validateAmount("tax", r.Tax, false)...)
	errs = append(errs, validateAmount("total", r.Total, false)...)
	if r.Status != nil && !entities.DocumentStatus(*r.Status).Valid() {
		errs.Add("status", "status is not a valid document status")
	}
	if r.ValidDays != nil && *r.ValidDays <= 0 {
		errs.Add("validDays", "validDays must be a positive integer")
	}

	return errs
}

// ToPatch maps a validated request to the usecase merge-patch.
func (r UpdateDocumentRequest) ToPatch() usecase.DocumentPatch {
	patch := usecase.DocumentPatch{
		Date:               r.Date,
		Subtotal:           r.Subtotal,
		Tax:                r.Tax,
		Total:              r.Total,
		ValidDays:          r.ValidDays,
		TermsAndConditions: r.TermsAndConditions,
	}
	if r.Customer != nil {
		c := r.Customer.ToEntity()
		patch.Customer = &c
	}
	if r.Items != nil {
		items := make([]entities.LineItem, 0, len(r.Items))
		for _, item := range r.Items {
			items = append(items, item.toEntity())
		}
		patch.Items = items
	}
	if r.Status != nil {
		s := entities.DocumentStatus(*r.Status)
		patch.Status = &s
	}
	if r.PaymentMethods != nil {
		methods := make([]entities.PaymentMethod, 0, len(r.PaymentMethods))
		for _, pm := range r.PaymentMethods {
			methods = append(methods, pm.toEntity())
		}
		patch.PaymentMethods = methods
	}
	return patch
}

// validateAmount sign-checks a monetary field; when required is set a nil
// value is reported as missing.
func validateAmount(field string, v *float64, required bool) FieldErrors {
	var errs FieldErrors
	switch {
	case v == nil:
		if required {
			errs.Add(field, field+" is required")
		}
	case *v < 0:
		errs.Add(field, field+" cannot be negative")
	}
	return errs
}
