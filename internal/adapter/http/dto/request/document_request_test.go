package request

import (
	"encoding/json"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func validCreate() CreateDocumentRequest {
	return CreateDocumentRequest{
		Date: "2026-08-15",
		Customer: &CustomerPayload{
			Name:    "Acme Corp",
			Company: "Acme Corp",
			Type:    "business",
		},
		Items: []LineItemRequest{
			{ID: "1", Description: "Consulting", Quantity: 2, UnitPrice: 150, Total: 300},
		},
		Subtotal:  floatPtr(300),
		Tax:       floatPtr(21),
		Total:     floatPtr(321),
		Status:    "draft",
		Type:      "quote",
		ValidDays: intPtr(15),
	}
}

func hasFieldError(errs FieldErrors, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestCreateDocumentRequest_Validate(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		if errs := validCreate().Validate(); len(errs) != 0 {
			t.Fatalf("expected no errors, got %+v", errs)
		}
	})

	t.Run("defaults optional sequences to empty slices", func(t *testing.T) {
		d := validCreate().ToEntity()
		if d.TermsAndConditions == nil || len(d.TermsAndConditions) != 0 {
			t.Fatalf("expected empty terms, got %#v", d.TermsAndConditions)
		}
		if d.PaymentMethods == nil || len(d.PaymentMethods) != 0 {
			t.Fatalf("expected empty payment methods, got %#v", d.PaymentMethods)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		r := validCreate()
		r.Items = nil
		if errs := r.Validate(); !hasFieldError(errs, "items") {
			t.Fatalf("expected items error, got %+v", errs)
		}
	})

	t.Run("negative numerics", func(t *testing.T) {
		r := validCreate()
		r.Subtotal = floatPtr(-1)
		r.Items[0].UnitPrice = -10
		errs := r.Validate()
		if !hasFieldError(errs, "subtotal") {
			t.Fatalf("expected subtotal error, got %+v", errs)
		}
		if !hasFieldError(errs, "items[0].unitPrice") {
			t.Fatalf("expected item unitPrice error, got %+v", errs)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		r := validCreate()
		r.Items[0].Quantity = 0
		if errs := r.Validate(); !hasFieldError(errs, "items[0].quantity") {
			t.Fatalf("expected quantity error, got %+v", errs)
		}
	})

	t.Run("unparseable date", func(t *testing.T) {
		r := validCreate()
		r.Date = "last tuesday"
		if errs := r.Validate(); !hasFieldError(errs, "date") {
			t.Fatalf("expected date error, got %+v", errs)
		}
	})

	t.Run("non-positive validDays", func(t *testing.T) {
		r := validCreate()
		r.ValidDays = intPtr(0)
		if errs := r.Validate(); !hasFieldError(errs, "validDays") {
			t.Fatalf("expected validDays error, got %+v", errs)
		}
	})

	t.Run("missing validDays", func(t *testing.T) {
		r := validCreate()
		r.ValidDays = nil
		if errs := r.Validate(); !hasFieldError(errs, "validDays") {
			t.Fatalf("expected validDays error, got %+v", errs)
		}
	})

	t.Run("status and type outside their enums", func(t *testing.T) {
		r := validCreate()
		r.Status = "archived"
		r.Type = "receipt"
		errs := r.Validate()
		if !hasFieldError(errs, "status") || !hasFieldError(errs, "type") {
			t.Fatalf("expected status and type errors, got %+v", errs)
		}
	})

	t.Run("missing customer", func(t *testing.T) {
		r := validCreate()
		r.Customer = nil
		if errs := r.Validate(); !hasFieldError(errs, "customer") {
			t.Fatalf("expected customer error, got %+v", errs)
		}
	})

	t.Run("embedded customer without a name", func(t *testing.T) {
		r := validCreate()
		r.Customer.Name = " "
		if errs := r.Validate(); !hasFieldError(errs, "customer.name") {
			t.Fatalf("expected customer.name error, got %+v", errs)
		}
	})

	t.Run("errors keep field order", func(t *testing.T) {
		r := validCreate()
		r.Date = ""
		r.Status = "archived"
		errs := r.Validate()
		if len(errs) != 2 || errs[0].Field != "date" || errs[1].Field != "status" {
			t.Fatalf("unexpected error order: %+v", errs)
		}
	})
}

func TestCreateDocumentRequest_EmailRepresentations(t *testing.T) {
	t.Run("null and omitted email both pass", func(t *testing.T) {
		for _, body := range []string{
			`{"name":"Acme Corp","email":null}`,
			`{"name":"Acme Corp"}`,
		} {
			var p CustomerPayload
			if err := json.Unmarshal([]byte(body), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if errs := p.Validate(""); len(errs) != 0 {
				t.Fatalf("payload %s: expected no errors, got %+v", body, errs)
			}
			if p.ToEntity().Email != nil {
				t.Fatalf("payload %s: expected nil email", body)
			}
		}
	})

	t.Run("malformed email fails", func(t *testing.T) {
		p := CustomerPayload{Name: "Acme", Email: strPtr("not-an-email")}
		if errs := p.Validate(""); !hasFieldError(errs, "email") {
			t.Fatalf("expected email error, got %+v", errs)
		}
	})
}

func TestUpdateDocumentRequest_Validate(t *testing.T) {
	t.Run("empty patch is rejected", func(t *testing.T) {
		errs := UpdateDocumentRequest{}.Validate()
		if len(errs) != 1 || errs[0].Message != "must provide at least one field" {
			t.Fatalf("expected empty-patch error, got %+v", errs)
		}
	})

	t.Run("single valid field passes", func(t *testing.T) {
		r := UpdateDocumentRequest{Total: floatPtr(100)}
		if errs := r.Validate(); len(errs) != 0 {
			t.Fatalf("expected no errors, got %+v", errs)
		}
	})

	t.Run("present fields follow creation rules", func(t *testing.T) {
		r := UpdateDocumentRequest{
			Date:  strPtr("not a date"),
			Tax:   floatPtr(-5),
			Items: []LineItemRequest{{Description: "", Quantity: 0, UnitPrice: 1, Total: 0}},
		}
		errs := r.Validate()
		for _, field := range []string{"date", "tax", "items[0].description", "items[0].quantity"} {
			if !hasFieldError(errs, field) {
				t.Fatalf("expected %s error, got %+v", field, errs)
			}
		}
	})

	t.Run("explicitly empty items are rejected", func(t *testing.T) {
		r := UpdateDocumentRequest{Items: []LineItemRequest{}}
		if errs := r.Validate(); !hasFieldError(errs, "items") {
			t.Fatalf("expected items error, got %+v", errs)
		}
	})

	t.Run("patch carries the status as a transition request", func(t *testing.T) {
		status := "approved"
		patch := UpdateDocumentRequest{Status: &status}.ToPatch()
		if patch.Status == nil || string(*patch.Status) != "approved" {
			t.Fatalf("unexpected patch: %+v", patch)
		}
	})
}
