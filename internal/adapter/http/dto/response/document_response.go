package response

import (
	"time"

	"cotfact/internal/domain/entities"
)

type DocumentResponse struct {
	ID                 string                   `json:"id"`
	DocumentNumber     string                   `json:"documentNumber"`
	Date               string                   `json:"date"`
	Customer           entities.Customer        `json:"customer"`
	Items              []entities.LineItem      `json:"items"`
	Subtotal           float64                  `json:"subtotal"`
	Tax                float64                  `json:"tax"`
	Total              float64                  `json:"total"`
	Status             string                   `json:"status"`
	Type               string                   `json:"type"`
	ValidDays          int                      `json:"validDays"`
	TermsAndConditions []string                 `json:"termsAndConditions"`
	PaymentMethods     []entities.PaymentMethod `json:"paymentMethods"`
	SourceQuoteID      string                   `json:"sourceQuoteId,omitempty"`
	CreatedAt          time.Time                `json:"createdAt"`
	UpdatedAt          time.Time                `json:"updatedAt"`
}

func FromDocument(d entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:                 d.ID,
		DocumentNumber:     d.DocumentNumber,
		Date:               d.Date,
		Customer:           d.Customer,
		Items:              d.Items,
		Subtotal:           d.Subtotal,
		Tax:                d.Tax,
		Total:              d.Total,
		Status:             string(d.Status),
		Type:               string(d.Type),
		ValidDays:          d.ValidDays,
		TermsAndConditions: d.TermsAndConditions,
		PaymentMethods:     d.PaymentMethods,
		SourceQuoteID:      d.SourceQuoteID,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func FromDocuments(docs []entities.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocument(d))
	}
	return out
}
