package entities

import "time"

// DocumentStatus represents the lifecycle state of a quote or invoice.
//
// Legal transitions:
//   - draft -> pending -> approved -> {paid, overdue, cancelled}
//   - draft/pending -> rejected
//
// An approved quote can additionally be converted into a new invoice document;
// conversion never mutates the source quote's status.

type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusPending   DocumentStatus = "pending"
	StatusApproved  DocumentStatus = "approved"
	StatusPaid      DocumentStatus = "paid"
	StatusOverdue   DocumentStatus = "overdue"
	StatusCancelled DocumentStatus = "cancelled"
	StatusRejected  DocumentStatus = "rejected"
)

// DocumentType distinguishes pre-sale quotes from billing invoices.
//
// Numbering is scoped by type: quotes get a "Q-" prefix, invoices "F-"
// (factura).

type DocumentType string

const (
	TypeQuote   DocumentType = "quote"
	TypeInvoice DocumentType = "invoice"
)

// NumberPrefix returns the document-number prefix for the type.
func (t DocumentType) NumberPrefix() string {
	if t == TypeInvoice {
		return "F"
	}
	return "Q"
}

func (s DocumentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusPaid, StatusOverdue, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

func (t DocumentType) Valid() bool {
	return t == TypeQuote || t == TypeInvoice
}

// statusTransitions is the legal transition table. A status absent from the
// map is terminal.
var statusTransitions = map[DocumentStatus][]DocumentStatus{
	StatusDraft:    {StatusPending, StatusApproved, StatusRejected},
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusPaid, StatusOverdue, StatusCancelled},
}

// CanTransition reports whether moving from s to next is legal.
func (s DocumentStatus) CanTransition(next DocumentStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LineItem is a single billable line on a document.
//
// Total is caller-supplied: the service checks sign but does not recompute it
// from Quantity*UnitPrice.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Document is a quote or invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Customer is an embedded snapshot, not a live reference: later edits in the
// customer directory never change an issued document.
//
// SourceQuoteID is set only on invoices produced by quote conversion and is
// the uniqueness anchor that blocks converting the same quote twice.
type Document struct {
	ID                 string          `json:"id"`
	DocumentNumber     string          `json:"documentNumber"`
	Date               string          `json:"date"`
	Customer           Customer        `json:"customer"`
	Items              []LineItem      `json:"items"`
	Subtotal           float64         `json:"subtotal"`
	Tax                float64         `json:"tax"`
	Total              float64         `json:"total"`
	Status             DocumentStatus  `json:"status"`
	Type               DocumentType    `json:"type"`
	ValidDays          int             `json:"validDays"`
	TermsAndConditions []string        `json:"termsAndConditions"`
	PaymentMethods     []PaymentMethod `json:"paymentMethods"`
	SourceQuoteID      string          `json:"sourceQuoteId,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// IsQuote reports whether the document is a quote.
func (d Document) IsQuote() bool {
	return d.Type == TypeQuote
}

// CloneItems returns a deep copy of the document's line items.
func (d Document) CloneItems() []LineItem {
	if d.Items == nil {
		return nil
	}
	out := make([]LineItem, len(d.Items))
	copy(out, d.Items)
	return out
}

// ClonePaymentMethods returns a deep copy of the document's payment methods.
func (d Document) ClonePaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(d.PaymentMethods))
	copy(out, d.PaymentMethods)
	return out
}

// CloneTerms returns a deep copy of the document's terms and conditions.
func (d Document) CloneTerms() []string {
	out := make([]string, len(d.TermsAndConditions))
	copy(out, d.TermsAndConditions)
	return out
}
