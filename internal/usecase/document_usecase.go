package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cotfact/internal/domain/entities"
	"cotfact/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDocumentNotFound      = errors.New("document not found")
	ErrInvalidDocumentID     = errors.New("invalid document id")
	ErrNotAQuote             = errors.New("document is not a quote")
	ErrQuoteNotApprovable    = errors.New("quote is not in an approvable status")
	ErrQuoteNotApproved      = errors.New("quote is not approved")
	ErrQuoteAlreadyConverted = errors.New("quote already converted to an invoice")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrInvalidDocument       = errors.New("invalid document")
	ErrEmptyPatch            = errors.New("must provide at least one field")
)

// DocumentPatch is the merge-patch applied by Update. Nil fields are left
// untouched on the stored document.
type DocumentPatch struct {
	Date               *string
	Customer           *entities.Customer
	Items              []entities.LineItem
	Subtotal           *float64
	Tax                *float64
	Total              *float64
	Status             *entities.DocumentStatus
	ValidDays          *int
	TermsAndConditions []string
	PaymentMethods     []entities.PaymentMethod
}

// IsEmpty reports whether the patch carries no fields at all.
func (p DocumentPatch) IsEmpty() bool {
	return p.Date == nil && p.Customer == nil && p.Items == nil &&
		p.Subtotal == nil && p.Tax == nil && p.Total == nil &&
		p.Status == nil && p.ValidDays == nil &&
		p.TermsAndConditions == nil && p.PaymentMethods == nil
}

// IDocumentUseCase exposes the document lifecycle operations.
//
// Lifecycle rules:
//   - NextDocumentNumber re-derives the sequence from the stored maximum on
//     every call (idempotent until the next document is persisted).
//   - ApproveQuote only moves draft/pending quotes to approved.
//   - ConvertToInvoice only converts approved quotes, once; the source quote
//     itself is never mutated by conversion.

type IDocumentUseCase interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	List(ctx context.Context) ([]entities.Document, error)
	Update(ctx context.Context, id string, patch DocumentPatch) (entities.Document, error)
	Delete(ctx context.Context, id string) error
	NextDocumentNumber(ctx context.Context, t entities.DocumentType) (string, error)
	ApproveQuote(ctx context.Context, id string) (entities.Document, error)
	ConvertToInvoice(ctx context.Context, id string) (entities.Document, error)
}

type DocumentUseCase struct {
	repo interfaces.IDocumentRepository
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.IDocumentRepository) *DocumentUseCase {
	return &DocumentUseCase{repo: repo}
}

func (u *DocumentUseCase) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	if !d.Status.Valid() || !d.Type.Valid() || len(d.Items) == 0 {
		return entities.Document{}, ErrInvalidDocument
	}

	number, err := u.NextDocumentNumber(ctx, d.Type)
	if err != nil {
		return entities.Document{}, err
	}

	now := time.Now().UTC()
	d.ID = uuid.NewString()
	d.DocumentNumber = number
	d.CreatedAt = now
	d.UpdatedAt = now
	if d.TermsAndConditions == nil {
		d.TermsAndConditions = []string{}
	}
	if d.PaymentMethods == nil {
		d.PaymentMethods = []entities.PaymentMethod{}
	}
	return u.repo.Create(ctx, d)
}

func (u *DocumentUseCase) GetByID(ctx context.Context, id string) (entities.Document, error) {
	return u.getByID(ctx, id)
}

func (u *DocumentUseCase) List(ctx context.Context) ([]entities.Document, error) {
	return u.repo.List(ctx)
}

// Update merges the patch over the stored document. A status change must be a
// legal transition from the document's current status.
func (u *DocumentUseCase) Update(ctx context.Context, id string, patch DocumentPatch) (entities.Document, error) {
	if patch.IsEmpty() {
		return entities.Document{}, ErrEmptyPatch
	}

	d, err := u.getByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}

	if patch.Status != nil && !d.Status.CanTransition(*patch.Status) {
		return entities.Document{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, d.Status, *patch.Status)
	}

	if patch.Date != nil {
		d.Date = *patch.Date
	}
	if patch.Customer != nil {
		d.Customer = *patch.Customer
	}
	if patch.Items != nil {
		d.Items = patch.Items
	}
	if patch.Subtotal != nil {
		d.Subtotal = *patch.Subtotal
	}
	if patch.Tax != nil {
		d.Tax = *patch.Tax
	}
	if patch.Total != nil {
		d.Total = *patch.Total
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	if patch.ValidDays != nil {
		d.ValidDays = *patch.ValidDays
	}
	if patch.TermsAndConditions != nil {
		d.TermsAndConditions = patch.TermsAndConditions
	}
	if patch.PaymentMethods != nil {
		d.PaymentMethods = patch.PaymentMethods
	}
	d.UpdatedAt = time.Now().UTC()

	return u.update(ctx, d)
}

func (u *DocumentUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.getByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

// NextDocumentNumber allocates the next number for the type by scanning the
// stored documents for the current maximum suffix. It does not persist a
// counter: calling it twice without storing a document returns the same value.
func (u *DocumentUseCase) NextDocumentNumber(ctx context.Context, t entities.DocumentType) (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("unknown document type %q", t)
	}

	docs, err := u.repo.ListByType(ctx, t)
	if err != nil {
		return "", err
	}

	prefix := t.NumberPrefix()
	max := 0
	for _, d := range docs {
		n, ok := parseDocumentNumber(d.DocumentNumber, prefix)
		if ok && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, max+1), nil
}

func (u *DocumentUseCase) ApproveQuote(ctx context.Context, id string) (entities.Document, error) {
	d, err := u.getByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if !d.IsQuote() {
		return entities.Document{}, ErrNotAQuote
	}
	if d.Status != entities.StatusDraft && d.Status != entities.StatusPending {
		return entities.Document{}, fmt.Errorf("%w: status %s", ErrQuoteNotApprovable, d.Status)
	}

	d.Status = entities.StatusApproved
	d.UpdatedAt = time.Now().UTC()
	return u.update(ctx, d)
}

// ConvertToInvoice creates a new invoice from an approved quote. The quote is
// left untouched; the invoice records the quote's id in SourceQuoteID, and a
// second conversion of the same quote is rejected.
func (u *DocumentUseCase) ConvertToInvoice(ctx context.Context, id string) (entities.Document, error) {
	q, err := u.getByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if !q.IsQuote() {
		return entities.Document{}, ErrNotAQuote
	}
	if q.Status != entities.StatusApproved {
		return entities.Document{}, fmt.Errorf("%w: status %s", ErrQuoteNotApproved, q.Status)
	}

	existing, err := u.repo.GetBySourceQuoteID(ctx, q.ID)
	if err != nil {
		return entities.Document{}, err
	}
	if existing.ID != "" {
		return entities.Document{}, ErrQuoteAlreadyConverted
	}

	number, err := u.NextDocumentNumber(ctx, entities.TypeInvoice)
	if err != nil {
		return entities.Document{}, err
	}

	now := time.Now().UTC()
	invoice := entities.Document{
		ID:                 uuid.NewString(),
		DocumentNumber:     number,
		Date:               q.Date,
		Customer:           q.Customer,
		Items:              q.CloneItems(),
		Subtotal:           q.Subtotal,
		Tax:                q.Tax,
		Total:              q.Total,
		Status:             entities.StatusPending,
		Type:               entities.TypeInvoice,
		ValidDays:          q.ValidDays,
		TermsAndConditions: q.CloneTerms(),
		PaymentMethods:     q.ClonePaymentMethods(),
		SourceQuoteID:      q.ID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return u.repo.Create(ctx, invoice)
}

// update writes the document back. The repository signals a conditional-write
// miss (the row vanished between the read and the put) with a zero value.
func (u *DocumentUseCase) update(ctx context.Context, d entities.Document) (entities.Document, error) {
	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		return entities.Document{}, err
	}
	if updated.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return updated, nil
}

func (u *DocumentUseCase) getByID(ctx context.Context, id string) (entities.Document, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.Document{}, ErrInvalidDocumentID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if d.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return d, nil
}

// parseDocumentNumber extracts the numeric suffix of numbers shaped like
// "Q-0001". Numbers with a different prefix or a non-numeric suffix are
// ignored by the allocator.
func parseDocumentNumber(number, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(number, prefix+"-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
