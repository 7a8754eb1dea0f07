package interfaces

import (
	"context"

	"cotfact/internal/domain/entities"
)

//go:generate mockgen -source=document_repository_interface.go -destination=mocks/document_repository_mock.go -package=mock_interfaces

// IDocumentRepository abstracts DynamoDB persistence for Document.
//
// The service must be able to:
//   - persist a new quote or invoice
//   - list documents by type (document-number allocation scans these)
//   - resolve the invoice produced from a given quote (duplicate-conversion guard)
//   - replace a document wholesale after a merge-patch

type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	GetBySourceQuoteID(ctx context.Context, quoteID string) (entities.Document, error)
	List(ctx context.Context) ([]entities.Document, error)
	ListByType(ctx context.Context, t entities.DocumentType) ([]entities.Document, error)
	Update(ctx context.Context, d entities.Document) (entities.Document, error)
	Delete(ctx context.Context, id string) error
}
