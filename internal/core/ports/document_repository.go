package ports

import (
	"context"

	"expertise/internal/core/domain/model/document"
	"expertise/internal/core/domain/model/kernel"
)

// DocumentRepository defines the persistence contract for document metadata.
// Documents are append-only; there is no update or delete.
type DocumentRepository interface {
	// Add persists a new document record.
	Add(ctx context.Context, entity *document.Document) error

	// Get retrieves a document record by its unique identifier.
	// Returns errs.ObjectNotFoundError when no record matches.
	Get(ctx context.Context, id kernel.UUID) (*document.Document, error)

	// GetAllByOrderID retrieves all document records of an order,
	// oldest first.
	GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*document.Document, error)
}
