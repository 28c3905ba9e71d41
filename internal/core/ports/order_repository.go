package ports

import (
	"context"

	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never physically deleted; mutation happens only through Update.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no record matches.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
