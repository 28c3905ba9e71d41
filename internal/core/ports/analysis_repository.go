package ports

import (
	"context"

	"expertise/internal/core/domain/model/analysis"
	"expertise/internal/core/domain/model/kernel"
)

// AnalysisRepository defines the persistence contract for analysis aggregates.
// At most one analysis exists per order.
type AnalysisRepository interface {
	// Add persists a newly authored analysis.
	Add(ctx context.Context, aggregate *analysis.Analysis) error

	// Update persists a content revision of an existing analysis.
	Update(ctx context.Context, aggregate *analysis.Analysis) error

	// GetByOrderID retrieves the analysis of an order.
	// Returns errs.ObjectNotFoundError when the order has no analysis yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*analysis.Analysis, error)
}
