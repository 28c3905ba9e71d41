package ports

import (
	"context"

	"expertise/internal/core/domain/model/comment"
	"expertise/internal/core/domain/model/kernel"
)

// CommentRepository defines the persistence contract for order comments.
// Comments are append-only and read back in ascending creation order.
type CommentRepository interface {
	// Add persists a new comment.
	Add(ctx context.Context, entity *comment.Comment) error

	// GetAllByOrderID retrieves all comments of an order in ascending
	// creation-time order.
	GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*comment.Comment, error)
}
