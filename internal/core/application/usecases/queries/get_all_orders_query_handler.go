package queries

import (
	"context"

	"expertise/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders for the operator work queue.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the full order listing.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve every order, newest first.
// Only operators may run it.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Viewer().IsOperator() {
		return nil, errs.NewOperationForbiddenError("list all orders")
	}

	orders := make([]OrderSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			title,
			status,
			created_at,
			updated_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
