package queries

import (
	"context"
	"time"

	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/domain/model/order"
	"expertise/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClientOrdersQueryHandler retrieves a client's own orders from the
// database. Other clients' orders are filtered at the SQL level, so a client
// cannot observe even the existence of foreign orders.
type GetClientOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClientOrdersQueryHandler creates a handler for client order listings.
// Requires a GORM database connection for query execution.
func NewGetClientOrdersQueryHandler(db *gorm.DB) GetClientOrdersQueryHandler {
	return GetClientOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the client's orders, newest first.
func (h GetClientOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClientOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Client().IsClient() {
		return nil, errs.NewOperationForbiddenError("list client orders")
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
		WHERE client_id = ?
		ORDER BY created_at DESC
	`, query.Client().ID().Bytes()).Rows()
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderSummary(rows rowScanner) (OrderSummary, error) {
	var summary OrderSummary
	var id, clientID uuid.UUID
	var status int
	var createdAt, updatedAt time.Time

	if err := rows.Scan(&id, &clientID, &summary.Title, &status, &createdAt, &updatedAt); err != nil {
		return OrderSummary{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummary{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return OrderSummary{}, err
	}

	summary.ID = orderID
	summary.ClientID = ownerID
	summary.Status = order.Status(status)
	summary.CreatedAt = createdAt
	summary.UpdatedAt = updatedAt

	if err = summary.Status.Validate(); err != nil {
		return OrderSummary{}, err
	}

	return summary, nil
}
