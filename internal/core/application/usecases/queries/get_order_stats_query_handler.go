package queries

import (
	"context"

	"expertise/internal/core/domain/model/order"
	"expertise/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler aggregates order counts per status.
// The fold is seeded with every defined status so the dashboard always
// renders a complete row set even when a status has no orders.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for the stats query.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the aggregation. Only operators may run it.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	if !query.Viewer().IsOperator() {
		return GetOrderStatsQueryResponse{}, errs.NewOperationForbiddenError("view order stats")
	}

	counts := make(map[order.Status]int, len(order.AllStatuses()))

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int

		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}

		counts[order.Status(status)] = count
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	response := GetOrderStatsQueryResponse{
		Counts: make([]StatusCount, 0, len(order.AllStatuses())),
	}

	for _, status := range order.AllStatuses() {
		response.Counts = append(response.Counts, StatusCount{
			Status: status,
			Count:  counts[status],
		})
		response.Total += counts[status]
	}

	return response, nil
}
