package queries

import (
	"errors"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/order"
	"expertise/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves the per-status order counts for the operator
// dashboard. Every status appears in the result, zero or not.
type GetOrderStatsQuery struct {
	viewer actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for the per-status order counts.
func NewGetOrderStatsQuery(viewer actor.Actor) (GetOrderStatsQuery, error) {
	if err := viewer.Validate(); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return GetOrderStatsQuery{
		viewer: viewer,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatsQueryIsNotConstructed if validation fails.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// Viewer returns the requesting actor.
func (q GetOrderStatsQuery) Viewer() actor.Actor {
	return q.viewer
}

// StatusCount is the number of orders currently in one status.
type StatusCount struct {
	Status order.Status
	Count  int
}

// GetOrderStatsQueryResponse lists the counts in lifecycle order along with
// the overall total.
type GetOrderStatsQueryResponse struct {
	Counts []StatusCount
	Total  int
}
