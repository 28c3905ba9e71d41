package queries

import (
	"errors"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order in the system, newest first.
// This is the operator work queue; clients never hold this capability.
type GetAllOrdersQuery struct {
	viewer actor.Actor

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for the full order listing.
func NewGetAllOrdersQuery(viewer actor.Actor) (GetAllOrdersQuery, error) {
	if err := viewer.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}

	return GetAllOrdersQuery{
		viewer: viewer,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Viewer returns the requesting actor.
func (q GetAllOrdersQuery) Viewer() actor.Actor {
	return q.viewer
}
