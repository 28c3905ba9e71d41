// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers bypass the domain repositories and read through direct SQL for
// optimal read performance; authorization still runs before any row leaves
// the handler.
package queries

import (
	"errors"
	"time"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/domain/model/order"
	"expertise/internal/pkg/guard"
)

var ErrGetClientOrdersQueryIsNotConstructed = errors.New(
	"GetClientOrdersQuery must be created via NewGetClientOrdersQuery constructor",
)

// GetClientOrdersQuery retrieves the orders owned by the requesting client,
// newest first. This is the client's personal dashboard listing.
type GetClientOrdersQuery struct {
	client actor.Actor

	guard guard.ConstructorGuard
}

// NewGetClientOrdersQuery creates a query for a client's own orders.
func NewGetClientOrdersQuery(client actor.Actor) (GetClientOrdersQuery, error) {
	if err := client.Validate(); err != nil {
		return GetClientOrdersQuery{}, err
	}

	return GetClientOrdersQuery{
		client: client,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetClientOrdersQueryIsNotConstructed if validation fails.
func (q GetClientOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClientOrdersQueryIsNotConstructed)
}

// Client returns the requesting actor.
func (q GetClientOrdersQuery) Client() actor.Actor {
	return q.client
}

// OrderSummary represents one order row in a listing.
type OrderSummary struct {
	ID        kernel.UUID
	ClientID  kernel.UUID
	Title     string
	Status    order.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
