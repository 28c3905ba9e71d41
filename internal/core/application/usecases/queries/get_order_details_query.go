package queries

import (
	"errors"
	"time"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/domain/model/order"
	"expertise/internal/core/domain/services"
	"expertise/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves the full card of a single order: its
// attributes, attached documents, comment thread, and whatever slice of the
// analysis the viewer is entitled to see.
type GetOrderDetailsQuery struct {
	orderID kernel.UUID
	viewer  actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for a single order's full card.
func NewGetOrderDetailsQuery(orderID kernel.UUID, viewer actor.Actor) (GetOrderDetailsQuery, error) {
	if err := errors.Join(orderID.Validate(), viewer.Validate()); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return GetOrderDetailsQuery{
		orderID: orderID,
		viewer:  viewer,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderDetailsQueryIsNotConstructed if validation fails.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Viewer returns the requesting actor.
func (q GetOrderDetailsQuery) Viewer() actor.Actor {
	return q.viewer
}

// DocumentInfo represents one attached document in the order card.
// The storage key stays server-side; the card exposes only the document ID
// for the download endpoint.
type DocumentInfo struct {
	ID         kernel.UUID
	FileName   string
	UploadedBy kernel.UUID
	CreatedAt  time.Time
}

// CommentInfo represents one message of the order's comment thread.
type CommentInfo struct {
	ID         kernel.UUID
	AuthorID   kernel.UUID
	AuthorRole actor.Role
	Content    string
	CreatedAt  time.Time
}

// GetOrderDetailsQueryResponse is the full order card shown to a viewer.
// The Analysis view is already gated for the viewer's role and the order's
// payment state.
type GetOrderDetailsQueryResponse struct {
	ID          kernel.UUID
	ClientID    kernel.UUID
	OperatorID  *kernel.UUID
	Title       string
	Description string
	Status      order.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Documents []DocumentInfo
	Comments  []CommentInfo
	Analysis  services.AnalysisView
}
