package queries

import (
	"errors"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/guard"
)

var ErrGetDocumentContentQueryIsNotConstructed = errors.New(
	"GetDocumentContentQuery must be created via NewGetDocumentContentQuery constructor",
)

// GetDocumentContentQuery retrieves the bytes of one attached document for
// download. Clients may only download documents attached to their own
// orders; operators may download any document.
type GetDocumentContentQuery struct {
	documentID kernel.UUID
	viewer     actor.Actor

	guard guard.ConstructorGuard
}

// NewGetDocumentContentQuery creates a query to download one document.
func NewGetDocumentContentQuery(documentID kernel.UUID, viewer actor.Actor) (GetDocumentContentQuery, error) {
	if err := errors.Join(documentID.Validate(), viewer.Validate()); err != nil {
		return GetDocumentContentQuery{}, err
	}

	return GetDocumentContentQuery{
		documentID: documentID,
		viewer:     viewer,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDocumentContentQueryIsNotConstructed if validation fails.
func (q GetDocumentContentQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentContentQueryIsNotConstructed)
}

// DocumentID returns the identifier of the requested document.
func (q GetDocumentContentQuery) DocumentID() kernel.UUID {
	return q.documentID
}

// Viewer returns the requesting actor.
func (q GetDocumentContentQuery) Viewer() actor.Actor {
	return q.viewer
}

// GetDocumentContentQueryResponse carries the downloadable file.
type GetDocumentContentQueryResponse struct {
	FileName string
	Data     []byte
}
