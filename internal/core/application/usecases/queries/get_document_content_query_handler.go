package queries

import (
	"context"
	"database/sql"
	"errors"

	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/ports"
	"expertise/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDocumentContentQueryHandler streams a stored document back to its
// viewer. The document row joins to its order so ownership is decided in one
// round trip; the bytes come from the document store only after the viewer
// is authorized.
type GetDocumentContentQueryHandler struct {
	db    *gorm.DB
	store ports.DocumentStore
}

// NewGetDocumentContentQueryHandler creates a handler for document download.
// Requires a GORM database connection and the binary document store.
func NewGetDocumentContentQueryHandler(db *gorm.DB, store ports.DocumentStore) GetDocumentContentQueryHandler {
	return GetDocumentContentQueryHandler{
		db:    db,
		store: store,
	}
}

// Handle executes the download query.
func (h GetDocumentContentQueryHandler) Handle(
	ctx context.Context,
	query GetDocumentContentQuery,
) (GetDocumentContentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDocumentContentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.file_name,
			d.storage_key,
			o.client_id
		FROM documents d
		JOIN orders o ON o.id = d.order_id
		WHERE d.id = ?
	`, query.DocumentID().Bytes()).Row()

	var fileName, storageKey string
	var clientID uuid.UUID

	err := row.Scan(&fileName, &storageKey, &clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDocumentContentQueryResponse{}, errs.NewObjectNotFoundError("document", query.DocumentID())
		}
		return GetDocumentContentQueryResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return GetDocumentContentQueryResponse{}, err
	}

	if query.Viewer().IsClient() && !query.Viewer().ID().IsEqual(ownerID) {
		return GetDocumentContentQueryResponse{}, errs.NewOperationForbiddenError("download document")
	}

	data, err := h.store.Get(ctx, storageKey)
	if err != nil {
		return GetDocumentContentQueryResponse{}, err
	}

	return GetDocumentContentQueryResponse{
		FileName: fileName,
		Data:     data,
	}, nil
}
