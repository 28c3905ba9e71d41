package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/analysis"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/domain/model/order"
	"expertise/internal/core/domain/services"
	"expertise/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler assembles the full order card.
// The order row is restored into the domain model so the content gate can
// decide what slice of the analysis the viewer observes; documents and
// comments are plain reads.
type GetOrderDetailsQueryHandler struct {
	db   *gorm.DB
	gate services.ContentGate
}

// NewGetOrderDetailsQueryHandler creates a handler for the order card query.
// Requires a GORM database connection for query execution.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{
		db:   db,
		gate: services.NewContentGate(),
	}
}

// Handle executes the query to assemble the order card.
// A client may only read orders they own; operators may read any order.
// The analysis section is gated by viewer role and order status before it
// leaves the handler, so un-entitled content never crosses this boundary.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	o, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	if query.Viewer().IsClient() && !o.IsOwnedBy(query.Viewer().ID()) {
		return GetOrderDetailsQueryResponse{}, errs.NewOperationForbiddenError("view order")
	}

	a, err := h.fetchAnalysis(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	documents, err := h.fetchDocuments(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	comments, err := h.fetchComments(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	return GetOrderDetailsQueryResponse{
		ID:          o.ID(),
		ClientID:    o.ClientID(),
		OperatorID:  o.Operator(),
		Title:       o.Title(),
		Description: o.Description(),
		Status:      o.Status(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
		Documents:   documents,
		Comments:    comments,
		Analysis:    h.gate.VisibleContent(o, a, query.Viewer().Role()),
	}, nil
}

func (h GetOrderDetailsQueryHandler) fetchOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			operator_id,
			title,
			description,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var id, clientID uuid.UUID
	var operatorID uuid.NullUUID
	var title, description string
	var status int
	var createdAt, updatedAt time.Time

	err := row.Scan(&id, &clientID, &operatorID, &title, &description, &status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", orderID)
		}
		return nil, err
	}

	restoredID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	restoredClientID, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return nil, err
	}

	var restoredOperatorID *kernel.UUID
	if operatorID.Valid {
		opID, opErr := kernel.UUIDFromBytes(operatorID.UUID[:])
		if opErr != nil {
			return nil, opErr
		}
		restoredOperatorID = &opID
	}

	return order.RestoreOrder(
		restoredID,
		restoredClientID,
		restoredOperatorID,
		title,
		description,
		order.Status(status),
		createdAt,
		updatedAt,
	)
}

func (h GetOrderDetailsQueryHandler) fetchAnalysis(ctx context.Context, orderID kernel.UUID) (*analysis.Analysis, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			preview_content,
			full_content,
			created_at,
			updated_at
		FROM analyses
		WHERE order_id = ?
	`, orderID.Bytes()).Row()

	var id, analysisOrderID uuid.UUID
	var previewContent, fullContent string
	var createdAt, updatedAt time.Time

	err := row.Scan(&id, &analysisOrderID, &previewContent, &fullContent, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	restoredID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	restoredOrderID, err := kernel.UUIDFromBytes(analysisOrderID[:])
	if err != nil {
		return nil, err
	}

	return analysis.RestoreAnalysis(restoredID, restoredOrderID, previewContent, fullContent, createdAt, updatedAt)
}

func (h GetOrderDetailsQueryHandler) fetchDocuments(ctx context.Context, orderID kernel.UUID) ([]DocumentInfo, error) {
	documents := make([]DocumentInfo, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			file_name,
			uploaded_by,
			created_at
		FROM documents
		WHERE order_id = ?
		ORDER BY created_at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var info DocumentInfo
		var id, uploadedBy uuid.UUID
		var createdAt time.Time

		if err = rows.Scan(&id, &info.FileName, &uploadedBy, &createdAt); err != nil {
			return nil, err
		}

		documentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		uploaderID, idErr := kernel.UUIDFromBytes(uploadedBy[:])
		if idErr != nil {
			return nil, idErr
		}

		info.ID = documentID
		info.UploadedBy = uploaderID
		info.CreatedAt = createdAt
		documents = append(documents, info)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}

func (h GetOrderDetailsQueryHandler) fetchComments(ctx context.Context, orderID kernel.UUID) ([]CommentInfo, error) {
	comments := make([]CommentInfo, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			author_id,
			author_role,
			content,
			created_at
		FROM order_comments
		WHERE order_id = ?
		ORDER BY created_at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var info CommentInfo
		var id, authorID uuid.UUID
		var authorRole int
		var createdAt time.Time

		if err = rows.Scan(&id, &authorID, &authorRole, &info.Content, &createdAt); err != nil {
			return nil, err
		}

		commentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		restoredAuthorID, idErr := kernel.UUIDFromBytes(authorID[:])
		if idErr != nil {
			return nil, idErr
		}

		info.ID = commentID
		info.AuthorID = restoredAuthorID
		info.AuthorRole = actor.Role(authorRole)
		info.CreatedAt = createdAt
		comments = append(comments, info)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
