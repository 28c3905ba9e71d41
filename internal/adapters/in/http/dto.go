package http

import (
	"time"

	"expertise/internal/core/application/usecases/queries"
)

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CreateOrderResponse returns the identifier assigned to a new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// SetStatusRequest is the body of POST /orders/:orderID/status.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// SaveAnalysisRequest is the body of POST /orders/:orderID/analysis.
type SaveAnalysisRequest struct {
	PreviewContent string `json:"preview_content,omitempty"`
	FullContent    string `json:"full_content"`
}

// AddCommentRequest is the body of POST /orders/:orderID/comments.
type AddCommentRequest struct {
	Content string `json:"content"`
}

// OrderSummary is one row in an order listing.
type OrderSummary struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocumentInfo is one attached document in the order card.
type DocumentInfo struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// CommentInfo is one message of the order's comment thread.
type CommentInfo struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorRole string    `json:"author_role"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// AnalysisView is the gated analysis section of the order card.
type AnalysisView struct {
	ShowAnalysis   bool   `json:"show_analysis"`
	PreviewContent string `json:"preview_content,omitempty"`
	FullContent    string `json:"full_content,omitempty"`
	PaymentDue     bool   `json:"payment_due"`
	CanEdit        bool   `json:"can_edit"`
}

// OrderDetails is the full order card.
type OrderDetails struct {
	ID          string         `json:"id"`
	ClientID    string         `json:"client_id"`
	OperatorID  *string        `json:"operator_id,omitempty"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Documents   []DocumentInfo `json:"documents"`
	Comments    []CommentInfo  `json:"comments"`
	Analysis    AnalysisView   `json:"analysis"`
}

// StatusCount is one row of the stats dashboard.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// OrderStats lists per-status counts in lifecycle order plus the total.
type OrderStats struct {
	Counts []StatusCount `json:"counts"`
	Total  int           `json:"total"`
}

func toOrderSummaries(rows []queries.OrderSummary) []OrderSummary {
	summaries := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, OrderSummary{
			ID:        row.ID.String(),
			ClientID:  row.ClientID.String(),
			Title:     row.Title,
			Status:    row.Status.String(),
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return summaries
}

func toOrderDetails(card queries.GetOrderDetailsQueryResponse) OrderDetails {
	var operatorID *string
	if card.OperatorID != nil {
		id := card.OperatorID.String()
		operatorID = &id
	}

	documents := make([]DocumentInfo, 0, len(card.Documents))
	for _, doc := range card.Documents {
		documents = append(documents, DocumentInfo{
			ID:         doc.ID.String(),
			FileName:   doc.FileName,
			UploadedBy: doc.UploadedBy.String(),
			CreatedAt:  doc.CreatedAt,
		})
	}

	comments := make([]CommentInfo, 0, len(card.Comments))
	for _, msg := range card.Comments {
		comments = append(comments, CommentInfo{
			ID:         msg.ID.String(),
			AuthorID:   msg.AuthorID.String(),
			AuthorRole: msg.AuthorRole.String(),
			Content:    msg.Content,
			CreatedAt:  msg.CreatedAt,
		})
	}

	return OrderDetails{
		ID:          card.ID.String(),
		ClientID:    card.ClientID.String(),
		OperatorID:  operatorID,
		Title:       card.Title,
		Description: card.Description,
		Status:      card.Status.String(),
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
		Documents:   documents,
		Comments:    comments,
		Analysis: AnalysisView{
			ShowAnalysis:   card.Analysis.ShowAnalysis,
			PreviewContent: card.Analysis.PreviewContent,
			FullContent:    card.Analysis.FullContent,
			PaymentDue:     card.Analysis.PaymentDue,
			CanEdit:        card.Analysis.CanEdit,
		},
	}
}

func toOrderStats(stats queries.GetOrderStatsQueryResponse) OrderStats {
	counts := make([]StatusCount, 0, len(stats.Counts))
	for _, count := range stats.Counts {
		counts = append(counts, StatusCount{
			Status: count.Status.String(),
			Count:  count.Count,
		})
	}

	return OrderStats{
		Counts: counts,
		Total:  stats.Total,
	}
}
