// Package http exposes the order lifecycle over a JSON API.
// Every route runs behind the JWT middleware; the authenticated actor is the
// single identity input of each use case.
package http

import (
	"io"
	"net/http"

	"expertise/internal/core/application/usecases/commands"
	"expertise/internal/core/application/usecases/queries"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	setStatusHandler       commands.SetStatusCommandHandler
	saveAnalysisHandler    commands.SaveAnalysisCommandHandler
	completePaymentHandler commands.CompletePaymentCommandHandler
	addCommentHandler      commands.AddCommentCommandHandler
	attachDocumentsHandler commands.AttachDocumentsCommandHandler

	// Query handlers
	getClientOrdersHandler    queries.GetClientOrdersQueryHandler
	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	getOrderDetailsHandler    queries.GetOrderDetailsQueryHandler
	getOrderStatsHandler      queries.GetOrderStatsQueryHandler
	getDocumentContentHandler queries.GetDocumentContentQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	setStatusHandler commands.SetStatusCommandHandler,
	saveAnalysisHandler commands.SaveAnalysisCommandHandler,
	completePaymentHandler commands.CompletePaymentCommandHandler,
	addCommentHandler commands.AddCommentCommandHandler,
	attachDocumentsHandler commands.AttachDocumentsCommandHandler,
	getClientOrdersHandler queries.GetClientOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderDetailsHandler queries.GetOrderDetailsQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
	getDocumentContentHandler queries.GetDocumentContentQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		setStatusHandler:          setStatusHandler,
		saveAnalysisHandler:       saveAnalysisHandler,
		completePaymentHandler:    completePaymentHandler,
		addCommentHandler:         addCommentHandler,
		attachDocumentsHandler:    attachDocumentsHandler,
		getClientOrdersHandler:    getClientOrdersHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getOrderDetailsHandler:    getOrderDetailsHandler,
		getOrderStatsHandler:      getOrderStatsHandler,
		getDocumentContentHandler: getDocumentContentHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo group.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.POST("/orders", s.CreateOrder)
	g.GET("/orders", s.ListOrders)
	g.GET("/orders/stats", s.GetOrderStats)
	g.GET("/orders/:orderID", s.GetOrderDetails)
	g.POST("/orders/:orderID/status", s.SetStatus)
	g.POST("/orders/:orderID/analysis", s.SaveAnalysis)
	g.POST("/orders/:orderID/payment", s.CompletePayment)
	g.POST("/orders/:orderID/comments", s.AddComment)
	g.POST("/orders/:orderID/documents", s.AttachDocuments)
	g.GET("/orders/:orderID/documents/:documentID", s.GetDocumentContent)
}

// CreateOrder handles POST /orders - submits a new analysis order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	requester, ok := requesterFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var body CreateOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, requester, body.Title, body.Description)
	if err != nil {
		return badRequest(ctx, "invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ListOrders handles GET /orders - a client sees their own orders, an
// operator sees every order.
func (s *Server) ListOrders(ctx echo.Context) error {
	requester, ok := requesterFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	if requester.IsOperator() {
		query, err := queries.NewGetAllOrdersQuery(requester)
		if err != nil {
			return badRequest(ctx, err.Error())
		}

		rows, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return respondError(ctx, err)
		}

		return ctx.JSON(http.StatusOK, toOrderSummaries(rows))
	}

	query, err := queries.NewGetClientOrdersQuery(requester)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.getClientOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(rows))
}

// GetOrderDetails handles GET /orders/:orderID - the full order card.
func (s *Server) GetOrderDetails(ctx echo.Context) error {
	requester, ok := requesterFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID, requester)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	card, err := s.getOrderDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetails(card))
}

// GetOrderStats handles GET /orders/stats - per-status counts for the
// operator dashboard.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	requester, ok := requesterFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetOrderStatsQuery(requester)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderStats(stats))
}

// SetStatus handles POST /orders/:orderID/status - moves the order to a
// target status.
func (s *Server) SetStatus(ctx echo.Context) error {
	requester, ok := requesterFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body SetStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "invalid status: "+body.Status)
	}

	cmd, err := commands.NewSetStatusCommand(orderID, target, requester)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.setStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SaveAnalysis handles POST /orders/:orderID/analysis - publishes or revises
// the analysis content.
func (s *Server) SaveAnalysis(ctx echo.Context) error {
	requester, ok := requesterFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body SaveAnalysisRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSaveAnalysisCommand(orderID, requester, body.PreviewContent, body.FullContent)
	if err != nil {
		return badRequest(ctx, "invalid analysis data: "+err.Error())
	}

	if err = s.saveAnalysisHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompletePayment handles POST /orders/:orderID/payment - charges the client
// and completes the order.
func (s *Server) CompletePayment(ctx echo.Context) error {
	requester, ok := requesterFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCompletePaymentCommand(orderID, requester)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.completePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddComment handles POST /orders/:orderID/comments - appends a message to
// the order thread.
func (s *Server) AddComment(ctx echo.Context) error {
	requester, ok := requesterFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body AddCommentRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddCommentCommand(orderID, requester, body.Content)
	if err != nil {
		return badRequest(ctx, "invalid comment data: "+err.Error())
	}

	if err = s.addCommentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AttachDocuments handles POST /orders/:orderID/documents - multipart upload
// of one or more files.
func (s *Server) AttachDocuments(ctx echo.Context) error {
	requester, ok := requesterFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return badRequest(ctx, "invalid multipart form")
	}

	files := make([]commands.FileUpload, 0, len(form.File["files"]))
	for _, header := range form.File["files"] {
		src, openErr := header.Open()
		if openErr != nil {
			return badRequest(ctx, "unreadable file: "+header.Filename)
		}

		data, readErr := io.ReadAll(src)
		_ = src.Close()
		if readErr != nil {
			return badRequest(ctx, "unreadable file: "+header.Filename)
		}

		files = append(files, commands.FileUpload{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	cmd, err := commands.NewAttachDocumentsCommand(orderID, requester, files)
	if err != nil {
		return badRequest(ctx, "invalid upload: "+err.Error())
	}

	if err = s.attachDocumentsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetDocumentContent handles GET /orders/:orderID/documents/:documentID -
// downloads one attached file.
func (s *Server) GetDocumentContent(ctx echo.Context) error {
	requester, ok := requesterFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	documentID, err := kernel.UUIDFromString(ctx.Param("documentID"))
	if err != nil {
		return badRequest(ctx, "invalid document id")
	}

	query, err := queries.NewGetDocumentContentQuery(documentID, requester)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	file, err := s.getDocumentContentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+file.FileName+`"`)
	return ctx.Blob(http.StatusOK, echo.MIMEOctetStream, file.Data)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "authentication required",
	})
}
