package commands

import (
	"context"

	"expertise/internal/core/domain/model/comment"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/errs"
)

// AddCommentCommandHandler handles appending comments to an order's thread.
// Operators may comment on any order; a client may only comment on orders
// they own.
type AddCommentCommandHandler struct {
	uowFactory CommentUoWFactory
}

// NewAddCommentCommandHandler creates a handler for order comments.
// Requires a CommentUoWFactory spanning the order and comment aggregates.
func NewAddCommentCommandHandler(uowFactory CommentUoWFactory) AddCommentCommandHandler {
	return AddCommentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the comment command.
// Loads the order to verify it exists and that the author may post to it,
// then appends the comment to the thread.
func (h AddCommentCommandHandler) Handle(ctx context.Context, cmd AddCommentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Author().IsClient() && !o.IsOwnedBy(cmd.Author().ID()) {
		return errs.NewOperationForbiddenError("add comment")
	}

	newComment, err := comment.NewComment(kernel.NewUUID(), o.ID(), cmd.Author(), cmd.Content())
	if err != nil {
		return err
	}

	if err = uow.CommentRepository().Add(ctx, newComment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
