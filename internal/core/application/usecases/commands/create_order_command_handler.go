package commands

import (
	"context"

	"expertise/internal/core/domain/model/order"
	"expertise/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order submission.
// Only actors with the CLIENT role may submit orders; the submitter becomes
// the owning client.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order submission.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order submission command.
// Rejects non-client actors before any repository call, then creates the
// order in the NEW status owned by the submitting client.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Client().IsClient() {
		return errs.NewOperationForbiddenError("create order")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Client().ID(), cmd.Title(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
