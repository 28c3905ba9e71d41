package commands

import (
	"context"
	"fmt"

	"expertise/internal/core/ports"
	"expertise/internal/pkg/errs"
)

// CompletePaymentCommandHandler handles client payment for an order.
// Only the owning client may pay. The order's status is read for information
// only: payment is accepted from any status, so a stale or adventurous client
// cannot wedge an order by paying at an unexpected moment.
type CompletePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

// NewCompletePaymentCommandHandler creates a handler for order payment.
// Requires an OrderUoWFactory and the external payment gateway.
func NewCompletePaymentCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the payment command.
// Charges through the gateway first; the order moves to COMPLETED only after
// a successful charge. A gateway failure leaves the order untouched.
func (h CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Payer().IsClient() {
		return errs.NewOperationForbiddenError("complete payment")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.IsOwnedBy(cmd.Payer().ID()) {
		return errs.NewOperationForbiddenError("complete payment")
	}

	if err = h.gateway.Charge(ctx, cmd.OrderID()); err != nil {
		return fmt.Errorf("charge order %s: %w", cmd.OrderID(), err)
	}

	o.Complete()

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
