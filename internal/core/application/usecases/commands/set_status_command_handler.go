package commands

import (
	"context"

	"expertise/internal/pkg/errs"
)

// SetStatusCommandHandler handles explicit status transitions.
// Only operators may call this operation; clients never hold the capability.
// No source→target adjacency is validated, by design. If the target is
// IN_PROGRESS and the order is unassigned, the issuing operator is recorded
// write-once.
type SetStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetStatusCommandHandler creates a handler for status transitions.
// Requires an OrderUoWFactory for transactional persistence.
func NewSetStatusCommandHandler(uowFactory OrderUoWFactory) SetStatusCommandHandler {
	return SetStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Rejects non-operator actors before any repository call. On success the new
// status and updated-at timestamp are persisted; on any failure the stored
// order is left untouched.
func (h SetStatusCommandHandler) Handle(ctx context.Context, cmd SetStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Issuer().IsOperator() {
		return errs.NewOperationForbiddenError("set status")
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

	if err = o.ChangeStatus(cmd.Target(), cmd.Issuer().ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
