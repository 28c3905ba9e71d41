package commands

import (
	"context"
	"errors"

	"expertise/internal/core/domain/model/analysis"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/errs"
)

// SaveAnalysisCommandHandler handles publishing and revising analysis content.
// Only operators may publish. Saving always forces the order into
// AWAITING_PAYMENT regardless of its current status; both the content upsert
// and the status change commit in one transaction.
type SaveAnalysisCommandHandler struct {
	uowFactory AnalysisUoWFactory
}

// NewSaveAnalysisCommandHandler creates a handler for analysis publishing.
// Requires an AnalysisUoWFactory spanning the order and analysis aggregates.
func NewSaveAnalysisCommandHandler(uowFactory AnalysisUoWFactory) SaveAnalysisCommandHandler {
	return SaveAnalysisCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the analysis publishing command.
// Creates the analysis on first save and revises it in place on later saves.
func (h SaveAnalysisCommandHandler) Handle(ctx context.Context, cmd SaveAnalysisCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Author().IsOperator() {
		return errs.NewOperationForbiddenError("save analysis")
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

	if err = h.upsertAnalysis(ctx, uow, cmd); err != nil {
		return err
	}

	o.MarkAwaitingPayment()

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h SaveAnalysisCommandHandler) upsertAnalysis(
	ctx context.Context,
	uow AnalysisUoW,
	cmd SaveAnalysisCommand,
) error {
	analysisRepo := uow.AnalysisRepository()

	existing, err := analysisRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		fresh, newErr := analysis.NewAnalysis(
			kernel.NewUUID(),
			cmd.OrderID(),
			cmd.PreviewContent(),
			cmd.FullContent(),
		)
		if newErr != nil {
			return newErr
		}

		return analysisRepo.Add(ctx, fresh)
	}

	if err = existing.Revise(cmd.PreviewContent(), cmd.FullContent()); err != nil {
		return err
	}

	return analysisRepo.Update(ctx, existing)
}
