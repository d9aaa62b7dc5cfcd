package commands

import (
	"context"
)

// InitCancelOrderCommandHandler starts cancellation of a paid order,
// moving it from Paid to Cancelling and recording the reported reasons.
type InitCancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewInitCancelOrderCommandHandler creates a handler for cancellation
// requests.
func NewInitCancelOrderCommandHandler(uowFactory OrderUoWFactory) InitCancelOrderCommandHandler {
	return InitCancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the InitCancel transition, appends the
// reported failure messages, and persists the result. The final Cancelled
// state and its event are produced later, once compensation finishes.
func (h *InitCancelOrderCommandHandler) Handle(ctx context.Context, cmd InitCancelOrderCommand) error {
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

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.InitCancel(); err != nil {
		return err
	}

	aggregate.AppendFailureMessages(cmd.FailureMessages()...)

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
