package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// CompleteCancellationsCommandHandler finalizes all orders in Cancelling
// status. It is driven by the scheduled cancellation job, mirroring how
// compensation completions would arrive from the payment service.
type CompleteCancellationsCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCompleteCancellationsCommandHandler creates a handler that finalizes
// pending cancellations.
func NewCompleteCancellationsCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CompleteCancellationsCommandHandler {
	return CompleteCancellationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle moves every Cancelling order to Cancelled within one transaction
// and publishes an OrderCancelled event per order after the commit.
func (h *CompleteCancellationsCommandHandler) Handle(ctx context.Context, cmd CompleteCancellationsCommand) error {
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
	aggregates, err := repo.GetAllInCancellingStatus(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range aggregates {
		if err = aggregate.Cancel(); err != nil {
			return err
		}

		if err = repo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	occurredAt := time.Now().UTC()
	for _, aggregate := range aggregates {
		if err = h.publisher.Publish(ctx, order.NewOrderCancelledEvent(aggregate, occurredAt)); err != nil {
			return err
		}
	}

	return nil
}
