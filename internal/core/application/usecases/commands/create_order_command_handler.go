package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// CreateOrderResult reports the identity assigned to a freshly placed order.
type CreateOrderResult struct {
	OrderID    kernel.UUID
	TrackingID kernel.UUID
	Status     order.Status
}

// CreateOrderCommandHandler handles the business logic for order placement:
// the aggregate is built from the command, validated, initialized, persisted,
// and announced through the event publisher.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and an event
// publisher for the OrderCreated announcement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command. The aggregate is validated
// before it is initialized, so a price inconsistency rejects the request
// before any identity has been assigned. The OrderCreated event is published
// only after the transaction commits.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	items := make([]*order.OrderItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, err := order.NewOrderItem(line.Product, line.Quantity, line.Price, line.SubTotal)
		if err != nil {
			return CreateOrderResult{}, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.CustomerID(), cmd.RestaurantID(), cmd.Address(), cmd.Price(), items)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = aggregate.ValidateOrder(); err != nil {
		return CreateOrderResult{}, err
	}

	aggregate.InitializeOrder()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	if err = h.publisher.Publish(ctx, order.NewOrderCreatedEvent(aggregate, time.Now().UTC())); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:    aggregate.ID(),
		TrackingID: aggregate.TrackingID(),
		Status:     aggregate.Status(),
	}, nil
}
