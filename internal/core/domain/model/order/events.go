package order

import "time"

// Event is a domain event emitted when an order passes a lifecycle milestone.
// Events carry the aggregate itself; the outbound publisher decides which
// attributes to expose.
type Event interface {
	// Name returns the stable event name, e.g. "order.created".
	Name() string

	// Order returns the aggregate the event concerns.
	Order() *Order

	// OccurredAt returns when the event was raised.
	OccurredAt() time.Time
}

type baseEvent struct {
	order      *Order
	occurredAt time.Time
}

func (e baseEvent) Order() *Order         { return e.order }
func (e baseEvent) OccurredAt() time.Time { return e.occurredAt }

// OrderCreatedEvent is raised after an order has been validated, initialized,
// and persisted.
type OrderCreatedEvent struct{ baseEvent }

// NewOrderCreatedEvent creates an OrderCreatedEvent for the given aggregate.
func NewOrderCreatedEvent(order *Order, occurredAt time.Time) OrderCreatedEvent {
	return OrderCreatedEvent{baseEvent{order: order, occurredAt: occurredAt}}
}

// Name returns "order.created".
func (OrderCreatedEvent) Name() string { return "order.created" }

// OrderPaidEvent is raised after a payment confirmation moved the order to
// Paid.
type OrderPaidEvent struct{ baseEvent }

// NewOrderPaidEvent creates an OrderPaidEvent for the given aggregate.
func NewOrderPaidEvent(order *Order, occurredAt time.Time) OrderPaidEvent {
	return OrderPaidEvent{baseEvent{order: order, occurredAt: occurredAt}}
}

// Name returns "order.paid".
func (OrderPaidEvent) Name() string { return "order.paid" }

// OrderCancelledEvent is raised after an order reached Cancelled. The
// aggregate's failure messages describe why.
type OrderCancelledEvent struct{ baseEvent }

// NewOrderCancelledEvent creates an OrderCancelledEvent for the given
// aggregate.
func NewOrderCancelledEvent(order *Order, occurredAt time.Time) OrderCancelledEvent {
	return OrderCancelledEvent{baseEvent{order: order, occurredAt: occurredAt}}
}

// Name returns "order.cancelled".
func (OrderCancelledEvent) Name() string { return "order.cancelled" }
