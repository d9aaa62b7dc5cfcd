package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderEventPublisher announces order lifecycle milestones to interested
// collaborators (payment, restaurant approval, customer notification).
// Publication happens after the owning transaction has committed; a publish
// failure must not undo the state change.
type OrderEventPublisher interface {
	// Publish delivers a single domain event.
	Publish(ctx context.Context, event order.Event) error
}
