package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their identity, tracking identifier, and lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line items and current status.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingID retrieves an order aggregate by its customer-facing
	// tracking identifier.
	GetByTrackingID(ctx context.Context, trackingID kernel.UUID) (*order.Order, error)

	// GetAllInCancellingStatus retrieves all orders awaiting cancellation
	// completion. Used by the cancellation job to finalize compensations.
	GetAllInCancellingStatus(ctx context.Context) ([]*order.Order, error)
}
