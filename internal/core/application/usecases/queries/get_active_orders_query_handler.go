package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves in-flight orders from the database.
// Filters out terminal orders to provide visibility into the active workload.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal orders.
// Returns orders in Pending, Paid, or Cancelling status, sorted by order ID
// for consistent output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			status,
			price
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, order.Approved, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			trackingID uuid.UUID
			status     int
			price      string
		)

		if err = rows.Scan(&id, &trackingID, &status, &price); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orderTrackingID, idErr := kernel.UUIDFromBytes(trackingID[:])
		if idErr != nil {
			return nil, idErr
		}

		orderPrice, priceErr := kernel.MoneyFromString(price)
		if priceErr != nil {
			return nil, priceErr
		}

		orders = append(orders, GetActiveOrdersQueryResponse{
			OrderID:    orderID,
			TrackingID: orderTrackingID,
			Status:     order.Status(status),
			Price:      orderPrice,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
