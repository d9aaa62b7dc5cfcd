package queries

import (
	"context"
	"encoding/json"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads the customer-visible order state straight from
// the database, bypassing the aggregate. The read model stays consistent with
// the write model because both share the orders table.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking lookup. Returns an ObjectNotFound error when
// no order carries the requested tracking identifier.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			status,
			price,
			failure_messages
		FROM orders
		WHERE tracking_id = ?
	`, query.TrackingID().Bytes()).Rows()
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackOrderQueryResponse{}, err
		}
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("trackingID", query.TrackingID().String())
	}

	var (
		id              uuid.UUID
		trackingID      uuid.UUID
		status          int
		price           string
		failureMessages []byte
	)

	if err = rows.Scan(&id, &trackingID, &status, &price, &failureMessages); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	orderTrackingID, err := kernel.UUIDFromBytes(trackingID[:])
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	orderPrice, err := kernel.MoneyFromString(price)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	messages := make([]string, 0)
	if len(failureMessages) > 0 {
		if err = json.Unmarshal(failureMessages, &messages); err != nil {
			return TrackOrderQueryResponse{}, err
		}
	}

	return TrackOrderQueryResponse{
		OrderID:         orderID,
		TrackingID:      orderTrackingID,
		Status:          order.Status(status),
		Price:           orderPrice,
		FailureMessages: messages,
	}, nil
}
