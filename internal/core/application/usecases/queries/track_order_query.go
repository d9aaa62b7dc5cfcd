package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery retrieves the current state of an order by its tracking
// identifier. The tracking identifier is the only order attribute customers
// ever see, so this is the customer-facing read path.
//
// Example:
//
//	query, err := NewTrackOrderQuery(trackingID)
//	handler := NewTrackOrderQueryHandler(db)
//
//	tracked, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", tracked.TrackingID, tracked.Status)
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	trackingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to track the order carrying the given
// tracking identifier.
func NewTrackOrderQuery(trackingID kernel.UUID) (TrackOrderQuery, error) {
	query := TrackOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTrackingID(trackingID); err != nil {
		return TrackOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingID returns the tracking identifier being looked up.
func (q TrackOrderQuery) TrackingID() kernel.UUID {
	return q.trackingID
}

func (q *TrackOrderQuery) setTrackingID(trackingID kernel.UUID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	q.trackingID = trackingID
	return nil
}

// TrackOrderQueryResponse represents the customer-visible state of an order.
// Failure messages are present only for orders that went through a
// cancellation path.
type TrackOrderQueryResponse struct {
	OrderID         kernel.UUID
	TrackingID      kernel.UUID
	Status          order.Status
	Price           kernel.Money
	FailureMessages []string
}
