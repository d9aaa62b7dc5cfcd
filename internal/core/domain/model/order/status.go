package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Paid ──> Approved
//	   │          │
//	   │          └──> Cancelling ──┐
//	   └────────────────────────────┴──> Cancelled
//
// Approved and Cancelled are terminal. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values; before
	// InitializeOrder an order deliberately has no status.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is initialized.
	// Orders in this status await payment confirmation.
	Pending

	// Paid indicates the payment service confirmed the payment.
	Paid

	// Approved indicates the restaurant approved the paid order.
	// This is a terminal state.
	Approved

	// Cancelling indicates a cancellation was requested for a paid order
	// and compensation (refund) is in progress.
	Cancelling

	// Cancelled indicates the order was cancelled.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Paid:       "Paid",
		Approved:   "Approved",
		Cancelling: "Cancelling",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Paid:       "Paid",
		Approved:   "Approved",
		Cancelling: "Cancelling",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid. This is used to ensure Status
// values from external sources (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid (payment confirmed)
//
// Returns (0, error) if the order is not awaiting payment.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return 0, transitionError(s, "pay")
	}
	return Paid, nil
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Paid -> Approved (restaurant approval)
//
// Returns (0, error) if the order has not been paid.
func (s Status) Approve() (Status, error) {
	if s != Paid {
		return 0, transitionError(s, "approve")
	}
	return Approved, nil
}

// InitCancel transitions the status to Cancelling.
//
// Valid transitions:
//   - Paid -> Cancelling (cancellation requested after payment)
//
// Returns (0, error) if the order is not in a paid state.
func (s Status) InitCancel() (Status, error) {
	if s != Paid {
		return 0, transitionError(s, "initCancel")
	}
	return Cancelling, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Cancelling -> Cancelled (compensation finished)
//   - Pending -> Cancelled (direct cancellation of an unpaid order)
//
// Returns (0, error) for any other source state.
func (s Status) Cancel() (Status, error) {
	if s != Cancelling && s != Pending {
		return 0, transitionError(s, "cancel")
	}
	return Cancelled, nil
}

func transitionError(s Status, operation string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"orderStatus",
		fmt.Errorf("order in status %s is not in correct state for %s operation", s, operation),
	)
}
