package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrInitCancelOrderCommandIsNotConstructed = errors.New(
	"InitCancelOrderCommand must be created via NewInitCancelOrderCommand constructor",
)

// InitCancelOrderCommand requests cancellation of a paid order. The order
// moves to Cancelling while the payment compensation runs; the carried
// failure messages describe why cancellation was requested.
type InitCancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewInitCancelOrderCommand creates a command to start cancelling the given
// order. Failure messages are optional.
func NewInitCancelOrderCommand(orderID kernel.UUID, failureMessages []string) (InitCancelOrderCommand, error) {
	cmd := InitCancelOrderCommand{
		failureMessages: failureMessages,
		guard:           guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return InitCancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InitCancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrInitCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being cancelled.
func (c InitCancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FailureMessages returns the reasons reported for the cancellation.
func (c InitCancelOrderCommand) FailureMessages() []string {
	return c.failureMessages
}

func (c *InitCancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
