package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand finalizes cancellation of an order: either a direct
// cancellation of an unpaid order or the completion of a requested
// cancellation whose compensation finished.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the given order.
// Failure messages are optional.
func NewCancelOrderCommand(orderID kernel.UUID, failureMessages []string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		failureMessages: failureMessages,
		guard:           guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FailureMessages returns the reasons reported for the cancellation.
func (c CancelOrderCommand) FailureMessages() []string {
	return c.failureMessages
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
