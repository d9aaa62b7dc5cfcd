package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrCompleteCancellationsCommandIsNotConstructed = errors.New(
	"CompleteCancellationsCommand must be created via NewCompleteCancellationsCommand constructor",
)

// CompleteCancellationsCommand finalizes every order whose cancellation
// compensation has finished. This is a parameterless command issued by the
// scheduled cancellation job.
type CompleteCancellationsCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteCancellationsCommand creates a command to finalize all orders
// currently in Cancelling status.
func NewCompleteCancellationsCommand() CompleteCancellationsCommand {
	return CompleteCancellationsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c CompleteCancellationsCommand) Validate() error {
	return c.guard.Validate(ErrCompleteCancellationsCommandIsNotConstructed)
}
