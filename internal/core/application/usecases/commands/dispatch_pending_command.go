package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrDispatchPendingCommandIsNotConstructed = errors.New(
	"DispatchPendingCommand must be created via NewDispatchPendingCommand constructor",
)

// DispatchPendingCommand triggers automatic assignment of an available driver
// to the oldest pending order. This command represents the business operation
// of matching delivery resources with demand without operator involvement.
//
// Example:
//
//	cmd := NewDispatchPendingCommand()
//	handler := NewDispatchPendingCommandHandler(uowFactory, publisher)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to assign or no available drivers: %v", err)
//	}
type DispatchPendingCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingCommand creates a new command to trigger automatic driver
// assignment. This is a parameterless command; the handler selects both the
// order and the driver.
func NewDispatchPendingCommand() DispatchPendingCommand {
	return DispatchPendingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchPendingCommandIsNotConstructed if validation fails.
func (c *DispatchPendingCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchPendingCommandIsNotConstructed,
	)
}
