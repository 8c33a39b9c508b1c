package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGenerateBillCommandIsNotConstructed = errors.New(
	"GenerateBillCommand must be created via NewGenerateBillCommand constructor",
)

// GenerateBillCommand represents a request to generate the bill for a
// delivered order. Normally bills are generated as part of delivery
// confirmation; this command covers recovery when that step failed.
type GenerateBillCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateBillCommand creates a command to generate an order's bill.
// Validates the order identifier.
func NewGenerateBillCommand(orderID kernel.UUID) (GenerateBillCommand, error) {
	billCommand := GenerateBillCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := billCommand.setOrderID(orderID); err != nil {
		return GenerateBillCommand{}, err
	}

	return billCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateBillCommandIsNotConstructed if validation fails.
func (c GenerateBillCommand) Validate() error {
	return c.guard.Validate(ErrGenerateBillCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to bill.
func (c GenerateBillCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *GenerateBillCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
