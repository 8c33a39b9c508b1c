package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrStartTransitCommandIsNotConstructed = errors.New(
		"StartTransitCommand must be created via NewStartTransitCommand constructor",
	)
	ErrDepartureLocationIsRequired = errors.New("departure location is required")
)

// StartTransitCommand represents a driver departing the pickup point with an
// assigned order. The reported location seeds the assignment's tracking
// position.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	location string

	guard guard.ConstructorGuard
}

// NewStartTransitCommand creates a command marking an order as in transit.
// Validates the order identifier and requires a non-blank departure location.
func NewStartTransitCommand(orderID kernel.UUID, location string) (StartTransitCommand, error) {
	transitCommand := StartTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitCommand.setOrderID(orderID),
		transitCommand.setLocation(location),
	); err != nil {
		return StartTransitCommand{}, err
	}

	return transitCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartTransitCommandIsNotConstructed if validation fails.
func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

// OrderID returns the identifier of the departing order.
func (c StartTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Location returns the driver's reported departure location.
func (c StartTransitCommand) Location() string {
	return c.location
}

func (c *StartTransitCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartTransitCommand) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return ErrDepartureLocationIsRequired
	}

	c.location = location
	return nil
}
