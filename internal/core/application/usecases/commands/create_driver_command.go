package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrDriverLocationIsRequired = errors.New("driver location is required")
)

// CreateDriverCommand represents a request to register a new driver.
// New drivers start in available status and become candidates for
// dispatch immediately.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	userID   kernel.UUID
	location string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Validates that both identifiers are valid and the location is not empty.
func NewCreateDriverCommand(driverID, userID kernel.UUID, location string) (CreateDriverCommand, error) {
	driverCommand := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driverCommand.setDriverID(driverID),
		driverCommand.setUserID(userID),
		driverCommand.setLocation(location),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return driverCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// UserID returns the account the driver belongs to.
func (c CreateDriverCommand) UserID() kernel.UUID {
	return c.userID
}

// Location returns the driver's starting location.
func (c CreateDriverCommand) Location() string {
	return c.location
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateDriverCommand) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return ErrDriverLocationIsRequired
	}

	c.location = location
	return nil
}
