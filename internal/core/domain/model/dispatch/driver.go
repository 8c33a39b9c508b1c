package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

	// ErrDriverNotAvailable is returned when assigning an order to a driver
	// who is already busy with another delivery.
	ErrDriverNotAvailable = errors.New("driver is not available")
)

// DriverStatus represents a driver's availability.
type DriverStatus int

const (
	// DriverUnknown represents an invalid or undefined driver status.
	DriverUnknown DriverStatus = iota

	// DriverAvailable indicates the driver can take an order.
	DriverAvailable

	// DriverBusy indicates the driver is delivering an order.
	DriverBusy
)

func getDriverStatusStrings() map[DriverStatus]string {
	return map[DriverStatus]string{
		DriverUnknown:   "unknown",
		DriverAvailable: "available",
		DriverBusy:      "busy",
	}
}

// Validate checks if the DriverStatus value is valid.
func (s DriverStatus) Validate() error {
	if s != DriverAvailable && s != DriverBusy {
		return errs.NewValueIsInvalidErrorWithCause("driver status is invalid",
			fmt.Errorf("%d is not a valid driver status", s))
	}
	return nil
}

// String returns the persisted name of the driver status.
func (s DriverStatus) String() string {
	if str, ok := getDriverStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Driver represents a delivery driver. It is an aggregate root tracking the
// driver's availability and last reported location.
//
// Business rules:
//   - A driver must have valid driver and user identifiers and a non-empty location
//   - A busy driver cannot take another order until freed
type Driver struct {
	id              kernel.UUID
	userID          kernel.UUID
	status          DriverStatus
	currentLocation string

	guard guard.ConstructorGuard
}

// NewDriver creates a new available Driver.
//
// Parameters:
//   - id: unique identifier for the driver
//   - userID: the account the driver belongs to
//   - location: the driver's current location (non-empty)
//
// Returns a validation error if any parameter is invalid.
func NewDriver(id, userID kernel.UUID, location string) (*Driver, error) {
	d := &Driver{
		status: DriverAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(userID),
		d.setLocation(location),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persisted state.
// Intended for repository use only.
func RestoreDriver(id, userID kernel.UUID, status DriverStatus, location string) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(userID),
		d.setStatus(status),
		d.setLocation(location),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Driver was properly constructed through one of its
// factory methods.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// UserID returns the account identifier the driver belongs to.
func (d *Driver) UserID() kernel.UUID {
	return d.userID
}

// Status returns the driver's availability.
func (d *Driver) Status() DriverStatus {
	return d.status
}

// CurrentLocation returns the driver's last reported location.
func (d *Driver) CurrentLocation() string {
	return d.currentLocation
}

// MarkBusy transitions the driver to busy when an order is assigned.
// Fails with ErrDriverNotAvailable if the driver is already busy.
func (d *Driver) MarkBusy() error {
	if d.status != DriverAvailable {
		return fmt.Errorf("%w: driver %s is %q", ErrDriverNotAvailable, d.id, d.status)
	}

	d.status = DriverBusy
	return nil
}

// MarkAvailable frees the driver after a delivery completes or an assigned
// order is rejected.
func (d *Driver) MarkAvailable() {
	d.status = DriverAvailable
}

// UpdateLocation records the driver's current location.
func (d *Driver) UpdateLocation(location string) error {
	return d.setLocation(location)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("user ID: %w", err)
	}
	d.userID = id
	return nil
}

func (d *Driver) setStatus(s DriverStatus) error {
	if err := s.Validate(); err != nil {
		return err
	}
	d.status = s
	return nil
}

func (d *Driver) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("current location")
	}
	d.currentLocation = location
	return nil
}
