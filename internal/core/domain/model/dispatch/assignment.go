package dispatch

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrAssignmentIsNotConstructed is returned when using an improperly
	// initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New(
		"Assignment must be created via NewAssignment or RestoreAssignment constructor")

	// ErrAssignmentCompleted is returned when mutating an assignment whose
	// delivery has already completed.
	ErrAssignmentCompleted = errors.New("assignment is already completed")
)

// AssignmentStatus mirrors the delivery leg of the order lifecycle.
type AssignmentStatus int

const (
	// AssignmentUnknown represents an invalid or undefined assignment status.
	AssignmentUnknown AssignmentStatus = iota

	// AssignmentActive indicates the driver is assigned but has not departed.
	AssignmentActive

	// AssignmentInTransit indicates the driver has departed the pickup location.
	AssignmentInTransit

	// AssignmentCompleted indicates the delivery was confirmed.
	AssignmentCompleted
)

func getAssignmentStatusStrings() map[AssignmentStatus]string {
	return map[AssignmentStatus]string{
		AssignmentUnknown:   "unknown",
		AssignmentActive:    "assigned",
		AssignmentInTransit: "in_transit",
		AssignmentCompleted: "delivered",
	}
}

// Validate checks if the AssignmentStatus value is valid.
func (s AssignmentStatus) Validate() error {
	if s != AssignmentActive && s != AssignmentInTransit && s != AssignmentCompleted {
		return errs.NewValueIsInvalidErrorWithCause("assignment status is invalid",
			fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

// String returns the persisted name of the assignment status.
func (s AssignmentStatus) String() string {
	if str, ok := getAssignmentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Assignment is the record linking an order to a driver, created when the
// driver is assigned and retained through delivery. It tracks the in-transit
// location reported by the driver and the completion time.
//
// An Assignment exists if and only if its order is in assigned, in_transit,
// or delivered status; that cross-aggregate invariant is enforced by the
// use cases mutating both records in one transaction.
type Assignment struct {
	orderID           kernel.UUID
	driverID          kernel.UUID
	currentLocation   string
	locationUpdatedAt time.Time
	status            AssignmentStatus
	completedAt       *time.Time

	guard guard.ConstructorGuard
}

// NewAssignment creates the assignment record for a freshly assigned order.
// The initial location is the driver's location at assignment time.
func NewAssignment(orderID, driverID kernel.UUID, location string, now time.Time) (*Assignment, error) {
	a := &Assignment{
		status: AssignmentActive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setOrderID(orderID),
		a.setDriverID(driverID),
		a.setLocation(location, now),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignmentParams carries the persisted state of an assignment for
// reconstruction by a repository.
type RestoreAssignmentParams struct {
	OrderID           kernel.UUID
	DriverID          kernel.UUID
	CurrentLocation   string
	LocationUpdatedAt time.Time
	Status            AssignmentStatus
	CompletedAt       *time.Time
}

// RestoreAssignment reconstructs an Assignment from persisted state.
// Intended for repository use only.
func RestoreAssignment(params RestoreAssignmentParams) (*Assignment, error) {
	a := &Assignment{
		completedAt: params.CompletedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setOrderID(params.OrderID),
		a.setDriverID(params.DriverID),
		a.setLocation(params.CurrentLocation, params.LocationUpdatedAt),
		a.setStatus(params.Status),
	); err != nil {
		return nil, err
	}

	if (a.status == AssignmentCompleted) != (a.completedAt != nil) {
		return nil, errs.NewValueIsInvalidError("completion timestamp inconsistent with status")
	}

	return a, nil
}

// Validate ensures the Assignment was properly constructed through one of its
// factory methods.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// OrderID returns the assigned order's identifier.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// DriverID returns the assigned driver's identifier.
func (a *Assignment) DriverID() kernel.UUID {
	return a.driverID
}

// CurrentLocation returns the last reported delivery location.
func (a *Assignment) CurrentLocation() string {
	return a.currentLocation
}

// LocationUpdatedAt returns the time of the last location report.
func (a *Assignment) LocationUpdatedAt() time.Time {
	return a.locationUpdatedAt
}

// Status returns the assignment's status.
func (a *Assignment) Status() AssignmentStatus {
	return a.status
}

// CompletedAt returns the delivery completion time. Nil until completed.
func (a *Assignment) CompletedAt() *time.Time {
	return a.completedAt
}

// Depart records the driver leaving the pickup location, moving the
// assignment to in_transit and updating the reported location.
func (a *Assignment) Depart(location string, now time.Time) error {
	if a.status == AssignmentCompleted {
		return fmt.Errorf("%w: order %s", ErrAssignmentCompleted, a.orderID)
	}

	if err := a.setLocation(location, now); err != nil {
		return err
	}

	a.status = AssignmentInTransit
	return nil
}

// UpdateLocation records a location report from the driver while the
// delivery is underway.
func (a *Assignment) UpdateLocation(location string, now time.Time) error {
	if a.status == AssignmentCompleted {
		return fmt.Errorf("%w: order %s", ErrAssignmentCompleted, a.orderID)
	}

	return a.setLocation(location, now)
}

// Complete records the confirmed delivery, setting the completion time.
func (a *Assignment) Complete(now time.Time) error {
	if a.status == AssignmentCompleted {
		return fmt.Errorf("%w: order %s", ErrAssignmentCompleted, a.orderID)
	}
	if now.IsZero() {
		return errs.NewValueIsRequiredError("completion time")
	}

	a.status = AssignmentCompleted
	a.completedAt = &now
	return nil
}

func (a *Assignment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("order ID: %w", err)
	}
	a.orderID = id
	return nil
}

func (a *Assignment) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("driver ID: %w", err)
	}
	a.driverID = id
	return nil
}

func (a *Assignment) setLocation(location string, now time.Time) error {
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("current location")
	}
	if now.IsZero() {
		return errs.NewValueIsRequiredError("location update time")
	}

	a.currentLocation = location
	a.locationUpdatedAt = now
	return nil
}

func (a *Assignment) setStatus(s AssignmentStatus) error {
	if err := s.Validate(); err != nil {
		return err
	}
	a.status = s
	return nil
}
