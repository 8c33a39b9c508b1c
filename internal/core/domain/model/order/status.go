package order

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
)

// ErrInvalidTransition is returned when an event is not valid for the order's
// current status. It is never retried by callers; the current status simply
// has no edge for the requested event.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──────> Rejected
//
// Delivered and Rejected are terminal: no event leads out of them.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a client submits an order.
	// Orders in this status are waiting for an admin to assign a driver.
	Pending

	// Assigned indicates a driver has been assigned and a delivery
	// confirmation code has been issued.
	Assigned

	// InTransit indicates the driver has departed the pickup location.
	InTransit

	// Delivered indicates the delivery was confirmed with the matching code.
	// This is a terminal state.
	Delivered

	// Rejected indicates an admin rejected the order before completion.
	// This is a terminal state and always carries a reason.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
		Rejected:  "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
		Rejected:  "rejected",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Assigned, InTransit, Delivered, and Rejected.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status ("pending", "assigned",
// "in_transit", "delivered", "rejected"). It implements fmt.Stringer and is
// safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no event can lead out of the status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Rejected
}

// StatusFromString parses a persisted status name back into a Status.
// Returns a validation error for names that do not denote a valid status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned (admin assigns a driver)
//
// Any other starting status fails with ErrInvalidTransition.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: cannot assign driver to order in status %q", ErrInvalidTransition, s)
	}
	return Assigned, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//   - Assigned -> Rejected
//
// Orders already in transit or in a terminal state cannot be rejected;
// those fail with ErrInvalidTransition.
func (s Status) Reject() (Status, error) {
	if s != Pending && s != Assigned {
		return 0, fmt.Errorf("%w: cannot reject order in status %q", ErrInvalidTransition, s)
	}
	return Rejected, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - Assigned -> InTransit (driver departs pickup)
func (s Status) StartTransit() (Status, error) {
	if s != Assigned {
		return 0, fmt.Errorf("%w: cannot start transit for order in status %q", ErrInvalidTransition, s)
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered (delivery confirmed with matching code)
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, fmt.Errorf("%w: cannot deliver order in status %q", ErrInvalidTransition, s)
	}
	return Delivered, nil
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver assignment.
//
// Business rules:
//   - Pending orders must not have a driver assigned
//   - Assigned, InTransit, and Delivered orders must have a driver assigned
//   - Rejected orders may or may not have one, depending on when the
//     rejection happened
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if s == Rejected {
		return nil
	}

	if hasDriver && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s))
	}

	if !hasDriver && (s == Assigned || s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s))
	}

	return nil
}
