package services

import (
	"errors"

	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/order"
)

// ErrDriverNotFound is returned when no available driver can take the order.
// This occurs when either no drivers are provided or every provided driver is
// already busy with another delivery.
var ErrDriverNotFound = errors.New("driver not found")

// DriverDispatcher is a domain service responsible for selecting a driver for
// a pending order and reserving that driver for the delivery.
//
// Business rules:
//   - The order must be valid and awaiting assignment
//   - Only available drivers are considered
//   - Drivers are tried in the given order; the first available one wins
//   - The selected driver is marked busy as part of selection
//
// Example usage:
//
//	dispatcher := services.NewDriverDispatcher()
//	driver, err := dispatcher.Dispatch(pendingOrder, drivers)
//	if errors.Is(err, services.ErrDriverNotFound) {
//	    // All drivers are busy
//	    return
//	}
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// Dispatch selects an available driver for the order and marks the driver busy.
//
// Returns ErrDriverNotFound if every candidate is busy, or a validation error
// if the order cannot be assigned in its current status.
func (d DriverDispatcher) Dispatch(o *order.Order, drivers []*dispatch.Driver) (*dispatch.Driver, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if _, err := o.Status().Assign(); err != nil {
		return nil, err
	}

	for _, driver := range drivers {
		if err := driver.Validate(); err != nil {
			return nil, err
		}
		if driver.Status() != dispatch.DriverAvailable {
			continue
		}

		if err := driver.MarkBusy(); err != nil {
			return nil, err
		}
		return driver, nil
	}

	return nil, ErrDriverNotFound
}
