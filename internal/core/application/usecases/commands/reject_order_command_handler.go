package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// RejectOrderCommandHandler rejects an order that has not entered transit.
// When the order already has a driver, the driver is released and the
// delivery assignment is removed in the same transaction.
type RejectOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
// The publisher may be nil when event publishing is disabled.
func NewRejectOrderCommandHandler(
	uowFactory DispatchUoWFactory,
	publisher ports.OrderEventPublisher,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the rejection command.
// Transitions the order to rejected, records the reason, frees the assigned
// driver if any and removes the assignment. Fails with an invalid transition
// error if the order is in transit or already terminal.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rejectedOrder, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	driverID := rejectedOrder.Driver()

	if err = rejectedOrder.Reject(command.Reason()); err != nil {
		return err
	}

	if driverID != nil {
		driver, driverErr := uow.DriverRepository().Get(ctx, *driverID)
		if driverErr != nil {
			return driverErr
		}

		driver.MarkAvailable()

		if err = uow.DriverRepository().Update(ctx, driver); err != nil {
			return err
		}

		if err = uow.AssignmentRepository().Remove(ctx, rejectedOrder.ID()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, rejectedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, rejectedOrder)
	return nil
}
