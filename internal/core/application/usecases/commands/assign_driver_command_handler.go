package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// AssignDriverCommandHandler assigns an explicitly chosen driver to an order.
// Marks the driver busy, issues a delivery confirmation code and opens the
// delivery assignment, all within a single transaction.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory, publisher)
//	cmd, _ := NewAssignDriverCommand(orderID, driverID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAssignDriverCommandHandler creates a handler for explicit driver
// assignment. The publisher may be nil when event publishing is disabled.
func NewAssignDriverCommandHandler(
	uowFactory DispatchUoWFactory,
	publisher ports.OrderEventPublisher,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the explicit assignment command.
// Loads the order and the chosen driver, marks the driver busy and records
// the assignment. Fails with dispatch.ErrDriverNotAvailable if the driver is
// already busy, or with an invalid transition error if the order is not
// pending.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
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

	assignedOrder, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	driver, err := uow.DriverRepository().Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if err = driver.MarkBusy(); err != nil {
		return err
	}

	if err = assignDriverToOrder(ctx, uow, assignedOrder, driver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, assignedOrder)
	return nil
}

// assignDriverToOrder records an assignment between an order and a driver that
// is already marked busy. Issues the one-time delivery code, transitions the
// order to assigned and persists the order, the assignment and the driver.
func assignDriverToOrder(
	ctx context.Context,
	uow DispatchUoW,
	assignedOrder *order.Order,
	driver *dispatch.Driver,
) error {
	deliveryCode, err := dispatch.NewDeliveryCode()
	if err != nil {
		return err
	}

	if err = assignedOrder.Assign(driver.ID(), deliveryCode); err != nil {
		return err
	}

	assignment, err := dispatch.NewAssignment(
		assignedOrder.ID(),
		driver.ID(),
		driver.CurrentLocation(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, assignedOrder); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Add(ctx, assignment); err != nil {
		return err
	}

	return uow.DriverRepository().Update(ctx, driver)
}
