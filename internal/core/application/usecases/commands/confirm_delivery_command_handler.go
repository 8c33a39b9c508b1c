package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// ConfirmDeliveryCommandHandler completes the delivery of an in-transit order.
// On a correct code the order becomes delivered, the assignment is closed, the
// driver is released and the bill is generated, all in one transaction. On a
// wrong code the incremented attempt counter is committed so retries cannot
// reset it.
//
// Example:
//
//	handler := NewConfirmDeliveryCommandHandler(uowFactory, publisher)
//	cmd, _ := NewConfirmDeliveryCommand(orderID, "482913")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidDeliveryCode):
//	    log.Println("Wrong code, attempt recorded")
//	case errors.Is(err, order.ErrDeliveryCodeLocked):
//	    log.Println("Too many wrong codes, order locked")
//	case err != nil:
//	    log.Printf("Confirmation failed: %v", err)
//	}
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery
// confirmation. Requires the full UoWFactory because confirmation touches
// orders, assignments, drivers and bills. The publisher may be nil when event
// publishing is disabled.
func NewConfirmDeliveryCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery confirmation command.
// Compares the presented code inside the order aggregate. A mismatch commits
// the attempt counter and returns order.ErrInvalidDeliveryCode or
// order.ErrDeliveryCodeLocked. A match delivers the order, completes the
// assignment, frees the driver and generates the bill atomically.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, command ConfirmDeliveryCommand) error {
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

	now := time.Now()

	deliveredOrder, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	confirmErr := deliveredOrder.ConfirmDelivery(command.Code(), now)
	if errors.Is(confirmErr, order.ErrInvalidDeliveryCode) || errors.Is(confirmErr, order.ErrDeliveryCodeLocked) {
		// The failed attempt must survive, otherwise retrying resets the
		// counter and the lockout never triggers.
		if err = uow.OrderRepository().Update(ctx, deliveredOrder); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}
		return confirmErr
	}
	if confirmErr != nil {
		return confirmErr
	}

	assignment, err := uow.AssignmentRepository().GetByOrderID(ctx, deliveredOrder.ID())
	if err != nil {
		return err
	}

	if err = assignment.Complete(now); err != nil {
		return err
	}

	driver, err := uow.DriverRepository().Get(ctx, assignment.DriverID())
	if err != nil {
		return err
	}

	driver.MarkAvailable()

	if _, err = generateBillForOrder(ctx, uow, deliveredOrder, now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, deliveredOrder); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, assignment); err != nil {
		return err
	}

	if err = uow.DriverRepository().Update(ctx, driver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, deliveredOrder)
	return nil
}

// generateBillForOrder computes the order's charges, persists a new bill and
// marks the order as billed. Returns the new bill's identifier; the caller
// persists the order itself.
func generateBillForOrder(
	ctx context.Context,
	uow BillingUoW,
	billedOrder *order.Order,
	now time.Time,
) (kernel.UUID, error) {
	charges, err := billing.ComputeCharges(billedOrder.Quantity(), billedOrder.IsVip())
	if err != nil {
		return kernel.UUID{}, err
	}

	bill, err := billing.NewBill(kernel.NewUUID(), billedOrder.ID(), charges, now)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = billedOrder.MarkBilled(charges.Total); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.BillRepository().Add(ctx, bill); err != nil {
		return kernel.UUID{}, err
	}

	return bill.ID(), nil
}
