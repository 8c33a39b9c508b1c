package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"
)

// GenerateBillCommandHandler generates the bill for a delivered order.
// The operation is idempotent: repeated calls for the same order return the
// identifier of the bill generated first, never a second bill. The unique
// constraint on the bill's order reference closes the race between concurrent
// callers.
type GenerateBillCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewGenerateBillCommandHandler creates a handler for bill generation.
func NewGenerateBillCommandHandler(uowFactory BillingUoWFactory) GenerateBillCommandHandler {
	return GenerateBillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bill generation command and returns the bill's
// identifier. If the order is already billed the existing bill's identifier
// is returned. Fails with order.ErrOrderNotDelivered when the order has not
// been delivered yet.
func (h GenerateBillCommandHandler) Handle(ctx context.Context, command GenerateBillCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	billedOrder, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if billedOrder.BillGenerated() {
		existing, billErr := uow.BillRepository().GetByOrderID(ctx, billedOrder.ID())
		if billErr != nil {
			return kernel.UUID{}, billErr
		}
		return existing.ID(), nil
	}

	billID, err := generateBillForOrder(ctx, uow, billedOrder, time.Now())
	if err != nil {
		if errors.Is(err, billing.ErrBillAlreadyExists) {
			// Another caller won the race. Its transaction committed the
			// bill, so a fresh read returns it.
			_ = uow.Rollback(ctx)
			return h.existingBillID(ctx, command.OrderID())
		}
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Update(ctx, billedOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return billID, nil
}

// existingBillID reads the committed bill for an order in a fresh
// transaction.
func (h GenerateBillCommandHandler) existingBillID(ctx context.Context, orderID kernel.UUID) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bill, err := uow.BillRepository().GetByOrderID(ctx, orderID)
	if err != nil {
		return kernel.UUID{}, err
	}

	return bill.ID(), nil
}
