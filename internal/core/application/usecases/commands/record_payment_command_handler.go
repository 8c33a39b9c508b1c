package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// PaymentResult reports the bill's balance after a payment is recorded.
type PaymentResult struct {
	BillID      kernel.UUID
	AmountPaid  float64
	Outstanding float64
	Settled     bool
}

// RecordPaymentCommandHandler records payments against an order's bill.
// Supports partial payments; when the collected amount reaches the billed
// total, the bill settles and the order's payment status completes in the
// same transaction.
type RecordPaymentCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory BillingUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command and returns the resulting balance.
// Fails with order.ErrOrderNotBilled when no bill exists for the order, with
// billing.ErrBillAlreadySettled when the bill is already paid, and with a
// validation error when the amount exceeds the outstanding balance.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, command RecordPaymentCommand) (PaymentResult, error) {
	if err := command.Validate(); err != nil {
		return PaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bill, err := uow.BillRepository().GetByOrderID(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return PaymentResult{}, fmt.Errorf("%w: order %s", order.ErrOrderNotBilled, command.OrderID())
	}
	if err != nil {
		return PaymentResult{}, err
	}

	settled, err := bill.RecordPayment(command.Amount(), time.Now())
	if err != nil {
		return PaymentResult{}, err
	}

	if err = uow.BillRepository().Update(ctx, bill); err != nil {
		return PaymentResult{}, err
	}

	if settled {
		paidOrder, orderErr := uow.OrderRepository().Get(ctx, bill.OrderID())
		if orderErr != nil {
			return PaymentResult{}, orderErr
		}

		if orderErr = paidOrder.CompletePayment(); orderErr != nil {
			return PaymentResult{}, orderErr
		}

		if orderErr = uow.OrderRepository().Update(ctx, paidOrder); orderErr != nil {
			return PaymentResult{}, orderErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return PaymentResult{}, err
	}

	return PaymentResult{
		BillID:      bill.ID(),
		AmountPaid:  bill.AmountPaid(),
		Outstanding: bill.Outstanding(),
		Settled:     settled,
	}, nil
}
