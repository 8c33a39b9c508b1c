package billing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrBillIsNotConstructed is returned when a Bill instance was not created
	// through the NewBill or RestoreBill factory methods.
	ErrBillIsNotConstructed = errors.New("Bill must be created via NewBill or RestoreBill constructor")

	// ErrBillAlreadySettled is returned when a payment is recorded against a
	// bill that is already fully paid.
	ErrBillAlreadySettled = errors.New("bill is already paid")

	// ErrBillCancelled is returned when a payment is recorded against a
	// cancelled bill.
	ErrBillCancelled = errors.New("bill is cancelled")

	// ErrBillAlreadyExists is returned by storage when a second bill is
	// persisted for the same order. The unique constraint on the order
	// reference guarantees at most one bill per order.
	ErrBillAlreadyExists = errors.New("bill already exists for order")
)

// paymentEpsilon absorbs float rounding when comparing collected amounts
// against the billed total.
const paymentEpsilon = 1e-9

// BillStatus represents the settlement state of a bill.
type BillStatus int

const (
	// BillUnknown represents an invalid or undefined bill status.
	BillUnknown BillStatus = iota

	// BillUnpaid indicates the bill's total is not fully collected yet.
	BillUnpaid

	// BillPaid indicates the full total has been collected.
	BillPaid

	// BillCancelled indicates the bill was voided and accepts no payments.
	BillCancelled
)

func getBillStatusStrings() map[BillStatus]string {
	return map[BillStatus]string{
		BillUnknown:   "unknown",
		BillUnpaid:    "unpaid",
		BillPaid:      "paid",
		BillCancelled: "cancelled",
	}
}

// Validate checks if the BillStatus value is valid.
func (s BillStatus) Validate() error {
	if s != BillUnpaid && s != BillPaid && s != BillCancelled {
		return errs.NewValueIsInvalidErrorWithCause("bill status is invalid",
			fmt.Errorf("%d is not a valid bill status", s))
	}
	return nil
}

// String returns the persisted name of the bill status.
func (s BillStatus) String() string {
	if str, ok := getBillStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Bill is the monetary record derived from an order's charges. Exactly one
// bill exists per order, created when the delivery is confirmed.
//
// Bill maintains these invariants:
//   - Total amount equals base amount plus VIP surcharge
//   - Collected payments never exceed the total
//   - The paid timestamp is set if and only if the bill is paid
type Bill struct {
	id      kernel.UUID
	orderID kernel.UUID

	baseAmount  float64
	vipCharges  float64
	totalAmount float64

	generatedAt time.Time
	status      BillStatus
	amountPaid  float64
	paidAt      *time.Time

	isConstructed bool
}

// NewBill creates a new unpaid Bill for an order from computed charges.
//
// Parameters:
//   - id: unique identifier for the bill
//   - orderID: the billed order
//   - charges: breakdown produced by ComputeCharges
//   - generatedAt: bill generation time
//
// Returns a validation error if any identifier is invalid, the charge
// breakdown is inconsistent, or the generation time is missing.
func NewBill(id, orderID kernel.UUID, charges Charges, generatedAt time.Time) (*Bill, error) {
	b := &Bill{
		status:        BillUnpaid,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setCharges(charges),
		b.setGeneratedAt(generatedAt),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBillParams carries the persisted state of a bill for reconstruction
// by a repository.
type RestoreBillParams struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	BaseAmount  float64
	VipCharges  float64
	TotalAmount float64
	GeneratedAt time.Time
	Status      BillStatus
	AmountPaid  float64
	PaidAt      *time.Time
}

// RestoreBill reconstructs a Bill from persisted state, re-validating the
// aggregate invariants. Intended for repository use only.
func RestoreBill(params RestoreBillParams) (*Bill, error) {
	b := &Bill{
		amountPaid:    params.AmountPaid,
		paidAt:        params.PaidAt,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(params.ID),
		b.setOrderID(params.OrderID),
		b.setCharges(Charges{
			Base:      params.BaseAmount,
			Surcharge: params.VipCharges,
			Total:     params.TotalAmount,
		}),
		b.setGeneratedAt(params.GeneratedAt),
		b.setStatus(params.Status),
	); err != nil {
		return nil, err
	}

	if (b.status == BillPaid) != (b.paidAt != nil) {
		return nil, errs.NewValueIsInvalidError("paid timestamp inconsistent with status")
	}
	if b.amountPaid < 0 || b.amountPaid > b.totalAmount+paymentEpsilon {
		return nil, errs.NewValueIsOutOfRangeError("amount paid", b.amountPaid, 0, b.totalAmount)
	}

	return b, nil
}

// Validate ensures the Bill instance was properly constructed through one of
// its factory methods.
func (b *Bill) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBillIsNotConstructed
	}
	return nil
}

// ID returns the bill's unique identifier.
func (b *Bill) ID() kernel.UUID {
	return b.id
}

// OrderID returns the identifier of the billed order.
func (b *Bill) OrderID() kernel.UUID {
	return b.orderID
}

// BaseAmount returns the quantity-derived portion of the charges.
func (b *Bill) BaseAmount() float64 {
	return b.baseAmount
}

// VipCharges returns the VIP surcharge portion of the charges.
func (b *Bill) VipCharges() float64 {
	return b.vipCharges
}

// TotalAmount returns the billed total.
func (b *Bill) TotalAmount() float64 {
	return b.totalAmount
}

// GeneratedAt returns the bill generation time.
func (b *Bill) GeneratedAt() time.Time {
	return b.generatedAt
}

// Status returns the settlement state of the bill.
func (b *Bill) Status() BillStatus {
	return b.status
}

// AmountPaid returns the sum of payments collected so far.
func (b *Bill) AmountPaid() float64 {
	return b.amountPaid
}

// PaidAt returns the time the bill became fully paid. Nil until then.
func (b *Bill) PaidAt() *time.Time {
	return b.paidAt
}

// Outstanding returns the remaining amount to collect.
func (b *Bill) Outstanding() float64 {
	remaining := b.totalAmount - b.amountPaid
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RecordPayment adds a payment portion to the bill.
//
// Business rules:
//   - The bill must be unpaid; settled bills fail with ErrBillAlreadySettled,
//     cancelled bills with ErrBillCancelled
//   - The amount must be greater than 0 and must not exceed the outstanding
//     balance
//
// When the accumulated payments reach the total, the bill becomes paid and
// the paid timestamp is recorded. Returns true when this payment settled
// the bill.
func (b *Bill) RecordPayment(amount float64, now time.Time) (bool, error) {
	switch b.status {
	case BillPaid:
		return false, fmt.Errorf("%w: bill %s", ErrBillAlreadySettled, b.id)
	case BillCancelled:
		return false, fmt.Errorf("%w: bill %s", ErrBillCancelled, b.id)
	}

	if amount <= 0 {
		return false, errs.NewValueIsInvalidErrorWithCause("payment amount",
			fmt.Errorf("%v is not greater than 0", amount))
	}
	if amount > b.Outstanding()+paymentEpsilon {
		return false, errs.NewValueIsOutOfRangeError("payment amount", amount, 0, b.Outstanding())
	}
	if now.IsZero() {
		return false, errs.NewValueIsRequiredError("payment time")
	}

	b.amountPaid += amount
	if math.Abs(b.totalAmount-b.amountPaid) <= paymentEpsilon {
		b.amountPaid = b.totalAmount
		b.status = BillPaid
		b.paidAt = &now
		return true, nil
	}

	return false, nil
}

// Cancel voids the bill. Paid bills cannot be cancelled.
func (b *Bill) Cancel() error {
	if b.status == BillPaid {
		return fmt.Errorf("%w: bill %s", ErrBillAlreadySettled, b.id)
	}

	b.status = BillCancelled
	return nil
}

func (b *Bill) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bill) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("order ID: %w", err)
	}
	b.orderID = id
	return nil
}

func (b *Bill) setCharges(charges Charges) error {
	if charges.Base <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("base amount",
			fmt.Errorf("%v is not greater than 0", charges.Base))
	}
	if charges.Surcharge < 0 {
		return errs.NewValueIsInvalidErrorWithCause("vip charges",
			fmt.Errorf("%v is negative", charges.Surcharge))
	}
	if math.Abs(charges.Total-(charges.Base+charges.Surcharge)) > paymentEpsilon {
		return errs.NewValueIsInvalidErrorWithCause("total amount",
			fmt.Errorf("%v is not the sum of base %v and surcharge %v",
				charges.Total, charges.Base, charges.Surcharge))
	}

	b.baseAmount = charges.Base
	b.vipCharges = charges.Surcharge
	b.totalAmount = charges.Total
	return nil
}

func (b *Bill) setGeneratedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("generated at")
	}
	b.generatedAt = t
	return nil
}

func (b *Bill) setStatus(s BillStatus) error {
	if err := s.Validate(); err != nil {
		return err
	}
	b.status = s
	return nil
}
