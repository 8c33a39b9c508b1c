package order

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvalidDeliveryCode is returned when a supplied delivery confirmation
	// code does not match the code issued at driver assignment. The order's
	// status is left unchanged; the caller may re-prompt.
	ErrInvalidDeliveryCode = errors.New("delivery code does not match")

	// ErrDeliveryCodeLocked is returned once the delivery code has been
	// mismatched MaxDeliveryCodeAttempts times. Further confirmation attempts
	// are refused until the code is reissued.
	ErrDeliveryCodeLocked = errors.New("delivery code locked after repeated mismatches")

	// ErrOrderNotDelivered is returned when a billing operation requires the
	// order to be in Delivered status.
	ErrOrderNotDelivered = errors.New("order is not delivered")

	// ErrBillAlreadyGenerated is returned when a second bill would be created
	// for an order. Billing is strictly once per order.
	ErrBillAlreadyGenerated = errors.New("bill already generated for order")

	// ErrOrderNotBilled is returned when a payment operation requires that a
	// bill exists for the order.
	ErrOrderNotBilled = errors.New("no bill generated for order")
)

const (
	// MaxDeliveryCodeAttempts is the number of mismatched delivery codes
	// tolerated before the code locks.
	MaxDeliveryCodeAttempts = 3

	// DefaultDeliveryEstimate is the interval between order creation and the
	// estimated delivery time recorded on the order.
	DefaultDeliveryEstimate = 72 * time.Hour
)

// Order represents a shipment request in the system. It is the aggregate root
// that manages the order lifecycle from client submission through driver
// assignment, transit, and delivery or rejection, together with the billing
// state derived from it.
//
// Order maintains these invariants:
//   - Quantity is positive; pickup and delivery locations are non-empty
//   - Status transitions follow the state machine defined on Status
//   - The actual delivery timestamp is set if and only if the order is Delivered
//   - The rejection reason is non-empty if and only if the order is Rejected
//   - The total amount, once set, is immutable, and it is set exactly when a
//     bill has been generated
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. It can only be created through
// NewOrder (for new submissions) or RestoreOrder (for persistence).
type Order struct {
	id       kernel.UUID
	clientID kernel.UUID

	pickup   string
	delivery string
	itemType string
	quantity float64
	vip      bool

	status            Status
	createdAt         time.Time
	estimatedDelivery time.Time
	actualDelivery    *time.Time

	driverID     *kernel.UUID
	deliveryCode string
	codeAttempts int

	paymentStatus   PaymentStatus
	billGenerated   bool
	totalAmount     *float64
	rejectionReason string

	isConstructed bool
}

// NewOrder creates a new Order from a client submission. The order starts in
// Pending status with payment pending, no driver, and an estimated delivery
// time derived from the creation time.
//
// Parameters:
//   - id: unique identifier for the order
//   - clientID: identifier of the submitting client
//   - pickup, delivery: non-empty location strings
//   - itemType: non-empty item description
//   - quantity: shipped quantity, must be greater than 0
//   - vip: whether the VIP surcharge applies at billing time
//   - now: creation time, used for created and estimated delivery timestamps
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	pickup, delivery, itemType string,
	quantity float64,
	vip bool,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		vip:           vip,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setPickup(pickup),
		o.setDelivery(delivery),
		o.setItemType(itemType),
		o.setQuantity(quantity),
		o.setCreatedAt(now),
	); err != nil {
		return nil, err
	}

	o.estimatedDelivery = o.createdAt.Add(DefaultDeliveryEstimate)
	return o, nil
}

// RestoreOrderParams carries the persisted state of an order for
// reconstruction by a repository.
type RestoreOrderParams struct {
	ID                kernel.UUID
	ClientID          kernel.UUID
	Pickup            string
	Delivery          string
	ItemType          string
	Quantity          float64
	Vip               bool
	Status            Status
	CreatedAt         time.Time
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
	DriverID          *kernel.UUID
	DeliveryCode      string
	CodeAttempts      int
	PaymentStatus     PaymentStatus
	BillGenerated     bool
	TotalAmount       *float64
	RejectionReason   string
}

// RestoreOrder reconstructs an Order from persisted state, re-validating the
// aggregate invariants. It is intended for repository use only; new orders
// must go through NewOrder.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o := &Order{
		vip:               params.Vip,
		estimatedDelivery: params.EstimatedDelivery,
		actualDelivery:    params.ActualDelivery,
		driverID:          params.DriverID,
		deliveryCode:      params.DeliveryCode,
		codeAttempts:      params.CodeAttempts,
		billGenerated:     params.BillGenerated,
		totalAmount:       params.TotalAmount,
		rejectionReason:   params.RejectionReason,
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setClientID(params.ClientID),
		o.setPickup(params.Pickup),
		o.setDelivery(params.Delivery),
		o.setItemType(params.ItemType),
		o.setQuantity(params.Quantity),
		o.setCreatedAt(params.CreatedAt),
		o.setStatus(params.Status),
		o.setPaymentStatus(params.PaymentStatus),
	); err != nil {
		return nil, err
	}

	if err := o.status.ValidateCanHaveDriver(o.driverID != nil); err != nil {
		return nil, err
	}
	if (o.status == Delivered) != (o.actualDelivery != nil) {
		return nil, errs.NewValueIsInvalidError("actual delivery timestamp inconsistent with status")
	}
	if (o.status == Rejected) != (o.rejectionReason != "") {
		return nil, errs.NewValueIsInvalidError("rejection reason inconsistent with status")
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through one of
// its factory methods. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the submitting client.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Pickup returns the pickup location.
func (o *Order) Pickup() string {
	return o.pickup
}

// Delivery returns the delivery location.
func (o *Order) Delivery() string {
	return o.delivery
}

// ItemType returns the shipped item description.
func (o *Order) ItemType() string {
	return o.itemType
}

// Quantity returns the shipped quantity.
func (o *Order) Quantity() float64 {
	return o.quantity
}

// IsVip reports whether the VIP surcharge applies to this order.
func (o *Order) IsVip() bool {
	return o.vip
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// EstimatedDelivery returns the estimated delivery time.
func (o *Order) EstimatedDelivery() time.Time {
	return o.estimatedDelivery
}

// ActualDelivery returns the confirmed delivery time.
// Returns nil unless the order is Delivered.
func (o *Order) ActualDelivery() *time.Time {
	return o.actualDelivery
}

// Driver returns the assigned driver's ID. Returns nil if no driver is assigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// DeliveryCode returns the confirmation code issued at driver assignment.
// Empty until a driver is assigned.
func (o *Order) DeliveryCode() string {
	return o.deliveryCode
}

// DeliveryCodeAttempts returns the number of mismatched confirmation attempts
// recorded against the current code.
func (o *Order) DeliveryCodeAttempts() int {
	return o.codeAttempts
}

// PaymentStatus returns the settlement state of the order's charges.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// BillGenerated reports whether a bill has been generated for the order.
func (o *Order) BillGenerated() bool {
	return o.billGenerated
}

// TotalAmount returns the billed total. Returns nil until a bill is generated.
func (o *Order) TotalAmount() *float64 {
	return o.totalAmount
}

// RejectionReason returns the reason recorded at rejection.
// Empty unless the order is Rejected.
func (o *Order) RejectionReason() string {
	return o.rejectionReason
}

// Assign assigns the order to a driver and issues the delivery confirmation
// code, moving the order to Assigned status.
//
// Business rules:
//   - The driver ID must be valid and the code non-empty
//   - The order must be in Pending status
//
// Assigning resets the mismatch counter for the new code.
func (o *Order) Assign(driverID kernel.UUID, deliveryCode string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if deliveryCode == "" {
		return errs.NewValueIsRequiredError("deliveryCode")
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.deliveryCode = deliveryCode
	o.codeAttempts = 0
	return nil
}

// Reject moves the order to Rejected status with the given reason.
//
// Business rules:
//   - The reason must be non-empty after trimming
//   - The order must be in Pending or Assigned status
//
// The reason is stored verbatim as supplied.
func (o *Order) Reject(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.rejectionReason = reason
	return nil
}

// StartTransit moves the order to InTransit status when the driver departs
// the pickup location. The order must be in Assigned status.
func (o *Order) StartTransit() error {
	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ConfirmDelivery verifies the supplied confirmation code and, on a match,
// moves the order to Delivered status and records the delivery time.
//
// The code comparison is constant-structure (exact match only). On mismatch
// the order's status is left unchanged, the mismatch counter is incremented,
// and ErrInvalidDeliveryCode is returned; after MaxDeliveryCodeAttempts
// mismatches the code locks and further attempts fail with
// ErrDeliveryCodeLocked. The incremented counter must be persisted by the
// caller even though the operation failed.
func (o *Order) ConfirmDelivery(code string, now time.Time) error {
	if _, err := o.status.Deliver(); err != nil {
		return err
	}
	if now.IsZero() {
		return errs.NewValueIsRequiredError("delivery time")
	}

	if o.codeAttempts >= MaxDeliveryCodeAttempts {
		return fmt.Errorf("%w: order %s", ErrDeliveryCodeLocked, o.id)
	}

	if subtle.ConstantTimeCompare([]byte(code), []byte(o.deliveryCode)) != 1 {
		o.codeAttempts++
		if o.codeAttempts >= MaxDeliveryCodeAttempts {
			return fmt.Errorf("%w: order %s", ErrDeliveryCodeLocked, o.id)
		}
		return fmt.Errorf("%w: order %s", ErrInvalidDeliveryCode, o.id)
	}

	o.status = Delivered
	o.actualDelivery = &now
	o.codeAttempts = 0
	return nil
}

// MarkBilled records the billed total on the order and flags bill generation.
//
// Business rules:
//   - The order must be Delivered
//   - A bill is generated at most once per order
//   - The total must be greater than 0 and is immutable once set
func (o *Order) MarkBilled(total float64) error {
	if o.status != Delivered {
		return fmt.Errorf("%w: order %s is %q", ErrOrderNotDelivered, o.id, o.status)
	}
	if o.billGenerated {
		return fmt.Errorf("%w: order %s", ErrBillAlreadyGenerated, o.id)
	}
	if total <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total amount",
			fmt.Errorf("%v is not greater than 0", total))
	}

	o.billGenerated = true
	o.totalAmount = &total
	return nil
}

// CompletePayment marks the order's charges as fully collected.
// A bill must have been generated first.
func (o *Order) CompletePayment() error {
	if !o.billGenerated {
		return fmt.Errorf("%w: order %s", ErrOrderNotBilled, o.id)
	}

	o.paymentStatus = PaymentCompleted
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("client ID: %w", err)
	}
	o.clientID = id
	return nil
}

func (o *Order) setPickup(pickup string) error {
	if strings.TrimSpace(pickup) == "" {
		return errs.NewValueIsRequiredError("pickup location")
	}
	o.pickup = pickup
	return nil
}

func (o *Order) setDelivery(delivery string) error {
	if strings.TrimSpace(delivery) == "" {
		return errs.NewValueIsRequiredError("delivery location")
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setItemType(itemType string) error {
	if strings.TrimSpace(itemType) == "" {
		return errs.NewValueIsRequiredError("item type")
	}
	o.itemType = itemType
	return nil
}

func (o *Order) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%v is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setCreatedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = t
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

func (o *Order) setPaymentStatus(s PaymentStatus) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.paymentStatus = s
	return nil
}
