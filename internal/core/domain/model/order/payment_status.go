package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// PaymentStatus represents the settlement state of an order's charges.
// It stays PaymentPending until the full billed total has been collected,
// possibly across several partial payments.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending indicates the order's charges are not fully collected.
	PaymentPending

	// PaymentCompleted indicates the full billed total has been collected.
	PaymentCompleted
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "UNKNOWN",
		PaymentPending:   "PENDING",
		PaymentCompleted: "COMPLETED",
	}
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentCompleted {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the persisted name of the payment status ("PENDING" or
// "COMPLETED"). It implements fmt.Stringer and is safe to call on any value.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
