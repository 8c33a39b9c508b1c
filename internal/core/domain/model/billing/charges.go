package billing

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

const (
	// RatePerUnit is the base charge per shipped quantity unit.
	RatePerUnit = 100.0

	// VipSurcharge is the flat surcharge applied to VIP orders.
	VipSurcharge = 500.0
)

// Charges is the breakdown of an order's monetary amounts.
// It is a value object produced by ComputeCharges; Total is always
// Base plus Surcharge.
type Charges struct {
	Base      float64
	Surcharge float64
	Total     float64
}

// ComputeCharges derives an order's charges from its attributes.
// It is a pure function with no side effects:
//
//	base      = RatePerUnit * quantity
//	surcharge = VipSurcharge if vip, else 0
//	total     = base + surcharge
//
// Returns a validation error if quantity is not greater than 0.
func ComputeCharges(quantity float64, vip bool) (Charges, error) {
	if quantity <= 0 {
		return Charges{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%v is not greater than 0", quantity))
	}

	base := RatePerUnit * quantity
	surcharge := 0.0
	if vip {
		surcharge = VipSurcharge
	}

	return Charges{
		Base:      base,
		Surcharge: surcharge,
		Total:     base + surcharge,
	}, nil
}
