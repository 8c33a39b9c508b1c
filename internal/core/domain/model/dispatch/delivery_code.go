package dispatch

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// deliveryCodeDigits is the length of the numeric delivery confirmation code.
const deliveryCodeDigits = 6

// NewDeliveryCode issues a one-time numeric delivery confirmation code.
// The code is generated from a cryptographic source and shared with the
// client at driver assignment; the driver must present it to confirm the
// delivery.
func NewDeliveryCode() (string, error) {
	limit := big.NewInt(1)
	for range deliveryCodeDigits {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generate delivery code: %w", err)
	}

	return fmt.Sprintf("%0*d", deliveryCodeDigits, n), nil
}
