package billing_test

import (
	"testing"

	"logistics/internal/core/domain/model/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCharges(t *testing.T) {
	t.Run("should compute charges from quantity and vip flag", func(t *testing.T) {
		testCases := []struct {
			name              string
			quantity          float64
			vip               bool
			expectedBase      float64
			expectedSurcharge float64
			expectedTotal     float64
		}{
			{"single unit", 1, false, 100, 0, 100},
			{"multiple units", 3, false, 300, 0, 300},
			{"fractional quantity", 2.5, false, 250, 0, 250},
			{"vip single unit", 1, true, 100, 500, 600},
			{"vip multiple units", 2, true, 200, 500, 700},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				charges, err := billing.ComputeCharges(tc.quantity, tc.vip)

				require.NoError(t, err)
				assert.InDelta(t, tc.expectedBase, charges.Base, 0.001)
				assert.InDelta(t, tc.expectedSurcharge, charges.Surcharge, 0.001)
				assert.InDelta(t, tc.expectedTotal, charges.Total, 0.001)
			})
		}
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []float64{0, -1} {
			_, err := billing.ComputeCharges(quantity, false)

			require.Error(t, err)
		}
	})
}
