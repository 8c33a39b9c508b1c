package billing_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createUnpaidBill(t *testing.T) *billing.Bill {
	t.Helper()
	charges, err := billing.ComputeCharges(3, false)
	require.NoError(t, err)

	b, err := billing.NewBill(kernel.NewUUID(), kernel.NewUUID(), charges, time.Now())
	require.NoError(t, err)
	require.NotNil(t, b)
	return b
}

func TestNewBill(t *testing.T) {
	validID := kernel.NewUUID()
	validOrderID := kernel.NewUUID()
	now := time.Now()

	t.Run("should create unpaid bill from charges", func(t *testing.T) {
		charges, err := billing.ComputeCharges(2, true)
		require.NoError(t, err)

		b, err := billing.NewBill(validID, validOrderID, charges, now)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.True(t, b.ID().IsEqual(validID))
		assert.True(t, b.OrderID().IsEqual(validOrderID))
		assert.InDelta(t, 200, b.BaseAmount(), 0.001)
		assert.InDelta(t, 500, b.VipCharges(), 0.001)
		assert.InDelta(t, 700, b.TotalAmount(), 0.001)
		assert.Equal(t, billing.BillUnpaid, b.Status())
		assert.Zero(t, b.AmountPaid())
		assert.InDelta(t, 700, b.Outstanding(), 0.001)
		assert.Nil(t, b.PaidAt())
	})

	t.Run("should return error for invalid identifiers", func(t *testing.T) {
		charges, err := billing.ComputeCharges(1, false)
		require.NoError(t, err)

		var invalidID kernel.UUID

		_, err = billing.NewBill(invalidID, validOrderID, charges, now)
		require.Error(t, err)

		_, err = billing.NewBill(validID, invalidID, charges, now)
		require.Error(t, err)
	})

	t.Run("should reject inconsistent charge breakdown", func(t *testing.T) {
		_, err := billing.NewBill(validID, validOrderID, billing.Charges{
			Base:      100,
			Surcharge: 500,
			Total:     500,
		}, now)

		require.Error(t, err)
	})

	t.Run("should reject zero generation time", func(t *testing.T) {
		charges, err := billing.ComputeCharges(1, false)
		require.NoError(t, err)

		_, err = billing.NewBill(validID, validOrderID, charges, time.Time{})
		require.Error(t, err)
	})
}

func TestBill_RecordPayment(t *testing.T) {
	now := time.Now()

	t.Run("should accumulate partial payments", func(t *testing.T) {
		b := createUnpaidBill(t)

		settled, err := b.RecordPayment(120, now)

		require.NoError(t, err)
		assert.False(t, settled)
		assert.InDelta(t, 120, b.AmountPaid(), 0.001)
		assert.InDelta(t, 180, b.Outstanding(), 0.001)
		assert.Equal(t, billing.BillUnpaid, b.Status())
		assert.Nil(t, b.PaidAt())
	})

	t.Run("should settle when payments reach the total", func(t *testing.T) {
		b := createUnpaidBill(t)

		_, err := b.RecordPayment(120, now)
		require.NoError(t, err)

		settled, err := b.RecordPayment(180, now)

		require.NoError(t, err)
		assert.True(t, settled)
		assert.Equal(t, billing.BillPaid, b.Status())
		assert.InDelta(t, 300, b.AmountPaid(), 0.001)
		assert.Zero(t, b.Outstanding())
		require.NotNil(t, b.PaidAt())
		assert.Equal(t, now, *b.PaidAt())
	})

	t.Run("should reject payments exceeding the outstanding balance", func(t *testing.T) {
		b := createUnpaidBill(t)

		_, err := b.RecordPayment(301, now)

		require.Error(t, err)
		assert.Zero(t, b.AmountPaid())
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		b := createUnpaidBill(t)

		_, err := b.RecordPayment(0, now)
		require.Error(t, err)

		_, err = b.RecordPayment(-50, now)
		require.Error(t, err)
	})

	t.Run("should refuse payments on a settled bill", func(t *testing.T) {
		b := createUnpaidBill(t)
		_, err := b.RecordPayment(300, now)
		require.NoError(t, err)

		_, err = b.RecordPayment(1, now)

		require.ErrorIs(t, err, billing.ErrBillAlreadySettled)
	})

	t.Run("should refuse payments on a cancelled bill", func(t *testing.T) {
		b := createUnpaidBill(t)
		require.NoError(t, b.Cancel())

		_, err := b.RecordPayment(100, now)

		require.ErrorIs(t, err, billing.ErrBillCancelled)
	})

	t.Run("should absorb float rounding when settling", func(t *testing.T) {
		b := createUnpaidBill(t)

		// Three payments that only sum to the total within float tolerance.
		for range 3 {
			_, err := b.RecordPayment(100.0000000000001, now)
			require.NoError(t, err)
		}

		assert.Equal(t, billing.BillPaid, b.Status())
		assert.InDelta(t, 300, b.AmountPaid(), 0.001)
	})
}

func TestBill_Cancel(t *testing.T) {
	t.Run("should cancel unpaid bill", func(t *testing.T) {
		b := createUnpaidBill(t)

		require.NoError(t, b.Cancel())
		assert.Equal(t, billing.BillCancelled, b.Status())
	})

	t.Run("should not cancel paid bill", func(t *testing.T) {
		b := createUnpaidBill(t)
		_, err := b.RecordPayment(300, time.Now())
		require.NoError(t, err)

		require.ErrorIs(t, b.Cancel(), billing.ErrBillAlreadySettled)
	})
}

func TestRestoreBill(t *testing.T) {
	t.Run("should round trip full state", func(t *testing.T) {
		b := createUnpaidBill(t)
		_, err := b.RecordPayment(120, time.Now())
		require.NoError(t, err)

		restored, err := billing.RestoreBill(billing.RestoreBillParams{
			ID:          b.ID(),
			OrderID:     b.OrderID(),
			BaseAmount:  b.BaseAmount(),
			VipCharges:  b.VipCharges(),
			TotalAmount: b.TotalAmount(),
			GeneratedAt: b.GeneratedAt(),
			Status:      b.Status(),
			AmountPaid:  b.AmountPaid(),
			PaidAt:      b.PaidAt(),
		})

		require.NoError(t, err)
		assert.True(t, restored.ID().IsEqual(b.ID()))
		assert.InDelta(t, b.AmountPaid(), restored.AmountPaid(), 0.001)
		assert.Equal(t, b.Status(), restored.Status())
	})

	t.Run("should reject paid bill without paid timestamp", func(t *testing.T) {
		b := createUnpaidBill(t)

		_, err := billing.RestoreBill(billing.RestoreBillParams{
			ID:          b.ID(),
			OrderID:     b.OrderID(),
			BaseAmount:  b.BaseAmount(),
			VipCharges:  b.VipCharges(),
			TotalAmount: b.TotalAmount(),
			GeneratedAt: b.GeneratedAt(),
			Status:      billing.BillPaid,
			AmountPaid:  b.TotalAmount(),
		})

		require.Error(t, err)
	})

	t.Run("should reject collected amount above the total", func(t *testing.T) {
		b := createUnpaidBill(t)

		_, err := billing.RestoreBill(billing.RestoreBillParams{
			ID:          b.ID(),
			OrderID:     b.OrderID(),
			BaseAmount:  b.BaseAmount(),
			VipCharges:  b.VipCharges(),
			TotalAmount: b.TotalAmount(),
			GeneratedAt: b.GeneratedAt(),
			Status:      billing.BillUnpaid,
			AmountPaid:  b.TotalAmount() + 1,
		})

		require.Error(t, err)
	})
}

func TestBill_Validate(t *testing.T) {
	t.Run("should reject bill not created via constructor", func(t *testing.T) {
		var b billing.Bill

		require.ErrorIs(t, b.Validate(), billing.ErrBillIsNotConstructed)
	})
}
