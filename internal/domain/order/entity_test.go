//go:build unit

package order_test

import (
	"testing"
	"time"

	"order-offer-service/internal/domain/offer"
	"order-offer-service/internal/domain/order"
	"order-offer-service/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newOffer(t *testing.T) *offer.Offer {
	t.Helper()
	o, err := offer.NewOffer(7, 101, pricing.Terms{RatePerMinute: 60, UnlockFee: 10, Deposit: 500, TTLSeconds: 300}, baseTime)
	require.NoError(t, err)
	return o
}

func TestNewFromOffer(t *testing.T) {
	of := newOffer(t)
	actual := order.NewFromOffer(of, baseTime.Add(time.Minute))

	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.NotEqual(t, of.ID(), actual.ID())
	assert.Equal(t, int64(7), actual.UserID())
	assert.Equal(t, int64(101), actual.VehicleID())
	assert.Equal(t, of.Terms(), actual.Terms())
	assert.Equal(t, order.StatusActive, actual.Status())
	assert.Nil(t, actual.FinishedAt())
	assert.False(t, actual.IsPaymentCleared())
}

func TestOrder_Finish(t *testing.T) {
	t.Run("finishes once", func(t *testing.T) {
		o := order.NewFromOffer(newOffer(t), baseTime)
		require.NoError(t, o.Finish(baseTime.Add(2*time.Minute)))

		assert.Equal(t, order.StatusFinished, o.Status())
		require.NotNil(t, o.FinishedAt())
		assert.Equal(t, baseTime.Add(2*time.Minute), *o.FinishedAt())
	})

	t.Run("second finish is rejected and keeps the first instant", func(t *testing.T) {
		o := order.NewFromOffer(newOffer(t), baseTime)
		require.NoError(t, o.Finish(baseTime.Add(time.Minute)))

		err := o.Finish(baseTime.Add(time.Hour))
		assert.ErrorIs(t, err, order.ErrAlreadyFinished)
		assert.Equal(t, baseTime.Add(time.Minute), *o.FinishedAt())
	})
}

func TestOrder_MarkPaymentCleared(t *testing.T) {
	t.Run("requires a finished order", func(t *testing.T) {
		o := order.NewFromOffer(newOffer(t), baseTime)
		assert.ErrorIs(t, o.MarkPaymentCleared(baseTime), order.ErrNotFinished)
	})

	t.Run("is recorded once", func(t *testing.T) {
		o := order.NewFromOffer(newOffer(t), baseTime)
		require.NoError(t, o.Finish(baseTime.Add(time.Minute)))
		require.NoError(t, o.MarkPaymentCleared(baseTime.Add(2*time.Minute)))
		require.NoError(t, o.MarkPaymentCleared(baseTime.Add(3*time.Minute)))

		assert.Equal(t, baseTime.Add(2*time.Minute), *o.PaymentClearedAt())
	})
}

func TestOrder_Total(t *testing.T) {
	calc := pricing.NewDefaultCalculator(30, 5)

	t.Run("live total uses now while active", func(t *testing.T) {
		o := order.NewFromOffer(newOffer(t), baseTime)
		assert.Equal(t, int64(130), o.Total(calc, baseTime.Add(120*time.Second)))
	})

	t.Run("finished total ignores now", func(t *testing.T) {
		o := order.NewFromOffer(newOffer(t), baseTime)
		require.NoError(t, o.Finish(baseTime.Add(120*time.Second)))
		assert.Equal(t, int64(130), o.Total(calc, baseTime.Add(time.Hour)))
	})

	t.Run("short ride is free", func(t *testing.T) {
		o := order.NewFromOffer(newOffer(t), baseTime)
		require.NoError(t, o.Finish(baseTime.Add(2*time.Second)))
		assert.Equal(t, int64(0), o.Total(calc, baseTime.Add(time.Hour)))
	})
}

func TestOffer_IsExpired(t *testing.T) {
	of := newOffer(t)

	assert.Equal(t, baseTime.Add(300*time.Second), of.ExpiresAt())
	assert.False(t, of.IsExpired(baseTime.Add(299*time.Second)))
	assert.False(t, of.IsExpired(baseTime.Add(300*time.Second)), "expiry instant itself is still valid")
	assert.True(t, of.IsExpired(baseTime.Add(300*time.Second+time.Millisecond)))
}

func TestNewSettlement(t *testing.T) {
	o := order.NewFromOffer(newOffer(t), baseTime)
	s := order.NewSettlement(o, 130, "orders/year=2025/month=03/day=01/x.json", baseTime, 24*time.Hour)

	assert.Equal(t, o.ID(), s.OrderID)
	assert.Equal(t, int64(7), s.UserID)
	assert.Equal(t, int64(130), s.TotalPrice)
	assert.Equal(t, baseTime.Add(24*time.Hour), s.ExpiresAt)
}
