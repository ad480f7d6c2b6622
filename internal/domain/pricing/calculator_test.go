//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"order-offer-service/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOfferTerms(t *testing.T) {
	calc := pricing.NewDefaultCalculator(30, 5)

	zone := pricing.Zone{
		ID:              "center",
		PriceMultiplier: 10,
		PriceUnlock:     50,
		DefaultDeposit:  1000,
		OfferTTLSeconds: 600,
	}
	coeffs := &pricing.Coefficients{Surge: 2.0, LowChargeDiscount: 0.5}

	tests := []struct {
		name     string
		vehicle  pricing.Vehicle
		user     pricing.UserProfile
		coeffs   *pricing.Coefficients
		expected pricing.Terms
	}{
		{
			name:     "low charge applies surge then discount",
			vehicle:  pricing.Vehicle{Charge: 5},
			user:     pricing.DefaultUserProfile(),
			coeffs:   coeffs,
			expected: pricing.Terms{RatePerMinute: 10, UnlockFee: 50, Deposit: 1000, TTLSeconds: 600},
		},
		{
			name:     "charge at threshold gets surge only",
			vehicle:  pricing.Vehicle{Charge: 30},
			user:     pricing.DefaultUserProfile(),
			coeffs:   coeffs,
			expected: pricing.Terms{RatePerMinute: 20, UnlockFee: 50, Deposit: 1000, TTLSeconds: 600},
		},
		{
			name:     "charge just below threshold is discounted",
			vehicle:  pricing.Vehicle{Charge: 29},
			user:     pricing.DefaultUserProfile(),
			coeffs:   coeffs,
			expected: pricing.Terms{RatePerMinute: 10, UnlockFee: 50, Deposit: 1000, TTLSeconds: 600},
		},
		{
			name:     "missing coefficients keep base rate",
			vehicle:  pricing.Vehicle{Charge: 5},
			user:     pricing.DefaultUserProfile(),
			coeffs:   nil,
			expected: pricing.Terms{RatePerMinute: 10, UnlockFee: 50, Deposit: 1000, TTLSeconds: 600},
		},
		{
			name:     "trusted user pays no deposit",
			vehicle:  pricing.Vehicle{Charge: 90},
			user:     pricing.UserProfile{Trusted: true},
			coeffs:   nil,
			expected: pricing.Terms{RatePerMinute: 10, UnlockFee: 50, Deposit: 0, TTLSeconds: 600},
		},
		{
			name:     "subscriber pays no unlock fee",
			vehicle:  pricing.Vehicle{Charge: 90},
			user:     pricing.UserProfile{HasSubscription: true},
			coeffs:   nil,
			expected: pricing.Terms{RatePerMinute: 10, UnlockFee: 0, Deposit: 1000, TTLSeconds: 600},
		},
		{
			name:     "fractional results are floored",
			vehicle:  pricing.Vehicle{Charge: 10},
			user:     pricing.DefaultUserProfile(),
			coeffs:   &pricing.Coefficients{Surge: 1.55, LowChargeDiscount: 0.75},
			expected: pricing.Terms{RatePerMinute: 11, UnlockFee: 50, Deposit: 1000, TTLSeconds: 600},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ComputeOfferTerms(tt.vehicle, zone, tt.user, tt.coeffs)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestComputeOfferTerms_Deterministic(t *testing.T) {
	calc := pricing.NewDefaultCalculator(30, 5)
	zone := pricing.Zone{PriceMultiplier: 17, PriceUnlock: 42, DefaultDeposit: 1000, OfferTTLSeconds: 500}
	coeffs := &pricing.Coefficients{Surge: 1.3, LowChargeDiscount: 0.9}

	first := calc.ComputeOfferTerms(pricing.Vehicle{Charge: 12}, zone, pricing.DefaultUserProfile(), coeffs)
	for range 10 {
		assert.Equal(t, first, calc.ComputeOfferTerms(pricing.Vehicle{Charge: 12}, zone, pricing.DefaultUserProfile(), coeffs))
	}
}

func TestComputeElapsedCharge(t *testing.T) {
	calc := pricing.NewDefaultCalculator(30, 5)
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		elapsed  time.Duration
		rate     int64
		unlock   int64
		expected int64
	}{
		{name: "two minutes at 60 per minute", elapsed: 120 * time.Second, rate: 60, unlock: 10, expected: 130},
		{name: "below minimum is free", elapsed: 2 * time.Second, rate: 60, unlock: 10, expected: 0},
		{name: "just below minimum is free", elapsed: 4*time.Second + 999*time.Millisecond, rate: 60, unlock: 10, expected: 0},
		{name: "exactly minimum is billed", elapsed: 5 * time.Second, rate: 60, unlock: 10, expected: 15},
		{name: "partial minute is floored", elapsed: 90 * time.Second, rate: 15, unlock: 0, expected: 22},
		{name: "end before start is zero", elapsed: -30 * time.Second, rate: 60, unlock: 10, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ComputeElapsedCharge(start, start.Add(tt.elapsed), tt.rate, tt.unlock)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestComputeElapsedCharge_MonotoneInTime(t *testing.T) {
	calc := pricing.NewDefaultCalculator(30, 5)
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	var previous int64
	for s := 0; s <= 600; s += 7 {
		total := calc.ComputeElapsedCharge(start, start.Add(time.Duration(s)*time.Second), 23, 50)
		assert.GreaterOrEqual(t, total, previous, "total decreased at %ds", s)
		previous = total
	}
}
