package pricing

import (
	"math"
	"time"
)

type Calculator interface {
	ComputeOfferTerms(vehicle Vehicle, zone Zone, user UserProfile, coeffs *Coefficients) Terms
	ComputeElapsedCharge(start, end time.Time, ratePerMinute, unlockFee int64) int64
}

type DefaultCalculator struct {
	LowChargeThreshold     int
	MinimumBillableSeconds int64
}

func NewDefaultCalculator(lowChargeThreshold int, minimumBillableSeconds int64) *DefaultCalculator {
	return &DefaultCalculator{
		LowChargeThreshold:     lowChargeThreshold,
		MinimumBillableSeconds: minimumBillableSeconds,
	}
}

// ComputeOfferTerms quotes a vehicle in a zone for a user.
// A nil coeffs leaves the zone's base rate untouched.
func (c *DefaultCalculator) ComputeOfferTerms(vehicle Vehicle, zone Zone, user UserProfile, coeffs *Coefficients) Terms {
	rate := zone.PriceMultiplier
	if coeffs != nil {
		rate = scale(rate, coeffs.Surge)
		if vehicle.Charge < c.LowChargeThreshold {
			rate = scale(rate, coeffs.LowChargeDiscount)
		}
	}

	unlockFee := zone.PriceUnlock
	if user.HasSubscription {
		unlockFee = 0
	}

	deposit := zone.DefaultDeposit
	if user.Trusted {
		deposit = 0
	}

	return Terms{
		RatePerMinute: rate,
		UnlockFee:     unlockFee,
		Deposit:       deposit,
		TTLSeconds:    zone.OfferTTLSeconds,
	}
}

// ComputeElapsedCharge bills whole seconds between start and end.
// Rides shorter than the minimum are free, including the unlock fee.
func (c *DefaultCalculator) ComputeElapsedCharge(start, end time.Time, ratePerMinute, unlockFee int64) int64 {
	duration := int64(end.Sub(start) / time.Second)
	if duration < 0 {
		duration = 0
	}
	if duration < c.MinimumBillableSeconds {
		return 0
	}
	return duration*ratePerMinute/60 + unlockFee
}

func scale(value int64, factor float64) int64 {
	return int64(math.Floor(float64(value) * factor))
}
