package pricing

// Vehicle is the fleet snapshot needed to quote a ride.
type Vehicle struct {
	ID        int64  `json:"id"`
	ZoneID    string `json:"zone_id"`
	Available bool   `json:"available"`
	Charge    int    `json:"charge"`
}

// Zone is the tariff for a service area.
type Zone struct {
	ID              string `json:"zone_id"`
	PriceMultiplier int64  `json:"price_multiplier"`
	PriceUnlock     int64  `json:"price_unlock"`
	DefaultDeposit  int64  `json:"default_deposit"`
	OfferTTLSeconds int64  `json:"offer_ttl_seconds"`
}

type UserProfile struct {
	HasSubscription bool `json:"has_subscription"`
	Trusted         bool `json:"trusted"`
}

// DefaultUserProfile is used when the user source cannot answer.
func DefaultUserProfile() UserProfile {
	return UserProfile{HasSubscription: false, Trusted: false}
}

// Coefficients are the dynamic multipliers from the price config source.
type Coefficients struct {
	Surge             float64 `json:"surge"`
	LowChargeDiscount float64 `json:"low_charge_discount"`
}

// Terms are the quoted prices copied onto an offer and later an order.
type Terms struct {
	RatePerMinute int64
	UnlockFee     int64
	Deposit       int64
	TTLSeconds    int64
}
