package offer

import (
	"time"

	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidTTL = errs.New("offer ttl must be positive")

// Offer is an immutable price quote for one vehicle and one user.
type Offer struct {
	id        uuid.UUID
	userID    int64
	vehicleID int64
	createdAt time.Time
	terms     pricing.Terms
}

func NewOffer(userID, vehicleID int64, terms pricing.Terms, now time.Time) (*Offer, error) {
	if terms.TTLSeconds <= 0 {
		return nil, ErrInvalidTTL
	}
	return &Offer{
		id:        uuid.New(),
		userID:    userID,
		vehicleID: vehicleID,
		createdAt: now.UTC(),
		terms:     terms,
	}, nil
}

func ReconstructOffer(id uuid.UUID, userID, vehicleID int64, createdAt time.Time, terms pricing.Terms) *Offer {
	return &Offer{
		id:        id,
		userID:    userID,
		vehicleID: vehicleID,
		createdAt: createdAt.UTC(),
		terms:     terms,
	}
}

func (o *Offer) ID() uuid.UUID        { return o.id }
func (o *Offer) UserID() int64        { return o.userID }
func (o *Offer) VehicleID() int64     { return o.vehicleID }
func (o *Offer) CreatedAt() time.Time { return o.createdAt }
func (o *Offer) Terms() pricing.Terms { return o.terms }
func (o *Offer) RatePerMinute() int64 { return o.terms.RatePerMinute }
func (o *Offer) UnlockFee() int64     { return o.terms.UnlockFee }
func (o *Offer) Deposit() int64       { return o.terms.Deposit }
func (o *Offer) TTLSeconds() int64    { return o.terms.TTLSeconds }

func (o *Offer) ExpiresAt() time.Time {
	return o.createdAt.Add(time.Duration(o.terms.TTLSeconds) * time.Second)
}

// IsExpired reports whether now is strictly past the expiry instant.
func (o *Offer) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt())
}

func (o *Offer) BelongsTo(userID int64) bool {
	return o.userID == userID
}
