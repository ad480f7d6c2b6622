//go:build unit || e2e

package builder

import (
	"time"

	"order-offer-service/internal/domain/offer"
	"order-offer-service/internal/domain/pricing"
	reqdto "order-offer-service/internal/handler/dto/request"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	ID        uuid.UUID
	UserID    int64
	VehicleID int64
	CreatedAt time.Time
	Terms     pricing.Terms
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ID:        uuid.New(),
		UserID:    7,
		VehicleID: 101,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		Terms:     pricing.Terms{RatePerMinute: 15, UnlockFee: 50, Deposit: 1000, TTLSeconds: 300},
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OfferBuilder) BuildDomain() *offer.Offer {
	return offer.ReconstructOffer(b.ID, b.UserID, b.VehicleID, b.CreatedAt, b.Terms)
}

func (b *OfferBuilder) BuildCreateRequestDTO() reqdto.CreateOfferRequest {
	return reqdto.CreateOfferRequest{UserID: b.UserID, VehicleID: b.VehicleID}
}

func (b *OfferBuilder) BuildStartRequestDTO() reqdto.StartOrderRequest {
	return reqdto.StartOrderRequest{UserID: b.UserID, OfferID: b.ID}
}

// Fluent builder methods
func (b *OfferBuilder) WithUserID(userID int64) *OfferBuilder {
	b.UserID = userID
	return b
}

func (b *OfferBuilder) WithVehicleID(vehicleID int64) *OfferBuilder {
	b.VehicleID = vehicleID
	return b
}

func (b *OfferBuilder) WithCreatedAt(t time.Time) *OfferBuilder {
	b.CreatedAt = t
	return b
}

func (b *OfferBuilder) WithTerms(terms pricing.Terms) *OfferBuilder {
	b.Terms = terms
	return b
}
