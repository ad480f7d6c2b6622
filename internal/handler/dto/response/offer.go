package response

import (
	"time"

	"order-offer-service/internal/domain/offer"

	"github.com/google/uuid"
)

type OfferResponse struct {
	OfferID   uuid.UUID `json:"offer_id"`
	Rate      int64     `json:"rate"`
	UnlockFee int64     `json:"unlock_fee"`
	Deposit   int64     `json:"deposit"`
	TTL       int64     `json:"ttl"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromOffer(o *offer.Offer) *OfferResponse {
	return &OfferResponse{
		OfferID:   o.ID(),
		Rate:      o.RatePerMinute(),
		UnlockFee: o.UnlockFee(),
		Deposit:   o.Deposit(),
		TTL:       o.TTLSeconds(),
		ExpiresAt: o.ExpiresAt(),
	}
}
