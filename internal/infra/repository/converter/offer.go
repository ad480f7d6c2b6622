package converter

import (
	"order-offer-service/internal/domain/offer"
	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/infra/query"
	"order-offer-service/internal/pkg/pgconv"
)

func OfferToCreateParams(o *offer.Offer) query.CreateOfferParams {
	return query.CreateOfferParams{
		ID:            pgconv.UUIDToPgtype(o.ID()),
		UserID:        o.UserID(),
		VehicleID:     o.VehicleID(),
		CreatedAt:     pgconv.TimeToPgtype(o.CreatedAt()),
		TtlSeconds:    o.TTLSeconds(),
		RatePerMinute: o.RatePerMinute(),
		UnlockFee:     o.UnlockFee(),
		Deposit:       o.Deposit(),
	}
}

func OfferFromRow(row query.Offers) *offer.Offer {
	return offer.ReconstructOffer(
		pgconv.UUIDFromPgtype(row.ID),
		row.UserID,
		row.VehicleID,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pricing.Terms{
			RatePerMinute: row.RatePerMinute,
			UnlockFee:     row.UnlockFee,
			Deposit:       row.Deposit,
			TTLSeconds:    row.TtlSeconds,
		},
	)
}
