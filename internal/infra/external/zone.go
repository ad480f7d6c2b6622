package external

import (
	"context"
	"net/http"

	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/pkg/cache"
	"order-offer-service/internal/pkg/errs"
)

// Tariff used for fields a zone payload leaves out.
const (
	defaultPriceMultiplier = 15
	defaultPriceUnlock     = 50
	defaultDeposit         = 1000
	defaultOfferTTLSeconds = 300
)

type zonePayload struct {
	ZoneID          string `json:"zone_id"`
	PriceMultiplier *int64 `json:"price_multiplier"`
	PriceUnlock     *int64 `json:"price_unlock"`
	DefaultDeposit  *int64 `json:"default_deposit"`
	OfferTTLSeconds *int64 `json:"offer_ttl_seconds"`
}

func (p zonePayload) toZone(zoneID string) pricing.Zone {
	return pricing.Zone{
		ID:              zoneID,
		PriceMultiplier: valueOr(p.PriceMultiplier, defaultPriceMultiplier),
		PriceUnlock:     valueOr(p.PriceUnlock, defaultPriceUnlock),
		DefaultDeposit:  valueOr(p.DefaultDeposit, defaultDeposit),
		OfferTTLSeconds: valueOr(p.OfferTTLSeconds, defaultOfferTTLSeconds),
	}
}

type ZoneClient struct {
	client *Client
	cache  *cache.ReadThrough[pricing.Zone]
}

func NewZoneClient(client *Client, zoneCache *cache.ReadThrough[pricing.Zone]) *ZoneClient {
	return &ZoneClient{client: client, cache: zoneCache}
}

func (z *ZoneClient) GetZone(ctx context.Context, zoneID string) (pricing.Zone, error) {
	return z.cache.Get(ctx, zoneID, func(ctx context.Context) (pricing.Zone, error) {
		var payload zonePayload
		if err := z.client.call(ctx, http.MethodGet, []string{"zones", zoneID}, nil, &payload, errs.ErrZoneNotFound); err != nil {
			return pricing.Zone{}, err
		}
		return payload.toZone(zoneID), nil
	})
}

func valueOr(v *int64, fallback int64) int64 {
	if v == nil {
		return fallback
	}
	return *v
}
