package external

import (
	"context"
	"net/http"

	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/pkg/cache"
	"order-offer-service/internal/usecase/shared"
)

const priceCoefficientsKey = "price_coeff_settings"

// Missing coefficients are neutral.
type coefficientsPayload struct {
	Surge             *float64 `json:"surge"`
	LowChargeDiscount *float64 `json:"low_charge_discount"`
}

func (p coefficientsPayload) toCoefficients() pricing.Coefficients {
	coeffs := pricing.Coefficients{Surge: 1, LowChargeDiscount: 1}
	if p.Surge != nil {
		coeffs.Surge = *p.Surge
	}
	if p.LowChargeDiscount != nil {
		coeffs.LowChargeDiscount = *p.LowChargeDiscount
	}
	return coeffs
}

type PriceConfigClient struct {
	client *Client
	cache  *cache.ReadThrough[pricing.Coefficients]
}

func NewPriceConfigClient(client *Client, configCache *cache.ReadThrough[pricing.Coefficients]) *PriceConfigClient {
	return &PriceConfigClient{client: client, cache: configCache}
}

// GetCoefficients degrades to nil coefficients; failures are not cached.
func (p *PriceConfigClient) GetCoefficients(ctx context.Context) shared.BestEffort[*pricing.Coefficients] {
	coeffs, err := p.cache.Get(ctx, priceCoefficientsKey, func(ctx context.Context) (pricing.Coefficients, error) {
		var payload coefficientsPayload
		if err := p.client.call(ctx, http.MethodGet, []string{"configs", priceCoefficientsKey}, nil, &payload, nil); err != nil {
			return pricing.Coefficients{}, err
		}
		return payload.toCoefficients(), nil
	})
	if err != nil {
		p.client.logger.Warn("configs.fallback", "error", err.Error())
		return shared.Fallback[*pricing.Coefficients](nil, err)
	}
	return shared.Fetched(&coeffs)
}
