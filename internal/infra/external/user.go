package external

import (
	"context"
	"net/http"
	"strconv"

	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/usecase/shared"
)

type UserClient struct {
	client *Client
}

func NewUserClient(client *Client) *UserClient {
	return &UserClient{client: client}
}

type userPayload struct {
	HasSubscription       *bool `json:"has_subscription"`
	LegacyHasSubscription *bool `json:"has_subscribtion"`
	Trusted               bool  `json:"trusted"`
}

func (p userPayload) toProfile() pricing.UserProfile {
	profile := pricing.UserProfile{Trusted: p.Trusted}
	switch {
	case p.HasSubscription != nil:
		profile.HasSubscription = *p.HasSubscription
	case p.LegacyHasSubscription != nil:
		profile.HasSubscription = *p.LegacyHasSubscription
	}
	return profile
}

// GetProfile never fails: any lookup error yields the default profile.
func (u *UserClient) GetProfile(ctx context.Context, userID int64) shared.BestEffort[pricing.UserProfile] {
	var payload userPayload
	err := u.client.call(ctx, http.MethodGet, []string{"users", strconv.FormatInt(userID, 10)}, nil, &payload, nil)
	if err != nil {
		u.client.logger.Warn("users.fallback", "user_id", userID, "error", err.Error())
		return shared.Fallback(pricing.DefaultUserProfile(), err)
	}
	return shared.Fetched(payload.toProfile())
}
