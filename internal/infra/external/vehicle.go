package external

import (
	"context"
	"net/http"
	"strconv"

	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/pkg/errs"
)

type VehicleClient struct {
	client *Client
}

func NewVehicleClient(client *Client) *VehicleClient {
	return &VehicleClient{client: client}
}

// Charge assumed when the payload leaves it out.
const defaultCharge = 100

type vehiclePayload struct {
	ZoneID    string `json:"zone_id"`
	Available bool   `json:"available"`
	Charge    *int   `json:"charge"`
}

func (p vehiclePayload) toVehicle(vehicleID int64) pricing.Vehicle {
	charge := defaultCharge
	if p.Charge != nil {
		charge = *p.Charge
	}
	return pricing.Vehicle{
		ID:        vehicleID,
		ZoneID:    p.ZoneID,
		Available: p.Available,
		Charge:    charge,
	}
}

// GetVehicle is a single attempt; a failure aborts the caller.
func (v *VehicleClient) GetVehicle(ctx context.Context, vehicleID int64) (pricing.Vehicle, error) {
	var payload vehiclePayload
	id := strconv.FormatInt(vehicleID, 10)
	if err := v.client.call(ctx, http.MethodGet, []string{"vehicles", id}, nil, &payload, errs.ErrVehicleNotFound); err != nil {
		return pricing.Vehicle{}, err
	}
	return payload.toVehicle(vehicleID), nil
}

func (v *VehicleClient) Lock(ctx context.Context, vehicleID int64) error {
	return v.toggle(ctx, vehicleID, "lock")
}

func (v *VehicleClient) Unlock(ctx context.Context, vehicleID int64) error {
	return v.toggle(ctx, vehicleID, "unlock")
}

func (v *VehicleClient) toggle(ctx context.Context, vehicleID int64, action string) error {
	id := strconv.FormatInt(vehicleID, 10)
	return v.client.Critical().Do(ctx, "vehicle."+action, func(ctx context.Context) error {
		var resp successResponse
		if err := v.client.call(ctx, http.MethodPut, []string{"vehicles", id, action}, nil, &resp, errs.ErrVehicleNotFound); err != nil {
			return err
		}
		if !resp.Success {
			return errs.Wrapf(errs.ErrVehicleUnavailable, "vehicle %d %s refused", vehicleID, action)
		}
		return nil
	})
}
