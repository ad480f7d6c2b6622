package commands

import (
	"context"
	"log/slog"

	"order-offer-service/internal/domain/offer"
	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/pkg/clock"
	"order-offer-service/internal/pkg/errs"
	"order-offer-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferCommands interface {
	CreateOffer(ctx context.Context, userID, vehicleID int64) (*offer.Offer, error)
	ConsumeOffer(ctx context.Context, offerID uuid.UUID) error
}

type offerCommandsImpl struct {
	uow      shared.UnitOfWork
	vehicles shared.VehicleService
	zones    shared.ZoneDirectory
	users    shared.UserDirectory
	configs  shared.PriceConfigSource
	calc     pricing.Calculator
	clock    clock.Clock
	logger   *slog.Logger
}

func NewOfferCommands(
	uow shared.UnitOfWork,
	vehicles shared.VehicleService,
	zones shared.ZoneDirectory,
	users shared.UserDirectory,
	configs shared.PriceConfigSource,
	calc pricing.Calculator,
	clock clock.Clock,
	logger *slog.Logger,
) OfferCommands {
	return &offerCommandsImpl{
		uow:      uow,
		vehicles: vehicles,
		zones:    zones,
		users:    users,
		configs:  configs,
		calc:     calc,
		clock:    clock,
		logger:   logger,
	}
}

// CreateOffer quotes an available vehicle for a user. It never locks the vehicle or moves money.
func (c *offerCommandsImpl) CreateOffer(ctx context.Context, userID, vehicleID int64) (*offer.Offer, error) {
	vehicle, err := c.vehicles.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.Available {
		return nil, errs.Wrapf(errs.ErrVehicleUnavailable, "vehicle %d", vehicleID)
	}

	zone, err := c.zones.GetZone(ctx, vehicle.ZoneID)
	if err != nil {
		return nil, err
	}

	user := c.users.GetProfile(ctx, userID)
	coeffs := c.configs.GetCoefficients(ctx)

	terms := c.calc.ComputeOfferTerms(vehicle, zone, user.Value, coeffs.Value)

	o, err := offer.NewOffer(userID, vehicleID, terms, c.clock.Now())
	if err != nil {
		return nil, errs.Wrapf(err, "zone %s", zone.ID)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Create(ctx, o)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.logger.Info("offer.created",
		"offer_id", o.ID().String(),
		"user_id", userID,
		"vehicle_id", vehicleID,
		"zone_id", zone.ID,
		"rate_per_minute", terms.RatePerMinute,
		"unlock_fee", terms.UnlockFee,
		"deposit", terms.Deposit,
		"ttl", terms.TTLSeconds,
		"user_degraded", user.Degraded,
		"config_degraded", coeffs.Degraded)

	return o, nil
}

// ConsumeOffer deletes the offer; a missing offer is not an error.
func (c *offerCommandsImpl) ConsumeOffer(ctx context.Context, offerID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Delete(ctx, offerID)
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
