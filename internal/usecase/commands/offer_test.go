//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"order-offer-service/internal/domain/offer"
	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/pkg/clock"
	"order-offer-service/internal/pkg/errs"
	"order-offer-service/internal/usecase/commands"
	"order-offer-service/internal/usecase/shared"
	sharedmock "order-offer-service/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type offerDeps struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	offers   *sharedmock.MockOfferRepository
	vehicles *sharedmock.MockVehicleService
	zones    *sharedmock.MockZoneDirectory
	users    *sharedmock.MockUserDirectory
	configs  *sharedmock.MockPriceConfigSource
	cmds     commands.OfferCommands
}

func newOfferDeps(t *testing.T, now time.Time) *offerDeps {
	ctrl := gomock.NewController(t)
	d := &offerDeps{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		offers:   sharedmock.NewMockOfferRepository(ctrl),
		vehicles: sharedmock.NewMockVehicleService(ctrl),
		zones:    sharedmock.NewMockZoneDirectory(ctrl),
		users:    sharedmock.NewMockUserDirectory(ctrl),
		configs:  sharedmock.NewMockPriceConfigSource(ctrl),
	}
	d.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, d.tx)
		}).AnyTimes()
	d.tx.EXPECT().Offers().Return(d.offers).AnyTimes()

	d.cmds = commands.NewOfferCommands(
		d.uow, d.vehicles, d.zones, d.users, d.configs,
		pricing.NewDefaultCalculator(30, 5),
		clock.NewMockClock(now),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return d
}

var testZone = pricing.Zone{ID: "zone-a", PriceMultiplier: 10, PriceUnlock: 50, DefaultDeposit: 1000, OfferTTLSeconds: 300}

func TestCreateOffer(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("success: applies coefficients and user profile", func(t *testing.T) {
		d := newOfferDeps(t, now)
		d.vehicles.EXPECT().GetVehicle(gomock.Any(), int64(101)).
			Return(pricing.Vehicle{ID: 101, ZoneID: "zone-a", Available: true, Charge: 20}, nil)
		d.zones.EXPECT().GetZone(gomock.Any(), "zone-a").Return(testZone, nil)
		d.users.EXPECT().GetProfile(gomock.Any(), int64(7)).
			Return(shared.Fetched(pricing.UserProfile{HasSubscription: true, Trusted: false}))
		d.configs.EXPECT().GetCoefficients(gomock.Any()).
			Return(shared.Fetched(&pricing.Coefficients{Surge: 1.5, LowChargeDiscount: 0.7}))

		var stored *offer.Offer
		d.offers.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *offer.Offer) error {
				stored = o
				return nil
			})

		actual, err := d.cmds.CreateOffer(ctx, 7, 101)

		require.NoError(t, err)
		assert.Same(t, stored, actual)
		// floor(floor(10*1.5)*0.7) = 10
		assert.Equal(t, pricing.Terms{RatePerMinute: 10, UnlockFee: 0, Deposit: 1000, TTLSeconds: 300}, actual.Terms())
		assert.Equal(t, now, actual.CreatedAt())
		assert.Equal(t, now.Add(5*time.Minute), actual.ExpiresAt())
	})

	t.Run("success: degraded lookups fall back to base pricing", func(t *testing.T) {
		d := newOfferDeps(t, now)
		d.vehicles.EXPECT().GetVehicle(gomock.Any(), int64(101)).
			Return(pricing.Vehicle{ID: 101, ZoneID: "zone-a", Available: true, Charge: 90}, nil)
		d.zones.EXPECT().GetZone(gomock.Any(), "zone-a").Return(testZone, nil)
		d.users.EXPECT().GetProfile(gomock.Any(), int64(7)).
			Return(shared.Fallback(pricing.DefaultUserProfile(), errs.ErrExternalServiceUnavailable))
		d.configs.EXPECT().GetCoefficients(gomock.Any()).
			Return(shared.Fallback[*pricing.Coefficients](nil, errs.ErrExternalServiceUnavailable))
		d.offers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		actual, err := d.cmds.CreateOffer(ctx, 7, 101)

		require.NoError(t, err)
		assert.Equal(t, pricing.Terms{RatePerMinute: 10, UnlockFee: 50, Deposit: 1000, TTLSeconds: 300}, actual.Terms())
	})

	t.Run("error: unknown vehicle stops before pricing", func(t *testing.T) {
		d := newOfferDeps(t, now)
		d.vehicles.EXPECT().GetVehicle(gomock.Any(), int64(404)).
			Return(pricing.Vehicle{}, errs.Wrapf(errs.ErrVehicleNotFound, "vehicle %d", 404))

		_, err := d.cmds.CreateOffer(ctx, 7, 404)

		assert.True(t, errs.Is(err, errs.ErrVehicleNotFound))
	})

	t.Run("error: unavailable vehicle is not quoted", func(t *testing.T) {
		d := newOfferDeps(t, now)
		d.vehicles.EXPECT().GetVehicle(gomock.Any(), int64(101)).
			Return(pricing.Vehicle{ID: 101, ZoneID: "zone-a", Available: false, Charge: 90}, nil)
		d.offers.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		actual, err := d.cmds.CreateOffer(ctx, 7, 101)

		assert.True(t, errs.Is(err, errs.ErrVehicleUnavailable))
		assert.Nil(t, actual)
	})

	t.Run("error: zone lookup failure propagates", func(t *testing.T) {
		d := newOfferDeps(t, now)
		d.vehicles.EXPECT().GetVehicle(gomock.Any(), int64(101)).
			Return(pricing.Vehicle{ID: 101, ZoneID: "zone-x", Available: true}, nil)
		d.zones.EXPECT().GetZone(gomock.Any(), "zone-x").
			Return(pricing.Zone{}, errs.Mark(errs.New("zones 503"), errs.ErrExternalServiceUnavailable))

		_, err := d.cmds.CreateOffer(ctx, 7, 101)

		assert.True(t, errs.Is(err, errs.ErrExternalServiceUnavailable))
	})

	t.Run("error: persistence failure is a database error", func(t *testing.T) {
		d := newOfferDeps(t, now)
		d.vehicles.EXPECT().GetVehicle(gomock.Any(), int64(101)).
			Return(pricing.Vehicle{ID: 101, ZoneID: "zone-a", Available: true, Charge: 90}, nil)
		d.zones.EXPECT().GetZone(gomock.Any(), "zone-a").Return(testZone, nil)
		d.users.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(shared.Fetched(pricing.DefaultUserProfile()))
		d.configs.EXPECT().GetCoefficients(gomock.Any()).Return(shared.Fetched[*pricing.Coefficients](nil))
		d.offers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errs.New("connection reset"))

		_, err := d.cmds.CreateOffer(ctx, 7, 101)

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestConsumeOffer(t *testing.T) {
	d := newOfferDeps(t, time.Now())
	offerID := uuid.New()
	d.offers.EXPECT().Delete(gomock.Any(), offerID).Return(nil)

	require.NoError(t, d.cmds.ConsumeOffer(context.Background(), offerID))
}

func TestPurgeExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	d := newOfferDeps(t, now)
	ctrl := gomock.NewController(t)
	settlements := sharedmock.NewMockSettlementRepository(ctrl)
	d.tx.EXPECT().Settlements().Return(settlements).AnyTimes()

	d.offers.EXPECT().DeleteExpired(gomock.Any(), now).Return(int64(3), nil)
	settlements.EXPECT().DeleteExpired(gomock.Any(), now).Return(int64(1), nil)

	m := commands.NewMaintenanceCommands(d.uow, clock.NewMockClock(now), slog.New(slog.NewTextHandler(io.Discard, nil)))
	actual, err := m.PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, commands.PurgeResult{ExpiredOffers: 3, ExpiredSettlements: 1}, actual)
}
