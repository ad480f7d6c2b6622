//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"order-offer-service/internal/domain/offer"
	"order-offer-service/internal/domain/order"
	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/infra"
	"order-offer-service/internal/pkg/clock"
	"order-offer-service/internal/pkg/errs"
	"order-offer-service/internal/usecase/queries"
	sharedmock "order-offer-service/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var createdAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

var terms = pricing.Terms{RatePerMinute: 60, UnlockFee: 10, Deposit: 500, TTLSeconds: 300}

func notFound() error {
	return infra.WrapRepoErr(slog.New(slog.NewTextHandler(io.Discard, nil)), infra.KindNotFound, "not found", nil)
}

func newReads(t *testing.T) (*sharedmock.MockUnitOfWork, *sharedmock.MockOfferRepository, *sharedmock.MockOrderRepository) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	offers := sharedmock.NewMockOfferRepository(ctrl)
	orders := sharedmock.NewMockOrderRepository(ctrl)
	uow.EXPECT().Reads().Return(tx).AnyTimes()
	tx.EXPECT().Offers().Return(offers).AnyTimes()
	tx.EXPECT().Orders().Return(orders).AnyTimes()
	return uow, offers, orders
}

func TestGetValidOffer(t *testing.T) {
	stored := offer.ReconstructOffer(uuid.New(), 7, 101, createdAt, terms)

	tests := []struct {
		name      string
		userID    int64
		now       time.Time
		findErr   error
		expectErr error
	}{
		{name: "valid well before expiry", userID: 7, now: createdAt.Add(time.Minute)},
		{name: "valid exactly at expiry", userID: 7, now: createdAt.Add(300 * time.Second)},
		{name: "expired one second after", userID: 7, now: createdAt.Add(301 * time.Second), expectErr: errs.ErrOfferExpired},
		{name: "other user sees not found", userID: 8, now: createdAt, expectErr: errs.ErrOfferNotFound},
		{name: "missing offer", userID: 7, now: createdAt, findErr: notFound(), expectErr: errs.ErrOfferNotFound},
		{name: "storage failure", userID: 7, now: createdAt, findErr: errs.New("conn refused"), expectErr: errs.ErrDatabaseOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow, offers, _ := newReads(t)
			if tt.findErr != nil {
				offers.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(nil, tt.findErr)
			} else {
				offers.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
			}

			q := queries.NewOfferQueries(uow, clock.NewMockClock(tt.now))
			actual, err := q.GetValidOffer(context.Background(), stored.ID(), tt.userID)

			if tt.expectErr != nil {
				assert.True(t, errs.Is(err, tt.expectErr), "got %v", err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID(), actual.ID())
		})
	}
}

func TestDescribeOrder(t *testing.T) {
	calc := pricing.NewDefaultCalculator(30, 5)

	t.Run("success: running order is priced up to now", func(t *testing.T) {
		uow, _, orders := newReads(t)
		o := order.ReconstructOrder(uuid.New(), 7, 101, createdAt, nil, terms, nil)
		orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		q := queries.NewOrderQueries(uow, calc, clock.NewMockClock(createdAt.Add(90*time.Second)))
		actual, err := q.DescribeOrder(context.Background(), o.ID(), 7)

		require.NoError(t, err)
		assert.Equal(t, &queries.OrderView{
			ID:         o.ID(),
			UserID:     7,
			VehicleID:  101,
			TotalPrice: 90 + 10,
			StartedAt:  createdAt,
		}, actual)
	})

	t.Run("success: live total never decreases", func(t *testing.T) {
		uow, _, orders := newReads(t)
		o := order.ReconstructOrder(uuid.New(), 7, 101, createdAt, nil, terms, nil)
		orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil).Times(3)

		clk := clock.NewMockClock(createdAt)
		q := queries.NewOrderQueries(uow, calc, clk)

		var last int64
		for _, offset := range []time.Duration{time.Second, 30 * time.Second, 10 * time.Minute} {
			clk.Set(createdAt.Add(offset))
			view, err := q.DescribeOrder(context.Background(), o.ID(), 7)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, view.TotalPrice, last)
			last = view.TotalPrice
		}
	})

	t.Run("success: finished order is priced at its finish", func(t *testing.T) {
		uow, _, orders := newReads(t)
		finishedAt := createdAt.Add(2 * time.Minute)
		o := order.ReconstructOrder(uuid.New(), 7, 101, createdAt, &finishedAt, terms, nil)
		orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		q := queries.NewOrderQueries(uow, calc, clock.NewMockClock(createdAt.Add(time.Hour)))
		actual, err := q.DescribeOrder(context.Background(), o.ID(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(120+10), actual.TotalPrice)
		assert.Equal(t, &finishedAt, actual.FinishedAt)
	})

	t.Run("error: other user", func(t *testing.T) {
		uow, _, orders := newReads(t)
		o := order.ReconstructOrder(uuid.New(), 7, 101, createdAt, nil, terms, nil)
		orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		q := queries.NewOrderQueries(uow, calc, clock.NewMockClock(createdAt))
		_, err := q.DescribeOrder(context.Background(), o.ID(), 8)

		assert.True(t, errs.Is(err, errs.ErrOrderNotFound))
	})

	t.Run("error: missing order", func(t *testing.T) {
		uow, _, orders := newReads(t)
		orderID := uuid.New()
		orders.EXPECT().FindByID(gomock.Any(), orderID).Return(nil, notFound())

		q := queries.NewOrderQueries(uow, calc, clock.NewMockClock(createdAt))
		_, err := q.DescribeOrder(context.Background(), orderID, 7)

		assert.True(t, errs.Is(err, errs.ErrOrderNotFound))
	})
}
