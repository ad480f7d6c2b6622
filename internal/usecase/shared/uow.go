package shared

import (
	"context"
	"time"

	"order-offer-service/internal/domain/offer"
	"order-offer-service/internal/domain/order"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Single statements outside of an explicit transaction
	Reads() Tx
}

type Tx interface {
	Offers() OfferRepository
	Orders() OrderRepository
	Settlements() SettlementRepository
}

type OfferRepository interface {
	Create(ctx context.Context, o *offer.Offer) error
	FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	// Delete is a no-op for a missing offer.
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindActiveByUser(ctx context.Context, userID int64) (*order.Order, error)
	// MarkFinished sets finished_at only when it is still null and reports whether it did.
	MarkFinished(ctx context.Context, id uuid.UUID, finishedAt time.Time) (bool, error)
	MarkPaymentCleared(ctx context.Context, id uuid.UUID, clearedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SettlementRepository interface {
	Create(ctx context.Context, s *order.Settlement) error
	Find(ctx context.Context, orderID uuid.UUID, userID int64) (*order.Settlement, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
