package queries

import (
	"context"

	"order-offer-service/internal/domain/offer"
	"order-offer-service/internal/infra"
	"order-offer-service/internal/pkg/clock"
	"order-offer-service/internal/pkg/errs"
	"order-offer-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferQueries interface {
	GetValidOffer(ctx context.Context, offerID uuid.UUID, userID int64) (*offer.Offer, error)
}

type offerQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferQueries(uow shared.UnitOfWork, clock clock.Clock) OfferQueries {
	return &offerQueriesImpl{
		uow:   uow,
		clock: clock,
	}
}

// GetValidOffer hides offers of other users behind ErrOfferNotFound.
func (q *offerQueriesImpl) GetValidOffer(ctx context.Context, offerID uuid.UUID, userID int64) (*offer.Offer, error) {
	o, err := q.uow.Reads().Offers().FindByID(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOfferNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !o.BelongsTo(userID) {
		return nil, errs.ErrOfferNotFound
	}
	if o.IsExpired(q.clock.Now()) {
		return nil, errs.ErrOfferExpired
	}
	return o, nil
}
