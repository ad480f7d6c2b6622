package repository

import (
	"context"
	"log/slog"
	"time"

	"order-offer-service/internal/domain/offer"
	"order-offer-service/internal/infra"
	"order-offer-service/internal/infra/query"
	"order-offer-service/internal/infra/repository/converter"
	"order-offer-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OfferQueries interface {
	CreateOffer(ctx context.Context, db query.DBTX, arg query.CreateOfferParams) error
	GetOffer(ctx context.Context, db query.DBTX, id pgtype.UUID) (query.Offers, error)
	DeleteOffer(ctx context.Context, db query.DBTX, id pgtype.UUID) (int64, error)
	DeleteExpiredOffers(ctx context.Context, db query.DBTX, now pgtype.Timestamptz) (int64, error)
}

type OfferRepository struct {
	queries OfferQueries
	db      query.DBTX
	logger  *slog.Logger
}

func NewOfferRepository(queries OfferQueries, db query.DBTX) *OfferRepository {
	return &OfferRepository{
		queries: queries,
		db:      db,
		logger:  slog.Default(),
	}
}

func (r *OfferRepository) Create(ctx context.Context, o *offer.Offer) error {
	if err := r.queries.CreateOffer(ctx, r.db, converter.OfferToCreateParams(o)); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "offer already exists", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	row, err := r.queries.GetOffer(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "offer not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find offer", err)
	}
	return converter.OfferFromRow(row), nil
}

func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.queries.DeleteOffer(ctx, r.db, pgconv.UUIDToPgtype(id)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete offer", err)
	}
	return nil
}

func (r *OfferRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredOffers(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete expired offers", err)
	}
	return n, nil
}
