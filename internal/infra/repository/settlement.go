package repository

import (
	"context"
	"log/slog"
	"time"

	"order-offer-service/internal/domain/order"
	"order-offer-service/internal/infra"
	"order-offer-service/internal/infra/query"
	"order-offer-service/internal/infra/repository/converter"
	"order-offer-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SettlementQueries interface {
	CreateSettlement(ctx context.Context, db query.DBTX, arg query.CreateSettlementParams) error
	GetSettlement(ctx context.Context, db query.DBTX, arg query.GetSettlementParams) (query.Settlements, error)
	DeleteExpiredSettlements(ctx context.Context, db query.DBTX, now pgtype.Timestamptz) (int64, error)
}

type SettlementRepository struct {
	queries SettlementQueries
	db      query.DBTX
	logger  *slog.Logger
}

func NewSettlementRepository(queries SettlementQueries, db query.DBTX) *SettlementRepository {
	return &SettlementRepository{
		queries: queries,
		db:      db,
		logger:  slog.Default(),
	}
}

// Create keeps the first settlement when one already exists for the order.
func (r *SettlementRepository) Create(ctx context.Context, s *order.Settlement) error {
	if err := r.queries.CreateSettlement(ctx, r.db, converter.SettlementToCreateParams(s)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create settlement", err)
	}
	return nil
}

func (r *SettlementRepository) Find(ctx context.Context, orderID uuid.UUID, userID int64) (*order.Settlement, error) {
	row, err := r.queries.GetSettlement(ctx, r.db, query.GetSettlementParams{
		OrderID: pgconv.UUIDToPgtype(orderID),
		UserID:  userID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "settlement not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find settlement", err)
	}
	return converter.SettlementFromRow(row), nil
}

func (r *SettlementRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredSettlements(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete expired settlements", err)
	}
	return n, nil
}
