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

type OrderQueries interface {
	CreateOrder(ctx context.Context, db query.DBTX, arg query.CreateOrderParams) error
	GetOrder(ctx context.Context, db query.DBTX, id pgtype.UUID) (query.Orders, error)
	GetActiveOrderByUser(ctx context.Context, db query.DBTX, userID int64) (query.Orders, error)
	FinishOrder(ctx context.Context, db query.DBTX, arg query.FinishOrderParams) (int64, error)
	MarkOrderPaymentCleared(ctx context.Context, db query.DBTX, arg query.MarkOrderPaymentClearedParams) error
	DeleteOrder(ctx context.Context, db query.DBTX, id pgtype.UUID) error
}

type OrderRepository struct {
	queries OrderQueries
	db      query.DBTX
	logger  *slog.Logger
}

func NewOrderRepository(queries OrderQueries, db query.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
		logger:  slog.Default(),
	}
}

// Create reports KindDuplicateKey when the user already has an active order.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, r.db, converter.OrderToCreateParams(o)); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "active order already exists", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrder(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find order", err)
	}
	return converter.OrderFromRow(row), nil
}

func (r *OrderRepository) FindActiveByUser(ctx context.Context, userID int64) (*order.Order, error) {
	row, err := r.queries.GetActiveOrderByUser(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "active order not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find active order", err)
	}
	return converter.OrderFromRow(row), nil
}

func (r *OrderRepository) MarkFinished(ctx context.Context, id uuid.UUID, finishedAt time.Time) (bool, error) {
	n, err := r.queries.FinishOrder(ctx, r.db, query.FinishOrderParams{
		ID:         pgconv.UUIDToPgtype(id),
		FinishedAt: pgconv.TimeToPgtype(finishedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to finish order", err)
	}
	return n == 1, nil
}

func (r *OrderRepository) MarkPaymentCleared(ctx context.Context, id uuid.UUID, clearedAt time.Time) error {
	err := r.queries.MarkOrderPaymentCleared(ctx, r.db, query.MarkOrderPaymentClearedParams{
		ID:               pgconv.UUIDToPgtype(id),
		PaymentClearedAt: pgconv.TimeToPgtype(clearedAt),
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to mark payment cleared", err)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteOrder(ctx, r.db, pgconv.UUIDToPgtype(id)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete order", err)
	}
	return nil
}
