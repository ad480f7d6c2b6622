package queries

import (
	"context"
	"time"

	"order-offer-service/internal/domain/order"
	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/infra"
	"order-offer-service/internal/pkg/clock"
	"order-offer-service/internal/pkg/errs"
	"order-offer-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OrderView struct {
	ID         uuid.UUID  `json:"order_id"`
	UserID     int64      `json:"user_id"`
	VehicleID  int64      `json:"vehicle_id"`
	TotalPrice int64      `json:"total_price"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

type OrderQueries interface {
	DescribeOrder(ctx context.Context, orderID uuid.UUID, userID int64) (*OrderView, error)
}

type orderQueriesImpl struct {
	uow   shared.UnitOfWork
	calc  pricing.Calculator
	clock clock.Clock
}

func NewOrderQueries(uow shared.UnitOfWork, calc pricing.Calculator, clock clock.Clock) OrderQueries {
	return &orderQueriesImpl{
		uow:   uow,
		calc:  calc,
		clock: clock,
	}
}

// DescribeOrder prices a running order up to now and a finished one up to its finish.
func (q *orderQueriesImpl) DescribeOrder(ctx context.Context, orderID uuid.UUID, userID int64) (*OrderView, error) {
	o, err := q.uow.Reads().Orders().FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !o.BelongsTo(userID) {
		return nil, errs.ErrOrderNotFound
	}
	return NewOrderView(o, o.Total(q.calc, q.clock.Now())), nil
}

func NewOrderView(o *order.Order, total int64) *OrderView {
	return &OrderView{
		ID:         o.ID(),
		UserID:     o.UserID(),
		VehicleID:  o.VehicleID(),
		TotalPrice: total,
		StartedAt:  o.StartedAt(),
		FinishedAt: o.FinishedAt(),
	}
}
