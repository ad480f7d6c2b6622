//go:build unit || e2e

package builder

import (
	"time"

	"order-offer-service/internal/domain/order"
	"order-offer-service/internal/domain/pricing"
	reqdto "order-offer-service/internal/handler/dto/request"
	"order-offer-service/internal/usecase/commands"
	"order-offer-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID               uuid.UUID
	UserID           int64
	VehicleID        int64
	StartedAt        time.Time
	FinishedAt       *time.Time
	PaymentClearedAt *time.Time
	Terms            pricing.Terms
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:        uuid.New(),
		UserID:    7,
		VehicleID: 101,
		StartedAt: time.Now().UTC().Truncate(time.Microsecond),
		Terms:     pricing.Terms{RatePerMinute: 15, UnlockFee: 50, Deposit: 1000, TTLSeconds: 300},
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() *order.Order {
	return order.ReconstructOrder(b.ID, b.UserID, b.VehicleID, b.StartedAt, b.FinishedAt, b.Terms, b.PaymentClearedAt)
}

func (b *OrderBuilder) BuildView(total int64) *queries.OrderView {
	return queries.NewOrderView(b.BuildDomain(), total)
}

func (b *OrderBuilder) BuildStopResult(total int64, key string) *commands.StopOrderResult {
	return &commands.StopOrderResult{TotalPrice: total, ArchiveKey: key}
}

func (b *OrderBuilder) BuildStopRequestDTO() reqdto.StopOrderRequest {
	return reqdto.StopOrderRequest{UserID: b.UserID, OrderID: b.ID}
}

// Fluent builder methods
func (b *OrderBuilder) WithUserID(userID int64) *OrderBuilder {
	b.UserID = userID
	return b
}

func (b *OrderBuilder) WithVehicleID(vehicleID int64) *OrderBuilder {
	b.VehicleID = vehicleID
	return b
}

func (b *OrderBuilder) WithStartedAt(t time.Time) *OrderBuilder {
	b.StartedAt = t
	return b
}

func (b *OrderBuilder) FinishedAfter(d time.Duration) *OrderBuilder {
	finishedAt := b.StartedAt.Add(d)
	b.FinishedAt = &finishedAt
	return b
}
