package response

import (
	"time"

	"order-offer-service/internal/domain/order"
	"order-offer-service/internal/usecase/commands"
	"order-offer-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type StartOrderResponse struct {
	OrderID uuid.UUID `json:"order_id"`
}

type OrderResponse struct {
	OrderID    uuid.UUID  `json:"order_id"`
	UserID     int64      `json:"user_id"`
	VehicleID  int64      `json:"vehicle_id"`
	TotalPrice int64      `json:"total_price"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

type StopOrderResponse struct {
	TotalPrice int64  `json:"total_price"`
	ArchiveKey string `json:"archive_key"`
}

func FromStartedOrder(o *order.Order) *StartOrderResponse {
	return &StartOrderResponse{OrderID: o.ID()}
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		OrderID:    v.ID,
		UserID:     v.UserID,
		VehicleID:  v.VehicleID,
		TotalPrice: v.TotalPrice,
		StartedAt:  v.StartedAt,
		FinishedAt: v.FinishedAt,
	}
}

func FromStopResult(r *commands.StopOrderResult) *StopOrderResponse {
	return &StopOrderResponse{
		TotalPrice: r.TotalPrice,
		ArchiveKey: r.ArchiveKey,
	}
}
