package request

import (
	"github.com/google/uuid"
)

type StartOrderRequest struct {
	UserID  int64     `json:"user_id" binding:"required,gt=0"`
	OfferID uuid.UUID `json:"offer_id" binding:"required"`
}

type StopOrderRequest struct {
	UserID  int64     `json:"user_id" binding:"required,gt=0"`
	OrderID uuid.UUID `json:"order_id" binding:"required"`
}

// GetOrderRequest is bound from the query string.
type GetOrderRequest struct {
	UserID  int64  `form:"user_id" binding:"required,gt=0"`
	OrderID string `form:"order_id" binding:"required"`
}

func (r GetOrderRequest) ParseOrderID() (uuid.UUID, error) {
	return uuid.Parse(r.OrderID)
}
