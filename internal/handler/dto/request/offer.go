package request

type CreateOfferRequest struct {
	UserID    int64 `json:"user_id" binding:"required,gt=0"`
	VehicleID int64 `json:"vehicle_id" binding:"required,gt=0"`
}
