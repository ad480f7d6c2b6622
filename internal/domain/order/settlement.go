package order

import (
	"time"

	"github.com/google/uuid"
)

// Settlement remembers the outcome of a completed stop so a repeated stop can replay it.
type Settlement struct {
	OrderID    uuid.UUID
	UserID     int64
	VehicleID  int64
	TotalPrice int64
	ArchiveKey string
	SettledAt  time.Time
	ExpiresAt  time.Time
}

func NewSettlement(o *Order, total int64, archiveKey string, now time.Time, retention time.Duration) *Settlement {
	settledAt := now.UTC()
	return &Settlement{
		OrderID:    o.ID(),
		UserID:     o.UserID(),
		VehicleID:  o.VehicleID(),
		TotalPrice: total,
		ArchiveKey: archiveKey,
		SettledAt:  settledAt,
		ExpiresAt:  settledAt.Add(retention),
	}
}
