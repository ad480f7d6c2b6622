package query

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Offers struct {
	ID            pgtype.UUID
	UserID        int64
	VehicleID     int64
	CreatedAt     pgtype.Timestamptz
	TtlSeconds    int64
	RatePerMinute int64
	UnlockFee     int64
	Deposit       int64
}

type Orders struct {
	ID               pgtype.UUID
	UserID           int64
	VehicleID        int64
	StartedAt        pgtype.Timestamptz
	FinishedAt       pgtype.Timestamptz
	TtlSeconds       int64
	RatePerMinute    int64
	UnlockFee        int64
	Deposit          int64
	PaymentClearedAt pgtype.Timestamptz
}

type Settlements struct {
	OrderID    pgtype.UUID
	UserID     int64
	VehicleID  int64
	TotalPrice int64
	ArchiveKey string
	SettledAt  pgtype.Timestamptz
	ExpiresAt  pgtype.Timestamptz
}
