package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createSettlement = `-- name: CreateSettlement :exec
INSERT INTO settlements (order_id, user_id, vehicle_id, total_price, archive_key, settled_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (order_id) DO NOTHING
`

type CreateSettlementParams struct {
	OrderID    pgtype.UUID
	UserID     int64
	VehicleID  int64
	TotalPrice int64
	ArchiveKey string
	SettledAt  pgtype.Timestamptz
	ExpiresAt  pgtype.Timestamptz
}

func (q *Queries) CreateSettlement(ctx context.Context, db DBTX, arg CreateSettlementParams) error {
	_, err := db.Exec(ctx, createSettlement,
		arg.OrderID,
		arg.UserID,
		arg.VehicleID,
		arg.TotalPrice,
		arg.ArchiveKey,
		arg.SettledAt,
		arg.ExpiresAt,
	)
	return err
}

const getSettlement = `-- name: GetSettlement :one
SELECT order_id, user_id, vehicle_id, total_price, archive_key, settled_at, expires_at
FROM settlements
WHERE order_id = $1 AND user_id = $2
`

type GetSettlementParams struct {
	OrderID pgtype.UUID
	UserID  int64
}

func (q *Queries) GetSettlement(ctx context.Context, db DBTX, arg GetSettlementParams) (Settlements, error) {
	row := db.QueryRow(ctx, getSettlement, arg.OrderID, arg.UserID)
	var i Settlements
	err := row.Scan(
		&i.OrderID,
		&i.UserID,
		&i.VehicleID,
		&i.TotalPrice,
		&i.ArchiveKey,
		&i.SettledAt,
		&i.ExpiresAt,
	)
	return i, err
}

const deleteExpiredSettlements = `-- name: DeleteExpiredSettlements :execrows
DELETE FROM settlements
WHERE expires_at < $1
`

func (q *Queries) DeleteExpiredSettlements(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredSettlements, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
