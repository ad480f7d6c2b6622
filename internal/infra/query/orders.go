package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, user_id, vehicle_id, started_at, finished_at, ttl_seconds, rate_per_minute, unlock_fee, deposit, payment_cleared_at`

const createOrder = `-- name: CreateOrder :exec
INSERT INTO orders (id, user_id, vehicle_id, started_at, ttl_seconds, rate_per_minute, unlock_fee, deposit)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreateOrderParams struct {
	ID            pgtype.UUID
	UserID        int64
	VehicleID     int64
	StartedAt     pgtype.Timestamptz
	TtlSeconds    int64
	RatePerMinute int64
	UnlockFee     int64
	Deposit       int64
}

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg CreateOrderParams) error {
	_, err := db.Exec(ctx, createOrder,
		arg.ID,
		arg.UserID,
		arg.VehicleID,
		arg.StartedAt,
		arg.TtlSeconds,
		arg.RatePerMinute,
		arg.UnlockFee,
		arg.Deposit,
	)
	return err
}

const getOrder = `-- name: GetOrder :one
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrder(ctx context.Context, db DBTX, id pgtype.UUID) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getOrder, id))
}

const getActiveOrderByUser = `-- name: GetActiveOrderByUser :one
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1 AND finished_at IS NULL
`

func (q *Queries) GetActiveOrderByUser(ctx context.Context, db DBTX, userID int64) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getActiveOrderByUser, userID))
}

const finishOrder = `-- name: FinishOrder :execrows
UPDATE orders
SET finished_at = $2
WHERE id = $1 AND finished_at IS NULL
`

type FinishOrderParams struct {
	ID         pgtype.UUID
	FinishedAt pgtype.Timestamptz
}

func (q *Queries) FinishOrder(ctx context.Context, db DBTX, arg FinishOrderParams) (int64, error) {
	result, err := db.Exec(ctx, finishOrder, arg.ID, arg.FinishedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const markOrderPaymentCleared = `-- name: MarkOrderPaymentCleared :exec
UPDATE orders
SET payment_cleared_at = $2
WHERE id = $1 AND payment_cleared_at IS NULL
`

type MarkOrderPaymentClearedParams struct {
	ID               pgtype.UUID
	PaymentClearedAt pgtype.Timestamptz
}

func (q *Queries) MarkOrderPaymentCleared(ctx context.Context, db DBTX, arg MarkOrderPaymentClearedParams) error {
	_, err := db.Exec(ctx, markOrderPaymentCleared, arg.ID, arg.PaymentClearedAt)
	return err
}

const deleteOrder = `-- name: DeleteOrder :exec
DELETE FROM orders
WHERE id = $1
`

func (q *Queries) DeleteOrder(ctx context.Context, db DBTX, id pgtype.UUID) error {
	_, err := db.Exec(ctx, deleteOrder, id)
	return err
}

func scanOrder(row interface{ Scan(dest ...any) error }) (Orders, error) {
	var i Orders
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.VehicleID,
		&i.StartedAt,
		&i.FinishedAt,
		&i.TtlSeconds,
		&i.RatePerMinute,
		&i.UnlockFee,
		&i.Deposit,
		&i.PaymentClearedAt,
	)
	return i, err
}
