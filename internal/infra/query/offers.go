package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createOffer = `-- name: CreateOffer :exec
INSERT INTO offers (id, user_id, vehicle_id, created_at, ttl_seconds, rate_per_minute, unlock_fee, deposit)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreateOfferParams struct {
	ID            pgtype.UUID
	UserID        int64
	VehicleID     int64
	CreatedAt     pgtype.Timestamptz
	TtlSeconds    int64
	RatePerMinute int64
	UnlockFee     int64
	Deposit       int64
}

func (q *Queries) CreateOffer(ctx context.Context, db DBTX, arg CreateOfferParams) error {
	_, err := db.Exec(ctx, createOffer,
		arg.ID,
		arg.UserID,
		arg.VehicleID,
		arg.CreatedAt,
		arg.TtlSeconds,
		arg.RatePerMinute,
		arg.UnlockFee,
		arg.Deposit,
	)
	return err
}

const getOffer = `-- name: GetOffer :one
SELECT id, user_id, vehicle_id, created_at, ttl_seconds, rate_per_minute, unlock_fee, deposit
FROM offers
WHERE id = $1
`

func (q *Queries) GetOffer(ctx context.Context, db DBTX, id pgtype.UUID) (Offers, error) {
	row := db.QueryRow(ctx, getOffer, id)
	var i Offers
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.VehicleID,
		&i.CreatedAt,
		&i.TtlSeconds,
		&i.RatePerMinute,
		&i.UnlockFee,
		&i.Deposit,
	)
	return i, err
}

const deleteOffer = `-- name: DeleteOffer :execrows
DELETE FROM offers
WHERE id = $1
`

func (q *Queries) DeleteOffer(ctx context.Context, db DBTX, id pgtype.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteOffer, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteExpiredOffers = `-- name: DeleteExpiredOffers :execrows
DELETE FROM offers
WHERE created_at + make_interval(secs => ttl_seconds) < $1
`

func (q *Queries) DeleteExpiredOffers(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredOffers, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
