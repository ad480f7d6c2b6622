//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"order-offer-service/internal/domain/offer"
	"order-offer-service/internal/domain/order"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func InsertOffer(t *testing.T, db DBLike, o *offer.Offer) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO offers (id, user_id, vehicle_id, created_at, ttl_seconds, rate_per_minute, unlock_fee, deposit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID(), o.UserID(), o.VehicleID(), o.CreatedAt(), o.TTLSeconds(), o.RatePerMinute(), o.UnlockFee(), o.Deposit())
	require.NoError(t, err)
}

func InsertOrder(t *testing.T, db DBLike, o *order.Order) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO orders (id, user_id, vehicle_id, started_at, finished_at, ttl_seconds, rate_per_minute, unlock_fee, deposit, payment_cleared_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		o.ID(), o.UserID(), o.VehicleID(), o.StartedAt(), o.FinishedAt(), o.TTLSeconds(),
		o.RatePerMinute(), o.UnlockFee(), o.Deposit(), o.PaymentClearedAt())
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table string, id uuid.UUID) int {
	t.Helper()

	column := "id"
	if table == "settlements" {
		column = "order_id"
	}
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table+" WHERE "+column+" = $1", id).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
