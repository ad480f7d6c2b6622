package converter

import (
	"order-offer-service/internal/domain/order"
	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/infra/query"
	"order-offer-service/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) query.CreateOrderParams {
	return query.CreateOrderParams{
		ID:            pgconv.UUIDToPgtype(o.ID()),
		UserID:        o.UserID(),
		VehicleID:     o.VehicleID(),
		StartedAt:     pgconv.TimeToPgtype(o.StartedAt()),
		TtlSeconds:    o.TTLSeconds(),
		RatePerMinute: o.RatePerMinute(),
		UnlockFee:     o.UnlockFee(),
		Deposit:       o.Deposit(),
	}
}

func OrderFromRow(row query.Orders) *order.Order {
	return order.ReconstructOrder(
		pgconv.UUIDFromPgtype(row.ID),
		row.UserID,
		row.VehicleID,
		pgconv.TimeFromPgtype(row.StartedAt),
		pgconv.TimePtrFromPgtype(row.FinishedAt),
		pricing.Terms{
			RatePerMinute: row.RatePerMinute,
			UnlockFee:     row.UnlockFee,
			Deposit:       row.Deposit,
			TTLSeconds:    row.TtlSeconds,
		},
		pgconv.TimePtrFromPgtype(row.PaymentClearedAt),
	)
}

func SettlementToCreateParams(s *order.Settlement) query.CreateSettlementParams {
	return query.CreateSettlementParams{
		OrderID:    pgconv.UUIDToPgtype(s.OrderID),
		UserID:     s.UserID,
		VehicleID:  s.VehicleID,
		TotalPrice: s.TotalPrice,
		ArchiveKey: s.ArchiveKey,
		SettledAt:  pgconv.TimeToPgtype(s.SettledAt),
		ExpiresAt:  pgconv.TimeToPgtype(s.ExpiresAt),
	}
}

func SettlementFromRow(row query.Settlements) *order.Settlement {
	return &order.Settlement{
		OrderID:    pgconv.UUIDFromPgtype(row.OrderID),
		UserID:     row.UserID,
		VehicleID:  row.VehicleID,
		TotalPrice: row.TotalPrice,
		ArchiveKey: row.ArchiveKey,
		SettledAt:  pgconv.TimeFromPgtype(row.SettledAt),
		ExpiresAt:  pgconv.TimeFromPgtype(row.ExpiresAt),
	}
}
