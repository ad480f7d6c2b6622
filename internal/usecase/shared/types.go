package shared

import (
	"context"
	"time"

	"order-offer-service/internal/domain/pricing"

	"github.com/google/uuid"
)

// BestEffort is the result of a lookup that may fall back to a default.
// Degraded is true when Value is the fallback and Cause holds the failure.
type BestEffort[T any] struct {
	Value    T
	Degraded bool
	Cause    error
}

func Fetched[T any](v T) BestEffort[T] {
	return BestEffort[T]{Value: v}
}

func Fallback[T any](v T, cause error) BestEffort[T] {
	return BestEffort[T]{Value: v, Degraded: true, Cause: cause}
}

type VehicleService interface {
	GetVehicle(ctx context.Context, vehicleID int64) (pricing.Vehicle, error)
	Lock(ctx context.Context, vehicleID int64) error
	Unlock(ctx context.Context, vehicleID int64) error
}

type PaymentService interface {
	Hold(ctx context.Context, userID int64, orderID uuid.UUID, amount int64) error
	Clear(ctx context.Context, userID int64, orderID uuid.UUID, amount int64) error
}

type ZoneDirectory interface {
	GetZone(ctx context.Context, zoneID string) (pricing.Zone, error)
}

type UserDirectory interface {
	GetProfile(ctx context.Context, userID int64) BestEffort[pricing.UserProfile]
}

// PriceConfigSource degrades to a nil value when coefficients are unavailable.
type PriceConfigSource interface {
	GetCoefficients(ctx context.Context) BestEffort[*pricing.Coefficients]
}

// ArchiveRecord is the settled order as written to the archive.
type ArchiveRecord struct {
	OrderID       uuid.UUID `json:"order_id" copier:"-"`
	UserID        int64     `json:"user_id"`
	VehicleID     int64     `json:"vehicle_id"`
	ZoneID        string    `json:"zone_id" copier:"-"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at" copier:"-"`
	RatePerMinute int64     `json:"rate_per_minute"`
	UnlockFee     int64     `json:"unlock_fee"`
	Deposit       int64     `json:"deposit"`
	TTLSeconds    int64     `json:"ttl"`
	TotalPrice    int64     `json:"total_price" copier:"-"`
	SettledAt     time.Time `json:"settled_at" copier:"-"`
}

type ArchiveStore interface {
	// Put writes the record once and returns its key.
	// An existing object under the same key counts as success.
	Put(ctx context.Context, record ArchiveRecord) (string, error)
}
