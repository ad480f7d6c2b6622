package order

import (
	"time"

	"order-offer-service/internal/domain/offer"
	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyFinished = errs.New("order already finished")
	ErrNotFinished     = errs.New("order not finished")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Order is a rental promoted from an offer. It is finished once and cleared once.
type Order struct {
	id               uuid.UUID
	userID           int64
	vehicleID        int64
	startedAt        time.Time
	finishedAt       *time.Time
	terms            pricing.Terms
	paymentClearedAt *time.Time
}

// NewFromOffer copies the quoted terms of o into a new active order.
func NewFromOffer(o *offer.Offer, now time.Time) *Order {
	return &Order{
		id:        uuid.New(),
		userID:    o.UserID(),
		vehicleID: o.VehicleID(),
		startedAt: now.UTC(),
		terms:     o.Terms(),
	}
}

func ReconstructOrder(
	id uuid.UUID,
	userID, vehicleID int64,
	startedAt time.Time,
	finishedAt *time.Time,
	terms pricing.Terms,
	paymentClearedAt *time.Time,
) *Order {
	return &Order{
		id:               id,
		userID:           userID,
		vehicleID:        vehicleID,
		startedAt:        startedAt.UTC(),
		finishedAt:       utcPtr(finishedAt),
		terms:            terms,
		paymentClearedAt: utcPtr(paymentClearedAt),
	}
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) UserID() int64                { return o.userID }
func (o *Order) VehicleID() int64             { return o.vehicleID }
func (o *Order) StartedAt() time.Time         { return o.startedAt }
func (o *Order) FinishedAt() *time.Time       { return o.finishedAt }
func (o *Order) Terms() pricing.Terms         { return o.terms }
func (o *Order) RatePerMinute() int64         { return o.terms.RatePerMinute }
func (o *Order) UnlockFee() int64             { return o.terms.UnlockFee }
func (o *Order) Deposit() int64               { return o.terms.Deposit }
func (o *Order) TTLSeconds() int64            { return o.terms.TTLSeconds }
func (o *Order) PaymentClearedAt() *time.Time { return o.paymentClearedAt }

func (o *Order) Status() Status {
	if o.finishedAt == nil {
		return StatusActive
	}
	return StatusFinished
}

func (o *Order) IsFinished() bool       { return o.finishedAt != nil }
func (o *Order) IsPaymentCleared() bool { return o.paymentClearedAt != nil }

func (o *Order) BelongsTo(userID int64) bool {
	return o.userID == userID
}

func (o *Order) Finish(now time.Time) error {
	if o.finishedAt != nil {
		return ErrAlreadyFinished
	}
	t := now.UTC()
	o.finishedAt = &t
	return nil
}

func (o *Order) MarkPaymentCleared(now time.Time) error {
	if o.finishedAt == nil {
		return ErrNotFinished
	}
	if o.paymentClearedAt == nil {
		t := now.UTC()
		o.paymentClearedAt = &t
	}
	return nil
}

// BillingEnd is the stored finish, or now while the ride is still running.
func (o *Order) BillingEnd(now time.Time) time.Time {
	if o.finishedAt != nil {
		return *o.finishedAt
	}
	return now
}

// Total prices the ride up to BillingEnd(now).
func (o *Order) Total(calc pricing.Calculator, now time.Time) int64 {
	return calc.ComputeElapsedCharge(o.startedAt, o.BillingEnd(now), o.terms.RatePerMinute, o.terms.UnlockFee)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
