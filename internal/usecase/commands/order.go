package commands

import (
	"context"
	"log/slog"
	"time"

	"order-offer-service/internal/domain/offer"
	"order-offer-service/internal/domain/order"
	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/infra"
	"order-offer-service/internal/pkg/clock"
	"order-offer-service/internal/pkg/config"
	"order-offer-service/internal/pkg/errs"
	"order-offer-service/internal/usecase/queries"
	"order-offer-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StopOrderResult struct {
	TotalPrice int64
	ArchiveKey string
	// Replayed is set when the order had already been settled by an earlier call.
	Replayed bool
}

type OrderCommands interface {
	StartOrder(ctx context.Context, userID int64, offerID uuid.UUID) (*order.Order, error)
	StopOrder(ctx context.Context, userID int64, orderID uuid.UUID) (*StopOrderResult, error)
}

type orderCommandsImpl struct {
	uow      shared.UnitOfWork
	offers   queries.OfferQueries
	vehicles shared.VehicleService
	payments shared.PaymentService
	archive  shared.ArchiveStore
	calc     pricing.Calculator
	clock    clock.Clock
	cfg      config.OrderConfig
	logger   *slog.Logger
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	offers queries.OfferQueries,
	vehicles shared.VehicleService,
	payments shared.PaymentService,
	archive shared.ArchiveStore,
	calc pricing.Calculator,
	clock clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) OrderCommands {
	return &orderCommandsImpl{
		uow:      uow,
		offers:   offers,
		vehicles: vehicles,
		payments: payments,
		archive:  archive,
		calc:     calc,
		clock:    clock,
		cfg:      cfg.Order,
		logger:   logger,
	}
}

// ================================================================================
// StartOrder
// ================================================================================

// StartOrder promotes a valid offer into an active order. A user with an active
// order gets that order back unchanged, so a retried start neither creates a
// second order nor locks a second time.
func (c *orderCommandsImpl) StartOrder(ctx context.Context, userID int64, offerID uuid.UUID) (*order.Order, error) {
	active, err := c.findActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return active, nil
	}

	of, err := c.offers.GetValidOffer(ctx, offerID, userID)
	if err != nil {
		return nil, err
	}

	if err := c.vehicles.Lock(ctx, of.VehicleID()); err != nil {
		return nil, err
	}

	o := order.NewFromOffer(of, c.clock.Now())
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Orders().Create(ctx, o); err != nil {
			return err
		}
		if err := tx.Offers().Delete(ctx, of.ID()); err != nil {
			return err
		}
		return c.payments.Hold(ctx, userID, o.ID(), o.Deposit())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return c.resolveConcurrentStart(ctx, userID, of, err)
		}
		c.releaseLock(ctx, of.VehicleID(), o.ID(), err)
		return nil, c.markPersistence(err)
	}

	c.logger.Info("order.started",
		"order_id", o.ID().String(),
		"offer_id", of.ID().String(),
		"user_id", userID,
		"vehicle_id", o.VehicleID(),
		"rate_per_minute", o.RatePerMinute(),
		"unlock_fee", o.UnlockFee(),
		"deposit", o.Deposit(),
		"ttl", o.TTLSeconds())

	return o, nil
}

// resolveConcurrentStart returns the order of a start that won the race for this user.
func (c *orderCommandsImpl) resolveConcurrentStart(ctx context.Context, userID int64, of *offer.Offer, cause error) (*order.Order, error) {
	winner, err := c.findActive(ctx, userID)
	if err != nil || winner == nil {
		c.releaseLock(ctx, of.VehicleID(), uuid.Nil, cause)
		if err != nil {
			return nil, err
		}
		return nil, errs.Mark(cause, errs.ErrDatabaseOperationFailed)
	}
	if winner.VehicleID() != of.VehicleID() {
		c.releaseLock(ctx, of.VehicleID(), winner.ID(), cause)
	}
	return winner, nil
}

// releaseLock undoes a vehicle lock whose order could not be persisted.
func (c *orderCommandsImpl) releaseLock(ctx context.Context, vehicleID int64, orderID uuid.UUID, cause error) {
	unlockCtx := context.WithoutCancel(ctx)
	if err := c.vehicles.Unlock(unlockCtx, vehicleID); err != nil {
		c.logger.Error("vehicle.lock_compensated",
			"vehicle_id", vehicleID,
			"order_id", orderID.String(),
			"cause", cause.Error(),
			"unlocked", false,
			"error", err.Error())
		return
	}
	c.logger.Warn("vehicle.lock_compensated",
		"vehicle_id", vehicleID,
		"order_id", orderID.String(),
		"cause", cause.Error(),
		"unlocked", true)
}

func (c *orderCommandsImpl) findActive(ctx context.Context, userID int64) (*order.Order, error) {
	o, err := c.uow.Reads().Orders().FindActiveByUser(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return o, nil
}

// ================================================================================
// StopOrder
// ================================================================================

// StopOrder settles an order: finish, clear payment, release the vehicle, archive, delete.
// Each step is recorded or naturally idempotent, so a repeated stop resumes where a
// failed one left off and a stop after settlement replays the first result.
func (c *orderCommandsImpl) StopOrder(ctx context.Context, userID int64, orderID uuid.UUID) (*StopOrderResult, error) {
	o, err := c.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return c.replaySettlement(ctx, userID, orderID)
	}
	if !o.BelongsTo(userID) {
		return nil, errs.ErrOrderNotFound
	}

	if !o.IsFinished() {
		o, err = c.finish(ctx, o)
		if err != nil {
			return nil, err
		}
		if o == nil {
			return c.replaySettlement(ctx, userID, orderID)
		}
	}

	total := o.Total(c.calc, c.clock.Now())

	if !o.IsPaymentCleared() {
		if err := c.payments.Clear(ctx, userID, o.ID(), total); err != nil {
			return nil, err
		}
		clearedAt := c.clock.Now()
		if err := c.uow.Reads().Orders().MarkPaymentCleared(ctx, o.ID(), clearedAt); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		_ = o.MarkPaymentCleared(clearedAt)
	}

	vehicle, err := c.vehicles.GetVehicle(ctx, o.VehicleID())
	if err != nil {
		return nil, err
	}
	if !vehicle.Available {
		if err := c.vehicles.Unlock(ctx, o.VehicleID()); err != nil {
			return nil, err
		}
	}

	settledAt := c.clock.Now()
	record, err := c.archiveRecord(o, vehicle.ZoneID, total, settledAt)
	if err != nil {
		return nil, err
	}
	key, err := c.archive.Put(ctx, record)
	if err != nil {
		return nil, err
	}

	settlement := order.NewSettlement(o, total, key, settledAt, c.cfg.SettlementRetention)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Settlements().Create(ctx, settlement); err != nil {
			return err
		}
		return tx.Orders().Delete(ctx, o.ID())
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.logger.Info("order.stopped",
		"order_id", o.ID().String(),
		"user_id", userID,
		"vehicle_id", o.VehicleID(),
		"zone_id", vehicle.ZoneID,
		"total_price", total,
		"archive_key", key)

	return &StopOrderResult{TotalPrice: total, ArchiveKey: key}, nil
}

// finish records the finish instant once. Losing the race to a concurrent stop
// re-reads the stored instant; nil means the order is already gone.
func (c *orderCommandsImpl) finish(ctx context.Context, o *order.Order) (*order.Order, error) {
	now := c.clock.Now()
	updated, err := c.uow.Reads().Orders().MarkFinished(ctx, o.ID(), now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if updated {
		_ = o.Finish(now)
		return o, nil
	}
	return c.loadOrder(ctx, o.ID())
}

func (c *orderCommandsImpl) loadOrder(ctx context.Context, orderID uuid.UUID) (*order.Order, error) {
	o, err := c.uow.Reads().Orders().FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return o, nil
}

func (c *orderCommandsImpl) replaySettlement(ctx context.Context, userID int64, orderID uuid.UUID) (*StopOrderResult, error) {
	s, err := c.uow.Reads().Settlements().Find(ctx, orderID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.logger.Info("order.settlement_replayed",
		"order_id", orderID.String(),
		"user_id", userID,
		"total_price", s.TotalPrice,
		"archive_key", s.ArchiveKey)

	return &StopOrderResult{TotalPrice: s.TotalPrice, ArchiveKey: s.ArchiveKey, Replayed: true}, nil
}

func (c *orderCommandsImpl) archiveRecord(o *order.Order, zoneID string, total int64, settledAt time.Time) (shared.ArchiveRecord, error) {
	var record shared.ArchiveRecord
	if err := copier.CopyWithOption(&record, o, copier.Option{CaseSensitive: true}); err != nil {
		return shared.ArchiveRecord{}, errs.Mark(errs.Wrap(err, "build archive record"), errs.ErrArchiveFailed)
	}
	record.OrderID = o.ID()
	record.ZoneID = zoneID
	record.FinishedAt = o.BillingEnd(settledAt)
	record.TotalPrice = total
	record.SettledAt = settledAt
	return record, nil
}

func (c *orderCommandsImpl) markPersistence(err error) error {
	if infra.IsKind(err, infra.KindDBFailure) || infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return err
}
