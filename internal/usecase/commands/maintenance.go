package commands

import (
	"context"
	"log/slog"

	"order-offer-service/internal/pkg/clock"
	"order-offer-service/internal/pkg/errs"
	"order-offer-service/internal/usecase/shared"
)

type PurgeResult struct {
	ExpiredOffers      int64
	ExpiredSettlements int64
}

type MaintenanceCommands interface {
	PurgeExpired(ctx context.Context) (PurgeResult, error)
}

type maintenanceCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger) MaintenanceCommands {
	return &maintenanceCommandsImpl{
		uow:    uow,
		clock:  clock,
		logger: logger,
	}
}

// PurgeExpired removes offers past their ttl and settlements past their retention.
func (m *maintenanceCommandsImpl) PurgeExpired(ctx context.Context) (PurgeResult, error) {
	now := m.clock.Now()
	var result PurgeResult

	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		offers, err := tx.Offers().DeleteExpired(ctx, now)
		if err != nil {
			return err
		}
		settlements, err := tx.Settlements().DeleteExpired(ctx, now)
		if err != nil {
			return err
		}
		result = PurgeResult{ExpiredOffers: offers, ExpiredSettlements: settlements}
		return nil
	})
	if err != nil {
		return PurgeResult{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	m.logger.Info("janitor.sweep",
		"expired_offers", result.ExpiredOffers,
		"expired_settlements", result.ExpiredSettlements)
	return result, nil
}
