package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"order-offer-service/internal/pkg/config"
	"order-offer-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var JanitorModule = fx.Module("janitor",
	fx.Invoke(StartJanitor),
)

// StartJanitor purges expired offers and settlements on a fixed interval until shutdown.
func StartJanitor(lc fx.Lifecycle, cfg config.Config, maintenance commands.MaintenanceCommands, logger *slog.Logger) {
	if cfg.Janitor.Interval <= 0 {
		logger.Info("janitor disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Janitor.Interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if _, err := maintenance.PurgeExpired(ctx); err != nil {
							logger.Error("janitor sweep failed", "error", err.Error())
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
