package bootstrap

import (
	"context"
	"log/slog"

	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/pkg/cache"
	"order-offer-service/internal/pkg/clock"
	"order-offer-service/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCacheStore,
		NewZoneCache,
		NewConfigCache,
	),
)

// NewCacheStore picks Redis when an address is configured and process memory otherwise.
func NewCacheStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) cache.Store {
	if !cfg.Redis.Enabled() {
		logger.Info("cache backend selected", "backend", "memory")
		return cache.NewMemoryStore(clock.NewRealClock())
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// reads fall back to the loader while redis is unreachable
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("cache backend selected", "backend", "redis", "addr", cfg.Redis.Addr)
	return cache.NewRedisStore(client)
}

func NewZoneCache(store cache.Store, cfg config.Config, logger *slog.Logger) *cache.ReadThrough[pricing.Zone] {
	return cache.NewReadThrough[pricing.Zone](store, "zones", cfg.Cache.ZoneTTL, logger)
}

func NewConfigCache(store cache.Store, cfg config.Config, logger *slog.Logger) *cache.ReadThrough[pricing.Coefficients] {
	return cache.NewReadThrough[pricing.Coefficients](store, "configs", cfg.Cache.ConfigTTL, logger)
}
