package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"order-offer-service/internal/pkg/errs"
)

// ReadThrough serves values from a Store and falls back to load on a miss.
// Only successful loads are stored. Concurrent misses may all call load.
type ReadThrough[T any] struct {
	store  Store
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewReadThrough[T any](store Store, prefix string, ttl time.Duration, logger *slog.Logger) *ReadThrough[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReadThrough[T]{
		store:  store,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *ReadThrough[T]) Get(ctx context.Context, key string, load func(ctx context.Context) (T, error)) (T, error) {
	fullKey := c.prefix + ":" + key

	raw, err := c.store.Get(ctx, fullKey)
	switch {
	case err == nil:
		var value T
		decodeErr := json.Unmarshal(raw, &value)
		if decodeErr == nil {
			return value, nil
		}
		c.logger.Warn("cache entry undecodable", "key", fullKey, "error", decodeErr.Error())
	case !errs.Is(err, ErrCacheMiss):
		// backend trouble degrades to a direct load
		c.logger.Warn("cache backend unavailable", "key", fullKey, "error", err.Error())
	}

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache entry unencodable", "key", fullKey, "error", err.Error())
		return value, nil
	}
	if err := c.store.Set(ctx, fullKey, encoded, c.ttl); err != nil {
		c.logger.Warn("cache write failed", "key", fullKey, "error", err.Error())
	}
	return value, nil
}
