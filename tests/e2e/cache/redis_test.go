//go:build e2e

package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/pkg/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			slog.Warn("failed to terminate redis container", "error", err.Error())
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisStore(t *testing.T) {
	client := startRedis(t)
	store := cache.NewRedisStore(client)
	ctx := context.Background()

	t.Run("miss is reported as ErrCacheMiss", func(t *testing.T) {
		_, err := store.Get(ctx, "absent")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})

	t.Run("entries expire with their ttl", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "short", []byte("v"), time.Second))

		got, err := store.Get(ctx, "short")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)

		assert.Eventually(t, func() bool {
			_, err := store.Get(ctx, "short")
			return err != nil
		}, 5*time.Second, 100*time.Millisecond)
	})

	t.Run("read-through loads once and serves from redis", func(t *testing.T) {
		zones := cache.NewReadThrough[pricing.Zone](store, "zones", time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
		loads := 0
		load := func(context.Context) (pricing.Zone, error) {
			loads++
			return pricing.Zone{ID: "zone-a", PriceMultiplier: 12, PriceUnlock: 40, DefaultDeposit: 500, OfferTTLSeconds: 300}, nil
		}

		first, err := zones.Get(ctx, "zone-a", load)
		require.NoError(t, err)
		second, err := zones.Get(ctx, "zone-a", load)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, loads)
		assert.Equal(t, int64(1), client.Exists(ctx, "zones:zone-a").Val())
	})
}
