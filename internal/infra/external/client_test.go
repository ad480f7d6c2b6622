//go:build unit

package external_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/handler/httperr"
	"order-offer-service/internal/infra/external"
	"order-offer-service/internal/pkg/cache"
	"order-offer-service/internal/pkg/clock"
	"order-offer-service/internal/pkg/config"
	"order-offer-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStub(t *testing.T, register func(r *gin.Engine)) *external.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().Upstream
	cfg.BaseURL = srv.URL
	return external.NewClient(cfg, discard())
}

func TestVehicleClient_GetVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("success: decodes the snapshot", func(t *testing.T) {
		client := newStub(t, func(r *gin.Engine) {
			r.GET("/vehicles/:id", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"zone_id": "zone-a", "available": true, "charge": 64})
			})
		})

		actual, err := external.NewVehicleClient(client).GetVehicle(ctx, 101)

		require.NoError(t, err)
		assert.Equal(t, pricing.Vehicle{ID: 101, ZoneID: "zone-a", Available: true, Charge: 64}, actual)
	})

	t.Run("success: missing charge defaults to full", func(t *testing.T) {
		client := newStub(t, func(r *gin.Engine) {
			r.GET("/vehicles/:id", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"zone_id": "z", "available": true})
			})
		})

		actual, err := external.NewVehicleClient(client).GetVehicle(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, pricing.Vehicle{ID: 1, ZoneID: "z", Available: true, Charge: 100}, actual)
	})

	t.Run("success: zero charge is kept", func(t *testing.T) {
		client := newStub(t, func(r *gin.Engine) {
			r.GET("/vehicles/:id", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"zone_id": "z", "available": true, "charge": 0})
			})
		})

		actual, err := external.NewVehicleClient(client).GetVehicle(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, 0, actual.Charge)
	})

	t.Run("error: 404 is vehicle not found", func(t *testing.T) {
		client := newStub(t, func(r *gin.Engine) {
			r.GET("/vehicles/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
		})

		_, err := external.NewVehicleClient(client).GetVehicle(ctx, 404)

		assert.True(t, errs.Is(err, errs.ErrVehicleNotFound))
		assert.Equal(t, http.StatusNotFound, external.StatusCode(err))
	})

	t.Run("error: 5xx is not retried for reads", func(t *testing.T) {
		var calls atomic.Int32
		client := newStub(t, func(r *gin.Engine) {
			r.GET("/vehicles/:id", func(c *gin.Context) {
				calls.Add(1)
				c.Status(http.StatusServiceUnavailable)
			})
		})

		_, err := external.NewVehicleClient(client).GetVehicle(ctx, 101)

		assert.True(t, errs.Is(err, errs.ErrExternalServiceUnavailable))
		assert.True(t, external.IsTransient(err))
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestVehicleClient_Lock(t *testing.T) {
	ctx := context.Background()

	t.Run("success: recovers from transient failures", func(t *testing.T) {
		var calls atomic.Int32
		client := newStub(t, func(r *gin.Engine) {
			r.PUT("/vehicles/:id/lock", func(c *gin.Context) {
				if calls.Add(1) < 3 {
					c.Status(http.StatusBadGateway)
					return
				}
				c.JSON(http.StatusOK, gin.H{"success": true})
			})
		})

		err := external.NewVehicleClient(client).Lock(ctx, 101)

		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("error: gives up after the last attempt", func(t *testing.T) {
		var calls atomic.Int32
		client := newStub(t, func(r *gin.Engine) {
			r.PUT("/vehicles/:id/unlock", func(c *gin.Context) {
				calls.Add(1)
				c.Status(http.StatusInternalServerError)
			})
		})

		err := external.NewVehicleClient(client).Unlock(ctx, 101)

		assert.True(t, errs.Is(err, errs.ErrExternalServiceUnavailable))
		assert.Equal(t, http.StatusInternalServerError, external.StatusCode(err))
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("error: client errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		client := newStub(t, func(r *gin.Engine) {
			r.PUT("/vehicles/:id/lock", func(c *gin.Context) {
				calls.Add(1)
				c.Status(http.StatusBadRequest)
			})
		})

		err := external.NewVehicleClient(client).Lock(ctx, 101)

		assert.True(t, errs.Is(err, errs.ErrExternalServiceUnavailable))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("error: refused lock is vehicle unavailable", func(t *testing.T) {
		client := newStub(t, func(r *gin.Engine) {
			r.PUT("/vehicles/:id/lock", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"success": false})
			})
		})

		err := external.NewVehicleClient(client).Lock(ctx, 101)

		assert.True(t, errs.Is(err, errs.ErrVehicleUnavailable))
	})
}

func TestVehicleClient_LockCanceledDuringBackoff(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls atomic.Int32
	r := gin.New()
	r.PUT("/vehicles/:id/lock", func(c *gin.Context) {
		calls.Add(1)
		c.Status(http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().Upstream
	cfg.BaseURL = srv.URL
	cfg.RetryInitialInterval = time.Second
	cfg.RetryMaxInterval = time.Second
	client := external.NewClient(cfg, discard())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(200*time.Millisecond, cancel)

	err := external.NewVehicleClient(client).Lock(ctx, 101)

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrExternalServiceUnavailable), "got %v", err)
	assert.Equal(t, http.StatusServiceUnavailable, external.StatusCode(err))
	assert.Equal(t, int32(1), calls.Load())

	status, code := httperr.Classify(err)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "external_service_unavailable", code)
}

func TestPaymentClient(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("success: hold sends the amount", func(t *testing.T) {
		var gotAmount, gotOrder string
		client := newStub(t, func(r *gin.Engine) {
			r.PUT("/payments/:user/:order/hold", func(c *gin.Context) {
				gotAmount = c.Query("amount")
				gotOrder = c.Param("order")
				c.JSON(http.StatusOK, gin.H{"success": true})
			})
		})

		err := external.NewPaymentClient(client).Hold(ctx, 7, orderID, 500)

		require.NoError(t, err)
		assert.Equal(t, "500", gotAmount)
		assert.Equal(t, orderID.String(), gotOrder)
	})

	t.Run("success: conflicting hold counts as placed", func(t *testing.T) {
		client := newStub(t, func(r *gin.Engine) {
			r.PUT("/payments/:user/:order/hold", func(c *gin.Context) { c.Status(http.StatusConflict) })
		})

		assert.NoError(t, external.NewPaymentClient(client).Hold(ctx, 7, orderID, 500))
	})

	t.Run("error: declined clear", func(t *testing.T) {
		var calls atomic.Int32
		client := newStub(t, func(r *gin.Engine) {
			r.PUT("/payments/:user/:order/clear", func(c *gin.Context) {
				calls.Add(1)
				c.JSON(http.StatusOK, gin.H{"success": false})
			})
		})

		err := external.NewPaymentClient(client).Clear(ctx, 7, orderID, 150)

		assert.True(t, errs.Is(err, errs.ErrPaymentDeclined))
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestUserClient(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		status   int
		body     gin.H
		expected pricing.UserProfile
		degraded bool
	}{
		{name: "current field", status: http.StatusOK, body: gin.H{"has_subscription": true, "trusted": true}, expected: pricing.UserProfile{HasSubscription: true, Trusted: true}},
		{name: "legacy misspelled field", status: http.StatusOK, body: gin.H{"has_subscribtion": true, "trusted": false}, expected: pricing.UserProfile{HasSubscription: true}},
		{name: "upstream failure falls back", status: http.StatusInternalServerError, expected: pricing.DefaultUserProfile(), degraded: true},
		{name: "unknown user falls back", status: http.StatusNotFound, expected: pricing.DefaultUserProfile(), degraded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newStub(t, func(r *gin.Engine) {
				r.GET("/users/:id", func(c *gin.Context) {
					if tt.body == nil {
						c.Status(tt.status)
						return
					}
					c.JSON(tt.status, tt.body)
				})
			})

			actual := external.NewUserClient(client).GetProfile(ctx, 7)

			assert.Equal(t, tt.expected, actual.Value)
			assert.Equal(t, tt.degraded, actual.Degraded)
		})
	}
}

func TestZoneClient(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	client := newStub(t, func(r *gin.Engine) {
		r.GET("/zones/:id", func(c *gin.Context) {
			calls.Add(1)
			if c.Param("id") == "missing" {
				c.Status(http.StatusNotFound)
				return
			}
			c.JSON(http.StatusOK, gin.H{"price_multiplier": 20, "price_unlock": 40})
		})
	})
	zoneCache := cache.NewReadThrough[pricing.Zone](cache.NewMemoryStore(clock.NewRealClock()), "zones", time.Minute, discard())
	zones := external.NewZoneClient(client, zoneCache)

	first, err := zones.GetZone(ctx, "zone-a")
	require.NoError(t, err)
	second, err := zones.GetZone(ctx, "zone-a")
	require.NoError(t, err)

	assert.Equal(t, pricing.Zone{ID: "zone-a", PriceMultiplier: 20, PriceUnlock: 40, DefaultDeposit: 1000, OfferTTLSeconds: 300}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())

	_, err = zones.GetZone(ctx, "missing")
	assert.True(t, errs.Is(err, errs.ErrZoneNotFound))
}

func TestPriceConfigClient(t *testing.T) {
	ctx := context.Background()

	t.Run("success: missing fields are neutral", func(t *testing.T) {
		client := newStub(t, func(r *gin.Engine) {
			r.GET("/configs/price_coeff_settings", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"surge": 1.5})
			})
		})
		configCache := cache.NewReadThrough[pricing.Coefficients](cache.NewMemoryStore(clock.NewRealClock()), "configs", time.Minute, discard())

		actual := external.NewPriceConfigClient(client, configCache).GetCoefficients(ctx)

		require.False(t, actual.Degraded)
		assert.Equal(t, &pricing.Coefficients{Surge: 1.5, LowChargeDiscount: 1}, actual.Value)
	})

	t.Run("success: failure degrades to no coefficients and is not cached", func(t *testing.T) {
		var calls atomic.Int32
		client := newStub(t, func(r *gin.Engine) {
			r.GET("/configs/price_coeff_settings", func(c *gin.Context) {
				calls.Add(1)
				c.Status(http.StatusServiceUnavailable)
			})
		})
		configCache := cache.NewReadThrough[pricing.Coefficients](cache.NewMemoryStore(clock.NewRealClock()), "configs", time.Minute, discard())
		configs := external.NewPriceConfigClient(client, configCache)

		first := configs.GetCoefficients(ctx)
		second := configs.GetCoefficients(ctx)

		assert.True(t, first.Degraded)
		assert.Nil(t, first.Value)
		assert.True(t, second.Degraded)
		assert.Equal(t, int32(2), calls.Load())
	})
}
