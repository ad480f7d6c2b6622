//go:build unit

package archive_test

import (
	"math"
	"math/bits"
	"testing"
	"time"

	"order-offer-service/internal/infra/archive"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	id := uuid.MustParse("7b3c1d0e-2f4a-4c5b-8d6e-9f0a1b2c3d4e")

	t.Run("partitions by UTC date of finish", func(t *testing.T) {
		finished := time.Date(2025, 1, 5, 23, 30, 0, 0, time.FixedZone("UTC-3", -3*3600))
		assert.Equal(t, "orders/year=2025/month=01/day=06/7b3c1d0e-2f4a-4c5b-8d6e-9f0a1b2c3d4e.json", archive.Key(id, finished))
	})

	t.Run("stable across calls", func(t *testing.T) {
		finished := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, archive.Key(id, finished), archive.Key(id, finished))
	})
}

func TestRetentionDays(t *testing.T) {
	tests := []struct {
		name     string
		ttl      int64
		maxDays  int
		expected int
	}{
		{name: "zero ttl keeps one day", ttl: 0, maxDays: 365, expected: 1},
		{name: "exact power of two", ttl: 64, maxDays: 365, expected: 64},
		{name: "rounds up", ttl: 65, maxDays: 365, expected: 128},
		{name: "capped at maximum", ttl: 600, maxDays: 365, expected: 365},
		{name: "no cap configured", ttl: 600, maxDays: 0, expected: 1024},
		{name: "huge ttl without cap saturates", ttl: math.MaxInt64, maxDays: 0, expected: 1 << (bits.UintSize - 2)},
		{name: "huge ttl with cap", ttl: math.MaxInt64, maxDays: 365, expected: 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, archive.RetentionDays(tt.ttl, tt.maxDays))
		})
	}
}
