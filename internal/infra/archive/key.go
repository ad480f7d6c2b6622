package archive

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Key places an order under the UTC date of its finish time.
// The same order always maps to the same key.
func Key(orderID uuid.UUID, finishedAt time.Time) string {
	t := finishedAt.UTC()
	return fmt.Sprintf("orders/year=%04d/month=%02d/day=%02d/%s.json", t.Year(), int(t.Month()), t.Day(), orderID.String())
}

// RetentionDays rounds ttl up to the next power of two, capped at maxDays.
// Without a cap the result saturates at the largest power of two an int holds.
func RetentionDays(ttl int64, maxDays int) int {
	days := 1
	for int64(days) < ttl {
		if days > math.MaxInt/2 {
			return days
		}
		days <<= 1
		if maxDays > 0 && days >= maxDays {
			return maxDays
		}
	}
	if maxDays > 0 && days > maxDays {
		return maxDays
	}
	return days
}
