//go:build unit

package uow

import (
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestShouldRetry(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		attempt  int
		expected bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, attempt: 0, expected: true},
		{name: "wrapped deadlock", err: fmt.Errorf("commit: %w", &pgconn.PgError{Code: pgErrCodeDeadlockDetected}), attempt: 2, expected: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, attempt: 0, expected: false},
		{name: "plain error", err: fmt.Errorf("boom"), attempt: 0, expected: false},
		{name: "retries exhausted", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, attempt: 3, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shouldRetry(tt.err, tt.attempt, 3))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := range 4 {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}
