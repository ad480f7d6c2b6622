// Package retry wraps a single-attempt call with an exponential backoff schedule.
package retry

import (
	"context"
	"log/slog"
	"time"

	"order-offer-service/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// Policy describes how many times an operation runs and how long to wait in between.
// A nil Retryable treats every error as retryable.
type Policy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	Retryable       func(error) bool
	Logger          *slog.Logger
}

// Single runs the operation exactly once.
func Single() Policy {
	return Policy{MaxAttempts: 1}
}

// Critical is the default schedule for calls that change physical or financial state:
// 3 attempts, 200ms doubling, capped at 2s.
func Critical(retryable func(error) bool) Policy {
	return Policy{
		MaxAttempts:     3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		Multiplier:      2,
		Retryable:       retryable,
	}
}

// Do calls op until it succeeds, returns a non-retryable error, runs out of attempts,
// or ctx is done. The last error is returned as is; when ctx ends during a wait the
// last op error is wrapped so its marks survive.
func (p Policy) Do(ctx context.Context, name string, op func(ctx context.Context) error) error {
	attempt := 0
	var lastErr error
	operation := func() error {
		attempt++
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if p.Retryable != nil && !p.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		p.logger().Warn("retrying operation",
			"operation", name,
			"attempt", attempt,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	err := backoff.RetryNotify(operation, p.backOff(ctx), notify)
	if lastErr != nil && ctx.Err() != nil && err == ctx.Err() {
		return errs.Wrapf(lastErr, "%s interrupted after %d attempts: %v", name, attempt, err)
	}
	return err
}

// Schedule returns the waits between attempts, useful to inspect a policy.
func (p Policy) Schedule() []time.Duration {
	b := p.exponential()
	var waits []time.Duration
	for i := 1; i < p.attempts(); i++ {
		waits = append(waits, b.NextBackOff())
	}
	return waits
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	var b backoff.BackOff = p.exponential()
	b = backoff.WithMaxRetries(b, uint64(p.attempts()-1))
	return backoff.WithContext(b, ctx)
}

func (p Policy) exponential() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	if p.Multiplier > 0 {
		b.Multiplier = p.Multiplier
	}
	// attempts bound the schedule, not elapsed time
	b.MaxElapsedTime = 0
	b.RandomizationFactor = 0
	b.Reset()
	return b
}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

func (p Policy) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
