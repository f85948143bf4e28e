// Package retry provides bounded exponential backoff for transient failures.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy describes how an operation is retried: how many attempts, how
// the delay between attempts grows, and which errors are worth retrying.
// The zero value retries nothing useful; construct with explicit fields.
type Policy struct {
	// MaxAttempts is the total number of attempts including the first.
	// Zero or negative means retry until the context is cancelled.
	MaxAttempts int

	// InitialDelay is the wait before the second attempt.
	InitialDelay time.Duration

	// MaxDelay caps the growing delay. Zero means uncapped.
	MaxDelay time.Duration

	// Multiplier scales the delay after each failed attempt.
	// Values <= 1 fall back to 2.
	Multiplier float64

	// Retryable decides whether an error is transient. A nil predicate
	// treats every error as retryable.
	Retryable func(error) bool

	// MinDelay extracts a server-mandated floor for the next wait,
	// e.g. a Retry-After header carried on the error. The scheduled
	// backoff still advances underneath it.
	MinDelay func(error) time.Duration

	// OnRetry is invoked before each wait, with the attempt that just
	// failed and the delay about to be taken.
	OnRetry func(attempt int, wait time.Duration, err error)
}

// Do runs op until it succeeds, fails with a non-retryable error,
// exhausts MaxAttempts, or ctx is cancelled. The last operation error
// is wrapped on exhaustion so callers can errors.Is/As through it.
func (p Policy) Do(ctx context.Context, op func(context.Context) error) error {
	multiplier := p.Multiplier
	if multiplier <= 1 {
		multiplier = 2
	}

	delay := p.InitialDelay
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := op(ctx)
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return fmt.Errorf("giving up after %d attempts: %w", attempt, err)
		}

		wait := delay
		if p.MinDelay != nil {
			if floor := p.MinDelay(err); floor > wait {
				wait = floor
			}
		}
		if p.MaxDelay > 0 && wait > p.MaxDelay {
			wait = p.MaxDelay
		}
		if p.OnRetry != nil {
			p.OnRetry(attempt, wait, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * multiplier)
		if p.MaxDelay > 0 {
			delay = min(delay, p.MaxDelay)
		}
	}
}
