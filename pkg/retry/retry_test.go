package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")
var errPermanent = errors.New("permanent")

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	policy := Policy{
		MaxAttempts:  5,
		InitialDelay: time.Millisecond,
	}

	attempts := 0
	err := policy.Do(context.Background(), func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errTransient
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDoStopsOnNonRetryableError(t *testing.T) {
	policy := Policy{
		MaxAttempts:  5,
		InitialDelay: time.Millisecond,
		Retryable:    func(err error) bool { return errors.Is(err, errTransient) },
	}

	attempts := 0
	err := policy.Do(context.Background(), func(context.Context) error {
		attempts++
		return errPermanent
	})

	require.ErrorIs(t, err, errPermanent)
	assert.Equal(t, 1, attempts)
}

func TestDoExhaustsAttempts(t *testing.T) {
	policy := Policy{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
	}

	attempts := 0
	err := policy.Do(context.Background(), func(context.Context) error {
		attempts++
		return errTransient
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.ErrorIs(t, err, errTransient)
	assert.Contains(t, err.Error(), "giving up after 3 attempts")
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	policy := Policy{
		MaxAttempts:  10,
		InitialDelay: time.Hour, // only cancellation can end the wait
	}

	attempts := 0
	done := make(chan error, 1)
	go func() {
		done <- policy.Do(ctx, func(context.Context) error {
			attempts++
			return errTransient
		})
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	case <-time.After(time.Second):
		t.Fatal("Do did not return after cancellation")
	}
}

func TestDoAppliesServerMandatedDelay(t *testing.T) {
	const floor = 30 * time.Millisecond

	policy := Policy{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MinDelay: func(err error) time.Duration {
			if errors.Is(err, errTransient) {
				return floor
			}
			return 0
		},
	}

	var waits []time.Duration
	policy.OnRetry = func(attempt int, wait time.Duration, err error) {
		waits = append(waits, wait)
	}

	start := time.Now()
	err := policy.Do(context.Background(), func(context.Context) error {
		return errTransient
	})
	elapsed := time.Since(start)

	require.Error(t, err)
	require.Len(t, waits, 1)
	assert.Equal(t, floor, waits[0])
	assert.GreaterOrEqual(t, elapsed, floor)
}

func TestDoCapsDelayAtMax(t *testing.T) {
	policy := Policy{
		MaxAttempts:  4,
		InitialDelay: 2 * time.Millisecond,
		MaxDelay:     3 * time.Millisecond,
		Multiplier:   10,
	}

	var waits []time.Duration
	policy.OnRetry = func(attempt int, wait time.Duration, err error) {
		waits = append(waits, wait)
	}

	err := policy.Do(context.Background(), func(context.Context) error {
		return errTransient
	})

	require.Error(t, err)
	require.Len(t, waits, 3)
	assert.Equal(t, 2*time.Millisecond, waits[0])
	for _, w := range waits[1:] {
		assert.Equal(t, 3*time.Millisecond, w)
	}
}

func TestDoUnlimitedAttemptsStopOnSuccess(t *testing.T) {
	policy := Policy{InitialDelay: time.Millisecond}

	attempts := 0
	err := policy.Do(context.Background(), func(context.Context) error {
		attempts++
		if attempts < 7 {
			return errTransient
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, attempts)
}
