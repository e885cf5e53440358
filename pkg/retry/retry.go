// Package retry provides a generic exponential-backoff helper for remote
// calls. None of the primary flows invoke it automatically; callers opt in.
package retry

import (
	"context"
	"time"
)

const (
	// DefaultMaxAttempts is the number of invocations before giving up
	DefaultMaxAttempts = 3

	// DefaultInitialDelay is the wait before the second attempt.
	// The delay doubles after every failed attempt. No jitter.
	DefaultInitialDelay = 1000 * time.Millisecond
)

// Option customizes retry behavior
type Option func(*options)

type options struct {
	maxAttempts  int
	initialDelay time.Duration
	sleep        func(ctx context.Context, d time.Duration) error
}

// WithMaxAttempts overrides the attempt count
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// WithInitialDelay overrides the first backoff delay
func WithInitialDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.initialDelay = d
		}
	}
}

// WithSleep replaces the sleep function, used by tests to observe delays
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(o *options) {
		o.sleep = sleep
	}
}

// Do invokes fn until it succeeds or maxAttempts invocations have failed,
// waiting initialDelay, 2*initialDelay, 4*initialDelay, ... between
// attempts. The last error is returned once attempts are exhausted.
func Do[T any](ctx context.Context, fn func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	o := options{
		maxAttempts:  DefaultMaxAttempts,
		initialDelay: DefaultInitialDelay,
		sleep:        defaultSleep,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var zero T
	var lastErr error

	delay := o.initialDelay
	for attempt := 0; attempt < o.maxAttempts; attempt++ {
		if attempt > 0 {
			if err := o.sleep(ctx, delay); err != nil {
				return zero, err
			}
			delay *= 2
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}

	return zero, lastErr
}

func defaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
