package cache

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks a failure worth retrying, such as a dropped Redis
// connection.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return "retryable: " + e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable wraps err as a RetryableError. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err, or any error it wraps, is retryable.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// retryPolicy doubles the delay after every failed attempt.
type retryPolicy struct {
	attempts int
	delay    time.Duration
}

// retryDelay is the first backoff interval; tests shorten it.
var retryDelay = 100 * time.Millisecond

func (p retryPolicy) do(ctx context.Context, fn func() error) error {
	delay := p.delay
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !IsRetryable(err) || attempt == p.attempts {
			return err
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}

// RetryWithBackoff calls fn up to three times while it returns a
// RetryableError, waiting 100ms, then 200ms between attempts.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return retryPolicy{attempts: 3, delay: retryDelay}.do(ctx, fn)
}
