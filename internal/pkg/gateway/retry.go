package gateway

import (
	"context"
	"time"
)

const (
	DefaultMaxRetries = 2
	DefaultBaseDelay  = time.Second
)

// RetryPolicy decides whether and when a failed call is attempted again.
// Only idempotent operations are ever retried, and only on timeouts and server errors.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// DefaultRetryPolicy allows two extra attempts, waiting 1s then 2s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: DefaultMaxRetries, BaseDelay: DefaultBaseDelay}
}

// capped keeps MaxRetries within [0, DefaultMaxRetries].
func (p RetryPolicy) capped() RetryPolicy {
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.MaxRetries > DefaultMaxRetries {
		p.MaxRetries = DefaultMaxRetries
	}
	return p
}

// ShouldRetry reports whether the call that failed on the given zero-based attempt may run again.
func (p RetryPolicy) ShouldRetry(idempotent bool, err *Error, attempt int) bool {
	if !idempotent || err == nil {
		return false
	}
	if attempt >= p.MaxRetries {
		return false
	}
	return err.Retryable()
}

// Backoff returns the wait before retry number attempt+1: BaseDelay, 2*BaseDelay, 4*BaseDelay...
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	return p.BaseDelay << uint(attempt)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
