// Package retry provides bounded retry with exponential backoff. Only
// errors explicitly marked retryable are retried; everything else aborts
// immediately.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	clog "github.com/OnslaughtSnail/vitae/pkg/log"
)

// Config holds retry configuration.
type Config struct {
	MaxRetries  int           // retry attempts after the first try
	BaseDelay   time.Duration // initial delay between retries
	MaxDelay    time.Duration // cap on the delay
	Multiplier  float64       // exponential backoff multiplier
	JitterRatio float64       // 0..1 randomness added to each delay
}

// DefaultConfig suits short local races such as store commit conflicts.
func DefaultConfig() Config {
	return Config{
		MaxRetries:  3,
		BaseDelay:   10 * time.Millisecond,
		MaxDelay:    250 * time.Millisecond,
		Multiplier:  2.0,
		JitterRatio: 0.1,
	}
}

// RetryableError wraps an error that should trigger a retry.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable checks if an error should be retried.
func IsRetryable(err error) bool {
	var retryable *RetryableError
	return errors.As(err, &retryable)
}

// Retryable wraps an error to indicate it should be retried.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Do executes fn with retries using exponential backoff.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !IsRetryable(err) {
			return zero, err
		}

		if attempt == cfg.MaxRetries {
			break
		}

		delay := cfg.calculateDelay(attempt)
		clog.Debug("retrying after error",
			"attempt", attempt+1,
			"max_retries", cfg.MaxRetries,
			"delay", delay,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	var retryable *RetryableError
	if errors.As(lastErr, &retryable) {
		return zero, retryable.Err
	}
	return zero, lastErr
}

func (c Config) calculateDelay(attempt int) time.Duration {
	delay := float64(c.BaseDelay) * math.Pow(c.Multiplier, float64(attempt))
	if delay > float64(c.MaxDelay) {
		delay = float64(c.MaxDelay)
	}
	if c.JitterRatio > 0 {
		jitter := delay * c.JitterRatio * (rand.Float64()*2 - 1)
		delay += jitter
	}
	return time.Duration(delay)
}
