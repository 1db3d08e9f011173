package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/sethvargo/go-retry"
)

// RetryPolicy describes how a failed record API call is repeated.
type RetryPolicy struct {
	// Retries is the number of attempts after the first one.
	Retries int
	// BaseDelay is the first backoff delay; it doubles on every retry.
	BaseDelay time.Duration
}

// Do runs op until it succeeds or the policy is exhausted and returns the
// last error. Every error is retried. Authentication failures are logged
// separately so that an expiring session is visible in the logs.
func (p RetryPolicy) Do(ctx context.Context, log *logger.Logger, name string, op func(ctx context.Context) error) error {
	retries := p.Retries
	if retries < 0 {
		retries = 0
	}
	base := p.BaseDelay
	if base <= 0 {
		base = time.Millisecond
	}

	backoff := retry.WithMaxRetries(uint64(retries), retry.NewExponential(base))

	attempt := 0
	var lastErr error
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		msg := "record api call failed"
		if IsAuthError(lastErr) {
			msg = "record api auth failure"
		}
		log.Warn().Err(lastErr).
			Str("op", name).
			Int("attempt", attempt).
			Int("max_attempts", retries+1).
			Msg(msg)

		return retry.RetryableError(lastErr)
	})
	if err == nil {
		return nil
	}

	if !errors.Is(err, lastErr) {
		// the context ended while waiting between attempts
		return fmt.Errorf("%s: %w", name, errors.Join(err, lastErr))
	}
	return fmt.Errorf("%s: %w", name, lastErr)
}
