// internal/api/handler/retry.go
package handler

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"wishfund/internal/util"
)

// RetryPolicy controls how often a transient failure is retried before it is
// reported to the client.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
}

// retryTransient runs fn, retrying only errors of the transient kind with
// exponential backoff and jitter.
func retryTransient(ctx context.Context, policy RetryPolicy, fn func() error) error {
	if policy.MaxRetries <= 0 {
		return fn()
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = policy.Base
	expo.Multiplier = 2
	expo.RandomizationFactor = 0.5
	expo.MaxElapsedTime = 0

	var lastErr error
	operation := func() error {
		lastErr = fn()
		if lastErr != nil && !util.IsError(lastErr, util.ErrTransient) {
			return backoff.Permanent(lastErr)
		}
		return lastErr
	}

	b := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(policy.MaxRetries)), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		// A cancelled request ends the loop with ctx.Err(); report what the
		// service actually said instead.
		if lastErr != nil {
			return lastErr
		}
		return err
	}
	return nil
}
