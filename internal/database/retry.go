package database

import (
	"context"
	"time"

	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
)

// RetryRead runs fn up to attempts times, sleeping backoff, 2*backoff, ... between
// tries. Intended for idempotent reads only; writes must not be retried here.
// Domain errors (not found, invalid input) are definitive answers and are
// returned immediately without further attempts. Context cancellation stops
// the retry loop early.
func RetryRead(ctx context.Context, attempts int, backoff time.Duration, fn func(ctx context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := backoff * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err = fn(ctx)
		if err == nil {
			return nil
		}
		if apperrors.Is(err, apperrors.ErrNotFound) || apperrors.Is(err, apperrors.ErrInvalidInput) {
			return err
		}
	}

	return err
}
