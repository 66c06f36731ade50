package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
)

func TestRetryRead_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := RetryRead(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryRead_RecoversFromTransientFailure(t *testing.T) {
	calls := 0
	err := RetryRead(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection reset")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryRead_ExhaustsAttempts(t *testing.T) {
	calls := 0
	transient := errors.New("connection reset")
	err := RetryRead(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		return transient
	})

	assert.Equal(t, transient, err)
	assert.Equal(t, 3, calls)
}

func TestRetryRead_NotFoundIsDefinitive(t *testing.T) {
	calls := 0
	err := RetryRead(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		return apperrors.Wrap(apperrors.ErrNotFound, "user not found")
	})

	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, 1, calls)
}

func TestRetryRead_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := RetryRead(ctx, 5, 10*time.Millisecond, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
