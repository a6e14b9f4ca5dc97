package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() *Config {
	return &Config{
		MaxRetries:    3,
		BackoffFactor: 2,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
	}
}

func TestRetry_SuccessOnFirstTry(t *testing.T) {
	calls := 0
	err := NewRetrier(fastConfig()).Do(context.Background(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetry_SuccessAfterRetries(t *testing.T) {
	calls := 0
	err := NewRetrier(fastConfig()).Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("busy")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_MaxRetriesExceeded(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxRetries = 2
	want := errors.New("permanent error")

	calls := 0
	err := NewRetrier(cfg).Do(context.Background(), func() error {
		calls++
		return want
	})

	require.ErrorIs(t, err, want)
	assert.Equal(t, 3, calls, "initial try plus two retries")
}

func TestRetry_NonRetryableStopsImmediately(t *testing.T) {
	fatal := errors.New("corrupt")
	cfg := fastConfig()
	cfg.Retryable = func(err error) bool { return !errors.Is(err, fatal) }

	calls := 0
	err := NewRetrier(cfg).Do(context.Background(), func() error {
		calls++
		return fatal
	})

	require.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig()
	cfg.InitialDelay = time.Second
	cfg.MaxDelay = time.Second

	err := NewRetrier(cfg).Do(ctx, func() error {
		cancel()
		return errors.New("operation error after cancel")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetry_BackoffIsCapped(t *testing.T) {
	cfg := &Config{
		MaxRetries:    3,
		BackoffFactor: 10,
		InitialDelay:  10 * time.Millisecond,
		MaxDelay:      20 * time.Millisecond,
	}

	start := time.Now()
	_ = NewRetrier(cfg).Do(context.Background(), func() error {
		return errors.New("error")
	})
	elapsed := time.Since(start)

	// 10ms, then 20ms twice once the cap kicks in.
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}

func TestNewLockConfig(t *testing.T) {
	locked := errors.New("locked")
	cfg := NewLockConfig(func(err error) bool { return errors.Is(err, locked) })

	require.NotNil(t, cfg.Retryable)
	assert.True(t, cfg.Retryable(locked))
	assert.False(t, cfg.Retryable(errors.New("other")))
	assert.LessOrEqual(t, cfg.InitialDelay, cfg.MaxDelay)
}
