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
	counter := 0
	err := NewDefaultRetrier().Do(context.Background(), func() error {
		counter++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, counter)
}

func TestRetry_SuccessAfterRetries(t *testing.T) {
	counter := 0
	var retries []int
	cfg := fastConfig()
	cfg.OnRetry = func(attempt int, delay time.Duration, err error) {
		retries = append(retries, attempt)
	}

	err := NewRetrier(cfg).Do(context.Background(), func() error {
		counter++
		if counter < 3 {
			return errors.New("device busy")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, counter)
	assert.Equal(t, []int{1, 2}, retries)
}

func TestRetry_MaxRetriesExceeded(t *testing.T) {
	expectedErr := errors.New("permanent error")
	counter := 0

	err := NewRetrier(fastConfig()).Do(context.Background(), func() error {
		counter++
		return expectedErr
	})

	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 4, counter)
}

func TestRetry_ShouldRetryStopsEarly(t *testing.T) {
	fatal := errors.New("permission denied")
	cfg := fastConfig()
	cfg.ShouldRetry = func(err error) bool { return !errors.Is(err, fatal) }

	counter := 0
	err := NewRetrier(cfg).Do(context.Background(), func() error {
		counter++
		return fatal
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, counter)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig()
	cfg.InitialDelay = time.Hour
	cfg.MaxDelay = time.Hour
	cfg.OnRetry = func(int, time.Duration, error) { cancel() }

	err := NewRetrier(cfg).Do(ctx, func() error {
		return errors.New("temporary")
	})

	assert.ErrorIs(t, err, context.Canceled)
}
