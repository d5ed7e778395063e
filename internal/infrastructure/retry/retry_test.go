package retry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errBadGateway = errors.New("502 bad gateway")
	errBadRequest = errors.New("400 invalid query")
)

// fastConfig retries without meaningful waits.
func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

// flaky fails with the given errors in order, then succeeds.
func flaky(attempts *int32, errs ...error) func() (string, error) {
	return func() (string, error) {
		n := atomic.AddInt32(attempts, 1)
		if int(n) <= len(errs) {
			return "", errs[n-1]
		}
		return "offers", nil
	}
}

func TestDoWithResult(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		errs         []error
		wantResult   string
		wantErr      error
		wantAttempts int32
	}{
		{
			name:         "first attempt succeeds",
			cfg:          fastConfig(3),
			wantResult:   "offers",
			wantAttempts: 1,
		},
		{
			name:         "recovers after transient failures",
			cfg:          fastConfig(3),
			errs:         []error{errBadGateway, errBadGateway},
			wantResult:   "offers",
			wantAttempts: 3,
		},
		{
			name:         "gives up after max attempts",
			cfg:          fastConfig(2),
			errs:         []error{errBadGateway, errBadGateway, errBadGateway},
			wantErr:      errBadGateway,
			wantAttempts: 2,
		},
		{
			name:         "zero attempts still tries once",
			cfg:          fastConfig(0),
			errs:         []error{errBadGateway},
			wantErr:      errBadGateway,
			wantAttempts: 1,
		},
		{
			name:         "permanent error stops immediately",
			cfg:          fastConfig(5).WithRetryIf(SkipPermanent),
			errs:         []error{errBadGateway, NewPermanent(errBadRequest)},
			wantErr:      errBadRequest,
			wantAttempts: 2,
		},
		{
			name: "custom predicate",
			cfg: fastConfig(5).WithRetryIf(func(err error) bool {
				return errors.Is(err, errBadGateway)
			}),
			errs:         []error{errBadGateway, errBadRequest},
			wantErr:      errBadRequest,
			wantAttempts: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts int32
			result, err := DoWithResult(context.Background(), flaky(&attempts, tt.errs...), tt.cfg)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantResult, result)
			}
			assert.Equal(t, tt.wantAttempts, atomic.LoadInt32(&attempts))
		})
	}
}

func TestDo(t *testing.T) {
	var attempts int32
	err := Do(context.Background(), func() error {
		if atomic.AddInt32(&attempts, 1) < 2 {
			return errBadGateway
		}
		return nil
	}, fastConfig(3))

	require.NoError(t, err)
	assert.Equal(t, int32(2), attempts)
}

func TestDo_Context(t *testing.T) {
	slow := Config{MaxAttempts: 10, InitialDelay: 50 * time.Millisecond, MaxDelay: 100 * time.Millisecond, Multiplier: 2.0}

	t.Run("already cancelled makes no attempt", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var attempts int32
		err := Do(ctx, func() error {
			atomic.AddInt32(&attempts, 1)
			return nil
		}, DefaultConfig)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(0), attempts)
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(5 * time.Millisecond)
			cancel()
		}()

		var attempts int32
		err := Do(ctx, func() error {
			atomic.AddInt32(&attempts, 1)
			return errBadGateway
		}, slow)

		assert.ErrorIs(t, err, context.Canceled)
		assert.GreaterOrEqual(t, atomic.LoadInt32(&attempts), int32(1))
	})

	t.Run("deadline while waiting", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := Do(ctx, func() error { return errBadGateway }, slow)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestDo_OnRetry(t *testing.T) {
	var waits []time.Duration
	var failed []int

	cfg := Config{
		MaxAttempts:  4,
		InitialDelay: 2 * time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		assert.ErrorIs(t, err, errBadGateway)
		failed = append(failed, attempt)
		waits = append(waits, wait)
	})

	err := Do(context.Background(), func() error { return errBadGateway }, cfg)

	require.Error(t, err)
	// no hook after the last attempt
	assert.Equal(t, []int{1, 2, 3}, failed)
	assert.Equal(t, []time.Duration{2 * time.Millisecond, 4 * time.Millisecond, 5 * time.Millisecond}, waits)
}

func TestCalculateSleepTime(t *testing.T) {
	tests := []struct {
		name     string
		delay    time.Duration
		maxDelay time.Duration
		jitter   float64
		min, max time.Duration
	}{
		{"no jitter", 100 * time.Millisecond, time.Second, 0, 100 * time.Millisecond, 100 * time.Millisecond},
		{"jitter stays within factor", 100 * time.Millisecond, time.Second, 0.2, 100 * time.Millisecond, 120 * time.Millisecond},
		{"capped by max delay", 3 * time.Second, time.Second, 0.5, time.Second, time.Second},
		{"no cap when max is zero", 3 * time.Second, 0, 0, 3 * time.Second, 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateSleepTime(tt.delay, tt.maxDelay, tt.jitter)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}

func TestPermanent(t *testing.T) {
	assert.Nil(t, NewPermanent(nil))
	assert.Equal(t, "permanent error", (&Permanent{}).Error())

	err := NewPermanent(errBadRequest)
	assert.Equal(t, errBadRequest.Error(), err.Error())
	assert.ErrorIs(t, err, errBadRequest)
	assert.True(t, IsPermanent(err))
	assert.True(t, IsPermanent(errors.Join(errBadGateway, err)))
	assert.False(t, IsPermanent(errBadGateway))
	assert.False(t, SkipPermanent(err))
	assert.True(t, SkipPermanent(errBadGateway))
}

func TestConfigBuilders(t *testing.T) {
	cfg := DefaultConfig.
		WithMaxAttempts(5).
		WithInitialDelay(300 * time.Millisecond).
		WithMaxDelay(4 * time.Second)

	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 300*time.Millisecond, cfg.InitialDelay)
	assert.Equal(t, 4*time.Second, cfg.MaxDelay)
	assert.Equal(t, 3, DefaultConfig.MaxAttempts, "builders must not mutate the receiver")
}

func TestProviderConfig(t *testing.T) {
	assert.Equal(t, 3, ProviderConfig.MaxAttempts)
	assert.Equal(t, 200*time.Millisecond, ProviderConfig.InitialDelay)
	assert.Equal(t, 5*time.Second, ProviderConfig.MaxDelay)
	assert.Equal(t, 0.2, ProviderConfig.JitterFactor)
	require.NotNil(t, ProviderConfig.RetryIf)
	assert.False(t, ProviderConfig.RetryIf(NewPermanent(errBadRequest)))
	assert.True(t, ProviderConfig.RetryIf(errBadGateway))
}
