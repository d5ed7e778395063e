package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/logger"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestNewFlightSearchUseCase tests the constructor.
func TestNewFlightSearchUseCase(t *testing.T) {
	ctrl := gomock.NewController(t)

	tests := []struct {
		name   string
		config *Config
		want   Config
	}{
		{
			name:   "with default config",
			config: nil,
			want:   DefaultConfig(),
		},
		{
			name:   "with custom config",
			config: &Config{SearchTimeout: 20 * time.Second, ProviderTimeout: 3 * time.Second},
			want:   Config{SearchTimeout: 20 * time.Second, ProviderTimeout: 3 * time.Second},
		},
		{
			name:   "zero values fall back to defaults",
			config: &Config{ProviderTimeout: 4 * time.Second},
			want:   Config{SearchTimeout: DefaultSearchTimeout, ProviderTimeout: 4 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewFlightSearchUseCase(setupMockProvider(ctrl, "amadeus"), domain.NewMockSearchSessionStore(ctrl), tt.config)
			require.NotNil(t, uc)

			impl := uc.(*flightSearchUseCase)
			assert.Equal(t, tt.want.SearchTimeout, impl.searchTimeout)
			assert.Equal(t, tt.want.ProviderTimeout, impl.providerTimeout)
		})
	}
}

func TestSearch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := setupMockProvider(ctrl, "amadeus")
	provider.EXPECT().SearchOffers(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.SearchRequest) ([]domain.RawOffer, error) {
			assert.Equal(t, "JFK", req.OriginCode)
			assert.Equal(t, "LAX", req.DestinationCode)
			assert.Equal(t, "2026-07-01", req.DepartureDate)
			assert.Equal(t, 1, req.AdultCount)
			return testRawOffers(t), nil
		},
	)

	var saved domain.SearchSession
	sessions := domain.NewMockSearchSessionStore(ctrl)
	sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s domain.SearchSession) error {
			saved = s
			return nil
		},
	)

	var buf bytes.Buffer
	log := logger.NewWithOutput(logger.Config{Level: "debug", Format: "json"}, &buf)
	m := metrics.New(prometheus.NewRegistry())

	uc := NewFlightSearchUseCase(provider, sessions, nil, WithClock(testClock()), WithLogger(log), WithMetrics(m))

	result, err := uc.Search(context.Background(), "sess-1", validSearchParams(), DefaultSearchOptions())

	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "sess-1", result.SessionID)
	assert.Equal(t, []string{"3", "2", "1"}, offerIDs(result.Offers))
	assert.Equal(t, "amadeus", result.Metadata.Provider)
	assert.Equal(t, 4, result.Metadata.OffersReceived)
	assert.Equal(t, 1, result.Metadata.OffersSkipped)
	assert.Equal(t, 3, result.Metadata.TotalResults)
	assert.GreaterOrEqual(t, result.Metadata.SearchTimeMs, int64(0))

	assert.Equal(t, "sess-1", saved.ID)
	assert.Len(t, saved.Offers, 4, "every raw offer is kept for later steps")
	assert.Equal(t, testNow, saved.CreatedAt)
	assert.Equal(t, "JFK", saved.Request.OriginCode)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(outcomeOK)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.OffersNormalized))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OffersSkipped))

	assert.Contains(t, buf.String(), "skipping malformed offer")
	assert.Contains(t, buf.String(), `"session_id":"sess-1"`)
}

func TestSearch_SortAndFilter(t *testing.T) {
	tests := []struct {
		name    string
		opts    SearchOptions
		wantIDs []string
	}{
		{
			name:    "best value",
			opts:    SearchOptions{SortBy: domain.SortByBestValue},
			wantIDs: []string{"3", "2", "1"},
		},
		{
			name:    "price",
			opts:    SearchOptions{SortBy: domain.SortByPrice},
			wantIDs: []string{"2", "3", "1"},
		},
		{
			name:    "duration",
			opts:    SearchOptions{SortBy: domain.SortByDuration},
			wantIDs: []string{"3", "1", "2"},
		},
		{
			name:    "departure",
			opts:    SearchOptions{SortBy: domain.SortByDeparture},
			wantIDs: []string{"2", "1", "3"},
		},
		{
			name: "direct only by price",
			opts: SearchOptions{
				Filters: &domain.FilterOptions{MaxStops: intPtr(0)},
				SortBy:  domain.SortByPrice,
			},
			wantIDs: []string{"3", "1"},
		},
		{
			name: "airline filter",
			opts: SearchOptions{
				Filters: &domain.FilterOptions{Airlines: []string{"aa", "ua"}},
				SortBy:  domain.SortByPrice,
			},
			wantIDs: []string{"2", "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			provider := setupMockProvider(ctrl, "amadeus")
			provider.EXPECT().SearchOffers(gomock.Any(), gomock.Any()).Return(testRawOffers(t), nil)

			sessions := domain.NewMockSearchSessionStore(ctrl)
			sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

			uc := NewFlightSearchUseCase(provider, sessions, nil, WithClock(testClock()))

			result, err := uc.Search(context.Background(), "sess-1", validSearchParams(), tt.opts)

			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, offerIDs(result.Offers))
			assert.Equal(t, len(tt.wantIDs), result.Metadata.TotalResults)
		})
	}
}

func TestSearch_InvalidParameters(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(domain.SearchParams)
		wantField string
	}{
		{
			name:      "missing origin",
			mutate:    func(p domain.SearchParams) { delete(p, "origin") },
			wantField: domain.FieldOrigin,
		},
		{
			name:      "zero adults",
			mutate:    func(p domain.SearchParams) { p["adults"] = 0 },
			wantField: domain.FieldAdults,
		},
		{
			name:      "departure date already passed everywhere",
			mutate:    func(p domain.SearchParams) { p["departureDate"] = "2026-05-31" },
			wantField: domain.FieldDepartureDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			// No SearchOffers or Save expectations: neither may be called.
			provider := setupMockProvider(ctrl, "amadeus")
			sessions := domain.NewMockSearchSessionStore(ctrl)
			m := metrics.New(prometheus.NewRegistry())

			uc := NewFlightSearchUseCase(provider, sessions, nil, WithClock(testClock()), WithMetrics(m))

			params := validSearchParams()
			tt.mutate(params)

			result, err := uc.Search(context.Background(), "sess-1", params, DefaultSearchOptions())

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, domain.IsInvalidRequest(err))
			assert.Contains(t, err.Error(), tt.wantField)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(outcomeInvalid)))
		})
	}
}

func TestSearch_RequiresSessionID(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := setupMockProvider(ctrl, "amadeus")
	sessions := domain.NewMockSearchSessionStore(ctrl)

	uc := NewFlightSearchUseCase(provider, sessions, nil, WithClock(testClock()))

	result, err := uc.Search(context.Background(), "", validSearchParams(), DefaultSearchOptions())

	require.Error(t, err)
	assert.Nil(t, result)
	var missing *domain.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "sessionId", missing.Field)
}

func TestSearch_TodayIsNotPast(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := setupMockProvider(ctrl, "amadeus")
	provider.EXPECT().SearchOffers(gomock.Any(), gomock.Any()).Return([]domain.RawOffer{}, nil)
	sessions := domain.NewMockSearchSessionStore(ctrl)
	sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewFlightSearchUseCase(provider, sessions, nil, WithClock(testClock()))

	params := validSearchParams()
	params["departureDate"] = "2026-06-01"

	result, err := uc.Search(context.Background(), "sess-1", params, DefaultSearchOptions())

	require.NoError(t, err)
	assert.Empty(t, result.Offers)
	assert.Equal(t, 0, result.Metadata.TotalResults)
}

func TestSearch_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)

	providerErr := domain.NewProviderStatusError("amadeus", 500, errors.New("internal error"))
	provider := setupMockProvider(ctrl, "amadeus")
	provider.EXPECT().SearchOffers(gomock.Any(), gomock.Any()).Return(nil, providerErr)

	sessions := domain.NewMockSearchSessionStore(ctrl)
	m := metrics.New(prometheus.NewRegistry())

	uc := NewFlightSearchUseCase(provider, sessions, nil, WithClock(testClock()), WithMetrics(m))

	result, err := uc.Search(context.Background(), "sess-1", validSearchParams(), DefaultSearchOptions())

	require.Error(t, err)
	assert.Nil(t, result)

	var pe *domain.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 500, pe.StatusCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(outcomeProviderError)))
}

// TestSearch_ProviderTimeout tests per-provider timeout behavior.
func TestSearch_ProviderTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := setupMockProvider(ctrl, "amadeus")
	provider.EXPECT().SearchOffers(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.SearchRequest) ([]domain.RawOffer, error) {
			select {
			case <-time.After(5 * time.Second):
				return nil, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
	)
	sessions := domain.NewMockSearchSessionStore(ctrl)

	config := &Config{
		SearchTimeout:   time.Second,
		ProviderTimeout: 20 * time.Millisecond,
	}
	uc := NewFlightSearchUseCase(provider, sessions, config, WithClock(testClock()))

	start := time.Now()
	result, err := uc.Search(context.Background(), "sess-1", validSearchParams(), DefaultSearchOptions())
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsProviderTimeout(err))
	assert.Less(t, elapsed, time.Second)
}

func TestSearch_SessionSaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := setupMockProvider(ctrl, "amadeus")
	provider.EXPECT().SearchOffers(gomock.Any(), gomock.Any()).Return(testRawOffers(t), nil)

	storeErr := errors.New("connection refused")
	sessions := domain.NewMockSearchSessionStore(ctrl)
	sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(storeErr)

	uc := NewFlightSearchUseCase(provider, sessions, nil, WithClock(testClock()))

	result, err := uc.Search(context.Background(), "sess-1", validSearchParams(), DefaultSearchOptions())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "save session")
}

func TestCallProvider(t *testing.T) {
	t.Run("passes results through", func(t *testing.T) {
		got, err := callProvider(context.Background(), "amadeus", time.Second, func(context.Context) (int, error) {
			return 7, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("keeps provider errors", func(t *testing.T) {
		want := domain.NewProviderError("amadeus", errors.New("bad request"))
		_, err := callProvider(context.Background(), "amadeus", time.Second, func(context.Context) (int, error) {
			return 0, want
		})
		assert.Same(t, want, err)
	})

	t.Run("maps an unreported deadline to a timeout", func(t *testing.T) {
		_, err := callProvider(context.Background(), "fixture", time.Millisecond, func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, domain.NewProviderError("fixture", ctx.Err())
		})

		var pe *domain.ProviderError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "fixture", pe.Provider)
		assert.True(t, domain.IsProviderTimeout(err))
		assert.True(t, pe.Retryable)
	})
}
