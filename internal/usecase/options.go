// Package usecase contains the business logic of the flight assistant:
// searching, describing, pricing and mock-booking flight offers.
package usecase

import (
	"time"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/logger"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/metrics"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/timeutil"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/tracing"
	"go.opentelemetry.io/otel/trace"
)

// Default timeout values.
const (
	DefaultSearchTimeout   = 15 * time.Second
	DefaultProviderTimeout = 10 * time.Second
)

// SearchOptions contains optional presentation parameters for a flight search.
type SearchOptions struct {
	// Filters contains optional filtering criteria to apply to results
	Filters *domain.FilterOptions

	// SortBy specifies how to sort the results (default: best value)
	SortBy domain.SortOption
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: nil,
		SortBy:  domain.SortByBestValue,
	}
}

// Config contains configuration options for the use cases.
type Config struct {
	// SearchTimeout bounds a whole use case call.
	SearchTimeout time.Duration

	// ProviderTimeout bounds each provider call.
	ProviderTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SearchTimeout:   DefaultSearchTimeout,
		ProviderTimeout: DefaultProviderTimeout,
	}
}

// withDefaults fills unset timeouts.
func (c *Config) withDefaults() Config {
	cfg := DefaultConfig()
	if c == nil {
		return cfg
	}
	if c.SearchTimeout > 0 {
		cfg.SearchTimeout = c.SearchTimeout
	}
	if c.ProviderTimeout > 0 {
		cfg.ProviderTimeout = c.ProviderTimeout
	}
	return cfg
}

// deps are the ambient collaborators shared by every use case.
type deps struct {
	log     *logger.Logger
	metrics *metrics.Metrics
	clock   timeutil.Clock
	tracer  trace.Tracer
}

func defaultDeps() deps {
	return deps{
		log:     logger.Nop(),
		metrics: metrics.NewNop(),
		clock:   timeutil.NewRealClock(),
		tracer:  tracing.Tracer(),
	}
}

// Option configures a use case.
type Option func(*deps)

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(d *deps) {
		if l != nil {
			d.log = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *deps) {
		if m != nil {
			d.metrics = m
		}
	}
}

// WithClock sets the clock used for date checks and timestamps.
func WithClock(c timeutil.Clock) Option {
	return func(d *deps) {
		if c != nil {
			d.clock = c
		}
	}
}

func applyOptions(opts []Option) deps {
	d := defaultDeps()
	for _, opt := range opts {
		opt(&d)
	}
	return d
}
