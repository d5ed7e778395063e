package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/timeutil"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Search outcomes recorded in metrics.
const (
	outcomeOK            = "ok"
	outcomeInvalid       = "invalid"
	outcomeProviderError = "provider_error"
	outcomeError         = "error"
)

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search reconciles the caller's parameters into a provider request, runs it,
	// normalizes the answer and stores it as the session's last search.
	Search(ctx context.Context, sessionID string, params domain.SearchParams, opts SearchOptions) (*domain.SearchResult, error)
}

// flightSearchUseCase implements FlightSearchUseCase against one offer provider.
type flightSearchUseCase struct {
	provider        domain.FlightOfferProvider
	sessions        domain.SearchSessionStore
	searchTimeout   time.Duration
	providerTimeout time.Duration
	deps
}

// NewFlightSearchUseCase creates a new FlightSearchUseCase.
// If config is nil, default timeout values are used.
func NewFlightSearchUseCase(provider domain.FlightOfferProvider, sessions domain.SearchSessionStore, config *Config, opts ...Option) FlightSearchUseCase {
	cfg := config.withDefaults()

	return &flightSearchUseCase{
		provider:        provider,
		sessions:        sessions,
		searchTimeout:   cfg.SearchTimeout,
		providerTimeout: cfg.ProviderTimeout,
		deps:            applyOptions(opts),
	}
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, sessionID string, params domain.SearchParams, opts SearchOptions) (*domain.SearchResult, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, uc.searchTimeout)
	defer cancel()

	ctx, span := uc.tracer.Start(ctx, "usecase.Search", trace.WithAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("provider", uc.provider.Name()),
	))
	defer span.End()

	log := uc.log.WithSession(sessionID).WithTrace(ctx)

	var req domain.SearchRequest
	var err error
	if sessionID == "" {
		err = &domain.MissingFieldError{Field: "sessionId"}
	} else {
		req, err = domain.BuildSearchRequest(params)
	}
	if err == nil {
		err = uc.checkDepartureDate(req)
	}
	if err != nil {
		uc.metrics.IncSearch(outcomeInvalid)
		span.SetStatus(codes.Error, err.Error())
		log.Info().Err(err).Msg("search parameters rejected")
		return nil, err
	}

	span.SetAttributes(
		attribute.String("search.origin", req.OriginCode),
		attribute.String("search.destination", req.DestinationCode),
		attribute.String("search.departure_date", req.DepartureDate),
	)

	raws, err := callProvider(ctx, uc.provider.Name(), uc.providerTimeout, func(ctx context.Context) ([]domain.RawOffer, error) {
		return uc.provider.SearchOffers(ctx, req)
	})
	if err != nil {
		uc.metrics.IncSearch(outcomeProviderError)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error().Err(err).Str("provider", uc.provider.Name()).Msg("provider search failed")
		return nil, err
	}

	summaries, skipped := domain.NormalizeAll(raws)
	for _, s := range skipped {
		log.Warn().Err(s.Err).Int("offer_index", s.Index).Msg("skipping malformed offer")
	}
	uc.metrics.AddOffers(len(summaries), len(skipped))

	filtered := ApplyFilters(summaries, opts.Filters)
	sorted := SortOffers(filtered, opts.SortBy)

	session := domain.SearchSession{
		ID:        sessionID,
		Request:   req,
		Offers:    raws,
		CreatedAt: uc.clock.Now(),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		uc.metrics.IncSearch(outcomeError)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("save session: %w", err)
	}

	result := domain.NewSearchResult(sessionID, req, sorted, domain.SearchMetadata{
		Provider:       uc.provider.Name(),
		OffersReceived: len(raws),
		OffersSkipped:  len(skipped),
		SearchTimeMs:   time.Since(startTime).Milliseconds(),
	})

	uc.metrics.IncSearch(outcomeOK)
	span.SetAttributes(attribute.Int("search.results", result.Metadata.TotalResults))
	log.Info().
		Int("offers_received", len(raws)).
		Int("offers_skipped", len(skipped)).
		Int("total_results", result.Metadata.TotalResults).
		Msg("search completed")

	return &result, nil
}

// checkDepartureDate rejects departure dates that have already passed.
func (uc *flightSearchUseCase) checkDepartureDate(req domain.SearchRequest) error {
	past, err := timeutil.IsPastDate(req.DepartureDate, uc.clock.Now())
	if err != nil {
		return &domain.InvalidValueError{Field: domain.FieldDepartureDate, Message: "must be a date in YYYY-MM-DD format"}
	}
	if past {
		return &domain.InvalidValueError{Field: domain.FieldDepartureDate, Message: "must not be in the past"}
	}
	return nil
}

// callProvider runs fn under the per-provider timeout. A deadline hit that the
// provider did not report itself becomes a provider timeout error.
func callProvider[T any](ctx context.Context, provider string, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := fn(ctx)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && !domain.IsProviderTimeout(err) {
		var zero T
		return zero, domain.NewProviderTimeoutError(provider)
	}
	return result, err
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
