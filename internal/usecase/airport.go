package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// minKeywordLength is the shortest keyword the location search accepts.
const minKeywordLength = 2

// AirportUseCase resolves a city or airport name to candidate airports.
type AirportUseCase interface {
	Lookup(ctx context.Context, keyword string) ([]domain.Airport, error)
}

type airportUseCase struct {
	locator         domain.AirportLocator
	providerName    string
	providerTimeout time.Duration
	deps
}

// NewAirportUseCase creates a new AirportUseCase. providerName labels timeout errors.
func NewAirportUseCase(locator domain.AirportLocator, providerName string, config *Config, opts ...Option) AirportUseCase {
	cfg := config.withDefaults()

	return &airportUseCase{
		locator:         locator,
		providerName:    providerName,
		providerTimeout: cfg.ProviderTimeout,
		deps:            applyOptions(opts),
	}
}

func (uc *airportUseCase) Lookup(ctx context.Context, keyword string) ([]domain.Airport, error) {
	keyword = strings.TrimSpace(keyword)

	ctx, span := uc.tracer.Start(ctx, "usecase.LookupAirports", trace.WithAttributes(
		attribute.String("keyword", keyword),
	))
	defer span.End()

	if keyword == "" {
		return nil, &domain.MissingFieldError{Field: "keyword"}
	}
	if len(keyword) < minKeywordLength {
		return nil, &domain.InvalidValueError{Field: "keyword", Message: "must be at least 2 characters"}
	}

	airports, err := callProvider(ctx, uc.providerName, uc.providerTimeout, func(ctx context.Context) ([]domain.Airport, error) {
		return uc.locator.LookupAirports(ctx, keyword)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		uc.log.WithTrace(ctx).Error().Err(err).Str("keyword", keyword).Msg("airport lookup failed")
		return nil, err
	}

	if airports == nil {
		airports = []domain.Airport{}
	}
	return airports, nil
}

var _ AirportUseCase = (*airportUseCase)(nil)
