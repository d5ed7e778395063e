package usecase

import (
	"context"
	"time"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OfferUseCase works on one offer of a session's last search.
type OfferUseCase interface {
	// Details returns the full view of an offer.
	Details(ctx context.Context, sessionID, offerID string) (*domain.OfferDetails, error)

	// Price confirms the offer's price with the provider.
	Price(ctx context.Context, sessionID, offerID string) (*domain.PricedOfferSummary, error)
}

type offerUseCase struct {
	provider        domain.FlightOfferProvider
	sessions        domain.SearchSessionStore
	providerTimeout time.Duration
	deps
}

// NewOfferUseCase creates a new OfferUseCase.
func NewOfferUseCase(provider domain.FlightOfferProvider, sessions domain.SearchSessionStore, config *Config, opts ...Option) OfferUseCase {
	cfg := config.withDefaults()

	return &offerUseCase{
		provider:        provider,
		sessions:        sessions,
		providerTimeout: cfg.ProviderTimeout,
		deps:            applyOptions(opts),
	}
}

func (uc *offerUseCase) Details(ctx context.Context, sessionID, offerID string) (*domain.OfferDetails, error) {
	ctx, span := uc.tracer.Start(ctx, "usecase.OfferDetails", trace.WithAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("offer.id", offerID),
	))
	defer span.End()

	offer, err := findSessionOffer(ctx, uc.sessions, sessionID, offerID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	parsed, err := domain.ParseOffer(offer)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	details, err := domain.Describe(parsed)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return &details, nil
}

func (uc *offerUseCase) Price(ctx context.Context, sessionID, offerID string) (*domain.PricedOfferSummary, error) {
	ctx, span := uc.tracer.Start(ctx, "usecase.PriceOffer", trace.WithAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("offer.id", offerID),
	))
	defer span.End()

	log := uc.log.WithSession(sessionID).WithTrace(ctx)

	offer, err := findSessionOffer(ctx, uc.sessions, sessionID, offerID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	priced, err := callProvider(ctx, uc.provider.Name(), uc.providerTimeout, func(ctx context.Context) (domain.RawOffer, error) {
		return uc.provider.PriceOffer(ctx, offer)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error().Err(err).Str("offer_id", offerID).Msg("offer pricing failed")
		return nil, err
	}

	parsed, err := domain.ParseOffer(priced)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Warn().Err(err).Str("offer_id", offerID).Msg("priced offer is malformed")
		return nil, err
	}

	summary, err := domain.NormalizePriced(parsed)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("offer_id", offerID).
		Str("grand_total", summary.GrandTotal.String()).
		Msg("offer priced")
	return &summary, nil
}

// findSessionOffer loads the session and returns the raw offer with offerID.
func findSessionOffer(ctx context.Context, sessions domain.SearchSessionStore, sessionID, offerID string) (domain.RawOffer, error) {
	if sessionID == "" {
		return nil, &domain.MissingFieldError{Field: "sessionId"}
	}
	if offerID == "" {
		return nil, &domain.MissingFieldError{Field: "offerId"}
	}

	session, err := sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.FindOffer(offerID)
}

var _ OfferUseCase = (*offerUseCase)(nil)
