package usecase

import (
	"context"
	"fmt"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// BookingUseCase creates mock orders. No provider booking call is made and
// nothing is persisted.
type BookingUseCase interface {
	CreateBooking(ctx context.Context, sessionID, offerID string, travelers []domain.Traveler) (*domain.FlightOrder, error)
}

type bookingUseCase struct {
	sessions domain.SearchSessionStore
	newID    func() string
	deps
}

// NewBookingUseCase creates a new BookingUseCase.
func NewBookingUseCase(sessions domain.SearchSessionStore, opts ...Option) BookingUseCase {
	return &bookingUseCase{
		sessions: sessions,
		newID:    uuid.NewString,
		deps:     applyOptions(opts),
	}
}

func (uc *bookingUseCase) CreateBooking(ctx context.Context, sessionID, offerID string, travelers []domain.Traveler) (*domain.FlightOrder, error) {
	ctx, span := uc.tracer.Start(ctx, "usecase.CreateBooking", trace.WithAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("offer.id", offerID),
		attribute.Int("travelers", len(travelers)),
	))
	defer span.End()

	raw, err := findSessionOffer(ctx, uc.sessions, sessionID, offerID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	offer, err := domain.ParseOffer(raw)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	normalized, err := uc.validateTravelers(offer, travelers)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	summary, err := domain.Normalize(offer)
	if err != nil {
		return nil, err
	}

	order := domain.NewMockOrder(uc.newID(), sessionID, summary, normalized, uc.clock.Now())
	uc.metrics.IncBookings()
	span.SetAttributes(attribute.String("order.id", order.ID))

	uc.log.WithSession(sessionID).WithTrace(ctx).Info().
		Str("order_id", order.ID).
		Str("offer_id", offerID).
		Int("travelers", len(normalized)).
		Msg("mock order created")

	return &order, nil
}

// validateTravelers checks there is one traveler per priced traveler and
// returns normalized copies. Missing traveler ids are taken from the offer.
func (uc *bookingUseCase) validateTravelers(offer domain.FlightOffer, travelers []domain.Traveler) ([]domain.Traveler, error) {
	if len(travelers) == 0 {
		return nil, &domain.MissingFieldError{Field: "travelers"}
	}
	if len(travelers) != len(offer.TravelerPricings) {
		return nil, &domain.InvalidValueError{
			Field:   "travelers",
			Message: fmt.Sprintf("offer is priced for %d travelers, got %d", len(offer.TravelerPricings), len(travelers)),
		}
	}

	now := uc.clock.Now()
	out := make([]domain.Traveler, len(travelers))
	for i, t := range travelers {
		t.Normalize()
		if t.ID == "" {
			t.ID = offer.TravelerPricings[i].TravelerID
		}
		if err := t.Validate(fmt.Sprintf("travelers[%d]", i), now); err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

var _ BookingUseCase = (*bookingUseCase)(nil)
