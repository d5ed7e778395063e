package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// FlightOfferProvider is an external flight search and pricing service.
// Implementations must respect context cancellation and return a
// *ProviderError for failures reported by the provider.
type FlightOfferProvider interface {
	// Name returns the provider identifier used in logs, metrics and errors.
	Name() string

	// SearchOffers runs a search and returns the raw offers in provider order.
	SearchOffers(ctx context.Context, req SearchRequest) ([]RawOffer, error)

	// PriceOffer confirms the price of one previously returned offer.
	PriceOffer(ctx context.Context, offer RawOffer) (RawOffer, error)
}

// AirportLocator resolves a free-text city or airport name to airports.
type AirportLocator interface {
	LookupAirports(ctx context.Context, keyword string) ([]Airport, error)
}

// SearchSession is the last search made in a conversation, kept so later
// steps (details, pricing, booking) can refer to offers by id.
type SearchSession struct {
	ID        string        `json:"id"`
	Request   SearchRequest `json:"request"`
	Offers    []RawOffer    `json:"offers"`
	CreatedAt time.Time     `json:"created_at"`
}

// FindOffer returns the raw offer with the given id.
func (s SearchSession) FindOffer(offerID string) (RawOffer, error) {
	for _, raw := range s.Offers {
		offer, err := ParseOffer(raw)
		if err != nil {
			continue
		}
		if offer.ID == offerID {
			return raw, nil
		}
	}
	return nil, ErrOfferNotFound
}

// SearchSessionStore keeps the last search per session.
type SearchSessionStore interface {
	Save(ctx context.Context, session SearchSession) error
	Load(ctx context.Context, sessionID string) (SearchSession, error)
}
