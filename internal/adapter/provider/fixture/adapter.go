// Package fixture serves flight offers and airports from Amadeus-format JSON
// files, for offline development and demos.
package fixture

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/provider/amadeus"
	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
)

// ProviderName is the unique identifier for the fixture provider.
const ProviderName = "fixture"

// Adapter reads its answers from disk on every call, so fixtures can be
// edited while the server runs.
type Adapter struct {
	offersPath   string
	airportsPath string
}

// NewAdapter creates an Adapter. offersPath holds a flight offer search
// response and airportsPath a locations response.
func NewAdapter(offersPath, airportsPath string) *Adapter {
	return &Adapter{offersPath: offersPath, airportsPath: airportsPath}
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// SearchOffers returns the fixture offers flying the requested route.
// Offers that cannot be parsed are passed through untouched.
func (a *Adapter) SearchOffers(ctx context.Context, req domain.SearchRequest) ([]domain.RawOffer, error) {
	data, err := a.read(ctx, a.offersPath)
	if err != nil {
		return nil, err
	}

	offers, err := amadeus.DecodeOffers(data)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	result := make([]domain.RawOffer, 0, len(offers))
	for _, raw := range offers {
		offer, err := domain.ParseOffer(raw)
		if err == nil && !matchesRoute(offer, req) {
			continue
		}
		result = append(result, raw)
		if req.MaxResults != nil && len(result) >= *req.MaxResults {
			break
		}
	}
	return result, nil
}

// PriceOffer confirms an offer at its listed price.
func (a *Adapter) PriceOffer(ctx context.Context, offer domain.RawOffer) (domain.RawOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	if _, err := domain.ParseOffer(offer); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	return offer, nil
}

// LookupAirports returns fixture airports whose code, name or city contains keyword.
func (a *Adapter) LookupAirports(ctx context.Context, keyword string) ([]domain.Airport, error) {
	data, err := a.read(ctx, a.airportsPath)
	if err != nil {
		return nil, err
	}

	airports, err := amadeus.DecodeLocations(data)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	kw := strings.ToUpper(strings.TrimSpace(keyword))
	result := make([]domain.Airport, 0, len(airports))
	for _, ap := range airports {
		if strings.Contains(strings.ToUpper(ap.IATACode), kw) ||
			strings.Contains(strings.ToUpper(ap.Name), kw) ||
			strings.Contains(strings.ToUpper(ap.CityName), kw) {
			result = append(result, ap)
		}
	}
	return result, nil
}

func (a *Adapter) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName, fmt.Errorf("read fixture: %w", err))
	}
	return data, nil
}

// matchesRoute checks the first itinerary's endpoints and the non-stop flag.
func matchesRoute(offer domain.FlightOffer, req domain.SearchRequest) bool {
	segments := offer.Itineraries[0].Segments
	first, last := segments[0], segments[len(segments)-1]

	if req.OriginCode != "" && first.Departure.IATACode != req.OriginCode {
		return false
	}
	if req.DestinationCode != "" && last.Arrival.IATACode != req.DestinationCode {
		return false
	}
	if req.DirectOnly && (len(segments) > 1 || first.NumberOfStops > 0) {
		return false
	}
	return true
}

var (
	_ domain.FlightOfferProvider = (*Adapter)(nil)
	_ domain.AirportLocator      = (*Adapter)(nil)
)
