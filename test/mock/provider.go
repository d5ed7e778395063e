// Package mock provides test doubles for the flight assistant.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
)

// Provider is a configurable mock implementation of domain.FlightOfferProvider
// and domain.AirportLocator. It supports configurable delays, errors and
// responses for testing timeouts and provider failures.
type Provider struct {
	name       string
	offers     []domain.RawOffer
	priced     map[string]domain.RawOffer
	airports   []domain.Airport
	err        error
	priceErr   error
	delay      time.Duration
	callCount  int
	priceCount int
	lastReq    domain.SearchRequest
	mu         sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name:   name,
		priced: make(map[string]domain.RawOffer),
	}
}

// WithOffers configures the provider to return the given raw offers.
func (p *Provider) WithOffers(offers []domain.RawOffer) *Provider {
	p.offers = offers
	return p
}

// WithPricedOffer makes PriceOffer answer priced for the offer with id.
// Offers without a configured answer are confirmed unchanged.
func (p *Provider) WithPricedOffer(id string, priced domain.RawOffer) *Provider {
	p.priced[id] = priced
	return p
}

// WithAirports configures the locations returned by LookupAirports.
func (p *Provider) WithAirports(airports []domain.Airport) *Provider {
	p.airports = airports
	return p
}

// WithError configures the provider to fail every call with err.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithPriceError configures only PriceOffer to fail with err.
func (p *Provider) WithPriceError(err error) *Provider {
	p.priceErr = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// SearchOffers implements domain.FlightOfferProvider.SearchOffers.
// It respects context cancellation, applies the configured delay
// and returns the configured offers or error.
func (p *Provider) SearchOffers(ctx context.Context, req domain.SearchRequest) ([]domain.RawOffer, error) {
	p.mu.Lock()
	p.callCount++
	p.lastReq = req
	p.mu.Unlock()

	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.offers, nil
}

// PriceOffer implements domain.FlightOfferProvider.PriceOffer.
func (p *Provider) PriceOffer(ctx context.Context, offer domain.RawOffer) (domain.RawOffer, error) {
	p.mu.Lock()
	p.priceCount++
	p.mu.Unlock()

	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.priceErr != nil {
		return nil, p.priceErr
	}

	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(offer, &head); err == nil {
		if priced, ok := p.priced[head.ID]; ok {
			return priced, nil
		}
	}
	return offer, nil
}

// LookupAirports implements domain.AirportLocator.LookupAirports.
func (p *Provider) LookupAirports(ctx context.Context, keyword string) ([]domain.Airport, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.airports, nil
}

// wait applies the configured delay. An expired deadline is reported as a
// provider timeout and a cancellation as the context error.
func (p *Provider) wait(ctx context.Context) error {
	if p.delay > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(p.delay):
		}
	}

	switch err := ctx.Err(); {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewProviderTimeoutError(p.name)
	case err != nil:
		return err
	}
	return nil
}

// CallCount returns the number of times SearchOffers was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// PriceCount returns the number of times PriceOffer was called.
func (p *Provider) PriceCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.priceCount
}

// LastRequest returns the request of the most recent search.
func (p *Provider) LastRequest() domain.SearchRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastReq
}

// Reset resets the call counters to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
	p.priceCount = 0
}

// Ensure Provider implements the provider ports at compile time.
var (
	_ domain.FlightOfferProvider = (*Provider)(nil)
	_ domain.AirportLocator      = (*Provider)(nil)
)

// OfferSpec describes a single-segment offer built by SampleOffer.
type OfferSpec struct {
	ID          string
	Carrier     string
	Origin      string
	Destination string

	// DepartureAt is a provider local timestamp, e.g. "2026-12-01T08:00:00"
	DepartureAt string
	Minutes     int
	Stops       int
	Price       string
	Currency    string

	// CheckedBags is the included checked bag count; nil leaves it unknown.
	CheckedBags *int
}

// SampleOffer builds a well-formed raw offer from spec.
func SampleOffer(spec OfferSpec) domain.RawOffer {
	if spec.Currency == "" {
		spec.Currency = "USD"
	}
	if spec.Minutes == 0 {
		spec.Minutes = 330
	}

	dep, err := time.Parse(domain.ProviderTimeLayout, spec.DepartureAt)
	if err != nil {
		panic(fmt.Sprintf("mock: invalid departure %q: %v", spec.DepartureAt, err))
	}
	arr := dep.Add(time.Duration(spec.Minutes) * time.Minute)
	duration := fmt.Sprintf("PT%dH%dM", spec.Minutes/60, spec.Minutes%60)

	fare := domain.FareDetails{
		SegmentID:           "1",
		Cabin:               "ECONOMY",
		IncludedCheckedBags: nil,
		IncludedCabinBags:   &domain.BaggageAllowance{Quantity: intPtr(1)},
	}
	if spec.CheckedBags != nil {
		fare.IncludedCheckedBags = &domain.BaggageAllowance{Quantity: spec.CheckedBags}
	}

	offer := domain.FlightOffer{
		Type:   "flight-offer",
		ID:     spec.ID,
		Source: "GDS",
		Itineraries: []domain.Itinerary{{
			Duration: duration,
			Segments: []domain.Segment{{
				ID:            "1",
				Departure:     domain.FlightEndpoint{IATACode: spec.Origin, At: spec.DepartureAt},
				Arrival:       domain.FlightEndpoint{IATACode: spec.Destination, At: arr.Format(domain.ProviderTimeLayout)},
				CarrierCode:   spec.Carrier,
				Number:        "10" + spec.ID,
				Duration:      duration,
				NumberOfStops: spec.Stops,
			}},
		}},
		Price: &domain.OfferPrice{
			Currency:   spec.Currency,
			Total:      spec.Price,
			GrandTotal: spec.Price,
		},
		ValidatingAirlineCodes: []string{spec.Carrier},
		TravelerPricings: []domain.TravelerPricing{{
			TravelerID:   "1",
			TravelerType: "ADULT",
			Price: &domain.TravelerPrice{
				Currency: spec.Currency,
				Total:    spec.Price,
				Taxes:    []domain.Tax{{Amount: "20.00", Code: "US"}},
			},
			FareDetailsBySegment: []domain.FareDetails{fare},
		}},
	}

	raw, err := json.Marshal(offer)
	if err != nil {
		panic(fmt.Sprintf("mock: marshal offer: %v", err))
	}
	return raw
}

// SampleOffers returns count JFK to LAX offers on date, two hours apart,
// each 50.00 more expensive than the previous one.
func SampleOffers(date string, count int) []domain.RawOffer {
	carriers := []string{"AA", "DL", "UA", "B6"}
	offers := make([]domain.RawOffer, count)
	for i := 0; i < count; i++ {
		offers[i] = SampleOffer(OfferSpec{
			ID:          fmt.Sprintf("%d", i+1),
			Carrier:     carriers[i%len(carriers)],
			Origin:      "JFK",
			Destination: "LAX",
			DepartureAt: fmt.Sprintf("%sT%02d:00:00", date, 6+2*i%18),
			Price:       fmt.Sprintf("%d.00", 200+50*i),
			CheckedBags: intPtr(i % 2),
		})
	}
	return offers
}

// MalformedOffer returns an offer without a price.
func MalformedOffer(id string) domain.RawOffer {
	return domain.RawOffer(fmt.Sprintf(`{"id":%q,"itineraries":[{"segments":[{"id":"1","departure":{"iataCode":"JFK","at":"2026-12-01T08:00:00"},"arrival":{"iataCode":"LAX","at":"2026-12-01T11:00:00"},"carrierCode":"AA","number":"1","numberOfStops":0}]}],"travelerPricings":[{"travelerId":"1","travelerType":"ADULT","fareDetailsBySegment":[]}]}`, id))
}

func intPtr(i int) *int {
	return &i
}
