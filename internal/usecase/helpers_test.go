package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/timeutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testNow is the fixed clock time used by use case tests.
var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func testClock() *timeutil.MockClock {
	return timeutil.NewMockClock(testNow)
}

// createTestOffer builds a one-segment JFK-LAX offer.
func createTestOffer(id, carrier, total string, durationISO string, stops int, departure string) domain.FlightOffer {
	seats := 5
	return domain.FlightOffer{
		Type:                  "flight-offer",
		ID:                    id,
		NumberOfBookableSeats: &seats,
		Itineraries: []domain.Itinerary{{
			Duration: durationISO,
			Segments: []domain.Segment{{
				ID:            "1",
				Departure:     domain.FlightEndpoint{IATACode: "JFK", At: departure},
				Arrival:       domain.FlightEndpoint{IATACode: "LAX", At: "2026-07-01T23:00:00"},
				CarrierCode:   carrier,
				Number:        "100",
				Duration:      durationISO,
				NumberOfStops: stops,
				Co2Emissions:  []domain.Co2Emission{{Weight: 200, WeightUnit: "KG"}},
			}},
		}},
		Price:                  &domain.OfferPrice{Currency: "USD", Total: total, GrandTotal: total},
		ValidatingAirlineCodes: []string{carrier},
		TravelerPricings: []domain.TravelerPricing{{
			TravelerID:   "1",
			TravelerType: "ADULT",
			Price: &domain.TravelerPrice{
				Currency: "USD",
				Total:    total,
				Taxes:    []domain.Tax{{Amount: "20.00", Code: "US"}},
			},
			FareDetailsBySegment: []domain.FareDetails{{
				SegmentID:           "1",
				Cabin:               "ECONOMY",
				IncludedCheckedBags: &domain.BaggageAllowance{Quantity: intPtr(1)},
			}},
		}},
	}
}

func mustRaw(t testing.TB, offer domain.FlightOffer) domain.RawOffer {
	t.Helper()
	data, err := json.Marshal(offer)
	require.NoError(t, err)
	return domain.RawOffer(data)
}

// testRawOffers returns three valid offers and one without a price.
func testRawOffers(t testing.TB) []domain.RawOffer {
	t.Helper()
	return []domain.RawOffer{
		mustRaw(t, createTestOffer("1", "AA", "300.00", "PT6H", 0, "2026-07-01T08:00:00")),
		mustRaw(t, createTestOffer("2", "UA", "150.00", "PT9H", 1, "2026-07-01T06:00:00")),
		mustRaw(t, createTestOffer("3", "DL", "200.00", "PT5H30M", 0, "2026-07-01T18:00:00")),
		domain.RawOffer(`{"id":"4","itineraries":[{"segments":[{"id":"1","departure":{"iataCode":"JFK","at":"2026-07-01T09:00:00"},"arrival":{"iataCode":"LAX","at":"2026-07-01T12:00:00"},"carrierCode":"B6","number":"1"}]}],"travelerPricings":[{"travelerId":"1","travelerType":"ADULT"}]}`),
	}
}

func validSearchParams() domain.SearchParams {
	return domain.SearchParams{
		"origin":        "JFK",
		"destination":   "LAX",
		"departureDate": "2026-07-01",
		"adults":        1,
	}
}

func setupMockProvider(ctrl *gomock.Controller, name string) *domain.MockFlightOfferProvider {
	mock := domain.NewMockFlightOfferProvider(ctrl)
	mock.EXPECT().Name().Return(name).AnyTimes()
	return mock
}

func testSession(t testing.TB, id string) domain.SearchSession {
	return domain.SearchSession{
		ID:        id,
		Offers:    testRawOffers(t),
		CreatedAt: testNow,
	}
}

func intPtr(v int) *int { return &v }

func offerIDs(offers []domain.OfferSummary) []string {
	ids := make([]string, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.OfferID)
	}
	return ids
}
