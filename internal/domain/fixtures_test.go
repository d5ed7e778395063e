package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// directOfferJSON is a one-way JFK-LAX offer with a quantity-based checked allowance.
const directOfferJSON = `{
  "type": "flight-offer",
  "id": "1",
  "source": "GDS",
  "lastTicketingDate": "2025-06-20",
  "numberOfBookableSeats": 7,
  "itineraries": [{
    "duration": "PT6H10M",
    "segments": [{
      "id": "1",
      "departure": {"iataCode": "JFK", "terminal": "8", "at": "2025-06-27T07:00:00"},
      "arrival": {"iataCode": "LAX", "terminal": "4", "at": "2025-06-27T10:10:00"},
      "carrierCode": "AA",
      "number": "100",
      "aircraft": {"code": "32Q"},
      "operating": {"carrierCode": "AA"},
      "duration": "PT6H10M",
      "numberOfStops": 0,
      "co2Emissions": [{"weight": 310, "weightUnit": "KG", "cabin": "ECONOMY"}]
    }]
  }],
  "price": {
    "currency": "USD",
    "total": "250.00",
    "base": "210.00",
    "grandTotal": "250.00",
    "fees": [{"amount": "0.00", "type": "SUPPLIER"}],
    "additionalServices": [{"amount": "35.00", "type": "CHECKED_BAGS"}]
  },
  "validatingAirlineCodes": ["AA"],
  "travelerPricings": [{
    "travelerId": "1",
    "fareOption": "STANDARD",
    "travelerType": "ADULT",
    "price": {"currency": "USD", "total": "250.00", "base": "210.00", "taxes": [{"amount": "30.00", "code": "US"}, {"amount": "10.00", "code": "AY"}]},
    "fareDetailsBySegment": [{
      "segmentId": "1",
      "cabin": "ECONOMY",
      "brandedFare": "MAIN",
      "class": "O",
      "includedCheckedBags": {"quantity": 2},
      "includedCabinBags": {"quantity": 1},
      "amenities": [
        {"description": "PRE RESERVED SEAT ASSIGNMENT", "isChargeable": false, "amenityType": "PRE_RESERVED_SEAT", "amenityProvider": {"name": "BrandedFares"}},
        {"description": "MEAL", "isChargeable": true, "amenityType": "MEAL"}
      ]
    }]
  }]
}`

// connectingOfferJSON is a one-stop offer with a weight-based allowance and no cabin bag info.
const connectingOfferJSON = `{
  "id": "2",
  "itineraries": [{
    "duration": "PT9H",
    "segments": [
      {
        "id": "3",
        "departure": {"iataCode": "JFK", "at": "2025-06-27T06:00:00"},
        "arrival": {"iataCode": "ORD", "terminal": "1", "at": "2025-06-27T08:00:00"},
        "carrierCode": "UA",
        "number": "500",
        "duration": "PT3H",
        "numberOfStops": 1
      },
      {
        "id": "4",
        "departure": {"iataCode": "ORD", "terminal": "2", "at": "2025-06-27T09:30:00"},
        "arrival": {"iataCode": "LAX", "at": "2025-06-27T12:00:00"},
        "carrierCode": "UA",
        "number": "501",
        "operating": {"carrierCode": "OO"},
        "duration": "PT4H30M",
        "numberOfStops": 0
      }
    ]
  }],
  "price": {"currency": "USD", "total": "180.50", "base": "150.00"},
  "travelerPricings": [
    {
      "travelerId": "1",
      "travelerType": "ADULT",
      "fareDetailsBySegment": [
        {"segmentId": "3", "cabin": "ECONOMY", "includedCheckedBags": {"weight": 23, "weightUnit": "KG"}},
        {"segmentId": "4", "cabin": "ECONOMY", "includedCheckedBags": {"weight": 23, "weightUnit": "KG"}}
      ]
    },
    {
      "travelerId": "2",
      "travelerType": "CHILD",
      "fareDetailsBySegment": [
        {"segmentId": "3", "cabin": "ECONOMY", "includedCheckedBags": {"quantity": 0}, "includedCabinBags": {"quantity": 1}}
      ]
    }
  ]
}`

// mustRawOffer re-encodes a JSON document as a RawOffer, failing the test on bad input.
func mustRawOffer(t testing.TB, doc string) RawOffer {
	t.Helper()
	require.True(t, json.Valid([]byte(doc)), "fixture must be valid JSON")
	return RawOffer(doc)
}

// mustParseOffer parses a fixture offer.
func mustParseOffer(t testing.TB, doc string) FlightOffer {
	t.Helper()
	offer, err := ParseOffer(mustRawOffer(t, doc))
	require.NoError(t, err)
	return offer
}

// withoutKey removes a top-level key from a JSON object fixture.
func withoutKey(t testing.TB, doc, key string) RawOffer {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &m))
	delete(m, key)
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return out
}
