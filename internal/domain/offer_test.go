package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOffer(t *testing.T) {
	tests := []struct {
		name      string
		raw       RawOffer
		wantField string
	}{
		{name: "missing itineraries", raw: withoutKey(t, directOfferJSON, "itineraries"), wantField: "itineraries"},
		{name: "missing price", raw: withoutKey(t, directOfferJSON, "price"), wantField: "price"},
		{name: "missing traveler pricings", raw: withoutKey(t, directOfferJSON, "travelerPricings"), wantField: "travelerPricings"},
		{
			name:      "empty segments",
			raw:       RawOffer(`{"id":"5","itineraries":[{"segments":[]}],"price":{"currency":"USD","total":"1"},"travelerPricings":[{}]}`),
			wantField: "itineraries[0].segments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOffer(tt.raw)

			var malformed *MalformedOfferError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.wantField, malformed.Field)
			assert.True(t, IsMalformedOffer(err))
		})
	}
}

func TestParseOffer_InvalidJSON(t *testing.T) {
	_, err := ParseOffer(RawOffer(`{"id": 1,`))
	assert.True(t, IsMalformedOffer(err))
}

func TestParseOffer_Valid(t *testing.T) {
	offer, err := ParseOffer(mustRawOffer(t, connectingOfferJSON))
	require.NoError(t, err)

	assert.Equal(t, "2", offer.ID)
	require.Len(t, offer.Itineraries[0].Segments, 2)
	assert.Equal(t, "OO", offer.Itineraries[0].Segments[1].Operating.CarrierCode)
	assert.Len(t, offer.TravelerPricings, 2)
}

func TestFareDetailsFor(t *testing.T) {
	offer := mustParseOffer(t, connectingOfferJSON)

	fare := offer.fareDetailsFor("4")
	require.NotNil(t, fare)
	assert.Equal(t, "4", fare.SegmentID)

	fare = offer.fareDetailsFor("unknown")
	require.NotNil(t, fare)
	assert.Equal(t, "3", fare.SegmentID)

	assert.Nil(t, FlightOffer{}.fareDetailsFor("3"))
	assert.Nil(t, TravelerPricing{}.fareDetailsFor("3"))

	assert.Equal(t, "4", offer.segmentFare("4").SegmentID)
	assert.Nil(t, offer.segmentFare("unknown"), "exact lookup has no fallback")
	assert.Nil(t, FlightOffer{}.segmentFare("3"))
}

func TestParseOffer_LenientNumbers(t *testing.T) {
	offer, err := ParseOffer(mustRawOffer(t, oddNumbersOfferJSON))
	require.NoError(t, err)

	require.NotNil(t, offer.NumberOfBookableSeats)
	assert.Equal(t, 9, *offer.NumberOfBookableSeats)
	assert.Equal(t, 0, offer.Itineraries[0].Segments[0].Co2Emissions[0].Weight)
	assert.Equal(t, "KG", offer.Itineraries[0].Segments[0].Co2Emissions[0].WeightUnit)

	fare := offer.TravelerPricings[0].FareDetailsBySegment[0]
	assert.Nil(t, fare.IncludedCheckedBags.Weight)
	assert.Equal(t, "KG", fare.IncludedCheckedBags.WeightUnit)
	require.NotNil(t, fare.IncludedCabinBags.Quantity)
	assert.Equal(t, 1, *fare.IncludedCabinBags.Quantity)
}

func TestLenientInt(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{raw: `3`, want: intPtr(3)},
		{raw: `-2`, want: intPtr(-2)},
		{raw: `23.0`, want: intPtr(23)},
		{raw: `2e1`, want: intPtr(20)},
		{raw: `"4"`, want: intPtr(4)},
		{raw: ` 5 `, want: intPtr(5)},
		{raw: `23.5`},
		{raw: `"two"`},
		{raw: `null`},
		{raw: `true`},
		{raw: `{}`},
		{raw: ``},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, lenientInt([]byte(tt.raw)))
		})
	}
}

func TestCheckedBagFee(t *testing.T) {
	price := OfferPrice{
		Currency: "EUR",
		AdditionalServices: []AdditionalService{
			{Amount: "30.00", Type: AdditionalServiceCheckedBags},
			{Amount: "12.00", Type: "SEATS"},
			{Amount: "45.00", Type: AdditionalServiceCheckedBags},
		},
	}

	fee := price.checkedBagFee()
	require.NotNil(t, fee)
	assert.Equal(t, Money{Amount: "45.00", Currency: "EUR"}, *fee, "the last checked-bag entry wins")
	assert.Nil(t, OfferPrice{Currency: "EUR"}.checkedBagFee())
}
