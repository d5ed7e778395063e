package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// RawOffer is one flight offer exactly as the provider returned it.
// It is kept verbatim so it can be sent back for pricing.
type RawOffer = json.RawMessage

// FlightOffer is the typed schema of a provider flight offer.
// Optional provider fields are pointers or nil slices.
type FlightOffer struct {
	Type                     string            `json:"type,omitempty"`
	ID                       string            `json:"id"`
	Source                   string            `json:"source,omitempty"`
	OneWay                   bool              `json:"oneWay,omitempty"`
	LastTicketingDate        string            `json:"lastTicketingDate,omitempty"`
	NumberOfBookableSeats    *int              `json:"numberOfBookableSeats,omitempty"`
	Itineraries              []Itinerary       `json:"itineraries"`
	Price                    *OfferPrice       `json:"price"`
	ValidatingAirlineCodes   []string          `json:"validatingAirlineCodes,omitempty"`
	TravelerPricings         []TravelerPricing `json:"travelerPricings"`
	InstantTicketingRequired bool              `json:"instantTicketingRequired,omitempty"`
}

// Itinerary is one direction of travel within an offer.
type Itinerary struct {
	Duration string    `json:"duration,omitempty"`
	Segments []Segment `json:"segments"`
}

// Segment is a single flown leg.
type Segment struct {
	ID            string         `json:"id"`
	Departure     FlightEndpoint `json:"departure"`
	Arrival       FlightEndpoint `json:"arrival"`
	CarrierCode   string         `json:"carrierCode"`
	Number        string         `json:"number"`
	Aircraft      *Aircraft      `json:"aircraft,omitempty"`
	Operating     *Operating     `json:"operating,omitempty"`
	Duration      string         `json:"duration,omitempty"`
	NumberOfStops int            `json:"numberOfStops"`
	Co2Emissions  []Co2Emission  `json:"co2Emissions,omitempty"`
}

// FlightEndpoint is the departure or arrival point of a segment.
type FlightEndpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// Aircraft identifies the equipment flying a segment.
type Aircraft struct {
	Code string `json:"code"`
}

// Operating identifies the carrier actually operating a codeshare segment.
type Operating struct {
	CarrierCode string `json:"carrierCode"`
}

// Co2Emission is the provider's emission estimate for a segment.
type Co2Emission struct {
	Weight     int    `json:"weight"`
	WeightUnit string `json:"weightUnit"`
	Cabin      string `json:"cabin,omitempty"`
}

// OfferPrice is the offer-level price breakdown. Amounts are decimal strings.
type OfferPrice struct {
	Currency           string              `json:"currency"`
	Total              string              `json:"total"`
	Base               string              `json:"base,omitempty"`
	GrandTotal         string              `json:"grandTotal,omitempty"`
	Fees               []Fee               `json:"fees,omitempty"`
	AdditionalServices []AdditionalService `json:"additionalServices,omitempty"`
}

// Fee is a provider fee line.
type Fee struct {
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

// AdditionalService is a purchasable extra such as a checked bag.
type AdditionalService struct {
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

// AdditionalServiceCheckedBags tags the checked-bag fee in additionalServices.
const AdditionalServiceCheckedBags = "CHECKED_BAGS"

// TravelerPricing is the price and fare rules for one traveler.
type TravelerPricing struct {
	TravelerID           string         `json:"travelerId"`
	FareOption           string         `json:"fareOption,omitempty"`
	TravelerType         string         `json:"travelerType"`
	Price                *TravelerPrice `json:"price,omitempty"`
	FareDetailsBySegment []FareDetails  `json:"fareDetailsBySegment"`
}

// TravelerPrice is a traveler's share of the offer price.
type TravelerPrice struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
	Base     string `json:"base,omitempty"`
	Taxes    []Tax  `json:"taxes,omitempty"`
}

// Tax is one tax line of a traveler price.
type Tax struct {
	Amount string `json:"amount"`
	Code   string `json:"code"`
}

// FareDetails holds the fare rules of one traveler on one segment.
type FareDetails struct {
	SegmentID           string            `json:"segmentId"`
	Cabin               string            `json:"cabin,omitempty"`
	FareBasis           string            `json:"fareBasis,omitempty"`
	BrandedFare         string            `json:"brandedFare,omitempty"`
	BrandedFareLabel    string            `json:"brandedFareLabel,omitempty"`
	Class               string            `json:"class,omitempty"`
	IncludedCheckedBags *BaggageAllowance `json:"includedCheckedBags,omitempty"`
	IncludedCabinBags   *BaggageAllowance `json:"includedCabinBags,omitempty"`
	Amenities           []Amenity         `json:"amenities,omitempty"`
}

// BaggageAllowance is either a piece count or a weight.
type BaggageAllowance struct {
	Quantity   *int   `json:"quantity,omitempty"`
	Weight     *int   `json:"weight,omitempty"`
	WeightUnit string `json:"weightUnit,omitempty"`
}

// Amenity is a fare feature as described by the provider.
type Amenity struct {
	Description     string           `json:"description"`
	IsChargeable    bool             `json:"isChargeable"`
	AmenityType     string           `json:"amenityType,omitempty"`
	AmenityProvider *AmenityProvider `json:"amenityProvider,omitempty"`
}

// AmenityProvider names the source of an amenity description.
type AmenityProvider struct {
	Name string `json:"name"`
}

// ParseOffer decodes and validates a raw provider offer.
func ParseOffer(raw RawOffer) (FlightOffer, error) {
	var offer FlightOffer
	if err := json.Unmarshal(raw, &offer); err != nil {
		return FlightOffer{}, fmt.Errorf("%w: %v", ErrMalformedOffer, err)
	}
	if err := offer.Validate(); err != nil {
		return FlightOffer{}, err
	}
	return offer, nil
}

// Validate checks the structurally mandatory parts of an offer.
func (o FlightOffer) Validate() error {
	switch {
	case len(o.Itineraries) == 0:
		return &MalformedOfferError{OfferID: o.ID, Field: "itineraries"}
	case len(o.Itineraries[0].Segments) == 0:
		return &MalformedOfferError{OfferID: o.ID, Field: "itineraries[0].segments"}
	case o.Price == nil:
		return &MalformedOfferError{OfferID: o.ID, Field: "price"}
	case len(o.TravelerPricings) == 0:
		return &MalformedOfferError{OfferID: o.ID, Field: "travelerPricings"}
	}
	return nil
}

// fareDetailsFor returns the first traveler's fare details for segmentID,
// falling back to the first entry.
func (o FlightOffer) fareDetailsFor(segmentID string) *FareDetails {
	if len(o.TravelerPricings) == 0 {
		return nil
	}
	return o.TravelerPricings[0].fareDetailsFor(segmentID)
}

// segmentFare returns the first traveler's fare details for segmentID only.
func (o FlightOffer) segmentFare(segmentID string) *FareDetails {
	if len(o.TravelerPricings) == 0 {
		return nil
	}
	return o.TravelerPricings[0].segmentFare(segmentID)
}

func (tp TravelerPricing) fareDetailsFor(segmentID string) *FareDetails {
	if fare := tp.segmentFare(segmentID); fare != nil {
		return fare
	}
	if len(tp.FareDetailsBySegment) > 0 {
		return &tp.FareDetailsBySegment[0]
	}
	return nil
}

func (tp TravelerPricing) segmentFare(segmentID string) *FareDetails {
	for i := range tp.FareDetailsBySegment {
		if tp.FareDetailsBySegment[i].SegmentID == segmentID {
			return &tp.FareDetailsBySegment[i]
		}
	}
	return nil
}

// checkedBagFee returns the last CHECKED_BAGS additional service, if any.
func (p OfferPrice) checkedBagFee() *Money {
	var fee *Money
	for _, svc := range p.AdditionalServices {
		if svc.Type == AdditionalServiceCheckedBags {
			fee = &Money{Amount: svc.Amount, Currency: p.Currency}
		}
	}
	return fee
}

// UnmarshalJSON decodes numberOfBookableSeats leniently.
func (o *FlightOffer) UnmarshalJSON(data []byte) error {
	type plain FlightOffer
	aux := struct {
		*plain
		Seats json.RawMessage `json:"numberOfBookableSeats"`
	}{plain: (*plain)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	o.NumberOfBookableSeats = lenientInt(aux.Seats)
	return nil
}

// UnmarshalJSON decodes numberOfStops leniently; an unreadable count is 0.
func (s *Segment) UnmarshalJSON(data []byte) error {
	type plain Segment
	aux := struct {
		*plain
		Stops json.RawMessage `json:"numberOfStops"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.NumberOfStops = 0
	if n := lenientInt(aux.Stops); n != nil {
		s.NumberOfStops = *n
	}
	return nil
}

// UnmarshalJSON decodes the weight leniently; an unreadable weight is 0.
func (c *Co2Emission) UnmarshalJSON(data []byte) error {
	type plain Co2Emission
	aux := struct {
		*plain
		Weight json.RawMessage `json:"weight"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Weight = 0
	if n := lenientInt(aux.Weight); n != nil {
		c.Weight = *n
	}
	return nil
}

// UnmarshalJSON decodes quantity and weight leniently. A value that is not a
// whole number is treated as absent.
func (b *BaggageAllowance) UnmarshalJSON(data []byte) error {
	type plain BaggageAllowance
	aux := struct {
		*plain
		Quantity json.RawMessage `json:"quantity"`
		Weight   json.RawMessage `json:"weight"`
	}{plain: (*plain)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	b.Quantity = lenientInt(aux.Quantity)
	b.Weight = lenientInt(aux.Weight)
	return nil
}

// lenientInt reads a whole number given as a JSON number or numeric string.
// Anything else, including null and fractions, yields nil.
func lenientInt(raw json.RawMessage) *int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
	}

	if n, err := strconv.Atoi(text); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	n := int(f)
	return &n
}
