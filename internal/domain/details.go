package domain

import (
	"strings"
	"time"
)

// FlightType classifies an offer by whether any itinerary connects.
type FlightType string

// Flight types.
const (
	FlightTypeDirect     FlightType = "DIRECT"
	FlightTypeConnecting FlightType = "CONNECTING"
)

// OfferDetails is the full view of one offer: every itinerary and segment,
// layovers, per-traveler baggage and the price breakdown.
type OfferDetails struct {
	OfferID               string             `json:"offer_id"`
	FlightType            FlightType         `json:"flight_type"`
	Price                 PriceBreakdown     `json:"price"`
	Itineraries           []ItineraryDetails `json:"itineraries"`
	Baggage               []TravelerBaggage  `json:"baggage"`
	ValidatingAirlines    []string           `json:"validating_airlines,omitempty"`
	NumberOfBookableSeats *int               `json:"number_of_bookable_seats,omitempty"`
	LastTicketingDate     string             `json:"last_ticketing_date,omitempty"`
}

// PriceBreakdown is the offer price with its components.
type PriceBreakdown struct {
	Total      Money   `json:"total"`
	Base       *Money  `json:"base,omitempty"`
	GrandTotal Money   `json:"grand_total"`
	Fees       []Money `json:"fees,omitempty"`
}

// ItineraryDetails is one direction of travel.
type ItineraryDetails struct {
	Duration DurationInfo     `json:"duration"`
	Segments []SegmentDetails `json:"segments"`
	Layovers []Layover        `json:"layovers,omitempty"`
}

// SegmentDetails describes one flown leg.
type SegmentDetails struct {
	SegmentID        string       `json:"segment_id"`
	FlightNumber     string       `json:"flight_number"`
	OperatingCarrier string       `json:"operating_carrier"`
	Aircraft         string       `json:"aircraft,omitempty"`
	Departure        EndpointView `json:"departure"`
	Arrival          EndpointView `json:"arrival"`
	Duration         DurationInfo `json:"duration"`
	Stops            int          `json:"stops"`
	Cabin            string       `json:"cabin,omitempty"`
	BrandedFare      string       `json:"branded_fare,omitempty"`
}

// EndpointView is an airport, terminal and local time.
type EndpointView struct {
	Airport  string `json:"airport"`
	Terminal string `json:"terminal,omitempty"`
	Time     string `json:"time"`
}

// Layover is the connection time between two consecutive segments.
type Layover struct {
	Airport  string       `json:"airport"`
	Duration DurationInfo `json:"duration"`
}

// TravelerBaggage is one traveler's allowance on the first segment.
type TravelerBaggage struct {
	TravelerID   string    `json:"traveler_id"`
	TravelerType string    `json:"traveler_type"`
	Checked      Allowance `json:"checked"`
	Cabin        Allowance `json:"cabin"`
}

// Describe builds the detailed view of a validated offer.
func Describe(offer FlightOffer) (OfferDetails, error) {
	if err := offer.Validate(); err != nil {
		return OfferDetails{}, err
	}

	details := OfferDetails{
		OfferID:               offer.ID,
		FlightType:            FlightTypeDirect,
		Price:                 newPriceBreakdown(*offer.Price),
		Itineraries:           make([]ItineraryDetails, 0, len(offer.Itineraries)),
		ValidatingAirlines:    offer.ValidatingAirlineCodes,
		NumberOfBookableSeats: offer.NumberOfBookableSeats,
		LastTicketingDate:     offer.LastTicketingDate,
	}

	for _, itin := range offer.Itineraries {
		if len(itin.Segments) > 1 {
			details.FlightType = FlightTypeConnecting
		}
		details.Itineraries = append(details.Itineraries, describeItinerary(offer, itin))
	}

	firstSegment := offer.Itineraries[0].Segments[0].ID
	for _, tp := range offer.TravelerPricings {
		bag := TravelerBaggage{
			TravelerID:   tp.TravelerID,
			TravelerType: tp.TravelerType,
			Checked:      UnknownAllowance(),
			Cabin:        UnknownAllowance(),
		}
		if fare := tp.fareDetailsFor(firstSegment); fare != nil {
			bag.Checked = allowanceFrom(fare.IncludedCheckedBags, true)
			bag.Cabin = allowanceFrom(fare.IncludedCabinBags, false)
		}
		details.Baggage = append(details.Baggage, bag)
	}

	return details, nil
}

func describeItinerary(offer FlightOffer, itin Itinerary) ItineraryDetails {
	out := ItineraryDetails{
		Duration: NewDurationInfoFromISO(itin.Duration),
		Segments: make([]SegmentDetails, 0, len(itin.Segments)),
	}

	for i, seg := range itin.Segments {
		sd := SegmentDetails{
			SegmentID:        seg.ID,
			FlightNumber:     seg.CarrierCode + " " + seg.Number,
			OperatingCarrier: seg.CarrierCode,
			Departure:        EndpointView{Airport: seg.Departure.IATACode, Terminal: seg.Departure.Terminal, Time: seg.Departure.At},
			Arrival:          EndpointView{Airport: seg.Arrival.IATACode, Terminal: seg.Arrival.Terminal, Time: seg.Arrival.At},
			Duration:         NewDurationInfoFromISO(seg.Duration),
			Stops:            seg.NumberOfStops,
		}
		if seg.Operating != nil && seg.Operating.CarrierCode != "" {
			sd.OperatingCarrier = seg.Operating.CarrierCode
		}
		if seg.Aircraft != nil {
			sd.Aircraft = seg.Aircraft.Code
		}
		if fare := offer.segmentFare(seg.ID); fare != nil {
			sd.Cabin = fare.Cabin
			sd.BrandedFare = fare.BrandedFare
		}
		out.Segments = append(out.Segments, sd)

		if i > 0 {
			if layover, ok := layoverBetween(itin.Segments[i-1], seg); ok {
				out.Layovers = append(out.Layovers, layover)
			}
		}
	}

	return out
}

// layoverBetween computes the connection time at prev's arrival airport.
// Both timestamps are local to that airport.
func layoverBetween(prev, next Segment) (Layover, bool) {
	arrived, err := time.Parse(ProviderTimeLayout, prev.Arrival.At)
	if err != nil {
		return Layover{}, false
	}
	departs, err := time.Parse(ProviderTimeLayout, next.Departure.At)
	if err != nil || departs.Before(arrived) {
		return Layover{}, false
	}
	return Layover{
		Airport:  prev.Arrival.IATACode,
		Duration: NewDurationInfo(int(departs.Sub(arrived).Minutes())),
	}, true
}

func newPriceBreakdown(p OfferPrice) PriceBreakdown {
	pb := PriceBreakdown{
		Total:      Money{Amount: p.Total, Currency: p.Currency},
		GrandTotal: Money{Amount: p.Total, Currency: p.Currency},
	}
	if strings.TrimSpace(p.GrandTotal) != "" {
		pb.GrandTotal.Amount = p.GrandTotal
	}
	if p.Base != "" {
		pb.Base = &Money{Amount: p.Base, Currency: p.Currency}
	}
	for _, fee := range p.Fees {
		pb.Fees = append(pb.Fees, Money{Amount: fee.Amount, Currency: p.Currency})
	}
	return pb
}
