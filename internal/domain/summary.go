package domain

import (
	"strconv"
	"strings"
	"time"
)

// ProviderTimeLayout is the local timestamp format used in segment endpoints.
const ProviderTimeLayout = "2006-01-02T15:04:05"

// Money is a decimal amount as sent by the provider, with its currency.
type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// Value parses the amount. Unparseable amounts are reported as 0.
func (m Money) Value() float64 {
	v, err := strconv.ParseFloat(m.Amount, 64)
	if err != nil {
		return 0
	}
	return v
}

// String renders the amount with its currency (e.g. "250.00 USD").
func (m Money) String() string {
	return strings.TrimSpace(m.Amount + " " + m.Currency)
}

// OfferSummary is the flat, presentable view of one offer's first leg.
type OfferSummary struct {
	OfferID             string       `json:"offer_id"`
	FlightDate          string       `json:"flight_date"`
	DepartureTime       string       `json:"departure_time"`
	ArrivalTime         string       `json:"arrival_time"`
	From                string       `json:"from"`
	To                  string       `json:"to"`
	Carrier             string       `json:"carrier"`
	FlightNumber        string       `json:"flight_number"`
	Duration            DurationInfo `json:"duration"`
	Stops               int          `json:"stops"`
	IsDirect            bool         `json:"is_direct"`
	TotalPrice          Money        `json:"total_price"`
	CheckedBagsIncluded Allowance    `json:"checked_bags_included"`
	CarryOnBagsIncluded Allowance    `json:"carryon_bags_included"`
	CheckedBagFee       *Money       `json:"checked_bag_fee,omitempty"`
	Amenities           []Amenity    `json:"amenities"`
}

// DepartureAt parses the departure timestamp.
func (s OfferSummary) DepartureAt() (time.Time, bool) {
	t, err := time.Parse(ProviderTimeLayout, s.DepartureTime)
	return t, err == nil
}

// Normalize flattens a validated offer into an OfferSummary.
// Only a structurally malformed offer is an error; every optional lookup has a fallback.
func Normalize(offer FlightOffer) (OfferSummary, error) {
	if err := offer.Validate(); err != nil {
		return OfferSummary{}, err
	}

	seg := offer.Itineraries[0].Segments[0]
	flightDate, _, _ := strings.Cut(seg.Departure.At, "T")

	summary := OfferSummary{
		OfferID:             offer.ID,
		FlightDate:          flightDate,
		DepartureTime:       seg.Departure.At,
		ArrivalTime:         seg.Arrival.At,
		From:                seg.Departure.IATACode,
		To:                  seg.Arrival.IATACode,
		Carrier:             seg.CarrierCode,
		FlightNumber:        seg.CarrierCode + " " + seg.Number,
		Duration:            NewDurationInfoFromISO(seg.Duration),
		Stops:               seg.NumberOfStops,
		IsDirect:            seg.NumberOfStops == 0,
		TotalPrice:          Money{Amount: offer.Price.Total, Currency: offer.Price.Currency},
		CheckedBagsIncluded: UnknownAllowance(),
		CarryOnBagsIncluded: UnknownAllowance(),
		CheckedBagFee:       offer.Price.checkedBagFee(),
		Amenities:           []Amenity{},
	}

	if fare := offer.fareDetailsFor(seg.ID); fare != nil {
		summary.CheckedBagsIncluded = allowanceFrom(fare.IncludedCheckedBags, true)
		summary.CarryOnBagsIncluded = allowanceFrom(fare.IncludedCabinBags, false)
		if len(fare.Amenities) > 0 {
			summary.Amenities = append([]Amenity(nil), fare.Amenities...)
		}
	}

	return summary, nil
}

// NormalizeRaw decodes, validates and normalizes one raw offer.
func NormalizeRaw(raw RawOffer) (OfferSummary, error) {
	offer, err := ParseOffer(raw)
	if err != nil {
		return OfferSummary{}, err
	}
	return Normalize(offer)
}

// OfferError records why one offer of a batch was skipped.
type OfferError struct {
	Index int
	Err   error
}

func (e OfferError) Error() string {
	return "offer " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

func (e OfferError) Unwrap() error {
	return e.Err
}

// NormalizeAll normalizes a batch, skipping offers that fail.
// The returned summaries keep the input order.
func NormalizeAll(raws []RawOffer) ([]OfferSummary, []OfferError) {
	summaries := make([]OfferSummary, 0, len(raws))
	var skipped []OfferError

	for i, raw := range raws {
		summary, err := NormalizeRaw(raw)
		if err != nil {
			skipped = append(skipped, OfferError{Index: i, Err: err})
			continue
		}
		summaries = append(summaries, summary)
	}

	return summaries, skipped
}
