package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PricedOfferSummary is the summary of an offer after price confirmation.
type PricedOfferSummary struct {
	OfferSummary

	// Co2Emissions is the first segment's estimate.
	Co2Emissions Emission `json:"co2_emissions"`

	// Taxes are the first traveler's tax lines.
	Taxes []Money `json:"taxes"`

	// GrandTotal is the confirmed amount to pay.
	GrandTotal Money `json:"grand_total"`
}

// Emission is a CO2 estimate in kilograms, or unknown. The zero value is unknown.
type Emission struct {
	kg    int
	known bool
}

// KnownEmission returns an estimate of kg kilograms.
func KnownEmission(kg int) Emission {
	return Emission{kg: kg, known: true}
}

// Kg returns the estimate and whether the provider gave one.
func (e Emission) Kg() (int, bool) { return e.kg, e.known }

// String renders the estimate as "310" or "Unknown".
func (e Emission) String() string {
	if !e.known {
		return UnknownLabel
	}
	return strconv.Itoa(e.kg)
}

// MarshalJSON writes a known estimate as a number and an unknown one as "Unknown".
func (e Emission) MarshalJSON() ([]byte, error) {
	if e.known {
		return json.Marshal(e.kg)
	}
	return json.Marshal(UnknownLabel)
}

// UnmarshalJSON reads the forms written by MarshalJSON.
func (e *Emission) UnmarshalJSON(data []byte) error {
	if n := lenientInt(data); n != nil {
		*e = KnownEmission(*n)
		return nil
	}
	*e = Emission{}
	return nil
}

func emissionFrom(estimates []Co2Emission) Emission {
	if len(estimates) == 0 {
		return Emission{}
	}
	co2 := estimates[0]
	if unit := strings.ToUpper(co2.WeightUnit); unit != "" && unit != "KG" {
		return Emission{}
	}
	return KnownEmission(co2.Weight)
}

// NormalizePriced flattens a confirmed offer returned by the pricing call.
func NormalizePriced(offer FlightOffer) (PricedOfferSummary, error) {
	summary, err := Normalize(offer)
	if err != nil {
		return PricedOfferSummary{}, err
	}

	priced := PricedOfferSummary{
		OfferSummary: summary,
		Co2Emissions: emissionFrom(offer.Itineraries[0].Segments[0].Co2Emissions),
		Taxes:        []Money{},
		GrandTotal:   newPriceBreakdown(*offer.Price).GrandTotal,
	}

	if tp := offer.TravelerPricings[0]; tp.Price != nil {
		currency := tp.Price.Currency
		if currency == "" {
			currency = offer.Price.Currency
		}
		for _, tax := range tp.Price.Taxes {
			priced.Taxes = append(priced.Taxes, Money{Amount: tax.Amount, Currency: currency})
		}
	}

	return priced, nil
}
