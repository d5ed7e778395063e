package usecase

import (
	"math"
	"sort"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
)

// Ranking algorithm weights.
// The sum of weights equals 1.0 for normalized scoring.
const (
	// weightPrice is the weight for price in ranking calculation (50%).
	weightPrice = 0.5

	// weightDuration is the weight for first-leg duration (30%).
	weightDuration = 0.3

	// weightStops is the weight for number of stops (20%).
	weightStops = 0.2
)

// CalculateRankingScores returns one best-value score per summary, in input order.
//
//	Score = (0.5 × NormalizedPrice) + (0.3 × NormalizedDuration) + (0.2 × NormalizedStops)
//
// Normalized values are in [0, 1], 0 being the best in the batch.
// Lower score = better value. Prices in different currencies are compared
// as plain numbers; one search answers in a single currency.
func CalculateRankingScores(offers []domain.OfferSummary) []float64 {
	scores := make([]float64, len(offers))
	if len(offers) == 0 {
		return scores
	}

	minPrice, maxPrice := findRange(offers, func(o domain.OfferSummary) float64 { return o.TotalPrice.Value() })
	minDuration, maxDuration := findRange(offers, func(o domain.OfferSummary) float64 { return float64(o.Duration.TotalMinutes) })
	minStops, maxStops := findRange(offers, func(o domain.OfferSummary) float64 { return float64(o.Stops) })

	for i, o := range offers {
		normPrice := normalizeValue(o.TotalPrice.Value(), minPrice, maxPrice)
		normDuration := normalizeValue(float64(o.Duration.TotalMinutes), minDuration, maxDuration)
		normStops := normalizeValue(float64(o.Stops), minStops, maxStops)

		scores[i] = (weightPrice * normPrice) +
			(weightDuration * normDuration) +
			(weightStops * normStops)
	}

	return scores
}

// normalizeValue normalizes a value to the range [0, 1] based on min and max.
// Returns 0 when min == max (all values equal = all optimal).
func normalizeValue(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (value - min) / (max - min)
}

// findRange returns the minimum and maximum of field across offers.
func findRange(offers []domain.OfferSummary, field func(domain.OfferSummary) float64) (min, max float64) {
	if len(offers) == 0 {
		return 0, 0
	}

	min, max = math.MaxFloat64, -math.MaxFloat64
	for _, o := range offers {
		v := field(o)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// SortOffers sorts summaries according to the specified sort option.
// Uses stable sorting, so equal values keep provider order.
//
// Sort options:
//   - SortByBestValue (default): ascending by ranking score
//   - SortByPrice: ascending by total price (cheapest first)
//   - SortByDuration: ascending by first-leg duration (shortest first)
//   - SortByDeparture: ascending by departure time (earliest first)
//
// Does NOT mutate the original slice. Empty or invalid sortBy means best value.
func SortOffers(offers []domain.OfferSummary, sortBy domain.SortOption) []domain.OfferSummary {
	if len(offers) == 0 {
		return offers
	}

	result := make([]domain.OfferSummary, len(offers))
	copy(result, offers)

	if len(result) == 1 {
		return result
	}

	if !sortBy.IsValid() {
		sortBy = domain.SortByBestValue
	}

	switch sortBy {
	case domain.SortByBestValue:
		scores := CalculateRankingScores(result)
		idx := make([]int, len(result))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(i, j int) bool {
			return scores[idx[i]] < scores[idx[j]]
		})
		ranked := make([]domain.OfferSummary, len(result))
		for i, k := range idx {
			ranked[i] = result[k]
		}
		return ranked
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalPrice.Value() < result[j].TotalPrice.Value()
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Duration.TotalMinutes < result[j].Duration.TotalMinutes
		})
	case domain.SortByDeparture:
		// Local timestamps in one fixed layout sort lexically.
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DepartureTime < result[j].DepartureTime
		})
	}

	return result
}
