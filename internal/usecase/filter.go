package usecase

import (
	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
)

// ApplyFilters returns the summaries matching every criterion in opts.
//
// Behavior:
//   - Returns the original slice if opts is nil (no filtering)
//   - Nil/empty filter values are skipped (no filtering on that criterion)
//   - Does NOT mutate the original slice
//
// Example usage:
//
//	maxStops := 0
//	opts := &domain.FilterOptions{MaxStops: &maxStops, RequireCheckedBag: true}
//	filtered := ApplyFilters(offers, opts)
func ApplyFilters(offers []domain.OfferSummary, opts *domain.FilterOptions) []domain.OfferSummary {
	if opts == nil {
		return offers
	}

	result := make([]domain.OfferSummary, 0, len(offers))
	for _, o := range offers {
		if opts.Matches(o) {
			result = append(result, o)
		}
	}
	return result
}
