// Package http provides the HTTP handler layer for the flight assistant API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
)

// SearchFlightsRequest represents the request body for flight search.
// Params is passed through untouched; the search use case reconciles it.
type SearchFlightsRequest struct {
	// Params holds the search parameters as the assistant collected them,
	// e.g. {"origin": "JFK", "destination": "LAX", "departureDate": "2026-12-01", "adults": 1}
	Params domain.SearchParams `json:"params"`

	// Filters contains optional filtering criteria applied after normalization
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy specifies how to sort results: best, price, duration, departure
	SortBy string `json:"sortBy,omitempty"`
}

// FilterDTO represents optional filters for flight search results.
// Example: {"maxPrice": 400, "maxStops": 0, "requireCheckedBag": true, "departureTimeRange": {"start": "06:00", "end": "12:00"}}
type FilterDTO struct {
	// MaxPrice filters out offers priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"400"`

	// MaxStops filters offers with more stops than this value (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty" example:"0"`

	// Airlines filters to only include offers from these carrier codes
	Airlines []string `json:"airlines,omitempty" example:"AA,DL"`

	// RequireCheckedBag keeps only offers that include a checked bag
	RequireCheckedBag bool `json:"requireCheckedBag,omitempty" example:"true"`

	// DepartureTimeRange filters offers departing within a time window
	DepartureTimeRange *TimeRangeDTO `json:"departureTimeRange,omitempty"`

	// DurationRange filters offers by first-leg duration in minutes
	DurationRange *DurationRangeDTO `json:"durationRange,omitempty"`
}

// TimeRangeDTO represents a time window for filtering.
type TimeRangeDTO struct {
	// Start is the beginning of the time range (HH:MM format, e.g., "06:00")
	Start string `json:"start"`

	// End is the end of the time range (HH:MM format, e.g., "12:00")
	End string `json:"end"`
}

// DurationRangeDTO represents a duration range filter in minutes.
// Example: {"minMinutes": 60, "maxMinutes": 360} filters flights between 1-6 hours.
type DurationRangeDTO struct {
	// MinMinutes is the minimum acceptable flight duration in minutes
	MinMinutes *int `json:"minMinutes,omitempty" example:"60"`

	// MaxMinutes is the maximum acceptable flight duration in minutes
	MaxMinutes *int `json:"maxMinutes,omitempty" example:"360"`
}

// CreateBookingRequest represents the request body for a mock booking.
type CreateBookingRequest struct {
	// Travelers lists one entry per traveler the offer was priced for
	Travelers []domain.Traveler `json:"travelers"`
}

var (
	timePattern        = regexp.MustCompile(`^\d{2}:\d{2}$`)
	carrierCodePattern = regexp.MustCompile(`^[A-Z0-9]{2}$`)
)

// Valid sort options.
var validSortOptions = map[string]bool{
	"best":       true,
	"best_value": true, // Alias for best
	"price":      true,
	"duration":   true,
	"departure":  true,
	"":           true, // Empty is valid (defaults to best)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the presentation part of the request. The search
// parameters themselves are validated by the use case.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateSortBy(errs)
	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateSortBy(errs *ValidationErrors) {
	if !validSortOptions[strings.ToLower(r.SortBy)] {
		errs.Add("sortBy", "sortBy must be one of: best, price, duration, departure")
	}
}

func (r *SearchFlightsRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
		errs.Add("filters.maxPrice", "maxPrice must be a positive number")
	}

	if r.Filters.MaxStops != nil && *r.Filters.MaxStops < 0 {
		errs.Add("filters.maxStops", "maxStops must be a non-negative number")
	}

	for i, airline := range r.Filters.Airlines {
		normalized := strings.ToUpper(strings.TrimSpace(airline))
		if !carrierCodePattern.MatchString(normalized) {
			errs.Add(fmt.Sprintf("filters.airlines[%d]", i),
				"airline code must be a 2-character IATA code")
		}
		r.Filters.Airlines[i] = normalized
	}

	if r.Filters.DepartureTimeRange != nil {
		r.validateDepartureTimeRange(errs)
	}

	if r.Filters.DurationRange != nil {
		r.validateDurationRange(errs)
	}
}

func (r *SearchFlightsRequest) validateDepartureTimeRange(errs *ValidationErrors) {
	tr := r.Filters.DepartureTimeRange

	if tr.Start == "" {
		errs.Add("filters.departureTimeRange.start", "start time is required when departureTimeRange is specified")
	} else if !isValidTimeFormat(tr.Start) {
		errs.Add("filters.departureTimeRange.start", "start must be in HH:MM format with valid hours (00-23) and minutes (00-59)")
	}

	if tr.End == "" {
		errs.Add("filters.departureTimeRange.end", "end time is required when departureTimeRange is specified")
	} else if !isValidTimeFormat(tr.End) {
		errs.Add("filters.departureTimeRange.end", "end must be in HH:MM format with valid hours (00-23) and minutes (00-59)")
	}
}

func (r *SearchFlightsRequest) validateDurationRange(errs *ValidationErrors) {
	dr := r.Filters.DurationRange

	if dr.MinMinutes != nil && *dr.MinMinutes < 0 {
		errs.Add("filters.durationRange.minMinutes", "minMinutes must be a non-negative number")
	}

	if dr.MaxMinutes != nil && *dr.MaxMinutes < 0 {
		errs.Add("filters.durationRange.maxMinutes", "maxMinutes must be a non-negative number")
	}

	if dr.MinMinutes != nil && dr.MaxMinutes != nil && *dr.MinMinutes > *dr.MaxMinutes {
		errs.Add("filters.durationRange", "minMinutes must be less than or equal to maxMinutes")
	}
}

// Validate checks that the booking names at least one traveler.
// Traveler fields are validated by the booking use case.
func (r *CreateBookingRequest) Validate() error {
	if len(r.Travelers) == 0 {
		errs := &ValidationErrors{}
		errs.Add("travelers", "at least one traveler is required")
		return errs
	}
	return nil
}

// isValidTimeFormat validates that a time string is in HH:MM format with valid values.
// Hours must be 00-23, minutes must be 00-59.
func isValidTimeFormat(timeStr string) bool {
	if !timePattern.MatchString(timeStr) {
		return false
	}

	var hour, minute int
	_, err := fmt.Sscanf(timeStr, "%02d:%02d", &hour, &minute)
	if err != nil {
		return false
	}

	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}
