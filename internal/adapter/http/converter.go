package http

import (
	"strings"
	"time"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/flight-assistant/flight-offer-assistant/internal/usecase"
)

// ToDomainFilters converts a FilterDTO to domain.FilterOptions.
func ToDomainFilters(dto *FilterDTO) *domain.FilterOptions {
	if dto == nil {
		return nil
	}

	opts := &domain.FilterOptions{
		MaxPrice:          dto.MaxPrice,
		MaxStops:          dto.MaxStops,
		Airlines:          dto.Airlines,
		RequireCheckedBag: dto.RequireCheckedBag,
	}

	if dto.DepartureTimeRange != nil {
		opts.DepartureTimeRange = toDomainTimeRange(dto.DepartureTimeRange)
	}

	if dto.DurationRange != nil {
		opts.DurationRange = toDomainDurationRange(dto.DurationRange)
	}

	return opts
}

// toDomainTimeRange converts a TimeRangeDTO to domain.TimeRange.
func toDomainTimeRange(dto *TimeRangeDTO) *domain.TimeRange {
	if dto == nil || dto.Start == "" || dto.End == "" {
		return nil
	}

	startTime, err := time.Parse("15:04", dto.Start)
	if err != nil {
		return nil
	}

	endTime, err := time.Parse("15:04", dto.End)
	if err != nil {
		return nil
	}

	return &domain.TimeRange{
		Start: startTime,
		End:   endTime,
	}
}

// toDomainDurationRange converts a DurationRangeDTO to domain.DurationRange.
func toDomainDurationRange(dto *DurationRangeDTO) *domain.DurationRange {
	if dto == nil {
		return nil
	}

	// Both bounds absent means no filter
	if dto.MinMinutes == nil && dto.MaxMinutes == nil {
		return nil
	}

	return &domain.DurationRange{
		MinMinutes: dto.MinMinutes,
		MaxMinutes: dto.MaxMinutes,
	}
}

// ToDomainSortOption converts a sort string to domain.SortOption.
func ToDomainSortOption(sortBy string) domain.SortOption {
	switch strings.ToLower(sortBy) {
	case "best", "best_value":
		return domain.SortByBestValue
	case "price":
		return domain.SortByPrice
	case "duration":
		return domain.SortByDuration
	case "departure":
		return domain.SortByDeparture
	default:
		return domain.SortByBestValue
	}
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchFlightsRequest) usecase.SearchOptions {
	return usecase.SearchOptions{
		Filters: ToDomainFilters(req.Filters),
		SortBy:  ToDomainSortOption(req.SortBy),
	}
}
