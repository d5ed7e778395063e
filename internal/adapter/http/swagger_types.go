package http

// Swagger types mirror the JSON the API writes. Baggage allowances are
// custom-marshaled in the domain, so swag cannot derive them from the Go types.

// SwaggerSearchResponse represents the search API response for swagger documentation.
// @Description Normalized offer summaries and search metadata
type SwaggerSearchResponse struct {
	// SessionID identifies the stored search for the detail, pricing and booking steps
	SessionID string `json:"session_id" example:"5b0c1f8e-2a7d-4c55-9a4e-0f8f2d3c9b61"`

	// Request is the validated request sent to the provider
	Request SwaggerSearchRequest `json:"request"`

	// Metadata contains information about the search execution
	Metadata SwaggerSearchMetadata `json:"metadata"`

	// Offers contains the summaries after filtering and sorting
	Offers []SwaggerOfferSummary `json:"offers"`
}

// SwaggerSearchRequest is the reconciled search request.
// @Description Validated search request
type SwaggerSearchRequest struct {
	OriginCode       string   `json:"originCode" example:"JFK"`
	DestinationCode  string   `json:"destinationCode" example:"LAX"`
	DepartureDate    string   `json:"departureDate" example:"2026-12-01"`
	AdultCount       int      `json:"adultCount" example:"1"`
	ReturnDate       string   `json:"returnDate,omitempty" example:"2026-12-08"`
	ChildCount       int      `json:"childCount,omitempty" example:"0"`
	InfantCount      int      `json:"infantCount,omitempty" example:"0"`
	CabinClass       string   `json:"cabinClass,omitempty" example:"ECONOMY"`
	DirectOnly       bool     `json:"directOnly" example:"false"`
	IncludedAirlines []string `json:"includedAirlines,omitempty"`
	ExcludedAirlines []string `json:"excludedAirlines,omitempty"`
	MaxPrice         int      `json:"maxPrice,omitempty" example:"500"`
	MaxResults       int      `json:"maxResults,omitempty" example:"10"`
	CurrencyCode     string   `json:"currencyCode,omitempty" example:"USD"`
}

// SwaggerSearchMetadata contains metadata about the search execution.
// @Description Metadata about the search execution
type SwaggerSearchMetadata struct {
	Provider       string `json:"provider" example:"amadeus"`
	OffersReceived int    `json:"offers_received" example:"12"`
	OffersSkipped  int    `json:"offers_skipped" example:"1"`
	TotalResults   int    `json:"total_results" example:"8"`
	SearchTimeMs   int64  `json:"search_time_ms" example:"1250"`
}

// SwaggerOfferSummary represents the flat view of one offer's first leg.
// @Description Offer summary
type SwaggerOfferSummary struct {
	OfferID       string              `json:"offer_id" example:"1"`
	FlightDate    string              `json:"flight_date" example:"2026-12-01"`
	DepartureTime string              `json:"departure_time" example:"2026-12-01T08:00:00"`
	ArrivalTime   string              `json:"arrival_time" example:"2026-12-01T11:15:00"`
	From          string              `json:"from" example:"JFK"`
	To            string              `json:"to" example:"LAX"`
	Carrier       string              `json:"carrier" example:"AA"`
	FlightNumber  string              `json:"flight_number" example:"AA 100"`
	Duration      SwaggerDurationInfo `json:"duration"`
	Stops         int                 `json:"stops" example:"0"`
	IsDirect      bool                `json:"is_direct" example:"true"`
	TotalPrice    SwaggerMoney        `json:"total_price"`

	// CheckedBagsIncluded is a bag count, a weight such as "23 KG", or "Unknown"
	CheckedBagsIncluded string `json:"checked_bags_included" example:"1"`

	// CarryOnBagsIncluded is a bag count, a weight such as "8 KG", or "Unknown"
	CarryOnBagsIncluded string `json:"carryon_bags_included" example:"Unknown"`

	CheckedBagFee *SwaggerMoney     `json:"checked_bag_fee,omitempty"`
	Amenities     []SwaggerAmenity `json:"amenities"`
}

// SwaggerDurationInfo contains flight duration information.
// @Description Flight duration information
type SwaggerDurationInfo struct {
	ISO          string `json:"iso,omitempty" example:"PT6H15M"`
	TotalMinutes int    `json:"totalMinutes" example:"375"`
	Formatted    string `json:"formatted" example:"6h 15m"`
}

// SwaggerMoney is a decimal amount with its currency.
// @Description Money amount
type SwaggerMoney struct {
	Amount   string `json:"amount" example:"250.00"`
	Currency string `json:"currency" example:"USD"`
}

// SwaggerAmenity is a service attached to a fare.
// @Description Fare amenity
type SwaggerAmenity struct {
	Description  string `json:"description" example:"FIRST CHECKED BAG"`
	IsChargeable bool   `json:"isChargeable" example:"true"`
	AmenityType  string `json:"amenityType,omitempty" example:"BAGGAGE"`
}
