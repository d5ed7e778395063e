package domain

// SearchResult is the presentable answer to a flight search.
type SearchResult struct {
	// SessionID identifies the stored search for follow-up steps
	SessionID string `json:"session_id"`

	// Request is the validated request that was sent to the provider
	Request SearchRequest `json:"request"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Offers contains the summaries after filtering and sorting
	Offers []OfferSummary `json:"offers"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// Provider is the name of the provider that answered
	Provider string `json:"provider"`

	// OffersReceived is the number of raw offers the provider returned
	OffersReceived int `json:"offers_received"`

	// OffersSkipped is the number of offers that could not be normalized
	OffersSkipped int `json:"offers_skipped"`

	// TotalResults is the number of summaries returned after filtering
	TotalResults int `json:"total_results"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewSearchResult creates a SearchResult and fills TotalResults.
func NewSearchResult(sessionID string, req SearchRequest, offers []OfferSummary, metadata SearchMetadata) SearchResult {
	if offers == nil {
		offers = []OfferSummary{}
	}
	metadata.TotalResults = len(offers)

	return SearchResult{
		SessionID: sessionID,
		Request:   req,
		Metadata:  metadata,
		Offers:    offers,
	}
}
