package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
)

type searchResponse struct {
	Data []json.RawMessage `json:"data"`
}

// SearchOffers runs a flight offer search and returns the offers verbatim.
func (c *Client) SearchOffers(ctx context.Context, req domain.SearchRequest) ([]domain.RawOffer, error) {
	query := req.QueryParams()
	if req.CurrencyCode == nil && c.defaultCurrency != "" {
		query.Set(domain.QueryCurrencyCode, c.defaultCurrency)
	}

	body, err := c.do(ctx, call{
		operation: "search",
		method:    http.MethodGet,
		path:      searchPath,
		query:     query,
	})
	if err != nil {
		return nil, err
	}

	offers, err := DecodeOffers(body)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	return offers, nil
}

// DecodeOffers reads the data array of a flight offer search response.
// Each element is kept as raw JSON.
func DecodeOffers(body []byte) ([]domain.RawOffer, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode flight offers: %w", err)
	}

	offers := make([]domain.RawOffer, 0, len(resp.Data))
	for _, raw := range resp.Data {
		offers = append(offers, domain.RawOffer(raw))
	}
	return offers, nil
}
