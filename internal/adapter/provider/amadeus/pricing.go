package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
)

const pricingRequestType = "flight-offers-pricing"

type pricingRequest struct {
	Data pricingData `json:"data"`
}

type pricingData struct {
	Type         string            `json:"type"`
	FlightOffers []json.RawMessage `json:"flightOffers"`
}

// PriceOffer confirms the current price of an offer returned by a search.
func (c *Client) PriceOffer(ctx context.Context, offer domain.RawOffer) (domain.RawOffer, error) {
	payload, err := json.Marshal(pricingRequest{Data: pricingData{
		Type:         pricingRequestType,
		FlightOffers: []json.RawMessage{json.RawMessage(offer)},
	}})
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("encode pricing request: %w", err))
	}

	body, err := c.do(ctx, call{
		operation: "pricing",
		method:    http.MethodPost,
		path:      pricingPath,
		body:      payload,
		header:    http.Header{"X-HTTP-Method-Override": []string{http.MethodGet}},
	})
	if err != nil {
		return nil, err
	}

	priced, err := DecodePricedOffer(body)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	return priced, nil
}

// DecodePricedOffer returns the first offer of a pricing response.
func DecodePricedOffer(body []byte) (domain.RawOffer, error) {
	var resp pricingRequest
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode pricing response: %w", err)
	}
	if len(resp.Data.FlightOffers) == 0 {
		return nil, fmt.Errorf("%w: pricing response has no flight offers", domain.ErrMalformedOffer)
	}
	return domain.RawOffer(resp.Data.FlightOffers[0]), nil
}
