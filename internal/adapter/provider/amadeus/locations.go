package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
)

const locationSubTypeAirport = "AIRPORT"

type locationsResponse struct {
	Data []location `json:"data"`
}

type location struct {
	SubType        string `json:"subType"`
	Name           string `json:"name"`
	DetailedName   string `json:"detailedName"`
	IATACode       string `json:"iataCode"`
	TimeZoneOffset string `json:"timeZoneOffset"`
	Address        struct {
		CityName    string `json:"cityName"`
		CityCode    string `json:"cityCode"`
		CountryCode string `json:"countryCode"`
	} `json:"address"`
}

// LookupAirports finds airports whose name or city matches keyword.
func (c *Client) LookupAirports(ctx context.Context, keyword string) ([]domain.Airport, error) {
	query := url.Values{}
	query.Set("subType", locationSubTypeAirport)
	query.Set("keyword", keyword)

	body, err := c.do(ctx, call{
		operation: "locations",
		method:    http.MethodGet,
		path:      locationsPath,
		query:     query,
	})
	if err != nil {
		return nil, err
	}

	airports, err := DecodeLocations(body)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	return airports, nil
}

// DecodeLocations maps a locations response to airports, skipping entries
// without an IATA code.
func DecodeLocations(body []byte) ([]domain.Airport, error) {
	var resp locationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode locations: %w", err)
	}

	airports := make([]domain.Airport, 0, len(resp.Data))
	for _, loc := range resp.Data {
		if loc.IATACode == "" {
			continue
		}
		name := loc.Name
		if name == "" {
			name = loc.DetailedName
		}
		airports = append(airports, domain.Airport{
			IATACode:    loc.IATACode,
			Name:        name,
			CityName:    loc.Address.CityName,
			CityCode:    loc.Address.CityCode,
			CountryCode: loc.Address.CountryCode,
			TimeZone:    loc.TimeZoneOffset,
		})
	}
	return airports, nil
}
