package amadeus

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
)

// APIError is one entry of an Amadeus error response.
type APIError struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Source *struct {
		Parameter string `json:"parameter,omitempty"`
		Pointer   string `json:"pointer,omitempty"`
	} `json:"source,omitempty"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Title)
	if e.Detail != "" {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}
	if e.Source != nil && e.Source.Parameter != "" {
		fmt.Fprintf(&b, " (parameter %s)", e.Source.Parameter)
	}
	if e.Code != 0 {
		fmt.Fprintf(&b, " [code %d]", e.Code)
	}
	return b.String()
}

type errorResponse struct {
	Errors []APIError `json:"errors"`
}

// statusError converts a non-2xx answer into a ProviderError carrying the
// first API error, or the HTTP status text when the body is not an error document.
func statusError(status int, body []byte) *domain.ProviderError {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && len(resp.Errors) > 0 {
		apiErr := resp.Errors[0]
		if apiErr.Title == "" && apiErr.Detail == "" {
			apiErr.Title = http.StatusText(status)
		}
		return domain.NewProviderStatusError(ProviderName, status, &apiErr)
	}
	return domain.NewProviderStatusError(ProviderName, status, fmt.Errorf("%s", http.StatusText(status)))
}
