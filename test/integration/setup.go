// Package integration provides helpers and integration tests for the flight assistant.
// Integration tests verify that components work together correctly, including
// HTTP handlers, use cases, session stores and provider adapters.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-assistant/flight-offer-assistant/internal/adapter/http"
	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/http/middleware"
	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/session"
	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/metrics"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/timeutil"
	"github.com/flight-assistant/flight-offer-assistant/internal/usecase"
)

// Today is the fixed date every integration test runs on.
const Today = "2026-11-01"

// TravelDate is a departure date after Today that matches the fixture offers.
const TravelDate = "2026-12-27"

// Provider is what a test server needs from a provider adapter.
type Provider interface {
	domain.FlightOfferProvider
	domain.AirportLocator
}

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo     *echo.Echo
	Handler  *httpAdapter.FlightHandler
	Sessions domain.SearchSessionStore
	Metrics  *metrics.Metrics
}

// ServerOption customizes NewTestServer.
type ServerOption func(*serverConfig)

type serverConfig struct {
	sessions domain.SearchSessionStore
	clock    timeutil.Clock
	usecase  *usecase.Config
	metrics  *metrics.Metrics
}

// WithSessions replaces the default in-memory session store.
func WithSessions(store domain.SearchSessionStore) ServerOption {
	return func(c *serverConfig) { c.sessions = store }
}

// WithUseCaseConfig sets the use case timeouts.
func WithUseCaseConfig(cfg *usecase.Config) ServerOption {
	return func(c *serverConfig) { c.usecase = cfg }
}

// WithMetrics records into m instead of a throwaway registry.
func WithMetrics(m *metrics.Metrics) ServerOption {
	return func(c *serverConfig) { c.metrics = m }
}

// NewTestServer wires the full stack on top of provider.
func NewTestServer(provider Provider, opts ...ServerOption) *TestServer {
	clock := timeutil.NewMockClock(mustDate(Today).Add(12 * time.Hour))
	cfg := &serverConfig{
		clock:   clock,
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.sessions == nil {
		cfg.sessions = session.NewMemoryStore(30*time.Minute, cfg.clock)
	}

	ucOpts := []usecase.Option{usecase.WithClock(cfg.clock), usecase.WithMetrics(cfg.metrics)}
	handler := httpAdapter.NewFlightHandler(
		usecase.NewFlightSearchUseCase(provider, cfg.sessions, cfg.usecase, ucOpts...),
		usecase.NewOfferUseCase(provider, cfg.sessions, cfg.usecase, ucOpts...),
		usecase.NewBookingUseCase(cfg.sessions, ucOpts...),
		usecase.NewAirportUseCase(provider, provider.Name(), cfg.usecase, ucOpts...),
		nil,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:     e,
		Handler:  handler,
		Sessions: cfg.sessions,
		Metrics:  cfg.metrics,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	SessionID   string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.SessionID != "" {
		httpReq.Header.Set(middleware.SessionIDHeader, req.SessionID)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Search posts a search request in the given session. An empty session
// lets the server start one.
func (ts *TestServer) Search(sessionID string, body interface{}) Response {
	return ts.Do(Request{
		Method:    http.MethodPost,
		Path:      "/api/v1/flights/search",
		Body:      body,
		SessionID: sessionID,
	})
}

// OfferDetails requests the details of one offer.
func (ts *TestServer) OfferDetails(sessionID, offerID string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/sessions/" + sessionID + "/offers/" + offerID,
	})
}

// PriceOffer requests a price confirmation for one offer.
func (ts *TestServer) PriceOffer(sessionID, offerID string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/sessions/" + sessionID + "/offers/" + offerID + "/pricing",
	})
}

// Book creates a mock booking for one offer.
func (ts *TestServer) Book(sessionID, offerID string, travelers []domain.Traveler) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/sessions/" + sessionID + "/offers/" + offerID + "/bookings",
		Body:   httpAdapter.CreateBookingRequest{Travelers: travelers},
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResult parses the response body as a SearchResult.
func (r *Response) ParseSearchResult() (*domain.SearchResult, error) {
	var resp domain.SearchResult
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// DecodeInto unmarshals the response body into v.
func (r *Response) DecodeInto(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// SearchBody is a helper for building search request bodies.
type SearchBody struct {
	Params  domain.SearchParams    `json:"params"`
	Filters map[string]interface{} `json:"filters,omitempty"`
	SortBy  string                 `json:"sortBy,omitempty"`
}

// DefaultSearchBody returns a valid JFK to LAX search on TravelDate.
// Values are loosely typed the way an assistant collects them.
func DefaultSearchBody() SearchBody {
	return SearchBody{
		Params: domain.SearchParams{
			domain.FieldOrigin:        "jfk",
			domain.FieldDestination:   "LAX",
			domain.FieldDepartureDate: TravelDate,
			domain.FieldAdults:        "1",
		},
	}
}

// DefaultSearchParams returns the parameters of DefaultSearchBody for use case tests.
func DefaultSearchParams() domain.SearchParams {
	return DefaultSearchBody().Params
}

// SampleTraveler returns a traveler that passes booking validation.
func SampleTraveler() domain.Traveler {
	return domain.Traveler{
		DateOfBirth: "1985-06-15",
		Name:        domain.TravelerName{FirstName: "Ada", LastName: "Lovelace"},
		Gender:      domain.GenderFemale,
		Contact:     domain.TravelerContact{EmailAddress: "ada@example.com"},
	}
}

func mustDate(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}
