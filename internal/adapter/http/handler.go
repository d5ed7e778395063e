package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/http/middleware"
	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/http/response"
	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/logger"
	"github.com/flight-assistant/flight-offer-assistant/internal/usecase"
)

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	search   usecase.FlightSearchUseCase
	offers   usecase.OfferUseCase
	bookings usecase.BookingUseCase
	airports usecase.AirportUseCase
	log      *logger.Logger
}

// NewFlightHandler creates a new FlightHandler with the given use cases.
func NewFlightHandler(
	search usecase.FlightSearchUseCase,
	offers usecase.OfferUseCase,
	bookings usecase.BookingUseCase,
	airports usecase.AirportUseCase,
	log *logger.Logger,
) *FlightHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &FlightHandler{
		search:   search,
		offers:   offers,
		bookings: bookings,
		airports: airports,
		log:      log,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Reconcile loosely typed search parameters, search the provider and return normalized offer summaries.
// @Description The result is stored as the session's last search for the detail, pricing and booking steps.
// @Tags flights
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Conversation session; generated when absent"
// @Param request body SearchFlightsRequest true "Search parameters, filters and sort order"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 400 {object} response.ErrorDetail "Missing, invalid or conflicting parameters"
// @Failure 502 {object} response.ErrorDetail "Provider error"
// @Failure 504 {object} response.ErrorDetail "Provider timeout"
// @Router /flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	sessionID := middleware.GetSessionID(c)
	result, err := h.search.Search(c.Request().Context(), sessionID, req.Params, ToSearchOptions(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.BadRequest(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	var (
		missing     *domain.MissingFieldError
		invalid     *domain.InvalidValueError
		conflict    *domain.ConflictError
		providerErr *domain.ProviderError
	)

	switch {
	case errors.As(err, &missing):
		return response.FieldError(c, response.CodeMissingField, missing.Error(), missing.Field)

	case errors.As(err, &invalid):
		return response.FieldError(c, response.CodeInvalidValue, invalid.Error(), invalid.Field)

	case errors.As(err, &conflict):
		return response.FieldError(c, response.CodeConflict, conflict.Error(), conflict.Fields...)

	case domain.IsInvalidRequest(err):
		return response.BadRequest(c, err.Error())

	case domain.IsNotFound(err):
		return response.NotFound(c, err.Error())

	case domain.IsMalformedOffer(err):
		return response.MalformedOffer(c, err.Error())

	// Timeouts are ProviderErrors too, so they are checked first
	case domain.IsProviderTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	case errors.As(err, &providerErr):
		return response.ProviderFailure(c, providerErr.Error(), providerErr.StatusCode)
	}

	h.log.Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(c)).
		Str("path", c.Path()).
		Msg("unhandled error")

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
//
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
