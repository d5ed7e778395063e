package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/http/response"
)

// Path parameter names.
const (
	paramSessionID = "sessionID"
	paramOfferID   = "offerID"
)

// GetOfferDetails handles GET /api/v1/sessions/:sessionID/offers/:offerID
//
// @Summary Offer details
// @Description Full view of one offer from the session's last search: segments, layovers, baggage per traveler and price breakdown.
// @Tags offers
// @Produce json
// @Param sessionID path string true "Session ID returned by the search"
// @Param offerID path string true "Offer ID"
// @Success 200 {object} domain.OfferDetails
// @Failure 400 {object} response.ErrorDetail
// @Failure 404 {object} response.ErrorDetail "Unknown session or offer"
// @Router /sessions/{sessionID}/offers/{offerID} [get]
func (h *FlightHandler) GetOfferDetails(c echo.Context) error {
	details, err := h.offers.Details(c.Request().Context(), c.Param(paramSessionID), c.Param(paramOfferID))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, details)
}

// PriceOffer handles POST /api/v1/sessions/:sessionID/offers/:offerID/pricing
//
// @Summary Confirm offer price
// @Description Re-price an offer with the provider and summarize the confirmed total, CO2 emissions and taxes.
// @Tags offers
// @Produce json
// @Param sessionID path string true "Session ID returned by the search"
// @Param offerID path string true "Offer ID"
// @Success 200 {object} domain.PricedOfferSummary
// @Failure 404 {object} response.ErrorDetail "Unknown session or offer"
// @Failure 422 {object} response.ErrorDetail "Provider returned a malformed offer"
// @Failure 502 {object} response.ErrorDetail "Provider error"
// @Failure 504 {object} response.ErrorDetail "Provider timeout"
// @Router /sessions/{sessionID}/offers/{offerID}/pricing [post]
func (h *FlightHandler) PriceOffer(c echo.Context) error {
	priced, err := h.offers.Price(c.Request().Context(), c.Param(paramSessionID), c.Param(paramOfferID))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, priced)
}

// CreateBooking handles POST /api/v1/sessions/:sessionID/offers/:offerID/bookings
//
// @Summary Create a mock booking
// @Description Validate travelers and return an UNCONFIRMED mock order. Nothing is booked or persisted.
// @Tags bookings
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID returned by the search"
// @Param offerID path string true "Offer ID"
// @Param request body CreateBookingRequest true "Travelers"
// @Success 201 {object} domain.FlightOrder
// @Failure 400 {object} response.ErrorDetail "Invalid traveler data"
// @Failure 404 {object} response.ErrorDetail "Unknown session or offer"
// @Router /sessions/{sessionID}/offers/{offerID}/bookings [post]
func (h *FlightHandler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	order, err := h.bookings.CreateBooking(c.Request().Context(), c.Param(paramSessionID), c.Param(paramOfferID), req.Travelers)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, order)
}
