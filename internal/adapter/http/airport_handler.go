package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/http/response"
)

// LookupAirports handles GET /api/v1/airports?keyword=
//
// @Summary Find airports by city
// @Description Resolve a city or airport name to candidate IATA codes.
// @Tags airports
// @Produce json
// @Param keyword query string true "City or airport name, at least 2 characters"
// @Success 200 {object} response.AirportsResponse
// @Failure 400 {object} response.ErrorDetail "Missing or too short keyword"
// @Failure 502 {object} response.ErrorDetail "Provider error"
// @Router /airports [get]
func (h *FlightHandler) LookupAirports(c echo.Context) error {
	keyword := c.QueryParam("keyword")

	airports, err := h.airports.Lookup(c.Request().Context(), keyword)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Airports(c, keyword, airports)
}
