package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/http/middleware"
)

// RegisterRoutes registers all flight assistant API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware on the API group.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *FlightHandler, mw ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", mw...)

	// The search starts or continues a conversation session
	flights := api.Group("/flights", middleware.SessionID())
	flights.POST("/search", h.SearchFlights)

	api.GET("/airports", h.LookupAirports)

	offers := api.Group("/sessions/:sessionID/offers/:offerID")
	offers.GET("", h.GetOfferDetails)
	offers.POST("/pricing", h.PriceOffer)
	offers.POST("/bookings", h.CreateBooking)
}

// RegisterMetrics exposes a Prometheus handler at /metrics.
func RegisterMetrics(e *echo.Echo, handler http.Handler) {
	e.GET("/metrics", echo.WrapHandler(handler))
}
