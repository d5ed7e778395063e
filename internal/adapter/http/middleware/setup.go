package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/metrics"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/tracing"
)

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. Tracing - Opens the server span so the log line can carry its trace ID
//  3. RequestLogger - Logs all requests with request ID
//  4. Metrics - Records the status the logger saw, including recovered panics
//  5. Recover - Last, catches panics and returns 500 (wraps handlers)
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, m *metrics.Metrics) {
	SetupWithConfig(e, log, m, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, m *metrics.Metrics, recoveryConfig RecoveryConfig) {
	e.Use(chain(log, m, recoveryConfig)...)
}

// Chain returns all middleware as a slice for use with route groups.
// Useful when you want to apply middleware to specific route groups only.
func Chain(log zerolog.Logger, m *metrics.Metrics) []echo.MiddlewareFunc {
	return chain(log, m, DefaultRecoveryConfig())
}

func chain(log zerolog.Logger, m *metrics.Metrics, recoveryConfig RecoveryConfig) []echo.MiddlewareFunc {
	if m == nil {
		m = metrics.NewNop()
	}
	return []echo.MiddlewareFunc{
		RequestID(),
		Tracing(tracing.Tracer()),
		RequestLogger(log),
		Metrics(m),
		RecoverWithConfig(log, recoveryConfig),
	}
}
