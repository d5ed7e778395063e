package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/metrics"
)

// unmatchedRoute labels requests that did not hit a registered route.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that records request count and latency per route.
// The route template is used as the path label so IDs in the URL do not
// create new series.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			status := responseStatus(c, err)
			m.ObserveHTTPRequest(c.Request().Method, route, strconv.Itoa(status), time.Since(start).Seconds())

			return err
		}
	}
}

// responseStatus returns the status the client will see for this request.
// A returned error has not been written yet, so its code wins.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
