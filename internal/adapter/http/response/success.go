package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// SearchResults writes a 200 OK response with search results.
func SearchResults(c echo.Context, results interface{}) error {
	return c.JSON(http.StatusOK, results)
}

// AirportsResponse wraps an airport lookup.
type AirportsResponse struct {
	Keyword  string      `json:"keyword"`
	Airports interface{} `json:"airports"`
}

// Airports writes a 200 OK response with airport candidates.
func Airports(c echo.Context, keyword string, airports interface{}) error {
	return c.JSON(http.StatusOK, &AirportsResponse{
		Keyword:  keyword,
		Airports: airports,
	})
}
