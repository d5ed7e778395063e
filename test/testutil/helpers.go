// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/provider/amadeus"
	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/timeutil"
)

// Fixture file names under docs/response-mock.
const (
	OffersFixture   = "flight_offers.json"
	AirportsFixture = "airports.json"
)

// MockPath returns the absolute path of a file in the docs/response-mock directory.
func MockPath(t *testing.T, filename string) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "docs", "response-mock", filename)
}

// LoadMockJSON loads a JSON file from the docs/response-mock directory.
func LoadMockJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(MockPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load mock file %s: %v", filename, err)
	}
	return data
}

// LoadMockOffers decodes the fixture search response into raw offers.
func LoadMockOffers(t *testing.T) []domain.RawOffer {
	t.Helper()

	offers, err := amadeus.DecodeOffers(LoadMockJSON(t, OffersFixture))
	if err != nil {
		t.Fatalf("Failed to decode mock offers: %v", err)
	}
	return offers
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// ClockAt returns a mock clock fixed at noon UTC on dateStr.
func ClockAt(t *testing.T, dateStr string) *timeutil.MockClock {
	t.Helper()
	return timeutil.NewMockClock(MustParseDate(t, dateStr).Add(12 * time.Hour))
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
