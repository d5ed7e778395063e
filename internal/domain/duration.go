package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// isoDurationRegex matches the ISO 8601 durations the provider emits (e.g. "PT6H10M", "P1DT2H").
var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// DurationInfo contains flight duration information.
type DurationInfo struct {
	// ISO is the duration exactly as the provider sent it (e.g. "PT6H10M")
	ISO string `json:"iso,omitempty"`

	// TotalMinutes is the total flight duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "2h 30m")
	Formatted string `json:"formatted"`
}

// ParseISODuration converts an ISO 8601 duration into whole minutes.
// Seconds are truncated.
func ParseISODuration(s string) (int, error) {
	t := strings.TrimSpace(s)
	m := isoDurationRegex.FindStringSubmatch(t)
	if m == nil || t == "P" || strings.HasSuffix(t, "T") {
		return 0, fmt.Errorf("invalid ISO 8601 duration %q", s)
	}

	part := func(i int) int {
		if m[i] == "" {
			return 0
		}
		n, _ := strconv.Atoi(m[i])
		return n
	}
	return part(1)*24*60 + part(2)*60 + part(3), nil
}

// NewDurationInfoFromISO parses an ISO duration. Unparseable input keeps
// the raw text and reports zero minutes.
func NewDurationInfoFromISO(iso string) DurationInfo {
	minutes, err := ParseISODuration(iso)
	if err != nil {
		return DurationInfo{ISO: iso, Formatted: iso}
	}
	info := NewDurationInfo(minutes)
	info.ISO = iso
	return info
}

// NewDurationInfo creates a DurationInfo from total minutes and formats it.
func NewDurationInfo(totalMinutes int) DurationInfo {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	switch {
	case hours > 0 && mins > 0:
		formatted = fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		formatted = fmt.Sprintf("%dh", hours)
	default:
		formatted = fmt.Sprintf("%dm", mins)
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}
