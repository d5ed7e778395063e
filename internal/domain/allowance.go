package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UnknownLabel is how an unknown allowance is presented.
const UnknownLabel = "Unknown"

// AllowanceKind tells which form of baggage allowance the provider gave.
type AllowanceKind int

// Allowance kinds.
const (
	AllowanceUnknown AllowanceKind = iota
	AllowanceQuantity
	AllowanceWeight
)

// Allowance is a baggage allowance: a piece count, a weight, or unknown.
// The zero value is unknown.
type Allowance struct {
	kind     AllowanceKind
	quantity int
	weight   int
	unit     string
}

// KnownQuantity returns an allowance of n pieces.
func KnownQuantity(n int) Allowance {
	return Allowance{kind: AllowanceQuantity, quantity: n}
}

// KnownWeight returns an allowance of weight in unit (e.g. 23 KG).
func KnownWeight(weight int, unit string) Allowance {
	return Allowance{kind: AllowanceWeight, weight: weight, unit: unit}
}

// UnknownAllowance returns an allowance the provider did not describe.
func UnknownAllowance() Allowance {
	return Allowance{}
}

// Kind returns the allowance form.
func (a Allowance) Kind() AllowanceKind { return a.kind }

// IsKnown reports whether the provider described the allowance.
func (a Allowance) IsKnown() bool { return a.kind != AllowanceUnknown }

// Quantity returns the piece count when the allowance is a quantity.
func (a Allowance) Quantity() (int, bool) {
	return a.quantity, a.kind == AllowanceQuantity
}

// Weight returns the weight and unit when the allowance is a weight.
func (a Allowance) Weight() (int, string, bool) {
	return a.weight, a.unit, a.kind == AllowanceWeight
}

// Includes reports whether at least some baggage is included.
// Unknown allowances never count as included.
func (a Allowance) Includes() bool {
	switch a.kind {
	case AllowanceQuantity:
		return a.quantity > 0
	case AllowanceWeight:
		return a.weight > 0
	default:
		return false
	}
}

// String renders the allowance for display: "2", "23 KG" or "Unknown".
func (a Allowance) String() string {
	switch a.kind {
	case AllowanceQuantity:
		return strconv.Itoa(a.quantity)
	case AllowanceWeight:
		return strings.TrimSpace(fmt.Sprintf("%d %s", a.weight, a.unit))
	default:
		return UnknownLabel
	}
}

// MarshalJSON writes a quantity as a number and everything else as a string.
func (a Allowance) MarshalJSON() ([]byte, error) {
	if a.kind == AllowanceQuantity {
		return json.Marshal(a.quantity)
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON reads the forms written by MarshalJSON.
func (a *Allowance) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*a = KnownQuantity(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("allowance must be a number or string: %w", err)
	}
	if s == UnknownLabel || s == "" {
		*a = UnknownAllowance()
		return nil
	}

	value, unit, _ := strings.Cut(s, " ")
	w, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid allowance %q", s)
	}
	*a = KnownWeight(w, unit)
	return nil
}

// allowanceFrom converts a provider allowance. Quantity wins over weight.
func allowanceFrom(b *BaggageAllowance, allowWeight bool) Allowance {
	switch {
	case b == nil:
		return UnknownAllowance()
	case b.Quantity != nil:
		return KnownQuantity(*b.Quantity)
	case allowWeight && b.Weight != nil:
		return KnownWeight(*b.Weight, b.WeightUnit)
	default:
		return UnknownAllowance()
	}
}
