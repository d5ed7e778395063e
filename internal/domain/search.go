package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultMaxResults is the result cap applied when a caller asks for the default.
const DefaultMaxResults = 10

// MaxSeatedPassengers is the provider limit for adults plus children on one search.
const MaxSeatedPassengers = 9

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// maxResultsDefaultToken is the value a caller passes to request DefaultMaxResults.
const maxResultsDefaultToken = "default"

// Search parameter names as accepted from callers.
const (
	FieldOrigin           = "origin"
	FieldDestination      = "destination"
	FieldDepartureDate    = "departureDate"
	FieldAdults           = "adults"
	FieldReturnDate       = "returnDate"
	FieldChildren         = "children"
	FieldInfants          = "infants"
	FieldCabinClass       = "cabinClass"
	FieldDirectOnly       = "directOnly"
	FieldIncludedAirlines = "includedAirlines"
	FieldExcludedAirlines = "excludedAirlines"
	FieldMaxPrice         = "maxPrice"
	FieldMaxResults       = "maxResults"
	FieldCurrency         = "currency"
)

// Provider query parameter names.
const (
	QueryOrigin           = "originLocationCode"
	QueryDestination      = "destinationLocationCode"
	QueryDepartureDate    = "departureDate"
	QueryAdults           = "adults"
	QueryReturnDate       = "returnDate"
	QueryChildren         = "children"
	QueryInfants          = "infants"
	QueryTravelClass      = "travelClass"
	QueryNonStop          = "nonStop"
	QueryIncludedAirlines = "includedAirlineCodes"
	QueryExcludedAirlines = "excludedAirlineCodes"
	QueryMaxPrice         = "maxPrice"
	QueryMax              = "max"
	QueryCurrencyCode     = "currencyCode"
)

// paramAliases lists the keys accepted for each parameter, domain name first.
var paramAliases = map[string][]string{
	FieldOrigin:           {FieldOrigin, QueryOrigin},
	FieldDestination:      {FieldDestination, QueryDestination},
	FieldDepartureDate:    {FieldDepartureDate},
	FieldAdults:           {FieldAdults},
	FieldReturnDate:       {FieldReturnDate},
	FieldChildren:         {FieldChildren},
	FieldInfants:          {FieldInfants},
	FieldCabinClass:       {FieldCabinClass, QueryTravelClass},
	FieldDirectOnly:       {FieldDirectOnly, QueryNonStop},
	FieldIncludedAirlines: {FieldIncludedAirlines, QueryIncludedAirlines},
	FieldExcludedAirlines: {FieldExcludedAirlines, QueryExcludedAirlines},
	FieldMaxPrice:         {FieldMaxPrice},
	FieldMaxResults:       {FieldMaxResults, QueryMax},
	FieldCurrency:         {FieldCurrency, QueryCurrencyCode},
}

// requiredFields are checked for presence in this order.
var requiredFields = []string{FieldOrigin, FieldDestination, FieldDepartureDate, FieldAdults}

var (
	// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
	airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

	// airlineCodeRegex matches 2-character IATA carrier codes.
	airlineCodeRegex = regexp.MustCompile(`^[A-Z0-9]{2}$`)

	// currencyCodeRegex matches ISO 4217 currency codes.
	currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

// CabinClass is the fare tier requested for a search.
type CabinClass string

// Supported cabin classes.
const (
	CabinEconomy        CabinClass = "ECONOMY"
	CabinPremiumEconomy CabinClass = "PREMIUM_ECONOMY"
	CabinBusiness       CabinClass = "BUSINESS"
	CabinFirst          CabinClass = "FIRST"
)

// IsValid reports whether c is a supported cabin class.
func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// SearchParams is a loosely typed set of search parameters as supplied by a
// conversational front-end or a JSON body.
type SearchParams map[string]any

// SearchRequest is a validated flight search. Optional fields are nil when absent.
type SearchRequest struct {
	OriginCode       string      `json:"originCode"`
	DestinationCode  string      `json:"destinationCode"`
	DepartureDate    string      `json:"departureDate"`
	AdultCount       int         `json:"adultCount"`
	ReturnDate       *string     `json:"returnDate,omitempty"`
	ChildCount       *int        `json:"childCount,omitempty"`
	InfantCount      *int        `json:"infantCount,omitempty"`
	CabinClass       *CabinClass `json:"cabinClass,omitempty"`
	DirectOnly       bool        `json:"directOnly"`
	IncludedAirlines []string    `json:"includedAirlines,omitempty"`
	ExcludedAirlines []string    `json:"excludedAirlines,omitempty"`
	MaxPrice         *int        `json:"maxPrice,omitempty"`
	MaxResults       *int        `json:"maxResults,omitempty"`
	CurrencyCode     *string     `json:"currencyCode,omitempty"`
}

// IsRoundTrip reports whether the request has a return leg.
func (r SearchRequest) IsRoundTrip() bool {
	return r.ReturnDate != nil
}

// QueryParams renders the request using the provider's parameter names.
// Absent optional fields produce no key at all.
func (r SearchRequest) QueryParams() url.Values {
	q := url.Values{}
	q.Set(QueryOrigin, r.OriginCode)
	q.Set(QueryDestination, r.DestinationCode)
	q.Set(QueryDepartureDate, r.DepartureDate)
	q.Set(QueryAdults, strconv.Itoa(r.AdultCount))
	q.Set(QueryNonStop, TextBool(r.DirectOnly))

	if r.ReturnDate != nil {
		q.Set(QueryReturnDate, *r.ReturnDate)
	}
	if r.ChildCount != nil {
		q.Set(QueryChildren, strconv.Itoa(*r.ChildCount))
	}
	if r.InfantCount != nil {
		q.Set(QueryInfants, strconv.Itoa(*r.InfantCount))
	}
	if r.CabinClass != nil {
		q.Set(QueryTravelClass, string(*r.CabinClass))
	}
	if len(r.IncludedAirlines) > 0 {
		q.Set(QueryIncludedAirlines, strings.Join(r.IncludedAirlines, ","))
	}
	if len(r.ExcludedAirlines) > 0 {
		q.Set(QueryExcludedAirlines, strings.Join(r.ExcludedAirlines, ","))
	}
	if r.MaxPrice != nil {
		q.Set(QueryMaxPrice, strconv.Itoa(*r.MaxPrice))
	}
	if r.MaxResults != nil {
		q.Set(QueryMax, strconv.Itoa(*r.MaxResults))
	}
	if r.CurrencyCode != nil {
		q.Set(QueryCurrencyCode, *r.CurrencyCode)
	}
	return q
}

// BuildSearchRequest validates and coerces params into a SearchRequest.
//
// Validation is fail-fast and reports the first violation in this order:
// missing required fields, adult count, conflicting airline filters,
// required field formats and the return date, then remaining optional fields.
func BuildSearchRequest(params SearchParams) (SearchRequest, error) {
	var req SearchRequest

	for _, field := range requiredFields {
		if _, ok := params.lookup(field); !ok {
			return SearchRequest{}, &MissingFieldError{Field: field}
		}
	}

	adultsRaw, _ := params.lookup(FieldAdults)
	adults, err := coerceInt(adultsRaw)
	if err != nil {
		return SearchRequest{}, &InvalidValueError{Field: FieldAdults, Message: err.Error()}
	}
	if adults < 1 {
		return SearchRequest{}, &InvalidValueError{Field: FieldAdults, Message: "must be at least 1"}
	}
	req.AdultCount = adults

	_, hasIncluded := params.lookup(FieldIncludedAirlines)
	_, hasExcluded := params.lookup(FieldExcludedAirlines)
	if hasIncluded && hasExcluded {
		return SearchRequest{}, &ConflictError{
			Fields:  []string{FieldIncludedAirlines, FieldExcludedAirlines},
			Message: "cannot filter by included and excluded airlines at the same time",
		}
	}

	if err := params.applyRoute(&req); err != nil {
		return SearchRequest{}, err
	}
	if err := params.applyOptionals(&req); err != nil {
		return SearchRequest{}, err
	}

	return req, nil
}

// applyRoute validates airport codes and travel dates.
func (p SearchParams) applyRoute(req *SearchRequest) error {
	var err error
	if req.OriginCode, err = p.airportCode(FieldOrigin); err != nil {
		return err
	}
	if req.DestinationCode, err = p.airportCode(FieldDestination); err != nil {
		return err
	}
	if req.OriginCode == req.DestinationCode {
		return &InvalidValueError{Field: FieldDestination, Message: "must differ from origin"}
	}

	departure, err := p.date(FieldDepartureDate)
	if err != nil {
		return err
	}
	req.DepartureDate = departure.Format(DateLayout)

	if _, ok := p.lookup(FieldReturnDate); ok {
		ret, err := p.date(FieldReturnDate)
		if err != nil {
			return err
		}
		if ret.Before(departure) {
			return &InvalidValueError{Field: FieldReturnDate, Message: "must not be before departureDate"}
		}
		s := ret.Format(DateLayout)
		req.ReturnDate = &s
	}
	return nil
}

// applyOptionals coerces the remaining optional fields.
func (p SearchParams) applyOptionals(req *SearchRequest) error {
	var err error
	if req.ChildCount, err = p.optionalInt(FieldChildren, 0); err != nil {
		return err
	}
	if req.InfantCount, err = p.optionalInt(FieldInfants, 0); err != nil {
		return err
	}
	seated := req.AdultCount
	if req.ChildCount != nil {
		seated += *req.ChildCount
	}
	if seated > MaxSeatedPassengers {
		return &InvalidValueError{
			Field:   FieldAdults,
			Message: fmt.Sprintf("adults and children together cannot exceed %d", MaxSeatedPassengers),
		}
	}
	if req.InfantCount != nil && *req.InfantCount > req.AdultCount {
		return &InvalidValueError{Field: FieldInfants, Message: "cannot exceed the number of adults"}
	}

	if raw, ok := p.lookup(FieldCabinClass); ok {
		s, err := coerceString(raw)
		if err != nil {
			return &InvalidValueError{Field: FieldCabinClass, Message: err.Error()}
		}
		cabin := CabinClass(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_")))
		if !cabin.IsValid() {
			return &InvalidValueError{
				Field:   FieldCabinClass,
				Message: "must be one of ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST",
			}
		}
		req.CabinClass = &cabin
	}

	if raw, ok := p.lookup(FieldDirectOnly); ok {
		b, err := coerceBool(raw)
		if err != nil {
			return &InvalidValueError{Field: FieldDirectOnly, Message: err.Error()}
		}
		req.DirectOnly = b
	}

	if req.IncludedAirlines, err = p.airlineCodes(FieldIncludedAirlines); err != nil {
		return err
	}
	if req.ExcludedAirlines, err = p.airlineCodes(FieldExcludedAirlines); err != nil {
		return err
	}

	if req.MaxPrice, err = p.optionalInt(FieldMaxPrice, 1); err != nil {
		return err
	}

	if raw, ok := p.lookup(FieldMaxResults); ok {
		if s, isString := raw.(string); isString && strings.EqualFold(strings.TrimSpace(s), maxResultsDefaultToken) {
			n := DefaultMaxResults
			req.MaxResults = &n
		} else if req.MaxResults, err = p.optionalInt(FieldMaxResults, 1); err != nil {
			return err
		}
	}

	if raw, ok := p.lookup(FieldCurrency); ok {
		s, err := coerceString(raw)
		if err != nil {
			return &InvalidValueError{Field: FieldCurrency, Message: err.Error()}
		}
		code := strings.ToUpper(strings.TrimSpace(s))
		if !currencyCodeRegex.MatchString(code) {
			return &InvalidValueError{Field: FieldCurrency, Message: "must be a 3-letter ISO 4217 code"}
		}
		req.CurrencyCode = &code
	}

	return nil
}

// lookup returns the first non-blank value stored under any alias of field.
func (p SearchParams) lookup(field string) (any, bool) {
	for _, key := range paramAliases[field] {
		v, ok := p[key]
		if ok && !isBlank(v) {
			return v, true
		}
	}
	return nil, false
}

func (p SearchParams) airportCode(field string) (string, error) {
	raw, _ := p.lookup(field)
	s, err := coerceString(raw)
	if err != nil {
		return "", &InvalidValueError{Field: field, Message: err.Error()}
	}
	code := strings.ToUpper(strings.TrimSpace(s))
	if !airportCodeRegex.MatchString(code) {
		return "", &InvalidValueError{Field: field, Message: fmt.Sprintf("must be a 3-letter IATA code, got %q", s)}
	}
	return code, nil
}

func (p SearchParams) date(field string) (time.Time, error) {
	raw, _ := p.lookup(field)
	switch v := raw.(type) {
	case time.Time:
		return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC), nil
	case string:
		d, err := time.Parse(DateLayout, strings.TrimSpace(v))
		if err != nil {
			return time.Time{}, &InvalidValueError{Field: field, Message: fmt.Sprintf("must be a date in YYYY-MM-DD format, got %q", v)}
		}
		return d, nil
	default:
		return time.Time{}, &InvalidValueError{Field: field, Message: "must be a date in YYYY-MM-DD format"}
	}
}

// optionalInt coerces field when present and enforces a lower bound.
func (p SearchParams) optionalInt(field string, min int) (*int, error) {
	raw, ok := p.lookup(field)
	if !ok {
		return nil, nil
	}
	n, err := coerceInt(raw)
	if err != nil {
		return nil, &InvalidValueError{Field: field, Message: err.Error()}
	}
	if n < min {
		return nil, &InvalidValueError{Field: field, Message: fmt.Sprintf("must be at least %d", min)}
	}
	return &n, nil
}

func (p SearchParams) airlineCodes(field string) ([]string, error) {
	raw, ok := p.lookup(field)
	if !ok {
		return nil, nil
	}

	var items []string
	switch v := raw.(type) {
	case string:
		items = strings.Split(v, ",")
	case []string:
		items = v
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &InvalidValueError{Field: field, Message: "must be a list of airline codes"}
			}
			items = append(items, s)
		}
	default:
		return nil, &InvalidValueError{Field: field, Message: "must be a list of airline codes"}
	}

	seen := make(map[string]struct{}, len(items))
	codes := make([]string, 0, len(items))
	for _, item := range items {
		code := strings.ToUpper(strings.TrimSpace(item))
		if code == "" {
			continue
		}
		if !airlineCodeRegex.MatchString(code) {
			return nil, &InvalidValueError{Field: field, Message: fmt.Sprintf("invalid airline code %q", item)}
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil, nil
	}
	return codes, nil
}

// isBlank treats nil, empty strings and empty lists as absent.
func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

// coerceInt converts integer-like values. Fractional numbers are rejected.
func coerceInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int32:
		return int(t), nil
	case int64:
		return int(t), nil
	case float32:
		return wholeNumber(float64(t))
	case float64:
		return wholeNumber(t)
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), nil
		}
		f, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("must be an integer, got %q", t.String())
		}
		return wholeNumber(f)
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("must be an integer, got %q", t)
		}
		return wholeNumber(f)
	default:
		return 0, fmt.Errorf("must be an integer, got %T", v)
	}
}

func wholeNumber(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("must be a whole number, got %v", f)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("out of range: %v", f)
	}
	return int(f), nil
}

func coerceBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, fmt.Errorf("must be true or false, got %q", t)
		}
		return b, nil
	default:
		return false, fmt.Errorf("must be true or false, got %T", v)
	}
}

func coerceString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("must be a string, got %T", v)
	}
	return s, nil
}
