package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the domain layer.
var (
	// ErrInvalidRequest is the root of every user-correctable parameter error.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates the offer provider did not answer in time.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderUnavailable indicates the offer provider could not be reached.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrMalformedOffer is the root of every structurally broken provider offer.
	ErrMalformedOffer = errors.New("malformed offer")

	// ErrSessionNotFound is returned when no search is stored for a session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrOfferNotFound is returned when a session does not contain the requested offer.
	ErrOfferNotFound = errors.New("offer not found")
)

// MissingFieldError reports a required search parameter that was not supplied.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrInvalidRequest
}

// InvalidValueError reports a parameter that was supplied but cannot be used.
type InvalidValueError struct {
	Field   string
	Message string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidRequest
}

// ConflictError reports parameters that are individually valid but mutually exclusive.
type ConflictError struct {
	Fields  []string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", strings.Join(e.Fields, ", "), e.Message)
}

func (e *ConflictError) Unwrap() error {
	return ErrInvalidRequest
}

// ProviderError wraps a failure returned by an offer provider.
type ProviderError struct {
	// Provider is the provider name (e.g. "amadeus").
	Provider string

	// StatusCode is the HTTP status the provider answered with, 0 when unknown.
	StatusCode int

	// Err is the underlying error.
	Err error

	// Retryable reports whether the call may succeed if repeated.
	Retryable bool
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %s (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable ProviderError.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a ProviderError that may be retried.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// NewProviderStatusError creates a ProviderError carrying the provider's HTTP status.
// 429 and 5xx answers are retryable.
func NewProviderStatusError(provider string, statusCode int, err error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		StatusCode: statusCode,
		Err:        err,
		Retryable:  statusCode == 429 || statusCode >= 500,
	}
}

// NewProviderTimeoutError creates a retryable ProviderError wrapping ErrProviderTimeout.
func NewProviderTimeoutError(provider string) *ProviderError {
	return NewRetryableProviderError(provider, ErrProviderTimeout)
}

// NewProviderUnavailableError creates a retryable ProviderError wrapping ErrProviderUnavailable.
func NewProviderUnavailableError(provider string) *ProviderError {
	return NewRetryableProviderError(provider, ErrProviderUnavailable)
}

// MalformedOfferError reports a provider offer missing a structurally required part.
type MalformedOfferError struct {
	OfferID string
	Field   string
}

func (e *MalformedOfferError) Error() string {
	if e.OfferID == "" {
		return fmt.Sprintf("malformed offer: missing %s", e.Field)
	}
	return fmt.Sprintf("malformed offer %s: missing %s", e.OfferID, e.Field)
}

func (e *MalformedOfferError) Unwrap() error {
	return ErrMalformedOffer
}

// IsInvalidRequest reports whether err is a user-correctable request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsProviderTimeout reports whether err is a provider timeout.
func IsProviderTimeout(err error) bool {
	return errors.Is(err, ErrProviderTimeout)
}

// IsMalformedOffer reports whether err describes a broken provider offer.
func IsMalformedOffer(err error) bool {
	return errors.Is(err, ErrMalformedOffer)
}

// IsNotFound reports whether err is a missing session or offer.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrOfferNotFound)
}
