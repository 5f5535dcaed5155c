package teable

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrAPIURLRequired   = errors.New("API URL is required")
	ErrAPIKeyRequired   = errors.New("API key is required")
	ErrInvalidAPIKey    = errors.New("API key must start with 'teable_'")
	ErrInvalidAPIURL    = errors.New("invalid API URL")
	ErrInvalidTimeout   = errors.New("timeout must be positive")
	ErrInvalidRetries   = errors.New("max retries cannot be negative")
	ErrInvalidDelay     = errors.New("retry delay cannot be negative")
	ErrTableIDRequired  = errors.New("table ID is required")
	ErrRecordIDRequired = errors.New("record ID is required")
	ErrFieldIDRequired  = errors.New("field ID is required")
	ErrViewIDRequired   = errors.New("view ID is required")
	ErrSpaceIDRequired  = errors.New("space ID is required")
	ErrBaseIDRequired   = errors.New("base ID is required")
)

// APIError represents a non-2xx response from the Teable API that does not
// map to a more specific error kind.
type APIError struct {
	Message    string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
	}

	return e.Message
}

// AuthenticationError is returned when the API rejects the credential (401).
type AuthenticationError struct {
	APIError
}

// ResourceNotFoundError is returned when the requested resource does not
// exist (404). ResourceType carries the endpoint path and ResourceID the
// query parameters of the failed request.
type ResourceNotFoundError struct {
	APIError

	ResourceType string
	ResourceID   string
}

// Error implements the error interface.
func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s (%s: %s)", e.Message, e.ResourceType, e.ResourceID)
}

// RateLimitError is returned when the API rate limit budget is exhausted and
// no further retries are possible. ResetTime is the server-declared epoch
// second at which the budget replenishes.
type RateLimitError struct {
	APIError

	ResetTime int64
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.ResetTime > 0 {
		return fmt.Sprintf("%s (resets at %d)", e.Message, e.ResetTime)
	}

	return e.APIError.Error()
}

// NetworkError is returned when a transport-level failure (DNS, TLS,
// connection refused, timeout) prevents a response from being received.
type NetworkError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ValidationError is raised by resource clients before any network call is
// attempted, when caller-supplied input fails local validation.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsNotFound checks if the error is a resource not found error.
func IsNotFound(err error) bool {
	notFound := &ResourceNotFoundError{}

	return errors.As(err, &notFound)
}

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	authErr := &AuthenticationError{}

	return errors.As(err, &authErr)
}

// IsRateLimit checks if the error is a rate limit error.
func IsRateLimit(err error) bool {
	rateErr := &RateLimitError{}

	return errors.As(err, &rateErr)
}

// IsNetwork checks if the error is a transport-level network error.
func IsNetwork(err error) bool {
	netErr := &NetworkError{}

	return errors.As(err, &netErr)
}

// IsValidation checks if the error is a caller-side validation error.
func IsValidation(err error) bool {
	valErr := &ValidationError{}

	return errors.As(err, &valErr)
}

// RateLimitReset extracts the reset time from a rate limit error, if any.
func RateLimitReset(err error) (int64, bool) {
	rateErr := &RateLimitError{}
	if errors.As(err, &rateErr) {
		return rateErr.ResetTime, true
	}

	return 0, false
}
