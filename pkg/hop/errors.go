package hop

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the management API.
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorName  string `json:"error"`
	Reason     string `json:"reason"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.ErrorName, e.Reason, e.StatusCode)
	}

	return fmt.Sprintf("management API returned status %d", e.StatusCode)
}

// DecodeError represents a response body that did not match the expected shape.
type DecodeError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding response: %s: %v", e.Message, e.Err)
	}

	return "decoding response: " + e.Message
}

// Unwrap returns the underlying decoding error, if any.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError builds a DecodeError with an optional cause.
func NewDecodeError(message string, err error) *DecodeError {
	return &DecodeError{Message: message, Err: err}
}

// ValidationError represents a client-side pre-flight check failure. It is
// returned before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Message)
	}

	return "invalid argument: " + e.Message
}

// TimeoutError is returned by Await when the predicate never held within the
// timeout. LastValue carries the most recently observed result.
type TimeoutError struct {
	LastValue interface{}
	Elapsed   string
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return "timed out after " + e.Elapsed + " waiting for condition"
}

// Static errors that can be wrapped with context.
var (
	ErrEndpointRequired = errors.New("management endpoint is required")
	ErrConfigRequired   = errors.New("config is required")
	ErrEmptyResponse    = errors.New("empty response body")
)

// IsNotFound reports whether err is a 404 from the management API. Resource
// lookups convert 404 to an absent result internally, so callers normally
// only see this from mutations on missing parents.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized reports whether err is a 401 from the management API.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsForbidden reports whether err is a 403 from the management API.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}

	return false
}

// IsBadRequest reports whether err is a 400 carrying the server's validation
// message.
func IsBadRequest(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusBadRequest
	}

	return false
}

// IsValidation reports whether err is a client-side ValidationError.
func IsValidation(err error) bool {
	valErr := &ValidationError{}

	return errors.As(err, &valErr)
}

// IsTimeout reports whether err is a polling TimeoutError.
func IsTimeout(err error) bool {
	timeoutErr := &TimeoutError{}

	return errors.As(err, &timeoutErr)
}
