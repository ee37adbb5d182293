package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases.
// Use errors.Is() to check against these.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrUnparseable       = errors.New("unparseable configuration")
	ErrUnsupportedClient = errors.New("unsupported client")
	ErrUpstreamError     = errors.New("upstream error")
)

// APIError represents a structured error for API responses.
// Implements error interface and supports unwrapping.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"` // HTTP status, not serialized
	Err        error  `json:"-"` // Wrapped error, not serialized
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a 404 error for missing resources.
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: 404,
		Err:        ErrNotFound,
	}
}

// NewValidationError creates a 400 error for invalid input.
func NewValidationError(field, reason string) *APIError {
	return &APIError{
		Code:       "VALIDATION_ERROR",
		Message:    fmt.Sprintf("invalid %s: %s", field, reason),
		StatusCode: 400,
		Err:        ErrInvalidRequest,
	}
}

// NewParseError creates a 422 error for a configuration document that
// failed to parse. The parser's message is safe to expose: it names the
// offending key, never its value.
func NewParseError(err error) *APIError {
	return &APIError{
		Code:       "PARSE_ERROR",
		Message:    err.Error(),
		StatusCode: 422,
		Err:        fmt.Errorf("%w: %w", ErrUnparseable, err),
	}
}

// NewTooLargeError creates a 413 error for request bodies over limit bytes.
func NewTooLargeError(limit int64) *APIError {
	return &APIError{
		Code:       "PAYLOAD_TOO_LARGE",
		Message:    fmt.Sprintf("request body exceeds %d bytes", limit),
		StatusCode: 413,
		Err:        ErrInvalidRequest,
	}
}

// NewClientError creates an error for a request whose SDK-Client header is
// missing, malformed, or below the minimum supported version.
func NewClientError(code, reason string, status int) *APIError {
	return &APIError{
		Code:       code,
		Message:    reason,
		StatusCode: status,
		Err:        ErrUnsupportedClient,
	}
}

// NewUpstreamError creates a 502 error for a failed call to a remote inspector.
func NewUpstreamError(service string, err error) *APIError {
	return &APIError{
		Code:       "UPSTREAM_ERROR",
		Message:    fmt.Sprintf("%s request failed", service),
		StatusCode: 502,
		Err:        fmt.Errorf("%w: %v", ErrUpstreamError, err),
	}
}

// NewInternalError creates a 500 error for unexpected failures.
func NewInternalError(err error) *APIError {
	return &APIError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: 500,
		Err:        err,
	}
}
