package configuration

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration parsing.
// Every failure returned by Parse matches ErrInvalidConfiguration via errors.Is().
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrEmptyConfiguration   = errors.New("configuration cannot be empty")
	ErrNotObject            = errors.New("configuration must be a JSON object")
	ErrMissingField         = errors.New("missing mandatory field")
	ErrFieldType            = errors.New("mandatory field has wrong type")
)

// ParseError is the single fatal error class of the parser.
// Field is set when a mandatory key caused the failure.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("parse configuration: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("parse configuration: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidConfiguration, so callers can
// test for any parse failure without knowing its cause.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
