// Package errors provides typed domain errors for the quoting tools.
//
// The premium calculator never returns an error; these types cover the
// surrounding plumbing: tariff files, request decoding, lead validation
// and webhook delivery.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates malformed user input (flags, request files)
	TypeInput Type = "INPUT_ERROR"

	// TypeParsing indicates a decoding error (JSON, HCL)
	TypeParsing Type = "PARSING_ERROR"

	// TypeTariff indicates an inconsistent tariff rule set
	TypeTariff Type = "TARIFF_ERROR"

	// TypeValidation indicates a lead that cannot be submitted yet
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNetwork indicates a failed webhook delivery
	TypeNetwork Type = "NETWORK_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether e is of type t
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return New(errType, fmt.Sprintf(format, args...))
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return Wrap(errType, fmt.Sprintf(format, args...), cause)
}

// IsType checks whether err, or any error it wraps, is a domain error of type t
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// Input wraps a bad flag value or an unreadable input file
func Input(message string, cause error) *Error {
	return Wrap(TypeInput, message, cause)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Tariff creates a tariff rule-set error
func Tariff(format string, args ...interface{}) *Error {
	return Newf(TypeTariff, format, args...)
}

// Validation creates a lead validation error
func Validation(format string, args ...interface{}) *Error {
	return Newf(TypeValidation, format, args...)
}

// Network wraps a delivery failure
func Network(message string, cause error) *Error {
	return Wrap(TypeNetwork, message, cause)
}

// Config wraps a configuration failure
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal wraps an unexpected failure
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
