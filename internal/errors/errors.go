// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeUnknownSiteType indicates a site type with no catalog
	TypeUnknownSiteType Type = "UNKNOWN_SITE_TYPE"

	// TypeInvalidInput indicates estimate inputs that cannot be priced
	TypeInvalidInput Type = "INVALID_INPUT"

	// TypeInvalidPrice indicates a non-positive base price for discounting
	TypeInvalidPrice Type = "INVALID_PRICE"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeParsing indicates a project file that could not be decoded
	TypeParsing Type = "PARSING_ERROR"

	// TypeExportBusy indicates a report export already in flight
	TypeExportBusy Type = "EXPORT_BUSY"

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
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether any error in err's chain is a domain error of type t
func IsType(err error, t Type) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Type == t {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// TypeOf returns the type of the outermost domain error in err's chain, or
// TypeInternal when there is none
func TypeOf(err error) Type {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// UnknownSiteType creates an unknown site type error
func UnknownSiteType(siteType string) *Error {
	return Newf(TypeUnknownSiteType, "unknown site type %q", siteType).WithContext("site_type", siteType)
}

// InvalidInput creates an input validation error
func InvalidInput(message string) *Error {
	return New(TypeInvalidInput, message)
}

// InvalidPrice creates an invalid base price error
func InvalidPrice(message string) *Error {
	return New(TypeInvalidPrice, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
