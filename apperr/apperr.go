// Package apperr defines the error taxonomy shared by services and handlers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Type identifies the category of error
type Type string

const (
	// TypeNotFound indicates the referenced entity does not exist
	TypeNotFound Type = "NOT_FOUND"

	// TypeInvalidReference indicates a proposal line item points at an unknown catalog entry
	TypeInvalidReference Type = "INVALID_REFERENCE"

	// TypeInput indicates malformed or invalid request input
	TypeInput Type = "INPUT_ERROR"

	// TypeInternal indicates a storage or rendering failure
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error is a categorized application error.
type Error struct {
	Type    Type
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(errType Type, message string) *Error {
	return &Error{Type: errType, Message: message}
}

func Newf(errType Type, format string, args ...any) *Error {
	return &Error{Type: errType, Message: fmt.Sprintf(format, args...)}
}

func Wrap(errType Type, message string, cause error) *Error {
	return &Error{Type: errType, Message: message, Cause: cause}
}

// IsType reports whether err (or anything it wraps) is an *Error of type t.
func IsType(err error, t Type) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// NotFound creates a not found error
func NotFound(kind, id string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", kind, id)
}

// InvalidReference creates an error for a reference to a missing entity.
func InvalidReference(kind, id string) *Error {
	return Newf(TypeInvalidReference, "%s %s not found", kind, id)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}

// HTTPStatus maps err to the status code the API answers with.
// Errors outside the taxonomy are treated as internal.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Type {
	case TypeNotFound:
		return http.StatusNotFound
	case TypeInvalidReference, TypeInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the machine-readable code for err.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return string(e.Type)
	}
	return string(TypeInternal)
}

// Message returns the client-facing message for err. Internal causes are not exposed.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Something went wrong. Please try again."
}
