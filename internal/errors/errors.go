// Package errors is the coded error type shared by the catalog, the rules
// engine and the roster. Callers branch on the code, never on the message.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Code categorizes an error
type Code string

const (
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument is input the caller should not have passed:
	// an empty area, an unknown skill, a malformed dice string
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound is a species, move, ability, area or record that did
	// not resolve
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists is a roster record ID that is already taken
	CodeAlreadyExists Code = "already_exists"

	// CodeInvalidType is a type label missing from the type chart
	CodeInvalidType Code = "invalid_type"

	// CodeValidation is a game rule refusing the action: no PP left, HP
	// input that cannot be read
	CodeValidation Code = "validation"
)

// Sentinels for errors.Is. Any *Error with the same code matches.
var (
	ErrNotFound        = New(CodeNotFound, "not found")
	ErrAlreadyExists   = New(CodeAlreadyExists, "already exists")
	ErrInvalidArgument = New(CodeInvalidArgument, "invalid argument")
	ErrInvalidType     = New(CodeInvalidType, "invalid type")
	ErrValidation      = New(CodeValidation, "validation failed")
)

// Error carries a code, a message, an optional cause and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code, so the sentinels work with
// errors.Is through any depth of wrapping
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e == t || (t.Code != CodeUnknown && e.Code == t.Code)
}

// WithMeta attaches a key/value pair and returns e
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. The code and metadata of a wrapped *Error are
// carried over; anything else becomes CodeUnknown. Wrap(nil) is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}

	var appErr *Error
	if errors.As(err, &appErr) {
		wrapped.Code = appErr.Code
		wrapped.Meta = maps.Clone(appErr.Meta)
	}
	return wrapped
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode is Wrap with the code replaced
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func InvalidTypef(format string, args ...any) *Error { return Newf(CodeInvalidType, format, args...) }

func Validation(message string) *Error { return New(CodeValidation, message) }

func Validationf(format string, args ...any) *Error { return Newf(CodeValidation, format, args...) }

// GetCode returns the code of the outermost *Error in err's chain
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of the outermost *Error in err's chain
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

// Is reports whether err carries code
func Is(err error, code Code) bool { return GetCode(err) == code }

func IsNotFound(err error) bool { return Is(err, CodeNotFound) }

func IsAlreadyExists(err error) bool { return Is(err, CodeAlreadyExists) }

func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }

func IsInvalidType(err error) bool { return Is(err, CodeInvalidType) }

func IsValidation(err error) bool { return Is(err, CodeValidation) }
