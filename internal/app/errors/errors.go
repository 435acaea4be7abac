package errors

import (
	"errors"
	"fmt"
)

// Error kinds this tool can produce on its own. Everything else comes from
// the transcription collaborator and is passed through untouched.
var (
	ErrUnknownProvider   = New("unknown transcription provider")
	ErrUnsupportedFormat = New("unsupported audio format")
)

// Error is a message with an optional wrapped cause.
type Error struct {
	message string
	cause   error
}

// New creates a new error.
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context. Returns nil for a nil cause.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{message: message, cause: err}
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{message: fmt.Sprintf(format, args...), cause: err}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches two *Error values by message so sentinels survive wrapping.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.message == other.message
	}
	return false
}
