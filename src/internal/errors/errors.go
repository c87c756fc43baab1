// Package errors provides domain-specific error types for wgconf.
//
// Every failure surfaced by the codec carries an error code, so callers can
// tell a rejected field value apart from a malformed key or an unreadable file
// without matching on message text. The message itself is the user-facing
// reason and is kept verbatim.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeValidation indicates a field value failed validation.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeKeyLength indicates a key decoded to the wrong number of bytes.
	ErrCodeKeyLength ErrorCode = "KEY_LENGTH_ERROR"

	// ErrCodeKeyEncoding indicates a key is not valid base64.
	ErrCodeKeyEncoding ErrorCode = "KEY_ENCODING_ERROR"

	// ErrCodeConfig indicates a problem with the tool settings file.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeParse indicates the configuration text could not be split into sections.
	ErrCodeParse ErrorCode = "PARSE_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Sentinels for errors.Is matching by code.
var (
	ErrValidationFailed = &Error{Code: ErrCodeValidation}
	ErrKeyLength        = &Error{Code: ErrCodeKeyLength}
	ErrKeyEncoding      = &Error{Code: ErrCodeKeyEncoding}
	ErrParse            = &Error{Code: ErrCodeParse}
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationFailed creates a validation error whose message is exactly reason.
func NewValidationFailed(reason string) *Error {
	return New(ErrCodeValidation, reason)
}

// NewKeyLengthError reports a key of n bytes where 32 were expected.
func NewKeyLengthError(n int) *Error {
	return New(ErrCodeKeyLength, fmt.Sprintf("wrong key length: got %d bytes, want 32", n))
}

// NewKeyEncodingError reports a key that is not valid standard base64.
func NewKeyEncodingError(cause error) *Error {
	return Wrap(ErrCodeKeyEncoding, "invalid key encoding", cause)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewParseError reports malformed configuration text at the given 1-based line.
func NewParseError(line int, message string) *Error {
	return New(ErrCodeParse, fmt.Sprintf("line %d: %s", line, message))
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}

// IsCode reports whether any error in err's chain is a domain error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// Reason returns the message of the first domain error in err's chain, or
// err.Error() when there is none.
func Reason(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
