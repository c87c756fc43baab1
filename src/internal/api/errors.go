package api

import (
	"encoding/json"
	"net/http"

	wgerrors "github.com/maksimkurb/wgconf/src/internal/errors"
	"github.com/maksimkurb/wgconf/src/internal/log"
)

// ErrorCode represents standard API error codes.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates malformed or invalid request data.
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeForbidden indicates the client is not allowed to use the API.
	ErrCodeForbidden ErrorCode = "forbidden"

	// ErrCodeRequestTooLarge indicates the request body exceeded the configured limit.
	ErrCodeRequestTooLarge ErrorCode = "request_too_large"

	// ErrCodeInternalError indicates an internal server error.
	ErrCodeInternalError ErrorCode = "internal_error"

	// ErrCodeValidationFailed indicates a field value was rejected.
	ErrCodeValidationFailed ErrorCode = "validation_failed"

	// ErrCodeKeyInvalid indicates a key with bad encoding or length.
	ErrCodeKeyInvalid ErrorCode = "key_invalid"

	// ErrCodeParseError indicates configuration text that could not be split into sections.
	ErrCodeParseError ErrorCode = "parse_error"
)

// APIError represents a structured API error response.
type APIError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps an APIError for JSON responses.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// NewAPIError creates a new APIError with the given code and message.
func NewAPIError(code ErrorCode, message string) APIError {
	return APIError{
		Code:    code,
		Message: message,
	}
}

// WithDetails adds details to an APIError.
func (e APIError) WithDetails(details map[string]interface{}) APIError {
	e.Details = details
	return e
}

// WriteError writes an error response to the HTTP response writer.
func WriteError(w http.ResponseWriter, statusCode int, err APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encErr := json.NewEncoder(w).Encode(ErrorResponse{Error: err}); encErr != nil {
		log.Warnf("Failed to write error response: %v", encErr)
	}
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, NewAPIError(ErrCodeInvalidRequest, message))
}

// WriteForbidden writes a 403 Forbidden error.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, NewAPIError(ErrCodeForbidden, message))
}

// WriteRequestTooLarge writes a 413 Request Entity Too Large error.
func WriteRequestTooLarge(w http.ResponseWriter, limit int64) {
	err := NewAPIError(ErrCodeRequestTooLarge, "request body too large").
		WithDetails(map[string]interface{}{"limit": limit})
	WriteError(w, http.StatusRequestEntityTooLarge, err)
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}

// WriteValidationError writes a 400 Bad Request with validation details.
func WriteValidationError(w http.ResponseWriter, message string, details map[string]interface{}) {
	err := NewAPIError(ErrCodeValidationFailed, message).WithDetails(details)
	WriteError(w, http.StatusBadRequest, err)
}

// WriteDomainError maps a codec error to an API error. The message is the
// codec's reason, unchanged.
func WriteDomainError(w http.ResponseWriter, err error) {
	reason := wgerrors.Reason(err)

	switch {
	case wgerrors.IsCode(err, wgerrors.ErrCodeValidation):
		WriteValidationError(w, reason, nil)
	case wgerrors.IsCode(err, wgerrors.ErrCodeKeyLength), wgerrors.IsCode(err, wgerrors.ErrCodeKeyEncoding):
		WriteError(w, http.StatusBadRequest, NewAPIError(ErrCodeKeyInvalid, reason))
	case wgerrors.IsCode(err, wgerrors.ErrCodeParse):
		WriteError(w, http.StatusBadRequest, NewAPIError(ErrCodeParseError, reason))
	default:
		log.Errorf("Unexpected error: %v", err)
		WriteInternalError(w, "Internal server error")
	}
}
