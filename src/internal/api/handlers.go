package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/maksimkurb/wgconf/src/internal/config"
	wgerrors "github.com/maksimkurb/wgconf/src/internal/errors"
	"github.com/maksimkurb/wgconf/src/internal/log"
)

// Handler serves the codec endpoints. It holds no mutable state, so one
// Handler is shared by all requests.
type Handler struct {
	cfg     *config.Config
	version VersionInfo
	metrics *Metrics
}

// NewHandler creates a new API handler.
func NewHandler(cfg *config.Config, version VersionInfo, metrics *Metrics) *Handler {
	return &Handler{
		cfg:     cfg,
		version: version,
		metrics: metrics,
	}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(DataResponse{Data: data}); err != nil {
		log.Warnf("Failed to write response: %v", err)
	}
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// writeText writes a plain text response.
func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		log.Warnf("Failed to write response: %v", err)
	}
}

// decodeBody decodes the JSON body into v, rejecting unknown fields.
func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// isDomainError reports whether err comes from the codec rather than from
// the JSON decoder.
func isDomainError(err error) bool {
	var e *wgerrors.Error
	return asDomainError(err, &e)
}

func asDomainError(err error, target **wgerrors.Error) bool {
	return errors.As(err, target)
}

// decodeRequest decodes the JSON body into v and validates it. On failure it
// writes the error response and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := decodeBody(r, v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteRequestTooLarge(w, maxBytesErr.Limit)
			return false
		}
		WriteInvalidRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}

	if err := config.ValidateStruct(v, ""); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			details := make(map[string]interface{}, len(validationErrs))
			for _, e := range validationErrs {
				details[e.FieldPath] = e.Message
			}
			WriteError(w, http.StatusBadRequest, NewAPIError(ErrCodeInvalidRequest, "Invalid request body").WithDetails(details))
			return false
		}
		WriteInvalidRequest(w, err.Error())
		return false
	}

	return true
}
