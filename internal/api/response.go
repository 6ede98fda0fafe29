package api

import (
	"encoding/json"
	"net/http"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/logger"
)

// ErrorResponse is the body of every non-2xx response.
// Kind lets clients branch without parsing Error.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Error kinds.
const (
	KindNotFound       = "not_found"
	KindNotInitialized = "not_initialized"
	KindConflict       = "conflict"
	KindInvalid        = "invalid"
	KindInternal       = "internal"
)

// JSON writes data as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("failed to encode response", "error", err)
	}
}

// Error writes err, with the status and kind derived from its domain type.
func Error(w http.ResponseWriter, err error) {
	status, kind := classify(err)
	message := err.Error()
	if kind == KindNotInitialized {
		message = "swatch is not initialized (run 'swatch init')"
	}
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	}
	JSON(w, status, ErrorResponse{Error: message, Kind: kind})
}

// BadRequest writes a 400 for malformed requests that never reached a service.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, ErrorResponse{Error: message, Kind: KindInvalid})
}

// classify maps domain errors to an HTTP status. A missing data directory
// is a 404: the palettes the client asked for don't exist yet.
func classify(err error) (int, string) {
	switch {
	case swerr.IsNotInitialized(err):
		return http.StatusNotFound, KindNotInitialized
	case swerr.IsNotFound(err):
		return http.StatusNotFound, KindNotFound
	case swerr.IsAlreadyExists(err):
		return http.StatusConflict, KindConflict
	case swerr.IsValidationError(err):
		return http.StatusBadRequest, KindInvalid
	default:
		return http.StatusInternalServerError, KindInternal
	}
}
