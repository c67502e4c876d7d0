package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeDomainError maps domain failure kinds onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrVehicleUnavailable):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNoRateAvailable):
		status = http.StatusUnprocessableEntity
	default:
		logger.Error("Unhandled service error", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
