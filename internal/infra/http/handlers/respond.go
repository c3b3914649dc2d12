package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rafaelqm2/outreach-hub/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the use-case error taxonomy onto status codes. Messages go
// out verbatim; the frontend shows them inline.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, sql.ErrNoRows):
		status = http.StatusNotFound
	case usecase.IsValidationError(err):
		status = http.StatusBadRequest
	case usecase.IsConfigurationError(err):
		status = http.StatusInternalServerError
	case usecase.IsUpstreamError(err):
		status = http.StatusBadGateway
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
