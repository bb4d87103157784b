package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentaldesk-backend/internal/logger"
	"rentaldesk-backend/internal/navotar"
	"rentaldesk-backend/internal/schema"
	"rentaldesk-backend/internal/service"
	"rentaldesk-backend/internal/wizard"
)

// errorBody is the inline error payload pages render as a banner
type errorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps service errors onto HTTP statuses. Validation failures
// carry their field messages; upstream errors pass their status through.
func writeError(w http.ResponseWriter, err error) {
	var fieldErrs schema.FieldErrors
	if errors.As(err, &fieldErrs) {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{
			Message: "validation failed",
			Fields:  fieldErrs,
		})
		return
	}

	if errors.Is(err, navotar.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "record not found"})
		return
	}
	if errors.Is(err, service.ErrSessionNotFound) {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "wizard session not found"})
		return
	}
	if errors.Is(err, wizard.ErrIncomplete) {
		writeJSON(w, http.StatusConflict, errorBody{Message: err.Error()})
		return
	}
	if errors.Is(err, wizard.ErrMandatory) || errors.Is(err, wizard.ErrNoSuchCharge) {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: err.Error()})
		return
	}

	var apiErr *navotar.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, errorBody{Message: apiErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorBody{Message: err.Error()})
}

// listEnvelope standardizes list responses: data plus pagination metadata
type listEnvelope struct {
	Data       any                `json:"data"`
	Pagination navotar.Pagination `json:"pagination"`
}
