package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/service"
)

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondErrorCode(w http.ResponseWriter, status int, code string) {
	respondJSON(w, status, map[string]string{"error": code})
}

// respondValidation writes a 400 carrying one error message per invalid field.
func respondValidation(w http.ResponseWriter, fields map[string]string) {
	respondJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "validation_failed",
		"fields": fields,
	})
}

// respondError maps service/repository failures to status codes in one place
// so every handler reports the same closed set of error shapes: bad input is
// 400, missing auth 401, missing records 404, everything else a generic 500.
// Internal detail is logged server-side and never sent to the caller.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondErrorCode(w, http.StatusNotFound, "not_found")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondErrorCode(w, http.StatusUnauthorized, "invalid_credentials")
	case errors.Is(err, service.ErrInvalidDocument):
		respondErrorCode(w, http.StatusBadRequest, "invalid_document")
	default:
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		respondErrorCode(w, http.StatusInternalServerError, "internal_error")
	}
}
