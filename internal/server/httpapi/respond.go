package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mvberkel/tripdiary/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFromError maps the domain error taxonomy to HTTP status codes:
// validation and conflicts 400, auth 401, unknown records 404, everything
// else (including storage I/O) 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		// do not leak storage paths or internals
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}
