package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	apperrors "serenity/internal/errors"
	"serenity/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Logger.Error("encode response failed", "err", err)
	}
}

// writeError maps the error taxonomy to a status code. Validation failures
// echo their message; everything else gets the caller-supplied detail so
// internals stay out of responses.
func writeError(w http.ResponseWriter, err error, detail string) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusBadRequest {
		detail = err.Error()
	} else {
		logger.Logger.Error(detail, "err", err)
	}
	writeJSON(w, status, map[string]string{"detail": detail})
}

func parseLimit(r *http.Request, defaultVal int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultVal
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultVal
	}
	return limit
}
