package api

import (
	"log/slog"
	"net/http"
)

// Health handles GET /health requests.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.ErrorContext(r.Context(), "failed to write health check response", "error", err)
	}
}
