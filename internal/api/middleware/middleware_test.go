package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskpulse/internal/api/shared"
	"github.com/phrazzld/taskpulse/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	l, buf := logger.GetTestLogger(t)

	var seenTrace, seenRequestID string
	handler := NewTraceMiddleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTrace = shared.GetTraceID(r.Context())
		seenRequestID = logger.RequestID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/task-summary", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.NotEmpty(t, seenTrace)
	assert.Equal(t, seenTrace, seenRequestID)
	logger.AssertLogField(t, buf, "msg", "request completed")
	logger.AssertLogField(t, buf, "trace_id", seenTrace)
	logger.AssertLogField(t, buf, "status", float64(http.StatusTeapot))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	var inner map[string]interface{}
	for _, e := range entries {
		if e["msg"] == "inside handler" {
			inner = e
		}
	}
	require.NotNil(t, inner, "handler log should go through the request logger")
	assert.Equal(t, seenTrace, inner["trace_id"])
	assert.Equal(t, seenTrace, inner["request_id"])
}

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("any origin", func(t *testing.T) {
		handler := NewCORS([]string{"*"})(ok)
		req := httptest.NewRequest(http.MethodGet, "/task-summary", nil)
		req.Header.Set("Origin", "http://localhost:8081")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		handler := NewCORS([]string{"*"})(ok)
		req := httptest.NewRequest(http.MethodOptions, "/add_task", nil)
		req.Header.Set("Origin", "http://localhost:8081")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Contains(t, []int{http.StatusOK, http.StatusNoContent}, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("restricted origin", func(t *testing.T) {
		handler := NewCORS([]string{"https://app.example.com"})(ok)
		req := httptest.NewRequest(http.MethodGet, "/task-summary", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
