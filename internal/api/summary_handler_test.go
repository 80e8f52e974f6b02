package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/taskpulse/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSummaryService is a mock implementation of SummaryService for testing
type MockSummaryService struct {
	GetSummaryFn func(ctx context.Context) (summary.Report, error)
}

// GetSummary implements SummaryService
func (m *MockSummaryService) GetSummary(ctx context.Context) (summary.Report, error) {
	return m.GetSummaryFn(ctx)
}

func TestSummaryHandler_GetTaskSummary(t *testing.T) {
	fixedNow := time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)
	svc, err := summary.NewService(summary.NewStaticSource(summary.DefaultTasks()),
		func() time.Time { return fixedNow }, nil)
	require.NoError(t, err)

	handler := NewSummaryHandler(svc, nil)
	w := httptest.NewRecorder()

	handler.GetTaskSummary(w, httptest.NewRequest(http.MethodGet, "/task-summary", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"total_tasks": 5,
		"completed_tasks": 3,
		"pending_tasks": 2,
		"accuracy_percentage": 60,
		"completion_by_day": {"2024-04-01": 1, "2024-04-10": 1, "2024-04-18": 1},
		"recent_completions": 1
	}`, w.Body.String())
}

func TestSummaryHandler_EmptyHistogramIsObject(t *testing.T) {
	handler := NewSummaryHandler(&MockSummaryService{
		GetSummaryFn: func(context.Context) (summary.Report, error) {
			return summary.Report{}, nil
		},
	}, nil)
	w := httptest.NewRecorder()

	handler.GetTaskSummary(w, httptest.NewRequest(http.MethodGet, "/task-summary", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{}, body["completion_by_day"])
	assert.Equal(t, float64(0), body["accuracy_percentage"])
}

func TestSummaryHandler_ServiceError(t *testing.T) {
	handler := NewSummaryHandler(&MockSummaryService{
		GetSummaryFn: func(context.Context) (summary.Report, error) {
			return summary.Report{}, errors.New("source unavailable")
		},
	}, nil)
	w := httptest.NewRecorder()

	handler.GetTaskSummary(w, httptest.NewRequest(http.MethodGet, "/task-summary", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "source unavailable")
}
