package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskpulse/internal/api/shared"
	"github.com/phrazzld/taskpulse/internal/platform/logger"
	"github.com/phrazzld/taskpulse/internal/summary"
)

// SummaryService is the part of summary.Service the handler needs.
type SummaryService interface {
	GetSummary(ctx context.Context) (summary.Report, error)
}

// SummaryHandler serves task statistics.
type SummaryHandler struct {
	service SummaryService
	logger  *slog.Logger
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(service SummaryService, logger *slog.Logger) *SummaryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryHandler{
		service: service,
		logger:  logger.With(slog.String("component", "summary_handler")),
	}
}

// GetTaskSummary handles GET /task-summary requests
func (h *SummaryHandler) GetTaskSummary(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.GetSummary(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Debug("serving task summary", "total_tasks", report.Total)

	shared.RespondWithJSON(w, r, http.StatusOK, summaryToResponse(report))
}
