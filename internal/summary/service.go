package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service produces summary reports on demand.
type Service struct {
	source TaskSource
	clock  Clock
	logger *slog.Logger
}

// NewService creates a Service. A nil clock uses time.Now and a nil logger
// uses slog.Default.
func NewService(source TaskSource, clock Clock, logger *slog.Logger) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("task source cannot be nil")
	}
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		source: source,
		clock:  clock,
		logger: logger.With(slog.String("component", "summary_service")),
	}, nil
}

// GetSummary computes a Report over the current task set.
func (s *Service) GetSummary(ctx context.Context) (Report, error) {
	tasks, err := s.source.Tasks(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to load tasks: %w", err)
	}

	report := Compute(tasks, s.clock())

	s.logger.DebugContext(ctx, "computed task summary",
		"total_tasks", report.Total,
		"completed_tasks", report.Completed,
		"recent_completions", report.RecentCompletions)

	return report, nil
}
