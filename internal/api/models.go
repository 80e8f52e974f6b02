package api

import (
	"time"

	"github.com/phrazzld/taskpulse/internal/reminder"
	"github.com/phrazzld/taskpulse/internal/summary"
)

// TaskSummaryResponse is the body of GET /task-summary.
type TaskSummaryResponse struct {
	TotalTasks         int            `json:"total_tasks"`
	CompletedTasks     int            `json:"completed_tasks"`
	PendingTasks       int            `json:"pending_tasks"`
	AccuracyPercentage int            `json:"accuracy_percentage"`
	CompletionByDay    map[string]int `json:"completion_by_day"`
	RecentCompletions  int            `json:"recent_completions"`
}

// AddTaskRequest is the body of POST /add_task.
type AddTaskRequest struct {
	Task          string `json:"task"           validate:"required"`
	ReminderCount int    `json:"reminder_count" validate:"min=1"`
}

// ReminderTaskResponse describes one active reminder task.
type ReminderTaskResponse struct {
	ID            string    `json:"id"`
	Task          string    `json:"task"`
	ReminderCount int       `json:"reminder_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// EngineStatusResponse is the body of GET /status.
type EngineStatusResponse struct {
	State       string `json:"state"`
	ActiveTasks int    `json:"active_tasks"`
}

func summaryToResponse(report summary.Report) TaskSummaryResponse {
	byDay := report.CompletionByDay
	if byDay == nil {
		byDay = map[string]int{}
	}
	return TaskSummaryResponse{
		TotalTasks:         report.Total,
		CompletedTasks:     report.Completed,
		PendingTasks:       report.Pending,
		AccuracyPercentage: report.AccuracyPercentage,
		CompletionByDay:    byDay,
		RecentCompletions:  report.RecentCompletions,
	}
}

func reminderTaskToResponse(task reminder.ReminderTask) ReminderTaskResponse {
	return ReminderTaskResponse{
		ID:            task.ID.String(),
		Task:          task.Description,
		ReminderCount: task.RemainingCount,
		CreatedAt:     task.CreatedAt,
	}
}
