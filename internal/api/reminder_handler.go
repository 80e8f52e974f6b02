package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskpulse/internal/api/shared"
	"github.com/phrazzld/taskpulse/internal/platform/logger"
	"github.com/phrazzld/taskpulse/internal/reminder"
)

// ReminderEngine is the part of reminder.Engine the control API drives.
type ReminderEngine interface {
	AddTask(description string, reminderCount int) (reminder.ReminderTask, error)
	Tasks() []reminder.ReminderTask
	State() reminder.State
	Start()
}

// ReminderHandler exposes the reminder engine over HTTP.
type ReminderHandler struct {
	engine ReminderEngine
	logger *slog.Logger
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(engine ReminderEngine, logger *slog.Logger) *ReminderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReminderHandler{
		engine: engine,
		logger: logger.With(slog.String("component", "reminder_handler")),
	}
}

// AddTask handles POST /add_task requests. The engine is started if idle.
func (h *ReminderHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req AddTaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := h.engine.AddTask(req.Task, req.ReminderCount)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.engine.Start()

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Info("reminder task accepted",
		"task_id", task.ID,
		"reminder_count", task.RemainingCount)

	shared.RespondWithJSON(w, r, http.StatusCreated, reminderTaskToResponse(task))
}

// GetTasks handles GET /get_tasks requests
func (h *ReminderHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks := h.engine.Tasks()

	response := make([]ReminderTaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, reminderTaskToResponse(task))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetStatus handles GET /status requests
func (h *ReminderHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, EngineStatusResponse{
		State:       string(h.engine.State()),
		ActiveTasks: len(h.engine.Tasks()),
	})
}
