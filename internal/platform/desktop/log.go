package desktop

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskpulse/internal/reminder"
)

// LogNotifier writes every reminder effect to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

var _ reminder.Notifier = (*LogNotifier)(nil)

// NewLogNotifier creates a LogNotifier. A nil logger uses slog.Default.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger.With(slog.String("component", "log_notifier"))}
}

// Notify logs the notification with its title and display timeout.
func (n *LogNotifier) Notify(ctx context.Context, r reminder.Reminder) error {
	n.logger.InfoContext(ctx, r.Message,
		"effect", "notification",
		"task_id", r.TaskID,
		"title", r.Title,
		"timeout", r.Timeout.String())
	return nil
}

// Popup logs the popup message. It never blocks.
func (n *LogNotifier) Popup(ctx context.Context, r reminder.Reminder) error {
	n.logger.InfoContext(ctx, r.Message, "effect", "popup", "task_id", r.TaskID, "title", r.Title)
	return nil
}

// Speak logs the spoken text.
func (n *LogNotifier) Speak(ctx context.Context, r reminder.Reminder) error {
	n.logger.InfoContext(ctx, r.Speech, "effect", "speech", "task_id", r.TaskID)
	return nil
}
