package reminder

import (
	"time"

	"github.com/google/uuid"
)

// Messages controls the wording and display time of announcements.
type Messages struct {
	Title   string
	Timeout time.Duration
}

// DefaultMessages returns the standard reminder wording.
func DefaultMessages() Messages {
	return Messages{
		Title:   "Task Reminder",
		Timeout: 10 * time.Second,
	}
}

// Reminder is one announcement for one task, rendered by a Notifier.
type Reminder struct {
	TaskID      uuid.UUID
	Description string
	Title       string
	Message     string
	Speech      string
	Timeout     time.Duration
}

// Plan returns the reminders to fire for tasks, in task order. Tasks without
// remaining reminders are skipped.
func Plan(tasks []ReminderTask, msgs Messages) []Reminder {
	reminders := make([]Reminder, 0, len(tasks))
	for _, task := range tasks {
		if task.RemainingCount <= 0 {
			continue
		}
		reminders = append(reminders, Reminder{
			TaskID:      task.ID,
			Description: task.Description,
			Title:       msgs.Title,
			Message:     "Remember to: " + task.Description,
			Speech:      "Remember to " + task.Description,
			Timeout:     msgs.Timeout,
		})
	}
	return reminders
}

// Settle applies a finished cycle to current. Every task of snapshot that had
// reminders left is decremented, then snapshot tasks that reached zero are
// removed and returned as exhausted. Tasks absent from snapshot pass through
// untouched. current is not modified.
func Settle(current, snapshot []ReminderTask) (active, exhausted []ReminderTask) {
	seen := make(map[uuid.UUID]bool, len(snapshot))
	for _, task := range snapshot {
		seen[task.ID] = task.RemainingCount > 0
	}

	active = make([]ReminderTask, 0, len(current))
	for _, task := range current {
		fired, inCycle := seen[task.ID]
		if !inCycle {
			active = append(active, task)
			continue
		}
		if fired {
			task.RemainingCount--
		}
		if task.RemainingCount <= 0 {
			task.RemainingCount = 0
			exhausted = append(exhausted, task)
			continue
		}
		active = append(active, task)
	}

	return active, exhausted
}
