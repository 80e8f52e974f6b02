package reminder

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation errors returned by Engine.AddTask
var (
	ErrEmptyDescription     = errors.New("task description cannot be empty")
	ErrInvalidReminderCount = errors.New("reminder count cannot be negative")
)

// ReminderTask is a pending item and the number of announcements it has left.
type ReminderTask struct {
	ID             uuid.UUID
	Description    string
	RemainingCount int
	CreatedAt      time.Time
}

// State is the lifecycle state of an Engine.
type State string

// Engine states
const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)
