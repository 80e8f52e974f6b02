package summary

import (
	"errors"
	"fmt"
	"time"
)

// Status represents whether a task has been finished.
type Status string

// Possible task status values
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// DateLayout is the ISO calendar date format used for completion dates.
const DateLayout = "2006-01-02"

// ErrInvalidTask is returned when a task violates the completion invariant.
var ErrInvalidTask = errors.New("invalid task")

// Task is an immutable record of a unit of work. CompletedAt is set if and
// only if Status is StatusCompleted, and only carries a calendar date.
type Task struct {
	id          int
	status      Status
	completedAt *civilDate
}

type civilDate struct {
	year  int
	month time.Month
	day   int
}

// NewTask validates and builds a Task. completedAt must be an ISO date
// (YYYY-MM-DD) for completed tasks and empty for pending ones.
func NewTask(id int, status Status, completedAt string) (Task, error) {
	switch status {
	case StatusPending:
		if completedAt != "" {
			return Task{}, fmt.Errorf("%w: pending task %d has a completion date", ErrInvalidTask, id)
		}
		return Task{id: id, status: status}, nil
	case StatusCompleted:
		if completedAt == "" {
			return Task{}, fmt.Errorf("%w: completed task %d has no completion date", ErrInvalidTask, id)
		}
		t, err := time.Parse(DateLayout, completedAt)
		if err != nil {
			return Task{}, fmt.Errorf("%w: task %d completion date: %v", ErrInvalidTask, id, err)
		}
		y, m, d := t.Date()
		return Task{id: id, status: status, completedAt: &civilDate{year: y, month: m, day: d}}, nil
	default:
		return Task{}, fmt.Errorf("%w: task %d has unknown status %q", ErrInvalidTask, id, status)
	}
}

// MustTask is like NewTask but panics on error. Intended for static datasets.
func MustTask(id int, status Status, completedAt string) Task {
	t, err := NewTask(id, status, completedAt)
	if err != nil {
		panic(err)
	}
	return t
}

// ID returns the task identifier.
func (t Task) ID() int { return t.id }

// Status returns the task status.
func (t Task) Status() Status { return t.status }

// Completed reports whether the task is finished.
func (t Task) Completed() bool { return t.status == StatusCompleted }

// CompletedOn returns the completion date formatted as YYYY-MM-DD, and false
// for pending tasks.
func (t Task) CompletedOn() (string, bool) {
	if t.completedAt == nil {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", t.completedAt.year, t.completedAt.month, t.completedAt.day), true
}

// completedAtIn returns midnight of the completion date in loc.
func (t Task) completedAtIn(loc *time.Location) (time.Time, bool) {
	if t.completedAt == nil {
		return time.Time{}, false
	}
	return time.Date(t.completedAt.year, t.completedAt.month, t.completedAt.day, 0, 0, 0, 0, loc), true
}
