package summary

import (
	"context"
	"time"
)

// TaskSource supplies the tasks a summary is computed over.
type TaskSource interface {
	Tasks(ctx context.Context) ([]Task, error)
}

// Clock returns the evaluation instant.
type Clock func() time.Time

// StaticSource serves a fixed, immutable task list.
type StaticSource struct {
	tasks []Task
}

// NewStaticSource copies tasks into a new StaticSource.
func NewStaticSource(tasks []Task) *StaticSource {
	return &StaticSource{tasks: append([]Task(nil), tasks...)}
}

// Tasks returns a copy of the fixed list.
func (s *StaticSource) Tasks(context.Context) ([]Task, error) {
	return append([]Task(nil), s.tasks...), nil
}

// DefaultTasks is the built-in dataset served by the summary endpoint.
func DefaultTasks() []Task {
	return []Task{
		MustTask(1, StatusCompleted, "2024-04-01"),
		MustTask(2, StatusPending, ""),
		MustTask(3, StatusCompleted, "2024-04-10"),
		MustTask(4, StatusCompleted, "2024-04-18"),
		MustTask(5, StatusPending, ""),
	}
}
