package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Run("completed task keeps its date", func(t *testing.T) {
		task, err := NewTask(7, StatusCompleted, "2024-04-01")
		require.NoError(t, err)

		assert.Equal(t, 7, task.ID())
		assert.Equal(t, StatusCompleted, task.Status())
		assert.True(t, task.Completed())
		day, ok := task.CompletedOn()
		assert.True(t, ok)
		assert.Equal(t, "2024-04-01", day)
	})

	t.Run("pending task has no date", func(t *testing.T) {
		task, err := NewTask(8, StatusPending, "")
		require.NoError(t, err)

		assert.False(t, task.Completed())
		_, ok := task.CompletedOn()
		assert.False(t, ok)
	})

	invalid := []struct {
		name        string
		status      Status
		completedAt string
	}{
		{"pending with date", StatusPending, "2024-04-01"},
		{"completed without date", StatusCompleted, ""},
		{"malformed date", StatusCompleted, "04/01/2024"},
		{"unknown status", Status("archived"), ""},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTask(1, tc.status, tc.completedAt)
			assert.ErrorIs(t, err, ErrInvalidTask)
		})
	}
}

func TestMustTaskPanics(t *testing.T) {
	assert.Panics(t, func() { MustTask(1, StatusCompleted, "") })
}
