package reminder

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTask(desc string, count int) ReminderTask {
	return ReminderTask{ID: uuid.New(), Description: desc, RemainingCount: count}
}

func TestPlan(t *testing.T) {
	water := newTask("drink water", 2)
	done := newTask("stretch", 0)
	call := newTask("call mom", 1)

	msgs := Messages{Title: "Task Reminder", Timeout: 10 * time.Second}
	reminders := Plan([]ReminderTask{water, done, call}, msgs)

	assert.Len(t, reminders, 2)
	assert.Equal(t, Reminder{
		TaskID:      water.ID,
		Description: "drink water",
		Title:       "Task Reminder",
		Message:     "Remember to: drink water",
		Speech:      "Remember to drink water",
		Timeout:     10 * time.Second,
	}, reminders[0])
	assert.Equal(t, call.ID, reminders[1].TaskID)
}

func TestPlan_Empty(t *testing.T) {
	assert.Empty(t, Plan(nil, DefaultMessages()))
}

func TestSettle(t *testing.T) {
	a := newTask("a", 3)
	b := newTask("b", 1)
	zero := newTask("zero", 0)
	late := newTask("late", 0)

	snapshot := []ReminderTask{a, b, zero}
	current := []ReminderTask{a, b, zero, late}

	active, exhausted := Settle(current, snapshot)

	assert.Len(t, active, 2)
	assert.Equal(t, a.ID, active[0].ID)
	assert.Equal(t, 2, active[0].RemainingCount)
	// tasks outside the snapshot are untouched, even with a zero count
	assert.Equal(t, late.ID, active[1].ID)

	assert.Len(t, exhausted, 2)
	assert.Equal(t, b.ID, exhausted[0].ID)
	assert.Equal(t, 0, exhausted[0].RemainingCount)
	assert.Equal(t, zero.ID, exhausted[1].ID)

	// inputs are not mutated
	assert.Equal(t, 3, current[0].RemainingCount)
	assert.Equal(t, 1, current[1].RemainingCount)
}
