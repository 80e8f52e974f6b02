package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/taskpulse/internal/reminder"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(reminder.ErrEmptyDescription))
	assert.Equal(t, http.StatusBadRequest,
		MapErrorToStatusCode(fmt.Errorf("%w: got -1", reminder.ErrInvalidReminderCount)))
	assert.Equal(t, http.StatusInternalServerError, MapErrorToStatusCode(errors.New("boom")))
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "Task description is required", GetSafeErrorMessage(reminder.ErrEmptyDescription))
	assert.Equal(t, "Reminder count cannot be negative", GetSafeErrorMessage(reminder.ErrInvalidReminderCount))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("/etc/secret missing")))
}

func TestSanitizeValidationError(t *testing.T) {
	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("not a validator error")))
}
