package app_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/app"
)

func TestNewValidationError(t *testing.T) {
	tests := []struct {
		name          string
		field         string
		message       string
		expectedError string
	}{
		{
			name:          "missing title",
			field:         "title",
			message:       "title is required",
			expectedError: "validation error: title - title is required",
		},
		{
			name:          "indexed notification field",
			field:         "notifications[1].custom_minutes",
			message:       "must be positive for custom lead time",
			expectedError: "validation error: notifications[1].custom_minutes - must be positive for custom lead time",
		},
		{
			name:          "repeat end before date",
			field:         "repeat_end_date",
			message:       "must not be before date",
			expectedError: "validation error: repeat_end_date - must not be before date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.field, err.Field)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.expectedError, err.Error())
			assert.ErrorIs(t, err, app.ErrValidation)
		})
	}
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "direct",
			err:      app.NewValidationError("type", "unknown reminder type"),
			expected: true,
		},
		{
			name:     "wrapped twice",
			err:      fmt.Errorf("create: %w", fmt.Errorf("params: %w", app.NewValidationError("date", "required"))),
			expected: true,
		},
		{
			name:     "bare sentinel is not a typed validation error",
			err:      app.ErrValidation,
			expected: false,
		},
		{
			name:     "store failure",
			err:      fmt.Errorf("%w: reminder x: %v", app.ErrStoreFailure, errors.New("conn reset")),
			expected: false,
		},
		{
			name:     "nil",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, app.IsValidationError(tt.err))
		})
	}
}

func TestValidationErrorAs(t *testing.T) {
	err := fmt.Errorf("update reminder: %w", app.NewValidationError("priority", "unknown priority"))

	var validationErr *app.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "priority", validationErr.Field)
	assert.Equal(t, "unknown priority", validationErr.Message)
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		app.ErrValidation,
		app.ErrNotFound,
		app.ErrForbidden,
		app.ErrInternalError,
		app.ErrStoreFailure,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}

			assert.NotErrorIs(t, a, b, "%v must not match %v", a, b)
		}
	}
}
