package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
)

func TestReminderIDFromStringSuccess(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "valid UUID v4",
			input: uuid.New().String(),
		},
		{
			name:  "valid UUID v7",
			input: uuid.Must(uuid.NewV7()).String(),
		},
		{
			name:  "valid UUID with uppercase",
			input: "550E8400-E29B-41D4-A716-446655440000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := domain.ReminderIDFromString(tt.input)

			assert.NoError(t, err)
			assert.False(t, id.IsZero())
		})
	}
}

func TestReminderIDFromStringError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "invalid format",
			input: "not-a-uuid",
		},
		{
			name:  "partial UUID",
			input: "550e8400-e29b-41d4",
		},
		{
			name:  "UUID with invalid characters",
			input: "550e8400-e29b-41d4-a716-44665544000g",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ReminderIDFromString(tt.input)

			assert.ErrorIs(t, err, domain.ErrInvalidReminderID)
		})
	}
}

func TestNewReminderIDSuccess(t *testing.T) {
	tests := []struct {
		name string
	}{
		{
			name: "generates non-zero ID",
		},
		{
			name: "generates unique IDs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := domain.NewReminderID()

			assert.False(t, id.IsZero())
			assert.NotEmpty(t, id.String())
		})
	}
}

func TestReminderIDFromUUIDSuccess(t *testing.T) {
	tests := []struct {
		name  string
		input uuid.UUID
	}{
		{
			name:  "valid UUID v4",
			input: uuid.New(),
		},
		{
			name:  "valid UUID v7",
			input: uuid.Must(uuid.NewV7()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := domain.ReminderIDFromUUID(tt.input)

			assert.Equal(t, tt.input, id.UUID())
			assert.False(t, id.IsZero())
		})
	}
}

func TestReminderIDEqualsSuccess(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() (domain.ReminderID, domain.ReminderID)
		expected bool
	}{
		{
			name: "same UUID returns true",
			setup: func() (domain.ReminderID, domain.ReminderID) {
				u := uuid.New()
				id1 := domain.ReminderIDFromUUID(u)
				id2 := domain.ReminderIDFromUUID(u)

				return id1, id2
			},
			expected: true,
		},
		{
			name: "different UUIDs returns false",
			setup: func() (domain.ReminderID, domain.ReminderID) {
				id1 := domain.NewReminderID()
				id2 := domain.NewReminderID()

				return id1, id2
			},
			expected: false,
		},
		{
			name: "same ID compared with itself returns true",
			setup: func() (domain.ReminderID, domain.ReminderID) {
				id := domain.NewReminderID()

				return id, id
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1, id2 := tt.setup()

			assert.Equal(t, tt.expected, id1.Equals(id2))
		})
	}
}

func TestReminderIDStringSuccess(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "round-trip conversion preserves value",
			input: uuid.New().String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := domain.ReminderIDFromString(tt.input)
			assert.NoError(t, err)

			assert.Equal(t, tt.input, id.String())
		})
	}
}

func TestReminderIDIsZeroSuccess(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() domain.ReminderID
		expected bool
	}{
		{
			name: "new ID is not zero",
			setup: func() domain.ReminderID {
				return domain.NewReminderID()
			},
			expected: false,
		},
		{
			name: "nil UUID is zero",
			setup: func() domain.ReminderID {
				return domain.ReminderIDFromUUID(uuid.Nil)
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.setup()

			assert.Equal(t, tt.expected, id.IsZero())
		})
	}
}
