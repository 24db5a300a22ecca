package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/infra/dispatch"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/infra/repository"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/testutil"
)

func TestFindRecipient(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	directory := repository.NewRecipientDirectory(testDB.DB)
	ctx := context.Background()

	testDB.CleanTable(t)

	known := createValidUserID(t)
	require.NoError(t, testDB.DB.Create(&repository.UserModel{
		ID:          known.String(),
		Name:        "Aiko Tanaka",
		Email:       "aiko@campus.example",
		NotifyEmail: true,
		NotifyPush:  false,
		NotifySMS:   true,
		NotifyInApp: true,
		CreatedAt:   time.Now(),
	}).Error)

	tests := []struct {
		name        string
		id          domain.UserID
		expected    dispatch.Recipient
		expectedErr error
	}{
		{
			name: "known user",
			id:   known,
			expected: dispatch.Recipient{
				UserID:      known,
				Name:        "Aiko Tanaka",
				Email:       "aiko@campus.example",
				Preferences: dispatch.Preferences{Email: true, SMS: true, InApp: true},
			},
		},
		{
			name:        "unknown user",
			id:          createValidUserID(t),
			expectedErr: dispatch.ErrRecipientNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := directory.FindRecipient(ctx, tt.id)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCampusItemRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	items := repository.NewCampusItemRepository(testDB.DB)
	ctx := context.Background()
	due := time.Date(2026, 11, 2, 23, 59, 0, 0, time.UTC)

	testDB.CleanTable(t)

	deadlineID := uuid.Must(uuid.NewV7())
	eventID := uuid.Must(uuid.NewV7())

	require.NoError(t, testDB.DB.Create(&repository.DeadlineModel{
		ID:       deadlineID.String(),
		Title:    "Thesis draft",
		DueDate:  due,
		Priority: "urgent",
	}).Error)
	require.NoError(t, testDB.DB.Create(&repository.EventModel{
		ID:       eventID.String(),
		Title:    "Career fair",
		StartAt:  due,
		Venue:    "Main hall",
		Priority: "low",
	}).Error)

	t.Run("deadline", func(t *testing.T) {
		d, err := items.FindDeadline(ctx, deadlineID)
		require.NoError(t, err)

		assert.Equal(t, deadlineID, d.ID)
		assert.Equal(t, "Thesis draft", d.Title)
		assert.Equal(t, domain.PriorityUrgent, d.Priority)
		assert.True(t, d.DueDate.Equal(due))

		_, err = items.FindDeadline(ctx, uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrDeadlineNotFound)
	})

	t.Run("event", func(t *testing.T) {
		e, err := items.FindEvent(ctx, eventID)
		require.NoError(t, err)

		assert.Equal(t, eventID, e.ID)
		assert.Equal(t, "Main hall", e.Venue)
		assert.Equal(t, domain.PriorityLow, e.Priority)
		assert.True(t, e.Start.Equal(due))

		_, err = items.FindEvent(ctx, uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})
}
