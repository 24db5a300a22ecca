package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
)

func createValidUserID(t *testing.T) domain.UserID {
	t.Helper()

	id, err := domain.UserIDFromUUID(uuid.Must(uuid.NewV7()))
	require.NoError(t, err)

	return id
}

func validParams(trigger time.Time) domain.ReminderParams {
	return domain.ReminderParams{
		Title:       "  Physics problem set  ",
		Kind:        domain.KindDeadline,
		TriggerDate: trigger,
	}
}

func TestNewReminderSuccess(t *testing.T) {
	owner := createValidUserID(t)
	now := date(2026, 10, 14, 9, 0)

	r, err := domain.NewReminder(owner, validParams(date(2026, 10, 20, 17, 0)), now)
	require.NoError(t, err)

	assert.False(t, r.ID().IsZero())
	assert.True(t, r.OwnedBy(owner))
	assert.Equal(t, "Physics problem set", r.Title())
	assert.Equal(t, domain.RepeatNone, r.Repeat())
	assert.Equal(t, domain.PriorityMedium, r.Priority())
	assert.Equal(t, domain.CategoryAcademic, r.Category())
	assert.Equal(t, domain.DefaultColor, r.Color())
	assert.True(t, r.IsActive())
	assert.False(t, r.IsCompleted())
	assert.Equal(t, now, r.CreatedAt())
	assert.Equal(t, domain.DefaultNotifications(), r.Notifications())
}

func TestNewReminderError(t *testing.T) {
	trigger := date(2026, 10, 20, 17, 0)

	tests := []struct {
		name        string
		owner       domain.UserID
		params      func() domain.ReminderParams
		expectedErr error
	}{
		{
			name:        "zero owner",
			params:      func() domain.ReminderParams { return validParams(trigger) },
			expectedErr: domain.ErrInvalidUserID,
		},
		{
			name:  "blank title",
			owner: createValidUserID(t),
			params: func() domain.ReminderParams {
				p := validParams(trigger)
				p.Title = "   "

				return p
			},
			expectedErr: domain.ErrEmptyTitle,
		},
		{
			name:  "missing kind",
			owner: createValidUserID(t),
			params: func() domain.ReminderParams {
				p := validParams(trigger)
				p.Kind = ""

				return p
			},
			expectedErr: domain.ErrInvalidKind,
		},
		{
			name:  "missing trigger date",
			owner: createValidUserID(t),
			params: func() domain.ReminderParams {
				return validParams(time.Time{})
			},
			expectedErr: domain.ErrZeroTriggerDate,
		},
		{
			name:  "repeat end before trigger",
			owner: createValidUserID(t),
			params: func() domain.ReminderParams {
				p := validParams(trigger)
				p.Repeat = domain.RepeatDaily
				p.RepeatEndDate = ptr(trigger.Add(-time.Hour))

				return p
			},
			expectedErr: domain.ErrRepeatEndBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewReminder(tt.owner, tt.params(), date(2026, 10, 14, 9, 0))

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestReminderNotificationLifecycle(t *testing.T) {
	r, err := domain.NewReminder(createValidUserID(t), validParams(date(2026, 10, 20, 17, 0)), date(2026, 10, 14, 9, 0))
	require.NoError(t, err)

	sentAt := date(2026, 10, 20, 16, 0)
	require.NoError(t, r.MarkNotificationSent(0, sentAt))

	assert.True(t, r.Notifications()[0].IsSent())
	assert.Equal(t, sentAt, r.Notifications()[0].SentAt())
	assert.ErrorIs(t, r.MarkNotificationSent(0, sentAt.Add(time.Minute)), domain.ErrNotificationAlreadySent)
	assert.Equal(t, sentAt, r.Notifications()[0].SentAt())

	require.NoError(t, r.RecordNotificationAttempt(1, sentAt, "timeout"))
	assert.Equal(t, 1, r.Notifications()[1].Attempts())
	assert.Equal(t, "timeout", r.Notifications()[1].LastError())

	require.NoError(t, r.MarkNotificationMissed(1, sentAt))
	assert.True(t, r.Notifications()[1].IsMissed())
	assert.ErrorIs(t, r.MarkNotificationSent(1, sentAt), domain.ErrNotificationMissed)
	assert.ErrorIs(t, r.MarkNotificationMissed(1, sentAt), domain.ErrNotificationAlreadySent)

	assert.ErrorIs(t, r.MarkNotificationSent(5, sentAt), domain.ErrNotificationIndex)
	assert.False(t, r.Notifications().HasPending())
}

func TestReminderMarkCompleted(t *testing.T) {
	r, err := domain.NewReminder(createValidUserID(t), validParams(date(2026, 10, 20, 17, 0)), date(2026, 10, 14, 9, 0))
	require.NoError(t, err)

	doneAt := date(2026, 10, 15, 9, 0)
	require.NoError(t, r.MarkCompleted(doneAt))

	assert.True(t, r.IsCompleted())
	assert.Equal(t, doneAt, r.CompletedAt())
	assert.ErrorIs(t, r.MarkCompleted(doneAt.Add(time.Hour)), domain.ErrAlreadyCompleted)
	assert.Equal(t, doneAt, r.CompletedAt())

	_, ok := r.NextOccurrence(doneAt)
	assert.False(t, ok)
}

func TestReminderUpdateKeepsDeliveryState(t *testing.T) {
	r, err := domain.NewReminder(createValidUserID(t), validParams(date(2026, 10, 20, 17, 0)), date(2026, 10, 14, 9, 0))
	require.NoError(t, err)
	require.NoError(t, r.MarkNotificationSent(0, date(2026, 10, 14, 10, 0)))

	p := validParams(date(2026, 10, 21, 17, 0))
	p.Title = "Physics problem set 2"
	p.Priority = domain.PriorityUrgent

	require.NoError(t, r.Update(p, date(2026, 10, 14, 11, 0)))

	assert.Equal(t, "Physics problem set 2", r.Title())
	assert.Equal(t, domain.PriorityUrgent, r.Priority())
	assert.True(t, r.Notifications()[0].IsSent())
	assert.Equal(t, date(2026, 10, 14, 11, 0), r.UpdatedAt())

	n, err := domain.NewNotification("push", "15min", 0)
	require.NoError(t, err)

	p.Notifications = domain.Notifications{n}
	require.NoError(t, r.Update(p, date(2026, 10, 14, 12, 0)))
	require.Equal(t, 1, r.Notifications().Count())
	assert.False(t, r.Notifications()[0].IsSent())
}

func TestReminderDerivedViews(t *testing.T) {
	now := date(2026, 10, 14, 9, 0)

	tests := []struct {
		name     string
		trigger  time.Time
		done     bool
		overdue  bool
		today    bool
		upcoming bool
	}{
		{name: "earlier today", trigger: date(2026, 10, 14, 8, 0), overdue: true, today: true},
		{name: "later today", trigger: date(2026, 10, 14, 18, 0), today: true, upcoming: true},
		{name: "tomorrow within 24h", trigger: date(2026, 10, 15, 8, 0), upcoming: true},
		{name: "exactly 24h ahead", trigger: date(2026, 10, 15, 9, 0), upcoming: true},
		{name: "beyond 24h", trigger: date(2026, 10, 15, 9, 1)},
		{name: "completed in the past", trigger: date(2026, 10, 13, 8, 0), done: true},
		{name: "completed later today", trigger: date(2026, 10, 14, 18, 0), done: true, today: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := domain.NewReminder(createValidUserID(t), validParams(tt.trigger), now.Add(-48*time.Hour))
			require.NoError(t, err)

			if tt.done {
				require.NoError(t, r.MarkCompleted(now))
			}

			assert.Equal(t, tt.overdue, r.IsOverdue(now))
			assert.Equal(t, tt.today, r.IsToday(now))
			assert.Equal(t, tt.upcoming, r.IsUpcoming(now))
		})
	}
}

func TestReminderRollForward(t *testing.T) {
	trigger := date(2026, 10, 7, 9, 0)
	now := date(2026, 10, 14, 12, 0)
	windowEnd := now.Add(domain.DefaultLookAheadWindow)

	p := validParams(trigger)
	p.Repeat = domain.RepeatWeekly

	r, err := domain.NewReminder(createValidUserID(t), p, trigger.Add(-48*time.Hour))
	require.NoError(t, err)

	assert.False(t, r.AwaitsRollover(now, windowEnd), "pending notifications block rollover")

	require.NoError(t, r.MarkNotificationSent(0, trigger.Add(-time.Hour)))
	require.NoError(t, r.MarkNotificationMissed(1, trigger))
	require.True(t, r.AwaitsRollover(now, windowEnd))

	rollover, next := r.RollForward(now, windowEnd)
	require.Equal(t, domain.RolloverAdvanced, rollover)

	assert.Equal(t, date(2026, 10, 21, 9, 0), next)
	assert.Equal(t, next, r.TriggerDate())
	assert.True(t, r.Notifications().HasPending())
	assert.False(t, r.IsCompleted())

	for _, n := range r.Notifications() {
		assert.False(t, n.IsSent())
		assert.False(t, n.IsMissed())
		assert.Zero(t, n.Attempts())
	}

	rollover, _ = r.RollForward(now, windowEnd)
	assert.Equal(t, domain.RolloverNone, rollover, "new occurrence is still ahead")
}

func TestReminderRollForwardWhenNextNotificationEntersWindow(t *testing.T) {
	trigger := date(2026, 10, 15, 10, 0)

	email, err := domain.NewNotification("email", "1day", 0)
	require.NoError(t, err)

	p := validParams(trigger)
	p.Repeat = domain.RepeatDaily
	p.Notifications = domain.Notifications{email}

	tests := []struct {
		name string
		now  time.Time
		want domain.Rollover
		next time.Time
	}{
		{
			name: "next notification beyond the window",
			now:  date(2026, 10, 15, 9, 50),
			want: domain.RolloverNone,
		},
		{
			name: "next notification inside the window",
			now:  date(2026, 10, 15, 9, 58),
			want: domain.RolloverAdvanced,
			next: date(2026, 10, 16, 10, 0),
		},
		{
			name: "occurrence passed",
			now:  date(2026, 10, 15, 10, 0),
			want: domain.RolloverAdvanced,
			next: date(2026, 10, 16, 10, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := domain.NewReminder(createValidUserID(t), p, date(2026, 10, 1, 9, 0))
			require.NoError(t, err)
			require.NoError(t, r.MarkNotificationSent(0, date(2026, 10, 14, 10, 0)))

			rollover, next := r.RollForward(tt.now, tt.now.Add(domain.DefaultLookAheadWindow))

			assert.Equal(t, tt.want, rollover)
			assert.Equal(t, tt.next, next)

			if tt.want == domain.RolloverAdvanced {
				assert.Equal(t, tt.next, r.TriggerDate())
				assert.Equal(t, date(2026, 10, 15, 10, 0), r.Notifications()[0].TriggerInstant(r.TriggerDate()))
			} else {
				assert.Equal(t, trigger, r.TriggerDate())
			}
		})
	}
}

func TestReminderRollForwardCompletesExpiredRecurrence(t *testing.T) {
	trigger := date(2026, 10, 7, 9, 0)
	end := date(2026, 10, 10, 0, 0)
	now := date(2026, 10, 14, 12, 0)
	windowEnd := now.Add(domain.DefaultLookAheadWindow)

	p := validParams(trigger)
	p.Repeat = domain.RepeatDaily
	p.RepeatEndDate = &end

	r, err := domain.NewReminder(createValidUserID(t), p, trigger.Add(-48*time.Hour))
	require.NoError(t, err)
	require.NoError(t, r.MarkNotificationSent(0, trigger.Add(-time.Hour)))
	require.NoError(t, r.MarkNotificationMissed(1, trigger))

	rollover, next := r.RollForward(now, windowEnd)

	assert.Equal(t, domain.RolloverExpired, rollover)
	assert.True(t, next.IsZero())
	assert.True(t, r.IsCompleted())
	assert.Equal(t, now, r.CompletedAt())
	assert.Equal(t, trigger, r.TriggerDate())

	rollover, _ = r.RollForward(now.Add(time.Hour), windowEnd.Add(time.Hour))
	assert.Equal(t, domain.RolloverNone, rollover, "a completed recurrence is not rolled again")
}

func TestReminderCloneIsIndependent(t *testing.T) {
	p := validParams(date(2026, 10, 20, 17, 0))
	p.Tags = []string{"physics"}

	r, err := domain.NewReminder(createValidUserID(t), p, date(2026, 10, 14, 9, 0))
	require.NoError(t, err)

	c := r.Clone()
	require.NoError(t, r.MarkNotificationSent(0, date(2026, 10, 14, 10, 0)))
	r.Tags()[0] = "chemistry"

	assert.False(t, c.Notifications()[0].IsSent())
	assert.Equal(t, []string{"physics"}, c.Tags())
}
