package app_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/app"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/infra/dispatch"
)

func createValidUserID(t *testing.T) domain.UserID {
	t.Helper()

	id, err := domain.UserIDFromUUID(uuid.Must(uuid.NewV7()))
	require.NoError(t, err)

	return id
}

func pendingNotification(channel domain.Channel, lead domain.LeadTime) domain.Notification {
	return domain.ReconstituteNotification(channel, lead, 0, time.Time{}, 0, time.Time{}, "", time.Time{})
}

func sentNotification(channel domain.Channel, lead domain.LeadTime, at time.Time) domain.Notification {
	return domain.ReconstituteNotification(channel, lead, 0, at, 0, time.Time{}, "", time.Time{})
}

type reminderOption func(*domain.ReminderState)

func completed() reminderOption {
	return func(s *domain.ReminderState) {
		s.Completed = true
		s.CompletedAt = s.CreatedAt
	}
}

func repeating(rule domain.RepeatRule, end *time.Time) reminderOption {
	return func(s *domain.ReminderState) {
		s.Repeat = rule
		s.RepeatEndDate = end
	}
}

func createReminder(t *testing.T, trigger time.Time, notifications domain.Notifications, opts ...reminderOption) *domain.Reminder {
	t.Helper()

	state := domain.ReminderState{
		ID:            domain.NewReminderID(),
		Owner:         createValidUserID(t),
		Title:         "Submit lab report",
		Kind:          domain.KindDeadline,
		TriggerDate:   trigger,
		Repeat:        domain.RepeatNone,
		Notifications: notifications,
		Priority:      domain.PriorityHigh,
		Category:      domain.CategoryAcademic,
		Color:         domain.DefaultColor,
		Active:        true,
		CreatedAt:     trigger.Add(-7 * 24 * time.Hour),
		UpdatedAt:     trigger.Add(-7 * 24 * time.Hour),
	}

	for _, opt := range opts {
		opt(&state)
	}

	return domain.ReconstituteReminder(state)
}

type schedulerMocks struct {
	repo       *domain.MockReminderRepository
	dispatcher *dispatch.MockDispatcher
}

func setupScheduler(t *testing.T) (*app.NotificationScheduler, schedulerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := schedulerMocks{
		repo:       domain.NewMockReminderRepository(ctrl),
		dispatcher: dispatch.NewMockDispatcher(ctrl),
	}

	scheduler := app.NewNotificationScheduler(mocks.repo, mocks.dispatcher, app.SchedulerConfig{
		LookAhead:   domain.DefaultLookAhead(),
		Concurrency: 2,
	})

	return scheduler, mocks
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 14, hour, minute, 0, 0, time.UTC)
}

func TestRunScanDispatchesWithinWindow(t *testing.T) {
	scheduler, mocks := setupScheduler(t)
	ctx := context.Background()

	reminder := createReminder(t, at(10, 3), domain.Notifications{
		pendingNotification(domain.ChannelEmail, domain.LeadTime1Hour),
	})

	mocks.repo.EXPECT().FindPending(gomock.Any()).Return([]*domain.Reminder{reminder}, nil).Times(2)
	mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return(nil, nil).Times(2)
	mocks.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dispatch.Request) error {
			assert.Equal(t, domain.ChannelEmail, req.Channel)
			assert.Equal(t, reminder.Owner(), req.Recipient)
			assert.Equal(t, reminder.ID().String(), req.Payload.ReminderID)
			assert.Equal(t, string(domain.LeadTime1Hour), req.Payload.LeadTime)

			return nil
		})
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), reminder).Return(nil)

	first := scheduler.RunScan(ctx, at(9, 0))

	assert.Equal(t, 1, first.Scanned)
	assert.Equal(t, 1, first.Dispatched)
	assert.Empty(t, first.Errors)
	assert.True(t, reminder.Notifications()[0].IsSent())
	assert.Equal(t, at(9, 0), reminder.Notifications()[0].SentAt())

	second := scheduler.RunScan(ctx, at(9, 6))

	assert.Equal(t, 0, second.Dispatched)
	assert.Equal(t, 0, second.Missed)
	assert.Equal(t, at(9, 0), reminder.Notifications()[0].SentAt())
}

func TestRunScanOneDayLeadFiresExactlyOnce(t *testing.T) {
	scheduler, mocks := setupScheduler(t)
	ctx := context.Background()

	trigger := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	reminder := createReminder(t, trigger, domain.Notifications{
		pendingNotification(domain.ChannelEmail, domain.LeadTime1Day),
	})

	mocks.repo.EXPECT().FindPending(gomock.Any()).Return([]*domain.Reminder{reminder}, nil).AnyTimes()
	mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return(nil, nil).AnyTimes()
	mocks.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), reminder).Return(nil).Times(1)

	dispatched := 0
	for now := at(9, 30); !now.After(at(10, 30)); now = now.Add(5 * time.Minute) {
		report := scheduler.RunScan(ctx, now)
		dispatched += report.Dispatched

		assert.Zero(t, report.Missed, "scan at %s", now)
	}

	assert.Equal(t, 1, dispatched)
	assert.Equal(t, at(10, 0), reminder.Notifications()[0].SentAt())
}

func TestRunScanSkipsInactiveAndCompleted(t *testing.T) {
	scheduler, mocks := setupScheduler(t)

	done := createReminder(t, at(9, 2), domain.Notifications{
		pendingNotification(domain.ChannelInApp, domain.LeadTime15Min),
	}, completed())

	paused := createReminder(t, at(9, 2), domain.Notifications{
		pendingNotification(domain.ChannelInApp, domain.LeadTime15Min),
	})
	paused.SetActive(false, at(8, 0))

	mocks.repo.EXPECT().FindPending(gomock.Any()).Return([]*domain.Reminder{done, paused}, nil)
	mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return(nil, nil)

	report := scheduler.RunScan(context.Background(), at(8, 45))

	assert.Equal(t, 2, report.Scanned)
	assert.Zero(t, report.Dispatched)
	assert.False(t, done.Notifications()[0].IsSent())
}

func TestRunScanDispatchOutcomes(t *testing.T) {
	tests := []struct {
		name           string
		dispatchErr    error
		wantDispatched int
		wantSuppressed int
		wantFailed     int
		wantSent       bool
		wantAttempts   int
	}{
		{
			name:           "delivered",
			wantDispatched: 1,
			wantSent:       true,
		},
		{
			name:           "recipient opted out",
			dispatchErr:    dispatch.Permanent(dispatch.ErrRecipientOptedOut),
			wantSuppressed: 1,
			wantSent:       true,
		},
		{
			name:         "transient failure",
			dispatchErr:  errors.New("nats: timeout"),
			wantFailed:   1,
			wantSent:     false,
			wantAttempts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduler, mocks := setupScheduler(t)

			reminder := createReminder(t, at(10, 0), domain.Notifications{
				pendingNotification(domain.ChannelPush, domain.LeadTime30Min),
			})

			mocks.repo.EXPECT().FindPending(gomock.Any()).Return([]*domain.Reminder{reminder}, nil)
			mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return(nil, nil)
			mocks.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(tt.dispatchErr)
			mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), reminder).Return(nil)

			report := scheduler.RunScan(context.Background(), at(9, 28))

			assert.Equal(t, tt.wantDispatched, report.Dispatched)
			assert.Equal(t, tt.wantSuppressed, report.Suppressed)
			assert.Equal(t, tt.wantFailed, report.Failed)

			n := reminder.Notifications()[0]
			assert.Equal(t, tt.wantSent, n.IsSent())
			assert.Equal(t, tt.wantAttempts, n.Attempts())

			if tt.wantFailed > 0 {
				require.Len(t, report.Errors, 1)
				assert.Equal(t, "nats: timeout", n.LastError())
			}
		})
	}
}

func TestRunScanRetriesTransientFailureOnNextScan(t *testing.T) {
	scheduler, mocks := setupScheduler(t)
	ctx := context.Background()

	reminder := createReminder(t, at(10, 0), domain.Notifications{
		pendingNotification(domain.ChannelEmail, domain.LeadTime1Hour),
	})

	mocks.repo.EXPECT().FindPending(gomock.Any()).Return([]*domain.Reminder{reminder}, nil).Times(2)
	mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return(nil, nil).Times(2)
	gomock.InOrder(
		mocks.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("503")),
		mocks.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil),
	)
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), reminder).Return(nil).Times(2)

	first := scheduler.RunScan(ctx, at(8, 58))
	assert.Equal(t, 1, first.Failed)

	second := scheduler.RunScan(ctx, at(9, 3))
	assert.Equal(t, 1, second.Dispatched)
	assert.Zero(t, second.Missed)
	assert.True(t, reminder.Notifications()[0].IsSent())
	assert.Equal(t, 1, reminder.Notifications()[0].Attempts())
}

func TestRunScanFlagsMissedOnce(t *testing.T) {
	tests := []struct {
		name         string
		notification domain.Notification
	}{
		{
			name:         "never attempted",
			notification: pendingNotification(domain.ChannelEmail, domain.LeadTime15Min),
		},
		{
			name: "retry attempts exhausted",
			notification: domain.ReconstituteNotification(
				domain.ChannelEmail, domain.LeadTime15Min, 0,
				time.Time{}, domain.DefaultMaxAttempts, at(8, 40), "503", time.Time{},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduler, mocks := setupScheduler(t)
			ctx := context.Background()

			reminder := createReminder(t, at(9, 0), domain.Notifications{tt.notification})

			mocks.repo.EXPECT().FindPending(gomock.Any()).Return([]*domain.Reminder{reminder}, nil).Times(2)
			mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return(nil, nil).Times(2)
			mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), reminder).Return(nil).Times(1)

			first := scheduler.RunScan(ctx, at(8, 50))
			assert.Equal(t, 1, first.Missed)
			assert.True(t, reminder.Notifications()[0].IsMissed())
			assert.False(t, reminder.Notifications()[0].IsSent())

			second := scheduler.RunScan(ctx, at(8, 55))
			assert.Zero(t, second.Missed)
		})
	}
}

func TestRunScanStoreFailureRevertsReminder(t *testing.T) {
	scheduler, mocks := setupScheduler(t)

	reminder := createReminder(t, at(10, 0), domain.Notifications{
		pendingNotification(domain.ChannelEmail, domain.LeadTime1Hour),
		pendingNotification(domain.ChannelInApp, domain.LeadTime1Hour),
	})

	mocks.repo.EXPECT().FindPending(gomock.Any()).Return([]*domain.Reminder{reminder}, nil)
	mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return(nil, nil)
	mocks.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), reminder).Return(errors.New("connection refused"))

	report := scheduler.RunScan(context.Background(), at(8, 58))

	assert.Equal(t, 1, report.StoreFailures)
	assert.Zero(t, report.Dispatched)
	require.Len(t, report.Errors, 1)
	assert.ErrorIs(t, report.Errors[0], app.ErrStoreFailure)

	for _, n := range reminder.Notifications() {
		assert.False(t, n.IsSent())
	}
}

func TestRunScanIsolatesReminders(t *testing.T) {
	scheduler, mocks := setupScheduler(t)

	broken := createReminder(t, at(10, 0), domain.Notifications{
		pendingNotification(domain.ChannelEmail, domain.LeadTime1Hour),
	})
	healthy := createReminder(t, at(10, 0), domain.Notifications{
		pendingNotification(domain.ChannelEmail, domain.LeadTime1Hour),
	})

	mocks.repo.EXPECT().FindPending(gomock.Any()).Return([]*domain.Reminder{broken, healthy}, nil)
	mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return(nil, nil)
	mocks.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), broken).Return(errors.New("deadlock detected"))
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), healthy).Return(nil)

	report := scheduler.RunScan(context.Background(), at(8, 58))

	assert.Equal(t, 1, report.Dispatched)
	assert.Equal(t, 1, report.StoreFailures)
	assert.True(t, healthy.Notifications()[0].IsSent())
	assert.False(t, broken.Notifications()[0].IsSent())
}

func TestRunScanRollsRecurringForward(t *testing.T) {
	scheduler, mocks := setupScheduler(t)

	trigger := time.Date(2026, 10, 7, 9, 0, 0, 0, time.UTC)
	weekly := createReminder(t, trigger, domain.Notifications{
		sentNotification(domain.ChannelEmail, domain.LeadTime1Hour, trigger.Add(-time.Hour)),
	}, repeating(domain.RepeatWeekly, nil))

	end := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	expiring := createReminder(t, trigger, domain.Notifications{
		sentNotification(domain.ChannelEmail, domain.LeadTime1Hour, trigger.Add(-time.Hour)),
	}, repeating(domain.RepeatDaily, &end))

	mocks.repo.EXPECT().FindPending(gomock.Any()).Return(nil, nil)
	mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return([]*domain.Reminder{weekly, expiring}, nil)
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), weekly).Return(nil)
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), expiring).Return(nil)

	report := scheduler.RunScan(context.Background(), at(12, 0))

	assert.Equal(t, 1, report.Rescheduled)
	assert.Equal(t, 1, report.Expired)
	assert.Equal(t, time.Date(2026, 10, 21, 9, 0, 0, 0, time.UTC), weekly.TriggerDate())
	assert.False(t, weekly.Notifications()[0].IsSent())
	assert.Equal(t, trigger, expiring.TriggerDate())
	assert.True(t, expiring.IsCompleted())
}

func TestRunScanCountsExpiredRecurrenceOnce(t *testing.T) {
	scheduler, mocks := setupScheduler(t)
	ctx := context.Background()

	trigger := time.Date(2026, 10, 7, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	expiring := createReminder(t, trigger, domain.Notifications{
		sentNotification(domain.ChannelEmail, domain.LeadTime1Hour, trigger.Add(-time.Hour)),
	}, repeating(domain.RepeatDaily, &end))

	mocks.repo.EXPECT().FindPending(gomock.Any()).Return(nil, nil).Times(3)
	mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return([]*domain.Reminder{expiring}, nil).Times(3)
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), expiring).Return(nil).Times(1)

	expired := 0
	for _, now := range []time.Time{at(12, 0), at(12, 5), at(12, 10)} {
		expired += scheduler.RunScan(ctx, now).Expired
	}

	assert.Equal(t, 1, expired)
	assert.True(t, expiring.IsCompleted())
	assert.Equal(t, at(12, 0), expiring.CompletedAt())
}

func TestRunScanDailyReminderWithOneDayLead(t *testing.T) {
	scheduler, mocks := setupScheduler(t)
	ctx := context.Background()

	trigger := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	daily := createReminder(t, trigger, domain.Notifications{
		pendingNotification(domain.ChannelEmail, domain.LeadTime1Day),
	}, repeating(domain.RepeatDaily, nil))

	// The store hands the reminder to whichever query its state matches.
	mocks.repo.EXPECT().FindPending(gomock.Any()).
		DoAndReturn(func(context.Context) ([]*domain.Reminder, error) {
			if daily.Notifications().HasPending() {
				return []*domain.Reminder{daily}, nil
			}

			return nil, nil
		}).AnyTimes()
	mocks.repo.EXPECT().FindRecurring(gomock.Any()).
		DoAndReturn(func(context.Context) ([]*domain.Reminder, error) {
			if daily.Notifications().HasPending() {
				return nil, nil
			}

			return []*domain.Reminder{daily}, nil
		}).AnyTimes()
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), daily).Return(nil).AnyTimes()

	var scanAt time.Time
	var sent []time.Time

	mocks.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, dispatch.Request) error {
			sent = append(sent, scanAt)
			return nil
		}).AnyTimes()

	var missed, rescheduled int

	end := time.Date(2026, 10, 17, 10, 30, 0, 0, time.UTC)
	for scanAt = at(9, 0); !scanAt.After(end); scanAt = scanAt.Add(5 * time.Minute) {
		report := scheduler.RunScan(ctx, scanAt)
		require.Empty(t, report.Errors, "scan at %s", scanAt)

		missed += report.Missed
		rescheduled += report.Rescheduled
	}

	assert.Zero(t, missed)
	assert.Equal(t, 3, rescheduled)
	assert.Equal(t, []time.Time{
		time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC),
	}, sent)
	assert.Equal(t, time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC), daily.TriggerDate())
}

func TestRunScanDailyReminderRollsBeforeAnOffCadenceScan(t *testing.T) {
	scheduler, mocks := setupScheduler(t)

	trigger := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	daily := createReminder(t, trigger, domain.Notifications{
		sentNotification(domain.ChannelEmail, domain.LeadTime1Day, at(10, 0)),
	}, repeating(domain.RepeatDaily, nil))

	now := time.Date(2026, 10, 15, 9, 57, 0, 0, time.UTC)

	mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return([]*domain.Reminder{daily}, nil)
	mocks.repo.EXPECT().FindPending(gomock.Any()).Return([]*domain.Reminder{daily}, nil)
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), daily).Return(nil).Times(2)
	mocks.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)

	report := scheduler.RunScan(context.Background(), now)

	assert.Equal(t, 1, report.Rescheduled)
	assert.Equal(t, 1, report.Dispatched)
	assert.Zero(t, report.Missed)
	assert.Equal(t, time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC), daily.TriggerDate())
	assert.Equal(t, now, daily.Notifications()[0].SentAt())
}

func TestRunScanDoesNotOverlap(t *testing.T) {
	scheduler, mocks := setupScheduler(t)
	ctx := context.Background()

	reminder := createReminder(t, at(10, 0), domain.Notifications{
		pendingNotification(domain.ChannelEmail, domain.LeadTime1Hour),
	})

	entered := make(chan struct{})
	release := make(chan struct{})

	mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return(nil, nil).Times(1)
	mocks.repo.EXPECT().FindPending(gomock.Any()).Return([]*domain.Reminder{reminder}, nil).Times(1)
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), reminder).Return(nil).Times(1)
	mocks.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, dispatch.Request) error {
			close(entered)
			<-release

			return nil
		}).Times(1)

	first := make(chan app.ScanReport, 1)
	go func() {
		first <- scheduler.RunScan(ctx, at(9, 0))
	}()

	<-entered

	overlapping := scheduler.RunScan(ctx, at(9, 0))
	assert.True(t, overlapping.Skipped)
	assert.Zero(t, overlapping.Dispatched)

	close(release)

	report := <-first
	assert.False(t, report.Skipped)
	assert.Equal(t, 1, report.Dispatched)
	assert.True(t, reminder.Notifications()[0].IsSent())
}

func TestRunScanLeavesReminderChangedByOwner(t *testing.T) {
	scheduler, mocks := setupScheduler(t)

	reminder := createReminder(t, at(10, 0), domain.Notifications{
		pendingNotification(domain.ChannelEmail, domain.LeadTime1Hour),
		pendingNotification(domain.ChannelInApp, domain.LeadTime1Hour),
	})

	mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return(nil, nil)
	mocks.repo.EXPECT().FindPending(gomock.Any()).Return([]*domain.Reminder{reminder}, nil)
	mocks.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), reminder).Return(domain.ErrReminderNotSchedulable).Times(1)

	report := scheduler.RunScan(context.Background(), at(8, 58))

	assert.Equal(t, 1, report.Withdrawn)
	assert.Zero(t, report.StoreFailures)
	assert.Zero(t, report.Dispatched)
	assert.Empty(t, report.Errors)
	assert.False(t, reminder.Notifications()[0].IsSent())
}

func TestRunScanProcessesLoadableRemindersWhenSomeAreCorrupt(t *testing.T) {
	scheduler, mocks := setupScheduler(t)

	reminder := createReminder(t, at(10, 0), domain.Notifications{
		pendingNotification(domain.ChannelEmail, domain.LeadTime1Hour),
	})

	corrupt := &domain.CorruptRecordsError{
		IDs:  []string{"0192f0a6-0000-7000-8000-000000000001"},
		Errs: []error{domain.ErrInvalidChannel},
	}

	mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return(nil, nil)
	mocks.repo.EXPECT().FindPending(gomock.Any()).Return([]*domain.Reminder{reminder}, corrupt)
	mocks.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
	mocks.repo.EXPECT().UpdateSchedule(gomock.Any(), reminder).Return(nil)

	report := scheduler.RunScan(context.Background(), at(8, 58))

	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 1, report.Dispatched)
	assert.Equal(t, 1, report.StoreFailures)
	require.Len(t, report.Errors, 1)
	assert.ErrorIs(t, report.Errors[0], app.ErrStoreFailure)
	assert.ErrorIs(t, report.Errors[0], domain.ErrCorruptReminder)
}

func TestRunScanContinuesAfterLoadFailure(t *testing.T) {
	scheduler, mocks := setupScheduler(t)

	mocks.repo.EXPECT().FindPending(gomock.Any()).Return(nil, errors.New("timeout"))
	mocks.repo.EXPECT().FindRecurring(gomock.Any()).Return(nil, nil)

	report := scheduler.RunScan(context.Background(), at(9, 0))

	assert.Equal(t, 1, report.StoreFailures)
	require.Len(t, report.Errors, 1)
	assert.ErrorIs(t, report.Err(), app.ErrStoreFailure)
}

func TestScanReportLogValue(t *testing.T) {
	report := app.ScanReport{
		Scanned:    3,
		Dispatched: 2,
		Failed:     1,
		Errors:     []error{fmt.Errorf("dispatch: %w", errors.New("timeout"))},
	}

	value := report.LogValue()
	require.Equal(t, slog.KindGroup, value.Kind())

	attrs := map[string]slog.Value{}
	for _, a := range value.Group() {
		attrs[a.Key] = a.Value
	}

	assert.Equal(t, int64(3), attrs["scanned"].Int64())
	assert.Equal(t, int64(2), attrs["dispatched"].Int64())
	assert.Equal(t, int64(1), attrs["error_count"].Int64())
	assert.Equal(t, "dispatch: timeout", attrs["errors"].String())
}

func TestScanReportLogValueWhenSkipped(t *testing.T) {
	value := app.ScanReport{Skipped: true}.LogValue()

	require.Equal(t, slog.KindGroup, value.Kind())
	require.Len(t, value.Group(), 1)
	assert.Equal(t, "skipped", value.Group()[0].Key)
	assert.True(t, value.Group()[0].Value.Bool())
}
