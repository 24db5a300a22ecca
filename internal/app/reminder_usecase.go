package app

import (
	"context"
	"time"
)

// Clock returns the current instant. Use cases never call time.Now
// directly.
type Clock func() time.Time

type ReminderUseCase interface {
	CreateReminder(ctx context.Context, input CreateReminderInput) (ReminderOutput, error)
	GetReminder(ctx context.Context, input ReminderRefInput) (ReminderOutput, error)
	ListReminders(ctx context.Context, input ListRemindersInput) (ReminderPageOutput, error)
	UpdateReminder(ctx context.Context, input UpdateReminderInput) (ReminderOutput, error)
	CompleteReminder(ctx context.Context, input ReminderRefInput) (ReminderOutput, error)
	DeleteReminder(ctx context.Context, input ReminderRefInput) error
	UpcomingReminders(ctx context.Context, input ReminderWindowInput) (RemindersOutput, error)
	OverdueReminders(ctx context.Context, input ReminderWindowInput) (RemindersOutput, error)
	ReminderStats(ctx context.Context, input ReminderStatsInput) (ReminderStatsOutput, error)
	NextOccurrence(ctx context.Context, input ReminderRefInput) (NextOccurrenceOutput, error)
	CreateFromDeadline(ctx context.Context, input CreateFromDeadlineInput) (ReminderOutput, error)
	CreateFromEvent(ctx context.Context, input CreateFromEventInput) (ReminderOutput, error)
	SendUrgentNotification(ctx context.Context, input ReminderRefInput) (UrgentNotificationOutput, error)
}

//go:generate mockgen -source=reminder_usecase.go -destination=reminder_usecase_mock.go -package=app
