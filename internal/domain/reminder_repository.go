package domain

import (
	"context"
	"time"
)

type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Status narrows owner listings by completion.
type Status string

const (
	StatusAny       Status = ""
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

type ReminderFilter struct {
	Owner    UserID
	Kind     Kind
	Category Category
	Status   Status
	// Range limits the trigger date to [Start, End) when set. A zero bound
	// is open.
	Range *TimeRange
	// OnlyOpen keeps active, incomplete reminders.
	OnlyOpen bool
	Offset   int
	Limit    int
}

type ReminderRepository interface {
	Save(ctx context.Context, reminder *Reminder) error
	FindByID(ctx context.Context, id ReminderID) (*Reminder, error)
	FindByOwner(ctx context.Context, filter ReminderFilter) ([]*Reminder, error)
	CountByOwner(ctx context.Context, filter ReminderFilter) (int64, error)
	// FindPending returns active, incomplete reminders that still have a
	// notification that is neither sent nor flagged missed. Records that
	// cannot be loaded are skipped and reported with a
	// *CorruptRecordsError next to the valid reminders.
	FindPending(ctx context.Context) ([]*Reminder, error)
	// FindRecurring returns active, incomplete, repeating reminders whose
	// notifications are all settled. Corrupt records are handled as in
	// FindPending.
	FindRecurring(ctx context.Context) ([]*Reminder, error)
	Update(ctx context.Context, reminder *Reminder) error
	// UpdateSchedule writes only the scheduling state of a reminder: its
	// notifications, trigger date and completion. It returns
	// ErrReminderNotSchedulable when the stored reminder is no longer
	// active and incomplete, so a scan never overwrites an owner's change.
	UpdateSchedule(ctx context.Context, reminder *Reminder) error
	Delete(ctx context.Context, id ReminderID) error
	WithTx(ctx context.Context, fn func(repo ReminderRepository) error) error
}

//go:generate mockgen -source=reminder_repository.go -destination=reminder_repository_mock.go -package=domain
