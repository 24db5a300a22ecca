package domain

import (
	"errors"
	"fmt"
)

var (
	ErrReminderNotFound = errors.New("reminder not found")
	// ErrReminderNotSchedulable: the stored reminder was deleted, deactivated
	// or completed after the scan loaded it.
	ErrReminderNotSchedulable = errors.New("reminder is no longer schedulable")
	ErrCorruptReminder        = errors.New("corrupt reminder record")

	ErrInvalidReminderID = errors.New("invalid reminder ID")
	ErrInvalidUserID     = errors.New("invalid user ID: must be valid UUIDv7")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrZeroTriggerDate   = errors.New("trigger date is required")

	ErrInvalidKind     = errors.New("invalid reminder type")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidCategory = errors.New("invalid category")

	ErrInvalidRepeatRule    = errors.New("invalid repeat rule")
	ErrRepeatEndBeforeStart = errors.New("repeat end date must not be before trigger date")

	ErrInvalidChannel       = errors.New("invalid notification channel")
	ErrInvalidLeadTime      = errors.New("invalid notification lead time")
	ErrInvalidCustomMinutes = errors.New("custom lead time requires custom minutes of at least 1")

	ErrNotificationIndex       = errors.New("notification index out of range")
	ErrNotificationAlreadySent = errors.New("notification is already sent")
	ErrNotificationMissed      = errors.New("notification trigger instant was missed")

	ErrInvalidRelatedKind = errors.New("invalid related item kind")
	ErrInvalidRelatedID   = errors.New("invalid related item ID")

	ErrAlreadyCompleted = errors.New("reminder is already completed")

	ErrDeadlineNotFound = errors.New("deadline not found")
	ErrEventNotFound    = errors.New("event not found")

	ErrInvalidTimeRange   = errors.New("invalid time range: start must be before end")
	ErrInvalidLookAhead   = errors.New("look-ahead window must be positive")
	ErrInvalidRetryPolicy = errors.New("retry horizon and max attempts must not be negative")
)

// CorruptRecordsError lists stored reminders a bulk load had to skip. The
// reminders returned alongside it are valid.
type CorruptRecordsError struct {
	IDs  []string
	Errs []error
}

func (e *CorruptRecordsError) Error() string {
	return fmt.Sprintf("%d corrupt reminder records skipped: %v", len(e.IDs), errors.Join(e.Errs...))
}

func (e *CorruptRecordsError) Unwrap() error {
	return ErrCorruptReminder
}
