package app

import "time"

type NotificationInput struct {
	Channel       string
	LeadTime      string
	CustomMinutes int
}

type RelatedItemInput struct {
	Kind string
	ID   string
}

// ReminderFields are the user-editable fields shared by create and update.
type ReminderFields struct {
	Title         string
	Description   string
	Kind          string
	TriggerDate   time.Time
	TimeOfDay     string
	Repeat        string
	RepeatEndDate *time.Time
	Notifications []NotificationInput
	Priority      string
	Category      string
	Tags          []string
	Location      string
	Notes         string
	Color         string
	RelatedItem   *RelatedItemInput
}

type CreateReminderInput struct {
	UserID string
	ReminderFields
}

// UpdateReminderInput replaces every editable field. Active, when set,
// toggles the soft-delete flag.
type UpdateReminderInput struct {
	ID     string
	UserID string
	Active *bool
	ReminderFields
}

type ReminderRefInput struct {
	ID     string
	UserID string
}

type ListRemindersInput struct {
	UserID   string
	Kind     string
	Category string
	Status   string
	Page     int
	Limit    int
}

type ReminderWindowInput struct {
	UserID string
	Limit  int
}

type ReminderStatsInput struct {
	UserID string
}

type CreateFromDeadlineInput struct {
	UserID     string
	DeadlineID string
}

type CreateFromEventInput struct {
	UserID  string
	EventID string
}
