package app

import (
	"time"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
)

type NotificationOutput struct {
	Channel       string
	LeadTime      string
	CustomMinutes int
	Sent          bool
	SentAt        *time.Time
	Attempts      int
	LastError     string
	MissedAt      *time.Time
}

type RelatedItemOutput struct {
	Kind string
	ID   string
}

type ReminderOutput struct {
	ID            string
	UserID        string
	Title         string
	Description   string
	Kind          string
	TriggerDate   time.Time
	TimeOfDay     string
	Repeat        string
	RepeatEndDate *time.Time
	Notifications []NotificationOutput
	Priority      string
	Category      string
	Tags          []string
	Location      string
	Notes         string
	Color         string
	RelatedItem   *RelatedItemOutput
	Active        bool
	Completed     bool
	CompletedAt   *time.Time
	Overdue       bool
	Today         bool
	Upcoming      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type RemindersOutput struct {
	Reminders []ReminderOutput
	Count     int32
}

type ReminderPageOutput struct {
	Reminders  []ReminderOutput
	Page       int
	TotalPages int
	Total      int64
	HasNext    bool
	HasPrev    bool
}

type ReminderStatsOutput struct {
	Total     int64
	Active    int64
	Completed int64
	Overdue   int64
	Today     int64
}

type NextOccurrenceOutput struct {
	ReminderID string
	Repeat     string
	Next       *time.Time
}

type UrgentNotificationOutput struct {
	ReminderID string
	Delivered  bool
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

// FromEntity maps a reminder to its output. Derived views are evaluated
// at now.
func FromEntity(r *domain.Reminder, now time.Time) ReminderOutput {
	notifications := make([]NotificationOutput, 0, r.Notifications().Count())
	for _, n := range r.Notifications().ToSlice() {
		notifications = append(notifications, NotificationOutput{
			Channel:       string(n.Channel()),
			LeadTime:      string(n.LeadTime()),
			CustomMinutes: n.CustomMinutes(),
			Sent:          n.IsSent(),
			SentAt:        timePtr(n.SentAt()),
			Attempts:      n.Attempts(),
			LastError:     n.LastError(),
			MissedAt:      timePtr(n.MissedAt()),
		})
	}

	var related *RelatedItemOutput
	if item := r.RelatedItem(); item != nil {
		related = &RelatedItemOutput{
			Kind: string(item.Kind()),
			ID:   item.ID().String(),
		}
	}

	return ReminderOutput{
		ID:            r.ID().String(),
		UserID:        r.Owner().String(),
		Title:         r.Title(),
		Description:   r.Description(),
		Kind:          string(r.Kind()),
		TriggerDate:   r.TriggerDate(),
		TimeOfDay:     r.TimeOfDay(),
		Repeat:        string(r.Repeat()),
		RepeatEndDate: r.RepeatEndDate(),
		Notifications: notifications,
		Priority:      string(r.Priority()),
		Category:      string(r.Category()),
		Tags:          r.Tags(),
		Location:      r.Location(),
		Notes:         r.Notes(),
		Color:         r.Color(),
		RelatedItem:   related,
		Active:        r.IsActive(),
		Completed:     r.IsCompleted(),
		CompletedAt:   timePtr(r.CompletedAt()),
		Overdue:       r.IsOverdue(now),
		Today:         r.IsToday(now),
		Upcoming:      r.IsUpcoming(now),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func FromEntities(reminders []*domain.Reminder, now time.Time) RemindersOutput {
	outputs := make([]ReminderOutput, 0, len(reminders))
	for _, r := range reminders {
		outputs = append(outputs, FromEntity(r, now))
	}

	return RemindersOutput{
		Reminders: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
	}
}
