package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DeadlineSnapshot is the part of a deadline record a reminder is derived from.
type DeadlineSnapshot struct {
	ID          uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	Priority    Priority
}

// EventSnapshot is the part of an event record a reminder is derived from.
type EventSnapshot struct {
	ID          uuid.UUID
	Title       string
	Description string
	Start       time.Time
	Priority    Priority
	Venue       string
}

// CampusItemRepository reads the deadlines and events owned by the
// course-data service.
type CampusItemRepository interface {
	FindDeadline(ctx context.Context, id uuid.UUID) (DeadlineSnapshot, error)
	FindEvent(ctx context.Context, id uuid.UUID) (EventSnapshot, error)
}

//go:generate mockgen -source=campus_item.go -destination=campus_item_mock.go -package=domain

// NewDeadlineReminder anchors a reminder one day before the deadline is due.
func NewDeadlineReminder(owner UserID, d DeadlineSnapshot, now time.Time) (*Reminder, error) {
	related := RelatedItem{kind: RelatedDeadline, id: d.ID}

	return NewReminder(owner, ReminderParams{
		Title:       "Deadline: " + d.Title,
		Description: d.Description,
		Kind:        KindDeadline,
		TriggerDate: d.DueDate.AddDate(0, 0, -1),
		Priority:    d.Priority,
		Category:    CategoryAcademic,
		RelatedItem: &related,
		Notifications: Notifications{
			{channel: ChannelEmail, leadTime: LeadTime1Day},
			{channel: ChannelInApp, leadTime: LeadTime1Hour},
		},
	}, now)
}

// NewEventReminder anchors a reminder one hour before the event starts.
func NewEventReminder(owner UserID, e EventSnapshot, now time.Time) (*Reminder, error) {
	related := RelatedItem{kind: RelatedEvent, id: e.ID}

	return NewReminder(owner, ReminderParams{
		Title:       "Event: " + e.Title,
		Description: e.Description,
		Kind:        KindEvent,
		TriggerDate: e.Start.Add(-time.Hour),
		Priority:    e.Priority,
		Category:    CategorySocial,
		Location:    e.Venue,
		RelatedItem: &related,
		Notifications: Notifications{
			{channel: ChannelEmail, leadTime: LeadTime1Hour},
			{channel: ChannelInApp, leadTime: LeadTime30Min},
		},
	}, now)
}
