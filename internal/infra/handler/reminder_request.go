package handler

import (
	"time"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/app"
)

type NotificationRequest struct {
	Channel       string `json:"channel" binding:"required"`
	LeadTime      string `json:"lead_time" binding:"required"`
	CustomMinutes int    `json:"custom_minutes" binding:"omitempty,min=1"`
}

type RelatedItemRequest struct {
	Kind string `json:"kind" binding:"required"`
	ID   string `json:"id" binding:"required,uuid"`
}

type ReminderRequest struct {
	Title         string                `json:"title" binding:"required,max=255"`
	Description   string                `json:"description"`
	Type          string                `json:"type" binding:"required"`
	Date          time.Time             `json:"date" binding:"required"`
	Time          string                `json:"time"`
	Repeat        string                `json:"repeat"`
	RepeatEndDate *time.Time            `json:"repeat_end_date"`
	Notifications []NotificationRequest `json:"notifications" binding:"omitempty,dive"`
	Priority      string                `json:"priority"`
	Category      string                `json:"category"`
	Tags          []string              `json:"tags"`
	Location      string                `json:"location" binding:"max=255"`
	Notes         string                `json:"notes"`
	Color         string                `json:"color"`
	RelatedItem   *RelatedItemRequest   `json:"related_item"`
}

// UpdateReminderRequest replaces every editable field of a reminder.
type UpdateReminderRequest struct {
	ReminderRequest
	IsActive *bool `json:"is_active"`
}

type ListRemindersRequest struct {
	Type     string `form:"type"`
	Category string `form:"category"`
	Status   string `form:"status" binding:"omitempty,oneof=active completed"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type ReminderWindowRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (r ReminderRequest) toFields() app.ReminderFields {
	notifications := make([]app.NotificationInput, 0, len(r.Notifications))
	for _, n := range r.Notifications {
		notifications = append(notifications, app.NotificationInput{
			Channel:       n.Channel,
			LeadTime:      n.LeadTime,
			CustomMinutes: n.CustomMinutes,
		})
	}

	var related *app.RelatedItemInput
	if r.RelatedItem != nil {
		related = &app.RelatedItemInput{
			Kind: r.RelatedItem.Kind,
			ID:   r.RelatedItem.ID,
		}
	}

	return app.ReminderFields{
		Title:         r.Title,
		Description:   r.Description,
		Kind:          r.Type,
		TriggerDate:   r.Date,
		TimeOfDay:     r.Time,
		Repeat:        r.Repeat,
		RepeatEndDate: r.RepeatEndDate,
		Notifications: notifications,
		Priority:      r.Priority,
		Category:      r.Category,
		Tags:          r.Tags,
		Location:      r.Location,
		Notes:         r.Notes,
		Color:         r.Color,
		RelatedItem:   related,
	}
}
