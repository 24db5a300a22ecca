package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
)

func toParams(f ReminderFields) (domain.ReminderParams, error) {
	kind, err := domain.NewKind(f.Kind)
	if err != nil {
		return domain.ReminderParams{}, NewValidationError("type", err.Error())
	}

	repeat, err := domain.NewRepeatRule(f.Repeat)
	if err != nil {
		return domain.ReminderParams{}, NewValidationError("repeat", err.Error())
	}

	priority, err := domain.NewPriority(f.Priority)
	if err != nil {
		return domain.ReminderParams{}, NewValidationError("priority", err.Error())
	}

	category, err := domain.NewCategory(f.Category)
	if err != nil {
		return domain.ReminderParams{}, NewValidationError("category", err.Error())
	}

	notifications := make(domain.Notifications, 0, len(f.Notifications))
	for i, n := range f.Notifications {
		notification, err := domain.NewNotification(n.Channel, n.LeadTime, n.CustomMinutes)
		if err != nil {
			return domain.ReminderParams{}, NewValidationError(
				fmt.Sprintf("notifications[%d]", i), err.Error(),
			)
		}

		notifications = append(notifications, notification)
	}

	var related *domain.RelatedItem
	if f.RelatedItem != nil {
		item, err := domain.NewRelatedItem(f.RelatedItem.Kind, f.RelatedItem.ID)
		if err != nil {
			return domain.ReminderParams{}, NewValidationError("related_item", err.Error())
		}

		related = &item
	}

	tags := make([]string, 0, len(f.Tags))
	for _, tag := range f.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return domain.ReminderParams{
		Title:         f.Title,
		Description:   f.Description,
		Kind:          kind,
		TriggerDate:   f.TriggerDate,
		TimeOfDay:     f.TimeOfDay,
		Repeat:        repeat,
		RepeatEndDate: f.RepeatEndDate,
		Notifications: notifications,
		Priority:      priority,
		Category:      category,
		Tags:          tags,
		Location:      f.Location,
		Notes:         f.Notes,
		Color:         f.Color,
		RelatedItem:   related,
	}, nil
}

// paramsError maps a reminder validation failure to the offending field.
func paramsError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyTitle):
		return NewValidationError("title", err.Error())
	case errors.Is(err, domain.ErrInvalidKind):
		return NewValidationError("type", err.Error())
	case errors.Is(err, domain.ErrZeroTriggerDate):
		return NewValidationError("date", err.Error())
	case errors.Is(err, domain.ErrRepeatEndBeforeStart):
		return NewValidationError("repeat_end_date", err.Error())
	case errors.Is(err, domain.ErrInvalidUserID):
		return NewValidationError("user_id", err.Error())
	default:
		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}
}

func parseItemID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, NewValidationError(field, "must be a valid UUID")
	}

	return id, nil
}
