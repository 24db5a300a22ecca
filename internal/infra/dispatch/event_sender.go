package dispatch

import (
	"context"
	"time"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/infra/pubsub"
)

// EventSender hands delivery of a channel to a downstream worker by
// publishing a notification event.
type EventSender struct {
	channel   domain.Channel
	publisher pubsub.Publisher
	clock     func() time.Time
}

var _ ChannelSender = (*EventSender)(nil)

func NewEventSender(channel domain.Channel, publisher pubsub.Publisher) *EventSender {
	return &EventSender{
		channel:   channel,
		publisher: publisher,
		clock:     time.Now,
	}
}

func (s *EventSender) Send(ctx context.Context, recipient Recipient, payload Payload) error {
	if s.channel == domain.ChannelSMS && recipient.Phone == "" {
		return Permanent(ErrNoAddress)
	}

	return s.publisher.PublishNotificationRequested(ctx, &pubsub.NotificationEvent{
		ReminderID:     payload.ReminderID,
		UserID:         recipient.UserID.String(),
		Channel:        string(s.channel),
		RecipientName:  recipient.Name,
		RecipientEmail: recipient.Email,
		RecipientPhone: recipient.Phone,
		Title:          payload.Title,
		Description:    payload.Description,
		Kind:           payload.Kind,
		TriggerDate:    payload.TriggerDate,
		TimeOfDay:      payload.TimeOfDay,
		Priority:       string(payload.Priority),
		Category:       payload.Category,
		Location:       payload.Location,
		LeadTime:       payload.LeadTime,
		RequestedAt:    s.clock(),
	})
}
