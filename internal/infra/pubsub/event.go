package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/observability/tracing"
)

const (
	TopicNotificationPrefix = "reminder.notification."
	TopicNotificationAll    = TopicNotificationPrefix + ">"

	EventTypeNotificationRequested = "reminder.notification.requested"
)

var ErrEmptyChannel = errors.New("notification event has no channel")

// NotificationEvent asks a downstream worker to deliver one notification
// on a channel this service does not deliver itself.
type NotificationEvent struct {
	ReminderID     string    `json:"reminder_id"`
	UserID         string    `json:"user_id"`
	Channel        string    `json:"channel"`
	RecipientName  string    `json:"recipient_name,omitempty"`
	RecipientEmail string    `json:"recipient_email,omitempty"`
	RecipientPhone string    `json:"recipient_phone,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Kind           string    `json:"kind"`
	TriggerDate    time.Time `json:"trigger_date"`
	TimeOfDay      string    `json:"time_of_day,omitempty"`
	Priority       string    `json:"priority"`
	Category       string    `json:"category"`
	Location       string    `json:"location,omitempty"`
	LeadTime       string    `json:"lead_time"`
	RequestedAt    time.Time `json:"requested_at"`
}

// Topic returns the subject a notification for the given channel is
// published on, e.g. reminder.notification.push.
func Topic(channel string) string {
	return TopicNotificationPrefix + channel
}

func newNotificationMessage(ctx context.Context, ev *NotificationEvent) (string, *message.Message, error) {
	if ev.Channel == "" {
		return "", nil, ErrEmptyChannel
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("event_type", EventTypeNotificationRequested)
	msg.Metadata.Set("reminder_id", ev.ReminderID)
	msg.Metadata.Set("user_id", ev.UserID)
	msg.Metadata.Set("channel", ev.Channel)

	// Trace context travels in metadata so consumers can continue the trace.
	tracing.InjectToMap(ctx, msg.Metadata)

	return Topic(ev.Channel), msg, nil
}

// DecodeNotificationEvent is the consumer-side counterpart of the payload
// written by the publishers.
func DecodeNotificationEvent(msg *message.Message) (*NotificationEvent, error) {
	var ev NotificationEvent
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &ev, nil
}
