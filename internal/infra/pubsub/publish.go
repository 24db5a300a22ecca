package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
)

func publish(ctx context.Context, publisher message.Publisher, ev *NotificationEvent) error {
	topic, msg, err := newNotificationMessage(ctx, ev)
	if err != nil {
		return err
	}

	if err := publisher.Publish(topic, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish notification event",
			slog.String("event", "notification.publish.fail"),
			slog.String("reminder_id", ev.ReminderID),
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.DebugContext(ctx, "published notification event",
		slog.String("event", "notification.publish"),
		slog.String("reminder_id", ev.ReminderID),
		slog.String("topic", topic),
		slog.String("message_id", msg.UUID),
	)

	return nil
}
