package dispatch

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
)

// LogSender records the notification in the log and reports it delivered.
// It stands in for channels without a configured transport.
type LogSender struct {
	channel domain.Channel
}

func NewLogSender(channel domain.Channel) *LogSender {
	return &LogSender{channel: channel}
}

func (s *LogSender) Send(ctx context.Context, recipient Recipient, payload Payload) error {
	slog.InfoContext(ctx, "notification delivered to log",
		slog.String("event", "notification.log"),
		slog.String("channel", string(s.channel)),
		slog.String("user_id", recipient.UserID.String()),
		slog.String("reminder_id", payload.ReminderID),
		slog.String("title", payload.Title),
	)

	return nil
}
