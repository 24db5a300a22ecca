package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
)

// ChannelRouter resolves the recipient, enforces channel opt-outs and hands
// the payload to the sender registered for the channel.
type ChannelRouter struct {
	directory RecipientDirectory
	senders   map[domain.Channel]ChannelSender
}

var _ Dispatcher = (*ChannelRouter)(nil)

func NewChannelRouter(directory RecipientDirectory, senders map[domain.Channel]ChannelSender) *ChannelRouter {
	registered := make(map[domain.Channel]ChannelSender, len(senders))
	for c, s := range senders {
		if s != nil {
			registered[c] = s
		}
	}

	return &ChannelRouter{
		directory: directory,
		senders:   registered,
	}
}

func (r *ChannelRouter) Dispatch(ctx context.Context, req Request) error {
	sender, ok := r.senders[req.Channel]
	if !ok {
		return Permanent(fmt.Errorf("%w: %s", ErrUnsupportedChannel, req.Channel))
	}

	recipient, err := r.directory.FindRecipient(ctx, req.Recipient)
	if err != nil {
		if errors.Is(err, ErrRecipientNotFound) {
			return Permanent(err)
		}

		return fmt.Errorf("failed to resolve recipient: %w", err)
	}

	if !recipient.Preferences.Allows(req.Channel) {
		slog.InfoContext(ctx, "recipient opted out of channel",
			slog.String("event", "notification.dispatch.opted_out"),
			slog.String("user_id", req.Recipient.String()),
			slog.String("channel", string(req.Channel)),
			slog.String("reminder_id", req.Payload.ReminderID),
		)

		return Permanent(fmt.Errorf("%w: %s", ErrRecipientOptedOut, req.Channel))
	}

	if err := sender.Send(ctx, recipient, req.Payload); err != nil {
		return err
	}

	slog.DebugContext(ctx, "notification dispatched",
		slog.String("event", "notification.dispatch"),
		slog.String("user_id", req.Recipient.String()),
		slog.String("channel", string(req.Channel)),
		slog.String("reminder_id", req.Payload.ReminderID),
	)

	return nil
}
