package dispatch

import (
	"context"
	"time"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
)

//go:generate mockgen -source=dispatcher.go -destination=dispatcher_mock.go -package=dispatch

// Dispatcher delivers one notification of a reminder to its owner.
// Errors wrapped with Permanent mean the target can never be reached on
// that channel; any other error is transient.
type Dispatcher interface {
	Dispatch(ctx context.Context, req Request) error
}

// ChannelSender is the transport behind a single channel.
type ChannelSender interface {
	Send(ctx context.Context, recipient Recipient, payload Payload) error
}

// RecipientDirectory resolves a reminder owner into a contactable recipient.
type RecipientDirectory interface {
	FindRecipient(ctx context.Context, id domain.UserID) (Recipient, error)
}

type Request struct {
	Channel   domain.Channel
	Recipient domain.UserID
	Payload   Payload
}

type Recipient struct {
	UserID      domain.UserID
	Name        string
	Email       string
	Phone       string
	Preferences Preferences
}

// Preferences are the per-channel opt-ins of a user.
type Preferences struct {
	Email bool
	Push  bool
	SMS   bool
	InApp bool
}

func (p Preferences) Allows(c domain.Channel) bool {
	switch c {
	case domain.ChannelEmail:
		return p.Email
	case domain.ChannelPush:
		return p.Push
	case domain.ChannelSMS:
		return p.SMS
	case domain.ChannelInApp:
		return p.InApp
	default:
		return false
	}
}

// Payload is the rendered content of a reminder notification.
type Payload struct {
	ReminderID  string
	Title       string
	Description string
	Kind        string
	TriggerDate time.Time
	TimeOfDay   string
	Priority    domain.Priority
	Category    string
	Location    string
	Notes       string
	LeadTime    string
}

func PayloadFromReminder(r *domain.Reminder, n domain.Notification) Payload {
	return Payload{
		ReminderID:  r.ID().String(),
		Title:       r.Title(),
		Description: r.Description(),
		Kind:        string(r.Kind()),
		TriggerDate: r.TriggerDate(),
		TimeOfDay:   r.TimeOfDay(),
		Priority:    r.Priority(),
		Category:    string(r.Category()),
		Location:    r.Location(),
		Notes:       r.Notes(),
		LeadTime:    string(n.LeadTime()),
	}
}
