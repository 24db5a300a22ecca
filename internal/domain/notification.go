package domain

import (
	"fmt"
	"time"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
	ChannelSMS   Channel = "sms"
	ChannelInApp Channel = "in-app"
)

func NewChannel(c string) (Channel, error) {
	switch Channel(c) {
	case ChannelEmail, ChannelPush, ChannelSMS, ChannelInApp:
		return Channel(c), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidChannel, c)
	}
}

type LeadTime string

const (
	LeadTime15Min  LeadTime = "15min"
	LeadTime30Min  LeadTime = "30min"
	LeadTime1Hour  LeadTime = "1hour"
	LeadTime1Day   LeadTime = "1day"
	LeadTime1Week  LeadTime = "1week"
	LeadTimeCustom LeadTime = "custom"
)

func NewLeadTime(l string) (LeadTime, error) {
	switch LeadTime(l) {
	case LeadTime15Min, LeadTime30Min, LeadTime1Hour, LeadTime1Day, LeadTime1Week, LeadTimeCustom:
		return LeadTime(l), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidLeadTime, l)
	}
}

// Offset returns how long before the trigger date the lead time fires.
// Unknown lead times fire at the trigger date itself.
func (l LeadTime) Offset(customMinutes int) time.Duration {
	switch l {
	case LeadTime15Min:
		return 15 * time.Minute
	case LeadTime30Min:
		return 30 * time.Minute
	case LeadTime1Hour:
		return time.Hour
	case LeadTime1Day:
		return 24 * time.Hour
	case LeadTime1Week:
		return 7 * 24 * time.Hour
	case LeadTimeCustom:
		if customMinutes <= 0 {
			return 0
		}

		return time.Duration(customMinutes) * time.Minute
	default:
		return 0
	}
}

// Notification is one delivery configured on a reminder. It is a value;
// state transitions return a modified copy.
type Notification struct {
	channel       Channel
	leadTime      LeadTime
	customMinutes int
	sent          bool
	sentAt        time.Time
	attempts      int
	lastAttemptAt time.Time
	lastError     string
	missedAt      time.Time
}

func NewNotification(channel, leadTime string, customMinutes int) (Notification, error) {
	c, err := NewChannel(channel)
	if err != nil {
		return Notification{}, err
	}

	l, err := NewLeadTime(leadTime)
	if err != nil {
		return Notification{}, err
	}

	if l == LeadTimeCustom && customMinutes < 1 {
		return Notification{}, ErrInvalidCustomMinutes
	}

	if l != LeadTimeCustom {
		customMinutes = 0
	}

	return Notification{
		channel:       c,
		leadTime:      l,
		customMinutes: customMinutes,
	}, nil
}

// ReconstituteNotification rebuilds persisted state without validation.
// A zero sentAt on a sent notification is not representable, so sent is
// derived from sentAt.
func ReconstituteNotification(
	channel Channel,
	leadTime LeadTime,
	customMinutes int,
	sentAt time.Time,
	attempts int,
	lastAttemptAt time.Time,
	lastError string,
	missedAt time.Time,
) Notification {
	return Notification{
		channel:       channel,
		leadTime:      leadTime,
		customMinutes: customMinutes,
		sent:          !sentAt.IsZero(),
		sentAt:        sentAt,
		attempts:      attempts,
		lastAttemptAt: lastAttemptAt,
		lastError:     lastError,
		missedAt:      missedAt,
	}
}

func (n Notification) Channel() Channel {
	return n.channel
}

func (n Notification) LeadTime() LeadTime {
	return n.leadTime
}

func (n Notification) CustomMinutes() int {
	return n.customMinutes
}

func (n Notification) Offset() time.Duration {
	return n.leadTime.Offset(n.customMinutes)
}

// TriggerInstant is the moment the notification fires for the given
// trigger date.
func (n Notification) TriggerInstant(triggerDate time.Time) time.Time {
	return triggerDate.Add(-n.Offset())
}

func (n Notification) IsSent() bool {
	return n.sent
}

func (n Notification) SentAt() time.Time {
	return n.sentAt
}

func (n Notification) Attempts() int {
	return n.attempts
}

func (n Notification) LastAttemptAt() time.Time {
	return n.lastAttemptAt
}

func (n Notification) LastError() string {
	return n.lastError
}

func (n Notification) IsMissed() bool {
	return !n.missedAt.IsZero()
}

func (n Notification) MissedAt() time.Time {
	return n.missedAt
}

// IsSettled reports whether the scheduler is done with the notification
// for the current occurrence.
func (n Notification) IsSettled() bool {
	return n.sent || n.IsMissed()
}

func (n Notification) markSent(at time.Time) (Notification, error) {
	if n.sent {
		return n, ErrNotificationAlreadySent
	}

	if n.IsMissed() {
		return n, ErrNotificationMissed
	}

	n.sent = true
	n.sentAt = at
	n.lastError = ""

	return n, nil
}

func (n Notification) recordAttempt(at time.Time, cause string) Notification {
	n.attempts++
	n.lastAttemptAt = at
	n.lastError = cause

	return n
}

func (n Notification) markMissed(at time.Time) Notification {
	n.missedAt = at

	return n
}

// rearmed returns a fresh, unsent copy for the next occurrence.
func (n Notification) rearmed() Notification {
	return Notification{
		channel:       n.channel,
		leadTime:      n.leadTime,
		customMinutes: n.customMinutes,
	}
}

type Notifications []Notification

// DefaultNotifications is used when a reminder is created without any.
func DefaultNotifications() Notifications {
	return Notifications{
		{channel: ChannelInApp, leadTime: LeadTime1Hour},
		{channel: ChannelEmail, leadTime: LeadTime1Day},
	}
}

func (ns Notifications) ToSlice() []Notification {
	return ns
}

func (ns Notifications) Count() int {
	return len(ns)
}

func (ns Notifications) HasPending() bool {
	for _, n := range ns {
		if !n.IsSettled() {
			return true
		}
	}

	return false
}

func (ns Notifications) clone() Notifications {
	if ns == nil {
		return nil
	}

	out := make(Notifications, len(ns))
	copy(out, ns)

	return out
}
