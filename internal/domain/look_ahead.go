package domain

import "time"

const (
	DefaultLookAheadWindow = 5 * time.Minute
	DefaultRetryHorizon    = time.Hour
	DefaultMaxAttempts     = 5
)

type Disposition int

const (
	// DispositionFuture: the trigger instant lies beyond the current window.
	DispositionFuture Disposition = iota
	// DispositionDue: the trigger instant falls within [now, now+window).
	DispositionDue
	// DispositionRetry: an earlier dispatch failed and the retry horizon
	// has not elapsed yet.
	DispositionRetry
	// DispositionMissed: the trigger instant passed without a dispatch
	// attempt inside its window.
	DispositionMissed
	// DispositionSettled: already sent or flagged missed.
	DispositionSettled
)

func (d Disposition) String() string {
	switch d {
	case DispositionFuture:
		return "future"
	case DispositionDue:
		return "due"
	case DispositionRetry:
		return "retry"
	case DispositionMissed:
		return "missed"
	case DispositionSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// LookAhead decides which notifications a single scan should act on.
// The window should match the scan period so consecutive scans cover
// disjoint, adjacent slices of time.
type LookAhead struct {
	window       time.Duration
	retryHorizon time.Duration
	maxAttempts  int
}

func NewLookAhead(window, retryHorizon time.Duration, maxAttempts int) (LookAhead, error) {
	if window <= 0 {
		return LookAhead{}, ErrInvalidLookAhead
	}

	if retryHorizon < 0 || maxAttempts < 0 {
		return LookAhead{}, ErrInvalidRetryPolicy
	}

	return LookAhead{
		window:       window,
		retryHorizon: retryHorizon,
		maxAttempts:  maxAttempts,
	}, nil
}

func MustLookAhead(window, retryHorizon time.Duration, maxAttempts int) LookAhead {
	l, err := NewLookAhead(window, retryHorizon, maxAttempts)
	if err != nil {
		panic(err)
	}

	return l
}

func DefaultLookAhead() LookAhead {
	return MustLookAhead(DefaultLookAheadWindow, DefaultRetryHorizon, DefaultMaxAttempts)
}

func (l LookAhead) Window() time.Duration {
	return l.window
}

func (l LookAhead) RetryHorizon() time.Duration {
	return l.retryHorizon
}

func (l LookAhead) MaxAttempts() int {
	return l.maxAttempts
}

func (l LookAhead) Classify(n Notification, triggerDate, now time.Time) Disposition {
	if n.IsSettled() {
		return DispositionSettled
	}

	instant := n.TriggerInstant(triggerDate)
	windowEnd := now.Add(l.window)

	if !instant.Before(windowEnd) {
		return DispositionFuture
	}

	if !instant.Before(now) {
		return DispositionDue
	}

	if n.attempts > 0 && n.attempts < l.maxAttempts && !instant.Before(now.Add(-l.retryHorizon)) {
		return DispositionRetry
	}

	return DispositionMissed
}
