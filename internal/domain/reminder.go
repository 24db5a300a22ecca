package domain

import (
	"strings"
	"time"
)

const DefaultColor = "#8B5CF6"

type Reminder struct {
	id            ReminderID
	owner         UserID
	title         string
	description   string
	kind          Kind
	triggerDate   time.Time
	timeOfDay     string
	repeat        RepeatRule
	repeatEndDate *time.Time
	notifications Notifications
	priority      Priority
	category      Category
	tags          []string
	location      string
	notes         string
	color         string
	relatedItem   *RelatedItem
	active        bool
	completed     bool
	completedAt   time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// ReminderParams carries the user-editable fields of a reminder.
type ReminderParams struct {
	Title         string
	Description   string
	Kind          Kind
	TriggerDate   time.Time
	TimeOfDay     string
	Repeat        RepeatRule
	RepeatEndDate *time.Time
	Notifications Notifications
	Priority      Priority
	Category      Category
	Tags          []string
	Location      string
	Notes         string
	Color         string
	RelatedItem   *RelatedItem
}

func (p ReminderParams) validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}

	if p.Kind == "" {
		return ErrInvalidKind
	}

	if p.TriggerDate.IsZero() {
		return ErrZeroTriggerDate
	}

	if p.RepeatEndDate != nil && p.RepeatEndDate.Before(p.TriggerDate) {
		return ErrRepeatEndBeforeStart
	}

	return nil
}

func NewReminder(owner UserID, p ReminderParams, now time.Time) (*Reminder, error) {
	if owner.IsZero() {
		return nil, ErrInvalidUserID
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	notifications := p.Notifications.clone()
	if len(notifications) == 0 {
		notifications = DefaultNotifications()
	}

	r := &Reminder{
		id:            NewReminderID(),
		owner:         owner,
		notifications: notifications,
		active:        true,
		createdAt:     now,
		updatedAt:     now,
	}
	r.apply(p)

	return r, nil
}

// ReminderState is the full persisted state of a reminder.
type ReminderState struct {
	ID            ReminderID
	Owner         UserID
	Title         string
	Description   string
	Kind          Kind
	TriggerDate   time.Time
	TimeOfDay     string
	Repeat        RepeatRule
	RepeatEndDate *time.Time
	Notifications Notifications
	Priority      Priority
	Category      Category
	Tags          []string
	Location      string
	Notes         string
	Color         string
	RelatedItem   *RelatedItem
	Active        bool
	Completed     bool
	CompletedAt   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstituteReminder(s ReminderState) *Reminder {
	return &Reminder{
		id:            s.ID,
		owner:         s.Owner,
		title:         s.Title,
		description:   s.Description,
		kind:          s.Kind,
		triggerDate:   s.TriggerDate,
		timeOfDay:     s.TimeOfDay,
		repeat:        s.Repeat,
		repeatEndDate: s.RepeatEndDate,
		notifications: s.Notifications,
		priority:      s.Priority,
		category:      s.Category,
		tags:          s.Tags,
		location:      s.Location,
		notes:         s.Notes,
		color:         s.Color,
		relatedItem:   s.RelatedItem,
		active:        s.Active,
		completed:     s.Completed,
		completedAt:   s.CompletedAt,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

func (r *Reminder) apply(p ReminderParams) {
	r.title = strings.TrimSpace(p.Title)
	r.description = strings.TrimSpace(p.Description)
	r.kind = p.Kind
	r.triggerDate = p.TriggerDate
	r.timeOfDay = strings.TrimSpace(p.TimeOfDay)
	r.repeat = p.Repeat
	if r.repeat == "" {
		r.repeat = RepeatNone
	}
	r.repeatEndDate = p.RepeatEndDate
	r.priority = p.Priority
	if r.priority == "" {
		r.priority = PriorityMedium
	}
	r.category = p.Category
	if r.category == "" {
		r.category = CategoryAcademic
	}
	r.tags = p.Tags
	r.location = strings.TrimSpace(p.Location)
	r.notes = strings.TrimSpace(p.Notes)
	r.color = p.Color
	if r.color == "" {
		r.color = DefaultColor
	}
	r.relatedItem = p.RelatedItem
}

// Update replaces the editable fields. Delivery state of existing
// notifications is kept unless p carries a new notification list.
func (r *Reminder) Update(p ReminderParams, now time.Time) error {
	if err := p.validate(); err != nil {
		return err
	}

	r.apply(p)

	if len(p.Notifications) > 0 {
		r.notifications = p.Notifications.clone()
	}

	r.updatedAt = now

	return nil
}

func (r *Reminder) SetActive(active bool, now time.Time) {
	r.active = active
	r.updatedAt = now
}

// MarkCompleted is terminal: no notification is dispatched afterwards.
func (r *Reminder) MarkCompleted(now time.Time) error {
	if r.completed {
		return ErrAlreadyCompleted
	}

	r.completed = true
	r.completedAt = now
	r.updatedAt = now

	return nil
}

func (r *Reminder) notificationAt(i int) (Notification, error) {
	if i < 0 || i >= len(r.notifications) {
		return Notification{}, ErrNotificationIndex
	}

	return r.notifications[i], nil
}

func (r *Reminder) MarkNotificationSent(i int, at time.Time) error {
	n, err := r.notificationAt(i)
	if err != nil {
		return err
	}

	n, err = n.markSent(at)
	if err != nil {
		return err
	}

	r.notifications[i] = n
	r.updatedAt = at

	return nil
}

func (r *Reminder) RecordNotificationAttempt(i int, at time.Time, cause string) error {
	n, err := r.notificationAt(i)
	if err != nil {
		return err
	}

	if n.IsSettled() {
		return ErrNotificationAlreadySent
	}

	r.notifications[i] = n.recordAttempt(at, cause)
	r.updatedAt = at

	return nil
}

func (r *Reminder) MarkNotificationMissed(i int, at time.Time) error {
	n, err := r.notificationAt(i)
	if err != nil {
		return err
	}

	if n.IsSettled() {
		return ErrNotificationAlreadySent
	}

	r.notifications[i] = n.markMissed(at)
	r.updatedAt = at

	return nil
}

// NextOccurrence resolves the next occurrence after now. Completed
// reminders never recur.
func (r *Reminder) NextOccurrence(now time.Time) (time.Time, bool) {
	if r.completed {
		return time.Time{}, false
	}

	return NextOccurrence(r.triggerDate, r.repeat, r.repeatEndDate, now)
}

// Rollover is the outcome of RollForward.
type Rollover int

const (
	// RolloverNone: the current occurrence is not finished yet.
	RolloverNone Rollover = iota
	// RolloverAdvanced: the reminder moved to its next occurrence.
	RolloverAdvanced
	// RolloverExpired: no occurrence is left before the repeat end date;
	// the reminder is completed.
	RolloverExpired
)

// AwaitsRollover reports whether a repeating reminder is done with its
// current occurrence. Every notification must be settled, and either the
// occurrence has passed or a notification of the following occurrence
// falls before windowEnd. The second case lets lead times as long as the
// repeat period fire on the scan that rolls the reminder.
func (r *Reminder) AwaitsRollover(now, windowEnd time.Time) bool {
	if r.completed || !r.repeat.Repeats() || r.notifications.HasPending() {
		return false
	}

	if !r.triggerDate.After(now) {
		return true
	}

	next, ok := r.followingOccurrence(now)
	if !ok {
		return false
	}

	return r.earliestInstant(next).Before(windowEnd)
}

// followingOccurrence is the first occurrence after both the current
// trigger date and now.
func (r *Reminder) followingOccurrence(now time.Time) (time.Time, bool) {
	ref := now
	if r.triggerDate.After(now) {
		ref = r.triggerDate
	}

	return NextOccurrence(r.triggerDate, r.repeat, r.repeatEndDate, ref)
}

func (r *Reminder) earliestInstant(occurrence time.Time) time.Time {
	earliest := occurrence

	for _, n := range r.notifications {
		if t := n.TriggerInstant(occurrence); t.Before(earliest) {
			earliest = t
		}
	}

	return earliest
}

// RollForward moves a reminder awaiting rollover to its next occurrence and
// re-arms its notifications. When the recurrence has expired the reminder
// is completed instead, so it is handled once.
func (r *Reminder) RollForward(now, windowEnd time.Time) (Rollover, time.Time) {
	if !r.AwaitsRollover(now, windowEnd) {
		return RolloverNone, time.Time{}
	}

	next, ok := r.followingOccurrence(now)
	if !ok {
		r.completed = true
		r.completedAt = now
		r.updatedAt = now

		return RolloverExpired, time.Time{}
	}

	rearmed := make(Notifications, len(r.notifications))
	for i, n := range r.notifications {
		rearmed[i] = n.rearmed()
	}

	r.triggerDate = next
	r.notifications = rearmed
	r.updatedAt = now

	return RolloverAdvanced, next
}

func (r *Reminder) IsOverdue(now time.Time) bool {
	return now.After(r.triggerDate) && !r.completed
}

// IsToday compares calendar days in now's location.
func (r *Reminder) IsToday(now time.Time) bool {
	t := r.triggerDate.In(now.Location())

	return t.Year() == now.Year() && t.YearDay() == now.YearDay()
}

// IsUpcoming reports whether the trigger date is within the next 24 hours.
func (r *Reminder) IsUpcoming(now time.Time) bool {
	until := r.triggerDate.Sub(now)

	return until > 0 && until <= 24*time.Hour && !r.completed
}

func (r *Reminder) OwnedBy(user UserID) bool {
	return r.owner.Equals(user)
}

// Clone returns an independent copy, used to roll back in-memory changes
// when persisting them fails.
func (r *Reminder) Clone() *Reminder {
	c := *r
	c.notifications = r.notifications.clone()

	if r.tags != nil {
		c.tags = append([]string(nil), r.tags...)
	}

	return &c
}

func (r *Reminder) ID() ReminderID {
	return r.id
}

func (r *Reminder) Owner() UserID {
	return r.owner
}

func (r *Reminder) Title() string {
	return r.title
}

func (r *Reminder) Description() string {
	return r.description
}

func (r *Reminder) Kind() Kind {
	return r.kind
}

func (r *Reminder) TriggerDate() time.Time {
	return r.triggerDate
}

func (r *Reminder) TimeOfDay() string {
	return r.timeOfDay
}

func (r *Reminder) Repeat() RepeatRule {
	return r.repeat
}

func (r *Reminder) RepeatEndDate() *time.Time {
	return r.repeatEndDate
}

func (r *Reminder) Notifications() Notifications {
	return r.notifications
}

func (r *Reminder) Priority() Priority {
	return r.priority
}

func (r *Reminder) Category() Category {
	return r.category
}

func (r *Reminder) Tags() []string {
	return r.tags
}

func (r *Reminder) Location() string {
	return r.location
}

func (r *Reminder) Notes() string {
	return r.notes
}

func (r *Reminder) Color() string {
	return r.color
}

func (r *Reminder) RelatedItem() *RelatedItem {
	return r.relatedItem
}

func (r *Reminder) IsActive() bool {
	return r.active
}

func (r *Reminder) IsCompleted() bool {
	return r.completed
}

func (r *Reminder) CompletedAt() time.Time {
	return r.completedAt
}

func (r *Reminder) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reminder) UpdatedAt() time.Time {
	return r.updatedAt
}
