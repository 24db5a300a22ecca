package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
)

type NotificationJSON struct {
	Channel       string     `json:"channel"`
	LeadTime      string     `json:"lead_time"`
	CustomMinutes int        `json:"custom_minutes,omitempty"`
	Sent          bool       `json:"sent"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
	Attempts      int        `json:"attempts,omitempty"`
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
	MissedAt      *time.Time `json:"missed_at,omitempty"`
}

// NotificationsColumn stores the notification list as a jsonb array. It
// must never be nil: the pending-notification query expands the array and
// a json null is not one.
type NotificationsColumn = datatypes.JSONSlice[NotificationJSON]

type ReminderModel struct {
	ID            string                      `gorm:"column:id;type:uuid;primaryKey"`
	UserID        string                      `gorm:"column:user_id;type:uuid;not null;index:idx_reminders_user_id_trigger_date,priority:1"`
	Title         string                      `gorm:"column:title;type:varchar(255);not null"`
	Description   string                      `gorm:"column:description;type:text;not null;default:''"`
	Type          string                      `gorm:"column:type;type:varchar(32);not null"`
	TriggerDate   time.Time                   `gorm:"column:trigger_date;type:timestamptz;not null;index:idx_reminders_user_id_trigger_date,priority:2"`
	TimeOfDay     string                      `gorm:"column:time_of_day;type:varchar(16);not null;default:''"`
	Repeat        string                      `gorm:"column:repeat;type:varchar(16);not null;default:'none'"`
	RepeatEndDate *time.Time                  `gorm:"column:repeat_end_date;type:timestamptz"`
	Notifications NotificationsColumn         `gorm:"column:notifications;type:jsonb;not null"`
	Priority      string                      `gorm:"column:priority;type:varchar(16);not null"`
	Category      string                      `gorm:"column:category;type:varchar(16);not null"`
	Tags          datatypes.JSONSlice[string] `gorm:"column:tags;type:jsonb"`
	Location      string                      `gorm:"column:location;type:varchar(255);not null;default:''"`
	Notes         string                      `gorm:"column:notes;type:text;not null;default:''"`
	Color         string                      `gorm:"column:color;type:varchar(16);not null"`
	RelatedKind   *string                     `gorm:"column:related_kind;type:varchar(16)"`
	RelatedID     *string                     `gorm:"column:related_id;type:uuid"`
	IsActive      bool                        `gorm:"column:is_active;type:boolean;not null;index:idx_reminders_open,priority:1"`
	IsCompleted   bool                        `gorm:"column:is_completed;type:boolean;not null;index:idx_reminders_open,priority:2"`
	CompletedAt   *time.Time                  `gorm:"column:completed_at;type:timestamptz"`
	CreatedAt     time.Time                   `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt     time.Time                   `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (ReminderModel) TableName() string {
	return "reminders"
}

func optionalTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

func (m *ReminderModel) ToEntity() (*domain.Reminder, error) {
	id, err := domain.ReminderIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	owner, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	kind, err := domain.NewKind(m.Type)
	if err != nil {
		return nil, err
	}

	repeat, err := domain.NewRepeatRule(m.Repeat)
	if err != nil {
		return nil, err
	}

	priority, err := domain.NewPriority(m.Priority)
	if err != nil {
		return nil, err
	}

	category, err := domain.NewCategory(m.Category)
	if err != nil {
		return nil, err
	}

	notifications := make(domain.Notifications, 0, len(m.Notifications))
	for _, n := range m.Notifications {
		channel, err := domain.NewChannel(n.Channel)
		if err != nil {
			return nil, err
		}

		leadTime, err := domain.NewLeadTime(n.LeadTime)
		if err != nil {
			return nil, err
		}

		sentAt := optionalTime(n.SentAt)
		if n.Sent && sentAt.IsZero() {
			sentAt = m.UpdatedAt
		}

		notifications = append(notifications, domain.ReconstituteNotification(
			channel,
			leadTime,
			n.CustomMinutes,
			sentAt,
			n.Attempts,
			optionalTime(n.LastAttemptAt),
			n.LastError,
			optionalTime(n.MissedAt),
		))
	}

	var related *domain.RelatedItem
	if m.RelatedKind != nil && m.RelatedID != nil {
		item, err := domain.NewRelatedItem(*m.RelatedKind, *m.RelatedID)
		if err != nil {
			return nil, err
		}

		related = &item
	}

	return domain.ReconstituteReminder(domain.ReminderState{
		ID:            id,
		Owner:         owner,
		Title:         m.Title,
		Description:   m.Description,
		Kind:          kind,
		TriggerDate:   m.TriggerDate,
		TimeOfDay:     m.TimeOfDay,
		Repeat:        repeat,
		RepeatEndDate: m.RepeatEndDate,
		Notifications: notifications,
		Priority:      priority,
		Category:      category,
		Tags:          []string(m.Tags),
		Location:      m.Location,
		Notes:         m.Notes,
		Color:         m.Color,
		RelatedItem:   related,
		Active:        m.IsActive,
		Completed:     m.IsCompleted,
		CompletedAt:   optionalTime(m.CompletedAt),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}), nil
}

func FromEntity(e *domain.Reminder) *ReminderModel {
	notifications := make(NotificationsColumn, 0, e.Notifications().Count())
	for _, n := range e.Notifications().ToSlice() {
		notifications = append(notifications, NotificationJSON{
			Channel:       string(n.Channel()),
			LeadTime:      string(n.LeadTime()),
			CustomMinutes: n.CustomMinutes(),
			Sent:          n.IsSent(),
			SentAt:        timeOrNil(n.SentAt()),
			Attempts:      n.Attempts(),
			LastAttemptAt: timeOrNil(n.LastAttemptAt()),
			LastError:     n.LastError(),
			MissedAt:      timeOrNil(n.MissedAt()),
		})
	}

	m := &ReminderModel{
		ID:            e.ID().String(),
		UserID:        e.Owner().String(),
		Title:         e.Title(),
		Description:   e.Description(),
		Type:          string(e.Kind()),
		TriggerDate:   e.TriggerDate(),
		TimeOfDay:     e.TimeOfDay(),
		Repeat:        string(e.Repeat()),
		RepeatEndDate: e.RepeatEndDate(),
		Notifications: notifications,
		Priority:      string(e.Priority()),
		Category:      string(e.Category()),
		Tags:          datatypes.JSONSlice[string](e.Tags()),
		Location:      e.Location(),
		Notes:         e.Notes(),
		Color:         e.Color(),
		IsActive:      e.IsActive(),
		IsCompleted:   e.IsCompleted(),
		CompletedAt:   timeOrNil(e.CompletedAt()),
		CreatedAt:     e.CreatedAt(),
		UpdatedAt:     e.UpdatedAt(),
	}

	if item := e.RelatedItem(); item != nil {
		kind := string(item.Kind())
		id := item.ID().String()
		m.RelatedKind = &kind
		m.RelatedID = &id
	}

	return m
}

// UserModel is the read side of the users table owned by the auth service.
type UserModel struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Email       string    `gorm:"column:email;type:varchar(255);not null;default:''"`
	Phone       string    `gorm:"column:phone;type:varchar(32);not null;default:''"`
	NotifyEmail bool      `gorm:"column:notify_email;type:boolean;not null"`
	NotifyPush  bool      `gorm:"column:notify_push;type:boolean;not null"`
	NotifySMS   bool      `gorm:"column:notify_sms;type:boolean;not null"`
	NotifyInApp bool      `gorm:"column:notify_in_app;type:boolean;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type DeadlineModel struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey"`
	Title       string    `gorm:"column:title;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text;not null;default:''"`
	DueDate     time.Time `gorm:"column:due_date;type:timestamptz;not null;index"`
	Priority    string    `gorm:"column:priority;type:varchar(16);not null;default:'medium'"`
}

func (DeadlineModel) TableName() string {
	return "deadlines"
}

func (m *DeadlineModel) ToSnapshot() (domain.DeadlineSnapshot, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return domain.DeadlineSnapshot{}, err
	}

	priority, err := domain.NewPriority(m.Priority)
	if err != nil {
		return domain.DeadlineSnapshot{}, err
	}

	return domain.DeadlineSnapshot{
		ID:          id,
		Title:       m.Title,
		Description: m.Description,
		DueDate:     m.DueDate,
		Priority:    priority,
	}, nil
}

type EventModel struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey"`
	Title       string    `gorm:"column:title;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text;not null;default:''"`
	StartAt     time.Time `gorm:"column:start_at;type:timestamptz;not null;index"`
	Venue       string    `gorm:"column:venue;type:varchar(255);not null;default:''"`
	Priority    string    `gorm:"column:priority;type:varchar(16);not null;default:'medium'"`
}

func (EventModel) TableName() string {
	return "events"
}

func (m *EventModel) ToSnapshot() (domain.EventSnapshot, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return domain.EventSnapshot{}, err
	}

	priority, err := domain.NewPriority(m.Priority)
	if err != nil {
		return domain.EventSnapshot{}, err
	}

	return domain.EventSnapshot{
		ID:          id,
		Title:       m.Title,
		Description: m.Description,
		Start:       m.StartAt,
		Priority:    priority,
		Venue:       m.Venue,
	}, nil
}

// Migrate creates or updates every table this service reads or writes.
func Migrate(db interface {
	AutoMigrate(dst ...interface{}) error
}) error {
	return db.AutoMigrate(&ReminderModel{}, &UserModel{}, &DeadlineModel{}, &EventModel{})
}
