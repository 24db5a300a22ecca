package handler

import (
	"time"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/app"
)

type NotificationResponse struct {
	Channel       string     `json:"channel"`
	LeadTime      string     `json:"lead_time"`
	CustomMinutes int        `json:"custom_minutes,omitempty"`
	Sent          bool       `json:"sent"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
	Attempts      int        `json:"attempts"`
	LastError     string     `json:"last_error,omitempty"`
	MissedAt      *time.Time `json:"missed_at,omitempty"`
}

type RelatedItemResponse struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type ReminderResponse struct {
	ID            string                 `json:"id"`
	UserID        string                 `json:"user_id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Type          string                 `json:"type"`
	Date          time.Time              `json:"date"`
	Time          string                 `json:"time"`
	Repeat        string                 `json:"repeat"`
	RepeatEndDate *time.Time             `json:"repeat_end_date,omitempty"`
	Notifications []NotificationResponse `json:"notifications"`
	Priority      string                 `json:"priority"`
	Category      string                 `json:"category"`
	Tags          []string               `json:"tags"`
	Location      string                 `json:"location"`
	Notes         string                 `json:"notes"`
	Color         string                 `json:"color"`
	RelatedItem   *RelatedItemResponse   `json:"related_item,omitempty"`
	IsActive      bool                   `json:"is_active"`
	IsCompleted   bool                   `json:"is_completed"`
	CompletedAt   *time.Time             `json:"completed_at,omitempty"`
	IsOverdue     bool                   `json:"is_overdue"`
	IsToday       bool                   `json:"is_today"`
	IsUpcoming    bool                   `json:"is_upcoming"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type RemindersResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Count     int32              `json:"count"`
}

type PaginationResponse struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	Total      int64 `json:"total"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

type ReminderPageResponse struct {
	Reminders  []ReminderResponse `json:"reminders"`
	Pagination PaginationResponse `json:"pagination"`
}

type ReminderStatsResponse struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
	Overdue   int64 `json:"overdue"`
	Today     int64 `json:"today"`
}

type NextOccurrenceResponse struct {
	ReminderID     string     `json:"reminder_id"`
	Repeat         string     `json:"repeat"`
	NextOccurrence *time.Time `json:"next_occurrence"`
}

type UrgentNotificationResponse struct {
	ReminderID string `json:"reminder_id"`
	Delivered  bool   `json:"delivered"`
}

type ScanResponse struct {
	Scanned       int `json:"scanned"`
	Dispatched    int `json:"dispatched"`
	Suppressed    int `json:"suppressed"`
	Failed        int `json:"failed"`
	Missed        int `json:"missed"`
	StoreFailures int `json:"store_failures"`
	Rescheduled   int `json:"rescheduled"`
	Expired       int `json:"expired"`
	Withdrawn     int `json:"withdrawn"`
	ErrorCount    int `json:"error_count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func FromDTO(output app.ReminderOutput) ReminderResponse {
	notifications := make([]NotificationResponse, 0, len(output.Notifications))
	for _, n := range output.Notifications {
		notifications = append(notifications, NotificationResponse{
			Channel:       n.Channel,
			LeadTime:      n.LeadTime,
			CustomMinutes: n.CustomMinutes,
			Sent:          n.Sent,
			SentAt:        n.SentAt,
			Attempts:      n.Attempts,
			LastError:     n.LastError,
			MissedAt:      n.MissedAt,
		})
	}

	var related *RelatedItemResponse
	if output.RelatedItem != nil {
		related = &RelatedItemResponse{
			Kind: output.RelatedItem.Kind,
			ID:   output.RelatedItem.ID,
		}
	}

	tags := output.Tags
	if tags == nil {
		tags = []string{}
	}

	return ReminderResponse{
		ID:            output.ID,
		UserID:        output.UserID,
		Title:         output.Title,
		Description:   output.Description,
		Type:          output.Kind,
		Date:          output.TriggerDate,
		Time:          output.TimeOfDay,
		Repeat:        output.Repeat,
		RepeatEndDate: output.RepeatEndDate,
		Notifications: notifications,
		Priority:      output.Priority,
		Category:      output.Category,
		Tags:          tags,
		Location:      output.Location,
		Notes:         output.Notes,
		Color:         output.Color,
		RelatedItem:   related,
		IsActive:      output.Active,
		IsCompleted:   output.Completed,
		CompletedAt:   output.CompletedAt,
		IsOverdue:     output.Overdue,
		IsToday:       output.Today,
		IsUpcoming:    output.Upcoming,
		CreatedAt:     output.CreatedAt,
		UpdatedAt:     output.UpdatedAt,
	}
}

func FromDTOs(output app.RemindersOutput) RemindersResponse {
	reminders := make([]ReminderResponse, 0, len(output.Reminders))
	for _, r := range output.Reminders {
		reminders = append(reminders, FromDTO(r))
	}

	return RemindersResponse{
		Reminders: reminders,
		Count:     output.Count,
	}
}

func FromPageDTO(output app.ReminderPageOutput) ReminderPageResponse {
	reminders := make([]ReminderResponse, 0, len(output.Reminders))
	for _, r := range output.Reminders {
		reminders = append(reminders, FromDTO(r))
	}

	return ReminderPageResponse{
		Reminders: reminders,
		Pagination: PaginationResponse{
			Page:       output.Page,
			TotalPages: output.TotalPages,
			Total:      output.Total,
			HasNext:    output.HasNext,
			HasPrev:    output.HasPrev,
		},
	}
}

func FromScanReport(report app.ScanReport) ScanResponse {
	return ScanResponse{
		Scanned:       report.Scanned,
		Dispatched:    report.Dispatched,
		Suppressed:    report.Suppressed,
		Failed:        report.Failed,
		Missed:        report.Missed,
		StoreFailures: report.StoreFailures,
		Rescheduled:   report.Rescheduled,
		Expired:       report.Expired,
		Withdrawn:     report.Withdrawn,
		ErrorCount:    len(report.Errors),
	}
}
