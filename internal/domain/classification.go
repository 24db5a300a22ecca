package domain

import "fmt"

// Kind is what the reminder is about. Stored as "type" for compatibility
// with the existing front-end.
type Kind string

const (
	KindDeadline Kind = "deadline"
	KindEvent    Kind = "event"
	KindClass    Kind = "class"
	KindExam     Kind = "exam"
	KindMeeting  Kind = "meeting"
	KindPersonal Kind = "personal"
	KindCustom   Kind = "custom"
)

func NewKind(k string) (Kind, error) {
	switch Kind(k) {
	case KindDeadline, KindEvent, KindClass, KindExam, KindMeeting, KindPersonal, KindCustom:
		return Kind(k), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidKind, k)
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// NewPriority parses p. An empty value yields PriorityMedium.
func NewPriority(p string) (Priority, error) {
	switch Priority(p) {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(p), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidPriority, p)
	}
}

// Color is the accent used when rendering the priority in emails.
func (p Priority) Color() string {
	switch p {
	case PriorityUrgent:
		return "#dc3545"
	case PriorityHigh:
		return "#fd7e14"
	case PriorityMedium:
		return "#ffc107"
	case PriorityLow:
		return "#28a745"
	default:
		return "#6c757d"
	}
}

type Category string

const (
	CategoryAcademic Category = "academic"
	CategoryPersonal Category = "personal"
	CategorySocial   Category = "social"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

// NewCategory parses c. An empty value yields CategoryAcademic.
func NewCategory(c string) (Category, error) {
	switch Category(c) {
	case "":
		return CategoryAcademic, nil
	case CategoryAcademic, CategoryPersonal, CategorySocial, CategoryHealth, CategoryOther:
		return Category(c), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidCategory, c)
	}
}
