package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type RelatedKind string

const (
	RelatedDeadline RelatedKind = "deadline"
	RelatedEvent    RelatedKind = "event"
	RelatedClass    RelatedKind = "class"
	RelatedNotice   RelatedKind = "notice"
)

func NewRelatedKind(k string) (RelatedKind, error) {
	switch RelatedKind(k) {
	case RelatedDeadline, RelatedEvent, RelatedClass, RelatedNotice:
		return RelatedKind(k), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidRelatedKind, k)
	}
}

// RelatedItem is a tagged reference to the campus record a reminder was
// created for. The referenced record lives in another collection and is
// resolved through a per-kind lookup.
type RelatedItem struct {
	kind RelatedKind
	id   uuid.UUID
}

func NewRelatedItem(kind, id string) (RelatedItem, error) {
	k, err := NewRelatedKind(kind)
	if err != nil {
		return RelatedItem{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil || parsed == uuid.Nil {
		return RelatedItem{}, ErrInvalidRelatedID
	}

	return RelatedItem{kind: k, id: parsed}, nil
}

func (r RelatedItem) Kind() RelatedKind {
	return r.kind
}

func (r RelatedItem) ID() uuid.UUID {
	return r.id
}

func (r RelatedItem) String() string {
	return string(r.kind) + ":" + r.id.String()
}
