package domain

import (
	"github.com/google/uuid"
)

// UserID identifies the owner of a reminder. Users are issued by the auth
// service, which mints UUIDv7 identifiers.
type UserID struct {
	value uuid.UUID
}

func UserIDFromString(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, ErrInvalidUserID
	}

	return UserIDFromUUID(id)
}

func UserIDFromUUID(id uuid.UUID) (UserID, error) {
	if id.Version() != 7 {
		return UserID{}, ErrInvalidUserID
	}

	return UserID{value: id}, nil
}

func (u UserID) String() string {
	return u.value.String()
}

func (u UserID) UUID() uuid.UUID {
	return u.value
}

func (u UserID) IsZero() bool {
	return u.value == uuid.Nil
}

func (u UserID) Equals(other UserID) bool {
	return u.value == other.value
}
