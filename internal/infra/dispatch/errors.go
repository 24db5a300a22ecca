package dispatch

import (
	"errors"
	"fmt"
)

var (
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrRecipientOptedOut  = errors.New("recipient opted out of channel")
	ErrNoAddress          = errors.New("recipient has no address for channel")
	ErrUnsupportedChannel = errors.New("no sender registered for channel")
)

// PermanentError marks a failure that retrying cannot fix.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return fmt.Sprintf("permanent dispatch failure: %v", e.Err)
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return &PermanentError{Err: err}
}

func IsPermanent(err error) bool {
	var permanentErr *PermanentError
	return errors.As(err, &permanentErr)
}
