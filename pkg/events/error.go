package events

import (
	"fmt"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type Kind int

const (
	NotFound Kind = iota + 1
	InvalidStoredEvent
	NotEventOwner
	DatabaseQueryFailed
	UnknownSdkError
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case InvalidStoredEvent:
		return "InvalidStoredEvent"
	case NotEventOwner:
		return "NotEventOwner"
	case DatabaseQueryFailed:
		return "DatabaseQueryFailed"
	case UnknownSdkError:
		return "UnknownSdkError"
	default:
		return "Unknown"
	}
}

// Error is an event level failure
type Error struct {
	Kind Kind
	Id   uuid.UUID
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case NotFound:
		return fmt.Sprintf("no such event: %s", e.Id)
	case InvalidStoredEvent:
		return fmt.Sprintf("stored event is invalid: %s: %s", e.Id, e.Err)
	case NotEventOwner:
		return fmt.Sprintf("not the owner of event: %s", e.Id)
	case DatabaseQueryFailed:
		return fmt.Sprintf("database query failed: %s", e.Err)
	case UnknownSdkError:
		return fmt.Sprintf("unexpected store error: %s", e.Err)
	default:
		return fmt.Sprintf("event error: %s", e.Id)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// User is true when the caller can correct the failure
func (e *Error) User() bool {
	switch e.Kind {
	case NotFound, NotEventOwner:
		return true
	default:
		return false
	}
}

func ErrorKind(err error) (Kind, bool) {
	var e *Error

	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}

// ErrorNotFound returns true if err is a missing event
func ErrorNotFound(err error) bool {
	k, ok := ErrorKind(err)
	return ok && k == NotFound
}
