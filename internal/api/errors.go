package api

import (
	"errors"
	"fmt"
)

// Backend error sentinels. Callers match these with errors.Is to decide how
// to surface a failure; the wrapped text carries the server-supplied message.
var (
	// ErrConflict is returned when the requested interval is already taken.
	ErrConflict = errors.New("time slot already taken")

	// ErrNotFound is returned when a referenced entity no longer exists.
	ErrNotFound = errors.New("not found")

	// ErrTransport is returned when the request never produced a usable
	// response (connection failure, timeout, unparseable body).
	ErrTransport = errors.New("backend unreachable")
)

// StatusError is a non-success response outside the conflict/not-found
// cases. Message is the server-supplied human-readable text and is shown to
// the user verbatim.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend error (HTTP %d): %s", e.Code, e.Message)
}

// IsConflict reports whether the error is a booking collision.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// UserMessage returns the text to show the user for a backend error. For
// status errors that is the server's own message; transport failures get a
// generic line instead of Go's wrapped error chain.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message
	}
	if errors.Is(err, ErrTransport) {
		return "backend unreachable, try again"
	}
	return err.Error()
}
