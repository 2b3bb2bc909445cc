package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyAddress  = errors.New("empty daemon address")
	ErrInvalidHeader = errors.New("missing bearer token in response")
)

// RemoteError is a failed daemon call. Message is the user message sent by
// the daemon; Err is the service sentinel the status maps to.
type RemoteError struct {
	Status  int
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("daemon responded %d: %s", e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// UserMessage returns the daemon's message for display.
func (e *RemoteError) UserMessage() string {
	return e.Message
}
