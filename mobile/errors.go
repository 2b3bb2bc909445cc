package mobile

import "github.com/MKhiriev/go-pass-vault/internal/app"

// Error is what the host app receives. Its text is the user message; the
// wrapped error stays reachable for Go callers.
type Error struct {
	message string
	err     error
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	return &Error{message: app.MessageFor(err), err: err}
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() error { return e.err }
