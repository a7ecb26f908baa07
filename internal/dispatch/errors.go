package dispatch

import "errors"

// Precondition failures abort a run before any message is attempted and
// before anything is persisted. They are surfaced to the caller, which is
// expected to point the user at the settings page.
var (
	// ErrMissingCredentials means the sender address or password is empty.
	ErrMissingCredentials = errors.New("sender email and password are not configured")

	// ErrBadTemplate means the message template has a placeholder that no
	// contact field can resolve. The template is shared by the whole batch,
	// so this is one batch-wide error.
	ErrBadTemplate = errors.New("message template is invalid")
)

// ConnectionError wraps a failure to connect, negotiate TLS, or authenticate
// with the mail relay. Categorically different from a per-message send
// failure: no recipient was contacted.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "connecting to SMTP server: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
