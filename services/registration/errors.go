package registration

import "errors"

// ValidationError blocks a step transition. The user corrects the input and
// retries; wizard state is never changed by a failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ExternalServiceError wraps a backend failure already mapped to a fixed
// user-facing message. It is never retried automatically.
type ExternalServiceError struct {
	Message string
	Err     error
}

func (e ExternalServiceError) Error() string { return e.Message }

func (e ExternalServiceError) Unwrap() error { return e.Err }

// ErrSubmitInFlight is returned when a submit arrives while a prior submit on
// the same session has not resolved yet. The duplicate is suppressed.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// ErrSessionNotFound is returned when no registration session exists for the
// given session ID.
var ErrSessionNotFound = errors.New("registration session not found or expired")
