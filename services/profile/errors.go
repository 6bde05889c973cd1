package profile

import "errors"

// ErrSubmitInFlight suppresses a duplicate document submission while a prior
// one on the same account has not resolved.
var ErrSubmitInFlight = errors.New("a document submission is already in progress")

// ValidationError blocks a transition or a document selection. The checklist
// state is never changed by a failed validation.
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

// PreconditionError is fatal to the specific action that raised it (for
// example, no authenticated session); other state is untouched.
type PreconditionError struct {
	Message string
}

func (e PreconditionError) Error() string { return e.Message }

// PartialFailureError reports a submit that failed partway: some documents
// may have been uploaded, but no aggregate record was written and the staged
// set is preserved for a manual retry.
type PartialFailureError struct {
	Err error
}

func (e PartialFailureError) Error() string {
	return "document submission failed; your selected files were kept so you can retry"
}

func (e PartialFailureError) Unwrap() error { return e.Err }
