package account

import "errors"

// Registration failure reasons exposed to callers. Anything else is reported
// as an opaque error.
var (
	ErrEmailInUse   = errors.New("an account with this email already exists")
	ErrInvalidEmail = errors.New("email address is not valid")
	ErrWeakPassword = errors.New("password does not meet complexity requirements")
)

// ErrInvalidCredentials is returned when authentication fails.
var ErrInvalidCredentials = errors.New("invalid email or password")
