package services

import "errors"

// Failure classes the handlers map onto HTTP statuses. The same
// ErrInvalidCredentials comes back for an unknown username and for a wrong
// password, so the response cannot be used to probe which usernames exist.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
)

// ValidationError reports malformed input with a client-safe reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(reason string) error {
	return &ValidationError{Reason: reason}
}
