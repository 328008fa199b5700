// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrValidation signals failed input validation.
	ErrValidation = errors.New("validation failed")
	// ErrConflict signals a uniqueness violation.
	ErrConflict = errors.New("conflict")
	// ErrNotFound signals an unknown identifier.
	ErrNotFound = errors.New("not found")
	// ErrNotConfigured signals a missing required setting.
	ErrNotConfigured = errors.New("not configured")
	// ErrSync signals a remote fetch or reconciliation failure.
	ErrSync = errors.New("sync failed")
)

// Error carries an error kind together with the message shown to API callers.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds an ErrValidation error.
func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// Conflict builds an ErrConflict error.
func Conflict(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

// NotFound builds an ErrNotFound error.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// NotConfigured builds an ErrNotConfigured error.
func NotConfigured(msg string) error {
	return &Error{Kind: ErrNotConfigured, Message: msg}
}

// Sync builds an ErrSync error wrapping its cause.
func Sync(msg string, cause error) error {
	return &Error{Kind: ErrSync, Message: msg, Err: cause}
}

// Message returns the caller-facing message of err, or fallback when err
// carries none.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}

// Canonical errors shared by repository and usecase layers.
var (
	ErrTeamNotFound   = NotFound("Resource not found.")
	ErrMemberNotFound = NotFound("Resource not found.")
	ErrTeamExists     = Conflict("A team with this name already exists.")
)
