package core

import "github.com/pkg/errors"

var (
	// ErrAuthRequired is returned when an anonymous caller attempts a
	// gated action.
	ErrAuthRequired = errors.New("authentication required")

	// ErrPermissionDenied is returned when an authenticated caller lacks
	// the capability for an action (e.g. non-admin delete).
	ErrPermissionDenied = errors.New("permission denied")
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// PreconditionFailedError signals that the caller must complete a setup step
// before the action is allowed (e.g. set a display name before reviewing).
type PreconditionFailedError struct {
	message string
}

func NewPreconditionFailedError(msg string) error {
	return &PreconditionFailedError{message: msg}
}

func (e PreconditionFailedError) Error() string {
	return e.message
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
