package errs

import (
	"fmt"

	cr "github.com/cockroachdb/errors"
)

// Error kinds surfaced by the rental engine. Classify with Is, not ==.
var (
	ErrValidation   = cr.New("validation failed")
	ErrNotFound     = cr.New("not found")
	ErrInvalidState = cr.New("invalid state transition")
	ErrDuplicateKey = cr.New("duplicate key")
)

// ValidationError names the first input field that failed a check
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return cr.Mark(cr.WithStack(&ValidationError{Field: field, Reason: reason}), ErrValidation)
}

func NotFound(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrNotFound)
}

func InvalidState(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrInvalidState)
}

func Duplicate(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrDuplicateKey)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

// FieldOf returns the failing field of a validation error, or "" for any other error
func FieldOf(err error) string {
	var ve *ValidationError
	if As(err, &ve) {
		return ve.Field
	}
	return ""
}
