package validate

import (
	"fmt"

	"github.com/pkg/errors"
)

const defaultAbsentMessage = "value is absent"

// AbsentValueError reports that a required value was absent. It may carry a
// caller-supplied message.
type AbsentValueError struct {
	message    string
	hasMessage bool
}

func (e *AbsentValueError) Error() string {
	if !e.hasMessage {
		return defaultAbsentMessage
	}
	return e.message
}

// Message returns the caller-supplied message, or "" when there is none.
func (e *AbsentValueError) Message() string {
	return e.message
}

func (e *AbsentValueError) HasMessage() bool {
	return e.hasMessage
}

// IsAbsentValueError reports whether err, or any error it wraps, is an
// AbsentValueError.
func IsAbsentValueError(err error) bool {
	var absentErr *AbsentValueError
	return errors.As(err, &absentErr)
}

func newAbsentValueError() error {
	return errors.WithStack(&AbsentValueError{})
}

func newAbsentValueErrorWithMessage(message string) error {
	return errors.WithStack(&AbsentValueError{message: message, hasMessage: true})
}

// createError formats msg with args only when args are given, so a literal
// message containing '%' is kept as is.
func createError(msg string, args ...any) error {
	if len(args) == 0 {
		return newAbsentValueErrorWithMessage(msg)
	}
	return newAbsentValueErrorWithMessage(fmt.Sprintf(msg, args...))
}
