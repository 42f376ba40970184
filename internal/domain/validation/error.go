package validation

import "errors"

// Error reports a rejected input field. Handlers render it as 400 validation_failed.
type Error struct {
	Field   string
	Message string
	cause   error
}

func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// Wrap is New for a rejection that has a domain sentinel behind it.
func Wrap(field, message string, cause error) *Error {
	return &Error{Field: field, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
