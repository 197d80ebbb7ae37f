package common

import (
	"errors"
	"fmt"
)

// Error kinds. Callers branch with errors.Is on these sentinels instead of
// inspecting message text.
var (
	ErrExtraction        = errors.New("extraction failed")
	ErrMissingCredential = errors.New("missing credential")
	ErrAuthentication    = errors.New("authentication rejected")
	ErrTransport         = errors.New("transport failure")
	ErrResponseFormat    = errors.New("malformed model response")
)

// Error carries a taxonomy kind alongside the wrapped cause.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func NewError(kind error, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
