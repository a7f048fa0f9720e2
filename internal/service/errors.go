package service

import (
	"errors"
	"fmt"
)

// ErrorKind tags the failure classes the relay boundary maps to HTTP status codes.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindConfiguration ErrorKind = "configuration"
	KindUpstream      ErrorKind = "upstream"
)

// Error is the single error type returned by AssistantService.
// StatusCode and Body are only set for KindUpstream answers that reached the API.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s error (status %d): %v", e.Kind, e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s error", e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the kind of a service error. ok is false for any other error.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind, true
	}
	return "", false
}

var (
	ErrEmptyTranscript  = errors.New("transcript is empty")
	ErrInvalidRole      = errors.New("message role must be user or assistant")
	ErrNotConfigured    = errors.New("completion credential is missing")
	ErrStarsUnavailable = errors.New("repository stars unavailable")
)
