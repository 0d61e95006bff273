// Package apperr defines the portal's error taxonomy. Every failure that
// escapes a handler is one of these kinds, the response layer picks the
// recovery affordance (retry vs login) from the kind.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a portal error
type Kind byte

const (
	// AuthRequired means no valid session was present for a protected action
	AuthRequired Kind = iota
	// TokenExpired means a previously valid session went stale (upstream 401)
	TokenExpired
	// NotAuthorized means the session's role does not permit the action
	NotAuthorized
	// FetchFailed is a network or non-2xx failure unrelated to auth
	FetchFailed
	// ValidationFailed is a local form validation failure, never sent upstream
	ValidationFailed
)

func (k Kind) String() string {
	switch k {
	case AuthRequired:
		return "auth_required"
	case TokenExpired:
		return "token_expired"
	case NotAuthorized:
		return "not_authorized"
	case FetchFailed:
		return "fetch_failed"
	case ValidationFailed:
		return "validation_failed"
	default:
		return "unknown"
	}
}

// DefaultMessage is the user-facing message for a kind
func (k Kind) DefaultMessage() string {
	switch k {
	case AuthRequired:
		return "Please log in to continue."
	case TokenExpired:
		return "Your session has expired. Please log in again."
	case NotAuthorized:
		return "Access denied."
	case ValidationFailed:
		return "Some fields are invalid."
	default:
		return "Something went wrong. Please try again."
	}
}

// Error is a classified portal error
type Error struct {
	Kind    Kind
	Message string
	// Fields holds per-field messages for validation failures
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind with its default user message
func New(kind Kind) *Error {
	return &Error{Kind: kind, Message: kind.DefaultMessage()}
}

// WithMessage creates an error of the given kind with a custom message
func WithMessage(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies an underlying error
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a ValidationFailed error carrying per-field messages
func Validation(fields map[string]string) *Error {
	return &Error{
		Kind:    ValidationFailed,
		Message: ValidationFailed.DefaultMessage(),
		Fields:  fields,
	}
}

// KindOf extracts the kind of a classified error. Unclassified errors
// report as FetchFailed.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return FetchFailed
}

// IsKind reports whether the error is classified as the given kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
