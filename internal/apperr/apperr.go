// Package apperr defines the failure taxonomy shared by services and
// handlers. Services return *Error values; the handler layer owns the
// mapping from Kind to HTTP status, so no status codes appear below it.
package apperr

import "fmt"

// Kind classifies a failure
type Kind int

const (
	Unexpected Kind = iota
	ValidationFailed
	AuthenticationRequired
	AuthorizationDenied
	AlreadyAuthenticated
	DuplicateEmail
	DuplicateMobile
	MissingCredential
	UserNotFound
	InvalidPassword
	NotFound
	InvalidIdentifier
)

// Error is a typed failure: a kind, a human-readable message, an optional
// field-error map (validation only) and an optional underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with no underlying cause
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error around an underlying cause
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a ValidationFailed error carrying the field-error map
func Validation(fields map[string]string) *Error {
	return &Error{Kind: ValidationFailed, Message: "Validation failed", Fields: fields}
}
