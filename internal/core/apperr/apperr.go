package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure so the transport layer can map it
// to a status code without inspecting message text.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindStore
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Store wraps a persistence failure. The underlying error is kept for logs;
// the message shown to clients stays generic.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Message: "Internal server error", Err: err}
}

func Validationf(format string, args ...interface{}) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// KindOf reports the kind of err. Unclassified errors count as store
// failures, matching the pass-through policy for persistence errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
