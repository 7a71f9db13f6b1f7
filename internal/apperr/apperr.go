// Package apperr classifies failures so every HTTP failure branch can render
// the same {"error":{"message","kind"}} body.
package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindStore      Kind = "store"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Store wraps a persistence failure.
func Store(message string, err error) error {
	return &Error{Kind: KindStore, Message: message, Err: err}
}

// KindOf reports the kind of err. Errors that were never classified are
// treated as store failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

// MessageOf returns the client-facing message for err. Store failures never
// leak driver details.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindStore {
		return e.Message
	}
	return "internal server error"
}

func Status(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
