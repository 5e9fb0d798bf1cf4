// Package apperr defines the error taxonomy shared by every resource service.
// Expected outcomes (not found, bad reference, validation, the conflict family)
// are explicit error values rather than panics or sentinel strings, so handlers
// can map them to HTTP statuses without inspecting store-specific errors.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into one of the documented outcomes.
type Kind int

const (
	// KindInternal is an unexpected store failure. It is logged with full
	// context and surfaces to clients as a generic message only.
	KindInternal Kind = iota
	// KindNotFound means the primary resource is absent.
	KindNotFound
	// KindBadReference means a required foreign key points at a nonexistent row.
	KindBadReference
	// KindValidation means the input failed a shape/length/required-field rule.
	KindValidation
	// KindConflictUnique means a duplicate value on a unique field.
	KindConflictUnique
	// KindConflictOneToOne means a second row tried to claim an already-claimed
	// one-to-one slot.
	KindConflictOneToOne
	// KindConflictDependents means a delete is blocked by existing children.
	KindConflictDependents
	// KindConflictConcurrency means the row changed or vanished between read
	// and write.
	KindConflictConcurrency
)

// Error carries a kind, a human-readable message in the domain's language, and
// optionally the underlying cause (for Internal errors only).
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return newf(KindNotFound, format, args...)
}

func BadReferencef(format string, args ...interface{}) *Error {
	return newf(KindBadReference, format, args...)
}

func Validationf(format string, args ...interface{}) *Error {
	return newf(KindValidation, format, args...)
}

func Duplicatef(format string, args ...interface{}) *Error {
	return newf(KindConflictUnique, format, args...)
}

func OneToOnef(format string, args ...interface{}) *Error {
	return newf(KindConflictOneToOne, format, args...)
}

func Dependentsf(format string, args ...interface{}) *Error {
	return newf(KindConflictDependents, format, args...)
}

func Concurrencyf(format string, args ...interface{}) *Error {
	return newf(KindConflictConcurrency, format, args...)
}

// Internalf wraps an unexpected store failure. The message is what clients may
// see; cause is kept for logging only.
func Internalf(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf extracts the kind from err, defaulting to KindInternal for anything
// outside the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Status maps a kind to its HTTP status code.
func Status(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadReference, KindValidation:
		return http.StatusBadRequest
	case KindConflictUnique, KindConflictOneToOne, KindConflictDependents, KindConflictConcurrency:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
