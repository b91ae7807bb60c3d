package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures crossing the storage and service boundary.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindIntegrity  ErrorKind = "integrity"
	KindStorage    ErrorKind = "storage"
)

// Error is a domain failure of a given kind. An Error with an empty message is a
// kind sentinel and matches every error of the same kind under errors.Is.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind) + " error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Wrap returns a copy of e carrying cause.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Err: cause}
}

// StorageFault wraps an underlying database failure.
func StorageFault(cause error) error {
	var de *Error
	if errors.As(cause, &de) {
		return cause
	}
	return ErrStorageFault.Wrap(cause)
}

// KindOf reports the kind of err, or KindStorage for errors of unknown origin.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorage
}

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedParseID        = "failed to parse id"

	ErrValidation   = &Error{Kind: KindValidation}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrIntegrity    = &Error{Kind: KindIntegrity}
	ErrStorageFault = &Error{Kind: KindStorage}

	ErrInvalidID      = NewError(KindValidation, "invalid id")
	ErrDatabaseLocked = NewError(KindStorage, "failed to acquire lock on the database")
	ErrCorruptRecord  = NewError(KindStorage, "stored record is corrupt")

	ErrReferenceViolated = NewError(KindIntegrity, "foreign key constraint violated")
)
