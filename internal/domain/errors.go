package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed create or payment requests. Nothing is written.
	ErrValidation = errors.New("validation failed")

	// ErrTransport marks a remote call that was unreachable, non-successful or malformed.
	ErrTransport = errors.New("ledger transport failed")

	// ErrWrite marks a remote or local write that did not complete.
	ErrWrite = errors.New("write failed")

	ErrNoUser          = errors.New("no authenticated user")
	ErrSessionMismatch = errors.New("request user does not match session")
	ErrLoanNotFound    = errors.New("loan not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

// ValidationError names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TransportError wraps a failed remote call. StatusCode is zero when no response arrived.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// WriteError is returned by write operations; local state is left untouched.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}
