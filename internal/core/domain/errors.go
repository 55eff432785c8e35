package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRecord   = errors.New("invalid daily record")
	ErrInvalidIdentity = errors.New("invalid identity")
	ErrLedgerNotFound  = errors.New("ledger not found")
	// ErrCorruptLedger marks a stored ledger that no longer decodes. It is a
	// storage fault, not a client error.
	ErrCorruptLedger = errors.New("stored ledger is corrupt")
	ErrForbidden       = errors.New("forbidden")
)

// ValidationError describes why a record or ledger was rejected.
// It matches ErrInvalidRecord with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRecord
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
