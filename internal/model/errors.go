package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned by backends when an insert collides with an
	// existing primary key.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrMalformedDocument marks a stored document that does not match the
	// entity's field table. Only reported in strict decode mode.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrUnsupportedDriver is returned when the configured backend is unknown.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// StoreError wraps any failure of the backing store.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s on %q: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// DecodeError describes the first field of a document that could not be decoded.
type DecodeError struct {
	Field string
	// Reason is "missing" or the Go type found in the document.
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: field %q is %s", ErrMalformedDocument, e.Field, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return ErrMalformedDocument
}
