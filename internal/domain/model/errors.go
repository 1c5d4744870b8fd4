package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the backend has no such order.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated means the bearer credential was missing or rejected.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError: caller input broke a precondition. Nothing was sent or changed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

func NewValidationError(field string, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// PreconditionError: the operation is not allowed in the order's current state.
type PreconditionError struct {
	Operation string
	Reason    string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s not allowed: %s", e.Operation, e.Reason)
}

func NewPreconditionError(operation string, format string, args ...any) error {
	return &PreconditionError{Operation: operation, Reason: fmt.Sprintf(format, args...)}
}

// TransportError: the backend was unreachable or answered non-2xx.
type TransportError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "backend unavailable"
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProviderError: the backend answered but the payment provider behind it failed.
type ProviderError struct {
	Op       string
	Provider PaymentMethod
	Message  string
}

func (e *ProviderError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s: %s provider failed: %s", e.Op, e.Provider, e.Message)
	}
	return fmt.Sprintf("%s: provider failed: %s", e.Op, e.Message)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func IsProvider(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
