// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned when checkout is attempted with no cart lines.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError marks bad input: non-positive quantity, missing address
// field, inactive product, insufficient stock. Raised before any state is
// mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError marks a referenced resource that does not exist or is not
// visible to the caller.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ConflictError marks a uniqueness violation surfaced by the store.
type ConflictError struct {
	Resource string
}

func (e *ConflictError) Error() string {
	return e.Resource + " already exists"
}

func NewConflictError(resource string) *ConflictError {
	return &ConflictError{Resource: resource}
}

// StoreError wraps an underlying data-store failure with the workflow step
// that hit it, so callers know how far a multi-step operation got.
type StoreError struct {
	Step string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.Step, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(step string, err error) *StoreError {
	return &StoreError{Step: step, Err: err}
}

// Convenience checks used by handlers to map errors onto HTTP statuses.

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
