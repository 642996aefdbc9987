// Package store provides the persistence layer for sweets, including the
// race-free stock adjustment operations.
package store

import (
	"errors"
	"fmt"
	"strings"
)

// SweetNotFoundError is returned when a sweet with the given ID does not exist.
type SweetNotFoundError struct {
	ID string
}

func (e *SweetNotFoundError) Error() string {
	return fmt.Sprintf("sweet not found: id=%s", e.ID)
}

// InsufficientStockError is returned when a purchase requests more units than
// are currently in stock. The wording of Error is part of the API contract.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock. Available: %d, Requested: %d", e.Available, e.Requested)
}

// FieldError describes a single violated constraint on a payload field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors collects every violated field constraint, not just the
// first, so clients can surface complete form feedback.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Message)
	}
	return "Validation failed: " + strings.Join(msgs, ", ")
}

// IsSweetNotFound checks if an error is a SweetNotFoundError.
func IsSweetNotFound(err error) bool {
	var nf *SweetNotFoundError
	return errors.As(err, &nf)
}

// IsInsufficientStock checks if an error is an InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var is *InsufficientStockError
	return errors.As(err, &is)
}

// IsValidationError checks if an error is a ValidationErrors value.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
