package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrProfessionalNotFound is returned when no professional has the requested ID
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrDuplicateProfessional is returned when two records share an ID
	ErrDuplicateProfessional = errors.New("duplicate professional")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ProfessionalNotFoundError represents a failed detail lookup
type ProfessionalNotFoundError struct {
	ID int
}

func (e *ProfessionalNotFoundError) Error() string {
	return fmt.Sprintf("professional with ID %d not found", e.ID)
}

func (e *ProfessionalNotFoundError) Is(target error) bool {
	return target == ErrProfessionalNotFound
}

// NewProfessionalNotFoundError creates a new ProfessionalNotFoundError
func NewProfessionalNotFoundError(id int) *ProfessionalNotFoundError {
	return &ProfessionalNotFoundError{ID: id}
}

// DuplicateProfessionalError is returned when building a store from records that reuse an ID
type DuplicateProfessionalError struct {
	ID int
}

func (e *DuplicateProfessionalError) Error() string {
	return fmt.Sprintf("professional ID %d appears more than once", e.ID)
}

func (e *DuplicateProfessionalError) Is(target error) bool {
	return target == ErrDuplicateProfessional
}

// NewDuplicateProfessionalError creates a new DuplicateProfessionalError
func NewDuplicateProfessionalError(id int) *DuplicateProfessionalError {
	return &DuplicateProfessionalError{ID: id}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
