package usecase

import (
	"errors"

	"cinema-screening/pkg/utils"
)

var (
	ErrScreeningNotFound  = errors.New("screening not found")
	ErrInvalidReservation = errors.New("invalid reservation")
)

// ValidationError carries every field that failed validation.
type ValidationError struct {
	Violations []utils.Violation
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Violations)
}

func newValidationError(violations []utils.Violation) error {
	return &ValidationError{Violations: violations}
}
