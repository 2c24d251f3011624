package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation        = errors.New("order validation failed")
	ErrNoDriverAvailable = errors.New("no driver available")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrOrderNotFound     = errors.New("order not found")
	ErrAlreadyAssigned   = errors.New("order already assigned")
)

type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError перечисляет все нарушенные правила. errors.Is(err, ErrValidation) == true.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
