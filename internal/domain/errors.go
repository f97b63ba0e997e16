package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput signals a rejected analysis input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAnnotatorProviderError signals an annotator provider failure.
	ErrAnnotatorProviderError = errors.New("annotator provider error")
)

// InputTooLargeError wraps ErrInvalidInput with the offending field and sizes.
type InputTooLargeError struct {
	Field string
	Size  int
	Max   int
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("%s: %s is %d bytes (max %d)", ErrInvalidInput.Error(), e.Field, e.Size, e.Max)
}

func (e *InputTooLargeError) Unwrap() error { return ErrInvalidInput }

// NewInputTooLarge creates an oversized-input error.
func NewInputTooLarge(field string, size, max int) error {
	return &InputTooLargeError{Field: field, Size: size, Max: max}
}
