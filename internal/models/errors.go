package models

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField = errors.New("Product name and category are required")
	ErrInputTooLong = fmt.Errorf("Input too long. Maximum %d characters allowed.", MaxInputLength)

	ErrUnknownProvider  = errors.New("unknown generation provider")
	ErrEmptyCompletion  = errors.New("model returned no completion")
	ErrModelUnavailable = errors.New("model is not configured")
)

// ValidationError reports a request that must be rejected with HTTP 400.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// GenerationError wraps any failure raised while producing a description,
// including model construction. It maps to HTTP 500.
type GenerationError struct {
	Backend string
	Err     error
}

func (e *GenerationError) Error() string { return e.Err.Error() }
func (e *GenerationError) Unwrap() error { return e.Err }

// NewGenerationError wraps err unless it already is a GenerationError.
func NewGenerationError(backend string, err error) error {
	if err == nil {
		return nil
	}
	var ge *GenerationError
	if errors.As(err, &ge) {
		return err
	}
	return &GenerationError{Backend: backend, Err: err}
}
