package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks missing or malformed client input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a lookup key that matches no catalog entry.
	ErrNotFound = errors.New("not found")
	// ErrMissingAPIKey is returned when neither the request nor the server has a Gemini key.
	ErrMissingAPIKey = errors.New("no API key provided")
	// ErrModelOutput is the parent of FormatError and SchemaError.
	ErrModelOutput = errors.New("unusable model output")
)

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// FormatError means no JSON object could be recovered from the model's reply.
type FormatError struct {
	Snippet string
	Err     error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model reply is not valid JSON: %v (reply starts with %q)", e.Err, e.Snippet)
	}
	return fmt.Sprintf("model reply contains no JSON object (reply starts with %q)", e.Snippet)
}

func (e *FormatError) Is(target error) bool { return target == ErrModelOutput }

func (e *FormatError) Unwrap() error { return e.Err }

// SchemaError means the recovered JSON object lacks required keys.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "model reply is missing required keys: " + strings.Join(e.Missing, ", ")
}

func (e *SchemaError) Is(target error) bool { return target == ErrModelOutput }
