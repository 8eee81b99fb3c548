package types

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstream marks failures reaching the model provider (network, auth, quota).
	ErrUpstream = errors.New("upstream error")
	// ErrSchemaViolation marks model answers that do not fit the recipe schema.
	ErrSchemaViolation = errors.New("schema violation")
)

// UpstreamError wraps a failed call to the model provider
type UpstreamError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", ErrUpstream, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrUpstream, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstream, e.Err}
}

// SchemaViolationError describes why a model answer was rejected
type SchemaViolationError struct {
	Reason string
	Err    error
}

// NewSchemaViolation creates a SchemaViolationError; err may be nil.
func NewSchemaViolation(reason string, err error) *SchemaViolationError {
	return &SchemaViolationError{Reason: reason, Err: err}
}

func (e *SchemaViolationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrSchemaViolation, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrSchemaViolation, e.Reason)
}

func (e *SchemaViolationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSchemaViolation}
	}
	return []error{ErrSchemaViolation, e.Err}
}
