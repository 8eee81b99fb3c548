package types

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError(t *testing.T) {
	err := &UpstreamError{Op: "create chat completion", StatusCode: 429, Err: errors.New("quota exceeded")}

	assert.ErrorIs(t, err, ErrUpstream)
	assert.NotErrorIs(t, err, ErrSchemaViolation)
	assert.Equal(t, "upstream error: create chat completion (status 429): quota exceeded", err.Error())

	var upstream *UpstreamError
	assert.True(t, errors.As(err, &upstream))
	assert.Equal(t, 429, upstream.StatusCode)
}

func TestUpstreamError_KeepsCause(t *testing.T) {
	err := &UpstreamError{Op: "create chat completion", Err: context.DeadlineExceeded}

	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "upstream error: create chat completion: context deadline exceeded", err.Error())
}

func TestSchemaViolationError(t *testing.T) {
	plain := NewSchemaViolation(`missing required field "title"`, nil)
	assert.ErrorIs(t, plain, ErrSchemaViolation)
	assert.Equal(t, `schema violation: missing required field "title"`, plain.Error())

	cause := errors.New("unexpected end of JSON input")
	wrapped := NewSchemaViolation("response is not a JSON object", cause)
	assert.ErrorIs(t, wrapped, ErrSchemaViolation)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "schema violation: response is not a JSON object: unexpected end of JSON input", wrapped.Error())
}
