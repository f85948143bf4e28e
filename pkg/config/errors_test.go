package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorError(t *testing.T) {
	baseErr := errors.New("base error")

	tests := []struct {
		name     string
		err      *ValidationError
		contains []string
	}{
		{
			name: "full error",
			err:  NewValidationError("anthropic", "ANTHROPIC_API_KEY", baseErr),
			contains: []string{
				"anthropic",
				"ANTHROPIC_API_KEY",
				"base error",
			},
		},
		{
			name: "range error",
			err:  NewValidationError("http", "HTTP_PORT", errors.New("must be between 1 and 65535")),
			contains: []string{
				"http",
				"HTTP_PORT",
				"must be between 1 and 65535",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, substr := range tt.contains {
				assert.Contains(t, errStr, substr)
			}
		})
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	validationErr := NewValidationError("redis", "REDIS_ADDR", ErrMissingRequiredField)

	unwrapped := validationErr.Unwrap()
	assert.Equal(t, ErrMissingRequiredField, unwrapped)
	assert.True(t, errors.Is(validationErr, ErrMissingRequiredField))
}
