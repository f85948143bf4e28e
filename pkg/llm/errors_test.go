package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryableSeesThroughWrapping(t *testing.T) {
	base := &RetryableError{Op: "messages.new", Err: errors.New("overloaded")}
	wrapped := fmt.Errorf("chat turn: %w", base)

	assert.True(t, IsRetryable(base))
	assert.True(t, IsRetryable(wrapped))
	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsRetryable(&NonRetryableError{Op: "messages.new", Err: errors.New("bad request")}))
}

func TestClassifyAPIErrorPassesContextErrorsThrough(t *testing.T) {
	err := classifyAPIError("messages.stream", fmt.Errorf("request: %w", context.Canceled))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsRetryable(err))

	err = classifyAPIError("messages.stream", context.DeadlineExceeded)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClassifyAPIErrorTreatsConnectionFaultsAsRetryable(t *testing.T) {
	err := classifyAPIError("messages.new", errors.New("dial tcp: connection refused"))
	assert.True(t, IsRetryable(err))
}
