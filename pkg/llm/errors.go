package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
)

// RetryableError is a provider failure worth retrying: rate limits, overload,
// and connection-level faults.
type RetryableError struct {
	Op  string
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("llm: %s: %v", e.Op, e.Err)
}

func (e *RetryableError) Unwrap() error { return e.Err }

// NonRetryableError is a failure that will not succeed on retry: bad
// requests, authentication, and malformed model output.
type NonRetryableError struct {
	Op  string
	Err error
}

func (e *NonRetryableError) Error() string {
	return fmt.Sprintf("llm: %s: %v", e.Op, e.Err)
}

func (e *NonRetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err carries a RetryableError classification.
func IsRetryable(err error) bool {
	var retryable *RetryableError
	return errors.As(err, &retryable)
}

// classifyAPIError wraps a Messages API failure by its HTTP verdict. Context
// cancellation passes through unchanged so callers can tell a disconnect
// from a provider fault.
func classifyAPIError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests,
			apiErr.StatusCode == http.StatusRequestTimeout,
			apiErr.StatusCode >= http.StatusInternalServerError:
			return &RetryableError{Op: op, Err: err}
		}
		return &NonRetryableError{Op: op, Err: err}
	}
	// Connection-level failure with no provider verdict.
	return &RetryableError{Op: op, Err: err}
}
