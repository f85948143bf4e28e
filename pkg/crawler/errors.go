package crawler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrEmptyContent reports a crawl that finished with zero pages. Fatal for
// the source: there is nothing to chunk or index.
var ErrEmptyContent = errors.New("crawler: crawl returned no content")

// APIError is a failure reply from the crawler API. Transient codes (429 and
// the retryable 5xx family) are retried by the client's backoff policy;
// everything else surfaces to the caller immediately.
type APIError struct {
	StatusCode int
	Message    string

	// RetryAfter is the server-mandated wait parsed from a 429 reply's
	// Retry-After header, zero when absent.
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	return fmt.Sprintf("crawler: API returned HTTP %d: %s", e.StatusCode, e.Message)
}

// Transient reports whether the failure is worth retrying.
func (e *APIError) Transient() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// retryable classifies an attempt failure for the backoff policy. API errors
// carry their own classification; anything else is a connection-level
// failure and assumed transient.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Transient()
	}
	return true
}

// retryFloor surfaces a Retry-After wait to the backoff policy.
func retryFloor(err error) time.Duration {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.RetryAfter
	}
	return 0
}

// parseRetryAfter reads a Retry-After header value, accepting both the
// delta-seconds and HTTP-date forms. Unparseable values yield zero.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0
		}
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if wait := time.Until(at); wait > 0 {
			return wait
		}
	}
	return 0
}
