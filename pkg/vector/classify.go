package vector

import (
	"errors"
	"net/http"

	"github.com/openai/openai-go/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Retryable classifies embedding and vector-store failures. Rate limits,
// server-side failures, and connection problems are worth retrying; anything
// the provider rejects outright is not.
func Retryable(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return true
		case apiErr.StatusCode == http.StatusRequestTimeout:
			return true
		case apiErr.StatusCode >= 500:
			return true
		default:
			return false
		}
	}
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
			return true
		default:
			return false
		}
	}
	// Connection-level failure with no provider verdict.
	return true
}
