package vector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v2/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
)

func TestCollectionName(t *testing.T) {
	userID := uuid.MustParse("a3bb189e-8bf9-3888-9912-ace4e6543002")
	assert.Equal(t, "user_a3bb189e8bf938889912ace4e6543002", CollectionName(userID))
}

type embeddingRequest struct {
	Input      []string `json:"input"`
	Model      string   `json:"model"`
	Dimensions int      `json:"dimensions"`
}

// newTestEmbedder builds an OpenAIEmbedder against a test server with
// SDK-internal retries disabled.
func newTestEmbedder(serverURL string, batchSize int) *OpenAIEmbedder {
	cfg := &config.EmbeddingsConfig{
		APIKey:     "test-key",
		Model:      "text-embedding-3-small",
		Dimensions: 2,
		BatchSize:  batchSize,
	}
	return NewOpenAIEmbedder(cfg,
		option.WithBaseURL(serverURL),
		option.WithMaxRetries(0))
}

func TestOpenAIEmbedderBatches(t *testing.T) {
	var requests []embeddingRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/embeddings", r.URL.Path)
		auth = r.Header.Get("Authorization")

		var req embeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)

		type item struct {
			Embedding []float64 `json:"embedding"`
			Index     int       `json:"index"`
		}
		items := make([]item, len(req.Input))
		for i := range req.Input {
			items[i] = item{Embedding: []float64{0.25, float64(i)}, Index: i}
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": items}))
	}))
	defer server.Close()

	embedder := newTestEmbedder(server.URL, 2)

	vectors, err := embedder.Embed(context.Background(), []string{"one", "two", "three"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	assert.Equal(t, "Bearer test-key", auth)
	require.Len(t, requests, 2)
	assert.Equal(t, []string{"one", "two"}, requests[0].Input)
	assert.Equal(t, []string{"three"}, requests[1].Input)
	for _, req := range requests {
		assert.Equal(t, "text-embedding-3-small", req.Model)
		assert.Equal(t, 2, req.Dimensions)
	}

	assert.Equal(t, []float32{0.25, 0}, vectors[0])
	assert.Equal(t, []float32{0.25, 1}, vectors[1])
	assert.Equal(t, []float32{0.25, 0}, vectors[2])
}

func TestOpenAIEmbedderEmptyInput(t *testing.T) {
	embedder := newTestEmbedder("http://unused.invalid", 8)
	vectors, err := embedder.Embed(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vectors)
}

func TestOpenAIEmbedderCountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data": [{"embedding": [0.1, 0.2], "index": 0}]}`)
	}))
	defer server.Close()

	embedder := newTestEmbedder(server.URL, 8)

	_, err := embedder.Embed(context.Background(), []string{"one", "two"})
	assert.ErrorContains(t, err, "got 1 embeddings for 2 inputs")
}

func TestRetryable(t *testing.T) {
	statusError := func(code int) error {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(code)
			fmt.Fprint(w, `{"error": {"message": "nope"}}`)
		}))
		defer server.Close()
		_, err := newTestEmbedder(server.URL, 8).Embed(context.Background(), []string{"x"})
		return err
	}

	t.Run("openai rate limit", func(t *testing.T) {
		assert.True(t, Retryable(statusError(http.StatusTooManyRequests)))
	})
	t.Run("openai server error", func(t *testing.T) {
		assert.True(t, Retryable(statusError(http.StatusInternalServerError)))
	})
	t.Run("openai bad request", func(t *testing.T) {
		assert.False(t, Retryable(statusError(http.StatusBadRequest)))
	})
	t.Run("grpc unavailable", func(t *testing.T) {
		assert.True(t, Retryable(status.Error(codes.Unavailable, "connection refused")))
	})
	t.Run("grpc wrapped deadline", func(t *testing.T) {
		err := fmt.Errorf("query collection: %w", status.Error(codes.DeadlineExceeded, "timeout"))
		assert.True(t, Retryable(err))
	})
	t.Run("grpc invalid argument", func(t *testing.T) {
		assert.False(t, Retryable(status.Error(codes.InvalidArgument, "bad vector width")))
	})
	t.Run("plain connection error", func(t *testing.T) {
		assert.True(t, Retryable(errors.New("dial tcp 127.0.0.1:6334: connection refused")))
	})
}

func TestDedupeMatches(t *testing.T) {
	matches := []Match{
		{ID: "a", Content: "far copy", Distance: 0.3},
		{ID: "b", Content: "b", Distance: 0.1},
		{ID: "a", Content: "near copy", Distance: 0.05},
		{ID: "c", Content: "c", Distance: 0.1},
	}

	got := dedupeMatches(matches)
	require.Len(t, got, 3)

	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "near copy", got[0].Content)
	assert.InDelta(t, 0.05, got[0].Distance, 1e-6)

	// Equal distances keep first-seen order.
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestDedupeMatchesEmpty(t *testing.T) {
	assert.Empty(t, dedupeMatches(nil))
}
