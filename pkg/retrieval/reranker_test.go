package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/retry"
)

func newTestReranker(serverURL string) *CohereReranker {
	r := NewCohereReranker(&config.RerankerConfig{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Model:   "rerank-v3.5",
	})
	r.policy = retry.Policy{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Retryable:    retryableRerank,
	}
	return r
}

func TestRerank(t *testing.T) {
	var got rerankRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/rerank", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"results": [{"index": 1, "relevance_score": 0.98}, {"index": 0, "relevance_score": 0.12}]}`)
	}))
	defer server.Close()

	reranker := newTestReranker(server.URL)

	ranked, err := reranker.Rerank(context.Background(), "retries", []string{"doc a", "doc b"})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "rerank-v3.5", got.Model)
	assert.Equal(t, "retries", got.Query)
	assert.Equal(t, []string{"doc a", "doc b"}, got.Documents)

	assert.Equal(t, RankedDocument{Index: 1, RelevanceScore: 0.98}, ranked[0])
	assert.Equal(t, RankedDocument{Index: 0, RelevanceScore: 0.12}, ranked[1])
}

func TestRerankRetriesTransientFailures(t *testing.T) {
	attempts := 0
	var bodies []rerankRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		var body rerankRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"results": [{"index": 0, "relevance_score": 0.5}]}`)
	}))
	defer server.Close()

	reranker := newTestReranker(server.URL)

	ranked, err := reranker.Rerank(context.Background(), "q", []string{"doc"})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 3, attempts)

	// Every attempt resends the full request body.
	for _, body := range bodies {
		assert.Equal(t, []string{"doc"}, body.Documents)
	}
}

func TestRerankDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"message": "invalid model"}`)
	}))
	defer server.Close()

	reranker := newTestReranker(server.URL)

	_, err := reranker.Rerank(context.Background(), "q", []string{"doc"})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.ErrorContains(t, err, "HTTP 400")
}

func TestRerankEmptyDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected for empty documents")
	}))
	defer server.Close()

	reranker := newTestReranker(server.URL)

	ranked, err := reranker.Rerank(context.Background(), "q", nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}
