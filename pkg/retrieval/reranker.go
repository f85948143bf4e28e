package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/retry"
)

// RankedDocument is one row of a rerank response: the index into the
// submitted document list and the model's relevance score.
type RankedDocument struct {
	Index          int     `json:"index"`
	RelevanceScore float64 `json:"relevance_score"`
}

// Reranker scores documents against a query.
type Reranker interface {
	Rerank(ctx context.Context, query string, documents []string) ([]RankedDocument, error)
}

// CohereReranker calls a Cohere-compatible /v2/rerank endpoint.
type CohereReranker struct {
	httpClient *http.Client
	cfg        *config.RerankerConfig
	policy     retry.Policy
}

func NewCohereReranker(cfg *config.RerankerConfig) *CohereReranker {
	return &CohereReranker{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cfg:        cfg,
		policy: retry.Policy{
			MaxAttempts:  3,
			InitialDelay: time.Second,
			MaxDelay:     10 * time.Second,
			Retryable:    retryableRerank,
		},
	}
}

type rerankRequest struct {
	Model     string   `json:"model"`
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
}

type rerankResponse struct {
	Results []RankedDocument `json:"results"`
}

// Rerank submits all documents in one call and returns the scored list the
// provider sends back. The list is not filtered or reordered here.
func (r *CohereReranker) Rerank(ctx context.Context, query string, documents []string) ([]RankedDocument, error) {
	if len(documents) == 0 {
		return nil, nil
	}
	body, err := json.Marshal(rerankRequest{
		Model:     r.cfg.Model,
		Query:     query,
		Documents: documents,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal rerank request: %w", err)
	}

	policy := r.policy
	policy.OnRetry = func(attempt int, wait time.Duration, err error) {
		slog.Warn("Rerank failed, retrying",
			"attempt", attempt,
			"wait", wait,
			"error", err)
	}

	var resp rerankResponse
	err = policy.Do(ctx, func(ctx context.Context) error {
		var attempt rerankResponse
		if err := r.post(ctx, bytes.NewReader(body), &attempt); err != nil {
			return err
		}
		resp = attempt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (r *CohereReranker) post(ctx context.Context, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+"/v2/rerank", body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rerank request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &rerankError{status: resp.StatusCode, body: string(detail)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode rerank response: %w", err)
	}
	return nil
}

// rerankError is a non-2xx reply from the rerank endpoint.
type rerankError struct {
	status int
	body   string
}

func (e *rerankError) Error() string {
	return fmt.Sprintf("reranker returned HTTP %d: %s", e.status, e.body)
}

func retryableRerank(err error) bool {
	var re *rerankError
	if errors.As(err, &re) {
		switch re.status {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	return true
}
