// Package retrieval turns a user query into reranked document snippets:
// multi-query vector search, dedup, external rerank, relevance filtering.
package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/pkg/vector"
)

// minRelevance drops rerank results the model considers noise.
const minRelevance = 0.1

// defaultSearchLimit is the per-query vector search depth feeding the
// reranker.
const defaultSearchLimit = 10

// Result is one retrieved snippet. Index refers to the deduplicated
// candidate list that was submitted for reranking.
type Result struct {
	Index          int
	Text           string
	RelevanceScore float64
}

// VectorSearcher is the slice of vector.Index the retriever needs.
type VectorSearcher interface {
	Query(ctx context.Context, userID uuid.UUID, queries []string, topK int) ([]vector.Match, error)
}

// Retriever chains vector search and reranking.
type Retriever struct {
	index       VectorSearcher
	reranker    Reranker
	searchLimit int
}

func NewRetriever(index VectorSearcher, reranker Reranker) *Retriever {
	return &Retriever{
		index:       index,
		reranker:    reranker,
		searchLimit: defaultSearchLimit,
	}
}

// Retrieve searches the user's collection with all query variants, reranks
// the deduplicated candidates against the original query, drops results
// scoring under the relevance floor, and truncates to topN best when topN is
// set below the filtered count. topN <= 0 means no truncation.
func (r *Retriever) Retrieve(ctx context.Context, ragQuery string, combinedQueries []string, topN int, userID uuid.UUID) ([]Result, error) {
	start := time.Now()

	matches, err := r.index.Query(ctx, userID, combinedQueries, r.searchLimit)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	if len(matches) == 0 {
		slog.Info("Retrieval found no candidates",
			"user_id", userID,
			"queries", len(combinedQueries),
			"duration_ms", time.Since(start).Milliseconds())
		return nil, nil
	}

	documents := make([]string, len(matches))
	for i, match := range matches {
		documents[i] = match.Content
	}
	ranked, err := r.reranker.Rerank(ctx, ragQuery, documents)
	if err != nil {
		return nil, fmt.Errorf("rerank %d candidates: %w", len(documents), err)
	}

	results := make([]Result, 0, len(ranked))
	for _, item := range ranked {
		if item.RelevanceScore < minRelevance {
			continue
		}
		if item.Index < 0 || item.Index >= len(documents) {
			slog.Warn("Reranker returned out-of-range index",
				"index", item.Index,
				"documents", len(documents))
			continue
		}
		results = append(results, Result{
			Index:          item.Index,
			Text:           documents[item.Index],
			RelevanceScore: item.RelevanceScore,
		})
	}

	if topN > 0 && topN < len(results) {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].RelevanceScore > results[j].RelevanceScore
		})
		results = results[:topN]
	}

	slog.Info("Retrieval complete",
		"user_id", userID,
		"queries", len(combinedQueries),
		"candidates", len(documents),
		"returned", len(results),
		"duration_ms", time.Since(start).Milliseconds())
	return results, nil
}
