package retrieval

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/vector"
)

type fakeSearcher struct {
	matches     []vector.Match
	gotQueries  []string
	gotTopK     int
	gotUserID   uuid.UUID
	queryCalled bool
}

func (f *fakeSearcher) Query(_ context.Context, userID uuid.UUID, queries []string, topK int) ([]vector.Match, error) {
	f.queryCalled = true
	f.gotUserID = userID
	f.gotQueries = queries
	f.gotTopK = topK
	return f.matches, nil
}

type fakeReranker struct {
	ranked       []RankedDocument
	gotQuery     string
	gotDocuments []string
	called       bool
}

func (f *fakeReranker) Rerank(_ context.Context, query string, documents []string) ([]RankedDocument, error) {
	f.called = true
	f.gotQuery = query
	f.gotDocuments = documents
	return f.ranked, nil
}

func fiveMatches() []vector.Match {
	return []vector.Match{
		{ID: "0", Content: "doc zero"},
		{ID: "1", Content: "doc one"},
		{ID: "2", Content: "doc two"},
		{ID: "3", Content: "doc three"},
		{ID: "4", Content: "doc four"},
	}
}

func TestRetrieveFiltersAndLimits(t *testing.T) {
	searcher := &fakeSearcher{matches: fiveMatches()}
	reranker := &fakeReranker{ranked: []RankedDocument{
		{Index: 0, RelevanceScore: 0.9},
		{Index: 1, RelevanceScore: 0.5},
		{Index: 2, RelevanceScore: 0.05},
		{Index: 3, RelevanceScore: 0.2},
		{Index: 4, RelevanceScore: 0.3},
	}}
	r := NewRetriever(searcher, reranker)
	userID := uuid.New()

	results, err := r.Retrieve(context.Background(), "how do retries work", []string{"how do retries work", "retry configuration"}, 3, userID)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.InDelta(t, 0.9, results[0].RelevanceScore, 1e-9)
	assert.InDelta(t, 0.5, results[1].RelevanceScore, 1e-9)
	assert.InDelta(t, 0.3, results[2].RelevanceScore, 1e-9)
	assert.Equal(t, "doc zero", results[0].Text)
	assert.Equal(t, "doc one", results[1].Text)
	assert.Equal(t, "doc four", results[2].Text)

	assert.Equal(t, userID, searcher.gotUserID)
	assert.Equal(t, []string{"how do retries work", "retry configuration"}, searcher.gotQueries)
	assert.Equal(t, "how do retries work", reranker.gotQuery)
	assert.Equal(t, []string{"doc zero", "doc one", "doc two", "doc three", "doc four"}, reranker.gotDocuments)
}

func TestRetrieveWithoutTopNKeepsProviderOrder(t *testing.T) {
	searcher := &fakeSearcher{matches: fiveMatches()}
	reranker := &fakeReranker{ranked: []RankedDocument{
		{Index: 3, RelevanceScore: 0.4},
		{Index: 0, RelevanceScore: 0.8},
		{Index: 2, RelevanceScore: 0.02},
	}}
	r := NewRetriever(searcher, reranker)

	results, err := r.Retrieve(context.Background(), "q", []string{"q"}, 0, uuid.New())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 3, results[0].Index)
	assert.Equal(t, 0, results[1].Index)
}

func TestRetrieveEmptyIndex(t *testing.T) {
	searcher := &fakeSearcher{}
	reranker := &fakeReranker{}
	r := NewRetriever(searcher, reranker)

	results, err := r.Retrieve(context.Background(), "q", []string{"q"}, 3, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.True(t, searcher.queryCalled)
	assert.False(t, reranker.called)
}

func TestRetrieveSkipsOutOfRangeIndexes(t *testing.T) {
	searcher := &fakeSearcher{matches: fiveMatches()[:2]}
	reranker := &fakeReranker{ranked: []RankedDocument{
		{Index: 1, RelevanceScore: 0.7},
		{Index: 9, RelevanceScore: 0.6},
	}}
	r := NewRetriever(searcher, reranker)

	results, err := r.Retrieve(context.Background(), "q", []string{"q"}, 0, uuid.New())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Index)
}
