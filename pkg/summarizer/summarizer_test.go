package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/llm"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

type fakeStore struct {
	saved []models.SourceSummary
	err   error
}

func (f *fakeStore) SaveSummary(_ context.Context, summary models.SourceSummary) (models.SourceSummary, error) {
	if f.err != nil {
		return models.SourceSummary{}, f.err
	}
	summary.ID = uuid.New()
	f.saved = append(f.saved, summary)
	return summary, nil
}

func newTestGenerator(serverURL string, store SummaryStore) *Generator {
	ac := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(serverURL),
		option.WithMaxRetries(0),
	)
	client := llm.NewClient(&ac.Messages, &config.AnthropicConfig{
		Model:        "claude-chat-test",
		SummaryModel: "claude-small-test",
		MaxTokens:    512,
	})
	g := NewGenerator(client, store)
	g.rng = rand.New(rand.NewPCG(1, 2))
	return g
}

// capturedRequest is the slice of the messages request body these tests
// assert on.
type capturedRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
	Tools []struct {
		Name        string         `json:"name"`
		InputSchema map[string]any `json:"input_schema"`
	} `json:"tools"`
	ToolChoice map[string]any `json:"tool_choice"`
}

func summaryReply(input string) string {
	return fmt.Sprintf(`{
		"id": "msg_sum",
		"type": "message",
		"role": "assistant",
		"model": "claude-small-test",
		"stop_reason": "tool_use",
		"content": [
			{"type": "text", "text": "Recording the summary."},
			{"type": "tool_use", "id": "tu_sum", "name": "summary_tool", "input": %s}
		],
		"usage": {"input_tokens": 40, "output_tokens": 18}
	}`, input)
}

func summaryServer(t *testing.T, input string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, captured))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, summaryReply(input))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func docsFixture(n int) []models.Document {
	titles := []string{"Getting Started", "Getting Started", "", "Webhooks", "Retries", "Chunking", "Search"}
	docs := make([]models.Document, n)
	for i := range docs {
		docs[i] = models.Document{
			ID:      uuid.New(),
			Content: fmt.Sprintf("# Page %02d\n\nBody for page %02d.", i+1, i+1),
			Metadata: models.DocumentMetadata{
				Title:     titles[i%len(titles)],
				SourceURL: fmt.Sprintf("https://docs.example.com/page-%02d", i+1),
			},
		}
	}
	return docs
}

func promptText(t *testing.T, captured *capturedRequest) string {
	t.Helper()
	require.Len(t, captured.Messages, 1)
	require.Equal(t, "user", captured.Messages[0].Role)
	require.Len(t, captured.Messages[0].Content, 1)
	return captured.Messages[0].Content[0].Text
}

func TestGenerateStoresSummary(t *testing.T) {
	server, captured := summaryServer(t, `{
		"summary": "Covers the retry and webhook APIs of the example platform.",
		"keywords": ["retry", "backoff", "webhooks"]
	}`)

	store := &fakeStore{}
	g := newTestGenerator(server.URL, store)
	sourceID := uuid.New()

	saved, err := g.Generate(context.Background(), sourceID, docsFixture(7))
	require.NoError(t, err)

	assert.Equal(t, sourceID, saved.SourceID)
	assert.Equal(t, "Covers the retry and webhook APIs of the example platform.", saved.Summary)
	assert.Equal(t, []string{"retry", "backoff", "webhooks"}, saved.Keywords)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	require.Len(t, store.saved, 1)
	assert.Equal(t, saved.Summary, store.saved[0].Summary)

	assert.Equal(t, "claude-small-test", captured.Model)
	require.Len(t, captured.Tools, 1)
	assert.Equal(t, "summary_tool", captured.Tools[0].Name)
	assert.ElementsMatch(t, []any{"summary", "keywords"}, captured.Tools[0].InputSchema["required"])
	assert.Equal(t, "tool", captured.ToolChoice["type"])
	assert.Equal(t, "summary_tool", captured.ToolChoice["name"])

	prompt := promptText(t, captured)
	assert.Contains(t, prompt, "7 pages across 7 unique URLs and 5 unique titles")
	assert.Contains(t, prompt, "https://docs.example.com/page-01")
	assert.Contains(t, prompt, "- Getting Started\n")
	assert.Equal(t, 5, strings.Count(prompt, "--- Sample "))
	assert.Contains(t, prompt, "summary_tool")
}

func TestGenerateSamplesAllWhenFew(t *testing.T) {
	server, captured := summaryServer(t, `{"summary": "Short source.", "keywords": ["short"]}`)

	g := newTestGenerator(server.URL, &fakeStore{})
	_, err := g.Generate(context.Background(), uuid.New(), docsFixture(3))
	require.NoError(t, err)

	prompt := promptText(t, captured)
	assert.Contains(t, prompt, "3 pages across 3 unique URLs")
	assert.Equal(t, 3, strings.Count(prompt, "--- Sample "))
}

func TestGenerateTruncatesContentSamples(t *testing.T) {
	server, captured := summaryServer(t, `{"summary": "Long source.", "keywords": ["long"]}`)

	docs := docsFixture(2)
	docs[0].Content = strings.Repeat("a", 500) + "OVERFLOW"

	g := newTestGenerator(server.URL, &fakeStore{})
	_, err := g.Generate(context.Background(), uuid.New(), docs)
	require.NoError(t, err)

	prompt := promptText(t, captured)
	assert.Contains(t, prompt, strings.Repeat("a", 500))
	assert.NotContains(t, prompt, "OVERFLOW")
}

func TestGenerateKeywordsOptional(t *testing.T) {
	server, _ := summaryServer(t, `{"summary": "Covers one topic."}`)

	store := &fakeStore{}
	g := newTestGenerator(server.URL, store)
	saved, err := g.Generate(context.Background(), uuid.New(), docsFixture(2))
	require.NoError(t, err)

	assert.Equal(t, "Covers one topic.", saved.Summary)
	assert.Empty(t, saved.Keywords)
	require.Len(t, store.saved, 1)
}

func TestGenerateMalformedToolInput(t *testing.T) {
	server, _ := summaryServer(t, `{"summary": 42}`)

	store := &fakeStore{}
	g := newTestGenerator(server.URL, store)
	_, err := g.Generate(context.Background(), uuid.New(), docsFixture(2))

	var fatal *llm.NonRetryableError
	require.ErrorAs(t, err, &fatal)
	assert.False(t, llm.IsRetryable(err))
	assert.Empty(t, store.saved)
}

func TestGenerateRejectsEmptySummary(t *testing.T) {
	server, _ := summaryServer(t, `{"summary": "   ", "keywords": ["x"]}`)

	store := &fakeStore{}
	g := newTestGenerator(server.URL, store)
	_, err := g.Generate(context.Background(), uuid.New(), docsFixture(2))

	var fatal *llm.NonRetryableError
	require.ErrorAs(t, err, &fatal)
	assert.Empty(t, store.saved)
}

func TestGenerateWithoutToolUse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "msg_text",
			"type": "message",
			"role": "assistant",
			"model": "claude-small-test",
			"stop_reason": "end_turn",
			"content": [{"type": "text", "text": "I cannot summarize this."}],
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`)
	}))
	t.Cleanup(server.Close)

	store := &fakeStore{}
	g := newTestGenerator(server.URL, store)
	_, err := g.Generate(context.Background(), uuid.New(), docsFixture(2))

	var fatal *llm.NonRetryableError
	require.ErrorAs(t, err, &fatal)
	assert.Empty(t, store.saved)
}

func TestGenerateNoDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called for an empty document set")
	}))
	t.Cleanup(server.Close)

	g := newTestGenerator(server.URL, &fakeStore{})
	_, err := g.Generate(context.Background(), uuid.New(), nil)

	var fatal *llm.NonRetryableError
	require.ErrorAs(t, err, &fatal)
}

func TestGenerateStoreFailure(t *testing.T) {
	server, _ := summaryServer(t, `{"summary": "Covers storage.", "keywords": ["storage"]}`)

	g := newTestGenerator(server.URL, &fakeStore{err: fmt.Errorf("connection reset")})
	_, err := g.Generate(context.Background(), uuid.New(), docsFixture(2))

	require.ErrorContains(t, err, "save summary")
}

func TestSampleDocumentsKeepsCrawlOrder(t *testing.T) {
	g := newTestGenerator("http://localhost:0", &fakeStore{})
	docs := docsFixture(20)

	sampled := g.sampleDocuments(docs)
	require.Len(t, sampled, 5)

	position := make(map[string]int, len(docs))
	for i, d := range docs {
		position[d.Metadata.SourceURL] = i
	}
	last := -1
	for _, d := range sampled {
		idx, ok := position[d.Metadata.SourceURL]
		require.True(t, ok, "sampled document not in input set")
		assert.Greater(t, idx, last, "samples must keep crawl order")
		last = idx
	}
}
