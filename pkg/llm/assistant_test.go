package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/retrieval"
)

type fakeRetriever struct {
	results []retrieval.Result
	err     error

	calls       int
	gotQuery    string
	gotCombined []string
	gotTopN     int
	gotUserID   uuid.UUID
}

func (f *fakeRetriever) Retrieve(_ context.Context, ragQuery string, combinedQueries []string, topN int, userID uuid.UUID) ([]retrieval.Result, error) {
	f.calls++
	f.gotQuery = ragQuery
	f.gotCombined = combinedQueries
	f.gotTopN = topN
	f.gotUserID = userID
	return f.results, f.err
}

type fakeSummaryLister struct {
	summaries []models.SourceSummary
	err       error
	calls     int
}

func (f *fakeSummaryLister) ListUserSummaries(context.Context, uuid.UUID) ([]models.SourceSummary, error) {
	f.calls++
	return f.summaries, f.err
}

func newTestAssistant(serverURL string, retriever Retriever, summaries SummaryLister) *Assistant {
	return NewAssistant(newTestClient(serverURL), retriever, summaries, &config.ChatConfig{
		MultiQueryCount: 3,
		RetrieveTopN:    3,
	})
}

// multiQueryServer answers every Messages call with a multi_query_tool use
// carrying the given raw input JSON.
func multiQueryServer(t *testing.T, input string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, messageFixture(
			`{"type":"tool_use","id":"tu_mq","name":"multi_query_tool","input":`+input+`}`,
		))
	}))
}

func TestHandleToolUseFormatsRetrievedDocuments(t *testing.T) {
	server := multiQueryServer(t, `{"queries":["q1","q2","q3"]}`)
	defer server.Close()

	retriever := &fakeRetriever{results: []retrieval.Result{
		{Index: 0, Text: "alpha", RelevanceScore: 0.9},
		{Index: 1, Text: "beta", RelevanceScore: 0.42},
	}}
	assistant := newTestAssistant(server.URL, retriever, &fakeSummaryLister{})
	userID := uuid.New()

	block := &models.ToolUseBlock{
		ID:    "tu_1",
		Name:  "rag_search",
		Input: map[string]any{"rag_query": "how to configure retries"},
	}
	result, err := assistant.HandleToolUse(context.Background(), block, userID)
	require.NoError(t, err)

	assert.Equal(t, "tu_1", result.ToolUseID)
	assert.False(t, result.IsError)
	want := "Here is context retrieved for the query:\n\n" +
		"Document's relevance score: 0.9:\nDocument text: alpha:\n--------\n" +
		"Document's relevance score: 0.42:\nDocument text: beta:\n--------\n"
	assert.Equal(t, want, result.Content)

	assert.Equal(t, "how to configure retries", retriever.gotQuery)
	assert.Equal(t, []string{"q1", "q2", "q3", "how to configure retries"}, retriever.gotCombined)
	assert.Equal(t, 3, retriever.gotTopN)
	assert.Equal(t, userID, retriever.gotUserID)
}

func TestHandleToolUseWithoutHits(t *testing.T) {
	server := multiQueryServer(t, `{"queries":["q1","q2","q3"]}`)
	defer server.Close()

	assistant := newTestAssistant(server.URL, &fakeRetriever{}, &fakeSummaryLister{})
	result, err := assistant.HandleToolUse(context.Background(), &models.ToolUseBlock{
		ID:    "tu_1",
		Name:  "rag_search",
		Input: map[string]any{"rag_query": "anything"},
	}, uuid.New())
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "No relevant documents were found for this query.", result.Content)
}

func TestHandleToolUseModelMistakes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("model mistakes must not reach the provider")
	}))
	defer server.Close()

	retriever := &fakeRetriever{}
	assistant := newTestAssistant(server.URL, retriever, &fakeSummaryLister{})

	t.Run("unknown tool", func(t *testing.T) {
		result, err := assistant.HandleToolUse(context.Background(), &models.ToolUseBlock{
			ID:   "tu_2",
			Name: "weather",
		}, uuid.New())
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, result.Content, `Unknown tool "weather"`)
	})

	t.Run("missing rag_query", func(t *testing.T) {
		result, err := assistant.HandleToolUse(context.Background(), &models.ToolUseBlock{
			ID:    "tu_3",
			Name:  "rag_search",
			Input: map[string]any{},
		}, uuid.New())
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, result.Content, "rag_query")
	})

	assert.Equal(t, 0, retriever.calls)
}

func TestHandleToolUseRetrieverFailureIsFatal(t *testing.T) {
	server := multiQueryServer(t, `{"queries":["q1","q2","q3"]}`)
	defer server.Close()

	assistant := newTestAssistant(server.URL, &fakeRetriever{err: errors.New("vector store down")}, &fakeSummaryLister{})
	_, err := assistant.HandleToolUse(context.Background(), &models.ToolUseBlock{
		ID:    "tu_1",
		Name:  "rag_search",
		Input: map[string]any{"rag_query": "anything"},
	}, uuid.New())
	require.Error(t, err)
	var nonRetryable *NonRetryableError
	assert.ErrorAs(t, err, &nonRetryable)
}

func TestGenerateMultiQuery(t *testing.T) {
	t.Run("truncates long replies", func(t *testing.T) {
		var gotBody []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, messageFixture(
				`{"type":"tool_use","id":"tu_mq","name":"multi_query_tool","input":{"queries":["q1","q2","q3","q4","q5"]}}`,
			))
		}))
		defer server.Close()

		assistant := newTestAssistant(server.URL, &fakeRetriever{}, &fakeSummaryLister{})
		queries, err := assistant.GenerateMultiQuery(context.Background(), "original question", 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"q1", "q2", "q3"}, queries)

		// The prompt names the variant count and carries the query itself.
		assert.Contains(t, string(gotBody), "3 alternative phrasings")
		assert.Contains(t, string(gotBody), "original question")
	})

	t.Run("pads short replies with the original query", func(t *testing.T) {
		server := multiQueryServer(t, `{"queries":["only one"]}`)
		defer server.Close()

		assistant := newTestAssistant(server.URL, &fakeRetriever{}, &fakeSummaryLister{})
		queries, err := assistant.GenerateMultiQuery(context.Background(), "original question", 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"only one", "original question", "original question"}, queries)
	})

	t.Run("missing queries key is fatal", func(t *testing.T) {
		server := multiQueryServer(t, `{"phrasings":["a"]}`)
		defer server.Close()

		assistant := newTestAssistant(server.URL, &fakeRetriever{}, &fakeSummaryLister{})
		_, err := assistant.GenerateMultiQuery(context.Background(), "original question", 3)
		require.Error(t, err)
		var nonRetryable *NonRetryableError
		assert.ErrorAs(t, err, &nonRetryable)
	})

	t.Run("non-list queries value is fatal", func(t *testing.T) {
		server := multiQueryServer(t, `{"queries":"not a list"}`)
		defer server.Close()

		assistant := newTestAssistant(server.URL, &fakeRetriever{}, &fakeSummaryLister{})
		_, err := assistant.GenerateMultiQuery(context.Background(), "original question", 3)
		require.Error(t, err)
		var nonRetryable *NonRetryableError
		assert.ErrorAs(t, err, &nonRetryable)
	})
}

func TestSystemPromptCachesPerUser(t *testing.T) {
	lister := &fakeSummaryLister{summaries: []models.SourceSummary{
		{Summary: "Covers the retry APIs.", Keywords: []string{"retry", "backoff"}},
		{Summary: "Covers webhook delivery."},
	}}
	assistant := newTestAssistant("http://localhost:0", &fakeRetriever{}, lister)

	alice := uuid.New()
	bob := uuid.New()

	prompt, err := assistant.SystemPrompt(context.Background(), alice)
	require.NoError(t, err)
	assert.Contains(t, prompt, "1. Covers the retry APIs.")
	assert.Contains(t, prompt, "Keywords: retry, backoff")
	assert.Contains(t, prompt, "2. Covers webhook delivery.")
	assert.Equal(t, 1, lister.calls)

	// Second call for the same user is served from the cache.
	_, err = assistant.SystemPrompt(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, 1, lister.calls)

	// A different user gets their own prompt.
	_, err = assistant.SystemPrompt(context.Background(), bob)
	require.NoError(t, err)
	assert.Equal(t, 2, lister.calls)

	assistant.InvalidateSystemPrompt(alice)
	_, err = assistant.SystemPrompt(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, 3, lister.calls)
}

func TestSystemPromptWithoutSources(t *testing.T) {
	assistant := newTestAssistant("http://localhost:0", &fakeRetriever{}, &fakeSummaryLister{})
	prompt, err := assistant.SystemPrompt(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Contains(t, prompt, "has not loaded any sources yet")
}

func TestAssistantStreamResponseAdvertisesRagSearch(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		writeStream(w, []sseFrame{
			{"message_start", `{"type":"message_start","message":{"id":"msg_03","type":"message","role":"assistant","model":"claude-chat-test","content":[],"stop_reason":null,"usage":{"input_tokens":5,"output_tokens":0}}}`},
			{"message_stop", `{"type":"message_stop"}`},
		})
	}))
	defer server.Close()

	lister := &fakeSummaryLister{summaries: []models.SourceSummary{
		{Summary: "Covers payment webhooks."},
	}}
	assistant := newTestAssistant(server.URL, &fakeRetriever{}, lister)

	history := &models.ConversationHistory{
		ConversationID: uuid.New(),
		UserID:         uuid.New(),
		Messages: []models.ConversationMessage{
			{Role: models.RoleUser, Content: models.ContentBlocks{&models.TextBlock{Text: "hello"}}},
		},
	}
	stream, err := assistant.StreamResponse(context.Background(), history)
	require.NoError(t, err)
	events := collectEvents(stream)
	require.Len(t, events, 2)

	var req anthropicRequest
	require.NoError(t, json.Unmarshal(gotBody, &req))
	require.Len(t, req.System, 1)
	assert.Contains(t, req.System[0]["text"], "Covers payment webhooks.")
	require.Len(t, req.Tools, 1)
	assert.Equal(t, "rag_search", req.Tools[0].Name)
}
