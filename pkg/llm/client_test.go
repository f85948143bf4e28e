package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

func newTestClient(serverURL string) *Client {
	ac := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(serverURL),
		option.WithMaxRetries(0),
	)
	return NewClient(&ac.Messages, &config.AnthropicConfig{
		Model:        "claude-chat-test",
		SummaryModel: "claude-small-test",
		MaxTokens:    512,
	})
}

// anthropicRequest is the wire shape of a Messages API call, decoded for
// assertions.
type anthropicRequest struct {
	Model      string             `json:"model"`
	MaxTokens  int                `json:"max_tokens"`
	System     []map[string]any   `json:"system"`
	Messages   []anthropicMessage `json:"messages"`
	Tools      []anthropicTool    `json:"tools"`
	ToolChoice map[string]any     `json:"tool_choice"`
}

type anthropicMessage struct {
	Role    string           `json:"role"`
	Content []map[string]any `json:"content"`
}

type anthropicTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

type sseFrame struct {
	event string
	data  string
}

func writeStream(w http.ResponseWriter, frames []sseFrame) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.WriteHeader(http.StatusOK)
	for _, f := range frames {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", f.event, f.data)
	}
}

func messageFixture(blocks ...string) string {
	return fmt.Sprintf(
		`{"id":"msg_01","type":"message","role":"assistant","model":"claude-small-test",`+
			`"content":[%s],"stop_reason":"tool_use","stop_sequence":null,`+
			`"usage":{"input_tokens":10,"output_tokens":5}}`,
		strings.Join(blocks, ","),
	)
}

func collectEvents(stream <-chan StreamEvent) []StreamEvent {
	var events []StreamEvent
	for event := range stream {
		events = append(events, event)
	}
	return events
}

func TestStreamResponseTranslatesTextStream(t *testing.T) {
	var (
		gotPath   string
		gotAPIKey string
		gotBody   []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("X-Api-Key")
		gotBody, _ = io.ReadAll(r.Body)
		writeStream(w, []sseFrame{
			{"message_start", `{"type":"message_start","message":{"id":"msg_01","type":"message","role":"assistant","model":"claude-chat-test","content":[],"stop_reason":null,"usage":{"input_tokens":25,"output_tokens":0}}}`},
			{"content_block_start", `{"type":"content_block_start","index":0,"content_block":{"type":"text","text":""}}`},
			{"content_block_delta", `{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Retries use "}}`},
			{"content_block_delta", `{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"exponential backoff."}}`},
			{"content_block_stop", `{"type":"content_block_stop","index":0}`},
			{"message_delta", `{"type":"message_delta","delta":{"stop_reason":"end_turn","stop_sequence":null},"usage":{"input_tokens":25,"output_tokens":7}}`},
			{"message_stop", `{"type":"message_stop"}`},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	stream, err := client.StreamResponse(context.Background(), StreamRequest{
		System: "You answer questions about loaded sources.",
		Messages: []models.ConversationMessage{
			{Role: models.RoleUser, Content: models.ContentBlocks{
				&models.TextBlock{Text: "How do retries work?"},
			}},
			{Role: models.RoleAssistant, Content: models.ContentBlocks{
				&models.TextBlock{Text: "Let me check."},
				&models.ToolUseBlock{ID: "tu_1", Name: "rag_search", Input: map[string]any{"rag_query": "retry policy"}},
			}},
			{Role: models.RoleUser, Content: models.ContentBlocks{
				&models.ToolResultBlock{ToolUseID: "tu_1", Content: "Retries are configured per client."},
			}},
		},
		Tools: []ToolSpec{ragSearchTool()},
	})
	require.NoError(t, err)

	events := collectEvents(stream)
	require.Len(t, events, 7)

	assert.IsType(t, MessageStartEvent{}, events[0])

	start := events[1].(ContentBlockStartEvent)
	assert.Equal(t, 0, start.Index)
	require.IsType(t, &models.TextBlock{}, start.Block)

	first := events[2].(ContentBlockDeltaEvent)
	assert.Equal(t, "Retries use ", first.TextDelta)
	second := events[3].(ContentBlockDeltaEvent)
	assert.Equal(t, "exponential backoff.", second.TextDelta)

	assert.Equal(t, ContentBlockStopEvent{Index: 0}, events[4])

	delta := events[5].(MessageDeltaEvent)
	assert.Equal(t, "end_turn", delta.StopReason)
	assert.Equal(t, 25, delta.Usage.InputTokens)
	assert.Equal(t, 7, delta.Usage.OutputTokens)

	assert.IsType(t, MessageStopEvent{}, events[6])

	// The request carried the full conversation in wire form.
	assert.Equal(t, "/v1/messages", gotPath)
	assert.Equal(t, "test-key", gotAPIKey)

	var req anthropicRequest
	require.NoError(t, json.Unmarshal(gotBody, &req))
	assert.Equal(t, "claude-chat-test", req.Model)
	assert.Equal(t, 512, req.MaxTokens)
	require.Len(t, req.System, 1)
	assert.Equal(t, "You answer questions about loaded sources.", req.System[0]["text"])

	require.Len(t, req.Messages, 3)
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Equal(t, "assistant", req.Messages[1].Role)
	assert.Equal(t, "user", req.Messages[2].Role)

	require.Len(t, req.Messages[1].Content, 2)
	toolUse := req.Messages[1].Content[1]
	assert.Equal(t, "tool_use", toolUse["type"])
	assert.Equal(t, "tu_1", toolUse["id"])
	assert.Equal(t, map[string]any{"rag_query": "retry policy"}, toolUse["input"])

	toolResult := req.Messages[2].Content[0]
	assert.Equal(t, "tool_result", toolResult["type"])
	assert.Equal(t, "tu_1", toolResult["tool_use_id"])

	require.Len(t, req.Tools, 1)
	assert.Equal(t, "rag_search", req.Tools[0].Name)
	assert.NotEmpty(t, req.Tools[0].Description)
	assert.Equal(t, "object", req.Tools[0].InputSchema["type"])
	assert.Equal(t, []any{"rag_query"}, req.Tools[0].InputSchema["required"])
}

func TestStreamResponseTranslatesToolUseStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeStream(w, []sseFrame{
			{"message_start", `{"type":"message_start","message":{"id":"msg_02","type":"message","role":"assistant","model":"claude-chat-test","content":[],"stop_reason":null,"usage":{"input_tokens":30,"output_tokens":0}}}`},
			{"content_block_start", `{"type":"content_block_start","index":0,"content_block":{"type":"tool_use","id":"tu_9","name":"rag_search","input":{}}}`},
			{"content_block_delta", `{"type":"content_block_delta","index":0,"delta":{"type":"input_json_delta","partial_json":"{\"rag_q"}}`},
			{"content_block_delta", `{"type":"content_block_delta","index":0,"delta":{"type":"input_json_delta","partial_json":"uery\":\"webhooks\"}"}}`},
			{"content_block_stop", `{"type":"content_block_stop","index":0}`},
			{"message_delta", `{"type":"message_delta","delta":{"stop_reason":"tool_use","stop_sequence":null},"usage":{"input_tokens":30,"output_tokens":12}}`},
			{"message_stop", `{"type":"message_stop"}`},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	stream, err := client.StreamResponse(context.Background(), StreamRequest{
		Messages: []models.ConversationMessage{
			{Role: models.RoleUser, Content: models.ContentBlocks{&models.TextBlock{Text: "What about webhooks?"}}},
		},
	})
	require.NoError(t, err)

	events := collectEvents(stream)
	require.Len(t, events, 7)

	start := events[1].(ContentBlockStartEvent)
	toolUse := start.Block.(*models.ToolUseBlock)
	assert.Equal(t, "tu_9", toolUse.ID)
	assert.Equal(t, "rag_search", toolUse.Name)

	assert.Equal(t, `{"rag_q`, events[2].(ContentBlockDeltaEvent).ToolInputJSONDelta)
	assert.Equal(t, `uery":"webhooks"}`, events[3].(ContentBlockDeltaEvent).ToolInputJSONDelta)

	delta := events[5].(MessageDeltaEvent)
	assert.Equal(t, "tool_use", delta.StopReason)
}

func TestStreamResponseSurfacesAPIErrorsInBand(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{name: "overloaded is retryable", status: 529, retryable: true},
		{name: "bad request is not", status: http.StatusBadRequest, retryable: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				fmt.Fprint(w, `{"type":"error","error":{"type":"api_error","message":"nope"}}`)
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			stream, err := client.StreamResponse(context.Background(), StreamRequest{
				Messages: []models.ConversationMessage{
					{Role: models.RoleUser, Content: models.ContentBlocks{&models.TextBlock{Text: "hi"}}},
				},
			})
			require.NoError(t, err)

			events := collectEvents(stream)
			require.Len(t, events, 1)
			errEvent := events[0].(ErrorEvent)
			require.Error(t, errEvent.Err)
			assert.Equal(t, tc.retryable, IsRetryable(errEvent.Err))
		})
	}
}

func TestStreamResponseRequiresMessages(t *testing.T) {
	client := newTestClient("http://localhost:0")
	_, err := client.StreamResponse(context.Background(), StreamRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one message")
}

func TestForceToolReturnsToolInput(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, messageFixture(
			`{"type":"tool_use","id":"tu_5","name":"multi_query_tool","input":{"queries":["a","b","c"]}}`,
		))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	raw, err := client.ForceTool(context.Background(), ToolCallRequest{
		Prompt: "Expand this query.",
		Tool:   multiQueryTool(),
	})
	require.NoError(t, err)

	var input struct {
		Queries []string `json:"queries"`
	}
	require.NoError(t, json.Unmarshal(raw, &input))
	assert.Equal(t, []string{"a", "b", "c"}, input.Queries)

	var req anthropicRequest
	require.NoError(t, json.Unmarshal(gotBody, &req))
	assert.Equal(t, "claude-small-test", req.Model)
	assert.Equal(t, "tool", req.ToolChoice["type"])
	assert.Equal(t, "multi_query_tool", req.ToolChoice["name"])
	require.Len(t, req.Tools, 1)
	assert.Equal(t, "multi_query_tool", req.Tools[0].Name)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "Expand this query.", req.Messages[0].Content[0]["text"])
}

func TestForceToolRejectsReplyWithoutToolUse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, messageFixture(`{"type":"text","text":"I would rather not."}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ForceTool(context.Background(), ToolCallRequest{
		Prompt: "Expand this query.",
		Tool:   multiQueryTool(),
	})
	require.Error(t, err)
	var nonRetryable *NonRetryableError
	require.ErrorAs(t, err, &nonRetryable)
	assert.False(t, IsRetryable(err))
}

func TestForceToolClassifiesProviderErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, retryable: true},
		{name: "server error", status: http.StatusInternalServerError, retryable: true},
		{name: "unauthorized", status: http.StatusUnauthorized, retryable: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				fmt.Fprint(w, `{"type":"error","error":{"type":"api_error","message":"nope"}}`)
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			_, err := client.ForceTool(context.Background(), ToolCallRequest{
				Prompt: "Expand this query.",
				Tool:   multiQueryTool(),
			})
			require.Error(t, err)
			assert.Equal(t, tc.retryable, IsRetryable(err))
		})
	}
}

func TestForceToolRejectsEmptyPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty prompt")
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ForceTool(context.Background(), ToolCallRequest{Tool: multiQueryTool()})
	require.Error(t, err)
	var nonRetryable *NonRetryableError
	assert.ErrorAs(t, err, &nonRetryable)
}
