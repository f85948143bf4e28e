package chat

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/conversation"
	"github.com/kollektiv-ai/kollektiv/pkg/llm"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

type fakeConversations struct {
	mu        sync.Mutex
	turn      *conversation.Turn
	setupErr  error
	setups    int
	pending   []models.ConversationMessage
	commits   int
	clears    int
	commitErr error
}

func (f *fakeConversations) SetupTurn(_ context.Context, _, _ uuid.UUID, _ string) (*conversation.Turn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setups++
	if f.setupErr != nil {
		return nil, f.setupErr
	}
	return f.turn, nil
}

func (f *fakeConversations) AddPending(_ context.Context, msg models.ConversationMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, msg)
	return nil
}

func (f *fakeConversations) CommitPending(_ context.Context, _, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.commitErr != nil {
		return f.commitErr
	}
	f.commits++
	return nil
}

func (f *fakeConversations) ClearPending(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	return nil
}

type fakeAssistant struct {
	mu           sync.Mutex
	scripts      [][]llm.StreamEvent
	calls        int
	histories    [][]models.ConversationMessage
	handleResult *models.ToolResultBlock
	handleErr    error
	handled      []*models.ToolUseBlock
}

func (f *fakeAssistant) StreamResponse(_ context.Context, history *models.ConversationHistory) (<-chan llm.StreamEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls >= len(f.scripts) {
		return nil, fmt.Errorf("unexpected stream call %d", f.calls+1)
	}
	snapshot := make([]models.ConversationMessage, len(history.Messages))
	copy(snapshot, history.Messages)
	f.histories = append(f.histories, snapshot)
	script := f.scripts[f.calls]
	f.calls++

	ch := make(chan llm.StreamEvent, len(script))
	for _, e := range script {
		ch <- e
	}
	close(ch)
	return ch, nil
}

func (f *fakeAssistant) HandleToolUse(_ context.Context, block *models.ToolUseBlock, _ uuid.UUID) (*models.ToolResultBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handled = append(f.handled, block)
	if f.handleErr != nil {
		return nil, f.handleErr
	}
	return f.handleResult, nil
}

func newTurn(userID uuid.UUID, text string) *conversation.Turn {
	conversationID := uuid.New()
	msg := models.NewUserTextMessage(conversationID, text)
	return &conversation.Turn{
		History: &models.ConversationHistory{
			ConversationID: conversationID,
			UserID:         userID,
			Messages:       []models.ConversationMessage{msg},
			TokenCount:     5,
		},
		UserMessage: msg,
		Title:       models.DeriveConversationTitle(text),
	}
}

// textStream scripts a plain text response delivered in the given deltas.
func textStream(deltas ...string) []llm.StreamEvent {
	events := []llm.StreamEvent{
		llm.MessageStartEvent{},
		llm.ContentBlockStartEvent{Index: 0, Block: &models.TextBlock{}},
	}
	for _, d := range deltas {
		events = append(events, llm.ContentBlockDeltaEvent{Index: 0, TextDelta: d})
	}
	return append(events,
		llm.ContentBlockStopEvent{Index: 0},
		llm.MessageDeltaEvent{StopReason: "end_turn"},
		llm.MessageStopEvent{},
	)
}

// toolUseStream scripts a response that thinks aloud and then requests the
// rag_search tool with its input split across two JSON deltas.
func toolUseStream(inputDeltas ...string) []llm.StreamEvent {
	events := []llm.StreamEvent{
		llm.MessageStartEvent{},
		llm.ContentBlockStartEvent{Index: 0, Block: &models.TextBlock{}},
		llm.ContentBlockDeltaEvent{Index: 0, TextDelta: "Let me search the docs."},
		llm.ContentBlockStopEvent{Index: 0},
		llm.ContentBlockStartEvent{Index: 1, Block: &models.ToolUseBlock{ID: "tu_1", Name: "rag_search"}},
	}
	for _, d := range inputDeltas {
		events = append(events, llm.ContentBlockDeltaEvent{Index: 1, ToolInputJSONDelta: d})
	}
	return append(events,
		llm.ContentBlockStopEvent{Index: 1},
		llm.MessageDeltaEvent{StopReason: "tool_use"},
		llm.MessageStopEvent{},
	)
}

func collect(ch <-chan models.FrontendChatEvent) []models.FrontendChatEvent {
	var out []models.FrontendChatEvent
	for e := range ch {
		out = append(out, e)
	}
	return out
}

func eventTypes(events []models.FrontendChatEvent) []models.FrontendEventType {
	out := make([]models.FrontendEventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func TestGetResponseStreamsTextTurn(t *testing.T) {
	userID := uuid.New()
	conversations := &fakeConversations{turn: newTurn(userID, "How do I configure retries?")}
	assistant := &fakeAssistant{scripts: [][]llm.StreamEvent{
		textStream("Retries use ", "exponential backoff."),
	}}
	svc := NewService(conversations, assistant)

	ch, err := svc.GetResponse(context.Background(), userID, uuid.Nil, "How do I configure retries?")
	require.NoError(t, err)
	events := collect(ch)

	require.Equal(t, []models.FrontendEventType{
		models.FrontendEventMessageAccepted,
		models.FrontendEventContentBlockStart,
		models.FrontendEventContentBlockDelta,
		models.FrontendEventContentBlockDelta,
		models.FrontendEventContentBlockStop,
		models.FrontendEventMessageStop,
		models.FrontendEventAssistantMessage,
	}, eventTypes(events))

	accepted := events[0]
	require.NotNil(t, accepted.ConversationID)
	assert.Equal(t, conversations.turn.History.ConversationID, *accepted.ConversationID)
	assert.Equal(t, "How do I configure retries?", accepted.Title)

	assert.Equal(t, "Retries use ", events[2].TextDelta)
	require.NotNil(t, events[1].Index)
	assert.Equal(t, 0, *events[1].Index)

	final := events[6]
	require.NotNil(t, final.Message)
	assert.Equal(t, models.RoleAssistant, final.Message.Role)
	assert.Equal(t, "Retries use exponential backoff.", final.Message.FirstText())

	require.Len(t, conversations.pending, 1)
	assert.Equal(t, "Retries use exponential backoff.", conversations.pending[0].FirstText())
	assert.Equal(t, 1, conversations.commits)
	assert.Equal(t, 0, conversations.clears)
}

func TestGetResponseRunsToolUseLoop(t *testing.T) {
	userID := uuid.New()
	conversations := &fakeConversations{turn: newTurn(userID, "What is the retry policy?")}
	assistant := &fakeAssistant{
		scripts: [][]llm.StreamEvent{
			toolUseStream(`{"rag_qu`, `ery":"retry policy"}`),
			textStream("Retries use exponential backoff."),
		},
		handleResult: &models.ToolResultBlock{
			ToolUseID: "tu_1",
			Content:   "Here is context retrieved for the query:\n\nDocument text: backoff",
		},
	}
	svc := NewService(conversations, assistant)

	ch, err := svc.GetResponse(context.Background(), userID, uuid.Nil, "What is the retry policy?")
	require.NoError(t, err)
	events := collect(ch)

	require.Equal(t, []models.FrontendEventType{
		models.FrontendEventMessageAccepted,
		models.FrontendEventContentBlockStart,
		models.FrontendEventContentBlockDelta,
		models.FrontendEventContentBlockStop,
		models.FrontendEventContentBlockStart,
		models.FrontendEventContentBlockDelta,
		models.FrontendEventContentBlockDelta,
		models.FrontendEventContentBlockStop,
		models.FrontendEventMessageStop,
		models.FrontendEventAssistantMessage,
		models.FrontendEventToolResultMessage,
		models.FrontendEventContentBlockStart,
		models.FrontendEventContentBlockDelta,
		models.FrontendEventContentBlockStop,
		models.FrontendEventMessageStop,
		models.FrontendEventAssistantMessage,
	}, eventTypes(events))

	// The buffered JSON deltas parse into the tool input.
	require.Len(t, assistant.handled, 1)
	assert.Equal(t, map[string]any{"rag_query": "retry policy"}, assistant.handled[0].Input)

	firstMsg := events[9].Message
	require.NotNil(t, firstMsg)
	require.Len(t, firstMsg.Content, 2)
	toolBlock, ok := firstMsg.Content[1].(*models.ToolUseBlock)
	require.True(t, ok)
	assert.Equal(t, "tu_1", toolBlock.ID)

	toolMsg := events[10].Message
	require.NotNil(t, toolMsg)
	assert.Equal(t, models.RoleUser, toolMsg.Role)
	require.Len(t, toolMsg.Content, 1)
	resultBlock, ok := toolMsg.Content[0].(*models.ToolResultBlock)
	require.True(t, ok)
	assert.Equal(t, "tu_1", resultBlock.ToolUseID)

	// The second stream saw the assistant message and the tool result.
	require.Len(t, assistant.histories, 2)
	assert.Len(t, assistant.histories[0], 1)
	assert.Len(t, assistant.histories[1], 3)

	require.Len(t, conversations.pending, 3)
	assert.Equal(t, models.RoleAssistant, conversations.pending[0].Role)
	assert.Equal(t, models.RoleUser, conversations.pending[1].Role)
	assert.Equal(t, models.RoleAssistant, conversations.pending[2].Role)
	assert.Equal(t, 1, conversations.commits)
	assert.Equal(t, 0, conversations.clears)
}

func TestGetResponseToolInputParseFailure(t *testing.T) {
	userID := uuid.New()
	conversations := &fakeConversations{turn: newTurn(userID, "hi")}
	assistant := &fakeAssistant{
		scripts: [][]llm.StreamEvent{
			toolUseStream("this is not json"),
			textStream("I could not find anything."),
		},
		handleResult: &models.ToolResultBlock{ToolUseID: "tu_1", Content: "No relevant documents were found for this query."},
	}
	svc := NewService(conversations, assistant)

	ch, err := svc.GetResponse(context.Background(), userID, uuid.Nil, "hi")
	require.NoError(t, err)
	collect(ch)

	require.Len(t, assistant.handled, 1)
	assert.Equal(t, map[string]any{}, assistant.handled[0].Input, "broken input degrades to an empty object")
	assert.Equal(t, 1, conversations.commits)
}

func TestGetResponseStreamErrorClearsPending(t *testing.T) {
	userID := uuid.New()
	conversations := &fakeConversations{turn: newTurn(userID, "hi")}
	assistant := &fakeAssistant{scripts: [][]llm.StreamEvent{{
		llm.MessageStartEvent{},
		llm.ErrorEvent{Err: &llm.NonRetryableError{Op: "messages.stream", Err: fmt.Errorf("overloaded")}},
	}}}
	svc := NewService(conversations, assistant)

	ch, err := svc.GetResponse(context.Background(), userID, uuid.Nil, "hi")
	require.NoError(t, err)
	events := collect(ch)

	require.Equal(t, []models.FrontendEventType{
		models.FrontendEventMessageAccepted,
		models.FrontendEventError,
	}, eventTypes(events))
	assert.Contains(t, events[1].ErrorMessage, "overloaded")
	assert.Equal(t, 1, conversations.clears)
	assert.Equal(t, 0, conversations.commits)
}

func TestGetResponseToolFailureClearsPending(t *testing.T) {
	userID := uuid.New()
	conversations := &fakeConversations{turn: newTurn(userID, "hi")}
	assistant := &fakeAssistant{
		scripts:   [][]llm.StreamEvent{toolUseStream(`{"rag_query":"x"}`)},
		handleErr: fmt.Errorf("retriever down"),
	}
	svc := NewService(conversations, assistant)

	ch, err := svc.GetResponse(context.Background(), userID, uuid.Nil, "hi")
	require.NoError(t, err)
	events := collect(ch)

	last := events[len(events)-1]
	assert.Equal(t, models.FrontendEventError, last.Type)
	assert.Contains(t, last.ErrorMessage, "retriever down")
	assert.Equal(t, 1, assistant.calls, "no second stream after a failed tool call")
	assert.Equal(t, 1, conversations.clears)
	assert.Equal(t, 0, conversations.commits)
}

func TestGetResponseCommitFailureSurfacesError(t *testing.T) {
	userID := uuid.New()
	conversations := &fakeConversations{
		turn:      newTurn(userID, "hi"),
		commitErr: fmt.Errorf("tx conflict"),
	}
	assistant := &fakeAssistant{scripts: [][]llm.StreamEvent{textStream("done")}}
	svc := NewService(conversations, assistant)

	ch, err := svc.GetResponse(context.Background(), userID, uuid.Nil, "hi")
	require.NoError(t, err)
	events := collect(ch)

	last := events[len(events)-1]
	assert.Equal(t, models.FrontendEventError, last.Type)
	assert.Contains(t, last.ErrorMessage, "tx conflict")
	assert.Equal(t, 1, conversations.clears)
}

func TestGetResponseEmptyStreamSkipsAssistantMessage(t *testing.T) {
	userID := uuid.New()
	conversations := &fakeConversations{turn: newTurn(userID, "hi")}
	assistant := &fakeAssistant{scripts: [][]llm.StreamEvent{{
		llm.MessageStartEvent{},
		llm.MessageStopEvent{},
	}}}
	svc := NewService(conversations, assistant)

	ch, err := svc.GetResponse(context.Background(), userID, uuid.Nil, "hi")
	require.NoError(t, err)
	events := collect(ch)

	require.Equal(t, []models.FrontendEventType{
		models.FrontendEventMessageAccepted,
		models.FrontendEventMessageStop,
	}, eventTypes(events))
	assert.Empty(t, conversations.pending)
	assert.Equal(t, 1, conversations.commits)
}

func TestGetResponseRequiresText(t *testing.T) {
	conversations := &fakeConversations{}
	svc := NewService(conversations, &fakeAssistant{})

	_, err := svc.GetResponse(context.Background(), uuid.New(), uuid.Nil, "   ")
	require.ErrorContains(t, err, "message text")
	assert.Equal(t, 0, conversations.setups)
}

func TestGetResponseSetupFailure(t *testing.T) {
	conversations := &fakeConversations{setupErr: fmt.Errorf("redis unavailable")}
	svc := NewService(conversations, &fakeAssistant{})

	_, err := svc.GetResponse(context.Background(), uuid.New(), uuid.Nil, "hi")
	require.ErrorContains(t, err, "redis unavailable")
}

func TestGetResponseCancelledConsumerClearsPending(t *testing.T) {
	userID := uuid.New()
	conversations := &fakeConversations{turn: newTurn(userID, "hi")}
	assistant := &fakeAssistant{scripts: [][]llm.StreamEvent{textStream("never delivered")}}
	svc := NewService(conversations, assistant)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch, err := svc.GetResponse(ctx, userID, uuid.Nil, "hi")
	require.NoError(t, err)
	collect(ch)

	assert.Equal(t, 1, conversations.clears)
	assert.Equal(t, 0, conversations.commits)
}
