package conversation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/ent/conversationmessage"
	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/kv"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
)

// wordTokenizer counts whitespace-separated words, so token budgets in these
// tests are readable word counts.
type wordTokenizer struct{}

func (wordTokenizer) Count(text string) int { return len(strings.Fields(text)) }

func (wordTokenizer) Encode(text string) []int { return make([]int, len(strings.Fields(text))) }

func (wordTokenizer) Decode(ids []int) string {
	return strings.TrimSpace(strings.Repeat("w ", len(ids)))
}

type fakeDurable struct {
	mu            sync.Mutex
	conversations map[uuid.UUID]*ent.Conversation
	rows          map[uuid.UUID][]*ent.ConversationMessage
	saves         int
	saveErr       error
}

func newFakeDurable() *fakeDurable {
	return &fakeDurable{
		conversations: map[uuid.UUID]*ent.Conversation{},
		rows:          map[uuid.UUID][]*ent.ConversationMessage{},
	}
}

func (f *fakeDurable) EnsureConversation(_ context.Context, conversationID, userID uuid.UUID) (*ent.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if conv, ok := f.conversations[conversationID]; ok {
		return conv, nil
	}
	conv := &ent.Conversation{ID: conversationID, UserID: userID}
	f.conversations[conversationID] = conv
	return conv, nil
}

func (f *fakeDurable) GetConversation(_ context.Context, conversationID uuid.UUID) (*ent.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	conv, ok := f.conversations[conversationID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return conv, nil
}

func (f *fakeDurable) ListMessages(_ context.Context, conversationID uuid.UUID) ([]*ent.ConversationMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[conversationID], nil
}

func (f *fakeDurable) SaveMessages(_ context.Context, msgs []models.ConversationMessage) ([]*ent.ConversationMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	out := make([]*ent.ConversationMessage, 0, len(msgs))
	for _, msg := range msgs {
		row := &ent.ConversationMessage{
			ID:             msg.ID,
			ConversationID: msg.ConversationID,
			Role:           conversationmessage.Role(msg.Role),
			Content:        msg.Content,
		}
		f.rows[msg.ConversationID] = append(f.rows[msg.ConversationID], row)
		out = append(out, row)
	}
	f.saves++
	return out, nil
}

func (f *fakeDurable) RecordCommit(_ context.Context, conversationID uuid.UUID, messageIDs []uuid.UUID, tokenCount int) (*ent.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	conv, ok := f.conversations[conversationID]
	if !ok {
		return nil, services.ErrNotFound
	}
	seen := make(map[uuid.UUID]struct{}, len(conv.MessageIds))
	for _, id := range conv.MessageIds {
		seen[id] = struct{}{}
	}
	for _, id := range messageIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		conv.MessageIds = append(conv.MessageIds, id)
	}
	conv.TokenCount = tokenCount
	return conv, nil
}

func (f *fakeDurable) SetTitle(_ context.Context, conversationID uuid.UUID, title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if conv, ok := f.conversations[conversationID]; ok && conv.Title == "" {
		conv.Title = title
	}
	return nil
}

func newTestManagerWithBudget(t *testing.T, budget int) (*Manager, *fakeDurable, *kv.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := kv.NewStore(client, nil)
	durable := newFakeDurable()
	m, err := NewManager(store, durable, wordTokenizer{}, &config.ChatConfig{MaxHistoryTokens: budget})
	require.NoError(t, err)
	return m, durable, store
}

func newTestManager(t *testing.T) (*Manager, *fakeDurable, *kv.Store) {
	t.Helper()
	return newTestManagerWithBudget(t, 200_000)
}

func assistantText(conversationID uuid.UUID, text string) models.ConversationMessage {
	return models.ConversationMessage{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Role:           models.RoleAssistant,
		Content:        models.ContentBlocks{&models.TextBlock{Text: text}},
	}
}

func pendingItems(t *testing.T, store *kv.Store, conversationID uuid.UUID) []models.PendingMessage {
	t.Helper()
	handle, err := kv.Bind[models.PendingMessage](store)
	require.NoError(t, err)
	items, err := handle.Range(context.Background(), conversationID.String(), 0, -1)
	require.NoError(t, err)
	return items
}

func storedHistory(t *testing.T, store *kv.Store, conversationID uuid.UUID) *models.ConversationHistory {
	t.Helper()
	handle, err := kv.Bind[models.ConversationHistory](store)
	require.NoError(t, err)
	history, err := handle.Get(context.Background(), conversationID.String())
	require.NoError(t, err)
	return history
}

func TestSetupTurnNewConversation(t *testing.T) {
	m, durable, store := newTestManager(t)
	userID := uuid.New()

	turn, err := m.SetupTurn(context.Background(), userID, uuid.Nil, "How do I configure retries?")
	require.NoError(t, err)

	require.NotEqual(t, uuid.Nil, turn.History.ConversationID)
	assert.Equal(t, userID, turn.History.UserID)
	require.Len(t, turn.History.Messages, 1)
	assert.Equal(t, models.RoleUser, turn.History.Messages[0].Role)
	assert.Equal(t, "How do I configure retries?", turn.History.Messages[0].FirstText())
	assert.Equal(t, 5, turn.History.TokenCount)
	assert.Equal(t, "How do I configure retries?", turn.Title)
	assert.Equal(t, turn.History.Messages[0], turn.UserMessage)

	assert.Len(t, pendingItems(t, store, turn.History.ConversationID), 1)
	assert.Empty(t, durable.conversations, "durable row is created at commit, not setup")
}

func TestSetupTurnRequiresUser(t *testing.T) {
	m, _, _ := newTestManager(t)

	_, err := m.SetupTurn(context.Background(), uuid.Nil, uuid.Nil, "hello")
	require.ErrorContains(t, err, "user id")
}

func TestSetupTurnWarmHistory(t *testing.T) {
	m, _, store := newTestManager(t)
	userID := uuid.New()
	conversationID := uuid.New()

	handle, err := kv.Bind[models.ConversationHistory](store)
	require.NoError(t, err)
	require.NoError(t, handle.Set(context.Background(), conversationID.String(), models.ConversationHistory{
		ConversationID: conversationID,
		UserID:         userID,
		Messages: []models.ConversationMessage{
			models.NewUserTextMessage(conversationID, "How do I configure retries?"),
			assistantText(conversationID, "Use the retry settings block."),
		},
		TokenCount: 10,
	}))

	turn, err := m.SetupTurn(context.Background(), userID, conversationID, "And what about backoff?")
	require.NoError(t, err)

	require.Len(t, turn.History.Messages, 3)
	assert.Equal(t, "And what about backoff?", turn.History.Messages[2].FirstText())
	assert.Equal(t, 14, turn.History.TokenCount)
	assert.Empty(t, turn.Title, "existing conversations keep their title")
}

func TestSetupTurnColdHistory(t *testing.T) {
	m, durable, _ := newTestManager(t)
	owner := uuid.New()
	conversationID := uuid.New()

	durable.conversations[conversationID] = &ent.Conversation{
		ID:         conversationID,
		UserID:     owner,
		Title:      "Earlier chat",
		TokenCount: 7,
	}
	durable.rows[conversationID] = []*ent.ConversationMessage{{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Role:           conversationmessage.RoleUser,
		Content:        models.ContentBlocks{&models.TextBlock{Text: "Earlier question about chunk sizes"}},
	}}

	turn, err := m.SetupTurn(context.Background(), owner, conversationID, "Follow-up question")
	require.NoError(t, err)

	require.Len(t, turn.History.Messages, 2)
	assert.Equal(t, "Earlier question about chunk sizes", turn.History.Messages[0].FirstText())
	assert.Equal(t, owner, turn.History.UserID)
	assert.Equal(t, 9, turn.History.TokenCount, "stored count plus the new message")
	assert.Empty(t, turn.Title)
}

func TestSetupTurnIncludesLeftoverPending(t *testing.T) {
	m, _, _ := newTestManager(t)
	userID := uuid.New()
	conversationID := uuid.New()

	leftover := assistantText(conversationID, "Half-written answer from a dropped turn.")
	require.NoError(t, m.AddPending(context.Background(), leftover))

	turn, err := m.SetupTurn(context.Background(), userID, conversationID, "Are you still there?")
	require.NoError(t, err)

	require.Len(t, turn.History.Messages, 2)
	assert.Equal(t, models.RoleAssistant, turn.History.Messages[0].Role)
	assert.Equal(t, models.RoleUser, turn.History.Messages[1].Role)
}

func TestSetupTurnMergesStaleUserPending(t *testing.T) {
	m, _, _ := newTestManager(t)
	userID := uuid.New()
	conversationID := uuid.New()

	// A turn that died after staging its user message leaves it pending.
	stale := models.NewUserTextMessage(conversationID, "First try, never answered.")
	require.NoError(t, m.AddPending(context.Background(), stale))

	turn, err := m.SetupTurn(context.Background(), userID, conversationID, "Asking again.")
	require.NoError(t, err)

	// Both texts survive, but folded into one entry: adjacent messages
	// never share a role.
	require.Len(t, turn.History.Messages, 1)
	merged := turn.History.Messages[0]
	assert.Equal(t, models.RoleUser, merged.Role)
	require.Len(t, merged.Content, 2)
	assert.Equal(t, "First try, never answered.", merged.FirstText())
	second, ok := merged.Content[1].(*models.TextBlock)
	require.True(t, ok)
	assert.Equal(t, "Asking again.", second.Text)
}

func TestAddPendingRequiresConversation(t *testing.T) {
	m, _, _ := newTestManager(t)

	err := m.AddPending(context.Background(), models.ConversationMessage{Role: models.RoleUser})
	require.ErrorContains(t, err, "conversation id")
}

func TestCommitPendingFoldsTurnIntoHistory(t *testing.T) {
	m, durable, store := newTestManager(t)
	userID := uuid.New()
	ctx := context.Background()

	turn, err := m.SetupTurn(ctx, userID, uuid.Nil, "How do I configure retries?")
	require.NoError(t, err)
	conversationID := turn.History.ConversationID

	reply := assistantText(conversationID, "Use exponential backoff settings.")
	require.NoError(t, m.AddPending(ctx, reply))

	require.NoError(t, m.CommitPending(ctx, conversationID, userID))

	history := storedHistory(t, store, conversationID)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, models.RoleUser, history.Messages[0].Role)
	assert.Equal(t, models.RoleAssistant, history.Messages[1].Role)
	assert.Equal(t, 9, history.TokenCount)
	assert.Empty(t, pendingItems(t, store, conversationID))

	conv := durable.conversations[conversationID]
	require.NotNil(t, conv, "first commit creates the durable row")
	assert.Equal(t, "How do I configure retries?", conv.Title)
	assert.Equal(t, 9, conv.TokenCount)
	assert.Equal(t, []uuid.UUID{turn.UserMessage.ID, reply.ID}, conv.MessageIds)
	require.Len(t, durable.rows[conversationID], 2)
	assert.Equal(t, 1, durable.saves)
}

func TestCommitPendingWithoutPendingIsNoOp(t *testing.T) {
	m, durable, store := newTestManager(t)
	conversationID := uuid.New()

	require.NoError(t, m.CommitPending(context.Background(), conversationID, uuid.New()))

	handle, err := kv.Bind[models.ConversationHistory](store)
	require.NoError(t, err)
	_, err = handle.Get(context.Background(), conversationID.String())
	assert.ErrorIs(t, err, kv.ErrMiss, "a no-op commit must not create a history")
	assert.Empty(t, durable.conversations)
}

func TestCommitPendingPrunesOldestOverBudget(t *testing.T) {
	m, durable, store := newTestManagerWithBudget(t, 10)
	userID := uuid.New()
	conversationID := uuid.New()
	ctx := context.Background()

	handle, err := kv.Bind[models.ConversationHistory](store)
	require.NoError(t, err)
	require.NoError(t, handle.Set(ctx, conversationID.String(), models.ConversationHistory{
		ConversationID: conversationID,
		UserID:         userID,
		Messages: []models.ConversationMessage{
			models.NewUserTextMessage(conversationID, "one two three four"),
			assistantText(conversationID, "five six seven eight"),
		},
		TokenCount: 8,
	}))
	require.NoError(t, m.AddPending(ctx, models.NewUserTextMessage(conversationID, "nine ten eleven")))

	require.NoError(t, m.CommitPending(ctx, conversationID, userID))

	history := storedHistory(t, store, conversationID)
	require.Len(t, history.Messages, 2, "oldest message pruned")
	assert.Equal(t, "five six seven eight", history.Messages[0].FirstText())
	assert.Equal(t, "nine ten eleven", history.Messages[1].FirstText())
	assert.Equal(t, 7, history.TokenCount)
	assert.Equal(t, 7, durable.conversations[conversationID].TokenCount)
}

func TestCommitPendingKeepsLastMessage(t *testing.T) {
	m, _, store := newTestManagerWithBudget(t, 10)
	userID := uuid.New()
	ctx := context.Background()

	long := strings.TrimSpace(strings.Repeat("word ", 20))
	turn, err := m.SetupTurn(ctx, userID, uuid.Nil, long)
	require.NoError(t, err)

	require.NoError(t, m.CommitPending(ctx, turn.History.ConversationID, userID))

	history := storedHistory(t, store, turn.History.ConversationID)
	require.Len(t, history.Messages, 1, "pruning never drops the last message")
	assert.Equal(t, 20, history.TokenCount)
}

func TestCommitPendingConcurrent(t *testing.T) {
	m, durable, store := newTestManager(t)
	userID := uuid.New()
	conversationID := uuid.New()
	ctx := context.Background()

	handle, err := kv.Bind[models.ConversationHistory](store)
	require.NoError(t, err)
	require.NoError(t, handle.Set(ctx, conversationID.String(), models.ConversationHistory{
		ConversationID: conversationID,
		UserID:         userID,
		Messages: []models.ConversationMessage{
			models.NewUserTextMessage(conversationID, "first question"),
			assistantText(conversationID, "first answer"),
		},
		TokenCount: 4,
	}))
	followUp := models.NewUserTextMessage(conversationID, "second question")
	require.NoError(t, m.AddPending(ctx, followUp))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = m.CommitPending(ctx, conversationID, userID)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	history := storedHistory(t, store, conversationID)
	require.Len(t, history.Messages, 3, "the pending message commits exactly once")
	assert.Equal(t, "second question", history.Messages[2].FirstText())
	assert.Equal(t, 6, history.TokenCount)
	assert.Empty(t, pendingItems(t, store, conversationID))
	assert.Equal(t, 1, durable.saves)
	require.Len(t, durable.rows[conversationID], 1)
	assert.Equal(t, followUp.ID, durable.rows[conversationID][0].ID)
}

func TestCommitPendingDurableFailureKeepsKVCommit(t *testing.T) {
	m, durable, store := newTestManager(t)
	userID := uuid.New()
	ctx := context.Background()

	turn, err := m.SetupTurn(ctx, userID, uuid.Nil, "Will this persist?")
	require.NoError(t, err)
	durable.saveErr = errors.New("db down")

	err = m.CommitPending(ctx, turn.History.ConversationID, userID)
	require.ErrorContains(t, err, "db down")

	history := storedHistory(t, store, turn.History.ConversationID)
	require.Len(t, history.Messages, 1, "the K/V fold is already committed")
	assert.Empty(t, pendingItems(t, store, turn.History.ConversationID))
}

func TestClearPending(t *testing.T) {
	m, _, store := newTestManager(t)
	conversationID := uuid.New()
	ctx := context.Background()

	require.NoError(t, m.AddPending(ctx, models.NewUserTextMessage(conversationID, "doomed turn")))
	require.NoError(t, m.ClearPending(ctx, conversationID))

	assert.Empty(t, pendingItems(t, store, conversationID))
}

func TestMessageTokens(t *testing.T) {
	conversationID := uuid.New()
	tests := []struct {
		name string
		msg  models.ConversationMessage
		want int
	}{
		{
			name: "text counts words",
			msg:  models.NewUserTextMessage(conversationID, "one two three"),
			want: 3,
		},
		{
			name: "tool use counts name and canonical input",
			msg: models.ConversationMessage{
				Role: models.RoleAssistant,
				Content: models.ContentBlocks{&models.ToolUseBlock{
					ID:    "tu_1",
					Name:  "rag_search",
					Input: map[string]any{"rag_query": "retry policy"},
				}},
			},
			want: 3,
		},
		{
			name: "tool result counts encoded content",
			msg: models.ConversationMessage{
				Role: models.RoleUser,
				Content: models.ContentBlocks{&models.ToolResultBlock{
					ToolUseID: "tu_1",
					Content:   "retry docs found",
				}},
			},
			want: 3,
		},
		{
			name: "empty tool result is free",
			msg: models.ConversationMessage{
				Role:    models.RoleUser,
				Content: models.ContentBlocks{&models.ToolResultBlock{ToolUseID: "tu_1"}},
			},
			want: 0,
		},
		{
			name: "blocks sum",
			msg: models.ConversationMessage{
				Role: models.RoleAssistant,
				Content: models.ContentBlocks{
					&models.TextBlock{Text: "let me check"},
					&models.ToolUseBlock{ID: "tu_2", Name: "rag_search", Input: map[string]any{"rag_query": "backoff"}},
				},
			},
			want: 5,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MessageTokens(wordTokenizer{}, tc.msg))
		})
	}
}
