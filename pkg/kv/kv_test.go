package kv

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client, nil), mr
}

func testHistory(conversationID uuid.UUID) models.ConversationHistory {
	return models.ConversationHistory{
		ConversationID: conversationID,
		UserID:         uuid.New(),
		Messages: []models.ConversationMessage{
			models.NewUserTextMessage(conversationID, "How do I configure retries?"),
			{
				ID:             uuid.New(),
				ConversationID: conversationID,
				Role:           models.RoleAssistant,
				Content: models.ContentBlocks{
					&models.TextBlock{Text: "Let me look that up."},
					&models.ToolUseBlock{
						ID:    "toolu_01",
						Name:  "rag_search",
						Input: map[string]any{"important_context": "retry configuration"},
					},
				},
			},
		},
		TokenCount: 42,
	}
}

func pendingText(conversationID uuid.UUID, role models.Role, text string) models.PendingMessage {
	return models.PendingMessage{ConversationMessage: models.ConversationMessage{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Role:           role,
		Content:        models.ContentBlocks{&models.TextBlock{Text: text}},
	}}
}

func TestKeyTemplates(t *testing.T) {
	store, _ := newTestStore(t)

	histories, err := Bind[models.ConversationHistory](store)
	require.NoError(t, err)
	pendings, err := Bind[models.PendingMessage](store)
	require.NoError(t, err)

	id := "7f2c9c6e"
	assert.Equal(t, "conversations:7f2c9c6e:history", histories.Key(id))
	assert.Equal(t, "conversations:7f2c9c6e:pending_messages", pendings.Key(id))
	assert.Equal(t, 24*time.Hour, histories.TTL())
	assert.Equal(t, time.Hour, pendings.TTL())
}

func TestBindUnknownRecordType(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := Bind[models.Document](store)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "models.Document", cfgErr.Type)
}

func TestSetGet(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	histories, err := Bind[models.ConversationHistory](store)
	require.NoError(t, err)

	conversationID := uuid.New()
	id := conversationID.String()
	history := testHistory(conversationID)

	require.NoError(t, histories.Set(ctx, id, history))
	assert.Equal(t, HistoryTTL, mr.TTL(histories.Key(id)))

	got, err := histories.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, history, *got)

	// Tool-use blocks survive the round trip as their concrete type.
	toolUse, ok := got.Messages[1].Content[1].(*models.ToolUseBlock)
	require.True(t, ok)
	assert.Equal(t, "rag_search", toolUse.Name)

	_, err = histories.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrMiss)
}

func TestGetAfterExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	histories, err := Bind[models.ConversationHistory](store)
	require.NoError(t, err)

	conversationID := uuid.New()
	id := conversationID.String()
	require.NoError(t, histories.Set(ctx, id, testHistory(conversationID)))

	mr.FastForward(25 * time.Hour)

	_, err = histories.Get(ctx, id)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestPushRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	pendings, err := Bind[models.PendingMessage](store)
	require.NoError(t, err)

	conversationID := uuid.New()
	id := conversationID.String()

	require.NoError(t, pendings.Push(ctx, id,
		pendingText(conversationID, models.RoleUser, "first"),
		pendingText(conversationID, models.RoleAssistant, "second"),
	))
	assert.Equal(t, PendingTTL, mr.TTL(pendings.Key(id)))

	mr.FastForward(30 * time.Minute)
	assert.Equal(t, 30*time.Minute, mr.TTL(pendings.Key(id)))

	require.NoError(t, pendings.Push(ctx, id, pendingText(conversationID, models.RoleUser, "third")))
	assert.Equal(t, PendingTTL, mr.TTL(pendings.Key(id)))

	staged, err := pendings.Range(ctx, id, 0, -1)
	require.NoError(t, err)
	require.Len(t, staged, 3)
	assert.Equal(t, "first", staged[0].FirstText())
	assert.Equal(t, "second", staged[1].FirstText())
	assert.Equal(t, "third", staged[2].FirstText())
}

func TestPushNothingIsNoOp(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	pendings, err := Bind[models.PendingMessage](store)
	require.NoError(t, err)

	id := uuid.NewString()
	require.NoError(t, pendings.Push(ctx, id))
	assert.False(t, mr.Exists(pendings.Key(id)))
}

func TestRangeMissingListIsEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	pendings, err := Bind[models.PendingMessage](store)
	require.NoError(t, err)

	staged, err := pendings.Range(ctx, uuid.NewString(), 0, -1)
	require.NoError(t, err)
	assert.Empty(t, staged)
}

func TestPopEnds(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	pendings, err := Bind[models.PendingMessage](store)
	require.NoError(t, err)

	conversationID := uuid.New()
	id := conversationID.String()
	require.NoError(t, pendings.Push(ctx, id,
		pendingText(conversationID, models.RoleUser, "one"),
		pendingText(conversationID, models.RoleUser, "two"),
		pendingText(conversationID, models.RoleUser, "three"),
	))

	head, err := pendings.PopLeft(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "one", head.FirstText())

	tail, err := pendings.PopRight(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "three", tail.FirstText())

	remaining, err := pendings.Range(ctx, id, 0, -1)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "two", remaining[0].FirstText())

	_, err = pendings.PopLeft(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrMiss)
	_, err = pendings.PopRight(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrMiss)
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	histories, err := Bind[models.ConversationHistory](store)
	require.NoError(t, err)

	conversationID := uuid.New()
	id := conversationID.String()
	require.NoError(t, histories.Set(ctx, id, testHistory(conversationID)))

	require.NoError(t, histories.Delete(ctx, id))
	_, err = histories.Get(ctx, id)
	assert.ErrorIs(t, err, ErrMiss)

	// Deleting what is already gone is fine.
	require.NoError(t, histories.Delete(ctx, id))
}

func TestAtomicCommit(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	histories, err := Bind[models.ConversationHistory](store)
	require.NoError(t, err)
	pendings, err := Bind[models.PendingMessage](store)
	require.NoError(t, err)

	conversationID := uuid.New()
	id := conversationID.String()
	require.NoError(t, histories.Set(ctx, id, testHistory(conversationID)))
	require.NoError(t, pendings.Push(ctx, id, pendingText(conversationID, models.RoleUser, "And what about timeouts?")))

	err = store.Atomic(ctx, func(tx *redis.Tx) error {
		current, err := histories.With(tx).Get(ctx, id)
		if err != nil {
			return err
		}
		staged, err := pendings.With(tx).Range(ctx, id, 0, -1)
		if err != nil {
			return err
		}
		for _, p := range staged {
			current.Messages = append(current.Messages, p.ConversationMessage)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if err := histories.With(pipe).Set(ctx, id, *current); err != nil {
				return err
			}
			return pendings.With(pipe).Delete(ctx, id)
		})
		return err
	}, histories.Key(id), pendings.Key(id))
	require.NoError(t, err)

	got, err := histories.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "And what about timeouts?", got.Messages[2].FirstText())

	staged, err := pendings.Range(ctx, id, 0, -1)
	require.NoError(t, err)
	assert.Empty(t, staged)
}

func TestAtomicRetriesOnConflict(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	histories, err := Bind[models.ConversationHistory](store)
	require.NoError(t, err)

	conversationID := uuid.New()
	id := conversationID.String()
	require.NoError(t, histories.Set(ctx, id, testHistory(conversationID)))

	// A second connection plays the competing writer.
	intruder := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { intruder.Close() })
	competing, err := Bind[models.ConversationHistory](NewStore(intruder, nil))
	require.NoError(t, err)

	fresh := testHistory(conversationID)
	fresh.TokenCount = 7

	attempts := 0
	err = store.Atomic(ctx, func(tx *redis.Tx) error {
		attempts++
		current, err := histories.With(tx).Get(ctx, id)
		if err != nil {
			return err
		}
		if attempts == 1 {
			// Touch the watched key between the read and EXEC.
			require.NoError(t, competing.Set(ctx, id, fresh))
		}
		current.TokenCount++
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return histories.With(pipe).Set(ctx, id, *current)
		})
		return err
	}, histories.Key(id))
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)

	// The second attempt saw the competing write, not the stale read.
	got, err := histories.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 8, got.TokenCount)
}

func TestAtomicGivesUpAfterRepeatedConflicts(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	histories, err := Bind[models.ConversationHistory](store)
	require.NoError(t, err)

	conversationID := uuid.New()
	id := conversationID.String()
	require.NoError(t, histories.Set(ctx, id, testHistory(conversationID)))

	intruder := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { intruder.Close() })
	competing, err := Bind[models.ConversationHistory](NewStore(intruder, nil))
	require.NoError(t, err)

	attempts := 0
	err = store.Atomic(ctx, func(tx *redis.Tx) error {
		attempts++
		current, err := histories.With(tx).Get(ctx, id)
		if err != nil {
			return err
		}
		require.NoError(t, competing.Set(ctx, id, testHistory(conversationID)))
		current.TokenCount++
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return histories.With(pipe).Set(ctx, id, *current)
		})
		return err
	}, histories.Key(id))

	assert.ErrorIs(t, err, ErrTxConflict)
	assert.Equal(t, maxTxAttempts, attempts)
}
