// Package conversation manages the state around a chat turn: the pending
// messages staged in the K/V store while the turn streams, the materialized
// history handed to the model, and the commit that folds a finished turn
// into the K/V history and durable storage.
package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/kv"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
	"github.com/kollektiv-ai/kollektiv/pkg/tokenizer"
)

// pruneThreshold is the fraction of the history token budget at which the
// oldest messages start getting dropped on commit.
const pruneThreshold = 0.9

// DurableStore is the slice of the conversation persistence layer the
// manager drives. Satisfied by *services.ConversationService.
type DurableStore interface {
	EnsureConversation(ctx context.Context, conversationID, userID uuid.UUID) (*ent.Conversation, error)
	GetConversation(ctx context.Context, conversationID uuid.UUID) (*ent.Conversation, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*ent.ConversationMessage, error)
	SaveMessages(ctx context.Context, msgs []models.ConversationMessage) ([]*ent.ConversationMessage, error)
	RecordCommit(ctx context.Context, conversationID uuid.UUID, messageIDs []uuid.UUID, tokenCount int) (*ent.Conversation, error)
	SetTitle(ctx context.Context, conversationID uuid.UUID, title string) error
}

// Turn is the state a chat turn starts from. The last history message is the
// user message staged for this turn.
type Turn struct {
	History     *models.ConversationHistory
	UserMessage models.ConversationMessage

	// Title is set when this turn started a new conversation.
	Title string
}

// Manager coordinates the two-tier conversation state. A history is warm in
// the K/V store, cold in durable storage, or new; pending messages for the
// in-flight turn live in a K/V list until commit.
type Manager struct {
	store            *kv.Store
	histories        *kv.Keyed[models.ConversationHistory]
	pending          *kv.Keyed[models.PendingMessage]
	durable          DurableStore
	tokens           tokenizer.Tokenizer
	maxHistoryTokens int
}

// NewManager creates a manager over the K/V store and durable layer.
func NewManager(store *kv.Store, durable DurableStore, tokens tokenizer.Tokenizer, cfg *config.ChatConfig) (*Manager, error) {
	histories, err := kv.Bind[models.ConversationHistory](store)
	if err != nil {
		return nil, err
	}
	pending, err := kv.Bind[models.PendingMessage](store)
	if err != nil {
		return nil, err
	}
	return &Manager{
		store:            store,
		histories:        histories,
		pending:          pending,
		durable:          durable,
		tokens:           tokens,
		maxHistoryTokens: cfg.MaxHistoryTokens,
	}, nil
}

// SetupTurn stages the user's message for a new turn and returns the
// materialized history to stream from. A Nil conversationID starts a new
// conversation. The history is extended with every pending message, so a
// turn resumed after an uncommitted predecessor sees its messages too.
func (m *Manager) SetupTurn(ctx context.Context, userID, conversationID uuid.UUID, text string) (*Turn, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("conversation: user id is required")
	}

	newConversation := conversationID == uuid.Nil
	if newConversation {
		conversationID = uuid.New()
	}
	msg := models.NewUserTextMessage(conversationID, text)
	if err := m.AddPending(ctx, msg); err != nil {
		return nil, err
	}

	history, found, err := m.resolveHistory(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	pending, err := m.pending.Range(ctx, conversationID.String(), 0, -1)
	if err != nil {
		return nil, err
	}
	for _, p := range pending {
		m.extend(history, p.ConversationMessage)
	}

	turn := &Turn{History: history, UserMessage: msg}
	if newConversation || !found {
		turn.Title = models.DeriveConversationTitle(text)
	}
	return turn, nil
}

// AddPending appends a message to the turn's pending list. Assistant
// messages assembled during streaming and injected tool-result messages go
// through here before commit.
func (m *Manager) AddPending(ctx context.Context, msg models.ConversationMessage) error {
	if msg.ConversationID == uuid.Nil {
		return fmt.Errorf("conversation: pending message requires a conversation id")
	}
	return m.pending.Push(ctx, msg.ConversationID.String(), models.PendingMessage{ConversationMessage: msg})
}

// CommitPending folds the pending list into the conversation history and
// persists the result. The K/V side runs under optimistic concurrency with a
// watch on both keys: concurrent commits of one conversation serialize, and
// the loser re-runs against the updated state, usually to a no-op. The
// history is pruned to the token budget before it is written.
func (m *Manager) CommitPending(ctx context.Context, conversationID, userID uuid.UUID) error {
	id := conversationID.String()
	var (
		committed []models.PendingMessage
		updated   *models.ConversationHistory
	)

	err := m.store.Atomic(ctx, func(tx *redis.Tx) error {
		committed = nil
		updated = nil

		history, err := m.histories.With(tx).Get(ctx, id)
		if errors.Is(err, kv.ErrMiss) {
			history = &models.ConversationHistory{ConversationID: conversationID, UserID: userID}
		} else if err != nil {
			return err
		}

		pending, err := m.pending.With(tx).Range(ctx, id, 0, -1)
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			return nil
		}

		for _, p := range pending {
			m.extend(history, p.ConversationMessage)
		}
		m.prune(history)
		committed = pending
		updated = history

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if err := m.histories.With(pipe).Set(ctx, id, *history); err != nil {
				return err
			}
			return m.pending.With(pipe).Delete(ctx, id)
		})
		return err
	}, m.histories.Key(id), m.pending.Key(id))
	if err != nil {
		return fmt.Errorf("conversation: commit %s: %w", id, err)
	}
	if len(committed) == 0 {
		return nil
	}

	return m.persistCommit(ctx, conversationID, userID, committed, updated)
}

// persistCommit writes the committed batch and refreshed history metadata to
// durable storage. Message saves are idempotent by id, so a batch replayed
// after a partial failure does not duplicate rows.
func (m *Manager) persistCommit(ctx context.Context, conversationID, userID uuid.UUID, batch []models.PendingMessage, history *models.ConversationHistory) error {
	conv, err := m.durable.EnsureConversation(ctx, conversationID, userID)
	if err != nil {
		return fmt.Errorf("conversation: ensure %s: %w", conversationID, err)
	}
	if conv.Title == "" {
		if title := deriveTitle(batch); title != "" {
			if err := m.durable.SetTitle(ctx, conversationID, title); err != nil {
				return err
			}
		}
	}

	msgs := make([]models.ConversationMessage, len(batch))
	ids := make([]uuid.UUID, len(batch))
	for i, p := range batch {
		msgs[i] = p.ConversationMessage
		ids[i] = p.ID
	}
	if _, err := m.durable.SaveMessages(ctx, msgs); err != nil {
		return err
	}
	if _, err := m.durable.RecordCommit(ctx, conversationID, ids, history.TokenCount); err != nil {
		return err
	}

	slog.Info("Conversation turn committed",
		"conversation_id", conversationID,
		"messages", len(msgs),
		"token_count", history.TokenCount)
	return nil
}

// ClearPending drops the turn's staged messages. Called when a turn fails or
// is cancelled before commit.
func (m *Manager) ClearPending(ctx context.Context, conversationID uuid.UUID) error {
	return m.pending.Delete(ctx, conversationID.String())
}

// resolveHistory finds the conversation history in the K/V store, rebuilds
// it from durable storage, or starts an empty one. found reports whether the
// conversation existed anywhere.
func (m *Manager) resolveHistory(ctx context.Context, userID, conversationID uuid.UUID) (*models.ConversationHistory, bool, error) {
	history, err := m.histories.Get(ctx, conversationID.String())
	if err == nil {
		return history, true, nil
	}
	if !errors.Is(err, kv.ErrMiss) {
		return nil, false, err
	}

	conv, err := m.durable.GetConversation(ctx, conversationID)
	if errors.Is(err, services.ErrNotFound) {
		return &models.ConversationHistory{ConversationID: conversationID, UserID: userID}, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	rows, err := m.durable.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, false, err
	}
	msgs := make([]models.ConversationMessage, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, models.ConversationMessage{
			ID:             row.ID,
			ConversationID: conversationID,
			Role:           models.Role(row.Role),
			Content:        row.Content,
		})
	}

	slog.Debug("Conversation history rebuilt from durable storage",
		"conversation_id", conversationID,
		"messages", len(msgs))
	return &models.ConversationHistory{
		ConversationID: conversationID,
		UserID:         conv.UserID,
		Messages:       msgs,
		TokenCount:     conv.TokenCount,
	}, true, nil
}

// extend appends msg to the history. A message sharing the previous entry's
// role is folded into that entry instead: a stale pending user message left
// by an interrupted turn must not yield consecutive same-role messages.
func (m *Manager) extend(history *models.ConversationHistory, msg models.ConversationMessage) {
	if n := len(history.Messages); n > 0 && history.Messages[n-1].Role == msg.Role {
		history.Messages[n-1].Content = append(history.Messages[n-1].Content, msg.Content...)
	} else {
		history.Messages = append(history.Messages, msg)
	}
	history.TokenCount += MessageTokens(m.tokens, msg)
}

// prune drops the oldest messages while the history exceeds 90% of the token
// budget, keeping at least one message.
func (m *Manager) prune(history *models.ConversationHistory) {
	limit := int(pruneThreshold * float64(m.maxHistoryTokens))
	dropped := 0
	for history.TokenCount > limit && len(history.Messages) > 1 {
		oldest := history.Messages[0]
		history.Messages = history.Messages[1:]
		history.TokenCount -= MessageTokens(m.tokens, oldest)
		dropped++
	}
	if history.TokenCount < 0 {
		history.TokenCount = 0
	}
	if dropped > 0 {
		slog.Debug("Conversation history pruned",
			"conversation_id", history.ConversationID,
			"dropped", dropped,
			"token_count", history.TokenCount)
	}
}

// deriveTitle takes the first user text of the batch as the conversation
// title. Synthetic tool-result messages carry no text and are skipped.
func deriveTitle(batch []models.PendingMessage) string {
	for _, p := range batch {
		if p.Role != models.RoleUser {
			continue
		}
		if text := p.FirstText(); text != "" {
			return models.DeriveConversationTitle(text)
		}
	}
	return ""
}

// MessageTokens estimates the token cost of one message. Text is counted
// directly; tool use counts the tool name plus the canonical JSON of its
// input; tool results count the canonical JSON of their content.
func MessageTokens(tokens tokenizer.Tokenizer, msg models.ConversationMessage) int {
	total := 0
	for _, block := range msg.Content {
		switch b := block.(type) {
		case *models.TextBlock:
			total += tokens.Count(b.Text)
		case *models.ToolUseBlock:
			total += tokens.Count(b.Name)
			if data, err := json.Marshal(b.Input); err == nil {
				total += tokens.Count(string(data))
			}
		case *models.ToolResultBlock:
			if b.Content != "" {
				if data, err := json.Marshal(b.Content); err == nil {
					total += tokens.Count(string(data))
				}
			}
		}
	}
	return total
}
