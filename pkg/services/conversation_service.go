package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/ent/conversation"
	"github.com/kollektiv-ai/kollektiv/ent/conversationmessage"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// ConversationService persists conversation metadata and the append-only
// message log. The hot message window lives in the K/V store; rows here are
// written when a chat turn commits.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new conversation service
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// CreateConversation starts a new conversation for a user
func (s *ConversationService) CreateConversation(ctx context.Context, userID uuid.UUID, title string, dataSources []uuid.UUID) (*ent.Conversation, error) {
	if userID == uuid.Nil {
		return nil, NewValidationError("user_id", "required")
	}

	create := s.client.Conversation.Create().
		SetUserID(userID)
	if title != "" {
		create = create.SetTitle(truncateTitle(title))
	}
	if len(dataSources) > 0 {
		create = create.SetDataSources(dataSources)
	}

	conv, err := create.Save(ctx)
	if err != nil {
		return nil, NewDatabaseError("create", "conversation", err)
	}

	return conv, nil
}

// EnsureConversation returns the conversation row, creating it when absent.
// Conversations started through chat get their durable row on first commit,
// which may race a concurrent commit of the same conversation.
func (s *ConversationService) EnsureConversation(ctx context.Context, conversationID, userID uuid.UUID) (*ent.Conversation, error) {
	if conversationID == uuid.Nil {
		return nil, NewValidationError("conversation_id", "required")
	}
	if userID == uuid.Nil {
		return nil, NewValidationError("user_id", "required")
	}

	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err == nil {
		return conv, nil
	}
	if !ent.IsNotFound(err) {
		return nil, NewDatabaseError("get", "conversation", err)
	}

	conv, err = s.client.Conversation.Create().
		SetID(conversationID).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the creation race to a concurrent commit.
			return s.GetConversation(ctx, conversationID)
		}
		return nil, NewDatabaseError("create", "conversation", err)
	}

	return conv, nil
}

// GetConversation retrieves a conversation by ID
func (s *ConversationService) GetConversation(ctx context.Context, conversationID uuid.UUID) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, NewDatabaseError("get", "conversation", err)
	}

	return conv, nil
}

// ListConversations lists a user's conversations, most recently active first.
// Returns the page of conversations and the total count across all pages.
func (s *ConversationService) ListConversations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*ent.Conversation, int, error) {
	if userID == uuid.Nil {
		return nil, 0, NewValidationError("user_id", "required")
	}

	query := s.client.Conversation.Query().
		Where(conversation.UserIDEQ(userID))

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, NewDatabaseError("count", "conversation", err)
	}

	if limit <= 0 {
		limit = 20 // Default
	}
	if offset < 0 {
		offset = 0
	}

	conversations, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(conversation.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, NewDatabaseError("list", "conversation", err)
	}

	return conversations, totalCount, nil
}

// ListMessages returns all messages of a conversation in insertion order.
// Used to rebuild the hot history window after K/V expiry.
func (s *ConversationService) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*ent.ConversationMessage, error) {
	rows, err := s.client.ConversationMessage.Query().
		Where(conversationmessage.ConversationIDEQ(conversationID)).
		Order(ent.Asc(conversationmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, NewDatabaseError("list", "conversation_message", err)
	}

	return rows, nil
}

// SaveMessages upserts a batch of messages in a single transaction. A retried
// turn commit re-saves the same message ids without duplicating rows.
func (s *ConversationService) SaveMessages(ctx context.Context, msgs []models.ConversationMessage) ([]*ent.ConversationMessage, error) {
	if len(msgs) == 0 {
		return nil, nil
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	ids := make([]uuid.UUID, len(msgs))
	builders := make([]*ent.ConversationMessageCreate, len(msgs))
	for i, msg := range msgs {
		if msg.ConversationID == uuid.Nil {
			return nil, NewValidationError("conversation_id", "required")
		}
		if msg.Role != models.RoleUser && msg.Role != models.RoleAssistant {
			return nil, NewValidationError("role", fmt.Sprintf("unknown role '%s'", msg.Role))
		}
		if len(msg.Content) == 0 {
			return nil, NewValidationError("content", "required")
		}
		id := msg.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		ids[i] = id
		builders[i] = tx.ConversationMessage.Create().
			SetID(id).
			SetConversationID(msg.ConversationID).
			SetRole(conversationmessage.Role(msg.Role)).
			SetContent(msg.Content)
	}

	err = tx.ConversationMessage.CreateBulk(builders...).
		OnConflictColumns(conversationmessage.FieldID).
		UpdateNewValues().
		Exec(writeCtx)
	if err != nil {
		return nil, NewDatabaseError("save", "conversation_message", err)
	}

	rows, err := tx.ConversationMessage.Query().
		Where(conversationmessage.IDIn(ids...)).
		All(writeCtx)
	if err != nil {
		return nil, NewDatabaseError("save", "conversation_message", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit messages: %w", err)
	}

	return sortByIDs(rows, ids, func(m *ent.ConversationMessage) uuid.UUID { return m.ID }), nil
}

// RecordCommit appends newly committed message ids to the conversation order
// and refreshes the token estimate. The row is locked: concurrent turns on
// the same conversation must not interleave their id appends.
func (s *ConversationService) RecordCommit(ctx context.Context, conversationID uuid.UUID, messageIDs []uuid.UUID, tokenCount int) (*ent.Conversation, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	conv, err := tx.Conversation.Query().
		Where(conversation.IDEQ(conversationID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, NewDatabaseError("get", "conversation", err)
	}

	order := conv.MessageIds
	seen := make(map[uuid.UUID]struct{}, len(order))
	for _, id := range order {
		seen[id] = struct{}{}
	}
	for _, id := range messageIDs {
		// Retried commits re-send ids already recorded
		if _, ok := seen[id]; ok {
			continue
		}
		order = append(order, id)
		seen[id] = struct{}{}
	}

	conv, err = tx.Conversation.UpdateOneID(conversationID).
		SetMessageIds(order).
		SetTokenCount(tokenCount).
		Save(writeCtx)
	if err != nil {
		return nil, NewDatabaseError("update", "conversation", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit conversation update: %w", err)
	}

	return conv, nil
}

// SetTitle sets the conversation title if it is still empty. The title is
// derived from the first user message of the conversation.
func (s *ConversationService) SetTitle(ctx context.Context, conversationID uuid.UUID, title string) error {
	if title == "" {
		return nil
	}

	_, err := s.client.Conversation.Update().
		Where(
			conversation.IDEQ(conversationID),
			conversation.Or(
				conversation.TitleIsNil(),
				conversation.TitleEQ(""),
			),
		).
		SetTitle(truncateTitle(title)).
		Save(ctx)
	if err != nil {
		return NewDatabaseError("update", "conversation", err)
	}

	return nil
}

// truncateTitle bounds a derived title to a displayable length
func truncateTitle(title string) string {
	const maxTitleLen = 80
	runes := []rune(title)
	if len(runes) <= maxTitleLen {
		return title
	}
	return string(runes[:maxTitleLen-3]) + "..."
}
