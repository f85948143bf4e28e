package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/ent/conversationmessage"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	testdb "github.com/kollektiv-ai/kollektiv/test/database"
)

func TestConversationService_CreateConversation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	t.Run("creates conversation with defaults", func(t *testing.T) {
		userID := uuid.New()
		sources := []uuid.UUID{uuid.New(), uuid.New()}

		conv, err := service.CreateConversation(ctx, userID, "How do I install?", sources)
		require.NoError(t, err)
		assert.Equal(t, userID, conv.UserID)
		assert.Equal(t, "How do I install?", conv.Title)
		assert.Equal(t, sources, conv.DataSources)
		assert.Equal(t, 0, conv.TokenCount)
		assert.Empty(t, conv.MessageIds)
	})

	t.Run("truncates long derived titles", func(t *testing.T) {
		long := ""
		for i := 0; i < 30; i++ {
			long += "verylong "
		}

		conv, err := service.CreateConversation(ctx, uuid.New(), long, nil)
		require.NoError(t, err)
		assert.LessOrEqual(t, len([]rune(conv.Title)), 80)
	})

	t.Run("requires user id", func(t *testing.T) {
		_, err := service.CreateConversation(ctx, uuid.Nil, "", nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestConversationService_EnsureConversation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	t.Run("creates the row with the caller's id", func(t *testing.T) {
		conversationID := uuid.New()
		userID := uuid.New()

		conv, err := service.EnsureConversation(ctx, conversationID, userID)
		require.NoError(t, err)
		assert.Equal(t, conversationID, conv.ID)
		assert.Equal(t, userID, conv.UserID)
		assert.Empty(t, conv.Title)
	})

	t.Run("returns the existing row unchanged", func(t *testing.T) {
		existing, err := service.CreateConversation(ctx, uuid.New(), "Kept title", nil)
		require.NoError(t, err)

		conv, err := service.EnsureConversation(ctx, existing.ID, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, existing.UserID, conv.UserID, "owner is not rewritten")
		assert.Equal(t, "Kept title", conv.Title)
	})

	t.Run("requires both ids", func(t *testing.T) {
		_, err := service.EnsureConversation(ctx, uuid.Nil, uuid.New())
		assert.True(t, IsValidationError(err))
		_, err = service.EnsureConversation(ctx, uuid.New(), uuid.Nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestConversationService_ListConversations(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	userID := uuid.New()
	var last *uuid.UUID
	for i := 0; i < 3; i++ {
		conv, err := service.CreateConversation(ctx, userID, "", nil)
		require.NoError(t, err)
		id := conv.ID
		last = &id
	}
	_, err := service.CreateConversation(ctx, uuid.New(), "", nil)
	require.NoError(t, err)

	// Touch the most recent conversation so updated_at ordering is observable
	_, err = service.RecordCommit(ctx, *last, []uuid.UUID{uuid.New()}, 10)
	require.NoError(t, err)

	t.Run("lists only the user's conversations, most recent first", func(t *testing.T) {
		conversations, total, err := service.ListConversations(ctx, userID, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, conversations, 3)
		assert.Equal(t, *last, conversations[0].ID)
	})

	t.Run("paginates", func(t *testing.T) {
		conversations, total, err := service.ListConversations(ctx, userID, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, conversations, 1)
	})
}

func TestConversationService_SaveMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	conv, err := service.CreateConversation(ctx, uuid.New(), "", nil)
	require.NoError(t, err)

	t.Run("saves user and assistant turns", func(t *testing.T) {
		user := models.NewUserTextMessage(conv.ID, "What is chunking?")
		assistant := models.ConversationMessage{
			ID:             uuid.New(),
			ConversationID: conv.ID,
			Role:           models.RoleAssistant,
			Content: models.ContentBlocks{
				&models.TextBlock{Text: "Chunking splits documents into token-bounded pieces."},
			},
		}

		rows, err := service.SaveMessages(ctx, []models.ConversationMessage{user, assistant})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, conversationmessage.RoleUser, rows[0].Role)
		assert.Equal(t, conversationmessage.RoleAssistant, rows[1].Role)

		// Content blocks round-trip through the JSON column
		require.Len(t, rows[1].Content, 1)
		text, ok := rows[1].Content[0].(*models.TextBlock)
		require.True(t, ok)
		assert.Contains(t, text.Text, "token-bounded")
	})

	t.Run("re-saving a committed batch does not duplicate rows", func(t *testing.T) {
		msg := models.NewUserTextMessage(conv.ID, "retry me")

		_, err := service.SaveMessages(ctx, []models.ConversationMessage{msg})
		require.NoError(t, err)
		_, err = service.SaveMessages(ctx, []models.ConversationMessage{msg})
		require.NoError(t, err)

		count, err := client.ConversationMessage.Query().
			Where(conversationmessage.IDEQ(msg.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("rejects messages with no content", func(t *testing.T) {
		_, err := service.SaveMessages(ctx, []models.ConversationMessage{{
			ID:             uuid.New(),
			ConversationID: conv.ID,
			Role:           models.RoleUser,
		}})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := service.SaveMessages(ctx, []models.ConversationMessage{{
			ID:             uuid.New(),
			ConversationID: conv.ID,
			Role:           "system",
			Content:        models.ContentBlocks{&models.TextBlock{Text: "hi"}},
		}})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestConversationService_RecordCommit(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	conv, err := service.CreateConversation(ctx, uuid.New(), "", nil)
	require.NoError(t, err)

	first := uuid.New()
	second := uuid.New()

	t.Run("appends message ids in order", func(t *testing.T) {
		conv, err = service.RecordCommit(ctx, conv.ID, []uuid.UUID{first}, 120)
		require.NoError(t, err)
		conv, err = service.RecordCommit(ctx, conv.ID, []uuid.UUID{second}, 250)
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{first, second}, conv.MessageIds)
		assert.Equal(t, 250, conv.TokenCount)
	})

	t.Run("retried commits do not duplicate ids", func(t *testing.T) {
		conv, err = service.RecordCommit(ctx, conv.ID, []uuid.UUID{second}, 250)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{first, second}, conv.MessageIds)
	})

	t.Run("returns ErrNotFound for unknown conversation", func(t *testing.T) {
		_, err := service.RecordCommit(ctx, uuid.New(), []uuid.UUID{uuid.New()}, 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConversationService_SetTitle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	conv, err := service.CreateConversation(ctx, uuid.New(), "", nil)
	require.NoError(t, err)

	t.Run("sets a title once", func(t *testing.T) {
		require.NoError(t, service.SetTitle(ctx, conv.ID, "First question"))

		got, err := service.GetConversation(ctx, conv.ID)
		require.NoError(t, err)
		assert.Equal(t, "First question", got.Title)

		// Later attempts leave the original title in place
		require.NoError(t, service.SetTitle(ctx, conv.ID, "Second question"))
		got, err = service.GetConversation(ctx, conv.ID)
		require.NoError(t, err)
		assert.Equal(t, "First question", got.Title)
	})

	t.Run("empty title is ignored", func(t *testing.T) {
		require.NoError(t, service.SetTitle(ctx, conv.ID, ""))
	})
}

func TestConversationService_ListMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	conv, err := service.CreateConversation(ctx, uuid.New(), "", nil)
	require.NoError(t, err)

	texts := []string{"one", "two", "three"}
	for _, text := range texts {
		_, err := service.SaveMessages(ctx, []models.ConversationMessage{
			models.NewUserTextMessage(conv.ID, text),
		})
		require.NoError(t, err)
	}

	rows, err := service.ListMessages(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		require.Len(t, row.Content, 1)
		text := row.Content[0].(*models.TextBlock)
		assert.Equal(t, texts[i], text.Text)
	}
}
