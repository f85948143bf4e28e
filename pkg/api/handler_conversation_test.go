package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

func TestListConversations(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	userID := uuid.New()
	_, err := h.conversations.CreateConversation(ctx, userID, "chunking basics", []uuid.UUID{uuid.New()})
	require.NoError(t, err)
	_, err = h.conversations.CreateConversation(ctx, userID, "retrieval tuning", nil)
	require.NoError(t, err)
	_, err = h.conversations.CreateConversation(ctx, uuid.New(), "someone else's chat", nil)
	require.NoError(t, err)

	decode := func(rec *httptest.ResponseRecorder) ConversationListResponse {
		var resp ConversationListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	t.Run("scopes to the user", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/conversations?user_id="+userID.String(), nil))
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(rec)
		assert.Equal(t, 2, resp.Total)
		require.Len(t, resp.Conversations, 2)
		for _, conv := range resp.Conversations {
			assert.Equal(t, userID, conv.UserID)
		}
	})

	t.Run("applies limit", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/conversations?user_id="+userID.String()+"&limit=1", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(rec)
		assert.Equal(t, 2, resp.Total)
		assert.Len(t, resp.Conversations, 1)
		assert.Equal(t, 1, resp.Limit)
	})

	t.Run("requires user_id", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/conversations", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "user_id is required")
	})

	t.Run("rejects malformed user_id", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/conversations?user_id=nope", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid user_id")
	})
}

func TestGetConversation(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	conv, err := h.conversations.CreateConversation(ctx, uuid.New(), "how does reranking work?", nil)
	require.NoError(t, err)

	// Save in two batches so created_at ordering is unambiguous.
	userMsg := models.NewUserTextMessage(conv.ID, "how does reranking work?")
	_, err = h.conversations.SaveMessages(ctx, []models.ConversationMessage{userMsg})
	require.NoError(t, err)
	assistantMsg := models.ConversationMessage{
		ID:             uuid.New(),
		ConversationID: conv.ID,
		Role:           models.RoleAssistant,
		Content: models.ContentBlocks{
			&models.ToolUseBlock{ID: "tu_1", Name: "retrieve", Input: map[string]any{"query": "reranking"}},
			&models.TextBlock{Text: "Reranking reorders retrieved chunks by relevance."},
		},
	}
	_, err = h.conversations.SaveMessages(ctx, []models.ConversationMessage{assistantMsg})
	require.NoError(t, err)

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/conversations/"+conv.ID.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ConversationDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Conversation)
	assert.Equal(t, conv.ID, resp.Conversation.ID)
	assert.Equal(t, "how does reranking work?", resp.Conversation.Title)

	require.Len(t, resp.Messages, 2)
	assert.Equal(t, userMsg.ID, resp.Messages[0].ID)
	require.Len(t, resp.Messages[0].Content, 1)
	text, ok := resp.Messages[0].Content[0].(*models.TextBlock)
	require.True(t, ok)
	assert.Equal(t, "how does reranking work?", text.Text)

	require.Len(t, resp.Messages[1].Content, 2)
	tool, ok := resp.Messages[1].Content[0].(*models.ToolUseBlock)
	require.True(t, ok)
	assert.Equal(t, "retrieve", tool.Name)
}

func TestGetConversationErrors(t *testing.T) {
	h := newAPIHarness(t)

	t.Run("unknown id", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/conversations/"+uuid.NewString(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/conversations/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid conversation id")
	})
}
