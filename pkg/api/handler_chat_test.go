package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
)

// fakeChat replays canned events for a turn and records what it was asked.
type fakeChat struct {
	events []models.FrontendChatEvent
	err    error

	gotUserID         uuid.UUID
	gotConversationID uuid.UUID
	gotText           string
}

func (f *fakeChat) GetResponse(ctx context.Context, userID, conversationID uuid.UUID, text string) (<-chan models.FrontendChatEvent, error) {
	f.gotUserID = userID
	f.gotConversationID = conversationID
	f.gotText = text
	if f.err != nil {
		return nil, f.err
	}
	ch := make(chan models.FrontendChatEvent, len(f.events))
	for _, ev := range f.events {
		ch <- ev
	}
	close(ch)
	return ch, nil
}

func callChat(t *testing.T, s *Server, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := jsonRequest(http.MethodPost, "/api/v0/chat", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, s.chatHandler(c)
}

func TestChatHandlerValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		errMsg   string
	}{
		{
			name:     "missing user_id",
			body:     `{"content":"hello"}`,
			wantCode: http.StatusBadRequest,
			errMsg:   "user_id is required",
		},
		{
			name:     "missing content",
			body:     fmt.Sprintf(`{"user_id":%q}`, uuid.New()),
			wantCode: http.StatusBadRequest,
			errMsg:   "content is required",
		},
		{
			name:     "oversized content",
			body:     fmt.Sprintf(`{"user_id":%q,"content":%q}`, uuid.New(), strings.Repeat("a", 100_001)),
			wantCode: http.StatusBadRequest,
			errMsg:   "maximum length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Server{chat: &fakeChat{}}
			_, err := callChat(t, s, tt.body)
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.wantCode, he.Code)
			assert.Contains(t, he.Error(), tt.errMsg)
		})
	}

	t.Run("without a chat service the endpoint is unavailable", func(t *testing.T) {
		s := &Server{}
		_, err := callChat(t, s, `{}`)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusServiceUnavailable, he.Code)
	})

	t.Run("service errors map before the stream starts", func(t *testing.T) {
		s := &Server{chat: &fakeChat{err: fmt.Errorf("wrapped: %w", services.ErrNotFound)}}
		body := fmt.Sprintf(`{"user_id":%q,"conversation_id":%q,"content":"hello"}`, uuid.New(), uuid.New())
		_, err := callChat(t, s, body)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

func TestChatHandlerStreamsEvents(t *testing.T) {
	conversationID := uuid.New()
	userID := uuid.New()
	chat := &fakeChat{events: []models.FrontendChatEvent{
		{Type: models.FrontendEventMessageAccepted, ConversationID: &conversationID, Title: "Chunking"},
		{Type: models.FrontendEventContentBlockDelta, TextDelta: "Chunking splits documents"},
		{Type: models.FrontendEventMessageStop},
	}}
	s := &Server{chat: chat}

	body := fmt.Sprintf(`{"user_id":%q,"content":"what is chunking?"}`, userID)
	rec, err := callChat(t, s, body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	frames := strings.Split(strings.TrimSpace(rec.Body.String()), "\n\n")
	require.Len(t, frames, 3)
	assert.Contains(t, frames[0], "message_accepted")
	assert.Contains(t, frames[0], conversationID.String())
	assert.Contains(t, frames[1], "Chunking splits documents")
	assert.Contains(t, frames[2], "message_stop")

	assert.Equal(t, userID, chat.gotUserID)
	assert.Equal(t, uuid.Nil, chat.gotConversationID)
	assert.Equal(t, "what is chunking?", chat.gotText)
}

func TestChatHandlerPassesConversationID(t *testing.T) {
	conversationID := uuid.New()
	chat := &fakeChat{events: []models.FrontendChatEvent{{Type: models.FrontendEventMessageStop}}}
	s := &Server{chat: chat}

	body := fmt.Sprintf(`{"user_id":%q,"conversation_id":%q,"content":"and then?"}`, uuid.New(), conversationID)
	_, err := callChat(t, s, body)
	require.NoError(t, err)
	assert.Equal(t, conversationID, chat.gotConversationID)
}
