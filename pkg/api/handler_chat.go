package api

import (
	"net/http"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
)

// ChatRequest is the HTTP request body for POST /api/v0/chat. A nil
// conversation id starts a new conversation.
type ChatRequest struct {
	UserID         uuid.UUID  `json:"user_id"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
	Content        string     `json:"content"`
}

// chatHandler handles POST /api/v0/chat.
// Runs one chat turn and streams its events as SSE. The stream always ends
// with a terminal event: message_stop on success, error on failure.
func (s *Server) chatHandler(c *echo.Context) error {
	// 1. Verify chat dependencies are initialized
	if s.chat == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "chat service is not available")
	}

	// 2. Bind and validate request body
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.UserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}
	if len(req.Content) > 100_000 {
		return echo.NewHTTPError(http.StatusBadRequest, "content exceeds maximum length of 100,000 characters")
	}

	conversationID := uuid.Nil
	if req.ConversationID != nil {
		conversationID = *req.ConversationID
	}

	// 3. Start the turn; errors before the first event map to HTTP statuses
	events, err := s.chat.GetResponse(c.Request().Context(), req.UserID, conversationID, req.Content)
	if err != nil {
		return mapServiceError(err)
	}

	// 4. Stream events until the turn completes or the client disconnects
	prepareSSE(c)
	for event := range events {
		if err := writeSSEEvent(c, event); err != nil {
			return nil
		}
	}
	return nil
}
