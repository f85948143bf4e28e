package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
)

// listConversationsHandler handles GET /api/v0/conversations.
// Conversations are scoped to the user named by the required user_id query
// parameter, newest first.
func (s *Server) listConversationsHandler(c *echo.Context) error {
	v := c.QueryParam("user_id")
	if v == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}
	userID, err := uuid.Parse(v)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	// Parse pagination.
	limit, offset := 25, 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	conversations, total, err := s.conversations.ListConversations(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &ConversationListResponse{
		Conversations: conversations,
		Total:         total,
		Limit:         limit,
		Offset:        offset,
	})
}

// getConversationHandler handles GET /api/v0/conversations/:id.
// Returns the conversation and its full message history in order.
func (s *Server) getConversationHandler(c *echo.Context) error {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid conversation id")
	}

	ctx := c.Request().Context()
	conv, err := s.conversations.GetConversation(ctx, conversationID)
	if err != nil {
		return mapServiceError(err)
	}

	messages, err := s.conversations.ListMessages(ctx, conversationID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &ConversationDetailResponse{
		Conversation: conv,
		Messages:     messages,
	})
}
