package api

import (
	"github.com/kollektiv-ai/kollektiv/ent"
)

// SourceListResponse is returned by GET /api/v0/sources.
type SourceListResponse struct {
	Sources []*ent.Source `json:"sources"`
	Total   int           `json:"total"`
	Limit   int           `json:"limit"`
	Offset  int           `json:"offset"`
}

// ConversationListResponse is returned by GET /api/v0/conversations.
type ConversationListResponse struct {
	Conversations []*ent.Conversation `json:"conversations"`
	Total         int                 `json:"total"`
	Limit         int                 `json:"limit"`
	Offset        int                 `json:"offset"`
}

// ConversationDetailResponse is returned by GET /api/v0/conversations/:id.
type ConversationDetailResponse struct {
	Conversation *ent.Conversation          `json:"conversation"`
	Messages     []*ent.ConversationMessage `json:"messages"`
}

// WebhookAck is returned by POST /webhooks/firecrawl for every accepted
// notification.
type WebhookAck struct {
	Status string `json:"status"`
}

// HealthCheck is a single dependency check inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
