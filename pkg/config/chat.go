package config

import "time"

// ChatConfig contains conversation and chat streaming configuration.
type ChatConfig struct {
	// MaxHistoryTokens is the context window budget for a conversation.
	// Pruning starts once the estimated history exceeds 90% of it.
	MaxHistoryTokens int

	// HistoryTTL is the Redis lifetime of a materialized conversation
	// history.
	HistoryTTL time.Duration

	// PendingTTL is the Redis lifetime of uncommitted pending messages.
	PendingTTL time.Duration

	// SSEInactivityTimeout closes a source event stream that has seen
	// no events for this long.
	SSEInactivityTimeout time.Duration

	// MultiQueryCount is the number of query variants generated for
	// retrieval expansion.
	MultiQueryCount int

	// RetrieveTopN is the number of reranked results returned to the
	// model per search tool call.
	RetrieveTopN int
}

// DefaultChatConfig returns the built-in chat defaults.
func DefaultChatConfig() *ChatConfig {
	return &ChatConfig{
		MaxHistoryTokens:     200_000,
		HistoryTTL:           24 * time.Hour,
		PendingTTL:           1 * time.Hour,
		SSEInactivityTimeout: 1 * time.Hour,
		MultiQueryCount:      3,
		RetrieveTopN:         3,
	}
}

// LoadChatConfig loads the chat section from environment variables.
func LoadChatConfig() (*ChatConfig, error) {
	cfg := DefaultChatConfig()

	maxHistory, err := getEnvInt("CHAT_MAX_HISTORY_TOKENS", cfg.MaxHistoryTokens)
	if err != nil {
		return nil, err
	}
	historyTTL, err := getEnvDuration("CHAT_HISTORY_TTL", cfg.HistoryTTL)
	if err != nil {
		return nil, err
	}
	pendingTTL, err := getEnvDuration("CHAT_PENDING_TTL", cfg.PendingTTL)
	if err != nil {
		return nil, err
	}
	sseTimeout, err := getEnvDuration("CHAT_SSE_INACTIVITY_TIMEOUT", cfg.SSEInactivityTimeout)
	if err != nil {
		return nil, err
	}
	multiQuery, err := getEnvInt("CHAT_MULTI_QUERY_COUNT", cfg.MultiQueryCount)
	if err != nil {
		return nil, err
	}
	topN, err := getEnvInt("CHAT_RETRIEVE_TOP_N", cfg.RetrieveTopN)
	if err != nil {
		return nil, err
	}

	cfg.MaxHistoryTokens = maxHistory
	cfg.HistoryTTL = historyTTL
	cfg.PendingTTL = pendingTTL
	cfg.SSEInactivityTimeout = sseTimeout
	cfg.MultiQueryCount = multiQuery
	cfg.RetrieveTopN = topN
	return cfg, nil
}
