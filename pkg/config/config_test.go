package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets the minimal environment Load needs to succeed.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("COHERE_API_KEY", "co-test")
	t.Setenv("FIRECRAWL_API_KEY", "fc-test")
}

func TestLoadWithDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:8080", cfg.HTTP.PublicBaseURL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "localhost", cfg.Qdrant.Host)
	assert.Equal(t, 6334, cfg.Qdrant.Port)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.Anthropic.Model)
	assert.Equal(t, "text-embedding-3-small", cfg.Embeddings.Model)
	assert.Equal(t, 1536, cfg.Embeddings.Dimensions)
	assert.Equal(t, "rerank-v3.5", cfg.Reranker.Model)
	assert.Equal(t, "https://api.firecrawl.dev/v1", cfg.Firecrawl.BaseURL)
	assert.Equal(t, "/webhooks/firecrawl", cfg.Firecrawl.WebhookPath)
	assert.Equal(t, 200_000, cfg.Chat.MaxHistoryTokens)
	assert.Equal(t, 24*time.Hour, cfg.Chat.HistoryTTL)
	assert.Equal(t, 1*time.Hour, cfg.Chat.PendingTTL)
	assert.Equal(t, 1*time.Hour, cfg.Chat.SSEInactivityTimeout)
	assert.Equal(t, 3, cfg.Chat.MultiQueryCount)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention.JobRetention)
	assert.Equal(t, 1*time.Hour, cfg.Retention.CleanupInterval)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PUBLIC_BASE_URL", "https://kollektiv.example.com")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("QUEUE_WORKER_COUNT", "10")
	t.Setenv("CHAT_HISTORY_TTL", "48h")
	t.Setenv("FIRECRAWL_MAX_ATTEMPTS", "3")
	t.Setenv("JOB_RETENTION", "168h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "https://kollektiv.example.com", cfg.HTTP.PublicBaseURL)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, 10, cfg.Queue.WorkerCount)
	assert.Equal(t, 48*time.Hour, cfg.Chat.HistoryTTL)
	assert.Equal(t, 3, cfg.Firecrawl.MaxAttempts)
	assert.Equal(t, 168*time.Hour, cfg.Retention.JobRetention)
}

func TestLoadMissingRequiredKeys(t *testing.T) {
	tests := []struct {
		name   string
		unset  string
		envVar string
	}{
		{name: "missing anthropic key", unset: "ANTHROPIC_API_KEY", envVar: "ANTHROPIC_API_KEY"},
		{name: "missing openai key", unset: "OPENAI_API_KEY", envVar: "OPENAI_API_KEY"},
		{name: "missing cohere key", unset: "COHERE_API_KEY", envVar: "COHERE_API_KEY"},
		{name: "missing firecrawl key", unset: "FIRECRAWL_API_KEY", envVar: "FIRECRAWL_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.envVar, validationErr.Field)
			assert.True(t, errors.Is(err, ErrMissingRequiredField))
		})
	}
}

func TestLoadMalformedValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{name: "bad port", envVar: "HTTP_PORT", value: "not-a-number", errMsg: "invalid HTTP_PORT"},
		{name: "bad duration", envVar: "CHAT_HISTORY_TTL", value: "yesterday", errMsg: "invalid CHAT_HISTORY_TTL"},
		{name: "bad bool", envVar: "QDRANT_USE_TLS", value: "maybe", errMsg: "invalid QDRANT_USE_TLS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.envVar, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "valid http", url: "http://localhost:8080", wantErr: false},
		{name: "valid https", url: "https://kollektiv.example.com", wantErr: false},
		{name: "empty", url: "", wantErr: true},
		{name: "no scheme", url: "localhost:8080", wantErr: true},
		{name: "bad scheme", url: "ftp://example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBaseURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
