// Package config loads and validates service configuration from the
// environment.
package config

import "fmt"

// Config is the umbrella configuration object that encapsulates all
// per-concern sections. This is the primary object returned by Load()
// and used throughout the application.
type Config struct {
	HTTP       *HTTPConfig
	Redis      *RedisConfig
	Qdrant     *QdrantConfig
	Anthropic  *AnthropicConfig
	Embeddings *EmbeddingsConfig
	Reranker   *RerankerConfig
	Firecrawl  *FirecrawlConfig
	Queue      *QueueConfig
	Chat       *ChatConfig
	Retention  *RetentionConfig
}

// Load assembles the configuration from environment variables and
// validates it. Database configuration is loaded separately by the
// database package.
func Load() (*Config, error) {
	httpCfg, err := LoadHTTPConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load http config: %w", err)
	}
	redisCfg, err := LoadRedisConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load redis config: %w", err)
	}
	qdrantCfg, err := LoadQdrantConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load qdrant config: %w", err)
	}
	anthropicCfg, err := LoadAnthropicConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load anthropic config: %w", err)
	}
	embeddingsCfg, err := LoadEmbeddingsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load embeddings config: %w", err)
	}
	rerankerCfg, err := LoadRerankerConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load reranker config: %w", err)
	}
	firecrawlCfg, err := LoadFirecrawlConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load firecrawl config: %w", err)
	}
	queueCfg, err := LoadQueueConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load queue config: %w", err)
	}
	chatCfg, err := LoadChatConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load chat config: %w", err)
	}
	retentionCfg, err := LoadRetentionConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load retention config: %w", err)
	}

	cfg := &Config{
		HTTP:       httpCfg,
		Redis:      redisCfg,
		Qdrant:     qdrantCfg,
		Anthropic:  anthropicCfg,
		Embeddings: embeddingsCfg,
		Reranker:   rerankerCfg,
		Firecrawl:  firecrawlCfg,
		Queue:      queueCfg,
		Chat:       chatCfg,
		Retention:  retentionCfg,
	}

	if err := NewValidator(cfg).ValidateAll(); err != nil {
		return nil, err
	}
	return cfg, nil
}
