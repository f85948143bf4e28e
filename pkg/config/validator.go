package config

import (
	"fmt"
	"net/url"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateHTTP(); err != nil {
		return fmt.Errorf("http validation failed: %w", err)
	}
	if err := v.validateRedis(); err != nil {
		return fmt.Errorf("redis validation failed: %w", err)
	}
	if err := v.validateQdrant(); err != nil {
		return fmt.Errorf("qdrant validation failed: %w", err)
	}
	if err := v.validateAnthropic(); err != nil {
		return fmt.Errorf("anthropic validation failed: %w", err)
	}
	if err := v.validateEmbeddings(); err != nil {
		return fmt.Errorf("embeddings validation failed: %w", err)
	}
	if err := v.validateReranker(); err != nil {
		return fmt.Errorf("reranker validation failed: %w", err)
	}
	if err := v.validateFirecrawl(); err != nil {
		return fmt.Errorf("firecrawl validation failed: %w", err)
	}
	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}
	if err := v.validateChat(); err != nil {
		return fmt.Errorf("chat validation failed: %w", err)
	}
	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}
	return nil
}

func (v *ConfigValidator) validateHTTP() error {
	h := v.cfg.HTTP
	if h == nil {
		return fmt.Errorf("http configuration is nil")
	}
	if h.Port < 1 || h.Port > 65535 {
		return NewValidationError("http", "HTTP_PORT", fmt.Errorf("must be between 1 and 65535, got %d", h.Port))
	}
	if err := validateBaseURL(h.PublicBaseURL); err != nil {
		return NewValidationError("http", "PUBLIC_BASE_URL", err)
	}
	return nil
}

func (v *ConfigValidator) validateRedis() error {
	r := v.cfg.Redis
	if r == nil {
		return fmt.Errorf("redis configuration is nil")
	}
	if r.Addr == "" {
		return NewValidationError("redis", "REDIS_ADDR", ErrMissingRequiredField)
	}
	return nil
}

func (v *ConfigValidator) validateQdrant() error {
	q := v.cfg.Qdrant
	if q == nil {
		return fmt.Errorf("qdrant configuration is nil")
	}
	if q.Host == "" {
		return NewValidationError("qdrant", "QDRANT_HOST", ErrMissingRequiredField)
	}
	if q.Port < 1 || q.Port > 65535 {
		return NewValidationError("qdrant", "QDRANT_PORT", fmt.Errorf("must be between 1 and 65535, got %d", q.Port))
	}
	return nil
}

func (v *ConfigValidator) validateAnthropic() error {
	a := v.cfg.Anthropic
	if a == nil {
		return fmt.Errorf("anthropic configuration is nil")
	}
	if a.APIKey == "" {
		return NewValidationError("anthropic", "ANTHROPIC_API_KEY", ErrMissingRequiredField)
	}
	if a.Model == "" {
		return NewValidationError("anthropic", "ANTHROPIC_MODEL", ErrMissingRequiredField)
	}
	if a.SummaryModel == "" {
		return NewValidationError("anthropic", "ANTHROPIC_SUMMARY_MODEL", ErrMissingRequiredField)
	}
	if a.MaxTokens < 1 {
		return NewValidationError("anthropic", "ANTHROPIC_MAX_TOKENS", fmt.Errorf("must be at least 1, got %d", a.MaxTokens))
	}
	return nil
}

func (v *ConfigValidator) validateEmbeddings() error {
	e := v.cfg.Embeddings
	if e == nil {
		return fmt.Errorf("embeddings configuration is nil")
	}
	if e.APIKey == "" {
		return NewValidationError("embeddings", "OPENAI_API_KEY", ErrMissingRequiredField)
	}
	if e.Model == "" {
		return NewValidationError("embeddings", "EMBEDDINGS_MODEL", ErrMissingRequiredField)
	}
	if e.Dimensions < 1 {
		return NewValidationError("embeddings", "EMBEDDINGS_DIMENSIONS", fmt.Errorf("must be at least 1, got %d", e.Dimensions))
	}
	if e.BatchSize < 1 || e.BatchSize > 2048 {
		return NewValidationError("embeddings", "EMBEDDINGS_BATCH_SIZE", fmt.Errorf("must be between 1 and 2048, got %d", e.BatchSize))
	}
	return nil
}

func (v *ConfigValidator) validateReranker() error {
	r := v.cfg.Reranker
	if r == nil {
		return fmt.Errorf("reranker configuration is nil")
	}
	if r.APIKey == "" {
		return NewValidationError("reranker", "COHERE_API_KEY", ErrMissingRequiredField)
	}
	if err := validateBaseURL(r.BaseURL); err != nil {
		return NewValidationError("reranker", "RERANKER_BASE_URL", err)
	}
	if r.Model == "" {
		return NewValidationError("reranker", "RERANKER_MODEL", ErrMissingRequiredField)
	}
	return nil
}

func (v *ConfigValidator) validateFirecrawl() error {
	f := v.cfg.Firecrawl
	if f == nil {
		return fmt.Errorf("firecrawl configuration is nil")
	}
	if f.APIKey == "" {
		return NewValidationError("firecrawl", "FIRECRAWL_API_KEY", ErrMissingRequiredField)
	}
	if err := validateBaseURL(f.BaseURL); err != nil {
		return NewValidationError("firecrawl", "FIRECRAWL_BASE_URL", err)
	}
	if f.MaxAttempts < 1 {
		return NewValidationError("firecrawl", "FIRECRAWL_MAX_ATTEMPTS", fmt.Errorf("must be at least 1, got %d", f.MaxAttempts))
	}
	if f.InitialBackoff <= 0 {
		return NewValidationError("firecrawl", "FIRECRAWL_INITIAL_BACKOFF", fmt.Errorf("must be positive"))
	}
	if f.MaxBackoff < f.InitialBackoff {
		return NewValidationError("firecrawl", "FIRECRAWL_MAX_BACKOFF", fmt.Errorf("must be at least the initial backoff"))
	}
	if f.ResultMaxBackoff < f.ResultInitialBackoff {
		return NewValidationError("firecrawl", "FIRECRAWL_RESULT_MAX_BACKOFF", fmt.Errorf("must be at least the initial backoff"))
	}
	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q == nil {
		return fmt.Errorf("queue configuration is nil")
	}
	if q.WorkerCount < 1 || q.WorkerCount > 50 {
		return fmt.Errorf("worker_count must be between 1 and 50, got %d", q.WorkerCount)
	}
	if q.MaxConcurrentJobs < 1 {
		return fmt.Errorf("max_concurrent_jobs must be at least 1, got %d", q.MaxConcurrentJobs)
	}
	if q.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}
	if q.PollIntervalJitter < 0 {
		return fmt.Errorf("poll_interval_jitter cannot be negative")
	}
	if q.JobTimeout <= 0 {
		return fmt.Errorf("job_timeout must be positive")
	}
	if q.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat_interval must be positive")
	}
	if q.HeartbeatInterval >= q.OrphanThreshold {
		return fmt.Errorf("heartbeat_interval must be less than orphan_threshold")
	}
	if q.DocumentBatchSize < 1 {
		return fmt.Errorf("document_batch_size must be at least 1, got %d", q.DocumentBatchSize)
	}
	if q.ChunkBatchSize < 1 {
		return fmt.Errorf("chunk_batch_size must be at least 1, got %d", q.ChunkBatchSize)
	}
	return nil
}

func (v *ConfigValidator) validateChat() error {
	c := v.cfg.Chat
	if c == nil {
		return fmt.Errorf("chat configuration is nil")
	}
	if c.MaxHistoryTokens < 1000 {
		return fmt.Errorf("max_history_tokens must be at least 1000, got %d", c.MaxHistoryTokens)
	}
	if c.HistoryTTL <= 0 {
		return fmt.Errorf("history_ttl must be positive")
	}
	if c.PendingTTL <= 0 {
		return fmt.Errorf("pending_ttl must be positive")
	}
	if c.SSEInactivityTimeout <= 0 {
		return fmt.Errorf("sse_inactivity_timeout must be positive")
	}
	if c.MultiQueryCount < 1 || c.MultiQueryCount > 10 {
		return fmt.Errorf("multi_query_count must be between 1 and 10, got %d", c.MultiQueryCount)
	}
	if c.RetrieveTopN < 1 {
		return fmt.Errorf("retrieve_top_n must be at least 1, got %d", c.RetrieveTopN)
	}
	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention
	if r == nil {
		return fmt.Errorf("retention configuration is nil")
	}
	if r.JobRetention <= 0 {
		return fmt.Errorf("job_retention must be positive")
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be positive")
	}
	return nil
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return ErrMissingRequiredField
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL host is empty")
	}
	return nil
}
