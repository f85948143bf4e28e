package config

// RerankerConfig contains the rerank provider configuration. Any
// Cohere-compatible /v2/rerank endpoint works.
type RerankerConfig struct {
	// APIKey authenticates against the rerank API. Required.
	APIKey string

	// BaseURL is the API root, without the /v2/rerank path.
	BaseURL string

	// Model is the rerank model name.
	Model string
}

// DefaultRerankerConfig returns the built-in reranker defaults.
func DefaultRerankerConfig() *RerankerConfig {
	return &RerankerConfig{
		BaseURL: "https://api.cohere.com",
		Model:   "rerank-v3.5",
	}
}

// LoadRerankerConfig loads the reranker section from environment variables.
func LoadRerankerConfig() (*RerankerConfig, error) {
	cfg := DefaultRerankerConfig()

	cfg.APIKey = getEnv("COHERE_API_KEY", cfg.APIKey)
	cfg.BaseURL = getEnv("RERANKER_BASE_URL", cfg.BaseURL)
	cfg.Model = getEnv("RERANKER_MODEL", cfg.Model)
	return cfg, nil
}
