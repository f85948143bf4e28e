package config

// AnthropicConfig contains the LLM provider configuration for chat,
// multi-query expansion, and summary generation.
type AnthropicConfig struct {
	// APIKey authenticates against the Anthropic API. Required.
	APIKey string

	// Model is the model used for conversational responses.
	Model string

	// SummaryModel is the cheaper model used for source summaries and
	// multi-query expansion.
	SummaryModel string

	// MaxTokens caps the length of a single model response.
	MaxTokens int
}

// DefaultAnthropicConfig returns the built-in Anthropic defaults.
func DefaultAnthropicConfig() *AnthropicConfig {
	return &AnthropicConfig{
		Model:        "claude-sonnet-4-20250514",
		SummaryModel: "claude-3-5-haiku-latest",
		MaxTokens:    4096,
	}
}

// LoadAnthropicConfig loads the Anthropic section from environment variables.
func LoadAnthropicConfig() (*AnthropicConfig, error) {
	cfg := DefaultAnthropicConfig()

	maxTokens, err := getEnvInt("ANTHROPIC_MAX_TOKENS", cfg.MaxTokens)
	if err != nil {
		return nil, err
	}

	cfg.APIKey = getEnv("ANTHROPIC_API_KEY", cfg.APIKey)
	cfg.Model = getEnv("ANTHROPIC_MODEL", cfg.Model)
	cfg.SummaryModel = getEnv("ANTHROPIC_SUMMARY_MODEL", cfg.SummaryModel)
	cfg.MaxTokens = maxTokens
	return cfg, nil
}
