package config

// EmbeddingsConfig contains the embedding provider configuration.
type EmbeddingsConfig struct {
	// APIKey authenticates against the OpenAI API. Required.
	APIKey string

	// Model is the embedding model name.
	Model string

	// Dimensions is the embedding vector width. Must match the vector
	// collection schema.
	Dimensions int

	// BatchSize is the number of inputs sent per embeddings request.
	BatchSize int
}

// DefaultEmbeddingsConfig returns the built-in embeddings defaults.
func DefaultEmbeddingsConfig() *EmbeddingsConfig {
	return &EmbeddingsConfig{
		Model:      "text-embedding-3-small",
		Dimensions: 1536,
		BatchSize:  128,
	}
}

// LoadEmbeddingsConfig loads the embeddings section from environment variables.
func LoadEmbeddingsConfig() (*EmbeddingsConfig, error) {
	cfg := DefaultEmbeddingsConfig()

	dims, err := getEnvInt("EMBEDDINGS_DIMENSIONS", cfg.Dimensions)
	if err != nil {
		return nil, err
	}
	batch, err := getEnvInt("EMBEDDINGS_BATCH_SIZE", cfg.BatchSize)
	if err != nil {
		return nil, err
	}

	cfg.APIKey = getEnv("OPENAI_API_KEY", cfg.APIKey)
	cfg.Model = getEnv("EMBEDDINGS_MODEL", cfg.Model)
	cfg.Dimensions = dims
	cfg.BatchSize = batch
	return cfg, nil
}
