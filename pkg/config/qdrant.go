package config

// QdrantConfig contains the vector database connection configuration.
type QdrantConfig struct {
	// Host is the qdrant gRPC host.
	Host string

	// Port is the qdrant gRPC port (6334 by default, not the REST port).
	Port int

	// APIKey authenticates against qdrant cloud. Empty for local instances.
	APIKey string

	// UseTLS enables transport security. Required for qdrant cloud.
	UseTLS bool
}

// DefaultQdrantConfig returns the built-in qdrant defaults.
func DefaultQdrantConfig() *QdrantConfig {
	return &QdrantConfig{
		Host: "localhost",
		Port: 6334,
	}
}

// LoadQdrantConfig loads the qdrant section from environment variables.
func LoadQdrantConfig() (*QdrantConfig, error) {
	cfg := DefaultQdrantConfig()

	port, err := getEnvInt("QDRANT_PORT", cfg.Port)
	if err != nil {
		return nil, err
	}
	useTLS, err := getEnvBool("QDRANT_USE_TLS", cfg.UseTLS)
	if err != nil {
		return nil, err
	}

	cfg.Host = getEnv("QDRANT_HOST", cfg.Host)
	cfg.Port = port
	cfg.APIKey = getEnv("QDRANT_API_KEY", cfg.APIKey)
	cfg.UseTLS = useTLS
	return cfg, nil
}
