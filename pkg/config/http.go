package config

// HTTPConfig contains the HTTP server configuration.
type HTTPConfig struct {
	// Host is the listen address. Empty binds all interfaces.
	Host string

	// Port is the listen port.
	Port int

	// PublicBaseURL is the externally reachable base URL of this service.
	// The crawler webhook callback URL is derived from it.
	PublicBaseURL string

	// AllowedOrigins are the CORS origins permitted to call the API.
	AllowedOrigins []string
}

// DefaultHTTPConfig returns the built-in HTTP defaults.
func DefaultHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Host:           "",
		Port:           8080,
		PublicBaseURL:  "http://localhost:8080",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

// LoadHTTPConfig loads the HTTP section from environment variables.
func LoadHTTPConfig() (*HTTPConfig, error) {
	cfg := DefaultHTTPConfig()

	port, err := getEnvInt("HTTP_PORT", cfg.Port)
	if err != nil {
		return nil, err
	}

	cfg.Host = getEnv("HTTP_HOST", cfg.Host)
	cfg.Port = port
	cfg.PublicBaseURL = getEnv("PUBLIC_BASE_URL", cfg.PublicBaseURL)
	cfg.AllowedOrigins = getEnvList("HTTP_ALLOWED_ORIGINS", cfg.AllowedOrigins)
	return cfg, nil
}
