package config

import "time"

// FirecrawlConfig contains the crawl provider configuration, including
// the retry budgets for crawl initiation and result pagination.
type FirecrawlConfig struct {
	// APIKey authenticates against the firecrawl API. Required.
	APIKey string

	// BaseURL is the API root including the version prefix.
	BaseURL string

	// WebhookPath is the path on this service that firecrawl calls back.
	// The full callback URL is PublicBaseURL + WebhookPath.
	WebhookPath string

	// RequestTimeout bounds a single HTTP round trip.
	RequestTimeout time.Duration

	// MaxAttempts is the total attempt budget for crawl initiation,
	// including the first try.
	MaxAttempts int

	// InitialBackoff is the wait before the second initiation attempt.
	InitialBackoff time.Duration

	// MaxBackoff caps the growing initiation backoff.
	MaxBackoff time.Duration

	// ResultInitialBackoff is the wait between result page fetches when
	// a page fetch fails transiently.
	ResultInitialBackoff time.Duration

	// ResultMaxBackoff caps the result pagination backoff.
	ResultMaxBackoff time.Duration
}

// DefaultFirecrawlConfig returns the built-in firecrawl defaults.
func DefaultFirecrawlConfig() *FirecrawlConfig {
	return &FirecrawlConfig{
		BaseURL:              "https://api.firecrawl.dev/v1",
		WebhookPath:          "/webhooks/firecrawl",
		RequestTimeout:       60 * time.Second,
		MaxAttempts:          5,
		InitialBackoff:       30 * time.Second,
		MaxBackoff:           300 * time.Second,
		ResultInitialBackoff: 10 * time.Second,
		ResultMaxBackoff:     60 * time.Second,
	}
}

// LoadFirecrawlConfig loads the firecrawl section from environment variables.
func LoadFirecrawlConfig() (*FirecrawlConfig, error) {
	cfg := DefaultFirecrawlConfig()

	timeout, err := getEnvDuration("FIRECRAWL_REQUEST_TIMEOUT", cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}
	attempts, err := getEnvInt("FIRECRAWL_MAX_ATTEMPTS", cfg.MaxAttempts)
	if err != nil {
		return nil, err
	}
	initial, err := getEnvDuration("FIRECRAWL_INITIAL_BACKOFF", cfg.InitialBackoff)
	if err != nil {
		return nil, err
	}
	maxBackoff, err := getEnvDuration("FIRECRAWL_MAX_BACKOFF", cfg.MaxBackoff)
	if err != nil {
		return nil, err
	}
	resultInitial, err := getEnvDuration("FIRECRAWL_RESULT_INITIAL_BACKOFF", cfg.ResultInitialBackoff)
	if err != nil {
		return nil, err
	}
	resultMax, err := getEnvDuration("FIRECRAWL_RESULT_MAX_BACKOFF", cfg.ResultMaxBackoff)
	if err != nil {
		return nil, err
	}

	cfg.APIKey = getEnv("FIRECRAWL_API_KEY", cfg.APIKey)
	cfg.BaseURL = getEnv("FIRECRAWL_BASE_URL", cfg.BaseURL)
	cfg.RequestTimeout = timeout
	cfg.MaxAttempts = attempts
	cfg.InitialBackoff = initial
	cfg.MaxBackoff = maxBackoff
	cfg.ResultInitialBackoff = resultInitial
	cfg.ResultMaxBackoff = resultMax
	return cfg, nil
}
