package config

import "time"

// RetentionConfig controls how long finished operational records are kept.
type RetentionConfig struct {
	// JobRetention is how long terminal jobs (completed, failed, cancelled)
	// are kept before being pruned.
	JobRetention time.Duration

	// CleanupInterval is how often the retention sweep runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		JobRetention:    30 * 24 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
}

// LoadRetentionConfig loads the retention section from environment variables.
func LoadRetentionConfig() (*RetentionConfig, error) {
	cfg := DefaultRetentionConfig()

	jobRetention, err := getEnvDuration("JOB_RETENTION", cfg.JobRetention)
	if err != nil {
		return nil, err
	}
	interval, err := getEnvDuration("CLEANUP_INTERVAL", cfg.CleanupInterval)
	if err != nil {
		return nil, err
	}

	cfg.JobRetention = jobRetention
	cfg.CleanupInterval = interval
	return cfg, nil
}
