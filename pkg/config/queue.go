package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how ingestion jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes jobs.
	WorkerCount int

	// MaxConcurrentJobs is the global limit of concurrent jobs being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentJobs int

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// JobTimeout is the maximum time a job can be processed.
	JobTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration

	// HeartbeatInterval is how often a worker refreshes the heartbeat
	// on the job it is processing.
	HeartbeatInterval time.Duration

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration

	// OrphanThreshold is how long a job can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration

	// DocumentBatchSize is the number of documents persisted per batch
	// during ingestion.
	DocumentBatchSize int

	// ChunkBatchSize is the number of chunks persisted and indexed per
	// batch during ingestion.
	ChunkBatchSize int
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentJobs:       5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              30 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		DocumentBatchSize:       50,
		ChunkBatchSize:          500,
	}
}

// LoadQueueConfig loads the queue section from environment variables.
func LoadQueueConfig() (*QueueConfig, error) {
	cfg := DefaultQueueConfig()

	workers, err := getEnvInt("QUEUE_WORKER_COUNT", cfg.WorkerCount)
	if err != nil {
		return nil, err
	}
	maxConcurrent, err := getEnvInt("QUEUE_MAX_CONCURRENT_JOBS", cfg.MaxConcurrentJobs)
	if err != nil {
		return nil, err
	}
	pollInterval, err := getEnvDuration("QUEUE_POLL_INTERVAL", cfg.PollInterval)
	if err != nil {
		return nil, err
	}
	pollJitter, err := getEnvDuration("QUEUE_POLL_INTERVAL_JITTER", cfg.PollIntervalJitter)
	if err != nil {
		return nil, err
	}
	jobTimeout, err := getEnvDuration("QUEUE_JOB_TIMEOUT", cfg.JobTimeout)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getEnvDuration("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout)
	if err != nil {
		return nil, err
	}
	heartbeat, err := getEnvDuration("QUEUE_HEARTBEAT_INTERVAL", cfg.HeartbeatInterval)
	if err != nil {
		return nil, err
	}
	orphanInterval, err := getEnvDuration("QUEUE_ORPHAN_DETECTION_INTERVAL", cfg.OrphanDetectionInterval)
	if err != nil {
		return nil, err
	}
	orphanThreshold, err := getEnvDuration("QUEUE_ORPHAN_THRESHOLD", cfg.OrphanThreshold)
	if err != nil {
		return nil, err
	}
	docBatch, err := getEnvInt("QUEUE_DOCUMENT_BATCH_SIZE", cfg.DocumentBatchSize)
	if err != nil {
		return nil, err
	}
	chunkBatch, err := getEnvInt("QUEUE_CHUNK_BATCH_SIZE", cfg.ChunkBatchSize)
	if err != nil {
		return nil, err
	}

	cfg.WorkerCount = workers
	cfg.MaxConcurrentJobs = maxConcurrent
	cfg.PollInterval = pollInterval
	cfg.PollIntervalJitter = pollJitter
	cfg.JobTimeout = jobTimeout
	cfg.GracefulShutdownTimeout = shutdownTimeout
	cfg.HeartbeatInterval = heartbeat
	cfg.OrphanDetectionInterval = orphanInterval
	cfg.OrphanThreshold = orphanThreshold
	cfg.DocumentBatchSize = docBatch
	cfg.ChunkBatchSize = chunkBatch
	return cfg, nil
}
