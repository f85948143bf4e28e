// Package queue provides the durable job queue workers and the ingestion
// pipeline they execute.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/pkg/chunker"
	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no pending jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobExecutor is the interface for job processing.
//
// The executor owns the ingestion pipeline internally: it advances the source
// through its stages, persists documents and chunks progressively, and emits
// stage events as it goes. The worker only handles claiming, heartbeat, and
// the terminal job status update.
type JobExecutor interface {
	Execute(ctx context.Context, job *ent.Job) *ExecutionResult
}

// ExecutionResult carries just the terminal state. All intermediate state
// (documents, chunks, source stages) was already written by the executor
// during processing.
type ExecutionResult struct {
	Status   models.JobStatus // completed, failed, cancelled
	ResultID *uuid.UUID       // entity the job produced (if completed)
	Error    error            // error details (if failed/cancelled)
}

// ResultFetcher pages a finished crawl's results into documents.
// Satisfied by *crawler.Client.
type ResultFetcher interface {
	FetchResults(ctx context.Context, firecrawlID string, sourceID uuid.UUID) ([]models.Document, error)
}

// ChunkIndexer writes chunk embeddings to the per-user vector index.
// Satisfied by *vector.Index.
type ChunkIndexer interface {
	AddChunks(ctx context.Context, userID uuid.UUID, chunks []models.Chunk) error
}

// SummaryGenerator produces and stores the source summary.
// Satisfied by *summarizer.Generator.
type SummaryGenerator interface {
	Generate(ctx context.Context, sourceID uuid.UUID, docs []models.Document) (models.SourceSummary, error)
}

// StagePublisher broadcasts stage events to the source and global channels.
// Satisfied by *events.Bus.
type StagePublisher interface {
	PublishStageEvent(ctx context.Context, event models.ContentProcessingEvent) error
}

// PromptCache invalidates a user's cached chat system prompt when their
// sources change. Satisfied by *llm.Assistant.
type PromptCache interface {
	InvalidateSystemPrompt(userID uuid.UUID)
}

// Services bundles every dependency of the worker pool and the ingestion
// pipeline. One container is built at startup and shared by the pool, its
// workers, and the executor; there is no module-level state.
//
// Prompts may be nil (chat disabled).
type Services struct {
	Sources *services.SourceService
	Jobs    *services.JobService
	Content *services.ContentService
	Crawler ResultFetcher
	Chunker *chunker.Chunker
	Index   ChunkIndexer
	Summary SummaryGenerator
	Bus     StagePublisher
	Prompts PromptCache
	Config  *config.QueueConfig
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
