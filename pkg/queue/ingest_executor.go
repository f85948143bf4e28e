package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/pkg/chunker"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// IngestExecutor runs the content processing pipeline for claimed jobs:
// fetch the finished crawl's pages, persist them as documents, chunk and
// index the content, and summarize the source for the chat system prompt.
// Every stage boundary is broadcast as a ContentProcessingEvent.
type IngestExecutor struct {
	svc *Services
}

// NewIngestExecutor creates an executor over the shared services container.
func NewIngestExecutor(svc *Services) *IngestExecutor {
	return &IngestExecutor{svc: svc}
}

// Execute processes one claimed job. On any pipeline error the source is
// marked failed and the terminal event is broadcast before the result is
// returned; the worker only writes the job's own status.
func (e *IngestExecutor) Execute(ctx context.Context, j *ent.Job) *ExecutionResult {
	details, err := e.svc.Jobs.DecodeProcessingDetails(j)
	if err != nil {
		// Undecodable payload: no source id to fail, the job alone records it.
		return &ExecutionResult{
			Status: models.JobStatusFailed,
			Error:  fmt.Errorf("decode job details: %w", err),
		}
	}

	log := slog.With(
		"job_id", j.ID,
		"source_id", details.SourceID,
		"firecrawl_id", details.FirecrawlID)
	log.Info("Ingestion started")

	if err := e.runPipeline(ctx, details, log); err != nil {
		status := models.JobStatusFailed
		if errors.Is(err, context.Canceled) {
			status = models.JobStatusCancelled
		}
		e.failSource(details.SourceID, err)
		log.Error("Ingestion failed", "error", err)
		return &ExecutionResult{Status: status, Error: err}
	}

	log.Info("Ingestion complete")
	return &ExecutionResult{
		Status:   models.JobStatusCompleted,
		ResultID: &details.SourceID,
	}
}

// runPipeline drives the source through its processing stages.
func (e *IngestExecutor) runPipeline(ctx context.Context, details *models.ProcessingJobDetails, log *slog.Logger) error {
	// 1. Page the finished crawl's results into documents.
	docs, err := e.svc.Crawler.FetchResults(ctx, details.FirecrawlID, details.SourceID)
	if err != nil {
		return fmt.Errorf("fetch crawl results: %w", err)
	}

	// 2. Persist the documents in batches.
	if err := e.saveDocuments(ctx, docs); err != nil {
		return err
	}
	if err := e.advance(ctx, details.SourceID, models.StageProcessingScheduled, nil); err != nil {
		return err
	}

	// 3. Chunk every document, then persist and index the chunks in batches.
	chunkCount, err := e.processChunks(ctx, details, docs)
	if err != nil {
		return err
	}
	log.Info("Chunks generated", "documents", len(docs), "chunks", chunkCount)
	if err := e.advance(ctx, details.SourceID, models.StageChunksGenerated, nil); err != nil {
		return err
	}

	// 4. Summarize the source for the chat system prompt.
	if _, err := e.svc.Summary.Generate(ctx, details.SourceID, docs); err != nil {
		return fmt.Errorf("generate summary: %w", err)
	}
	if err := e.advance(ctx, details.SourceID, models.StageSummaryGenerated, nil); err != nil {
		return err
	}

	// 5. Terminal stage: the source is now retrievable in chat.
	metadata := map[string]any{"documents": len(docs), "chunks": chunkCount}
	if err := e.advance(ctx, details.SourceID, models.StageCompleted, metadata); err != nil {
		return err
	}
	e.invalidatePrompt(details.UserID)

	return nil
}

// saveDocuments persists documents in DocumentBatchSize batches.
func (e *IngestExecutor) saveDocuments(ctx context.Context, docs []models.Document) error {
	size := e.svc.Config.DocumentBatchSize
	for start := 0; start < len(docs); start += size {
		end := min(start+size, len(docs))
		if _, err := e.svc.Content.SaveDocuments(ctx, docs[start:end]); err != nil {
			return fmt.Errorf("save documents: %w", err)
		}
	}
	return nil
}

// processChunks chunks each document and writes the chunks durably and to
// the vector index in ChunkBatchSize batches. Documents the chunker rejects
// for having no usable content are skipped. Returns the total chunk count.
func (e *IngestExecutor) processChunks(ctx context.Context, details *models.ProcessingJobDetails, docs []models.Document) (int, error) {
	size := e.svc.Config.ChunkBatchSize
	total := 0

	write := func(batch []models.Chunk) error {
		if _, err := e.svc.Content.SaveChunks(ctx, batch); err != nil {
			return fmt.Errorf("save chunks: %w", err)
		}
		if err := e.svc.Index.AddChunks(ctx, details.UserID, batch); err != nil {
			return fmt.Errorf("index chunks: %w", err)
		}
		total += len(batch)
		return nil
	}

	var buffer []models.Chunk
	for _, doc := range docs {
		chunks, err := e.svc.Chunker.ChunkDocument(doc)
		if err != nil {
			if errors.Is(err, chunker.ErrEmptyDocument) {
				slog.Warn("Skipping document without usable content",
					"document_id", doc.ID, "source_url", doc.Metadata.SourceURL)
				continue
			}
			return 0, fmt.Errorf("chunk document %s: %w", doc.ID, err)
		}
		buffer = append(buffer, chunks...)
		for len(buffer) >= size {
			if err := write(buffer[:size]); err != nil {
				return 0, err
			}
			buffer = append(buffer[:0], buffer[size:]...)
		}
	}
	if len(buffer) > 0 {
		if err := write(buffer); err != nil {
			return 0, err
		}
	}

	return total, nil
}

// advance moves the source to the next stage and broadcasts the boundary.
// Publish failures are logged, not fatal: the durable stage is authoritative
// and the bus already retries transient errors internally.
func (e *IngestExecutor) advance(ctx context.Context, sourceID uuid.UUID, stage models.Stage, metadata map[string]any) error {
	if _, err := e.svc.Sources.AdvanceStage(ctx, sourceID, stage); err != nil {
		return fmt.Errorf("advance to %s: %w", stage, err)
	}
	event := models.NewContentProcessingEvent(sourceID, stage)
	event.Metadata = metadata
	if err := e.svc.Bus.PublishStageEvent(ctx, event); err != nil {
		slog.Warn("Failed to publish stage event",
			"source_id", sourceID, "stage", stage, "error", err)
	}
	return nil
}

// failSource marks the source failed and broadcasts the terminal event.
// Runs on a detached context: the job context is often already cancelled or
// expired by the time the failure is recorded.
func (e *IngestExecutor) failSource(sourceID uuid.UUID, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.svc.Sources.MarkFailed(ctx, sourceID, cause.Error()); err != nil {
		slog.Error("Failed to mark source failed", "source_id", sourceID, "error", err)
	}
	event := models.NewContentProcessingEvent(sourceID, models.StageFailed)
	event.Error = cause.Error()
	if err := e.svc.Bus.PublishStageEvent(ctx, event); err != nil {
		slog.Warn("Failed to publish failure event", "source_id", sourceID, "error", err)
	}
}

// invalidatePrompt drops the user's cached chat system prompt so the next
// turn sees the new source summary.
func (e *IngestExecutor) invalidatePrompt(userID uuid.UUID) {
	if e.svc.Prompts == nil {
		return
	}
	e.svc.Prompts.InvalidateSystemPrompt(userID)
}
