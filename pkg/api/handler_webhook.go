package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/ent/job"
	"github.com/kollektiv-ai/kollektiv/pkg/crawler"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
)

// firecrawlWebhookHandler handles POST /webhooks/firecrawl.
// The crawler posts lifecycle notifications here while a crawl runs. Accepted
// notifications are answered 200 even when they are duplicates or reference
// unknown crawls, so the crawler stops redelivering them. Persistence
// failures are answered 5xx on purpose: redelivery is the retry mechanism.
func (s *Server) firecrawlWebhookHandler(c *echo.Context) error {
	// 1. Bind; a malformed body is the only rejected shape
	var payload crawler.WebhookPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if payload.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "crawl id is required")
	}

	// 2. Correlate with the crawl job
	ctx := c.Request().Context()
	jb, err := s.jobs.FindByFirecrawlID(ctx, payload.ID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			slog.Warn("Webhook notification for unknown crawl",
				"crawl_id", payload.ID, "type", payload.Type)
			return c.JSON(http.StatusOK, &WebhookAck{Status: "ignored"})
		}
		return mapServiceError(err)
	}
	details, err := s.jobs.DecodeCrawlDetails(jb)
	if err != nil {
		slog.Error("Failed to decode crawl job details",
			"job_id", jb.ID, "crawl_id", payload.ID, "error", err)
		return c.JSON(http.StatusOK, &WebhookAck{Status: "ignored"})
	}

	// 3. Apply the notification
	switch payload.Type {
	case crawler.WebhookCrawlStarted:
		err = s.handleCrawlStarted(ctx, jb)
	case crawler.WebhookCrawlPage:
		err = s.handleCrawlPage(ctx, details, &payload)
	case crawler.WebhookCrawlCompleted:
		err = s.handleCrawlCompleted(ctx, jb, details, &payload)
	case crawler.WebhookCrawlFailed:
		s.handleCrawlFailed(ctx, jb, details, &payload)
	default:
		slog.Warn("Unknown webhook notification type",
			"type", payload.Type, "crawl_id", payload.ID)
		return c.JSON(http.StatusOK, &WebhookAck{Status: "ignored"})
	}
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &WebhookAck{Status: "accepted"})
}

// handleCrawlStarted transitions the crawl job to in_progress. A duplicate
// notification finds the job already running and is a no-op.
func (s *Server) handleCrawlStarted(ctx context.Context, jb *ent.Job) error {
	if jb.Status != job.StatusPending {
		return nil
	}
	if _, err := s.jobs.MarkRunning(ctx, jb.ID, s.podID); err != nil {
		if services.IsJobStateError(err) {
			return nil
		}
		return err
	}
	return nil
}

// handleCrawlPage advances the source's crawled page counter. A notification
// normally carries one page; one without page data still counts as a page.
func (s *Server) handleCrawlPage(ctx context.Context, details *models.CrawlJobDetails, payload *crawler.WebhookPayload) error {
	pages := payload.PageCount()
	if pages == 0 {
		pages = 1
	}
	for i := 0; i < pages; i++ {
		if _, err := s.sources.IncrementPagesCrawled(ctx, details.SourceID); err != nil {
			return err
		}
	}
	return nil
}

// handleCrawlCompleted finishes the crawl job and schedules ingestion. The
// processing job created here is what a worker later claims to fetch, chunk,
// index, and summarize the crawl results.
//
// The processing job is created before the crawl job is completed: if the
// pod dies between the two writes, the redelivered notification sees a
// non-terminal crawl job and schedules again, which at worst re-ingests,
// while the reverse order would leave the source stalled with no job.
func (s *Server) handleCrawlCompleted(ctx context.Context, jb *ent.Job, details *models.CrawlJobDetails, payload *crawler.WebhookPayload) error {
	// Duplicate notification: the first one already scheduled ingestion.
	if models.JobStatus(jb.Status).IsTerminal() {
		return nil
	}
	// A lost crawl.started leaves the job pending; it must run to complete.
	if jb.Status == job.StatusPending {
		if _, err := s.jobs.MarkRunning(ctx, jb.ID, s.podID); err != nil && !services.IsJobStateError(err) {
			return err
		}
	}

	if n := payload.PageCount(); n > 0 {
		if err := s.sources.SetTotalPages(ctx, details.SourceID, n); err != nil {
			slog.Warn("Failed to record page total",
				"source_id", details.SourceID, "error", err)
		}
	}

	processing, err := s.jobs.CreateJob(ctx, models.JobTypeProcessing, models.ProcessingJobDetails{
		SourceID:    details.SourceID,
		UserID:      details.UserID,
		FirecrawlID: payload.ID,
	})
	if err != nil {
		return err
	}
	if err := s.sources.SetJob(ctx, details.SourceID, processing.ID); err != nil {
		return err
	}
	if err := s.jobs.MarkCompleted(ctx, jb.ID, &details.SourceID); err != nil && !services.IsJobStateError(err) {
		return err
	}

	slog.Info("Crawl completed, ingestion scheduled",
		"source_id", details.SourceID,
		"crawl_job_id", jb.ID,
		"processing_job_id", processing.ID)
	return nil
}

// handleCrawlFailed marks the crawl job and its source terminally failed and
// notifies subscribers. Best-effort: a redelivered notification finds both
// already failed and changes nothing.
func (s *Server) handleCrawlFailed(ctx context.Context, jb *ent.Job, details *models.CrawlJobDetails, payload *crawler.WebhookPayload) {
	msg := "crawl failed"
	if payload.Error != "" {
		msg = "crawl failed: " + payload.Error
	}
	s.failSource(ctx, details.SourceID, jb.ID, msg)
}
