package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
)

// addSourceHandler handles POST /api/v0/sources.
// Registers the source, creates its crawl job, and starts the crawl on the
// external service. A rejected crawl persists the source as failed before the
// error response, so subscribers always observe a terminal stage.
func (s *Server) addSourceHandler(c *echo.Context) error {
	// 1. Verify crawler is initialized
	if s.crawler == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "crawler is not available")
	}

	// 2. Bind the request body; a missing request id gets a fresh one, a
	// client-supplied one acts as an idempotency key (duplicates map to 409)
	var req models.AddSourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.RequestID == uuid.Nil {
		req.RequestID = uuid.New()
	}

	ctx := c.Request().Context()

	// 3. Persist the source at its initial stage
	src, err := s.sources.CreateSource(ctx, req)
	if err != nil {
		return mapServiceError(err)
	}

	// 4. Create the crawl job and link it to the source. The stored config is
	// used from here on: it has defaults and pattern normalization applied.
	crawlCfg := src.Metadata.CrawlConfig
	jb, err := s.jobs.CreateJob(ctx, models.JobTypeCrawl, models.CrawlJobDetails{
		SourceID: src.ID,
		UserID:   src.UserID,
		URL:      crawlCfg.URL,
	})
	if err != nil {
		return mapServiceError(err)
	}
	if err := s.sources.SetJob(ctx, src.ID, jb.ID); err != nil {
		return mapServiceError(err)
	}

	// 5. Start the crawl on the external service
	firecrawlID, err := s.crawler.StartCrawl(ctx, crawlCfg)
	if err != nil {
		slog.Error("Failed to start crawl",
			"source_id", src.ID, "url", crawlCfg.URL, "error", err)
		s.failSource(ctx, src.ID, jb.ID, "failed to start crawl: "+err.Error())
		return echo.NewHTTPError(http.StatusBadGateway, "failed to start crawl")
	}

	// 6. Record the external crawl id that correlates webhook notifications
	if _, err := s.jobs.UpdateJob(ctx, jb.ID, models.JobPatch{Details: models.CrawlJobDetails{
		SourceID:    src.ID,
		UserID:      src.UserID,
		URL:         crawlCfg.URL,
		FirecrawlID: firecrawlID,
	}}); err != nil {
		return mapServiceError(err)
	}

	// 7. Advance to crawling_started and notify subscribers
	src, err = s.sources.AdvanceStage(ctx, src.ID, models.StageCrawlingStarted)
	if err != nil {
		return mapServiceError(err)
	}
	s.publishStageEvent(ctx, models.NewContentProcessingEvent(src.ID, models.StageCrawlingStarted))

	// 8. Return 201 with the accepted source
	return c.JSON(http.StatusCreated, &models.AddSourceResponse{
		SourceID:  src.ID,
		Stage:     models.Stage(src.Stage),
		CreatedAt: src.CreatedAt,
	})
}

// getSourceHandler handles GET /api/v0/sources/:id.
func (s *Server) getSourceHandler(c *echo.Context) error {
	sourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid source id")
	}

	src, err := s.sources.GetSource(c.Request().Context(), sourceID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, src)
}

// listSourcesHandler handles GET /api/v0/sources.
func (s *Server) listSourcesHandler(c *echo.Context) error {
	filters := models.SourceFilters{Limit: 25}

	// Parse filters.
	if v := c.QueryParam("user_id"); v != "" {
		userID, err := uuid.Parse(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
		}
		filters.UserID = &userID
	}
	if v := c.QueryParam("stage"); v != "" {
		stage := models.Stage(v)
		if !stage.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid stage: "+v)
		}
		filters.Stage = stage
	}

	// Parse pagination.
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	sources, total, err := s.sources.ListSources(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &SourceListResponse{
		Sources: sources,
		Total:   total,
		Limit:   filters.Limit,
		Offset:  filters.Offset,
	})
}

// sourceEventsHandler handles GET /api/v0/sources/:id/events.
// The subscription is opened before the source is read so no transition can
// slip between them: the persisted state is sent as the first event, then
// live events follow until a terminal stage arrives or the stream goes idle.
func (s *Server) sourceEventsHandler(c *echo.Context) error {
	sourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid source id")
	}
	if s.bus == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "event streaming is not available")
	}

	ctx := c.Request().Context()
	stream, err := s.bus.StreamSource(ctx, sourceID)
	if err != nil {
		return mapServiceError(err)
	}
	defer stream.Close()

	src, err := s.sources.GetSource(ctx, sourceID)
	if err != nil {
		return mapServiceError(err)
	}

	prepareSSE(c)
	snapshot := models.NewContentProcessingEvent(src.ID, models.Stage(src.Stage))
	if src.ErrorMessage != nil {
		snapshot.Error = *src.ErrorMessage
	}
	if err := writeSSEEvent(c, snapshot); err != nil {
		return nil
	}
	if snapshot.Stage.IsTerminal() {
		return nil
	}

	for event := range stream.Events() {
		if err := writeSSEEvent(c, event); err != nil {
			return nil
		}
	}
	return nil
}

// failSource marks the job and its source terminally failed and notifies
// subscribers so open event streams end.
func (s *Server) failSource(ctx context.Context, sourceID, jobID uuid.UUID, msg string) {
	if err := s.jobs.MarkFailed(ctx, jobID, msg); err != nil && !services.IsJobStateError(err) {
		slog.Error("Failed to mark job failed", "job_id", jobID, "error", err)
	}
	if err := s.sources.MarkFailed(ctx, sourceID, msg); err != nil {
		slog.Error("Failed to mark source failed", "source_id", sourceID, "error", err)
	}
	event := models.NewContentProcessingEvent(sourceID, models.StageFailed)
	event.Error = msg
	s.publishStageEvent(ctx, event)
}

// publishStageEvent broadcasts event when a bus is wired. Publish failures
// are logged, never fatal: the durable stage is authoritative.
func (s *Server) publishStageEvent(ctx context.Context, event models.ContentProcessingEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.PublishStageEvent(ctx, event); err != nil {
		slog.Warn("Failed to publish stage event",
			"source_id", event.SourceID, "stage", event.Stage, "error", err)
	}
}
