package e2e

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/crawler"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// registerSource posts an add-source request and returns the accepted source.
func registerSource(t *testing.T, h *harness, userID uuid.UUID) models.AddSourceResponse {
	t.Helper()
	body := fmt.Sprintf(`{
		"user_id": %q,
		"source_type": "web",
		"request_config": {
			"url": "https://docs.example.com",
			"page_limit": 10,
			"max_depth": 2
		}
	}`, userID)

	resp := h.post("/api/v0/sources", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var accepted models.AddSourceResponse
	decodeResponse(t, resp, &accepted)
	require.NotEqual(t, uuid.Nil, accepted.SourceID)
	require.Equal(t, models.StageCrawlingStarted, accepted.Stage)
	return accepted
}

// deliverWebhook posts a crawler notification and requires a 200 ack.
func deliverWebhook(t *testing.T, h *harness, body string) {
	t.Helper()
	resp := h.post("/webhooks/firecrawl", body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func stagesOf(frames []models.ContentProcessingEvent) []models.Stage {
	stages := make([]models.Stage, len(frames))
	for i, f := range frames {
		stages[i] = f.Stage
	}
	return stages
}

func TestIngestionEndToEnd(t *testing.T) {
	h := newHarness(t)
	userID := uuid.New()

	accepted := registerSource(t, h, userID)

	// The crawl submission reached the provider with the derived callback.
	sub := h.firecrawl.lastSubmission(t)
	require.Equal(t, "https://docs.example.com", sub.URL)
	require.Equal(t, "http://kollektiv.test/webhooks/firecrawl", sub.Webhook)

	frames := h.openEventStream(accepted.SourceID)

	deliverWebhook(t, h, fmt.Sprintf(`{"type":"crawl.started","id":%q,"success":true}`, sub.ID))
	deliverWebhook(t, h, fmt.Sprintf(`{"type":"crawl.page","id":%q,"success":true,"data":[{}]}`, sub.ID))
	deliverWebhook(t, h, fmt.Sprintf(`{"type":"crawl.page","id":%q,"success":true,"data":[{}]}`, sub.ID))

	h.firecrawl.setResults(sub.ID, []crawler.Page{
		{
			Markdown: "# Getting Started\n\nInstall the client and point it at your cluster.\n\n```bash\nkollektiv init --cluster prod\n```\n\nThe init command writes a config file to the home directory.",
			Metadata: crawler.PageMetadata{
				Title:     "Getting Started",
				SourceURL: "https://docs.example.com/start",
			},
		},
		{
			Markdown: "# Configuration\n\n## Environment\n\nEvery setting can be supplied through the environment. Values from the config file take precedence over defaults but yield to environment overrides.",
			Metadata: crawler.PageMetadata{
				Title:     "Configuration",
				SourceURL: "https://docs.example.com/config",
			},
		},
	})
	deliverWebhook(t, h, fmt.Sprintf(`{"type":"crawl.completed","id":%q,"success":true}`, sub.ID))

	h.awaitStage(accepted.SourceID, models.StageCompleted)

	// The SSE stream replayed the persisted stage as a snapshot, then the
	// live pipeline stages in order, and closed on the terminal one.
	events := <-frames
	require.NotEmpty(t, events)
	assert.Equal(t, []models.Stage{
		models.StageCrawlingStarted,
		models.StageProcessingScheduled,
		models.StageChunksGenerated,
		models.StageSummaryGenerated,
		models.StageCompleted,
	}, stagesOf(events))
	for _, event := range events {
		assert.Equal(t, accepted.SourceID, event.SourceID)
		assert.Empty(t, event.Error)
	}

	// Durable chunks and indexed chunks agree.
	ctx := t.Context()
	chunkCount, err := h.content.CountChunks(ctx, accepted.SourceID)
	require.NoError(t, err)
	assert.Greater(t, chunkCount, 0)
	assert.Equal(t, chunkCount, h.indexer.total())

	summary, err := h.content.GetSummary(ctx, accepted.SourceID)
	require.NoError(t, err)
	assert.Equal(t, accepted.SourceID, summary.SourceID)
	assert.NotEmpty(t, summary.Summary)

	// Page progress from the webhooks landed on the source.
	src, err := h.sources.GetSource(ctx, accepted.SourceID)
	require.NoError(t, err)
	assert.Equal(t, 2, src.Metadata.PagesCrawled)
}

func TestCrawlFailureEndsStream(t *testing.T) {
	h := newHarness(t)

	accepted := registerSource(t, h, uuid.New())
	sub := h.firecrawl.lastSubmission(t)
	frames := h.openEventStream(accepted.SourceID)

	deliverWebhook(t, h, fmt.Sprintf(`{"type":"crawl.started","id":%q,"success":true}`, sub.ID))
	deliverWebhook(t, h, fmt.Sprintf(`{"type":"crawl.failed","id":%q,"success":false,"error":"robots disallow"}`, sub.ID))

	h.awaitStage(accepted.SourceID, models.StageFailed)

	events := <-frames
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, models.StageFailed, last.Stage)
	assert.Contains(t, last.Error, "robots disallow")

	// Nothing was ingested for the failed crawl.
	chunkCount, err := h.content.CountChunks(t.Context(), accepted.SourceID)
	require.NoError(t, err)
	assert.Zero(t, chunkCount)
	assert.Zero(t, h.indexer.total())
}

func TestEmptyCrawlFailsSource(t *testing.T) {
	h := newHarness(t)

	accepted := registerSource(t, h, uuid.New())
	sub := h.firecrawl.lastSubmission(t)
	frames := h.openEventStream(accepted.SourceID)

	deliverWebhook(t, h, fmt.Sprintf(`{"type":"crawl.started","id":%q,"success":true}`, sub.ID))
	h.firecrawl.setResults(sub.ID, []crawler.Page{})
	deliverWebhook(t, h, fmt.Sprintf(`{"type":"crawl.completed","id":%q,"success":true}`, sub.ID))

	h.awaitStage(accepted.SourceID, models.StageFailed)

	events := <-frames
	require.NotEmpty(t, events)
	assert.Equal(t, models.StageProcessingScheduled, events[1].Stage)
	last := events[len(events)-1]
	assert.Equal(t, models.StageFailed, last.Stage)
	assert.NotEmpty(t, last.Error)
}

func TestWebhookForUnknownCrawlIsIgnored(t *testing.T) {
	h := newHarness(t)

	accepted := registerSource(t, h, uuid.New())
	deliverWebhook(t, h, `{"type":"crawl.completed","id":"fc-unknown","success":true}`)

	// The registered source is untouched by the stray notification.
	src, err := h.sources.GetSource(t.Context(), accepted.SourceID)
	require.NoError(t, err)
	assert.Equal(t, string(models.StageCrawlingStarted), string(src.Stage))
}
