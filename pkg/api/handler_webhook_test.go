package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/ent/job"
	"github.com/kollektiv-ai/kollektiv/ent/source"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// seedCrawl registers a source mid-crawl: stage crawling_started with a
// pending crawl job correlated to firecrawlID.
func seedCrawl(t *testing.T, h *apiHarness, firecrawlID string) (*ent.Source, *ent.Job) {
	t.Helper()
	ctx := context.Background()
	src := seedSource(t, h)

	jb, err := h.jobs.CreateJob(ctx, models.JobTypeCrawl, models.CrawlJobDetails{
		SourceID:    src.ID,
		UserID:      src.UserID,
		URL:         src.Metadata.CrawlConfig.URL,
		FirecrawlID: firecrawlID,
	})
	require.NoError(t, err)
	require.NoError(t, h.sources.SetJob(ctx, src.ID, jb.ID))
	src, err = h.sources.AdvanceStage(ctx, src.ID, models.StageCrawlingStarted)
	require.NoError(t, err)
	return src, jb
}

func TestWebhookCrawlStarted(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()
	_, jb := seedCrawl(t, h, "fc-hook-1")

	body := `{"type":"crawl.started","id":"fc-hook-1","success":true}`
	rec := h.do(jsonRequest(http.MethodPost, "/webhooks/firecrawl", body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "accepted")

	got, err := h.jobs.GetJob(ctx, jb.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusInProgress, got.Status)
	require.NotNil(t, got.PodID)
	assert.Equal(t, "test-pod", *got.PodID)

	// A redelivered notification is acknowledged without complaint.
	rec = h.do(jsonRequest(http.MethodPost, "/webhooks/firecrawl", body))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookCrawlPage(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()
	src, _ := seedCrawl(t, h, "fc-hook-2")

	rec := h.do(jsonRequest(http.MethodPost, "/webhooks/firecrawl",
		`{"type":"crawl.page","id":"fc-hook-2","success":true,"data":[{"markdown":"# Page"}]}`))
	require.Equal(t, http.StatusOK, rec.Code)

	// A page notification without page data still counts one page.
	rec = h.do(jsonRequest(http.MethodPost, "/webhooks/firecrawl",
		`{"type":"crawl.page","id":"fc-hook-2","success":true}`))
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := h.sources.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Metadata.PagesCrawled)
}

func TestWebhookCrawlCompleted(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()
	src, jb := seedCrawl(t, h, "fc-hook-3")

	body := `{"type":"crawl.completed","id":"fc-hook-3","success":true,"data":[{},{},{}]}`
	rec := h.do(jsonRequest(http.MethodPost, "/webhooks/firecrawl", body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	crawlJob, err := h.jobs.GetJob(ctx, jb.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, crawlJob.Status)
	require.NotNil(t, crawlJob.ResultID)
	assert.Equal(t, src.ID, *crawlJob.ResultID)

	// Ingestion is scheduled under the crawl's identity.
	processing, err := h.client.Job.Query().Where(job.JobTypeEQ(job.JobTypeProcessing)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, processing.Status)
	details, err := h.jobs.DecodeProcessingDetails(processing)
	require.NoError(t, err)
	assert.Equal(t, src.ID, details.SourceID)
	assert.Equal(t, src.UserID, details.UserID)
	assert.Equal(t, "fc-hook-3", details.FirecrawlID)

	// The stage only advances when a worker picks the job up, but the
	// source already tracks its new active job and the page total.
	got, err := h.sources.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, source.StageCrawlingStarted, got.Stage)
	require.NotNil(t, got.JobID)
	assert.Equal(t, processing.ID, *got.JobID)
	assert.Equal(t, 3, got.Metadata.TotalPages)

	// A redelivered notification must not schedule a second ingestion.
	rec = h.do(jsonRequest(http.MethodPost, "/webhooks/firecrawl", body))
	require.Equal(t, http.StatusOK, rec.Code)
	count, err := h.client.Job.Query().Where(job.JobTypeEQ(job.JobTypeProcessing)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWebhookCrawlFailed(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()
	src, jb := seedCrawl(t, h, "fc-hook-4")

	rec := h.do(jsonRequest(http.MethodPost, "/webhooks/firecrawl",
		`{"type":"crawl.failed","id":"fc-hook-4","success":false,"error":"site unreachable"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := h.jobs.GetJob(ctx, jb.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "site unreachable")

	gotSrc, err := h.sources.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, source.StageFailed, gotSrc.Stage)
	require.NotNil(t, gotSrc.ErrorMessage)
	assert.Contains(t, *gotSrc.ErrorMessage, "site unreachable")

	require.Equal(t, []models.Stage{models.StageFailed}, h.bus.stages())
	assert.Contains(t, h.bus.last().Error, "crawl failed: site unreachable")
}

func TestWebhookUnknownCrawl(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(jsonRequest(http.MethodPost, "/webhooks/firecrawl",
		`{"type":"crawl.started","id":"fc-ghost","success":true}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ignored")
}

func TestWebhookRejectsMalformedPayloads(t *testing.T) {
	h := newAPIHarness(t)

	t.Run("missing crawl id", func(t *testing.T) {
		rec := h.do(jsonRequest(http.MethodPost, "/webhooks/firecrawl",
			`{"type":"crawl.started","success":true}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := h.do(jsonRequest(http.MethodPost, "/webhooks/firecrawl", `{"type":`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWebhookUnknownType(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()
	_, jb := seedCrawl(t, h, "fc-hook-5")

	rec := h.do(jsonRequest(http.MethodPost, "/webhooks/firecrawl",
		`{"type":"crawl.paused","id":"fc-hook-5","success":true}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ignored")

	got, err := h.jobs.GetJob(ctx, jb.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, got.Status)
}
