package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/ent/job"
	"github.com/kollektiv-ai/kollektiv/ent/source"
	"github.com/kollektiv-ai/kollektiv/pkg/events"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

func seedSource(t *testing.T, h *apiHarness) *ent.Source {
	t.Helper()
	src, err := h.sources.CreateSource(context.Background(), models.AddSourceRequest{
		RequestID: uuid.New(),
		UserID:    uuid.New(),
		Config:    &models.CrawlConfig{URL: "https://docs.example.com", PageLimit: 50, MaxDepth: 2},
	})
	require.NoError(t, err)
	return src
}

// decodeSSE parses the data frames of a finished SSE response body.
func decodeSSE(t *testing.T, body string) []models.ContentProcessingEvent {
	t.Helper()
	var out []models.ContentProcessingEvent
	for _, frame := range strings.Split(body, "\n\n") {
		frame = strings.TrimSpace(frame)
		if frame == "" {
			continue
		}
		var ev models.ContentProcessingEvent
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(frame, "data: ")), &ev))
		out = append(out, ev)
	}
	return out
}

func TestAddSourceStartsCrawl(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()
	userID := uuid.New()

	body := fmt.Sprintf(`{"user_id":%q,"request_config":{"url":"https://docs.example.com","page_limit":50,"max_depth":2}}`, userID)
	rec := h.do(jsonRequest(http.MethodPost, "/api/v0/sources", body))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp models.AddSourceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StageCrawlingStarted, resp.Stage)
	require.NotEqual(t, uuid.Nil, resp.SourceID)

	// The persisted source carries the normalized config and its crawl job.
	src, err := h.sources.GetSource(ctx, resp.SourceID)
	require.NoError(t, err)
	assert.Equal(t, source.StageCrawlingStarted, src.Stage)
	assert.Equal(t, "https://docs.example.com", src.Metadata.CrawlConfig.URL)
	require.NotNil(t, src.JobID)

	jb, err := h.jobs.GetJob(ctx, *src.JobID)
	require.NoError(t, err)
	assert.Equal(t, job.JobTypeCrawl, jb.JobType)
	assert.Equal(t, job.StatusPending, jb.Status)

	// The external crawl id is recorded for webhook correlation.
	details, err := h.jobs.DecodeCrawlDetails(jb)
	require.NoError(t, err)
	assert.Equal(t, resp.SourceID, details.SourceID)
	assert.Equal(t, userID, details.UserID)
	assert.Equal(t, "fc-test-1", details.FirecrawlID)

	assert.Equal(t, "https://docs.example.com", h.crawler.gotConfig.URL)
	assert.Equal(t, []models.Stage{models.StageCrawlingStarted}, h.bus.stages())
}

func TestAddSourceValidation(t *testing.T) {
	h := newAPIHarness(t)

	tests := []struct {
		name      string
		body      string
		expectMsg string
	}{
		{
			name:      "malformed json",
			body:      `{"user_id":`,
			expectMsg: "",
		},
		{
			name:      "missing user_id",
			body:      `{"request_config":{"url":"https://docs.example.com"}}`,
			expectMsg: "user_id",
		},
		{
			name:      "missing request_config",
			body:      fmt.Sprintf(`{"user_id":%q}`, uuid.New()),
			expectMsg: "request_config",
		},
		{
			name:      "invalid url",
			body:      fmt.Sprintf(`{"user_id":%q,"request_config":{"url":"ftp://files.example.com"}}`, uuid.New()),
			expectMsg: "url",
		},
		{
			name:      "page limit out of range",
			body:      fmt.Sprintf(`{"user_id":%q,"request_config":{"url":"https://docs.example.com","page_limit":5000}}`, uuid.New()),
			expectMsg: "page_limit",
		},
		{
			name:      "unknown source type",
			body:      fmt.Sprintf(`{"user_id":%q,"source_type":"gopher","request_config":{"url":"https://docs.example.com"}}`, uuid.New()),
			expectMsg: "source_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(jsonRequest(http.MethodPost, "/api/v0/sources", tt.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			if tt.expectMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.expectMsg)
			}
		})
	}

	t.Run("without a crawler the endpoint is unavailable", func(t *testing.T) {
		s := &Server{}
		e := h.server.echo
		req := jsonRequest(http.MethodPost, "/api/v0/sources", "{}")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := s.addSourceHandler(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusServiceUnavailable, he.Code)
	})
}

func TestAddSourceCrawlRejected(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()
	h.crawler.err = errors.New("quota exceeded")

	body := fmt.Sprintf(`{"user_id":%q,"request_config":{"url":"https://docs.example.com"}}`, uuid.New())
	rec := h.do(jsonRequest(http.MethodPost, "/api/v0/sources", body))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to start crawl")

	// The source is persisted terminally failed so subscribers see an end.
	src, err := h.client.Source.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, source.StageFailed, src.Stage)
	require.NotNil(t, src.ErrorMessage)
	assert.Contains(t, *src.ErrorMessage, "quota exceeded")

	jb, err := h.client.Job.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, jb.Status)

	require.Equal(t, []models.Stage{models.StageFailed}, h.bus.stages())
	assert.Contains(t, h.bus.last().Error, "failed to start crawl: quota exceeded")
}

func TestGetSource(t *testing.T) {
	h := newAPIHarness(t)
	src := seedSource(t, h)

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/sources/"+uuid.New().String(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns the source", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/sources/"+src.ID.String(), nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), src.ID.String())
		assert.Contains(t, rec.Body.String(), "created")
	})
}

func TestListSources(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	first := seedSource(t, h)
	seedSource(t, h)
	other, err := h.sources.CreateSource(ctx, models.AddSourceRequest{
		RequestID: uuid.New(),
		UserID:    uuid.New(),
		Config:    &models.CrawlConfig{URL: "https://wiki.example.com"},
	})
	require.NoError(t, err)
	require.NoError(t, h.sources.MarkFailed(ctx, other.ID, "crawl failed"))

	decode := func(rec *httptest.ResponseRecorder) SourceListResponse {
		var resp SourceListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	t.Run("lists everything", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/sources", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(rec)
		assert.Equal(t, 3, resp.Total)
		assert.Len(t, resp.Sources, 3)
	})

	t.Run("filters by user", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/sources?user_id="+first.UserID.String(), nil))
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(rec)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("filters by stage", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/sources?stage=failed", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(rec)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, other.ID, resp.Sources[0].ID)
	})

	t.Run("applies limit", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/sources?limit=2", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(rec)
		assert.Equal(t, 3, resp.Total)
		assert.Len(t, resp.Sources, 2)
		assert.Equal(t, 2, resp.Limit)
	})

	t.Run("rejects bad filters", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/sources?user_id=nope", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = h.do(httptest.NewRequest(http.MethodGet, "/api/v0/sources?stage=melting", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// newStreamingHarness swaps the recording bus for a real one over miniredis
// so the SSE handler can hold live subscriptions.
func newStreamingHarness(t *testing.T) (*apiHarness, *events.Bus, *redis.Client) {
	t.Helper()
	h := newAPIHarness(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	bus := events.NewBus(client, nil)
	h.server.SetEventBus(bus)
	return h, bus, client
}

func TestSourceEventsTerminalSnapshot(t *testing.T) {
	h, _, _ := newStreamingHarness(t)
	ctx := context.Background()

	src := seedSource(t, h)
	require.NoError(t, h.sources.MarkFailed(ctx, src.ID, "crawl returned no content"))

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/sources/"+src.ID.String()+"/events", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	// A terminal source yields exactly its snapshot, then the stream ends.
	evs := decodeSSE(t, rec.Body.String())
	require.Len(t, evs, 1)
	assert.Equal(t, models.StageFailed, evs[0].Stage)
	assert.Equal(t, "crawl returned no content", evs[0].Error)
}

func TestSourceEventsStreamsUntilTerminal(t *testing.T) {
	h, bus, redisClient := newStreamingHarness(t)
	ctx := context.Background()
	src := seedSource(t, h)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/sources/"+src.ID.String()+"/events", nil)
	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.server.echo.ServeHTTP(rec, req)
	}()

	// Publish only once the handler's subscription is registered.
	channel := events.SourceChannel(src.ID)
	require.Eventually(t, func() bool {
		chans, err := redisClient.PubSubChannels(ctx, channel).Result()
		return err == nil && len(chans) == 1
	}, 2*time.Second, 10*time.Millisecond, "handler did not subscribe")

	require.NoError(t, bus.PublishStageEvent(ctx, models.NewContentProcessingEvent(src.ID, models.StageChunksGenerated)))
	require.NoError(t, bus.PublishStageEvent(ctx, models.NewContentProcessingEvent(src.ID, models.StageCompleted)))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not end after the terminal event")
	}

	evs := decodeSSE(t, rec.Body.String())
	require.Len(t, evs, 3)
	assert.Equal(t, models.StageCreated, evs[0].Stage)
	assert.Equal(t, models.StageChunksGenerated, evs[1].Stage)
	assert.Equal(t, models.StageCompleted, evs[2].Stage)
}

func TestSourceEventsValidation(t *testing.T) {
	h, _, _ := newStreamingHarness(t)

	t.Run("invalid id is 400", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/sources/not-a-uuid/events", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown source is 404", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/api/v0/sources/"+uuid.New().String()+"/events", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
