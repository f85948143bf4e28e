package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/pkg/events"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/serializer"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
	testdb "github.com/kollektiv-ai/kollektiv/test/database"
)

// fakeCrawler accepts crawls and records the last config it was given.
type fakeCrawler struct {
	firecrawlID string
	err         error
	gotConfig   models.CrawlConfig
}

func (f *fakeCrawler) StartCrawl(ctx context.Context, crawl models.CrawlConfig) (string, error) {
	f.gotConfig = crawl
	if f.err != nil {
		return "", f.err
	}
	return f.firecrawlID, nil
}

// recordingBus captures published stage events. It does not stream; tests
// that need a live subscription use a real bus over miniredis instead.
type recordingBus struct {
	mu     sync.Mutex
	events []models.ContentProcessingEvent
}

func (b *recordingBus) PublishStageEvent(ctx context.Context, event models.ContentProcessingEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	return nil
}

func (b *recordingBus) StreamSource(ctx context.Context, sourceID uuid.UUID) (*events.EventStream, error) {
	return nil, errors.New("recordingBus does not stream")
}

func (b *recordingBus) stages() []models.Stage {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Stage, len(b.events))
	for i, ev := range b.events {
		out[i] = ev.Stage
	}
	return out
}

func (b *recordingBus) last() models.ContentProcessingEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.events) == 0 {
		return models.ContentProcessingEvent{}
	}
	return b.events[len(b.events)-1]
}

// apiHarness is a server over a real database with fake external services.
type apiHarness struct {
	server        *Server
	client        *ent.Client
	sources       *services.SourceService
	jobs          *services.JobService
	conversations *services.ConversationService
	crawler       *fakeCrawler
	bus           *recordingBus
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	codec := serializer.NewCodec()

	h := &apiHarness{
		client:        dbClient.Client,
		sources:       services.NewSourceService(dbClient.Client),
		jobs:          services.NewJobService(dbClient.Client, codec),
		conversations: services.NewConversationService(dbClient.Client),
		crawler:       &fakeCrawler{firecrawlID: "fc-test-1"},
		bus:           &recordingBus{},
	}
	h.server = NewServer("test-pod", nil, dbClient, h.sources, h.jobs, h.conversations, nil)
	h.server.SetCrawler(h.crawler)
	h.server.SetEventBus(h.bus)
	return h
}

// do runs req through the full middleware and routing chain.
func (h *apiHarness) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.server.echo.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestServerRoutes(t *testing.T) {
	h := newAPIHarness(t)

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
	}{
		{"health is routed", http.MethodGet, "/health", http.StatusOK},
		{"source list is routed", http.MethodGet, "/api/v0/sources", http.StatusOK},
		{"source get validates id", http.MethodGet, "/api/v0/sources/not-a-uuid", http.StatusBadRequest},
		{"chat without service is unavailable", http.MethodPost, "/api/v0/chat", http.StatusServiceUnavailable},
		{"conversation list requires user_id", http.MethodGet, "/api/v0/conversations", http.StatusBadRequest},
		{"unknown route is 404", http.MethodGet, "/api/v0/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}

	t.Run("security headers are applied", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})
}
