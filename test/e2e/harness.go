// Package e2e drives the ingestion path over real HTTP: source registration,
// crawler webhook delivery, queue workers, and SSE progress streams. The
// crawl provider is a local fake; everything inward of it is real.
package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/api"
	"github.com/kollektiv-ai/kollektiv/pkg/chunker"
	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/crawler"
	"github.com/kollektiv-ai/kollektiv/pkg/database"
	"github.com/kollektiv-ai/kollektiv/pkg/events"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/queue"
	"github.com/kollektiv-ai/kollektiv/pkg/serializer"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
	testdb "github.com/kollektiv-ai/kollektiv/test/database"
)

// harness runs the whole service against a real database, a real redis
// (miniredis), and a fake crawl provider, exposed through a live HTTP
// listener.
type harness struct {
	t       *testing.T
	baseURL string

	client  *database.Client
	sources *services.SourceService
	jobs    *services.JobService
	content *services.ContentService

	firecrawl *fakeFirecrawl
	indexer   *fakeIndexer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()

	client := testdb.NewTestClient(t)
	codec := serializer.NewCodec()
	sources := services.NewSourceService(client.Client)
	jobs := services.NewJobService(client.Client, codec)
	content := services.NewContentService(client.Client)
	conversations := services.NewConversationService(client.Client)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })
	bus := events.NewBus(redisClient, codec)

	firecrawl := newFakeFirecrawl(t)
	crawlerClient := crawler.NewClient(firecrawlTestConfig(firecrawl.srv.URL), "http://kollektiv.test")

	indexer := &fakeIndexer{}
	queueServices := &queue.Services{
		Sources: sources,
		Jobs:    jobs,
		Content: content,
		Crawler: crawlerClient,
		Chunker: chunker.New(newWordTokenizer(), chunker.DefaultConfig()),
		Index:   indexer,
		Summary: &fakeSummarizer{store: content},
		Bus:     bus,
		Prompts: &fakePrompts{},
		Config:  queueTestConfig(),
	}

	pool := queue.NewWorkerPool("e2e-pod", queueServices, queue.NewIngestExecutor(queueServices))
	require.NoError(t, pool.Start(ctx))
	t.Cleanup(pool.Stop)

	server := api.NewServer("e2e-pod", nil, client, sources, jobs, conversations, pool)
	server.SetCrawler(crawlerClient)
	server.SetEventBus(bus)
	server.SetRedis(redisClient)

	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)

	return &harness{
		t:         t,
		baseURL:   ts.URL,
		client:    client,
		sources:   sources,
		jobs:      jobs,
		content:   content,
		firecrawl: firecrawl,
		indexer:   indexer,
	}
}

func firecrawlTestConfig(baseURL string) *config.FirecrawlConfig {
	return &config.FirecrawlConfig{
		APIKey:               "fc-test",
		BaseURL:              baseURL,
		WebhookPath:          "/webhooks/firecrawl",
		RequestTimeout:       5 * time.Second,
		MaxAttempts:          2,
		InitialBackoff:       10 * time.Millisecond,
		MaxBackoff:           50 * time.Millisecond,
		ResultInitialBackoff: 10 * time.Millisecond,
		ResultMaxBackoff:     50 * time.Millisecond,
	}
}

// queueTestConfig polls fast and keeps the orphan scanner effectively inert
// so a slow CI run is not mistaken for a dead pod.
func queueTestConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentJobs:       10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		JobTimeout:              30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		HeartbeatInterval:       1 * time.Second,
		OrphanDetectionInterval: 5 * time.Second,
		OrphanThreshold:         60 * time.Second,
		DocumentBatchSize:       50,
		ChunkBatchSize:          500,
	}
}

func (h *harness) post(path, body string) *http.Response {
	h.t.Helper()
	resp, err := http.Post(h.baseURL+path, "application/json", strings.NewReader(body))
	require.NoError(h.t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// awaitStage polls the source endpoint until it reports the wanted stage.
func (h *harness) awaitStage(sourceID uuid.UUID, want models.Stage) {
	h.t.Helper()
	deadline := time.After(15 * time.Second)
	for {
		select {
		case <-deadline:
			h.t.Fatalf("timed out waiting for source %s to reach stage %s", sourceID, want)
		default:
			resp, err := http.Get(h.baseURL + "/api/v0/sources/" + sourceID.String())
			require.NoError(h.t, err)
			var state struct {
				Stage string `json:"stage"`
			}
			decodeResponse(h.t, resp, &state)
			if state.Stage == string(want) {
				return
			}
			time.Sleep(100 * time.Millisecond)
		}
	}
}

// openEventStream subscribes to a source's SSE stream and returns a channel
// that yields the decoded frames once the stream ends.
func (h *harness) openEventStream(sourceID uuid.UUID) <-chan []models.ContentProcessingEvent {
	h.t.Helper()
	resp, err := http.Get(h.baseURL + "/api/v0/sources/" + sourceID.String() + "/events")
	require.NoError(h.t, err)
	require.Equal(h.t, http.StatusOK, resp.StatusCode)
	require.Equal(h.t, "text/event-stream", resp.Header.Get("Content-Type"))

	framesCh := make(chan []models.ContentProcessingEvent, 1)
	go func() {
		defer resp.Body.Close()
		var frames []models.ContentProcessingEvent
		buf := new(strings.Builder)
		if _, err := copyBody(buf, resp.Body); err != nil {
			framesCh <- nil
			return
		}
		for _, frame := range strings.Split(strings.TrimSpace(buf.String()), "\n\n") {
			data := strings.TrimPrefix(frame, "data: ")
			var event models.ContentProcessingEvent
			if err := json.Unmarshal([]byte(data), &event); err != nil {
				continue
			}
			frames = append(frames, event)
		}
		framesCh <- frames
	}()
	return framesCh
}

func copyBody(dst *strings.Builder, src interface{ Read([]byte) (int, error) }) (int64, error) {
	var total int64
	buf := make([]byte, 4096)
	for {
		n, err := src.Read(buf)
		dst.Write(buf[:n])
		total += int64(n)
		if err != nil {
			if err.Error() == "EOF" {
				return total, nil
			}
			return total, err
		}
	}
}

// fakeFirecrawl imitates the crawl provider: it acks submissions with
// generated crawl ids and serves results one page per request so the
// pagination cursor is exercised.
type fakeFirecrawl struct {
	srv *httptest.Server

	mu          sync.Mutex
	submissions []crawlSubmission
	results     map[string][]crawler.Page
	nextID      int
}

type crawlSubmission struct {
	ID      string
	URL     string
	Webhook string
}

func newFakeFirecrawl(t *testing.T) *fakeFirecrawl {
	t.Helper()
	f := &fakeFirecrawl{results: map[string][]crawler.Page{}}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /crawl", f.submit)
	mux.HandleFunc("GET /crawl/{id}", f.page)
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeFirecrawl) submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL     string `json:"url"`
		Webhook string `json:"webhook"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.nextID++
	id := fmt.Sprintf("fc-e2e-%d", f.nextID)
	f.submissions = append(f.submissions, crawlSubmission{ID: id, URL: req.URL, Webhook: req.Webhook})
	f.mu.Unlock()

	writeJSON(w, map[string]any{"success": true, "id": id, "url": req.URL})
}

func (f *fakeFirecrawl) page(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))

	f.mu.Lock()
	pages, ok := f.results[id]
	f.mu.Unlock()
	if !ok {
		http.Error(w, "crawl not found", http.StatusNotFound)
		return
	}

	body := map[string]any{
		"success":   true,
		"status":    "completed",
		"total":     len(pages),
		"completed": len(pages),
		"data":      []crawler.Page{},
	}
	if skip < len(pages) {
		body["data"] = pages[skip : skip+1]
	}
	if skip+1 < len(pages) {
		body["next"] = fmt.Sprintf("%s/crawl/%s?skip=%d", f.srv.URL, id, skip+1)
	}
	writeJSON(w, body)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// lastSubmission returns the most recent crawl submission.
func (f *fakeFirecrawl) lastSubmission(t *testing.T) crawlSubmission {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.submissions)
	return f.submissions[len(f.submissions)-1]
}

// setResults registers the pages a finished crawl serves.
func (f *fakeFirecrawl) setResults(id string, pages []crawler.Page) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[id] = pages
}

// wordTokenizer counts whitespace-separated words, so the pipeline runs
// without BPE tables.
type wordTokenizer struct {
	mu    sync.Mutex
	words []string
	ids   map[string]int
}

func newWordTokenizer() *wordTokenizer {
	return &wordTokenizer{ids: map[string]int{}}
}

func (t *wordTokenizer) Count(text string) int {
	return len(strings.Fields(text))
}

func (t *wordTokenizer) Encode(text string) []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []int
	for _, w := range strings.Fields(text) {
		id, ok := t.ids[w]
		if !ok {
			id = len(t.words)
			t.words = append(t.words, w)
			t.ids[w] = id
		}
		out = append(out, id)
	}
	return out
}

func (t *wordTokenizer) Decode(ids []int) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	words := make([]string, len(ids))
	for i, id := range ids {
		words[i] = t.words[id]
	}
	return strings.Join(words, " ")
}

type fakeIndexer struct {
	mu      sync.Mutex
	batches [][]models.Chunk
}

func (f *fakeIndexer) AddChunks(ctx context.Context, userID uuid.UUID, chunks []models.Chunk) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	batch := make([]models.Chunk, len(chunks))
	copy(batch, chunks)
	f.batches = append(f.batches, batch)
	return nil
}

func (f *fakeIndexer) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, b := range f.batches {
		n += len(b)
	}
	return n
}

// fakeSummarizer stores a canned summary the way the real generator does.
type fakeSummarizer struct {
	store *services.ContentService
}

func (f *fakeSummarizer) Generate(ctx context.Context, sourceID uuid.UUID, docs []models.Document) (models.SourceSummary, error) {
	return f.store.SaveSummary(ctx, models.SourceSummary{
		ID:       uuid.New(),
		SourceID: sourceID,
		Summary:  "Documentation covering the example site.",
		Keywords: []string{"docs", "example"},
	})
}

type fakePrompts struct {
	mu          sync.Mutex
	invalidated []uuid.UUID
}

func (f *fakePrompts) InvalidateSystemPrompt(userID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, userID)
}
