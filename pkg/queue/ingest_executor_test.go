package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/ent/document"
	"github.com/kollektiv-ai/kollektiv/ent/source"
	"github.com/kollektiv-ai/kollektiv/pkg/chunker"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/serializer"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
	testdb "github.com/kollektiv-ai/kollektiv/test/database"
)

// wordTokenizer counts whitespace-separated words, so tests control chunk
// boundaries through word counts instead of BPE tables.
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

type fakeFetcher struct {
	docs []models.Document
	err  error
}

func (f *fakeFetcher) FetchResults(ctx context.Context, firecrawlID string, sourceID uuid.UUID) ([]models.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.docs, nil
}

type fakeIndexer struct {
	mu      sync.Mutex
	err     error
	userIDs []uuid.UUID
	batches [][]models.Chunk
}

func (f *fakeIndexer) AddChunks(ctx context.Context, userID uuid.UUID, chunks []models.Chunk) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	batch := make([]models.Chunk, len(chunks))
	copy(batch, chunks)
	f.userIDs = append(f.userIDs, userID)
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

type fakeSummarizer struct {
	mu      sync.Mutex
	err     error
	calls   int
	gotDocs int
}

func (f *fakeSummarizer) Generate(ctx context.Context, sourceID uuid.UUID, docs []models.Document) (models.SourceSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotDocs = len(docs)
	if f.err != nil {
		return models.SourceSummary{}, f.err
	}
	return models.SourceSummary{
		ID:       uuid.New(),
		SourceID: sourceID,
		Summary:  "A documentation site.",
		Keywords: []string{"docs"},
	}, nil
}

// eventRecorder captures published stage events in order.
type eventRecorder struct {
	mu     sync.Mutex
	events []models.ContentProcessingEvent
}

func (r *eventRecorder) PublishStageEvent(ctx context.Context, event models.ContentProcessingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *eventRecorder) stages() []models.Stage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Stage, len(r.events))
	for i, e := range r.events {
		out[i] = e.Stage
	}
	return out
}

func (r *eventRecorder) last() models.ContentProcessingEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

type promptRecorder struct {
	mu          sync.Mutex
	invalidated []uuid.UUID
}

func (r *promptRecorder) InvalidateSystemPrompt(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated = append(r.invalidated, userID)
}

type executorHarness struct {
	client  *ent.Client
	svc     *Services
	exec    *IngestExecutor
	fetcher *fakeFetcher
	index   *fakeIndexer
	summary *fakeSummarizer
	bus     *eventRecorder
	prompts *promptRecorder
}

// newExecutorHarness wires an executor over a real database with fakes for
// the external systems (crawler, vector index, LLM). Batch sizes are kept
// small so fixtures exercise the batching paths.
func newExecutorHarness(t *testing.T) *executorHarness {
	t.Helper()
	db := testdb.NewTestClient(t)

	cfg := testQueueConfig()
	cfg.DocumentBatchSize = 2
	cfg.ChunkBatchSize = 3

	h := &executorHarness{
		client:  db.Client,
		fetcher: &fakeFetcher{},
		index:   &fakeIndexer{},
		summary: &fakeSummarizer{},
		bus:     &eventRecorder{},
		prompts: &promptRecorder{},
	}
	h.svc = &Services{
		Sources: services.NewSourceService(db.Client),
		Jobs:    services.NewJobService(db.Client, serializer.NewCodec()),
		Content: services.NewContentService(db.Client),
		Crawler: h.fetcher,
		Chunker: chunker.New(newWordTokenizer(), chunker.Config{
			MaxTokens:      40,
			SoftTokenLimit: 30,
			MinChunkSize:   5,
		}),
		Index:   h.index,
		Summary: h.summary,
		Bus:     h.bus,
		Prompts: h.prompts,
		Config:  cfg,
	}
	h.exec = NewIngestExecutor(h.svc)
	return h
}

// seedIngestion creates a crawled source and its claimed processing job, the
// state a job is in when a worker hands it to the executor.
func (h *executorHarness) seedIngestion(t *testing.T) (*ent.Job, models.ProcessingJobDetails) {
	t.Helper()
	ctx := context.Background()

	src, err := h.svc.Sources.CreateSource(ctx, models.AddSourceRequest{
		RequestID:  uuid.New(),
		UserID:     uuid.New(),
		SourceType: models.SourceTypeWeb,
		Config: &models.CrawlConfig{
			URL:       "https://docs.example.com",
			PageLimit: 50,
			MaxDepth:  2,
		},
	})
	require.NoError(t, err)
	_, err = h.svc.Sources.AdvanceStage(ctx, src.ID, models.StageCrawlingStarted)
	require.NoError(t, err)

	details := models.ProcessingJobDetails{
		SourceID:    src.ID,
		UserID:      src.UserID,
		FirecrawlID: "fc-" + src.ID.String(),
	}
	j, err := h.svc.Jobs.CreateJob(ctx, models.JobTypeProcessing, details)
	require.NoError(t, err)
	j, err = h.svc.Jobs.MarkRunning(ctx, j.ID, "test-pod")
	require.NoError(t, err)

	return j, details
}

// ingestPage builds a markdown page long enough to span several chunks under
// the harness token budgets.
func ingestPage(sourceID uuid.UUID, n int) models.Document {
	var b strings.Builder
	fmt.Fprintf(&b, "# Page %d\n\n", n)
	for line := 0; line < 10; line++ {
		for w := 0; w < 10; w++ {
			fmt.Fprintf(&b, "page%d line%d word%d ", n, line, w)
		}
		b.WriteString("\n")
	}
	return models.Document{
		ID:       uuid.New(),
		SourceID: sourceID,
		Content:  b.String(),
		Metadata: models.DocumentMetadata{
			Title:     fmt.Sprintf("Page %d", n),
			SourceURL: fmt.Sprintf("https://docs.example.com/page-%d", n),
		},
	}
}

func TestIngestExecutorCompletesPipeline(t *testing.T) {
	h := newExecutorHarness(t)
	ctx := context.Background()
	j, details := h.seedIngestion(t)

	for i := 0; i < 3; i++ {
		h.fetcher.docs = append(h.fetcher.docs, ingestPage(details.SourceID, i))
	}

	result := h.exec.Execute(ctx, j)
	require.NotNil(t, result)
	require.NoError(t, result.Error)
	assert.Equal(t, models.JobStatusCompleted, result.Status)
	require.NotNil(t, result.ResultID)
	assert.Equal(t, details.SourceID, *result.ResultID)

	// Documents and chunks are durable, and the vector index saw every chunk
	docCount, err := h.client.Document.Query().
		Where(document.SourceIDEQ(details.SourceID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, docCount)

	chunkCount, err := h.svc.Content.CountChunks(ctx, details.SourceID)
	require.NoError(t, err)
	assert.Greater(t, chunkCount, 3)
	assert.Equal(t, chunkCount, h.index.total())
	assert.Contains(t, h.index.userIDs, details.UserID)

	// Source reached the terminal stage
	src, err := h.svc.Sources.GetSource(ctx, details.SourceID)
	require.NoError(t, err)
	assert.Equal(t, source.StageCompleted, src.Stage)

	// One event per stage boundary, in pipeline order
	assert.Equal(t, []models.Stage{
		models.StageProcessingScheduled,
		models.StageChunksGenerated,
		models.StageSummaryGenerated,
		models.StageCompleted,
	}, h.bus.stages())
	final := h.bus.last()
	assert.Equal(t, 3, final.Metadata["documents"])
	assert.Equal(t, chunkCount, final.Metadata["chunks"])

	assert.Equal(t, 1, h.summary.calls)
	assert.Equal(t, 3, h.summary.gotDocs)
	assert.Equal(t, []uuid.UUID{details.UserID}, h.prompts.invalidated)
}

func TestIngestExecutorBatchesChunkWrites(t *testing.T) {
	h := newExecutorHarness(t)
	ctx := context.Background()
	j, details := h.seedIngestion(t)

	for i := 0; i < 4; i++ {
		h.fetcher.docs = append(h.fetcher.docs, ingestPage(details.SourceID, i))
	}

	result := h.exec.Execute(ctx, j)
	require.NotNil(t, result)
	require.Equal(t, models.JobStatusCompleted, result.Status)

	require.Greater(t, len(h.index.batches), 1)
	for i, batch := range h.index.batches {
		if i < len(h.index.batches)-1 {
			assert.Len(t, batch, h.svc.Config.ChunkBatchSize)
		} else {
			assert.LessOrEqual(t, len(batch), h.svc.Config.ChunkBatchSize)
		}
	}

	chunkCount, err := h.svc.Content.CountChunks(ctx, details.SourceID)
	require.NoError(t, err)
	assert.Equal(t, chunkCount, h.index.total())
}

func TestIngestExecutorSkipsEmptyDocuments(t *testing.T) {
	h := newExecutorHarness(t)
	ctx := context.Background()
	j, details := h.seedIngestion(t)

	empty := models.Document{
		ID:       uuid.New(),
		SourceID: details.SourceID,
		Content:  "   \n\n  ",
		Metadata: models.DocumentMetadata{SourceURL: "https://docs.example.com/image-only"},
	}
	h.fetcher.docs = []models.Document{
		ingestPage(details.SourceID, 0),
		empty,
		ingestPage(details.SourceID, 1),
	}

	result := h.exec.Execute(ctx, j)
	require.NotNil(t, result)
	assert.Equal(t, models.JobStatusCompleted, result.Status)

	// The empty page is stored as a document but contributes no chunks
	docCount, err := h.client.Document.Query().
		Where(document.SourceIDEQ(details.SourceID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, docCount)

	final := h.bus.last()
	assert.Equal(t, models.StageCompleted, final.Stage)
	assert.Equal(t, 3, final.Metadata["documents"])
}

func TestIngestExecutorFetchFailure(t *testing.T) {
	h := newExecutorHarness(t)
	ctx := context.Background()
	j, details := h.seedIngestion(t)
	h.fetcher.err = errors.New("firecrawl unavailable")

	result := h.exec.Execute(ctx, j)
	require.NotNil(t, result)
	assert.Equal(t, models.JobStatusFailed, result.Status)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "fetch crawl results")

	src, err := h.svc.Sources.GetSource(ctx, details.SourceID)
	require.NoError(t, err)
	assert.Equal(t, source.StageFailed, src.Stage)
	require.NotNil(t, src.ErrorMessage)
	assert.Contains(t, *src.ErrorMessage, "firecrawl unavailable")

	require.Equal(t, []models.Stage{models.StageFailed}, h.bus.stages())
	assert.Contains(t, h.bus.last().Error, "firecrawl unavailable")

	assert.Zero(t, h.summary.calls)
	assert.Empty(t, h.prompts.invalidated)
}

func TestIngestExecutorSummaryFailure(t *testing.T) {
	h := newExecutorHarness(t)
	ctx := context.Background()
	j, details := h.seedIngestion(t)

	h.fetcher.docs = []models.Document{ingestPage(details.SourceID, 0)}
	h.summary.err = errors.New("model overloaded")

	result := h.exec.Execute(ctx, j)
	require.NotNil(t, result)
	assert.Equal(t, models.JobStatusFailed, result.Status)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "generate summary")

	// The stages completed before the failure were reached and broadcast
	assert.Equal(t, []models.Stage{
		models.StageProcessingScheduled,
		models.StageChunksGenerated,
		models.StageFailed,
	}, h.bus.stages())

	src, err := h.svc.Sources.GetSource(ctx, details.SourceID)
	require.NoError(t, err)
	assert.Equal(t, source.StageFailed, src.Stage)

	// Chunks written before the failure stay durable
	chunkCount, err := h.svc.Content.CountChunks(ctx, details.SourceID)
	require.NoError(t, err)
	assert.Greater(t, chunkCount, 0)

	assert.Empty(t, h.prompts.invalidated)
}

func TestIngestExecutorCancelledContext(t *testing.T) {
	h := newExecutorHarness(t)
	j, details := h.seedIngestion(t)
	h.fetcher.docs = []models.Document{ingestPage(details.SourceID, 0)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := h.exec.Execute(ctx, j)
	require.NotNil(t, result)
	assert.Equal(t, models.JobStatusCancelled, result.Status)
	assert.ErrorIs(t, result.Error, context.Canceled)

	// The source still ends terminal so stream consumers are released
	src, err := h.svc.Sources.GetSource(context.Background(), details.SourceID)
	require.NoError(t, err)
	assert.Equal(t, source.StageFailed, src.Stage)
	require.Equal(t, []models.Stage{models.StageFailed}, h.bus.stages())
}

func TestIngestExecutorUndecodableDetails(t *testing.T) {
	h := newExecutorHarness(t)
	ctx := context.Background()

	// A crawl envelope handed to the processing executor cannot be decoded
	j, err := h.svc.Jobs.CreateJob(ctx, models.JobTypeCrawl, models.CrawlJobDetails{
		SourceID: uuid.New(),
		UserID:   uuid.New(),
		URL:      "https://docs.example.com",
	})
	require.NoError(t, err)

	result := h.exec.Execute(ctx, j)
	require.NotNil(t, result)
	assert.Equal(t, models.JobStatusFailed, result.Status)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "decode job details")

	assert.Empty(t, h.bus.stages())
}
