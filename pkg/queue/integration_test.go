package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/ent/job"
	"github.com/kollektiv-ai/kollektiv/ent/source"
	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/serializer"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
	testdb "github.com/kollektiv-ai/kollektiv/test/database"
)

// queueTestEnv bundles a worker pool's dependencies over a real database.
// The external systems behind the executor are not wired; pool tests supply
// their own executor.
type queueTestEnv struct {
	client *ent.Client
	svc    *Services
	bus    *eventRecorder
}

func newQueueTestEnv(t *testing.T, cfg *config.QueueConfig) *queueTestEnv {
	t.Helper()
	db := testdb.NewTestClient(t)
	bus := &eventRecorder{}
	return &queueTestEnv{
		client: db.Client,
		bus:    bus,
		svc: &Services{
			Sources: services.NewSourceService(db.Client),
			Jobs:    services.NewJobService(db.Client, serializer.NewCodec()),
			Content: services.NewContentService(db.Client),
			Bus:     bus,
			Config:  cfg,
		},
	}
}

// seedPendingJob creates a source with a pending processing job, the state
// the firecrawl completion webhook leaves behind for workers to claim.
func seedPendingJob(t *testing.T, env *queueTestEnv) (*ent.Job, models.ProcessingJobDetails) {
	t.Helper()
	ctx := context.Background()

	src, err := env.svc.Sources.CreateSource(ctx, models.AddSourceRequest{
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

	details := models.ProcessingJobDetails{
		SourceID:    src.ID,
		UserID:      src.UserID,
		FirecrawlID: "fc-" + src.ID.String(),
	}
	j, err := env.svc.Jobs.CreateJob(ctx, models.JobTypeProcessing, details)
	require.NoError(t, err)
	return j, details
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentJobs:       10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		JobTimeout:              30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
		DocumentBatchSize:       50,
		ChunkBatchSize:          500,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestConcurrentClaimsDistinctJobs tests that concurrent claimers never get
// the same job (FOR UPDATE SKIP LOCKED).
func TestConcurrentClaimsDistinctJobs(t *testing.T) {
	env := newQueueTestEnv(t, intTestQueueConfig())
	ctx := context.Background()

	jobIDs := make(map[uuid.UUID]struct{})
	for i := 0; i < 5; i++ {
		j, _ := seedPendingJob(t, env)
		jobIDs[j.ID] = struct{}{}
	}

	var mu sync.Mutex
	claimed := make([]uuid.UUID, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			j, err := env.svc.Jobs.ClaimNextPendingJob(ctx, fmt.Sprintf("pod-%d", n))
			if err != nil {
				errCh <- fmt.Errorf("claimer %d failed: %w", n, err)
				return
			}
			if j == nil {
				errCh <- fmt.Errorf("claimer %d got no job", n)
				return
			}
			mu.Lock()
			claimed = append(claimed, j.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	require.Len(t, claimed, 5, "all 5 jobs should be claimed")
	seen := make(map[uuid.UUID]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "job %s claimed twice", id)
		seen[id] = struct{}{}
		_, ok := jobIDs[id]
		assert.True(t, ok, "claimed job %s was not in the seeded set", id)
	}
}

// mockExecutor counts executions and tracks which jobs were processed.
type mockExecutor struct {
	processed  atomic.Int64
	jobs       sync.Map // uuid.UUID → struct{}
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
}

func (m *mockExecutor) Execute(ctx context.Context, j *ent.Job) *ExecutionResult {
	m.processed.Add(1)
	if j != nil {
		m.jobs.Store(j.ID, struct{}{})
	}

	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	// If releaseCh is set, block until it's closed (for deterministic tests)
	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
		case <-ctx.Done():
			return &ExecutionResult{
				Status: models.JobStatusCancelled,
				Error:  ctx.Err(),
			}
		}
	} else {
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{
				Status: models.JobStatusCancelled,
				Error:  ctx.Err(),
			}
		}
	}

	return &ExecutionResult{Status: models.JobStatusCompleted}
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	cfg := intTestQueueConfig()
	cfg.PollInterval = 50 * time.Millisecond
	env := newQueueTestEnv(t, cfg)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedPendingJob(t, env)
	}

	executor := &mockExecutor{}
	pool := NewWorkerPool("test-pod", env.svc, executor)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		"waiting for jobs to be processed",
		func() bool { return executor.processed.Load() >= 3 })

	pool.Stop()

	completed, err := env.client.Job.Query().
		Where(job.StatusEQ(job.StatusCompleted)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, completed, 3, "all 3 jobs should be completed")
	for _, j := range completed {
		require.NotNil(t, j.PodID)
		assert.Equal(t, "test-pod", *j.PodID)
		assert.NotNil(t, j.StartedAt)
		assert.NotNil(t, j.CompletedAt)
	}

	health := pool.Health()
	assert.Equal(t, cfg.WorkerCount, health.TotalWorkers)
	assert.Zero(t, health.QueueDepth)
}

// TestCapacityLimits tests that the global max concurrent limit is enforced.
func TestCapacityLimits(t *testing.T) {
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2 // Match MaxConcurrentJobs to avoid startup races
	cfg.MaxConcurrentJobs = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 1 * time.Hour // Disable orphan detection during test
	env := newQueueTestEnv(t, cfg)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedPendingJob(t, env)
	}

	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", env.svc, executor)

	require.NoError(t, pool.Start(ctx))

	// Wait until exactly MaxConcurrentJobs jobs are in progress
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		fmt.Sprintf("waiting for %d jobs in progress", cfg.MaxConcurrentJobs),
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentJobs) })

	// Give the system a moment to stabilize
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int64(cfg.MaxConcurrentJobs), executor.inProgress.Load(),
		"should have exactly MaxConcurrentJobs in progress")

	dbInProgress, err := env.client.Job.Query().
		Where(job.StatusEQ(job.StatusInProgress)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentJobs, dbInProgress)

	// Release executions; workers drain the remaining jobs
	close(releaseCh)

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for first batch to complete",
		func() bool { return executor.inProgress.Load() == 0 })

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for all jobs to be processed",
		func() bool { return executor.processed.Load() >= 5 })

	pool.Stop()

	completedCount, err := env.client.Job.Query().
		Where(job.StatusEQ(job.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, completedCount, "all 5 jobs should complete")
}

// TestHeartbeatUpdates tests that a worker refreshes last_heartbeat_at while
// a job is running.
func TestHeartbeatUpdates(t *testing.T) {
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond
	env := newQueueTestEnv(t, cfg)
	ctx := context.Background()

	seeded, _ := seedPendingJob(t, env)

	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", env.svc, executor)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for job to be claimed",
		func() bool {
			j, err := env.client.Job.Get(ctx, seeded.ID)
			require.NoError(t, err)
			return j.Status == job.StatusInProgress && j.LastHeartbeatAt != nil
		})

	j1, err := env.client.Job.Get(ctx, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, j1.LastHeartbeatAt)
	initial := *j1.LastHeartbeatAt

	// Wait for at least one heartbeat tick
	time.Sleep(250 * time.Millisecond)

	j2, err := env.client.Job.Get(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, job.StatusInProgress, j2.Status)
	require.NotNil(t, j2.LastHeartbeatAt)
	assert.True(t, j2.LastHeartbeatAt.After(initial),
		"last_heartbeat_at should be refreshed while the job runs")

	close(releaseCh)
	pool.Stop()
}

// TestOrphanRecovery tests that jobs with stale heartbeats are failed along
// with their sources, and that webhook-driven crawl jobs are left alone.
func TestOrphanRecovery(t *testing.T) {
	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second
	env := newQueueTestEnv(t, cfg)
	ctx := context.Background()

	// A processing job whose pod stopped heartbeating
	orphaned, details := seedPendingJob(t, env)
	_, err := env.svc.Jobs.MarkRunning(ctx, orphaned.ID, "crashed-pod")
	require.NoError(t, err)
	err = env.client.Job.UpdateOneID(orphaned.ID).
		SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	// An in-progress crawl job carries no heartbeat and must not be touched
	crawl, err := env.svc.Jobs.CreateJob(ctx, models.JobTypeCrawl, models.CrawlJobDetails{
		SourceID: uuid.New(),
		UserID:   uuid.New(),
		URL:      "https://docs.example.com",
	})
	require.NoError(t, err)
	_, err = env.svc.Jobs.MarkRunning(ctx, crawl.ID, "crashed-pod")
	require.NoError(t, err)
	err = env.client.Job.UpdateOneID(crawl.ID).
		SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	pool := &WorkerPool{podID: "test-pod", svc: env.svc, config: cfg}
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	// The processing job and its source are failed, with the pod named
	failed, err := env.client.Job.Get(ctx, orphaned.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "no heartbeat from pod crashed-pod")

	src, err := env.svc.Sources.GetSource(ctx, details.SourceID)
	require.NoError(t, err)
	assert.Equal(t, source.StageFailed, src.Stage)

	require.Equal(t, []models.Stage{models.StageFailed}, env.bus.stages())
	assert.Contains(t, env.bus.last().Error, "no heartbeat")

	// The crawl job is untouched
	untouched, err := env.client.Job.Get(ctx, crawl.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusInProgress, untouched.Status)

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	assert.False(t, pool.orphans.lastOrphanScan.IsZero())
	pool.orphans.mu.Unlock()
}

// TestStartupOrphanRecovery tests the one-time recovery of jobs left in
// progress by a previous run of this pod.
func TestStartupOrphanRecovery(t *testing.T) {
	env := newQueueTestEnv(t, intTestQueueConfig())
	ctx := context.Background()
	podID := "restarted-pod"

	// Two processing jobs this pod was running before the restart
	mine := make([]uuid.UUID, 0, 2)
	for i := 0; i < 2; i++ {
		j, _ := seedPendingJob(t, env)
		_, err := env.svc.Jobs.MarkRunning(ctx, j.ID, podID)
		require.NoError(t, err)
		mine = append(mine, j.ID)
	}

	// Another pod's job must not be affected
	other, _ := seedPendingJob(t, env)
	_, err := env.svc.Jobs.MarkRunning(ctx, other.ID, "other-pod")
	require.NoError(t, err)

	// This pod's crawl job survives the restart: webhooks land on any replica
	crawl, err := env.svc.Jobs.CreateJob(ctx, models.JobTypeCrawl, models.CrawlJobDetails{
		SourceID: uuid.New(),
		UserID:   uuid.New(),
		URL:      "https://docs.example.com",
	})
	require.NoError(t, err)
	_, err = env.svc.Jobs.MarkRunning(ctx, crawl.ID, podID)
	require.NoError(t, err)

	require.NoError(t, RecoverStartupOrphans(ctx, env.svc, podID))

	for _, id := range mine {
		j, err := env.client.Job.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, j.Status, "job %s should be failed", id)
		require.NotNil(t, j.ErrorMessage)
		assert.Contains(t, *j.ErrorMessage, "restarted while job was in progress")
	}

	otherJob, err := env.client.Job.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusInProgress, otherJob.Status)

	crawlJob, err := env.client.Job.Get(ctx, crawl.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusInProgress, crawlJob.Status)
}

// nilExecutor returns a nil *ExecutionResult for testing the nil-guard.
type nilExecutor struct {
	blockUntilCtxDone bool
	processed         atomic.Int64
}

func (e *nilExecutor) Execute(ctx context.Context, _ *ent.Job) *ExecutionResult {
	e.processed.Add(1)
	if e.blockUntilCtxDone {
		<-ctx.Done()
	}
	return nil
}

// TestNilExecutionResultGuard tests that a nil *ExecutionResult from
// JobExecutor.Execute does not panic and is translated into the correct
// terminal status.
func TestNilExecutionResultGuard(t *testing.T) {
	t.Run("nil result without context error marks job failed", func(t *testing.T) {
		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		env := newQueueTestEnv(t, cfg)
		ctx := context.Background()

		seeded, _ := seedPendingJob(t, env)

		executor := &nilExecutor{blockUntilCtxDone: false}
		pool := NewWorkerPool("test-pod", env.svc, executor)
		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for job to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		pool.Stop()

		updated, err := env.client.Job.Get(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "executor returned nil result")
	})

	t.Run("nil result with deadline exceeded marks job failed as timed out", func(t *testing.T) {
		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.JobTimeout = 200 * time.Millisecond
		env := newQueueTestEnv(t, cfg)
		ctx := context.Background()

		seeded, _ := seedPendingJob(t, env)

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", env.svc, executor)
		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for job to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		// Give the worker time to persist the terminal status
		time.Sleep(300 * time.Millisecond)
		pool.Stop()

		updated, err := env.client.Job.Get(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "timed out")
		assert.Contains(t, *updated.ErrorMessage, "200ms")
	})

	t.Run("nil result with cancellation marks job cancelled", func(t *testing.T) {
		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		env := newQueueTestEnv(t, cfg)
		ctx := context.Background()

		seeded, _ := seedPendingJob(t, env)

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", env.svc, executor)
		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 10*time.Millisecond,
			"waiting for job to be claimed",
			func() bool {
				j, err := env.client.Job.Get(ctx, seeded.ID)
				require.NoError(t, err)
				return j.Status == job.StatusInProgress
			})

		// Cancel via the pool (simulates API-triggered cancellation)
		require.True(t, pool.CancelJob(seeded.ID))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for job to reach terminal status",
			func() bool {
				j, err := env.client.Job.Get(ctx, seeded.ID)
				require.NoError(t, err)
				return j.Status == job.StatusCancelled
			})

		pool.Stop()
	})
}
