package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/ent/job"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/serializer"
	testdb "github.com/kollektiv-ai/kollektiv/test/database"
)

func newTestJobService(t *testing.T) *JobService {
	client := testdb.NewTestClient(t)
	return NewJobService(client.Client, serializer.NewCodec())
}

func crawlDetails(firecrawlID string) models.CrawlJobDetails {
	return models.CrawlJobDetails{
		SourceID:    uuid.New(),
		UserID:      uuid.New(),
		URL:         "https://docs.example.com",
		FirecrawlID: firecrawlID,
	}
}

func TestJobService_CreateJob(t *testing.T) {
	service := newTestJobService(t)
	ctx := context.Background()

	t.Run("creates pending job with tagged details", func(t *testing.T) {
		details := crawlDetails("")

		j, err := service.CreateJob(ctx, models.JobTypeCrawl, details)
		require.NoError(t, err)
		assert.Equal(t, job.JobTypeCrawl, j.JobType)
		assert.Equal(t, job.StatusPending, j.Status)

		// Details are stored as a tagged envelope
		var envelope map[string]any
		require.NoError(t, json.Unmarshal(j.Details, &envelope))
		assert.Equal(t, "kollektiv.CrawlJobDetails", envelope["__type"])

		decoded, err := service.DecodeCrawlDetails(j)
		require.NoError(t, err)
		assert.Equal(t, details.SourceID, decoded.SourceID)
		assert.Equal(t, details.URL, decoded.URL)
	})

	t.Run("rejects unknown job type", func(t *testing.T) {
		_, err := service.CreateJob(ctx, "maintenance", crawlDetails(""))
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects nil details", func(t *testing.T) {
		_, err := service.CreateJob(ctx, models.JobTypeCrawl, nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestJobService_UpdateJob(t *testing.T) {
	service := newTestJobService(t)
	ctx := context.Background()

	t.Run("patches details after external submission", func(t *testing.T) {
		j, err := service.CreateJob(ctx, models.JobTypeCrawl, crawlDetails(""))
		require.NoError(t, err)

		details, err := service.DecodeCrawlDetails(j)
		require.NoError(t, err)
		details.FirecrawlID = "fc-123"

		j, err = service.UpdateJob(ctx, j.ID, models.JobPatch{Details: *details})
		require.NoError(t, err)

		decoded, err := service.DecodeCrawlDetails(j)
		require.NoError(t, err)
		assert.Equal(t, "fc-123", decoded.FirecrawlID)
	})

	t.Run("empty patch leaves the row unchanged", func(t *testing.T) {
		j, err := service.CreateJob(ctx, models.JobTypeCrawl, crawlDetails("fc-keep"))
		require.NoError(t, err)

		updated, err := service.UpdateJob(ctx, j.ID, models.JobPatch{})
		require.NoError(t, err)
		assert.Equal(t, j.Status, updated.Status)

		decoded, err := service.DecodeCrawlDetails(updated)
		require.NoError(t, err)
		assert.Equal(t, "fc-keep", decoded.FirecrawlID)
	})

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := service.UpdateJob(ctx, uuid.New(), models.JobPatch{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobService_FindByFirecrawlID(t *testing.T) {
	service := newTestJobService(t)
	ctx := context.Background()

	j, err := service.CreateJob(ctx, models.JobTypeCrawl, crawlDetails("fc-find-me"))
	require.NoError(t, err)
	_, err = service.CreateJob(ctx, models.JobTypeCrawl, crawlDetails("fc-other"))
	require.NoError(t, err)

	t.Run("finds job by external crawl id", func(t *testing.T) {
		found, err := service.FindByFirecrawlID(ctx, "fc-find-me")
		require.NoError(t, err)
		assert.Equal(t, j.ID, found.ID)
	})

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := service.FindByFirecrawlID(ctx, "fc-missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := service.FindByFirecrawlID(ctx, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestJobService_StatusTransitions(t *testing.T) {
	service := newTestJobService(t)
	ctx := context.Background()

	t.Run("pending to in_progress to completed", func(t *testing.T) {
		j, err := service.CreateJob(ctx, models.JobTypeProcessing, models.ProcessingJobDetails{
			SourceID: uuid.New(),
			UserID:   uuid.New(),
		})
		require.NoError(t, err)

		j, err = service.MarkRunning(ctx, j.ID, "pod-1")
		require.NoError(t, err)
		assert.Equal(t, job.StatusInProgress, j.Status)
		require.NotNil(t, j.PodID)
		assert.Equal(t, "pod-1", *j.PodID)
		assert.NotNil(t, j.StartedAt)
		assert.NotNil(t, j.LastHeartbeatAt)

		resultID := uuid.New()
		err = service.MarkCompleted(ctx, j.ID, &resultID)
		require.NoError(t, err)

		j, err = service.GetJob(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, j.Status)
		require.NotNil(t, j.ResultID)
		assert.Equal(t, resultID, *j.ResultID)
		assert.NotNil(t, j.CompletedAt)
	})

	t.Run("pending job may fail directly", func(t *testing.T) {
		j, err := service.CreateJob(ctx, models.JobTypeCrawl, crawlDetails(""))
		require.NoError(t, err)

		err = service.MarkFailed(ctx, j.ID, "submission rejected")
		require.NoError(t, err)

		j, err = service.GetJob(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, j.Status)
		require.NotNil(t, j.ErrorMessage)
		assert.Equal(t, "submission rejected", *j.ErrorMessage)
	})

	t.Run("completing a pending job is a state error", func(t *testing.T) {
		j, err := service.CreateJob(ctx, models.JobTypeCrawl, crawlDetails(""))
		require.NoError(t, err)

		err = service.MarkCompleted(ctx, j.ID, nil)
		require.Error(t, err)
		assert.True(t, IsJobStateError(err), "expected job state error, got %v", err)
	})

	t.Run("running a non-pending job is a state error", func(t *testing.T) {
		j, err := service.CreateJob(ctx, models.JobTypeCrawl, crawlDetails(""))
		require.NoError(t, err)
		require.NoError(t, service.MarkFailed(ctx, j.ID, "boom"))

		_, err = service.MarkRunning(ctx, j.ID, "pod-1")
		require.Error(t, err)

		var stateErr *JobStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, string(models.JobStatusFailed), stateErr.From)
		assert.Equal(t, string(models.JobStatusInProgress), stateErr.To)
	})

	t.Run("terminal states are absorbing", func(t *testing.T) {
		j, err := service.CreateJob(ctx, models.JobTypeProcessing, models.ProcessingJobDetails{
			SourceID: uuid.New(),
			UserID:   uuid.New(),
		})
		require.NoError(t, err)
		require.NoError(t, service.MarkCancelled(ctx, j.ID))

		err = service.MarkFailed(ctx, j.ID, "late failure")
		assert.True(t, IsJobStateError(err))
		err = service.MarkCompleted(ctx, j.ID, nil)
		assert.True(t, IsJobStateError(err))
	})
}

func TestJobService_ClaimNextPendingJob(t *testing.T) {
	service := newTestJobService(t)
	ctx := context.Background()

	t.Run("returns nil when queue is empty", func(t *testing.T) {
		j, err := service.ClaimNextPendingJob(ctx, "pod-1")
		require.NoError(t, err)
		assert.Nil(t, j)
	})

	t.Run("claims oldest pending processing job", func(t *testing.T) {
		first, err := service.CreateJob(ctx, models.JobTypeProcessing, models.ProcessingJobDetails{
			SourceID: uuid.New(),
			UserID:   uuid.New(),
		})
		require.NoError(t, err)
		_, err = service.CreateJob(ctx, models.JobTypeProcessing, models.ProcessingJobDetails{
			SourceID: uuid.New(),
			UserID:   uuid.New(),
		})
		require.NoError(t, err)

		claimed, err := service.ClaimNextPendingJob(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, job.StatusInProgress, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-1", *claimed.PodID)
	})

	t.Run("does not claim crawl jobs", func(t *testing.T) {
		svc := newTestJobService(t)

		_, err := svc.CreateJob(ctx, models.JobTypeCrawl, crawlDetails(""))
		require.NoError(t, err)

		claimed, err := svc.ClaimNextPendingJob(ctx, "pod-1")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})
}

func TestJobService_Heartbeat(t *testing.T) {
	service := newTestJobService(t)
	ctx := context.Background()

	j, err := service.CreateJob(ctx, models.JobTypeProcessing, models.ProcessingJobDetails{
		SourceID: uuid.New(),
		UserID:   uuid.New(),
	})
	require.NoError(t, err)

	t.Run("refreshes heartbeat of in-progress job", func(t *testing.T) {
		j, err = service.MarkRunning(ctx, j.ID, "pod-1")
		require.NoError(t, err)
		before := *j.LastHeartbeatAt

		time.Sleep(10 * time.Millisecond)
		require.NoError(t, service.Heartbeat(ctx, j.ID))

		j, err = service.GetJob(ctx, j.ID)
		require.NoError(t, err)
		assert.True(t, j.LastHeartbeatAt.After(before))
	})

	t.Run("fails for jobs that are not in progress", func(t *testing.T) {
		require.NoError(t, service.MarkCompleted(ctx, j.ID, nil))
		err := service.Heartbeat(ctx, j.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobService_FindOrphanedJobs(t *testing.T) {
	service := newTestJobService(t)
	ctx := context.Background()

	stale, err := service.CreateJob(ctx, models.JobTypeProcessing, models.ProcessingJobDetails{
		SourceID: uuid.New(),
		UserID:   uuid.New(),
	})
	require.NoError(t, err)
	stale, err = service.MarkRunning(ctx, stale.ID, "pod-dead")
	require.NoError(t, err)

	fresh, err := service.CreateJob(ctx, models.JobTypeProcessing, models.ProcessingJobDetails{
		SourceID: uuid.New(),
		UserID:   uuid.New(),
	})
	require.NoError(t, err)
	_, err = service.MarkRunning(ctx, fresh.ID, "pod-alive")
	require.NoError(t, err)

	// Push the stale job's heartbeat into the past
	err = service.client.Job.UpdateOneID(stale.ID).
		SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	orphans, err := service.FindOrphanedJobs(ctx, 5*time.Minute)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, stale.ID, orphans[0].ID)
}
