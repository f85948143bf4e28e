package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/ent/job"
	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/database"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/serializer"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
	testdb "github.com/kollektiv-ai/kollektiv/test/database"
)

func setupJobService(t *testing.T) (*database.Client, *services.JobService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewJobService(client.Client, serializer.NewCodec())
}

// seedJob creates a job and forces it into the given status with the given
// completion time, bypassing the state machine.
func seedJob(t *testing.T, client *database.Client, jobs *services.JobService, status job.Status, completedAt *time.Time) *ent.Job {
	t.Helper()
	ctx := context.Background()

	j, err := jobs.CreateJob(ctx, models.JobTypeCrawl, models.CrawlJobDetails{
		SourceID: uuid.New(),
		UserID:   uuid.New(),
		URL:      "https://docs.example.com",
	})
	require.NoError(t, err)

	update := client.Job.UpdateOneID(j.ID).SetStatus(status)
	if completedAt != nil {
		update = update.SetCompletedAt(*completedAt)
	}
	require.NoError(t, update.Exec(ctx))
	return j
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		JobRetention:    30 * 24 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
}

func TestServicePrunesOldTerminalJobs(t *testing.T) {
	client, jobs := setupJobService(t)
	ctx := context.Background()

	old := time.Now().Add(-40 * 24 * time.Hour)
	expired := seedJob(t, client, jobs, job.StatusCompleted, &old)
	expiredFailed := seedJob(t, client, jobs, job.StatusFailed, &old)

	svc := NewService(retentionConfig(), jobs)
	svc.runOnce(ctx)

	_, err := jobs.GetJob(ctx, expired.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = jobs.GetJob(ctx, expiredFailed.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestServiceKeepsRecentAndActiveJobs(t *testing.T) {
	client, jobs := setupJobService(t)
	ctx := context.Background()

	recent := time.Now().Add(-1 * time.Hour)
	kept := seedJob(t, client, jobs, job.StatusCompleted, &recent)
	pending := seedJob(t, client, jobs, job.StatusPending, nil)
	running := seedJob(t, client, jobs, job.StatusInProgress, nil)

	svc := NewService(retentionConfig(), jobs)
	svc.runOnce(ctx)

	for _, id := range []uuid.UUID{kept.ID, pending.ID, running.ID} {
		_, err := jobs.GetJob(ctx, id)
		assert.NoError(t, err)
	}
}

func TestServiceStartStop(t *testing.T) {
	_, jobs := setupJobService(t)

	svc := NewService(retentionConfig(), jobs)
	svc.Start(context.Background())
	svc.Stop()

	// Stop is safe to call twice.
	svc.Stop()
}
