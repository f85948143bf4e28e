package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/ent/job"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/serializer"
)

// JobService manages the durable job queue and its status state machine
type JobService struct {
	client *ent.Client
	codec  *serializer.Codec
}

// NewJobService creates a new job service
func NewJobService(client *ent.Client, codec *serializer.Codec) *JobService {
	if codec == nil {
		codec = serializer.NewCodec()
	}
	return &JobService{client: client, codec: codec}
}

// CreateJob enqueues a new pending job. The typed details payload is encoded
// through the serializer so workers can decode it back to its concrete type.
func (s *JobService) CreateJob(ctx context.Context, jobType models.JobType, details any) (*ent.Job, error) {
	if jobType != models.JobTypeCrawl && jobType != models.JobTypeProcessing {
		return nil, NewValidationError("job_type", fmt.Sprintf("unknown job type '%s'", jobType))
	}
	if details == nil {
		return nil, NewValidationError("details", "required")
	}

	encoded, err := s.codec.Encode(details)
	if err != nil {
		return nil, NewValidationError("details", err.Error())
	}

	j, err := s.client.Job.Create().
		SetJobType(job.JobType(jobType)).
		SetStatus(job.StatusPending).
		SetDetails(json.RawMessage(encoded)).
		Save(ctx)
	if err != nil {
		return nil, NewDatabaseError("create", "job", err)
	}

	return j, nil
}

// GetJob retrieves a job by ID
func (s *JobService) GetJob(ctx context.Context, jobID uuid.UUID) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, NewDatabaseError("get", "job", err)
	}

	return j, nil
}

// UpdateJob applies a partial update. Job id, type, and creation time are
// immutable; the patch type cannot express them.
func (s *JobService) UpdateJob(ctx context.Context, jobID uuid.UUID, patch models.JobPatch) (*ent.Job, error) {
	update := s.client.Job.UpdateOneID(jobID)

	if patch.Details != nil {
		encoded, err := s.codec.Encode(patch.Details)
		if err != nil {
			return nil, NewValidationError("details", err.Error())
		}
		update = update.SetDetails(json.RawMessage(encoded))
	}
	if patch.ResultID != nil {
		update = update.SetResultID(*patch.ResultID)
	}
	if patch.Error != nil {
		update = update.SetErrorMessage(*patch.Error)
	}
	if patch.CompletedAt != nil {
		update = update.SetCompletedAt(*patch.CompletedAt)
	}

	j, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, NewDatabaseError("update", "job", err)
	}

	return j, nil
}

// FindByFirecrawlID locates the job that owns an external crawl id. Matches
// against the details payload; backed by an expression index.
func (s *JobService) FindByFirecrawlID(ctx context.Context, firecrawlID string) (*ent.Job, error) {
	if firecrawlID == "" {
		return nil, NewValidationError("firecrawl_id", "required")
	}

	// Only crawl jobs carry a firecrawl id, so no job_type predicate is
	// needed (and the raw expression must stay the sole bound parameter).
	j, err := s.client.Job.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP("details->'data'->>'firecrawl_id' = $1", firecrawlID))
		}).
		Order(ent.Desc(job.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, NewDatabaseError("find", "job", err)
	}

	return j, nil
}

// MarkRunning transitions a job from pending to in_progress and stamps the
// claiming pod. Returns a state error when the job is no longer pending.
func (s *JobService) MarkRunning(ctx context.Context, jobID uuid.UUID, podID string) (*ent.Job, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	count, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusPending),
		).
		SetStatus(job.StatusInProgress).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(writeCtx)
	if err != nil {
		return nil, NewDatabaseError("update", "job", err)
	}

	if count == 0 {
		// Not pending or missing; fetch to produce a precise error
		j, err := s.client.Job.Get(writeCtx, jobID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, NewDatabaseError("get", "job", err)
		}
		return nil, &JobStateError{
			JobID: jobID.String(),
			From:  string(j.Status),
			To:    string(models.JobStatusInProgress),
		}
	}

	j, err := s.client.Job.Get(writeCtx, jobID)
	if err != nil {
		return nil, NewDatabaseError("get", "job", err)
	}

	return j, nil
}

// MarkCompleted finishes a job successfully, optionally recording the id of
// the entity the job produced.
func (s *JobService) MarkCompleted(ctx context.Context, jobID uuid.UUID, resultID *uuid.UUID) error {
	return s.finishJob(jobID, models.JobStatusCompleted, func(u *ent.JobUpdate) {
		if resultID != nil {
			u.SetResultID(*resultID)
		}
	})
}

// MarkFailed finishes a job with an error message. Pending jobs may fail
// directly, e.g. when crawl submission is rejected before any worker runs.
func (s *JobService) MarkFailed(ctx context.Context, jobID uuid.UUID, message string) error {
	return s.finishJob(jobID, models.JobStatusFailed, func(u *ent.JobUpdate) {
		u.SetErrorMessage(message)
	})
}

// MarkCancelled cancels a job that has not finished yet
func (s *JobService) MarkCancelled(ctx context.Context, jobID uuid.UUID) error {
	return s.finishJob(jobID, models.JobStatusCancelled, nil)
}

// finishJob moves a job into a terminal status, enforcing the status state
// machine against the currently stored row.
func (s *JobService) finishJob(jobID uuid.UUID, target models.JobStatus, apply func(*ent.JobUpdate)) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	j, err := s.client.Job.Get(writeCtx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return NewDatabaseError("get", "job", err)
	}

	current := models.JobStatus(j.Status)
	if !current.CanTransitionTo(target) {
		return &JobStateError{
			JobID: jobID.String(),
			From:  string(current),
			To:    string(target),
		}
	}

	update := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(j.Status),
		).
		SetStatus(job.Status(target)).
		SetCompletedAt(time.Now())
	if apply != nil {
		apply(update)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return NewDatabaseError("update", "job", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}

	return nil
}

// Heartbeat refreshes the liveness timestamp of an in-progress job
func (s *JobService) Heartbeat(ctx context.Context, jobID uuid.UUID) error {
	count, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusInProgress),
		).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return NewDatabaseError("update", "job", err)
	}
	if count == 0 {
		return ErrNotFound
	}

	return nil
}

// ClaimNextPendingJob atomically claims the oldest pending processing job for
// a pod, locking the row with FOR UPDATE SKIP LOCKED so concurrent replicas
// pass over each other's claims. Crawl jobs are not claimable: they advance
// via crawler notifications. Returns nil when no pending job exists.
func (s *JobService) ClaimNextPendingJob(ctx context.Context, podID string) (*ent.Job, error) {
	// Use background context with timeout
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Oldest pending processing job, skipping rows locked by other claimants
	j, err := tx.Job.Query().
		Where(
			job.StatusEQ(job.StatusPending),
			job.JobTypeEQ(job.JobTypeProcessing),
		).
		Order(ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // No pending jobs
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	// The row is locked by this transaction; claim it.
	now := time.Now()
	j, err = j.Update().
		SetStatus(job.StatusInProgress).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return j, nil
}

// FindOrphanedJobs finds in-progress processing jobs whose worker heartbeat
// went stale. Crawl jobs are excluded: they are webhook-driven and carry no
// heartbeat discipline.
func (s *JobService) FindOrphanedJobs(ctx context.Context, threshold time.Duration) ([]*ent.Job, error) {
	cutoff := time.Now().Add(-threshold)

	jobs, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusInProgress),
			job.JobTypeEQ(job.JobTypeProcessing),
			job.LastHeartbeatAtNotNil(),
			job.LastHeartbeatAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, NewDatabaseError("find", "job", err)
	}

	return jobs, nil
}

// FindInProgressOnPod returns the in-progress processing jobs claimed by one
// pod, used by startup orphan recovery after a crash. Crawl jobs are excluded:
// they survive pod restarts because webhooks can land on any replica.
func (s *JobService) FindInProgressOnPod(ctx context.Context, podID string) ([]*ent.Job, error) {
	jobs, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusInProgress),
			job.JobTypeEQ(job.JobTypeProcessing),
			job.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return nil, NewDatabaseError("find", "job", err)
	}

	return jobs, nil
}

// CountActive returns the number of in-progress processing jobs across all
// replicas, used for the global worker concurrency cap. Crawl jobs do not
// occupy a worker and are not counted.
func (s *JobService) CountActive(ctx context.Context) (int, error) {
	count, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusInProgress),
			job.JobTypeEQ(job.JobTypeProcessing),
		).
		Count(ctx)
	if err != nil {
		return 0, NewDatabaseError("count", "job", err)
	}

	return count, nil
}

// CountActiveOnPod returns the number of in-progress processing jobs claimed
// by one pod
func (s *JobService) CountActiveOnPod(ctx context.Context, podID string) (int, error) {
	count, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusInProgress),
			job.JobTypeEQ(job.JobTypeProcessing),
			job.PodIDEQ(podID),
		).
		Count(ctx)
	if err != nil {
		return 0, NewDatabaseError("count", "job", err)
	}

	return count, nil
}

// QueueDepth returns the number of pending processing jobs awaiting a worker
func (s *JobService) QueueDepth(ctx context.Context) (int, error) {
	count, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusPending),
			job.JobTypeEQ(job.JobTypeProcessing),
		).
		Count(ctx)
	if err != nil {
		return 0, NewDatabaseError("count", "job", err)
	}

	return count, nil
}

// PruneTerminalJobs deletes jobs that finished more than retention ago.
// Returns the number of rows removed. Terminal jobs are operational records
// only; the content they produced lives on the source and is untouched.
func (s *JobService) PruneTerminalJobs(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)
	count, err := s.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusCompleted, job.StatusFailed, job.StatusCancelled),
			job.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, NewDatabaseError("delete", "job", err)
	}

	return count, nil
}

// DecodeCrawlDetails extracts the typed crawl payload from a job row
func (s *JobService) DecodeCrawlDetails(j *ent.Job) (*models.CrawlJobDetails, error) {
	return serializer.DecodeInto[models.CrawlJobDetails](s.codec, j.Details)
}

// DecodeProcessingDetails extracts the typed processing payload from a job row
func (s *JobService) DecodeProcessingDetails(j *ent.Job) (*models.ProcessingJobDetails, error) {
	return serializer.DecodeInto[models.ProcessingJobDetails](s.codec, j.Details)
}
