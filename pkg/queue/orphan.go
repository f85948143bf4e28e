package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently; recovery is idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in-progress jobs with stale heartbeats and
// fails them together with their sources (terminal state; the status machine
// has no path back to pending).
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.svc.Jobs.FindOrphanedJobs(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, j := range orphans {
		podID := "unknown"
		if j.PodID != nil {
			podID = *j.PodID
		}
		lastHeartbeat := "unknown"
		if j.LastHeartbeatAt != nil {
			lastHeartbeat = j.LastHeartbeatAt.Format(time.RFC3339)
		}

		message := fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)
		if err := failOrphanedJob(ctx, p.svc, j, message); err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", j.ID,
				"error", err)
			continue
		}
		recovered++

		slog.Warn("Orphaned job marked as failed",
			"job_id", j.ID, "old_pod_id", podID, "last_heartbeat", lastHeartbeat)
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// RecoverStartupOrphans performs a one-time recovery of jobs owned by this
// pod that were in progress when the pod previously crashed. Called once
// during startup, before the worker pool begins processing.
func RecoverStartupOrphans(ctx context.Context, svc *Services, podID string) error {
	orphans, err := svc.Jobs.FindInProgressOnPod(ctx, podID)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	message := fmt.Sprintf("Orphaned: pod %s restarted while job was in progress", podID)
	for _, j := range orphans {
		if err := failOrphanedJob(ctx, svc, j, message); err != nil {
			slog.Error("Failed to recover startup orphan",
				"job_id", j.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", j.ID)
	}

	return nil
}

// failOrphanedJob fails one orphaned job and, best-effort, its source, then
// broadcasts the terminal event so stream consumers are not left hanging.
func failOrphanedJob(ctx context.Context, svc *Services, j *ent.Job, message string) error {
	if err := svc.Jobs.MarkFailed(ctx, j.ID, message); err != nil {
		// Another replica's scan may have recovered it first.
		if services.IsJobStateError(err) || errors.Is(err, services.ErrConcurrentModification) {
			return nil
		}
		return fmt.Errorf("failed to mark job failed: %w", err)
	}

	details, err := svc.Jobs.DecodeProcessingDetails(j)
	if err != nil {
		slog.Error("Cannot decode orphaned job details", "job_id", j.ID, "error", err)
		return nil
	}
	if err := svc.Sources.MarkFailed(ctx, details.SourceID, message); err != nil {
		slog.Error("Failed to mark orphaned source failed",
			"job_id", j.ID, "source_id", details.SourceID, "error", err)
	}
	event := models.NewContentProcessingEvent(details.SourceID, models.StageFailed)
	event.Error = message
	if err := svc.Bus.PublishStageEvent(ctx, event); err != nil {
		slog.Warn("Failed to publish orphan failure event",
			"source_id", details.SourceID, "error", err)
	}

	return nil
}
