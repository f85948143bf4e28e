// Package cleanup provides data retention for operational records.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
)

// Service periodically prunes terminal jobs past their retention window.
// Sources, documents, chunks, and conversations are user data and are never
// touched. The sweep is idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	jobs   *services.JobService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, jobs *services.JobService) *Service {
	return &Service{
		config: cfg,
		jobs:   jobs,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_retention", s.config.JobRetention,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Service) runOnce(_ context.Context) {
	// Detached context: a sweep in flight at shutdown finishes its delete.
	sweepCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.jobs.PruneTerminalJobs(sweepCtx, s.config.JobRetention)
	if err != nil {
		slog.Error("Retention: job prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned terminal jobs", "count", count)
	}
}
