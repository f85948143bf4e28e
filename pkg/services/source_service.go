// Package services provides business logic services backed by the Ent client.
package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/ent/source"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// Crawl parameter bounds enforced at source creation.
const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
	defaultMaxDepth  = 3
	maxCrawlDepth    = 10
)

// SourceService handles source lifecycle operations
type SourceService struct {
	client *ent.Client
}

// NewSourceService creates a new source service
func NewSourceService(client *ent.Client) *SourceService {
	return &SourceService{client: client}
}

// CreateSource registers a new source in stage created. Crawl parameters are
// validated and defaulted here; the crawl itself starts when the caller
// enqueues a crawl job for the returned source.
func (s *SourceService) CreateSource(ctx context.Context, req models.AddSourceRequest) (*ent.Source, error) {
	if req.RequestID == uuid.Nil {
		return nil, NewValidationError("request_id", "required")
	}
	if req.UserID == uuid.Nil {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Config == nil {
		return nil, NewValidationError("request_config", "required")
	}

	cfg, err := normalizeCrawlConfig(*req.Config)
	if err != nil {
		return nil, err
	}

	sourceType := req.SourceType
	if sourceType == "" {
		sourceType = models.SourceTypeWeb
	}
	if !validSourceType(sourceType) {
		return nil, NewValidationError("source_type", fmt.Sprintf("unknown source type '%s'", sourceType))
	}

	src, err := s.client.Source.Create().
		SetUserID(req.UserID).
		SetRequestID(req.RequestID).
		SetSourceType(source.SourceType(sourceType)).
		SetStage(source.StageCreated).
		SetMetadata(models.SourceMetadata{CrawlConfig: cfg}).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, NewDatabaseError("create", "source", err)
	}

	return src, nil
}

// GetSource retrieves a source by ID
func (s *SourceService) GetSource(ctx context.Context, sourceID uuid.UUID) (*ent.Source, error) {
	src, err := s.client.Source.Get(ctx, sourceID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, NewDatabaseError("get", "source", err)
	}

	return src, nil
}

// ListSources lists sources with filtering and pagination, newest first.
// Returns the page of sources and the total count across all pages.
func (s *SourceService) ListSources(ctx context.Context, filters models.SourceFilters) ([]*ent.Source, int, error) {
	query := s.client.Source.Query()

	// Apply filters
	if filters.UserID != nil {
		query = query.Where(source.UserIDEQ(*filters.UserID))
	}
	if filters.Stage != "" {
		if !filters.Stage.Valid() {
			return nil, 0, NewValidationError("stage", fmt.Sprintf("unknown stage '%s'", filters.Stage))
		}
		query = query.Where(source.StageEQ(source.Stage(filters.Stage)))
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, NewDatabaseError("count", "source", err)
	}

	// Apply pagination
	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sources, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(source.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, NewDatabaseError("list", "source", err)
	}

	return sources, totalCount, nil
}

// AdvanceStage moves a source to the given stage. Transitions are monotonic:
// repeating the current stage is a no-op (notification redelivery), while
// regressions and transitions out of a terminal stage are rejected.
func (s *SourceService) AdvanceStage(ctx context.Context, sourceID uuid.UUID, next models.Stage) (*ent.Source, error) {
	if !next.Valid() {
		return nil, NewValidationError("stage", fmt.Sprintf("unknown stage '%s'", next))
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	src, err := s.client.Source.Get(writeCtx, sourceID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, NewDatabaseError("get", "source", err)
	}

	current := models.Stage(src.Stage)
	if current == next {
		return src, nil
	}
	if !current.CanAdvanceTo(next) {
		return nil, fmt.Errorf("source %s: cannot advance stage from '%s' to '%s': %w",
			sourceID, current, next, ErrInvalidInput)
	}

	// Conditional update: only advance from the stage we observed
	count, err := s.client.Source.Update().
		Where(
			source.IDEQ(sourceID),
			source.StageEQ(src.Stage),
		).
		SetStage(source.Stage(next)).
		Save(writeCtx)
	if err != nil {
		return nil, NewDatabaseError("update", "source", err)
	}
	if count == 0 {
		return nil, ErrConcurrentModification
	}

	src, err = s.client.Source.Get(writeCtx, sourceID)
	if err != nil {
		return nil, NewDatabaseError("get", "source", err)
	}

	return src, nil
}

// MarkFailed moves a source to the failed stage and records the error.
// Already-failed sources are left untouched.
func (s *SourceService) MarkFailed(ctx context.Context, sourceID uuid.UUID, message string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	src, err := s.client.Source.Get(writeCtx, sourceID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return NewDatabaseError("get", "source", err)
	}

	current := models.Stage(src.Stage)
	if current == models.StageFailed {
		return nil
	}
	if !current.CanAdvanceTo(models.StageFailed) {
		return fmt.Errorf("source %s: cannot fail from terminal stage '%s': %w",
			sourceID, current, ErrInvalidInput)
	}

	err = s.client.Source.UpdateOneID(sourceID).
		SetStage(source.StageFailed).
		SetErrorMessage(message).
		Exec(writeCtx)
	if err != nil {
		return NewDatabaseError("update", "source", err)
	}

	return nil
}

// SetJob records the active ingestion job for a source
func (s *SourceService) SetJob(ctx context.Context, sourceID, jobID uuid.UUID) error {
	err := s.client.Source.UpdateOneID(sourceID).
		SetJobID(jobID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return NewDatabaseError("update", "source", err)
	}

	return nil
}

// IncrementPagesCrawled bumps the crawled page counter by one and returns the
// new count. Page notifications for the same crawl can arrive concurrently,
// so the row is locked for the read-modify-write.
func (s *SourceService) IncrementPagesCrawled(ctx context.Context, sourceID uuid.UUID) (int, error) {
	metadata, err := s.updateMetadata(sourceID, func(m *models.SourceMetadata) {
		m.PagesCrawled++
	})
	if err != nil {
		return 0, err
	}

	return metadata.PagesCrawled, nil
}

// SetTotalPages records the page total reported by the crawl
func (s *SourceService) SetTotalPages(ctx context.Context, sourceID uuid.UUID, total int) error {
	_, err := s.updateMetadata(sourceID, func(m *models.SourceMetadata) {
		m.TotalPages = total
	})

	return err
}

// updateMetadata applies fn to the source metadata under a row lock
func (s *SourceService) updateMetadata(sourceID uuid.UUID, fn func(*models.SourceMetadata)) (models.SourceMetadata, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return models.SourceMetadata{}, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	src, err := tx.Source.Query().
		Where(source.IDEQ(sourceID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.SourceMetadata{}, ErrNotFound
		}
		return models.SourceMetadata{}, NewDatabaseError("get", "source", err)
	}

	metadata := src.Metadata
	fn(&metadata)

	err = tx.Source.UpdateOneID(sourceID).
		SetMetadata(metadata).
		Exec(writeCtx)
	if err != nil {
		return models.SourceMetadata{}, NewDatabaseError("update", "source", err)
	}

	if err := tx.Commit(); err != nil {
		return models.SourceMetadata{}, fmt.Errorf("failed to commit metadata update: %w", err)
	}

	return metadata, nil
}

// normalizeCrawlConfig applies defaults and validates crawl bounds
func normalizeCrawlConfig(cfg models.CrawlConfig) (models.CrawlConfig, error) {
	if cfg.URL == "" {
		return cfg, NewValidationError("url", "required")
	}
	parsed, err := url.Parse(cfg.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return cfg, NewValidationError("url", "must be a valid http(s) URL")
	}

	if cfg.PageLimit == 0 {
		cfg.PageLimit = defaultPageLimit
	}
	if cfg.PageLimit < 1 || cfg.PageLimit > maxPageLimit {
		return cfg, NewValidationError("page_limit", fmt.Sprintf("must be between 1 and %d", maxPageLimit))
	}

	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = defaultMaxDepth
	}
	if cfg.MaxDepth < 1 || cfg.MaxDepth > maxCrawlDepth {
		return cfg, NewValidationError("max_depth", fmt.Sprintf("must be between 1 and %d", maxCrawlDepth))
	}

	for _, p := range cfg.IncludePatterns {
		if !strings.HasPrefix(p, "/") {
			return cfg, NewValidationError("include_patterns", fmt.Sprintf("pattern '%s' must start with '/'", p))
		}
	}
	for _, p := range cfg.ExcludePatterns {
		if !strings.HasPrefix(p, "/") {
			return cfg, NewValidationError("exclude_patterns", fmt.Sprintf("pattern '%s' must start with '/'", p))
		}
	}

	return cfg, nil
}

func validSourceType(t models.SourceType) bool {
	switch t {
	case models.SourceTypeWeb, models.SourceTypeGitHub, models.SourceTypeJira, models.SourceTypeConfluence:
		return true
	}
	return false
}
