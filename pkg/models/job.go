package models

import (
	"time"

	"github.com/google/uuid"
)

// JobType identifies which ingestion phase a job drives.
type JobType string

const (
	JobTypeCrawl      JobType = "crawl"
	JobTypeProcessing JobType = "processing"
)

// JobStatus is the lifecycle state of a job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// Valid reports whether the status is a known value.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusInProgress, JobStatusCompleted,
		JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is legal.
// Pending may start or cancel; in_progress may finish either way or
// cancel; terminal states admit nothing.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	if !next.Valid() || s.IsTerminal() {
		return false
	}
	switch s {
	case JobStatusPending:
		return next == JobStatusInProgress || next == JobStatusCancelled || next == JobStatusFailed
	case JobStatusInProgress:
		return next == JobStatusCompleted || next == JobStatusFailed || next == JobStatusCancelled
	}
	return false
}

// CrawlJobDetails is the typed payload of a crawl job. FirecrawlID is the
// external crawl identifier used to correlate webhook notifications.
type CrawlJobDetails struct {
	SourceID    uuid.UUID `json:"source_id"`
	UserID      uuid.UUID `json:"user_id"`
	URL         string    `json:"url"`
	FirecrawlID string    `json:"firecrawl_id,omitempty"`
}

// ProcessingJobDetails is the typed payload of a processing job, enqueued when
// the crawler reports completion.
type ProcessingJobDetails struct {
	SourceID    uuid.UUID `json:"source_id"`
	UserID      uuid.UUID `json:"user_id"`
	FirecrawlID string    `json:"firecrawl_id"`
}

// JobPatch contains the updatable fields of a job. Nil fields are left
// untouched. Protected fields (id, type, created_at) have no patch entry.
type JobPatch struct {
	Details     any        `json:"details,omitempty"`
	ResultID    *uuid.UUID `json:"result_id,omitempty"`
	Error       *string    `json:"error,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
