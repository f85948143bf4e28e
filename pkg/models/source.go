// Package models contains request/response models and business domain types.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SourceType identifies the origin kind of a content source.
type SourceType string

const (
	SourceTypeWeb        SourceType = "web"
	SourceTypeGitHub     SourceType = "github"
	SourceTypeJira       SourceType = "jira"
	SourceTypeConfluence SourceType = "confluence"
)

// CrawlConfig holds the user-supplied crawl parameters for a source.
type CrawlConfig struct {
	URL             string   `json:"url"`
	PageLimit       int      `json:"page_limit"`
	MaxDepth        int      `json:"max_depth"`
	IncludePatterns []string `json:"include_patterns,omitempty"`
	ExcludePatterns []string `json:"exclude_patterns,omitempty"`
}

// SourceMetadata is the JSON metadata column of a source.
type SourceMetadata struct {
	CrawlConfig  CrawlConfig `json:"crawl_config"`
	PagesCrawled int         `json:"pages_crawled"`
	TotalPages   int         `json:"total_pages"`
}

// AddSourceRequest contains fields for registering a new content source.
type AddSourceRequest struct {
	RequestID  uuid.UUID    `json:"request_id"`
	UserID     uuid.UUID    `json:"user_id"`
	SourceType SourceType   `json:"source_type"`
	Config     *CrawlConfig `json:"request_config"`
}

// AddSourceResponse is returned after a source has been accepted for ingestion.
type AddSourceResponse struct {
	SourceID  uuid.UUID `json:"source_id"`
	Stage     Stage     `json:"stage"`
	CreatedAt time.Time `json:"created_at"`
}

// SourceFilters contains filtering options for listing sources.
type SourceFilters struct {
	UserID *uuid.UUID `json:"user_id,omitempty"`
	Stage  Stage      `json:"stage,omitempty"`
	Limit  int        `json:"limit,omitempty"`
	Offset int        `json:"offset,omitempty"`
}
