package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentProcessingEvent is published on every ingestion stage boundary.
// It travels the event bus and is replayed to SSE consumers; consumers must
// tolerate at-least-once delivery.
type ContentProcessingEvent struct {
	SourceID  uuid.UUID      `json:"source_id"`
	Stage     Stage          `json:"stage"`
	Error     string         `json:"error,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewContentProcessingEvent builds a stage event stamped with the current time.
func NewContentProcessingEvent(sourceID uuid.UUID, stage Stage) ContentProcessingEvent {
	return ContentProcessingEvent{
		SourceID:  sourceID,
		Stage:     stage,
		Timestamp: time.Now().UTC(),
	}
}
