// Package events carries content processing events over Redis pub/sub.
//
// Two channel families exist. The global processing channel receives every
// ingestion stage event; per-source channels fan the same events out to the
// SSE endpoint watching one source. Delivery is best-effort per-channel FIFO
// and at least once: consumers must tolerate replays, which the monotonic
// stage order makes idempotent for the UI.
package events

import (
	"fmt"

	"github.com/google/uuid"
)

// ProcessingChannel is the global channel for ingestion stage events.
const ProcessingChannel = "sources/processing"

// SourceChannel returns the per-source event channel.
// Format: "sources/{source_id}/events"
func SourceChannel(sourceID uuid.UUID) string {
	return fmt.Sprintf("sources/%s/events", sourceID)
}
