package llm

import "github.com/kollektiv-ai/kollektiv/pkg/models"

// StreamEvent is one provider event from a streaming model response. The
// variants mirror the Anthropic Messages stream event family one-to-one so
// the chat layer can assemble blocks without provider knowledge leaking
// past this package.
type StreamEvent interface {
	streamEvent()
}

// MessageStartEvent opens a model response.
type MessageStartEvent struct{}

// ContentBlockStartEvent opens content block Index. Block is a
// *models.TextBlock or a *models.ToolUseBlock; tool input is empty at start
// and arrives through JSON deltas.
type ContentBlockStartEvent struct {
	Index int
	Block models.ContentBlock
}

// ContentBlockDeltaEvent appends to the open block at Index. Exactly one of
// TextDelta and ToolInputJSONDelta is set.
type ContentBlockDeltaEvent struct {
	Index              int
	TextDelta          string
	ToolInputJSONDelta string
}

// ContentBlockStopEvent closes the block at Index.
type ContentBlockStopEvent struct {
	Index int
}

// MessageDeltaEvent carries the stop reason and token accounting for the
// response so far.
type MessageDeltaEvent struct {
	StopReason string
	Usage      TokenUsage
}

// MessageStopEvent ends a model response.
type MessageStopEvent struct{}

// ErrorEvent surfaces a stream failure in-band. It is always the final event
// on the channel.
type ErrorEvent struct {
	Err error
}

// TokenUsage is the provider's token accounting for one response.
type TokenUsage struct {
	InputTokens      int
	OutputTokens     int
	CacheReadTokens  int
	CacheWriteTokens int
}

func (MessageStartEvent) streamEvent()      {}
func (ContentBlockStartEvent) streamEvent() {}
func (ContentBlockDeltaEvent) streamEvent() {}
func (ContentBlockStopEvent) streamEvent()  {}
func (MessageDeltaEvent) streamEvent()      {}
func (MessageStopEvent) streamEvent()       {}
func (ErrorEvent) streamEvent()             {}
