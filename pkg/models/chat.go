package models

import "github.com/google/uuid"

// FrontendEventType identifies the kind of a FrontendChatEvent.
type FrontendEventType string

const (
	FrontendEventMessageAccepted   FrontendEventType = "message_accepted"
	FrontendEventContentBlockStart FrontendEventType = "content_block_start"
	FrontendEventContentBlockDelta FrontendEventType = "content_block_delta"
	FrontendEventContentBlockStop  FrontendEventType = "content_block_stop"
	FrontendEventMessageStop       FrontendEventType = "message_stop"
	FrontendEventToolResultMessage FrontendEventType = "tool_result_message"
	FrontendEventAssistantMessage  FrontendEventType = "assistant_message"
	FrontendEventError             FrontendEventType = "error"
)

// FrontendChatEvent is the single flat event type streamed to chat clients.
// Only the fields relevant to Type are populated.
type FrontendChatEvent struct {
	Type FrontendEventType `json:"type"`

	// MessageAccepted
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
	Title          string     `json:"title,omitempty"`

	// ContentBlockStart / ContentBlockStop
	Index        *int         `json:"index,omitempty"`
	ContentBlock ContentBlock `json:"content_block,omitempty"`

	// ContentBlockDelta
	TextDelta          string `json:"text_delta,omitempty"`
	ToolInputJSONDelta string `json:"tool_input_json_delta,omitempty"`

	// ToolResultMessage / AssistantMessage
	Message *ConversationMessage `json:"message,omitempty"`

	// Error
	ErrorMessage string `json:"error_message,omitempty"`
}

// ConversationTitleMaxLen bounds the title derived from the first user message.
const ConversationTitleMaxLen = 80

// DeriveConversationTitle produces a display title from the opening message.
func DeriveConversationTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= ConversationTitleMaxLen {
		return text
	}
	return string(runes[:ConversationTitleMaxLen])
}
