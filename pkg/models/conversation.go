package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Role is the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// BlockType identifies the kind of a content block.
type BlockType string

const (
	BlockTypeText       BlockType = "text"
	BlockTypeToolUse    BlockType = "tool_use"
	BlockTypeToolResult BlockType = "tool_result"
)

// ContentBlock is the interface for all message content block variants.
// The wire form carries a "type" discriminator.
type ContentBlock interface {
	BlockType() BlockType
}

// TextBlock is a plain text segment of a message.
type TextBlock struct {
	Text string `json:"text"`
}

// ToolUseBlock is the assistant's request to invoke a tool.
type ToolUseBlock struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Input map[string]any `json:"input"`
}

// ToolResultBlock carries the outcome of an earlier tool use back to the model.
type ToolResultBlock struct {
	ToolUseID string `json:"tool_use_id"`
	Content   string `json:"content"`
	IsError   bool   `json:"is_error,omitempty"`
}

func (b *TextBlock) BlockType() BlockType       { return BlockTypeText }
func (b *ToolUseBlock) BlockType() BlockType    { return BlockTypeToolUse }
func (b *ToolResultBlock) BlockType() BlockType { return BlockTypeToolResult }

// MarshalJSON emits the block with its "type" discriminator.
func (b *TextBlock) MarshalJSON() ([]byte, error) {
	type alias TextBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		*alias
	}{BlockTypeText, (*alias)(b)})
}

func (b *ToolUseBlock) MarshalJSON() ([]byte, error) {
	type alias ToolUseBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		*alias
	}{BlockTypeToolUse, (*alias)(b)})
}

func (b *ToolResultBlock) MarshalJSON() ([]byte, error) {
	type alias ToolResultBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		*alias
	}{BlockTypeToolResult, (*alias)(b)})
}

// DecodeContentBlock reconstitutes a single block from its wire form by
// dispatching on the "type" discriminator.
func DecodeContentBlock(data []byte) (ContentBlock, error) {
	var probe struct {
		Type BlockType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode content block: %w", err)
	}
	switch probe.Type {
	case BlockTypeText:
		var b TextBlock
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("decode text block: %w", err)
		}
		return &b, nil
	case BlockTypeToolUse:
		var b ToolUseBlock
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("decode tool_use block: %w", err)
		}
		return &b, nil
	case BlockTypeToolResult:
		var b ToolResultBlock
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("decode tool_result block: %w", err)
		}
		return &b, nil
	default:
		return nil, fmt.Errorf("decode content block: unknown type %q", probe.Type)
	}
}

// ContentBlocks is an ordered list of content blocks with discriminated JSON
// encoding.
type ContentBlocks []ContentBlock

// UnmarshalJSON decodes a JSON array of discriminated blocks.
func (c *ContentBlocks) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("decode content blocks: %w", err)
	}
	blocks := make(ContentBlocks, 0, len(raws))
	for _, raw := range raws {
		block, err := DecodeContentBlock(raw)
		if err != nil {
			return err
		}
		blocks = append(blocks, block)
	}
	*c = blocks
	return nil
}

// ConversationMessage is one turn entry in a conversation.
type ConversationMessage struct {
	ID             uuid.UUID     `json:"message_id"`
	ConversationID uuid.UUID     `json:"conversation_id"`
	Role           Role          `json:"role"`
	Content        ContentBlocks `json:"content"`
}

// NewUserTextMessage builds a user message holding a single text block.
func NewUserTextMessage(conversationID uuid.UUID, text string) ConversationMessage {
	return ConversationMessage{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Role:           RoleUser,
		Content:        ContentBlocks{&TextBlock{Text: text}},
	}
}

// FirstText returns the text of the first TextBlock, or "".
func (m ConversationMessage) FirstText() string {
	for _, b := range m.Content {
		if tb, ok := b.(*TextBlock); ok {
			return tb.Text
		}
	}
	return ""
}

// PendingMessage is a conversation message staged in the K/V store for the
// duration of a streaming turn. It shares the message wire shape but is its
// own record type so the K/V layer can bind it to the pending key template.
type PendingMessage struct {
	ConversationMessage
}

// ConversationHistory is the volatile aggregate of a conversation's messages
// used during a chat turn. TokenCount tracks the estimated token cost of
// Messages under the shared tokenizer.
type ConversationHistory struct {
	ConversationID uuid.UUID             `json:"conversation_id"`
	UserID         uuid.UUID             `json:"user_id"`
	Messages       []ConversationMessage `json:"messages"`
	TokenCount     int                   `json:"token_count"`
}

// LastRole returns the role of the most recent message, or "" when empty.
func (h *ConversationHistory) LastRole() Role {
	if len(h.Messages) == 0 {
		return ""
	}
	return h.Messages[len(h.Messages)-1].Role
}
