// Package llm streams Anthropic model responses for chat turns and runs the
// forced tool-use completions behind query expansion and source summaries.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// MessagesClient is the subset of the Anthropic SDK exercised by this
// package. It is satisfied by *anthropic.MessageService, so tests can swap
// in a fake.
type MessagesClient interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
	NewStreaming(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) *ssestream.Stream[anthropic.MessageStreamEventUnion]
}

// NewMessages builds the real Messages API client from an API key.
func NewMessages(apiKey string) MessagesClient {
	ac := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &ac.Messages
}

// Client issues Messages API calls with the configured models: the chat
// model for streaming responses, the cheaper summary model for forced
// tool-use completions.
type Client struct {
	messages     MessagesClient
	model        string
	summaryModel string
	maxTokens    int64
}

// NewClient creates a client over the given Messages API implementation.
func NewClient(messages MessagesClient, cfg *config.AnthropicConfig) *Client {
	return &Client{
		messages:     messages,
		model:        cfg.Model,
		summaryModel: cfg.SummaryModel,
		maxTokens:    int64(cfg.MaxTokens),
	}
}

// StreamRequest describes one streaming model call.
type StreamRequest struct {
	System   string
	Messages []models.ConversationMessage
	Tools    []ToolSpec
}

// StreamResponse starts a streaming completion and returns the translated
// provider events. The channel closes when the response ends; failures
// arrive in-band as a final ErrorEvent. The producer stops as soon as ctx is
// cancelled.
func (c *Client) StreamResponse(ctx context.Context, req StreamRequest) (<-chan StreamEvent, error) {
	msgs, err := messageParams(req.Messages)
	if err != nil {
		return nil, err
	}
	params := anthropic.MessageNewParams{
		MaxTokens: c.maxTokens,
		Messages:  msgs,
		Model:     anthropic.Model(c.model),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if len(req.Tools) > 0 {
		tools := make([]anthropic.ToolUnionParam, len(req.Tools))
		for i, t := range req.Tools {
			tools[i] = t.param()
		}
		params.Tools = tools
	}

	events := make(chan StreamEvent, 100)
	go func() {
		defer close(events)

		stream := c.messages.NewStreaming(ctx, params)
		defer stream.Close()

		for stream.Next() {
			event, ok := translateEvent(stream.Current())
			if !ok {
				continue
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil {
			select {
			case events <- ErrorEvent{Err: classifyAPIError("messages.stream", err)}:
			case <-ctx.Done():
			}
		}
	}()
	return events, nil
}

// ToolCallRequest describes a single-prompt completion that must answer
// through the named tool. Model defaults to the summary model, MaxTokens to
// the client cap.
type ToolCallRequest struct {
	Model     string
	System    string
	Prompt    string
	Tool      ToolSpec
	MaxTokens int64
}

// ForceTool runs a non-streaming completion with tool choice pinned to
// req.Tool and returns the raw JSON input the model supplied. A reply
// without the requested tool use is a NonRetryableError.
func (c *Client) ForceTool(ctx context.Context, req ToolCallRequest) (json.RawMessage, error) {
	if req.Prompt == "" {
		return nil, &NonRetryableError{Op: req.Tool.Name, Err: errors.New("prompt is empty")}
	}
	model := req.Model
	if model == "" {
		model = c.summaryModel
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}
	params := anthropic.MessageNewParams{
		MaxTokens:  maxTokens,
		Model:      anthropic.Model(model),
		Messages:   []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt))},
		Tools:      []anthropic.ToolUnionParam{req.Tool.param()},
		ToolChoice: anthropic.ToolChoiceParamOfTool(req.Tool.Name),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.messages.New(ctx, params)
	if err != nil {
		return nil, classifyAPIError("messages.new", err)
	}
	for _, block := range msg.Content {
		if block.Type == "tool_use" && block.Name == req.Tool.Name {
			return block.Input, nil
		}
	}
	return nil, &NonRetryableError{
		Op:  req.Tool.Name,
		Err: fmt.Errorf("reply carries no %s tool use", req.Tool.Name),
	}
}

// translateEvent maps one provider stream event onto the exported event
// family. Variants the chat loop never consumes (pings, thinking deltas)
// produce no event.
func translateEvent(event anthropic.MessageStreamEventUnion) (StreamEvent, bool) {
	switch ev := event.AsAny().(type) {
	case anthropic.MessageStartEvent:
		return MessageStartEvent{}, true
	case anthropic.ContentBlockStartEvent:
		switch block := ev.ContentBlock.AsAny().(type) {
		case anthropic.TextBlock:
			return ContentBlockStartEvent{
				Index: int(ev.Index),
				Block: &models.TextBlock{Text: block.Text},
			}, true
		case anthropic.ToolUseBlock:
			// Tool input is empty at start; it arrives as JSON deltas.
			return ContentBlockStartEvent{
				Index: int(ev.Index),
				Block: &models.ToolUseBlock{ID: block.ID, Name: block.Name},
			}, true
		}
		return nil, false
	case anthropic.ContentBlockDeltaEvent:
		switch delta := ev.Delta.AsAny().(type) {
		case anthropic.TextDelta:
			if delta.Text == "" {
				return nil, false
			}
			return ContentBlockDeltaEvent{Index: int(ev.Index), TextDelta: delta.Text}, true
		case anthropic.InputJSONDelta:
			if delta.PartialJSON == "" {
				return nil, false
			}
			return ContentBlockDeltaEvent{Index: int(ev.Index), ToolInputJSONDelta: delta.PartialJSON}, true
		}
		return nil, false
	case anthropic.ContentBlockStopEvent:
		return ContentBlockStopEvent{Index: int(ev.Index)}, true
	case anthropic.MessageDeltaEvent:
		return MessageDeltaEvent{
			StopReason: string(ev.Delta.StopReason),
			Usage: TokenUsage{
				InputTokens:      int(ev.Usage.InputTokens),
				OutputTokens:     int(ev.Usage.OutputTokens),
				CacheReadTokens:  int(ev.Usage.CacheReadInputTokens),
				CacheWriteTokens: int(ev.Usage.CacheCreationInputTokens),
			},
		}, true
	case anthropic.MessageStopEvent:
		return MessageStopEvent{}, true
	}
	return nil, false
}

// messageParams converts conversation messages into the SDK wire form.
func messageParams(msgs []models.ConversationMessage) ([]anthropic.MessageParam, error) {
	conversation := make([]anthropic.MessageParam, 0, len(msgs))
	for _, m := range msgs {
		blocks, err := contentBlockParams(m.Content)
		if err != nil {
			return nil, err
		}
		if len(blocks) == 0 {
			continue
		}
		switch m.Role {
		case models.RoleUser:
			conversation = append(conversation, anthropic.NewUserMessage(blocks...))
		case models.RoleAssistant:
			conversation = append(conversation, anthropic.NewAssistantMessage(blocks...))
		default:
			return nil, fmt.Errorf("llm: unsupported message role %q", m.Role)
		}
	}
	if len(conversation) == 0 {
		return nil, errors.New("llm: at least one message is required")
	}
	return conversation, nil
}

func contentBlockParams(blocks models.ContentBlocks) ([]anthropic.ContentBlockParamUnion, error) {
	out := make([]anthropic.ContentBlockParamUnion, 0, len(blocks))
	for _, block := range blocks {
		switch b := block.(type) {
		case *models.TextBlock:
			if b.Text == "" {
				continue
			}
			out = append(out, anthropic.NewTextBlock(b.Text))
		case *models.ToolUseBlock:
			out = append(out, anthropic.NewToolUseBlock(b.ID, b.Input, b.Name))
		case *models.ToolResultBlock:
			out = append(out, anthropic.NewToolResultBlock(b.ToolUseID, b.Content, b.IsError))
		default:
			return nil, fmt.Errorf("llm: unsupported content block %T", block)
		}
	}
	return out, nil
}
