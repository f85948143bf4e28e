// Package chat runs a full chat turn: it drives the model stream, assembles
// the assistant's content blocks, executes tool calls, and translates
// everything into the flat event stream the frontend consumes.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/pkg/conversation"
	"github.com/kollektiv-ai/kollektiv/pkg/llm"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

const (
	// eventBuffer decouples the turn from a slow SSE consumer.
	eventBuffer = 100

	// commitTimeout bounds the detached commit at the end of a turn.
	commitTimeout = 10 * time.Second
)

// ConversationManager is the slice of the conversation layer a turn drives.
// Satisfied by *conversation.Manager.
type ConversationManager interface {
	SetupTurn(ctx context.Context, userID, conversationID uuid.UUID, text string) (*conversation.Turn, error)
	AddPending(ctx context.Context, msg models.ConversationMessage) error
	CommitPending(ctx context.Context, conversationID, userID uuid.UUID) error
	ClearPending(ctx context.Context, conversationID uuid.UUID) error
}

// Assistant streams model responses and executes tool calls. Satisfied by
// *llm.Assistant.
type Assistant interface {
	StreamResponse(ctx context.Context, history *models.ConversationHistory) (<-chan llm.StreamEvent, error)
	HandleToolUse(ctx context.Context, block *models.ToolUseBlock, userID uuid.UUID) (*models.ToolResultBlock, error)
}

// Service runs chat turns end to end.
type Service struct {
	conversations ConversationManager
	assistant     Assistant
}

// NewService creates the chat service.
func NewService(conversations ConversationManager, assistant Assistant) *Service {
	return &Service{conversations: conversations, assistant: assistant}
}

// GetResponse stages the user's message and streams the turn's frontend
// events. The channel closes when the turn has committed or failed; failures
// after the stream starts arrive as a final Error event. A Nil
// conversationID starts a new conversation.
func (s *Service) GetResponse(ctx context.Context, userID, conversationID uuid.UUID, text string) (<-chan models.FrontendChatEvent, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("chat: message text is required")
	}

	turn, err := s.conversations.SetupTurn(ctx, userID, conversationID, text)
	if err != nil {
		return nil, err
	}

	events := make(chan models.FrontendChatEvent, eventBuffer)
	go func() {
		defer close(events)
		s.runTurn(ctx, events, turn)
	}()
	return events, nil
}

func (s *Service) runTurn(ctx context.Context, events chan<- models.FrontendChatEvent, turn *conversation.Turn) {
	history := turn.History
	conversationID := history.ConversationID

	id := conversationID
	if !s.emit(ctx, events, models.FrontendChatEvent{
		Type:           models.FrontendEventMessageAccepted,
		ConversationID: &id,
		Title:          turn.Title,
	}) {
		s.failTurn(ctx, events, conversationID, ctx.Err())
		return
	}

	if err := s.streamTurn(ctx, events, history); err != nil {
		s.failTurn(ctx, events, conversationID, err)
		return
	}

	// The turn is complete; a late disconnect must not drop the whole
	// exchange, so the commit runs on its own context.
	commitCtx, cancel := context.WithTimeout(context.Background(), commitTimeout)
	defer cancel()
	if err := s.conversations.CommitPending(commitCtx, conversationID, history.UserID); err != nil {
		s.failTurn(ctx, events, conversationID, err)
		return
	}
}

// streamTurn runs one model stream over history, extending history and the
// pending list as blocks complete, and recurses after a tool round.
func (s *Service) streamTurn(ctx context.Context, events chan<- models.FrontendChatEvent, history *models.ConversationHistory) error {
	stream, err := s.assistant.StreamResponse(ctx, history)
	if err != nil {
		return err
	}

	state := &streamState{}
	for event := range stream {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		switch e := event.(type) {
		case llm.MessageStartEvent, llm.MessageDeltaEvent:
			// Nothing for the frontend.

		case llm.ContentBlockStartEvent:
			state.start(e.Block)
			index := e.Index
			if !s.emit(ctx, events, models.FrontendChatEvent{
				Type:         models.FrontendEventContentBlockStart,
				Index:        &index,
				ContentBlock: e.Block,
			}) {
				return ctx.Err()
			}

		case llm.ContentBlockDeltaEvent:
			if e.TextDelta == "" && e.ToolInputJSONDelta == "" {
				continue
			}
			state.appendText(e.TextDelta)
			state.appendToolInput(e.ToolInputJSONDelta)
			if !s.emit(ctx, events, models.FrontendChatEvent{
				Type:               models.FrontendEventContentBlockDelta,
				TextDelta:          e.TextDelta,
				ToolInputJSONDelta: e.ToolInputJSONDelta,
			}) {
				return ctx.Err()
			}

		case llm.ContentBlockStopEvent:
			state.finish()
			index := e.Index
			if !s.emit(ctx, events, models.FrontendChatEvent{
				Type:  models.FrontendEventContentBlockStop,
				Index: &index,
			}) {
				return ctx.Err()
			}

		case llm.MessageStopEvent:
			if len(state.blocks) == 0 {
				slog.Warn("Model stream produced no content blocks",
					"conversation_id", history.ConversationID)
				if !s.emit(ctx, events, models.FrontendChatEvent{Type: models.FrontendEventMessageStop}) {
					return ctx.Err()
				}
				continue
			}
			msg := state.assistantMessage(history.ConversationID)
			if err := s.conversations.AddPending(ctx, msg); err != nil {
				return err
			}
			history.Messages = append(history.Messages, msg)
			if !s.emit(ctx, events, models.FrontendChatEvent{Type: models.FrontendEventMessageStop}) {
				return ctx.Err()
			}
			if !s.emit(ctx, events, models.FrontendChatEvent{
				Type:    models.FrontendEventAssistantMessage,
				Message: &msg,
			}) {
				return ctx.Err()
			}

		case llm.ErrorEvent:
			return e.Err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if state.toolUse == nil {
		return nil
	}

	result, err := s.assistant.HandleToolUse(ctx, state.toolUse, history.UserID)
	if err != nil {
		return err
	}
	toolMsg := models.ConversationMessage{
		ID:             uuid.New(),
		ConversationID: history.ConversationID,
		Role:           models.RoleUser,
		Content:        models.ContentBlocks{result},
	}
	if err := s.conversations.AddPending(ctx, toolMsg); err != nil {
		return err
	}
	history.Messages = append(history.Messages, toolMsg)
	if !s.emit(ctx, events, models.FrontendChatEvent{
		Type:    models.FrontendEventToolResultMessage,
		Message: &toolMsg,
	}) {
		return ctx.Err()
	}

	return s.streamTurn(ctx, events, history)
}

// failTurn releases the turn's staged messages and surfaces the failure as a
// final Error event. The clear runs detached so a cancelled consumer cannot
// leak pending messages into the next turn.
func (s *Service) failTurn(ctx context.Context, events chan<- models.FrontendChatEvent, conversationID uuid.UUID, cause error) {
	slog.Error("Chat turn failed", "conversation_id", conversationID, "error", cause)

	clearCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.conversations.ClearPending(clearCtx, conversationID); err != nil {
		slog.Error("Failed to clear pending messages",
			"conversation_id", conversationID, "error", err)
	}

	message := "chat turn failed"
	if cause != nil {
		message = cause.Error()
	}
	s.emit(ctx, events, models.FrontendChatEvent{
		Type:         models.FrontendEventError,
		ErrorMessage: message,
	})
}

func (s *Service) emit(ctx context.Context, events chan<- models.FrontendChatEvent, event models.FrontendChatEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

// streamState assembles the assistant message for one model stream.
type streamState struct {
	current      models.ContentBlock
	blocks       models.ContentBlocks
	toolUse      *models.ToolUseBlock
	toolInputBuf strings.Builder
}

func (st *streamState) start(block models.ContentBlock) {
	switch b := block.(type) {
	case *models.TextBlock:
		st.current = &models.TextBlock{Text: b.Text}
	case *models.ToolUseBlock:
		st.current = &models.ToolUseBlock{ID: b.ID, Name: b.Name}
		st.toolInputBuf.Reset()
	default:
		st.current = block
	}
}

func (st *streamState) appendText(text string) {
	if text == "" {
		return
	}
	if b, ok := st.current.(*models.TextBlock); ok {
		b.Text += text
	}
}

func (st *streamState) appendToolInput(partial string) {
	if partial == "" {
		return
	}
	if _, ok := st.current.(*models.ToolUseBlock); ok {
		st.toolInputBuf.WriteString(partial)
	}
}

// finish seals the current block. Tool-use blocks get their input parsed
// from the accumulated JSON deltas.
func (st *streamState) finish() {
	if st.current == nil {
		return
	}
	if b, ok := st.current.(*models.ToolUseBlock); ok {
		b.Input = parseToolInput(st.toolInputBuf.String())
		st.toolUse = b
	}
	st.blocks = append(st.blocks, st.current)
	st.current = nil
}

func (st *streamState) assistantMessage(conversationID uuid.UUID) models.ConversationMessage {
	return models.ConversationMessage{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Role:           models.RoleAssistant,
		Content:        st.blocks,
	}
}

// parseToolInput decodes the accumulated tool input JSON. Broken JSON from
// the provider degrades to an empty input instead of failing the turn.
func parseToolInput(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	input := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		slog.Warn("Tool input did not parse as JSON", "error", err)
		return map[string]any{}
	}
	return input
}
