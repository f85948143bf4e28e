package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/retrieval"
)

// Retriever runs the retrieval path behind the rag_search tool.
type Retriever interface {
	Retrieve(ctx context.Context, ragQuery string, combinedQueries []string, topN int, userID uuid.UUID) ([]retrieval.Result, error)
}

// SummaryLister loads the summaries of a user's completed sources. Satisfied
// by *services.ContentService.
type SummaryLister interface {
	ListUserSummaries(ctx context.Context, userID uuid.UUID) ([]models.SourceSummary, error)
}

const (
	promptPreamble = "You are Kollektiv, an assistant that answers questions about the documentation " +
		"sources the user has loaded. When a question may be covered by a loaded source, call the " +
		"rag_search tool with a focused query before answering, and ground your answer in the " +
		"retrieved passages. If nothing relevant comes back, say so instead of guessing.\n\n" +
		"Loaded sources:\n"

	promptNoSources = "You are Kollektiv, an assistant that answers questions about documentation " +
		"sources. The user has not loaded any sources yet; tell them to add one before asking " +
		"content questions."

	ragResultFormat   = "Document's relevance score: %v:\nDocument text: %s:\n--------\n"
	ragResultsPreface = "Here is context retrieved for the query:\n\n"
	ragNoResults      = "No relevant documents were found for this query."

	multiQueryPrompt = "Generate %d alternative phrasings of the search query below. Keep each " +
		"phrasing self-contained and specific; vary the vocabulary and angle. Record them with the " +
		"multi_query_tool.\n\nQuery: %s"
)

// Assistant is the chat-facing model layer: it streams responses over a
// per-user system prompt built from source summaries, and executes the
// rag_search tool.
type Assistant struct {
	client          *Client
	retriever       Retriever
	summaries       SummaryLister
	multiQueryCount int
	retrieveTopN    int

	// Advertised on every chat turn.
	tools []ToolSpec

	mu      sync.RWMutex
	prompts map[uuid.UUID]string
}

// NewAssistant wires the assistant over the model client and retrieval path.
func NewAssistant(client *Client, retriever Retriever, summaries SummaryLister, cfg *config.ChatConfig) *Assistant {
	return &Assistant{
		client:          client,
		retriever:       retriever,
		summaries:       summaries,
		multiQueryCount: cfg.MultiQueryCount,
		retrieveTopN:    cfg.RetrieveTopN,
		tools:           []ToolSpec{ragSearchTool()},
		prompts:         make(map[uuid.UUID]string),
	}
}

// StreamResponse streams a model turn for the given history under the user's
// cached system prompt.
func (a *Assistant) StreamResponse(ctx context.Context, history *models.ConversationHistory) (<-chan StreamEvent, error) {
	system, err := a.SystemPrompt(ctx, history.UserID)
	if err != nil {
		return nil, err
	}
	return a.client.StreamResponse(ctx, StreamRequest{
		System:   system,
		Messages: history.Messages,
		Tools:    a.tools,
	})
}

// SystemPrompt returns the cached system prompt for the user, building it
// from the user's source summaries on first use.
func (a *Assistant) SystemPrompt(ctx context.Context, userID uuid.UUID) (string, error) {
	a.mu.RLock()
	prompt, ok := a.prompts[userID]
	a.mu.RUnlock()
	if ok {
		return prompt, nil
	}

	summaries, err := a.summaries.ListUserSummaries(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load source summaries: %w", err)
	}
	prompt = buildSystemPrompt(summaries)

	a.mu.Lock()
	a.prompts[userID] = prompt
	a.mu.Unlock()
	return prompt, nil
}

// InvalidateSystemPrompt drops the user's cached prompt so the next turn
// rebuilds it. Called after one of the user's sources finishes ingestion.
func (a *Assistant) InvalidateSystemPrompt(userID uuid.UUID) {
	a.mu.Lock()
	delete(a.prompts, userID)
	a.mu.Unlock()
}

func buildSystemPrompt(summaries []models.SourceSummary) string {
	if len(summaries) == 0 {
		return promptNoSources
	}
	var b strings.Builder
	b.WriteString(promptPreamble)
	for i, s := range summaries {
		fmt.Fprintf(&b, "\n%d. %s", i+1, s.Summary)
		if len(s.Keywords) > 0 {
			fmt.Fprintf(&b, "\n   Keywords: %s", strings.Join(s.Keywords, ", "))
		}
	}
	return b.String()
}

// HandleToolUse executes a tool call from the model and returns the result
// block to feed back. Model mistakes (unknown tool, missing query) come back
// as error-flagged results the model can recover from; system failures raise
// a NonRetryableError.
func (a *Assistant) HandleToolUse(ctx context.Context, block *models.ToolUseBlock, userID uuid.UUID) (*models.ToolResultBlock, error) {
	if block.Name != RagSearchToolName {
		return &models.ToolResultBlock{
			ToolUseID: block.ID,
			Content:   fmt.Sprintf("Unknown tool %q.", block.Name),
			IsError:   true,
		}, nil
	}
	query, _ := block.Input["rag_query"].(string)
	if strings.TrimSpace(query) == "" {
		return &models.ToolResultBlock{
			ToolUseID: block.ID,
			Content:   "rag_search requires a non-empty rag_query string.",
			IsError:   true,
		}, nil
	}

	expanded, err := a.GenerateMultiQuery(ctx, query, a.multiQueryCount)
	if err != nil {
		return nil, err
	}
	combined := append(expanded, query)

	results, err := a.retriever.Retrieve(ctx, query, combined, a.retrieveTopN, userID)
	if err != nil {
		return nil, &NonRetryableError{Op: RagSearchToolName, Err: err}
	}
	if len(results) == 0 {
		return &models.ToolResultBlock{ToolUseID: block.ID, Content: ragNoResults}, nil
	}

	var b strings.Builder
	b.WriteString(ragResultsPreface)
	for _, r := range results {
		fmt.Fprintf(&b, ragResultFormat, r.RelevanceScore, r.Text)
	}
	return &models.ToolResultBlock{ToolUseID: block.ID, Content: b.String()}, nil
}

// GenerateMultiQuery expands a search query into exactly n variants via a
// forced multi_query_tool completion. Short replies are padded with the
// original query.
func (a *Assistant) GenerateMultiQuery(ctx context.Context, query string, n int) ([]string, error) {
	raw, err := a.client.ForceTool(ctx, ToolCallRequest{
		Prompt: fmt.Sprintf(multiQueryPrompt, n, query),
		Tool:   multiQueryTool(),
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Queries *[]string `json:"queries"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &NonRetryableError{Op: multiQueryToolName, Err: fmt.Errorf("malformed tool input: %w", err)}
	}
	if parsed.Queries == nil {
		return nil, &NonRetryableError{Op: multiQueryToolName, Err: errors.New("tool input missing queries list")}
	}

	queries := *parsed.Queries
	if len(queries) > n {
		queries = queries[:n]
	}
	for len(queries) < n {
		queries = append(queries, query)
	}
	slog.Debug("Multi-query expansion generated", "query", query, "variants", len(queries))
	return queries, nil
}
