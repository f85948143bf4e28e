// Package summarizer produces the LLM-authored summary of a crawled source
// from a sample of its documents.
package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/pkg/llm"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

const (
	summaryToolName = "summary_tool"

	// defaultSampleSize bounds how many documents contribute content
	// excerpts to the prompt.
	defaultSampleSize = 5

	// contentSampleRunes is the excerpt length taken from each sampled
	// document.
	contentSampleRunes = 500

	// maxListedValues bounds the URL and title lists in the prompt.
	maxListedValues = 10
)

// SummaryStore persists generated summaries. Satisfied by
// *services.ContentService.
type SummaryStore interface {
	SaveSummary(ctx context.Context, summary models.SourceSummary) (models.SourceSummary, error)
}

// Generator condenses a source's documents into a stored summary through a
// single forced summary_tool completion.
type Generator struct {
	client     *llm.Client
	store      SummaryStore
	sampleSize int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator over the model client and summary store.
func NewGenerator(client *llm.Client, store SummaryStore) *Generator {
	return &Generator{
		client:     client,
		store:      store,
		sampleSize: defaultSampleSize,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Generate summarizes the source's documents and persists the result. A
// reply without the summary tool use, or with input that does not parse,
// is a NonRetryableError.
func (g *Generator) Generate(ctx context.Context, sourceID uuid.UUID, docs []models.Document) (models.SourceSummary, error) {
	if len(docs) == 0 {
		return models.SourceSummary{}, &llm.NonRetryableError{
			Op:  summaryToolName,
			Err: errors.New("no documents to summarize"),
		}
	}

	raw, err := g.client.ForceTool(ctx, llm.ToolCallRequest{
		Prompt: g.buildPrompt(docs),
		Tool:   summaryTool(),
	})
	if err != nil {
		return models.SourceSummary{}, err
	}

	var parsed struct {
		Summary  string   `json:"summary"`
		Keywords []string `json:"keywords"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return models.SourceSummary{}, &llm.NonRetryableError{
			Op:  summaryToolName,
			Err: fmt.Errorf("malformed tool input: %w", err),
		}
	}
	if strings.TrimSpace(parsed.Summary) == "" {
		return models.SourceSummary{}, &llm.NonRetryableError{
			Op:  summaryToolName,
			Err: errors.New("tool input missing summary"),
		}
	}

	saved, err := g.store.SaveSummary(ctx, models.SourceSummary{
		SourceID: sourceID,
		Summary:  parsed.Summary,
		Keywords: parsed.Keywords,
	})
	if err != nil {
		return models.SourceSummary{}, fmt.Errorf("save summary: %w", err)
	}

	slog.Info("Source summary generated",
		"source_id", sourceID,
		"documents", len(docs),
		"keywords", len(saved.Keywords))
	return saved, nil
}

// buildPrompt assembles the page counts, URL and title samples, and content
// excerpts the model summarizes from.
func (g *Generator) buildPrompt(docs []models.Document) string {
	urls := uniqueValues(docs, func(d models.Document) string { return d.Metadata.SourceURL })
	titles := uniqueValues(docs, func(d models.Document) string { return d.Metadata.Title })
	sampled := g.sampleDocuments(docs)

	var b strings.Builder
	b.WriteString("You are analyzing a crawled documentation source to write its catalogue entry.\n\n")
	fmt.Fprintf(&b, "The crawl produced %d pages across %d unique URLs and %d unique titles.\n",
		len(docs), len(urls), len(titles))

	if len(urls) > 0 {
		b.WriteString("\nSample URLs:\n")
		for _, u := range head(urls, maxListedValues) {
			fmt.Fprintf(&b, "- %s\n", u)
		}
	}
	if len(titles) > 0 {
		b.WriteString("\nSample titles:\n")
		for _, title := range head(titles, maxListedValues) {
			fmt.Fprintf(&b, "- %s\n", title)
		}
	}

	b.WriteString("\nContent samples:\n")
	for i, doc := range sampled {
		label := doc.Metadata.Title
		if label == "" {
			label = doc.Metadata.SourceURL
		}
		fmt.Fprintf(&b, "\n--- Sample %d: %s ---\n%s\n", i+1, label, contentSample(doc.Content))
	}

	b.WriteString("\nRecord a 2-3 sentence summary of what this source covers and 5-10 topical keywords with the summary_tool.")
	return b.String()
}

// sampleDocuments picks up to sampleSize documents at random, keeping crawl
// order among the picks.
func (g *Generator) sampleDocuments(docs []models.Document) []models.Document {
	if len(docs) <= g.sampleSize {
		return docs
	}
	g.mu.Lock()
	perm := g.rng.Perm(len(docs))
	g.mu.Unlock()

	idx := perm[:g.sampleSize]
	sort.Ints(idx)
	sampled := make([]models.Document, len(idx))
	for i, j := range idx {
		sampled[i] = docs[j]
	}
	return sampled
}

// contentSample trims a page body for the prompt, cutting on runes so UTF-8
// text stays valid.
func contentSample(content string) string {
	content = strings.TrimSpace(content)
	runes := []rune(content)
	if len(runes) <= contentSampleRunes {
		return content
	}
	return string(runes[:contentSampleRunes])
}

// uniqueValues collects the distinct non-empty values of one metadata field
// in first-seen order.
func uniqueValues(docs []models.Document, field func(models.Document) string) []string {
	seen := make(map[string]struct{}, len(docs))
	var out []string
	for _, d := range docs {
		v := field(d)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func head(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

func summaryTool() llm.ToolSpec {
	return llm.ToolSpec{
		Name:        summaryToolName,
		Description: "Record the summary and keywords for a documentation source.",
		Properties: map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two to three sentences describing what the source covers.",
			},
			"keywords": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Five to ten topical keywords.",
			},
		},
		Required: []string{"summary", "keywords"},
	}
}
