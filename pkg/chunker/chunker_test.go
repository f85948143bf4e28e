package chunker

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// wordTokenizer counts whitespace-separated words, so tests control token
// budgets through word counts instead of BPE tables.
type wordTokenizer struct {
	mu    sync.Mutex
	words []string
	ids   map[string]int
}

func newWordTokenizer() *wordTokenizer {
	return &wordTokenizer{ids: map[string]int{}}
}

func (t *wordTokenizer) Count(text string) int {
	return len(strings.Fields(text))
}

func (t *wordTokenizer) Encode(text string) []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []int
	for _, w := range strings.Fields(text) {
		id, ok := t.ids[w]
		if !ok {
			id = len(t.words)
			t.words = append(t.words, w)
			t.ids[w] = id
		}
		out = append(out, id)
	}
	return out
}

func (t *wordTokenizer) Decode(ids []int) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	words := make([]string, len(ids))
	for i, id := range ids {
		words[i] = t.words[id]
	}
	return strings.Join(words, " ")
}

func testDoc(content, title string) models.Document {
	return models.Document{
		ID:       uuid.New(),
		SourceID: uuid.New(),
		Content:  content,
		Metadata: models.DocumentMetadata{
			Title:     title,
			SourceURL: "https://docs.example.com/page",
		},
	}
}

// numberedWords returns count words with the given prefix, space separated.
func numberedWords(prefix string, count int) string {
	words := make([]string, count)
	for i := range words {
		words[i] = fmt.Sprintf("%s%03d", prefix, i)
	}
	return strings.Join(words, " ")
}

func noOverlap(cfg Config) Config {
	cfg.OverlapPercent = 0
	cfg.MinOverlap = 0
	cfg.MaxOverlap = 0
	return cfg
}

func TestChunkDocumentPreservesCodeFence(t *testing.T) {
	cfg := noOverlap(Config{MaxTokens: 100, SoftTokenLimit: 5, MinChunkSize: 0})
	c := New(newWordTokenizer(), cfg)

	doc := testDoc("# T\ntext\n```py\nfor i in range(10_000): pass\n```\nmore", "")

	chunks, err := c.ChunkDocument(doc)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	assert.Equal(t, "text", chunks[0].Text)
	assert.Equal(t, 2, strings.Count(chunks[1].Text, "```"))
	assert.Contains(t, chunks[1].Text, "for i in range(10_000): pass")
	assert.Equal(t, "more", chunks[2].Text)

	for _, chunk := range chunks {
		assert.Equal(t, "T", chunk.Headers.H1)
		assert.Zero(t, strings.Count(chunk.Text, "```")%2)
		assert.Equal(t, doc.ID, chunk.DocumentID)
		assert.Equal(t, doc.SourceID, chunk.SourceID)
	}
}

func TestChunkDocumentMergesTinyTrailingChunk(t *testing.T) {
	c := New(newWordTokenizer(), DefaultConfig())

	big := numberedWords("w", 600)
	tiny := numberedWords("t", 30)
	doc := testDoc("# Guide\n"+big+"\n"+tiny, "Guide")

	chunks, err := c.ChunkDocument(doc)
	require.NoError(t, err)
	require.Len(t, chunks, 1)

	assert.Equal(t, 630, chunks[0].TokenCount)
	assert.LessOrEqual(t, chunks[0].TokenCount, 2*DefaultConfig().MaxTokens)
	assert.Contains(t, chunks[0].Text, "w000")
	assert.Contains(t, chunks[0].Text, "t029")
}

func TestSplitSectionsTracksHeaderPath(t *testing.T) {
	content := strings.Join([]string{
		"# A",
		"intro",
		"## B",
		"under b",
		"### C",
		"under c",
		"```",
		"# not a header",
		"```",
		"## D",
		"under d",
	}, "\n")

	sections, unclosed := splitSections(content)
	require.False(t, unclosed)
	require.Len(t, sections, 4)

	assert.Equal(t, models.ChunkHeaders{H1: "A"}, sections[0].Headers)
	assert.Equal(t, models.ChunkHeaders{H1: "A", H2: "B"}, sections[1].Headers)
	assert.Equal(t, models.ChunkHeaders{H1: "A", H2: "B", H3: "C"}, sections[2].Headers)
	assert.Equal(t, models.ChunkHeaders{H1: "A", H2: "D"}, sections[3].Headers)

	assert.Contains(t, sections[2].Lines, "# not a header")
}

func TestSplitSectionsReportsUnclosedFence(t *testing.T) {
	sections, unclosed := splitSections("# A\n```\ncode without end")
	assert.True(t, unclosed)
	require.Len(t, sections, 1)
	assert.Contains(t, sections[0].Lines, "code without end")
}

func TestPreprocess(t *testing.T) {
	content := strings.Join([]string{
		"Intro with ![logo](https://cdn.example.com/logo.png) image.",
		"<img src=\"banner.png\" alt=\"banner\">",
		"Reference ![icon][icon-ref] usage.",
		"[icon-ref]: https://cdn.example.com/icon.svg",
		"Search...",
		"Ctrl K",
		"[Previous](https://docs.example.com/intro)",
		"---",
		"",
		"",
		"",
		"Use `go build` to compile.",
		"```",
		"--- keep this `literal` line",
		"```",
	}, "\n")

	got := preprocess(content)

	assert.NotContains(t, got, "logo.png")
	assert.NotContains(t, got, "banner.png")
	assert.NotContains(t, got, "icon-ref")
	assert.NotContains(t, got, "Search...")
	assert.NotContains(t, got, "Ctrl K")
	assert.NotContains(t, got, "Previous")
	assert.NotContains(t, got, "\n\n\n")
	assert.Contains(t, got, "<code>go build</code>")
	assert.Contains(t, got, "--- keep this `literal` line")
}

func TestPreprocessDropsHorizontalRules(t *testing.T) {
	for _, rule := range []string{"---", "***", "___", "- - -", "* * *", "  ----  "} {
		got := preprocess("before\n" + rule + "\nafter")
		assert.Equal(t, "before\nafter", got, "rule %q should be dropped", rule)
	}

	// Not rules: mixed characters, too few, or trailing prose.
	for _, line := range []string{"-*-", "--", "--- hr ---", "a---b"} {
		got := preprocess("before\n" + line + "\nafter")
		assert.Contains(t, got, line)
	}
}

func TestChunkDocumentEmpty(t *testing.T) {
	c := New(newWordTokenizer(), DefaultConfig())

	_, err := c.ChunkDocument(testDoc("", "Empty"))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = c.ChunkDocument(testDoc("   \n\n  ", "Blank"))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	// Nothing left once the image is stripped.
	_, err = c.ChunkDocument(testDoc("![only](https://cdn.example.com/x.png)", "Image"))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestChunkDocumentH1Fallback(t *testing.T) {
	c := New(newWordTokenizer(), noOverlap(DefaultConfig()))

	chunks, err := c.ChunkDocument(testDoc("plain text with no headers", "Install Guide"))
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Install Guide", chunks[0].Headers.H1)
	assert.True(t, strings.HasPrefix(chunks[0].Content, "# Install Guide\n"))

	chunks, err = c.ChunkDocument(testDoc("plain text with no headers", ""))
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Untitled", chunks[0].Headers.H1)
}

func TestChunkDocumentForceSplitsGiantLine(t *testing.T) {
	cfg := noOverlap(Config{MaxTokens: 10, SoftTokenLimit: 8, MinChunkSize: 0})
	c := New(newWordTokenizer(), cfg)

	doc := testDoc(numberedWords("g", 50), "Giant")

	chunks, err := c.ChunkDocument(doc)
	require.NoError(t, err)
	require.Len(t, chunks, 5)

	var rejoined []string
	for _, chunk := range chunks {
		assert.LessOrEqual(t, chunk.TokenCount, cfg.MaxTokens)
		rejoined = append(rejoined, chunk.Text)
	}
	assert.Equal(t, numberedWords("g", 50), strings.Join(rejoined, " "))
}

func TestChunkDocumentSplitsOversizeCodeBlock(t *testing.T) {
	cfg := noOverlap(Config{MaxTokens: 10, SoftTokenLimit: 8, MinChunkSize: 0})
	c := New(newWordTokenizer(), cfg)

	var lines []string
	lines = append(lines, "```py")
	for group := 0; group < 4; group++ {
		lines = append(lines,
			numberedWords(fmt.Sprintf("a%d", group), 5),
			numberedWords(fmt.Sprintf("b%d", group), 5),
			"",
		)
	}
	lines = append(lines, "```")
	doc := testDoc(strings.Join(lines, "\n"), "Code")

	chunks, err := c.ChunkDocument(doc)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	var all string
	for _, chunk := range chunks {
		assert.Zero(t, strings.Count(chunk.Text, "```")%2)
		assert.True(t, strings.HasPrefix(chunk.Text, "```py\n"))
		assert.True(t, strings.HasSuffix(chunk.Text, "\n```"))
		// A split block loses the atomic allowance: fragments obey the
		// ordinary per-chunk bound.
		assert.LessOrEqual(t, chunk.TokenCount, cfg.MaxTokens)
		all += chunk.Text + "\n"
	}
	for group := 0; group < 4; group++ {
		assert.Contains(t, all, fmt.Sprintf("a%d000", group))
		assert.Contains(t, all, fmt.Sprintf("b%d000", group))
	}
}

func TestChunkDocumentOverlap(t *testing.T) {
	first := numberedWords("p", 12)
	second := numberedWords("q", 12)
	doc := testDoc(first+"\n\n"+second, "Overlap")

	t.Run("prepends predecessor tail", func(t *testing.T) {
		cfg := Config{
			MaxTokens:      50,
			SoftTokenLimit: 10,
			MinChunkSize:   0,
			OverlapPercent: 0.5,
			MinOverlap:     2,
			MaxOverlap:     3,
		}
		c := New(newWordTokenizer(), cfg)

		chunks, err := c.ChunkDocument(doc)
		require.NoError(t, err)
		require.Len(t, chunks, 2)

		assert.Equal(t, first, chunks[0].Text)
		assert.True(t, strings.HasPrefix(chunks[1].Text, "p009 p010 p011\n"))
		assert.Equal(t, 15, chunks[1].TokenCount)
	})

	t.Run("suppressed when chunk is at the bound", func(t *testing.T) {
		cfg := Config{
			MaxTokens:      12,
			SoftTokenLimit: 10,
			MinChunkSize:   0,
			OverlapPercent: 0.5,
			MinOverlap:     2,
			MaxOverlap:     3,
		}
		c := New(newWordTokenizer(), cfg)

		chunks, err := c.ChunkDocument(doc)
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, second, chunks[1].Text)
	})
}

func TestChunkDocumentDeterministic(t *testing.T) {
	cfg := Config{
		MaxTokens:      40,
		SoftTokenLimit: 25,
		MinChunkSize:   8,
		OverlapPercent: 0.05,
		MinOverlap:     2,
		MaxOverlap:     4,
	}

	content := strings.Join([]string{
		"# Reference",
		numberedWords("intro", 30),
		"## Setup",
		numberedWords("setup", 40),
		"```sh",
		numberedWords("cmd", 12),
		"```",
		"### Flags",
		numberedWords("flags", 6),
	}, "\n")
	doc := testDoc(content, "Reference")

	a, err := New(newWordTokenizer(), cfg).ChunkDocument(doc)
	require.NoError(t, err)
	b, err := New(newWordTokenizer(), cfg).ChunkDocument(doc)
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Text, b[i].Text)
		assert.Equal(t, a[i].Content, b[i].Content)
		assert.Equal(t, a[i].Headers, b[i].Headers)
		assert.Equal(t, a[i].TokenCount, b[i].TokenCount)
	}
}
