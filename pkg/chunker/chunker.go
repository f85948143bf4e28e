// Package chunker deterministically splits markdown documents into
// token-bounded chunks that preserve document structure. Fenced code blocks
// are never split open, every chunk carries its h1/h2/h3 header path, and
// chunk order follows document order.
package chunker

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/tokenizer"
)

// ErrEmptyDocument reports a document with no usable content. Callers skip
// the document and continue.
var ErrEmptyDocument = errors.New("chunker: document has no content")

// Config holds the token budgets driving chunk boundaries.
type Config struct {
	// MaxTokens is the hard upper bound per chunk. It may be exceeded only
	// by atomic code blocks that cannot be split further.
	MaxTokens int
	// SoftTokenLimit is the preferred ceiling during line accumulation.
	SoftTokenLimit int
	// MinChunkSize marks chunks below it as merge candidates.
	MinChunkSize int
	// OverlapPercent of the predecessor's tokens is prepended to each chunk,
	// clamped to [MinOverlap, MaxOverlap].
	OverlapPercent float64
	MinOverlap     int
	MaxOverlap     int
}

// DefaultConfig returns the fixed production budgets.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      512,
		SoftTokenLimit: 400,
		MinChunkSize:   100,
		OverlapPercent: 0.05,
		MinOverlap:     50,
		MaxOverlap:     100,
	}
}

// Chunker splits documents. It is stateless and safe for concurrent use.
type Chunker struct {
	cfg Config
	tok tokenizer.Tokenizer
}

func New(tok tokenizer.Tokenizer, cfg Config) *Chunker {
	return &Chunker{cfg: cfg, tok: tok}
}

// rawChunk is a chunk under construction, before overlap and assembly.
type rawChunk struct {
	headers models.ChunkHeaders
	lines   []string
	tokens  int
}

// ChunkDocument splits one document. The same input always yields the same
// chunk sequence.
func (c *Chunker) ChunkDocument(doc models.Document) ([]models.Chunk, error) {
	if strings.TrimSpace(doc.Content) == "" {
		return nil, ErrEmptyDocument
	}
	cleaned := preprocess(doc.Content)
	if cleaned == "" {
		return nil, ErrEmptyDocument
	}

	sections, unclosed := splitSections(cleaned)
	if unclosed {
		slog.Warn("Unclosed code block in document",
			"document_id", doc.ID,
			"source_url", doc.Metadata.SourceURL)
	}

	var raw []rawChunk
	for _, sec := range sections {
		raw = append(raw, c.chunkSection(sec)...)
	}
	raw = c.adjustChunks(raw)
	raw = c.splitOversize(raw)
	return c.finalize(doc, raw), nil
}

// chunkSection accumulates lines against the soft limit, keeping fenced code
// blocks atomic and force-splitting single lines that exceed the hard bound.
func (c *Chunker) chunkSection(sec Section) []rawChunk {
	hard := 2 * c.cfg.MaxTokens
	var chunks []rawChunk
	current := rawChunk{headers: sec.Headers}

	flush := func() {
		if strings.TrimSpace(strings.Join(current.lines, "\n")) != "" {
			for n := len(current.lines); n > 0 && strings.TrimSpace(current.lines[n-1]) == ""; n = len(current.lines) {
				current.lines = current.lines[:n-1]
			}
			chunks = append(chunks, current)
		}
		current = rawChunk{headers: sec.Headers}
	}

	lines := sec.Lines
	for i := 0; i < len(lines); i++ {
		var fences fenceTracker
		if fences.observe(lines[i]) {
			block := []string{lines[i]}
			j := i + 1
			for ; j < len(lines); j++ {
				block = append(block, lines[j])
				if fences.observe(lines[j]) && !fences.open {
					break
				}
			}
			i = j

			blockTokens := c.countLines(block)
			if blockTokens > hard {
				flush()
				chunks = append(chunks, c.splitCodeBlock(block, sec.Headers)...)
				continue
			}
			if current.tokens+blockTokens > c.cfg.SoftTokenLimit && current.tokens > 0 {
				flush()
			}
			current.lines = append(current.lines, block...)
			current.tokens += blockTokens
			continue
		}

		lineTokens := c.tok.Count(lines[i] + "\n")
		if lineTokens > hard {
			flush()
			chunks = append(chunks, c.forceSplitLine(lines[i], sec.Headers)...)
			continue
		}
		if current.tokens+lineTokens > c.cfg.SoftTokenLimit && current.tokens > 0 {
			flush()
		}
		// Chunks never open on a blank line.
		if len(current.lines) == 0 && strings.TrimSpace(lines[i]) == "" {
			continue
		}
		current.lines = append(current.lines, lines[i])
		current.tokens += lineTokens
	}
	flush()
	return chunks
}

// codeSeparatorPattern marks code lines where a split reads naturally: blank
// lines, comments, definition starts, and closing braces.
var codeSeparatorPattern = regexp.MustCompile(`^\s*(?:$|#|//|def\b|class\b|\}|/\*)`)

// splitCodeBlock splits an oversized fenced block at logical separators,
// wrapping every fragment in matching fences so no chunk contains an odd
// number of fence lines.
func (c *Chunker) splitCodeBlock(block []string, headers models.ChunkHeaders) []rawChunk {
	opening := block[0]
	closing := closingFence(opening)

	var probe fenceTracker
	closed := false
	for idx, line := range block {
		if probe.observe(line) && idx > 0 && !probe.open {
			closed = true
		}
	}
	interior := block[1:]
	if closed {
		interior = block[1 : len(block)-1]
	}

	// Only an atomic block may reach 2*MaxTokens; once a block is split,
	// each fenced fragment has to fit the ordinary chunk bound.
	overhead := c.tok.Count(opening+"\n") + c.tok.Count(closing+"\n")
	budget := c.cfg.MaxTokens - overhead
	if budget < 1 {
		budget = 1
	}

	var fragments [][]string
	var buf []string
	bufTokens := 0
	lastSep := -1
	for _, line := range interior {
		lineTokens := c.tok.Count(line + "\n")
		if bufTokens+lineTokens > budget && len(buf) > 0 {
			cut := len(buf)
			if lastSep >= 0 {
				cut = lastSep + 1
			}
			fragments = append(fragments, buf[:cut:cut])
			buf = append([]string{}, buf[cut:]...)
			bufTokens = c.countLines(buf)
			lastSep = -1
			for idx, kept := range buf {
				if codeSeparatorPattern.MatchString(kept) {
					lastSep = idx
				}
			}
		}
		if codeSeparatorPattern.MatchString(line) {
			lastSep = len(buf)
		}
		buf = append(buf, line)
		bufTokens += lineTokens
	}
	if len(buf) > 0 {
		fragments = append(fragments, buf)
	}

	chunks := make([]rawChunk, 0, len(fragments))
	for _, fragment := range fragments {
		lines := make([]string, 0, len(fragment)+2)
		lines = append(lines, opening)
		lines = append(lines, fragment...)
		lines = append(lines, closing)
		chunks = append(chunks, rawChunk{headers: headers, lines: lines, tokens: c.countLines(lines)})
	}
	return chunks
}

// closingFence derives the matching closing delimiter from an opening fence
// line, dropping any info string.
func closingFence(opening string) string {
	trimmed := strings.TrimLeft(opening, " ")
	marker := trimmed[0]
	n := 0
	for n < len(trimmed) && trimmed[n] == marker {
		n++
	}
	return trimmed[:n]
}

// forceSplitLine cuts a single line that exceeds the hard bound into
// MaxTokens-sized pieces by token count.
func (c *Chunker) forceSplitLine(line string, headers models.ChunkHeaders) []rawChunk {
	ids := c.tok.Encode(line)
	var chunks []rawChunk
	for start := 0; start < len(ids); start += c.cfg.MaxTokens {
		end := min(start+c.cfg.MaxTokens, len(ids))
		piece := c.tok.Decode(ids[start:end])
		chunks = append(chunks, rawChunk{
			headers: headers,
			lines:   []string{piece},
			tokens:  c.tok.Count(piece + "\n"),
		})
	}
	return chunks
}

// adjustChunks merges below-minimum chunks, successor first and predecessor
// second, as long as the merged size stays within the hard bound. Merged
// chunks union their header paths.
func (c *Chunker) adjustChunks(chunks []rawChunk) []rawChunk {
	hard := 2 * c.cfg.MaxTokens
	var out []rawChunk
	for i := 0; i < len(chunks); i++ {
		cur := chunks[i]
		if cur.tokens < c.cfg.MinChunkSize {
			if i+1 < len(chunks) && cur.tokens+chunks[i+1].tokens <= hard {
				out = append(out, mergeChunks(cur, chunks[i+1]))
				i++
				continue
			}
			if len(out) > 0 && out[len(out)-1].tokens+cur.tokens <= hard {
				out[len(out)-1] = mergeChunks(out[len(out)-1], cur)
				continue
			}
		}
		out = append(out, cur)
	}
	return out
}

func mergeChunks(a, b rawChunk) rawChunk {
	lines := make([]string, 0, len(a.lines)+len(b.lines))
	lines = append(lines, a.lines...)
	lines = append(lines, b.lines...)
	return rawChunk{
		headers: a.headers.Merge(b.headers),
		lines:   lines,
		tokens:  a.tokens + b.tokens,
	}
}

// splitOversize is the final bound check: any chunk still over the hard limit
// is cut at line boundaries. Chunks containing fences are left intact even
// when oversized, since an irreducible code block may legitimately exceed the
// bound.
func (c *Chunker) splitOversize(chunks []rawChunk) []rawChunk {
	hard := 2 * c.cfg.MaxTokens
	var out []rawChunk
	for _, ch := range chunks {
		if ch.tokens <= hard || containsFence(ch.lines) {
			out = append(out, ch)
			continue
		}
		current := rawChunk{headers: ch.headers}
		for _, line := range ch.lines {
			lineTokens := c.tok.Count(line + "\n")
			if current.tokens+lineTokens > hard && len(current.lines) > 0 {
				out = append(out, current)
				current = rawChunk{headers: ch.headers}
			}
			current.lines = append(current.lines, line)
			current.tokens += lineTokens
		}
		if len(current.lines) > 0 {
			out = append(out, current)
		}
	}
	return out
}

func containsFence(lines []string) bool {
	var fences fenceTracker
	for _, line := range lines {
		if fences.observe(line) {
			return true
		}
	}
	return false
}

// finalize applies the h1 fallback, prepends predecessor overlap, and
// assembles the content field used for embedding. Overlap is always taken
// from the predecessor's original text so it never compounds across chunks.
func (c *Chunker) finalize(doc models.Document, raw []rawChunk) []models.Chunk {
	texts := make([]string, len(raw))
	counts := make([]int, len(raw))
	for i, ch := range raw {
		texts[i] = strings.Join(ch.lines, "\n")
		counts[i] = c.tok.Count(texts[i])
	}

	chunks := make([]models.Chunk, 0, len(raw))
	for i := range raw {
		headers := raw[i].headers
		if headers.H1 == "" {
			headers.H1 = doc.Metadata.Title
		}
		if headers.H1 == "" {
			headers.H1 = "Untitled"
		}

		text := texts[i]
		if i > 0 {
			if tail := c.overlapTail(texts[i-1], counts[i-1], counts[i]); tail != "" {
				text = tail + "\n" + text
			}
		}

		chunks = append(chunks, models.Chunk{
			ID:         uuid.New(),
			SourceID:   doc.SourceID,
			DocumentID: doc.ID,
			Headers:    headers,
			Text:       text,
			Content:    assembleContent(headers, text),
			TokenCount: c.tok.Count(text),
			PageTitle:  doc.Metadata.Title,
			PageURL:    doc.Metadata.SourceURL,
		})
	}
	return chunks
}

// overlapTail returns the last overlap tokens of the predecessor, where
// overlap is OverlapPercent of the predecessor clamped to
// [MinOverlap, MaxOverlap] and further clamped so the receiving chunk stays
// within MaxTokens.
func (c *Chunker) overlapTail(prev string, prevTokens, curTokens int) string {
	overlap := clamp(int(float64(prevTokens)*c.cfg.OverlapPercent), c.cfg.MinOverlap, c.cfg.MaxOverlap)
	if room := c.cfg.MaxTokens - curTokens; overlap > room {
		overlap = room
	}
	if overlap <= 0 {
		return ""
	}
	ids := c.tok.Encode(prev)
	if overlap >= len(ids) {
		return prev
	}
	return c.tok.Decode(ids[len(ids)-overlap:])
}

func (c *Chunker) countLines(lines []string) int {
	total := 0
	for _, line := range lines {
		total += c.tok.Count(line + "\n")
	}
	return total
}

func assembleContent(headers models.ChunkHeaders, text string) string {
	var b strings.Builder
	if headers.H1 != "" {
		b.WriteString("# " + headers.H1 + "\n")
	}
	if headers.H2 != "" {
		b.WriteString("## " + headers.H2 + "\n")
	}
	if headers.H3 != "" {
		b.WriteString("### " + headers.H3 + "\n")
	}
	b.WriteString("\n")
	b.WriteString(text)
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
