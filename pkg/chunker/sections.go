package chunker

import (
	"regexp"
	"strings"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// headerPattern matches ATX headers up to level 3. Deeper levels are treated
// as content.
var headerPattern = regexp.MustCompile(`^(#{1,3})\s+(.+?)\s*$`)

// Section is a contiguous region of a document under one header path. The
// header lines themselves are carried in Headers, not in Lines.
type Section struct {
	Headers models.ChunkHeaders
	Lines   []string
}

// fenceTracker follows fenced code block state across a line walk. A block
// opens with at least three backticks or tildes and closes with a fence of
// the same character at least as long.
type fenceTracker struct {
	open   bool
	marker byte
	length int
}

// observe reports whether line is a fence delimiter, updating the open state.
func (f *fenceTracker) observe(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return false
	}
	var marker byte
	switch {
	case strings.HasPrefix(trimmed, "```"):
		marker = '`'
	case strings.HasPrefix(trimmed, "~~~"):
		marker = '~'
	default:
		return false
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == marker {
		n++
	}
	if !f.open {
		// Backticks in the info string mean inline code, not a fence.
		if marker == '`' && strings.ContainsRune(trimmed[n:], '`') {
			return false
		}
		f.open, f.marker, f.length = true, marker, n
		return true
	}
	if marker == f.marker && n >= f.length && strings.TrimSpace(trimmed[n:]) == "" {
		f.open = false
		return true
	}
	return false
}

// splitSections walks the document tracking code block state and starts a new
// section at every h1/h2/h3 outside a fence. Header parents carry forward and
// children reset deeper levels. The returned flag reports an unclosed fence
// at end of input.
func splitSections(content string) ([]Section, bool) {
	var sections []Section
	var fences fenceTracker
	current := Section{}

	flush := func() {
		if current.Headers != (models.ChunkHeaders{}) || sectionHasContent(current) {
			sections = append(sections, current)
		}
	}

	for _, line := range strings.Split(content, "\n") {
		if fences.observe(line) || fences.open {
			current.Lines = append(current.Lines, line)
			continue
		}
		m := headerPattern.FindStringSubmatch(line)
		if m == nil {
			current.Lines = append(current.Lines, line)
			continue
		}
		flush()
		headers := current.Headers
		switch len(m[1]) {
		case 1:
			headers = models.ChunkHeaders{H1: m[2]}
		case 2:
			headers.H2, headers.H3 = m[2], ""
		case 3:
			headers.H3 = m[2]
		}
		current = Section{Headers: headers}
	}
	flush()
	return sections, fences.open
}

func sectionHasContent(sec Section) bool {
	for _, line := range sec.Lines {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}
