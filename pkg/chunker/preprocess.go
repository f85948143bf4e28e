package chunker

import (
	"regexp"
	"strings"
)

var (
	// Image syntax in all the forms crawled markdown carries it: inline
	// (including base64 data URIs), reference-style usage, reference
	// definitions pointing at image targets, and raw HTML tags.
	inlineImagePattern     = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	referenceImagePattern  = regexp.MustCompile(`!\[[^\]]*\]\[[^\]]*\]`)
	imageDefinitionPattern = regexp.MustCompile(`(?mi)^\s*\[[^\]]+\]:\s*(?:data:image/|\S+\.(?:png|jpe?g|gif|svg|webp|ico))\S*\s*$`)
	htmlImagePattern       = regexp.MustCompile(`(?is)<img[^>]*?>`)

	// One alternation per rule character; RE2 has no backreferences.
	horizontalRulePattern = regexp.MustCompile(`^\s{0,3}(?:(?:\*\s*){3,}|(?:_\s*){3,}|(?:-\s*){3,})$`)
	inlineCodePattern     = regexp.MustCompile("`([^`\n]+)`")
	blankRunPattern       = regexp.MustCompile(`\n{3,}`)
)

// boilerplatePatterns match full lines of site chrome that crawlers pick up
// from documentation pages.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*search(\.{3}|…)?\s*$`),
	regexp.MustCompile(`(?i)^\s*(ctrl|cmd|⌘)\s*\+?\s*k\s*$`),
	regexp.MustCompile(`(?i)^\s*skip to (main )?content\s*$`),
	regexp.MustCompile(`(?i)^\s*(on this page|table of contents)\s*$`),
	regexp.MustCompile(`(?i)^\s*was this page helpful\??\s*$`),
	regexp.MustCompile(`(?i)^\s*(english|español|français|deutsch|português|日本語|简体中文|繁體中文|한국어)\s*$`),
	regexp.MustCompile(`(?i)^\s*\[(previous|next|home|back|docs|documentation|github)\]\([^)]*\)\s*$`),
}

// preprocess strips images and site chrome from crawled markdown and
// normalises blank runs, leaving fenced code blocks untouched by the
// line-level filters. Inline code spans are rewritten to HTML so that
// backticks inside prose are never mistaken for fence delimiters later.
func preprocess(content string) string {
	content = inlineImagePattern.ReplaceAllString(content, "")
	content = referenceImagePattern.ReplaceAllString(content, "")
	content = imageDefinitionPattern.ReplaceAllString(content, "")
	content = htmlImagePattern.ReplaceAllString(content, "")

	var out []string
	var fences fenceTracker
	for _, line := range strings.Split(content, "\n") {
		if fences.observe(line) || fences.open {
			out = append(out, line)
			continue
		}
		if horizontalRulePattern.MatchString(line) || isBoilerplate(line) {
			continue
		}
		out = append(out, inlineCodePattern.ReplaceAllString(line, "<code>$1</code>"))
	}

	joined := strings.Join(out, "\n")
	return strings.TrimSpace(blankRunPattern.ReplaceAllString(joined, "\n\n"))
}

func isBoilerplate(line string) bool {
	for _, p := range boilerplatePatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}
