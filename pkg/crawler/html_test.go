package crawler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Retry Guide</title></head>
<body>
<nav><a href="/">Home</a> <a href="/docs">Docs</a></nav>
<article>
<h1>Configuring Retries</h1>
<p>Transient failures are retried with exponential backoff. The initial delay doubles
after every failed attempt until the configured ceiling is reached, after which the
delay stays constant until the attempt budget runs out.</p>
<p>Rate limited responses carry a Retry-After header. When the header is present its
value takes precedence over the computed backoff, so the client never calls back
earlier than the server asked it to.</p>
<p>Submission errors other than rate limiting and server failures are not retried.
They indicate a problem with the request itself and surface to the caller
immediately instead of burning through the retry budget.</p>
</article>
<footer>Copyright</footer>
</body>
</html>`

func TestMarkdownFromHTML(t *testing.T) {
	md, err := markdownFromHTML(articleHTML, "https://docs.example.com/retries")
	require.NoError(t, err)

	assert.Contains(t, md, "exponential backoff")
	assert.Contains(t, md, "Retry-After")
	assert.NotContains(t, md, "<p>")
}

func TestDocumentFromPageFallsBackToHTML(t *testing.T) {
	sourceID := uuid.New()

	page := Page{
		HTML: articleHTML,
		Metadata: PageMetadata{
			Title:     "Retry Guide",
			SourceURL: "https://docs.example.com/retries",
		},
	}

	doc := documentFromPage(sourceID, page)
	assert.Equal(t, sourceID, doc.SourceID)
	assert.Equal(t, "Retry Guide", doc.Metadata.Title)
	assert.Contains(t, doc.Content, "exponential backoff")
}

func TestDocumentFromPagePrefersMarkdown(t *testing.T) {
	page := Page{
		Markdown: "# Already Markdown",
		HTML:     articleHTML,
	}

	doc := documentFromPage(uuid.New(), page)
	assert.Equal(t, "# Already Markdown", doc.Content)
}

func TestDocumentFromPageEmpty(t *testing.T) {
	doc := documentFromPage(uuid.New(), Page{})
	assert.Empty(t, doc.Content)
}
