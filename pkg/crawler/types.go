package crawler

// crawlRequest is the firecrawl v1 crawl submission payload.
type crawlRequest struct {
	URL           string        `json:"url"`
	Limit         int           `json:"limit"`
	MaxDepth      int           `json:"maxDepth"`
	IncludePaths  []string      `json:"includePaths,omitempty"`
	ExcludePaths  []string      `json:"excludePaths,omitempty"`
	Webhook       string        `json:"webhook"`
	ScrapeOptions scrapeOptions `json:"scrapeOptions"`
}

type scrapeOptions struct {
	Formats     []string `json:"formats"`
	ExcludeTags []string `json:"excludeTags"`
}

// crawlAck acknowledges a crawl submission.
type crawlAck struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	URL     string `json:"url"`
	Error   string `json:"error,omitempty"`
}

// resultPage is one page of a finished crawl's result set. Next carries the
// absolute cursor URL of the following page, empty on the last one.
type resultPage struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Next      string `json:"next,omitempty"`
	Data      []Page `json:"data"`
}

// Page is one crawled page as the crawler returns it. A null markdown value
// decodes to the empty string; the chunker boundary rejects empty documents.
type Page struct {
	Markdown string       `json:"markdown"`
	HTML     string       `json:"html"`
	Metadata PageMetadata `json:"metadata"`
}

// PageMetadata carries the page descriptors kept on the mapped document.
type PageMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SourceURL   string `json:"sourceURL"`
	OGURL       string `json:"ogUrl"`
}
