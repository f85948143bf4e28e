package crawler

import (
	"fmt"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	readability "github.com/go-shiori/go-readability"
)

// markdownFromHTML extracts the readable body of an HTML page and renders it
// as markdown. Used as a fallback for pages the crawler returns without a
// markdown rendition.
func markdownFromHTML(htmlContent, sourceURL string) (string, error) {
	pageURL, err := url.Parse(sourceURL)
	if err != nil || sourceURL == "" {
		pageURL = &url.URL{}
	}

	article, err := readability.FromReader(strings.NewReader(htmlContent), pageURL)
	if err != nil {
		return "", fmt.Errorf("extract readable content: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(article.Content)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
