// Package crawler is the adapter to the external firecrawl service. It
// submits asynchronous crawls whose progress comes back through the webhook
// endpoint, and pages through finished crawls' results.
package crawler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/retry"
)

// Client provides HTTP access to the firecrawl API.
type Client struct {
	httpClient *http.Client
	cfg        *config.FirecrawlConfig
	webhookURL string

	submitPolicy retry.Policy
	fetchPolicy  retry.Policy
}

// NewClient creates a crawler client. publicBaseURL is this deployment's
// externally reachable base URL; the webhook callback is derived from it.
func NewClient(cfg *config.FirecrawlConfig, publicBaseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		cfg:        cfg,
		webhookURL: strings.TrimRight(publicBaseURL, "/") + cfg.WebhookPath,
		submitPolicy: retry.Policy{
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: cfg.InitialBackoff,
			MaxDelay:     cfg.MaxBackoff,
			Retryable:    retryable,
			MinDelay:     retryFloor,
		},
		fetchPolicy: retry.Policy{
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: cfg.ResultInitialBackoff,
			MaxDelay:     cfg.ResultMaxBackoff,
			Retryable:    retryable,
			MinDelay:     retryFloor,
		},
	}
}

// WebhookURL is the callback URL handed to the crawler on submission.
func (c *Client) WebhookURL() string {
	return c.webhookURL
}

// StartCrawl submits an asynchronous crawl and returns the external crawl
// id. Transient failures (429, retryable 5xx, connection errors) are retried
// with exponential backoff, honoring Retry-After; other API failures surface
// as *APIError immediately.
func (c *Client) StartCrawl(ctx context.Context, crawl models.CrawlConfig) (string, error) {
	payload := crawlRequest{
		URL:          crawl.URL,
		Limit:        crawl.PageLimit,
		MaxDepth:     crawl.MaxDepth,
		IncludePaths: crawl.IncludePatterns,
		ExcludePaths: crawl.ExcludePatterns,
		Webhook:      c.webhookURL,
		ScrapeOptions: scrapeOptions{
			Formats:     []string{"markdown"},
			ExcludeTags: []string{"img"},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal crawl request: %w", err)
	}

	policy := c.submitPolicy
	policy.OnRetry = func(attempt int, wait time.Duration, err error) {
		slog.Warn("Crawl submission failed, retrying",
			"url", crawl.URL, "attempt", attempt, "wait", wait, "error", err)
	}

	var ack crawlAck
	err = policy.Do(ctx, func(ctx context.Context) error {
		return c.postJSON(ctx, c.cfg.BaseURL+"/crawl", body, &ack)
	})
	if err != nil {
		return "", err
	}
	if !ack.Success || ack.ID == "" {
		return "", &APIError{StatusCode: http.StatusOK, Message: "crawl not accepted: " + ack.Error}
	}

	slog.Info("Crawl submitted", "url", crawl.URL, "firecrawl_id", ack.ID)
	return ack.ID, nil
}

// FetchResults follows a finished crawl's result pages through the next
// cursor until exhausted and maps them to documents for sourceID. Each page
// fetch gets its own retry budget. A crawl with zero pages fails with
// ErrEmptyContent.
func (c *Client) FetchResults(ctx context.Context, firecrawlID string, sourceID uuid.UUID) ([]models.Document, error) {
	var pages []Page
	next := fmt.Sprintf("%s/crawl/%s", c.cfg.BaseURL, firecrawlID)
	for next != "" {
		policy := c.fetchPolicy
		policy.OnRetry = func(attempt int, wait time.Duration, err error) {
			slog.Warn("Crawl result fetch failed, retrying",
				"firecrawl_id", firecrawlID, "attempt", attempt, "wait", wait, "error", err)
		}

		cursor := next
		var result resultPage
		err := policy.Do(ctx, func(ctx context.Context) error {
			var page resultPage
			if err := c.getJSON(ctx, cursor, &page); err != nil {
				return err
			}
			result = page
			return nil
		})
		if err != nil {
			return nil, err
		}

		pages = append(pages, result.Data...)
		next = result.Next
	}

	if len(pages) == 0 {
		return nil, ErrEmptyContent
	}

	docs := make([]models.Document, 0, len(pages))
	for _, page := range pages {
		docs = append(docs, documentFromPage(sourceID, page))
	}
	slog.Info("Crawl results fetched",
		"firecrawl_id", firecrawlID, "source_id", sourceID, "pages", len(docs))
	return docs, nil
}

// documentFromPage renders one crawled page as a markdown document. Pages
// without a markdown rendition fall back to readable-content extraction from
// their HTML; pages with neither keep empty content for the chunker boundary
// to reject.
func documentFromPage(sourceID uuid.UUID, page Page) models.Document {
	content := page.Markdown
	if content == "" && page.HTML != "" {
		converted, err := markdownFromHTML(page.HTML, page.Metadata.SourceURL)
		if err != nil {
			slog.Warn("HTML fallback conversion failed",
				"url", page.Metadata.SourceURL, "error", err)
		} else {
			content = converted
		}
	}
	return models.Document{
		ID:       uuid.New(),
		SourceID: sourceID,
		Content:  content,
		Metadata: models.DocumentMetadata{
			Title:       page.Metadata.Title,
			Description: page.Metadata.Description,
			SourceURL:   page.Metadata.SourceURL,
			OGURL:       page.Metadata.OGURL,
		},
	}
}

func (c *Client) postJSON(ctx context.Context, url string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("crawler request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode crawler response: %w", err)
	}
	return nil
}
