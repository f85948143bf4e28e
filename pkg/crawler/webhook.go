package crawler

import "encoding/json"

// Webhook notification types the crawler delivers while a crawl runs.
const (
	WebhookCrawlStarted   = "crawl.started"
	WebhookCrawlPage      = "crawl.page"
	WebhookCrawlCompleted = "crawl.completed"
	WebhookCrawlFailed    = "crawl.failed"
)

// WebhookPayload is the notification body posted to the webhook endpoint,
// accepted verbatim. ID is the external crawl id used to correlate the
// notification with its job. Data stays raw: its shape varies by type and
// nothing downstream needs it beyond the page count.
type WebhookPayload struct {
	Type    string          `json:"type"`
	ID      string          `json:"id"`
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// PageCount reports how many page entries a crawl.page notification carries.
func (p *WebhookPayload) PageCount() int {
	if len(p.Data) == 0 {
		return 0
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(p.Data, &entries); err != nil {
		return 0
	}
	return len(entries)
}
