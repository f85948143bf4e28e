package crawler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// testConfig points the client at a test server with millisecond backoffs so
// retry paths run fast.
func testConfig(serverURL string) *config.FirecrawlConfig {
	return &config.FirecrawlConfig{
		APIKey:               "test-key",
		BaseURL:              serverURL + "/v1",
		WebhookPath:          "/webhooks/firecrawl",
		RequestTimeout:       5 * time.Second,
		MaxAttempts:          3,
		InitialBackoff:       time.Millisecond,
		MaxBackoff:           5 * time.Millisecond,
		ResultInitialBackoff: time.Millisecond,
		ResultMaxBackoff:     5 * time.Millisecond,
	}
}

func testCrawlConfig() models.CrawlConfig {
	return models.CrawlConfig{
		URL:             "https://docs.example.com",
		PageLimit:       120,
		MaxDepth:        3,
		IncludePatterns: []string{"/docs"},
		ExcludePatterns: []string{"/blog"},
	}
}

func TestStartCrawl(t *testing.T) {
	var got crawlRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/crawl", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"success": true, "id": "fc-123", "url": "https://api.firecrawl.dev/v1/crawl/fc-123"}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "https://app.kollektiv.dev/")

	id, err := client.StartCrawl(context.Background(), testCrawlConfig())
	require.NoError(t, err)
	assert.Equal(t, "fc-123", id)
	assert.Equal(t, "Bearer test-key", auth)

	assert.Equal(t, "https://docs.example.com", got.URL)
	assert.Equal(t, 120, got.Limit)
	assert.Equal(t, 3, got.MaxDepth)
	assert.Equal(t, []string{"/docs"}, got.IncludePaths)
	assert.Equal(t, []string{"/blog"}, got.ExcludePaths)
	assert.Equal(t, "https://app.kollektiv.dev/webhooks/firecrawl", got.Webhook)
	assert.Equal(t, []string{"markdown"}, got.ScrapeOptions.Formats)
	assert.Equal(t, []string{"img"}, got.ScrapeOptions.ExcludeTags)
}

func TestStartCrawlRetriesTransientFailures(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"success": true, "id": "fc-retry"}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "https://app.kollektiv.dev")

	id, err := client.StartCrawl(context.Background(), testCrawlConfig())
	require.NoError(t, err)
	assert.Equal(t, "fc-retry", id)
	assert.Equal(t, 3, attempts)
}

func TestStartCrawlDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"error": "url is not crawlable"}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "https://app.kollektiv.dev")

	_, err := client.StartCrawl(context.Background(), testCrawlConfig())
	require.Error(t, err)
	assert.Equal(t, 1, attempts)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "url is not crawlable")
}

func TestStartCrawlGivesUpAfterBudget(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "https://app.kollektiv.dev")

	_, err := client.StartCrawl(context.Background(), testCrawlConfig())
	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.ErrorContains(t, err, "giving up after 3 attempts")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestStartCrawlRejectedSubmission(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"success": false, "error": "invalid url"}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "https://app.kollektiv.dev")

	_, err := client.StartCrawl(context.Background(), testCrawlConfig())
	require.Error(t, err)
	assert.ErrorContains(t, err, "crawl not accepted: invalid url")
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "delta seconds", value: "30", want: 30 * time.Second},
		{name: "zero", value: "0", want: 0},
		{name: "negative", value: "-5", want: 0},
		{name: "absent", value: "", want: 0},
		{name: "garbage", value: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRetryAfter(tt.value))
		})
	}

	t.Run("http date", func(t *testing.T) {
		at := time.Now().Add(2 * time.Minute).UTC().Format(http.TimeFormat)
		got := parseRetryAfter(at)
		assert.Greater(t, got, time.Minute)
		assert.LessOrEqual(t, got, 2*time.Minute)
	})
}

func TestFetchResultsFollowsNextCursor(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/crawl/fc-123", r.URL.Path)
		if r.URL.Query().Get("skip") == "" {
			fmt.Fprintf(w, `{
				"success": true, "status": "completed", "total": 2, "completed": 2,
				"next": %q,
				"data": [{"markdown": "# Page One", "metadata": {"title": "One", "description": "first page", "sourceURL": "https://docs.example.com/one", "ogUrl": "https://docs.example.com/one"}}]
			}`, server.URL+"/v1/crawl/fc-123?skip=1")
			return
		}
		fmt.Fprint(w, `{
			"success": true, "status": "completed", "total": 2, "completed": 2,
			"data": [{"markdown": "# Page Two", "metadata": {"title": "Two", "sourceURL": "https://docs.example.com/two"}}]
		}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "https://app.kollektiv.dev")
	sourceID := uuid.New()

	docs, err := client.FetchResults(context.Background(), "fc-123", sourceID)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "# Page One", docs[0].Content)
	assert.Equal(t, "One", docs[0].Metadata.Title)
	assert.Equal(t, "first page", docs[0].Metadata.Description)
	assert.Equal(t, "https://docs.example.com/one", docs[0].Metadata.SourceURL)
	assert.Equal(t, "# Page Two", docs[1].Content)

	for _, doc := range docs {
		assert.Equal(t, sourceID, doc.SourceID)
		assert.NotEqual(t, uuid.Nil, doc.ID)
	}
}

func TestFetchResultsEmptyCrawl(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"success": true, "status": "completed", "total": 0, "completed": 0, "data": []}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "https://app.kollektiv.dev")

	_, err := client.FetchResults(context.Background(), "fc-empty", uuid.New())
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestFetchResultsRetriesPageFetches(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"success": true, "status": "completed", "data": [{"markdown": "content", "metadata": {"sourceURL": "https://docs.example.com"}}]}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "https://app.kollektiv.dev")

	docs, err := client.FetchResults(context.Background(), "fc-flaky", uuid.New())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, 2, attempts)
}

func TestWebhookPayloadPageCount(t *testing.T) {
	var payload WebhookPayload
	require.NoError(t, json.Unmarshal([]byte(`{
		"type": "crawl.page", "id": "fc-123", "success": true,
		"data": [{"markdown": "a"}, {"markdown": "b"}]
	}`), &payload))

	assert.Equal(t, WebhookCrawlPage, payload.Type)
	assert.Equal(t, 2, payload.PageCount())

	var empty WebhookPayload
	require.NoError(t, json.Unmarshal([]byte(`{"type": "crawl.started", "id": "fc-123", "success": true}`), &empty))
	assert.Equal(t, 0, empty.PageCount())
}
