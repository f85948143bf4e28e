package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// prepareSSE switches the response into text/event-stream mode. Headers are
// committed here, so handlers must finish all error returns before calling it.
func prepareSSE(c *echo.Context) {
	h := c.Response().Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	// Disables reverse-proxy buffering so events reach the client as written.
	h.Set("X-Accel-Buffering", "no")
	c.Response().WriteHeader(http.StatusOK)
}

// writeSSEEvent marshals v and writes it as one SSE data frame, flushing so
// the client sees it immediately. A write error means the client is gone.
func writeSSEEvent(c *echo.Context, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.Response(), "data: %s\n\n", data); err != nil {
		return err
	}
	if f, ok := c.Response().(http.Flusher); ok {
		f.Flush()
	}
	return nil
}
