package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSSEEvent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	prepareSSE(c)
	require.NoError(t, writeSSEEvent(c, map[string]string{"stage": "completed"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "data: {\"stage\":\"completed\"}\n\n", rec.Body.String())
	assert.True(t, rec.Flushed, "each event must be flushed to the client")
}

func TestWriteSSEEventFrames(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	prepareSSE(c)
	require.NoError(t, writeSSEEvent(c, map[string]int{"a": 1}))
	require.NoError(t, writeSSEEvent(c, map[string]int{"b": 2}))

	assert.Equal(t, "data: {\"a\":1}\n\ndata: {\"b\":2}\n\n", rec.Body.String())
}
