package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getHealth(t *testing.T, h *apiHarness) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	rec := h.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestHealthHealthy(t *testing.T) {
	h := newAPIHarness(t)

	rec, resp := getHealth(t, h)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Version)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
	assert.NotContains(t, resp.Checks, "redis")
}

func TestHealthDegradedRedis(t *testing.T) {
	h := newAPIHarness(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	h.server.SetRedis(client)
	mr.Close()

	rec, resp := getHealth(t, h)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "degraded", resp.Checks["redis"].Status)
	assert.NotEmpty(t, resp.Checks["redis"].Message)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
}

func TestHealthCachesChecks(t *testing.T) {
	h := newAPIHarness(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	h.server.SetRedis(client)

	rec, resp := getHealth(t, h)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "healthy", resp.Status)

	// Within the cache window the stored response is served as-is, so a
	// redis outage right after a successful check is not yet visible.
	mr.Close()
	rec, resp = getHealth(t, h)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", resp.Status)
}
