package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/kollektiv-ai/kollektiv/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"

	// healthCacheTTL bounds how often dependency checks actually run, so
	// orchestrator probes and dashboards cannot hammer the database.
	healthCacheTTL = 5 * time.Second
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access. Only
// kollektiv's own components (database, redis, worker pool) are checked.
// External dependencies (crawler, LLM, embeddings) are excluded so the
// orchestrator does not restart kollektiv when an external service is down.
func (s *Server) healthHandler(c *echo.Context) error {
	s.health.mu.Lock()
	if s.health.resp != nil && time.Since(s.health.at) < healthCacheTTL {
		resp, code := s.health.resp, s.health.code
		s.health.mu.Unlock()
		return c.JSON(code, resp)
	}
	s.health.mu.Unlock()

	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	_, err := s.dbClient.Health(reqCtx)
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.redis != nil {
		if err := s.redis.Ping(reqCtx).Err(); err != nil {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["redis"] = HealthCheck{Status: healthStatusDegraded, Message: err.Error()}
		} else {
			checks["redis"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.workerPool != nil {
		poolHealth := s.workerPool.Health()
		if poolHealth != nil && !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if poolHealth.DBError != "" {
				msg = poolHealth.DBError
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	resp := &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	}

	s.health.mu.Lock()
	s.health.at = time.Now()
	s.health.code = httpStatus
	s.health.resp = resp
	s.health.mu.Unlock()

	return c.JSON(httpStatus, resp)
}
