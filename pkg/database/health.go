package database

import (
	"context"
	"time"
)

// PoolStatus reports connectivity and connection pool pressure. The health
// endpoint serializes it verbatim; all durations are milliseconds.
type PoolStatus struct {
	Status     string `json:"status"`
	PingMillis int64  `json:"ping_ms"`
	Open       int    `json:"open_connections"`
	InUse      int    `json:"in_use"`
	Idle       int    `json:"idle"`
	MaxOpen    int    `json:"max_open_connections"`
	WaitCount  int64  `json:"wait_count"`
	WaitMillis int64  `json:"wait_ms"`
}

// Saturated reports whether every pool slot is handed out. A saturated pool
// still answers pings, so this is the earlier congestion signal.
func (p *PoolStatus) Saturated() bool {
	return p.MaxOpen > 0 && p.InUse >= p.MaxOpen
}

// Health pings the database and snapshots the pool counters. On a failed
// ping the returned status is still populated so callers can report the
// ping latency alongside the error.
func (c *Client) Health(ctx context.Context) (*PoolStatus, error) {
	start := time.Now()
	err := c.db.PingContext(ctx)
	status := &PoolStatus{
		Status:     "healthy",
		PingMillis: time.Since(start).Milliseconds(),
	}
	if err != nil {
		status.Status = "unhealthy"
		return status, err
	}

	stats := c.db.Stats()
	status.Open = stats.OpenConnections
	status.InUse = stats.InUse
	status.Idle = stats.Idle
	status.MaxOpen = stats.MaxOpenConnections
	status.WaitCount = stats.WaitCount
	status.WaitMillis = stats.WaitDuration.Milliseconds()
	return status, nil
}
