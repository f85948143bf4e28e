package queue

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
)

// testQueueConfig returns queue settings shrunk to test timescales.
func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 10 * time.Millisecond
	cfg.HeartbeatInterval = 25 * time.Millisecond
	return cfg
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollInterval = time.Second
	cfg.PollIntervalJitter = 500 * time.Millisecond
	w := &Worker{config: cfg}

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}

func TestWorkerPollIntervalWithoutJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollInterval = time.Second
	cfg.PollIntervalJitter = 0
	w := &Worker{config: cfg}

	assert.Equal(t, time.Second, w.pollInterval())
}

func TestWorkerHealth(t *testing.T) {
	svc := &Services{Config: testQueueConfig()}
	w := NewWorker("pod-1-worker-0", "pod-1", svc, nil, nil)

	h := w.Health()
	assert.Equal(t, "pod-1-worker-0", h.ID)
	assert.Equal(t, string(WorkerStatusIdle), h.Status)
	assert.Empty(t, h.CurrentJobID)
	assert.Zero(t, h.JobsProcessed)

	jobID := uuid.New().String()
	w.setStatus(WorkerStatusWorking, jobID)
	h = w.Health()
	assert.Equal(t, string(WorkerStatusWorking), h.Status)
	assert.Equal(t, jobID, h.CurrentJobID)
	assert.False(t, h.LastActivity.IsZero())

	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, string(WorkerStatusIdle), h.Status)
	assert.Empty(t, h.CurrentJobID)
}

func TestWorkerStopIsIdempotent(t *testing.T) {
	svc := &Services{Config: testQueueConfig()}
	w := NewWorker("pod-1-worker-0", "pod-1", svc, nil, nil)

	w.Stop()
	w.Stop()
}
