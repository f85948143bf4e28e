package queue

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestPool() *WorkerPool {
	return &WorkerPool{
		podID:      "test-pod",
		config:     testQueueConfig(),
		stopCh:     make(chan struct{}),
		activeJobs: make(map[uuid.UUID]context.CancelFunc),
	}
}

func TestPoolRegisterAndCancelJob(t *testing.T) {
	p := newTestPool()
	jobID := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.RegisterJob(jobID, cancel)
	assert.True(t, p.CancelJob(jobID))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestPoolCancelUnknownJob(t *testing.T) {
	p := newTestPool()

	assert.False(t, p.CancelJob(uuid.New()))
}

func TestPoolUnregisterJob(t *testing.T) {
	p := newTestPool()
	jobID := uuid.New()
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.RegisterJob(jobID, cancel)
	p.UnregisterJob(jobID)
	assert.False(t, p.CancelJob(jobID))
}

func TestPoolActiveJobIDs(t *testing.T) {
	p := newTestPool()
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	first, second := uuid.New(), uuid.New()
	p.RegisterJob(first, cancel)
	p.RegisterJob(second, cancel)

	ids := p.getActiveJobIDs()
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, first.String())
	assert.Contains(t, ids, second.String())
}

func TestPoolStopIsIdempotent(t *testing.T) {
	p := newTestPool()

	p.Stop()
	p.Stop()
}
