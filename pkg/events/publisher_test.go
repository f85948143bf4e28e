package events

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/retry"
)

func newTestBus(t *testing.T) (*Bus, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewBus(client, nil), mr
}

func stageEvent(sourceID uuid.UUID, stage models.Stage) models.ContentProcessingEvent {
	return models.ContentProcessingEvent{
		SourceID:  sourceID,
		Stage:     stage,
		Timestamp: time.Date(2025, 8, 14, 10, 30, 0, 0, time.UTC),
	}
}

func receiveEvent(t *testing.T, stream *EventStream) models.ContentProcessingEvent {
	t.Helper()
	select {
	case event, ok := <-stream.Events():
		require.True(t, ok, "stream closed before delivering an event")
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return models.ContentProcessingEvent{}
	}
}

func requireClosed(t *testing.T, stream *EventStream) {
	t.Helper()
	select {
	case _, ok := <-stream.Events():
		assert.False(t, ok, "expected stream to be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not close")
	}
}

func TestSourceChannel(t *testing.T) {
	sourceID := uuid.MustParse("a3bb189e-8bf9-3888-9912-ace4e6543002")
	assert.Equal(t, "sources/a3bb189e-8bf9-3888-9912-ace4e6543002/events", SourceChannel(sourceID))
}

func TestPublishStageEventFansOut(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx := context.Background()
	sourceID := uuid.New()

	global, err := bus.Stream(ctx, ProcessingChannel, StreamOptions{})
	require.NoError(t, err)
	defer global.Close()

	perSource, err := bus.StreamSource(ctx, sourceID)
	require.NoError(t, err)
	defer perSource.Close()

	event := stageEvent(sourceID, models.StageCrawlingStarted)
	require.NoError(t, bus.PublishStageEvent(ctx, event))

	assert.Equal(t, event, receiveEvent(t, global))
	assert.Equal(t, event, receiveEvent(t, perSource))
}

func TestPublishGivesUpAfterRepeatedFailures(t *testing.T) {
	bus, mr := newTestBus(t)
	ctx := context.Background()

	bus.policy = retry.Policy{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Retryable:    isTransient,
	}

	mr.Close()

	err := bus.Publish(ctx, ProcessingChannel, stageEvent(uuid.New(), models.StageCreated))
	require.Error(t, err)
	assert.ErrorContains(t, err, "giving up after 3 attempts")
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "server error reply", err: redis.Nil, want: false},
		{name: "connection failure", err: errors.New("dial tcp 127.0.0.1:6379: connect: connection refused"), want: true},
		{name: "broken pipe", err: io.EOF, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransient(tt.err))
		})
	}
}
