package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

func TestStreamSourceStopsAfterTerminalStage(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx := context.Background()
	sourceID := uuid.New()

	stream, err := bus.StreamSource(ctx, sourceID)
	require.NoError(t, err)
	defer stream.Close()

	channel := SourceChannel(sourceID)
	require.NoError(t, bus.Publish(ctx, channel, stageEvent(sourceID, models.StageChunksGenerated)))
	assert.Equal(t, models.StageChunksGenerated, receiveEvent(t, stream).Stage)

	// The terminal event is still delivered, then the stream ends.
	require.NoError(t, bus.Publish(ctx, channel, stageEvent(sourceID, models.StageCompleted)))
	assert.Equal(t, models.StageCompleted, receiveEvent(t, stream).Stage)
	requireClosed(t, stream)
}

func TestStreamSourceStopsAfterFailure(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx := context.Background()
	sourceID := uuid.New()

	stream, err := bus.StreamSource(ctx, sourceID)
	require.NoError(t, err)
	defer stream.Close()

	failed := stageEvent(sourceID, models.StageFailed)
	failed.Error = "crawl returned no content"
	require.NoError(t, bus.Publish(ctx, SourceChannel(sourceID), failed))

	got := receiveEvent(t, stream)
	assert.Equal(t, models.StageFailed, got.Stage)
	assert.Equal(t, "crawl returned no content", got.Error)
	requireClosed(t, stream)
}

func TestStreamClosesWhenIdle(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx := context.Background()

	stream, err := bus.Stream(ctx, SourceChannel(uuid.New()), StreamOptions{
		Inactivity:     50 * time.Millisecond,
		StopOnTerminal: true,
	})
	require.NoError(t, err)
	defer stream.Close()

	requireClosed(t, stream)
}

func TestGlobalStreamOutlivesTerminalStages(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx := context.Background()

	stream, err := bus.Stream(ctx, ProcessingChannel, StreamOptions{})
	require.NoError(t, err)
	defer stream.Close()

	first := uuid.New()
	second := uuid.New()
	require.NoError(t, bus.PublishStageEvent(ctx, stageEvent(first, models.StageCompleted)))
	assert.Equal(t, first, receiveEvent(t, stream).SourceID)

	// A terminal stage for one source must not end the global stream.
	require.NoError(t, bus.PublishStageEvent(ctx, stageEvent(second, models.StageCreated)))
	assert.Equal(t, second, receiveEvent(t, stream).SourceID)
}

func TestStreamDropsUndecodablePayloads(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx := context.Background()
	sourceID := uuid.New()

	stream, err := bus.StreamSource(ctx, sourceID)
	require.NoError(t, err)
	defer stream.Close()

	channel := SourceChannel(sourceID)
	require.NoError(t, bus.client.Publish(ctx, channel, "not an envelope").Err())
	require.NoError(t, bus.Publish(ctx, channel, stageEvent(sourceID, models.StageCreated)))

	assert.Equal(t, models.StageCreated, receiveEvent(t, stream).Stage)
}

func TestStreamCloseEndsDelivery(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx := context.Background()

	stream, err := bus.Stream(ctx, ProcessingChannel, StreamOptions{})
	require.NoError(t, err)

	require.NoError(t, stream.Close())
	requireClosed(t, stream)
}

func TestStreamEndsWithContext(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())

	stream, err := bus.Stream(ctx, ProcessingChannel, StreamOptions{})
	require.NoError(t, err)
	defer stream.Close()

	cancel()
	requireClosed(t, stream)
}
