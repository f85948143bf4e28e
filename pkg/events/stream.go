package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/serializer"
)

// DefaultInactivityTimeout closes a stream that has seen no event for an
// hour, so an abandoned SSE consumer cannot hold a subscription forever.
const DefaultInactivityTimeout = time.Hour

// StreamOptions tune one subscription.
type StreamOptions struct {
	// Inactivity closes the stream when no event arrives within the window.
	// Zero means DefaultInactivityTimeout.
	Inactivity time.Duration

	// StopOnTerminal closes the stream after delivering a Completed or
	// Failed event. Per-source streams want this; the global processing
	// stream interleaves many sources and does not.
	StopOnTerminal bool
}

// EventStream is one active subscription. Events arrive on Events() until
// the context ends, the inactivity window lapses, a terminal stage arrives
// (when configured), or Close is called; then Events() is closed.
type EventStream struct {
	events chan models.ContentProcessingEvent
	pubsub *redis.PubSub
}

// Stream subscribes to channel. The subscription is confirmed before Stream
// returns, so events published afterwards are not lost.
func (b *Bus) Stream(ctx context.Context, channel string, opts StreamOptions) (*EventStream, error) {
	pubsub := b.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	inactivity := opts.Inactivity
	if inactivity <= 0 {
		inactivity = DefaultInactivityTimeout
	}

	s := &EventStream{
		events: make(chan models.ContentProcessingEvent),
		pubsub: pubsub,
	}
	go s.run(ctx, b.codec, channel, inactivity, opts.StopOnTerminal)
	return s, nil
}

// StreamSource subscribes to one source's events with SSE semantics: the
// stream ends after the terminal stage or after the inactivity window.
func (b *Bus) StreamSource(ctx context.Context, sourceID uuid.UUID) (*EventStream, error) {
	return b.Stream(ctx, SourceChannel(sourceID), StreamOptions{StopOnTerminal: true})
}

// Events is the stream's delivery channel.
func (s *EventStream) Events() <-chan models.ContentProcessingEvent {
	return s.events
}

// Close tears the subscription down. Events() closes shortly after.
func (s *EventStream) Close() error {
	return s.pubsub.Close()
}

func (s *EventStream) run(ctx context.Context, codec *serializer.Codec, channel string, inactivity time.Duration, stopOnTerminal bool) {
	defer close(s.events)
	defer s.pubsub.Close()

	msgs := s.pubsub.Channel()
	idle := time.NewTimer(inactivity)
	defer idle.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-idle.C:
			slog.Info("Event stream idle, closing", "channel", channel)
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			event, err := serializer.DecodeInto[models.ContentProcessingEvent](codec, []byte(msg.Payload))
			if err != nil {
				slog.Warn("Dropping undecodable event", "channel", channel, "error", err)
				continue
			}
			select {
			case s.events <- *event:
			case <-ctx.Done():
				return
			}
			if stopOnTerminal && event.Stage.IsTerminal() {
				return
			}
			idle.Reset(inactivity)
		}
	}
}
