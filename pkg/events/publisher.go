package events

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/retry"
	"github.com/kollektiv-ai/kollektiv/pkg/serializer"
)

// Bus publishes and subscribes content processing events on Redis pub/sub.
// Payloads travel as serializer envelopes, the same wire form the job queue
// and K/V store use.
type Bus struct {
	client *redis.Client
	codec  *serializer.Codec
	policy retry.Policy
}

// NewBus creates a bus over client. A nil codec gets the default registry.
func NewBus(client *redis.Client, codec *serializer.Codec) *Bus {
	if codec == nil {
		codec = serializer.NewCodec()
	}
	return &Bus{
		client: client,
		codec:  codec,
		policy: retry.Policy{
			MaxAttempts:  5,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     5 * time.Second,
			Retryable:    isTransient,
		},
	}
}

// Publish sends event on channel, retrying transient connection failures
// with exponential backoff. Server error replies fail permanently.
func (b *Bus) Publish(ctx context.Context, channel string, event models.ContentProcessingEvent) error {
	data, err := b.codec.Encode(event)
	if err != nil {
		return err
	}

	policy := b.policy
	policy.OnRetry = func(attempt int, wait time.Duration, err error) {
		slog.Warn("Event publish failed, retrying",
			"channel", channel, "attempt", attempt, "wait", wait, "error", err)
	}
	return policy.Do(ctx, func(ctx context.Context) error {
		return b.client.Publish(ctx, channel, data).Err()
	})
}

// PublishStageEvent broadcasts a stage event to the source's own channel and
// to the global processing channel. Both publishes are best-effort: if one
// fails the other is still attempted. Returns the first error encountered.
func (b *Bus) PublishStageEvent(ctx context.Context, event models.ContentProcessingEvent) error {
	var firstErr error
	if err := b.Publish(ctx, SourceChannel(event.SourceID), event); err != nil {
		slog.Warn("Failed to publish stage event to source channel",
			"source_id", event.SourceID, "stage", event.Stage, "error", err)
		firstErr = err
	}
	if err := b.Publish(ctx, ProcessingChannel, event); err != nil {
		slog.Warn("Failed to publish stage event to processing channel",
			"source_id", event.SourceID, "stage", event.Stage, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// isTransient reports whether a publish failure is worth retrying. An error
// reply from the server is permanent; everything else is assumed to be a
// connection-level failure.
func isTransient(err error) bool {
	var reply redis.Error
	return !errors.As(err, &reply)
}
