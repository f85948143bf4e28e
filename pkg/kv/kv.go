// Package kv is the typed access layer over Redis. Each record type declares
// a key template and a TTL up front; a handle bound to a type derives keys,
// applies the TTL, and moves records through the shared serializer so K/V
// payloads stay interchangeable with the queue and event bus wire form.
package kv

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/serializer"
)

// Per-type retention windows. History outlives the pending list by design of
// the conversation commit: pending messages either get folded into history
// within a turn or are abandoned.
const (
	HistoryTTL = 24 * time.Hour
	PendingTTL = time.Hour
)

// maxTxAttempts bounds how often Atomic re-runs a block after losing its
// watch before giving up with ErrTxConflict.
const maxTxAttempts = 10

// KeySpec declares where records of one type live and how long they last.
// Keys take the form "prefix:{id}:suffix".
type KeySpec struct {
	Prefix string
	Suffix string
	TTL    time.Duration
}

// Key renders the template for one record id.
func (s KeySpec) Key(id string) string {
	if s.Suffix == "" {
		return fmt.Sprintf("%s:%s", s.Prefix, id)
	}
	return fmt.Sprintf("%s:%s:%s", s.Prefix, id, s.Suffix)
}

// Store wraps a Redis client with the key template registry and the codec.
type Store struct {
	client *redis.Client
	codec  *serializer.Codec
	specs  map[reflect.Type]KeySpec
}

// NewStore creates a store over client with every known record type
// registered. A nil codec gets the default registry.
func NewStore(client *redis.Client, codec *serializer.Codec) *Store {
	if codec == nil {
		codec = serializer.NewCodec()
	}
	s := &Store{
		client: client,
		codec:  codec,
		specs:  make(map[reflect.Type]KeySpec),
	}
	registerSpec[models.ConversationHistory](s, KeySpec{Prefix: "conversations", Suffix: "history", TTL: HistoryTTL})
	registerSpec[models.PendingMessage](s, KeySpec{Prefix: "conversations", Suffix: "pending_messages", TTL: PendingTTL})
	return s
}

func registerSpec[T any](s *Store, spec KeySpec) {
	s.specs[reflect.TypeOf((*T)(nil)).Elem()] = spec
}

// Bind returns a typed handle for T's key template. Binding an unregistered
// type is a configuration mistake and fails with *ConfigError.
func Bind[T any](s *Store) (*Keyed[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	spec, ok := s.specs[t]
	if !ok {
		return nil, &ConfigError{Type: t.String()}
	}
	return &Keyed[T]{store: s, cmd: s.client, spec: spec}, nil
}

// Ping verifies connectivity to the backing store.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("kv: ping: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Atomic runs fn under WATCH on keys and re-runs it when a watched key
// changes underneath, up to maxTxAttempts times. fn follows the go-redis
// transaction shape: read through tx, then queue writes in tx.TxPipelined.
func (s *Store) Atomic(ctx context.Context, fn func(tx *redis.Tx) error, keys ...string) error {
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err := s.client.Watch(ctx, fn, keys...)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrTxConflict
}

// Keyed is a handle over one record type's keys. The zero value is not
// usable; obtain handles through Bind.
type Keyed[T any] struct {
	store *Store
	cmd   redis.Cmdable
	spec  KeySpec
}

// With returns a copy of the handle that issues commands through c, typically
// a *redis.Tx inside Atomic or the Pipeliner of its write phase. Reads
// through a queued pipeline return nothing useful; keep reads on the tx.
func (k *Keyed[T]) With(c redis.Cmdable) *Keyed[T] {
	return &Keyed[T]{store: k.store, cmd: c, spec: k.spec}
}

// Key renders the record key for id.
func (k *Keyed[T]) Key(id string) string {
	return k.spec.Key(id)
}

// TTL reports the retention window for this record type.
func (k *Keyed[T]) TTL() time.Duration {
	return k.spec.TTL
}

// Set writes the record under its type's TTL.
func (k *Keyed[T]) Set(ctx context.Context, id string, record T) error {
	data, err := k.store.codec.Encode(record)
	if err != nil {
		return err
	}
	key := k.spec.Key(id)
	if err := k.cmd.Set(ctx, key, data, k.spec.TTL).Err(); err != nil {
		return fmt.Errorf("kv: set %s: %w", key, err)
	}
	return nil
}

// Get reads the record stored at id. Absent or expired keys yield ErrMiss.
func (k *Keyed[T]) Get(ctx context.Context, id string) (*T, error) {
	key := k.spec.Key(id)
	data, err := k.cmd.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("kv: get %s: %w", key, err)
	}
	return k.decode(data)
}

// Push appends records to the list at id and refreshes the list TTL, so an
// active list keeps living while writes continue.
func (k *Keyed[T]) Push(ctx context.Context, id string, records ...T) error {
	if len(records) == 0 {
		return nil
	}
	vals := make([]interface{}, 0, len(records))
	for _, record := range records {
		data, err := k.store.codec.Encode(record)
		if err != nil {
			return err
		}
		vals = append(vals, data)
	}
	key := k.spec.Key(id)
	if err := k.cmd.RPush(ctx, key, vals...).Err(); err != nil {
		return fmt.Errorf("kv: rpush %s: %w", key, err)
	}
	if err := k.cmd.Expire(ctx, key, k.spec.TTL).Err(); err != nil {
		return fmt.Errorf("kv: expire %s: %w", key, err)
	}
	return nil
}

// Range reads list elements between start and stop inclusive, following
// Redis index semantics (negative indices count from the tail). A missing
// list yields an empty slice.
func (k *Keyed[T]) Range(ctx context.Context, id string, start, stop int64) ([]T, error) {
	key := k.spec.Key(id)
	items, err := k.cmd.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("kv: lrange %s: %w", key, err)
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		record, err := k.decode([]byte(item))
		if err != nil {
			return nil, err
		}
		out = append(out, *record)
	}
	return out, nil
}

// PopLeft removes and returns the head of the list at id, ErrMiss when empty.
func (k *Keyed[T]) PopLeft(ctx context.Context, id string) (*T, error) {
	return k.pop(ctx, id, k.cmd.LPop)
}

// PopRight removes and returns the tail of the list at id, ErrMiss when empty.
func (k *Keyed[T]) PopRight(ctx context.Context, id string) (*T, error) {
	return k.pop(ctx, id, k.cmd.RPop)
}

func (k *Keyed[T]) pop(ctx context.Context, id string, cmd func(context.Context, string) *redis.StringCmd) (*T, error) {
	key := k.spec.Key(id)
	data, err := cmd(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("kv: pop %s: %w", key, err)
	}
	return k.decode(data)
}

// Delete removes the record at id. Deleting an absent key is a no-op.
func (k *Keyed[T]) Delete(ctx context.Context, id string) error {
	key := k.spec.Key(id)
	if err := k.cmd.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("kv: del %s: %w", key, err)
	}
	return nil
}

func (k *Keyed[T]) decode(data []byte) (*T, error) {
	return serializer.DecodeInto[T](k.store.codec, data)
}
