// Package serializer is the transport codec for domain records moving through
// the job queue, the K/V store, and the event bus. Records carry a fully
// qualified type tag on the wire so payloads reconstitute as their concrete
// types on the far side.
package serializer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

const (
	typeKey  = "__type"
	dataKey  = "data"
	valueKey = "value"
	naiveKey = "naive"

	tagUUID     = "uuid"
	tagDatetime = "datetime"
)

// wire layout of the naive and aware timestamp forms
const (
	awareLayout = time.RFC3339Nano
	naiveLayout = "2006-01-02T15:04:05.999999999"
)

// LocalTime is a timezone-naive wall-clock timestamp. It round-trips
// distinctly from time.Time, which is always timezone-aware on the wire.
type LocalTime struct {
	time.Time
}

// NewLocalTime strips the zone from t, keeping its wall-clock reading.
func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{Time: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

// Codec encodes and decodes tagged domain records.
type Codec struct {
	factories map[string]func() any
	tags      map[reflect.Type]string
}

// NewCodec returns a codec with every Kollektiv domain record registered.
func NewCodec() *Codec {
	c := &Codec{
		factories: make(map[string]func() any),
		tags:      make(map[reflect.Type]string),
	}
	register[models.ConversationMessage](c, "kollektiv.ConversationMessage")
	register[models.PendingMessage](c, "kollektiv.PendingMessage")
	register[models.ConversationHistory](c, "kollektiv.ConversationHistory")
	register[models.Document](c, "kollektiv.Document")
	register[models.Chunk](c, "kollektiv.Chunk")
	register[models.SourceSummary](c, "kollektiv.SourceSummary")
	register[models.ContentProcessingEvent](c, "kollektiv.ContentProcessingEvent")
	register[models.CrawlJobDetails](c, "kollektiv.CrawlJobDetails")
	register[models.ProcessingJobDetails](c, "kollektiv.ProcessingJobDetails")
	return c
}

func register[T any](c *Codec, tag string) {
	var zero T
	t := reflect.TypeOf(zero)
	if _, exists := c.factories[tag]; exists {
		panic(fmt.Sprintf("serializer: duplicate tag %q", tag))
	}
	c.factories[tag] = func() any { return new(T) }
	c.tags[t] = tag
}

// Encode serialises v to its wire form. Registered records become tagged
// envelopes; UUIDs and timestamps get dedicated tags; sequences and mappings
// recurse. Values JSON cannot express (functions, channels) fail.
func (c *Codec) Encode(v any) ([]byte, error) {
	wire, err := c.toWire(v)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("serializer: encode: %w", err)
	}
	return data, nil
}

func (c *Codec) toWire(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch tv := v.(type) {
	case uuid.UUID:
		return map[string]any{typeKey: tagUUID, valueKey: tv.String()}, nil
	case LocalTime:
		return map[string]any{typeKey: tagDatetime, valueKey: tv.Format(naiveLayout), naiveKey: true}, nil
	case time.Time:
		return map[string]any{typeKey: tagDatetime, valueKey: tv.Format(awareLayout), naiveKey: false}, nil
	}

	rv := reflect.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, nil
	}
	if tag, ok := c.tags[rv.Type()]; ok {
		data, err := json.Marshal(rv.Interface())
		if err != nil {
			return nil, fmt.Errorf("serializer: encode %s: %w", tag, err)
		}
		return map[string]any{typeKey: tag, dataKey: json.RawMessage(data)}, nil
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v, nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem, err := c.toWire(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = elem
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("serializer: encode: unsupported map key type %s", rv.Type().Key())
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			elem, err := c.toWire(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = elem
		}
		return out, nil
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, fmt.Errorf("serializer: encode: unserializable kind %s", rv.Kind())
	default:
		return v, nil
	}
}

// Decode reconstitutes a wire value. Registered tags produce pointers to
// their concrete record types; unknown tags yield the raw mapping with a
// logged warning; malformed input fails with *DecodeError.
func (c *Codec) Decode(data []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Reason: "malformed payload", Err: err}
	}
	return c.fromWire(raw)
}

func (c *Codec) fromWire(v any) (any, error) {
	switch tv := v.(type) {
	case map[string]any:
		tag, ok := tv[typeKey].(string)
		if !ok {
			return c.decodeMapping(tv)
		}
		return c.decodeTagged(tag, tv)
	case []any:
		out := make([]any, len(tv))
		for i, elem := range tv {
			decoded, err := c.fromWire(elem)
			if err != nil {
				return nil, err
			}
			out[i] = decoded
		}
		return out, nil
	default:
		return v, nil
	}
}

func (c *Codec) decodeMapping(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, elem := range m {
		decoded, err := c.fromWire(elem)
		if err != nil {
			return nil, err
		}
		out[k] = decoded
	}
	return out, nil
}

func (c *Codec) decodeTagged(tag string, envelope map[string]any) (any, error) {
	switch tag {
	case tagUUID:
		s, ok := envelope[valueKey].(string)
		if !ok {
			return nil, &DecodeError{Tag: tag, Reason: "uuid envelope missing value"}
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, &DecodeError{Tag: tag, Reason: "invalid uuid", Err: err}
		}
		return id, nil
	case tagDatetime:
		s, ok := envelope[valueKey].(string)
		if !ok {
			return nil, &DecodeError{Tag: tag, Reason: "datetime envelope missing value"}
		}
		naive, _ := envelope[naiveKey].(bool)
		if naive {
			t, err := time.ParseInLocation(naiveLayout, s, time.UTC)
			if err != nil {
				return nil, &DecodeError{Tag: tag, Reason: "invalid naive datetime", Err: err}
			}
			return LocalTime{Time: t}, nil
		}
		t, err := time.Parse(awareLayout, s)
		if err != nil {
			return nil, &DecodeError{Tag: tag, Reason: "invalid datetime", Err: err}
		}
		return t, nil
	}

	factory, ok := c.factories[tag]
	if !ok {
		slog.Warn("serializer: unknown type tag, decoding as raw mapping", "tag", tag)
		if data, ok := envelope[dataKey].(map[string]any); ok {
			return data, nil
		}
		return envelope, nil
	}

	data, err := json.Marshal(envelope[dataKey])
	if err != nil {
		return nil, &DecodeError{Tag: tag, Reason: "re-encoding record data", Err: err}
	}
	record := factory()
	if err := json.Unmarshal(data, record); err != nil {
		return nil, &DecodeError{Tag: tag, Reason: "record data does not match registered type", Err: err}
	}
	return record, nil
}

// DecodeInto decodes data and asserts the result is a *T.
func DecodeInto[T any](c *Codec, data []byte) (*T, error) {
	v, err := c.Decode(data)
	if err != nil {
		return nil, err
	}
	out, ok := v.(*T)
	if !ok {
		return nil, &DecodeError{Reason: fmt.Sprintf("decoded %T, want %T", v, new(T))}
	}
	return out, nil
}
