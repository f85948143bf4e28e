package serializer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

func TestRoundTripRegisteredRecords(t *testing.T) {
	codec := NewCodec()
	convID := uuid.New()
	sourceID := uuid.New()

	tests := []struct {
		name   string
		record any
	}{
		{
			name: "conversation message with all block kinds",
			record: models.ConversationMessage{
				ID:             uuid.New(),
				ConversationID: convID,
				Role:           models.RoleAssistant,
				Content: models.ContentBlocks{
					&models.TextBlock{Text: "searching the docs"},
					&models.ToolUseBlock{ID: "toolu_1", Name: "rag_search", Input: map[string]any{"rag_query": "how to deploy"}},
					&models.ToolResultBlock{ToolUseID: "toolu_1", Content: "result text", IsError: false},
				},
			},
		},
		{
			name: "pending message",
			record: models.PendingMessage{
				ConversationMessage: models.ConversationMessage{
					ID:             uuid.New(),
					ConversationID: convID,
					Role:           models.RoleUser,
					Content:        models.ContentBlocks{&models.TextBlock{Text: "hello"}},
				},
			},
		},
		{
			name: "conversation history",
			record: models.ConversationHistory{
				ConversationID: convID,
				UserID:         uuid.New(),
				Messages: []models.ConversationMessage{
					{
						ID:             uuid.New(),
						ConversationID: convID,
						Role:           models.RoleUser,
						Content:        models.ContentBlocks{&models.TextBlock{Text: "first"}},
					},
				},
				TokenCount: 42,
			},
		},
		{
			name: "document",
			record: models.Document{
				ID:       uuid.New(),
				SourceID: sourceID,
				Content:  "# Title\n\nBody text.",
				Metadata: models.DocumentMetadata{Title: "Title", SourceURL: "https://docs.example.com/page"},
			},
		},
		{
			name: "chunk",
			record: models.Chunk{
				ID:         uuid.New(),
				SourceID:   sourceID,
				DocumentID: uuid.New(),
				Headers:    models.ChunkHeaders{H1: "Title", H2: "Install"},
				Text:       "install with the CLI",
				Content:    "Title\nInstall\ninstall with the CLI",
				TokenCount: 5,
			},
		},
		{
			name: "source summary",
			record: models.SourceSummary{
				ID:       uuid.New(),
				SourceID: sourceID,
				Summary:  "API docs for the deploy service.",
				Keywords: []string{"deploy", "api"},
			},
		},
		{
			name: "content processing event",
			record: models.ContentProcessingEvent{
				SourceID:  sourceID,
				Stage:     models.StageChunksGenerated,
				Metadata:  map[string]any{"chunks": float64(12)},
				Timestamp: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
			},
		},
		{
			name: "crawl job details",
			record: models.CrawlJobDetails{
				SourceID:    sourceID,
				UserID:      uuid.New(),
				URL:         "https://docs.example.com",
				FirecrawlID: "fc-123",
			},
		},
		{
			name: "processing job details",
			record: models.ProcessingJobDetails{
				SourceID:    sourceID,
				UserID:      uuid.New(),
				FirecrawlID: "fc-123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := codec.Encode(tt.record)
			require.NoError(t, err)

			decoded, err := codec.Decode(data)
			require.NoError(t, err)

			// Decode returns a pointer to the concrete registered type.
			require.IsType(t, ptrTo(tt.record), decoded)
			assert.EqualValues(t, ptrTo(tt.record), decoded)
		})
	}
}

func ptrTo(v any) any {
	switch tv := v.(type) {
	case models.ConversationMessage:
		return &tv
	case models.PendingMessage:
		return &tv
	case models.ConversationHistory:
		return &tv
	case models.Document:
		return &tv
	case models.Chunk:
		return &tv
	case models.SourceSummary:
		return &tv
	case models.ContentProcessingEvent:
		return &tv
	case models.CrawlJobDetails:
		return &tv
	case models.ProcessingJobDetails:
		return &tv
	default:
		return v
	}
}

func TestRoundTripTimestamps(t *testing.T) {
	codec := NewCodec()

	t.Run("aware timestamp keeps its offset", func(t *testing.T) {
		loc := time.FixedZone("", 2*60*60)
		aware := time.Date(2026, 7, 14, 9, 0, 0, 500, loc)

		data, err := codec.Encode(aware)
		require.NoError(t, err)

		decoded, err := codec.Decode(data)
		require.NoError(t, err)

		got, ok := decoded.(time.Time)
		require.True(t, ok, "aware timestamps decode to time.Time")
		assert.True(t, aware.Equal(got))
		_, offset := got.Zone()
		assert.Equal(t, 2*60*60, offset)
	})

	t.Run("naive timestamp round-trips as LocalTime", func(t *testing.T) {
		naive := NewLocalTime(time.Date(2026, 7, 14, 9, 0, 0, 0, time.UTC))

		data, err := codec.Encode(naive)
		require.NoError(t, err)

		decoded, err := codec.Decode(data)
		require.NoError(t, err)

		got, ok := decoded.(LocalTime)
		require.True(t, ok, "naive timestamps decode to LocalTime")
		assert.True(t, naive.Time.Equal(got.Time))
	})

	t.Run("naive and aware wire forms differ", func(t *testing.T) {
		at := time.Date(2026, 7, 14, 9, 0, 0, 0, time.UTC)

		awareData, err := codec.Encode(at)
		require.NoError(t, err)
		naiveData, err := codec.Encode(NewLocalTime(at))
		require.NoError(t, err)

		assert.NotEqual(t, string(awareData), string(naiveData))
	})
}

func TestRoundTripUUIDAndContainers(t *testing.T) {
	codec := NewCodec()
	id := uuid.New()

	data, err := codec.Encode(map[string]any{
		"id":    id,
		"tags":  []any{"a", "b"},
		"count": 3,
	})
	require.NoError(t, err)

	decoded, err := codec.Decode(data)
	require.NoError(t, err)

	m, ok := decoded.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, id, m["id"])
	assert.Equal(t, []any{"a", "b"}, m["tags"])
	assert.Equal(t, float64(3), m["count"])
}

func TestDecodeUnknownTagReturnsRawMapping(t *testing.T) {
	codec := NewCodec()

	decoded, err := codec.Decode([]byte(`{"__type":"kollektiv.Retired","data":{"field":"value"}}`))
	require.NoError(t, err)

	m, ok := decoded.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "value", m["field"])
}

func TestDecodeMalformedPayload(t *testing.T) {
	codec := NewCodec()

	_, err := codec.Decode([]byte(`{"unterminated`))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecodeTaggedDataMismatch(t *testing.T) {
	codec := NewCodec()

	_, err := codec.Decode([]byte(`{"__type":"kollektiv.Chunk","data":{"token_count":"not-a-number"}}`))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "kollektiv.Chunk", decodeErr.Tag)
}

func TestEncodeUnserializableValue(t *testing.T) {
	codec := NewCodec()

	_, err := codec.Encode(map[string]any{"fn": func() {}})
	require.Error(t, err)
}

func TestDecodeInto(t *testing.T) {
	codec := NewCodec()
	event := models.ContentProcessingEvent{
		SourceID:  uuid.New(),
		Stage:     models.StageCompleted,
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := codec.Encode(event)
	require.NoError(t, err)

	got, err := DecodeInto[models.ContentProcessingEvent](codec, data)
	require.NoError(t, err)
	assert.Equal(t, event, *got)

	_, err = DecodeInto[models.Chunk](codec, data)
	require.Error(t, err)
}
