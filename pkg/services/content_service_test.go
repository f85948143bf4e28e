package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/ent/source"
	"github.com/kollektiv-ai/kollektiv/pkg/database"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	testdb "github.com/kollektiv-ai/kollektiv/test/database"
)

func createTestSource(t *testing.T, client *database.Client, userID uuid.UUID) *ent.Source {
	t.Helper()
	src, err := client.Source.Create().
		SetUserID(userID).
		SetRequestID(uuid.New()).
		Save(context.Background())
	require.NoError(t, err)
	return src
}

func TestContentService_SaveDocuments(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContentService(client.Client)
	ctx := context.Background()

	src := createTestSource(t, client, uuid.New())

	t.Run("saves a batch in input order", func(t *testing.T) {
		docs := make([]models.Document, 3)
		for i := range docs {
			docs[i] = models.Document{
				ID:       uuid.New(),
				SourceID: src.ID,
				Content:  fmt.Sprintf("# Page %d\n\nbody", i),
				Metadata: models.DocumentMetadata{SourceURL: fmt.Sprintf("https://docs.example.com/%d", i)},
			}
		}

		rows, err := service.SaveDocuments(ctx, docs)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		for i, row := range rows {
			assert.Equal(t, docs[i].ID, row.ID)
			assert.Equal(t, docs[i].Content, row.Content)
			assert.False(t, row.CreatedAt.IsZero())
		}
	})

	t.Run("assigns ids when absent", func(t *testing.T) {
		rows, err := service.SaveDocuments(ctx, []models.Document{
			{SourceID: src.ID, Content: "anonymous page"},
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.NotEqual(t, uuid.Nil, rows[0].ID)
	})

	t.Run("re-saving the same ids upserts instead of duplicating", func(t *testing.T) {
		doc := models.Document{
			ID:       uuid.New(),
			SourceID: src.ID,
			Content:  "first version",
		}
		_, err := service.SaveDocuments(ctx, []models.Document{doc})
		require.NoError(t, err)

		doc.Content = "second version"
		rows, err := service.SaveDocuments(ctx, []models.Document{doc})
		require.NoError(t, err)
		assert.Equal(t, "second version", rows[0].Content)

		got, err := client.Document.Get(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, "second version", got.Content)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		rows, err := service.SaveDocuments(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, rows)
	})

	t.Run("rejects documents without a source", func(t *testing.T) {
		_, err := service.SaveDocuments(ctx, []models.Document{{Content: "floating"}})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestContentService_SaveChunks(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContentService(client.Client)
	ctx := context.Background()

	src := createTestSource(t, client, uuid.New())
	docs, err := service.SaveDocuments(ctx, []models.Document{
		{SourceID: src.ID, Content: "# Title\n\nbody"},
	})
	require.NoError(t, err)
	docID := docs[0].ID

	t.Run("saves chunks with headers and token counts", func(t *testing.T) {
		chunks := []models.Chunk{
			{
				ID:         uuid.New(),
				SourceID:   src.ID,
				DocumentID: docID,
				Headers:    models.ChunkHeaders{H1: "Title"},
				Text:       "body",
				Content:    "# Title\n\nbody",
				TokenCount: 5,
				PageTitle:  "Title",
				PageURL:    "https://docs.example.com/",
			},
		}

		rows, err := service.SaveChunks(ctx, chunks)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Title", rows[0].Headers.H1)
		assert.Equal(t, 5, rows[0].TokenCount)
	})

	t.Run("counts chunks per source", func(t *testing.T) {
		count, err := service.CountChunks(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("rejects chunks without a document", func(t *testing.T) {
		_, err := service.SaveChunks(ctx, []models.Chunk{{SourceID: src.ID, Text: "x"}})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestContentService_SaveSummary(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContentService(client.Client)
	ctx := context.Background()

	src := createTestSource(t, client, uuid.New())

	t.Run("creates then replaces the summary for a source", func(t *testing.T) {
		first, err := service.SaveSummary(ctx, models.SourceSummary{
			SourceID: src.ID,
			Summary:  "Covers installation and configuration.",
			Keywords: []string{"install", "configure"},
		})
		require.NoError(t, err)

		second, err := service.SaveSummary(ctx, models.SourceSummary{
			SourceID: src.ID,
			Summary:  "Covers installation, configuration, and upgrades.",
			Keywords: []string{"install", "configure", "upgrade"},
		})
		require.NoError(t, err)

		// Same row, updated in place
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Covers installation, configuration, and upgrades.", second.Summary)
		assert.Equal(t, []string{"install", "configure", "upgrade"}, second.Keywords)

		count, err := client.SourceSummary.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("validates summary content", func(t *testing.T) {
		_, err := service.SaveSummary(ctx, models.SourceSummary{SourceID: src.ID})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestContentService_ListUserSummaries(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContentService(client.Client)
	ctx := context.Background()

	userID := uuid.New()

	completed := createTestSource(t, client, userID)
	err := client.Source.UpdateOneID(completed.ID).SetStage(source.StageCompleted).Exec(ctx)
	require.NoError(t, err)
	_, err = service.SaveSummary(ctx, models.SourceSummary{
		SourceID: completed.ID,
		Summary:  "Completed source summary.",
	})
	require.NoError(t, err)

	// Source still mid-pipeline: its summary must not surface
	inFlight := createTestSource(t, client, userID)
	err = client.Source.UpdateOneID(inFlight.ID).SetStage(source.StageSummaryGenerated).Exec(ctx)
	require.NoError(t, err)
	_, err = service.SaveSummary(ctx, models.SourceSummary{
		SourceID: inFlight.ID,
		Summary:  "Not yet visible.",
	})
	require.NoError(t, err)

	// Another user's completed source
	other := createTestSource(t, client, uuid.New())
	err = client.Source.UpdateOneID(other.ID).SetStage(source.StageCompleted).Exec(ctx)
	require.NoError(t, err)
	_, err = service.SaveSummary(ctx, models.SourceSummary{
		SourceID: other.ID,
		Summary:  "Someone else's summary.",
	})
	require.NoError(t, err)

	summaries, err := service.ListUserSummaries(ctx, userID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Completed source summary.", summaries[0].Summary)
}
