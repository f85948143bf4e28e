package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kollektiv-ai/kollektiv/ent/source"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	testdb "github.com/kollektiv-ai/kollektiv/test/database"
)

func validAddSourceRequest(userID uuid.UUID) models.AddSourceRequest {
	return models.AddSourceRequest{
		RequestID:  uuid.New(),
		UserID:     userID,
		SourceType: models.SourceTypeWeb,
		Config: &models.CrawlConfig{
			URL:       "https://docs.example.com",
			PageLimit: 50,
			MaxDepth:  2,
		},
	}
}

func TestSourceService_CreateSource(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSourceService(client.Client)
	ctx := context.Background()

	t.Run("creates source in stage created", func(t *testing.T) {
		req := validAddSourceRequest(uuid.New())

		src, err := service.CreateSource(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.UserID, src.UserID)
		assert.Equal(t, req.RequestID, src.RequestID)
		assert.Equal(t, source.StageCreated, src.Stage)
		assert.Equal(t, source.SourceTypeWeb, src.SourceType)
		assert.Equal(t, "https://docs.example.com", src.Metadata.CrawlConfig.URL)
		assert.Equal(t, 0, src.Metadata.PagesCrawled)
	})

	t.Run("applies crawl defaults", func(t *testing.T) {
		req := validAddSourceRequest(uuid.New())
		req.Config = &models.CrawlConfig{URL: "https://docs.example.com"}
		req.SourceType = ""

		src, err := service.CreateSource(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 100, src.Metadata.CrawlConfig.PageLimit)
		assert.Equal(t, 3, src.Metadata.CrawlConfig.MaxDepth)
		assert.Equal(t, source.SourceTypeWeb, src.SourceType)
	})

	t.Run("validates required fields and bounds", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*models.AddSourceRequest)
		}{
			{"missing request_id", func(r *models.AddSourceRequest) { r.RequestID = uuid.Nil }},
			{"missing user_id", func(r *models.AddSourceRequest) { r.UserID = uuid.Nil }},
			{"missing config", func(r *models.AddSourceRequest) { r.Config = nil }},
			{"missing url", func(r *models.AddSourceRequest) { r.Config.URL = "" }},
			{"bad url scheme", func(r *models.AddSourceRequest) { r.Config.URL = "ftp://example.com" }},
			{"page limit too high", func(r *models.AddSourceRequest) { r.Config.PageLimit = 1001 }},
			{"page limit negative", func(r *models.AddSourceRequest) { r.Config.PageLimit = -1 }},
			{"depth too high", func(r *models.AddSourceRequest) { r.Config.MaxDepth = 11 }},
			{"pattern without slash", func(r *models.AddSourceRequest) {
				r.Config.IncludePatterns = []string{"docs/*"}
			}},
			{"exclude pattern without slash", func(r *models.AddSourceRequest) {
				r.Config.ExcludePatterns = []string{"blog"}
			}},
			{"unknown source type", func(r *models.AddSourceRequest) { r.SourceType = "gopher" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validAddSourceRequest(uuid.New())
				tt.mutate(&req)
				_, err := service.CreateSource(ctx, req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
			})
		}
	})
}

func TestSourceService_GetSource(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSourceService(client.Client)
	ctx := context.Background()

	src, err := service.CreateSource(ctx, validAddSourceRequest(uuid.New()))
	require.NoError(t, err)

	t.Run("returns existing source", func(t *testing.T) {
		got, err := service.GetSource(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, src.ID, got.ID)
	})

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := service.GetSource(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSourceService_AdvanceStage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSourceService(client.Client)
	ctx := context.Background()

	t.Run("advances through the pipeline order", func(t *testing.T) {
		src, err := service.CreateSource(ctx, validAddSourceRequest(uuid.New()))
		require.NoError(t, err)

		for _, next := range []models.Stage{
			models.StageCrawlingStarted,
			models.StageProcessingScheduled,
			models.StageChunksGenerated,
			models.StageSummaryGenerated,
			models.StageCompleted,
		} {
			src, err = service.AdvanceStage(ctx, src.ID, next)
			require.NoError(t, err)
			assert.Equal(t, source.Stage(next), src.Stage)
		}
	})

	t.Run("repeating the current stage is a no-op", func(t *testing.T) {
		src, err := service.CreateSource(ctx, validAddSourceRequest(uuid.New()))
		require.NoError(t, err)

		src, err = service.AdvanceStage(ctx, src.ID, models.StageCrawlingStarted)
		require.NoError(t, err)

		// Redelivered notification
		src, err = service.AdvanceStage(ctx, src.ID, models.StageCrawlingStarted)
		require.NoError(t, err)
		assert.Equal(t, source.StageCrawlingStarted, src.Stage)
	})

	t.Run("skipping intermediate stages is allowed", func(t *testing.T) {
		src, err := service.CreateSource(ctx, validAddSourceRequest(uuid.New()))
		require.NoError(t, err)

		src, err = service.AdvanceStage(ctx, src.ID, models.StageChunksGenerated)
		require.NoError(t, err)
		assert.Equal(t, source.StageChunksGenerated, src.Stage)
	})

	t.Run("rejects regressions", func(t *testing.T) {
		src, err := service.CreateSource(ctx, validAddSourceRequest(uuid.New()))
		require.NoError(t, err)

		_, err = service.AdvanceStage(ctx, src.ID, models.StageChunksGenerated)
		require.NoError(t, err)

		_, err = service.AdvanceStage(ctx, src.ID, models.StageCrawlingStarted)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects transitions out of a terminal stage", func(t *testing.T) {
		src, err := service.CreateSource(ctx, validAddSourceRequest(uuid.New()))
		require.NoError(t, err)

		_, err = service.AdvanceStage(ctx, src.ID, models.StageCompleted)
		require.NoError(t, err)

		_, err = service.AdvanceStage(ctx, src.ID, models.StageFailed)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects unknown stage", func(t *testing.T) {
		src, err := service.CreateSource(ctx, validAddSourceRequest(uuid.New()))
		require.NoError(t, err)

		_, err = service.AdvanceStage(ctx, src.ID, "polishing")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSourceService_MarkFailed(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSourceService(client.Client)
	ctx := context.Background()

	t.Run("records failure stage and message", func(t *testing.T) {
		src, err := service.CreateSource(ctx, validAddSourceRequest(uuid.New()))
		require.NoError(t, err)

		err = service.MarkFailed(ctx, src.ID, "crawler returned no content")
		require.NoError(t, err)

		got, err := service.GetSource(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, source.StageFailed, got.Stage)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "crawler returned no content", *got.ErrorMessage)
	})

	t.Run("marking an already failed source again is a no-op", func(t *testing.T) {
		src, err := service.CreateSource(ctx, validAddSourceRequest(uuid.New()))
		require.NoError(t, err)

		require.NoError(t, service.MarkFailed(ctx, src.ID, "first"))
		require.NoError(t, service.MarkFailed(ctx, src.ID, "second"))

		got, err := service.GetSource(ctx, src.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "first", *got.ErrorMessage)
	})

	t.Run("rejects failing a completed source", func(t *testing.T) {
		src, err := service.CreateSource(ctx, validAddSourceRequest(uuid.New()))
		require.NoError(t, err)

		_, err = service.AdvanceStage(ctx, src.ID, models.StageCompleted)
		require.NoError(t, err)

		err = service.MarkFailed(ctx, src.ID, "too late")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSourceService_IncrementPagesCrawled(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSourceService(client.Client)
	ctx := context.Background()

	src, err := service.CreateSource(ctx, validAddSourceRequest(uuid.New()))
	require.NoError(t, err)

	t.Run("increments sequentially", func(t *testing.T) {
		for want := 1; want <= 3; want++ {
			count, err := service.IncrementPagesCrawled(ctx, src.ID)
			require.NoError(t, err)
			assert.Equal(t, want, count)
		}
	})

	t.Run("concurrent increments do not lose updates", func(t *testing.T) {
		const n = 10
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := service.IncrementPagesCrawled(ctx, src.ID)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		got, err := service.GetSource(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, 3+n, got.Metadata.PagesCrawled)
	})

	t.Run("records total pages independently", func(t *testing.T) {
		require.NoError(t, service.SetTotalPages(ctx, src.ID, 42))

		got, err := service.GetSource(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, 42, got.Metadata.TotalPages)
		assert.Equal(t, 13, got.Metadata.PagesCrawled)
	})
}

func TestSourceService_ListSources(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSourceService(client.Client)
	ctx := context.Background()

	userID := uuid.New()
	otherUser := uuid.New()

	for i := 0; i < 5; i++ {
		req := validAddSourceRequest(userID)
		req.Config.URL = fmt.Sprintf("https://docs.example.com/%d", i)
		src, err := service.CreateSource(ctx, req)
		require.NoError(t, err)
		if i%2 == 0 {
			_, err = service.AdvanceStage(ctx, src.ID, models.StageCompleted)
			require.NoError(t, err)
		}
	}
	_, err := service.CreateSource(ctx, validAddSourceRequest(otherUser))
	require.NoError(t, err)

	t.Run("filters by user", func(t *testing.T) {
		sources, total, err := service.ListSources(ctx, models.SourceFilters{UserID: &userID})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, sources, 5)
	})

	t.Run("filters by stage", func(t *testing.T) {
		sources, total, err := service.ListSources(ctx, models.SourceFilters{
			UserID: &userID,
			Stage:  models.StageCompleted,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		for _, src := range sources {
			assert.Equal(t, source.StageCompleted, src.Stage)
		}
	})

	t.Run("paginates with total count", func(t *testing.T) {
		sources, total, err := service.ListSources(ctx, models.SourceFilters{
			UserID: &userID,
			Limit:  2,
			Offset: 4,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, sources, 1)
	})

	t.Run("rejects unknown stage filter", func(t *testing.T) {
		_, _, err := service.ListSources(ctx, models.SourceFilters{Stage: "limbo"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
