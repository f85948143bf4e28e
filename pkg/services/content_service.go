package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/ent"
	"github.com/kollektiv-ai/kollektiv/ent/chunk"
	"github.com/kollektiv-ai/kollektiv/ent/document"
	"github.com/kollektiv-ai/kollektiv/ent/source"
	"github.com/kollektiv-ai/kollektiv/ent/sourcesummary"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// ContentService persists crawled documents, their chunks, and source
// summaries. Writes are idempotent upserts keyed on entity id, so pipeline
// retries do not duplicate content.
type ContentService struct {
	client *ent.Client
}

// NewContentService creates a new content service
func NewContentService(client *ent.Client) *ContentService {
	return &ContentService{client: client}
}

// SaveDocuments upserts a batch of documents in a single transaction and
// returns the stored rows in input order. Documents without an id are
// assigned one here.
func (s *ContentService) SaveDocuments(ctx context.Context, docs []models.Document) ([]*ent.Document, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	ids := make([]uuid.UUID, len(docs))
	builders := make([]*ent.DocumentCreate, len(docs))
	for i, doc := range docs {
		if doc.SourceID == uuid.Nil {
			return nil, NewValidationError("source_id", "required")
		}
		id := doc.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		ids[i] = id
		builders[i] = tx.Document.Create().
			SetID(id).
			SetSourceID(doc.SourceID).
			SetContent(doc.Content).
			SetMetadata(doc.Metadata)
	}

	err = tx.Document.CreateBulk(builders...).
		OnConflictColumns(document.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, NewDatabaseError("save", "document", err)
	}

	rows, err := tx.Document.Query().
		Where(document.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, NewDatabaseError("save", "document", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit documents: %w", err)
	}

	return sortByIDs(rows, ids, func(d *ent.Document) uuid.UUID { return d.ID }), nil
}

// SaveChunks upserts a batch of chunks in a single transaction and returns
// the stored rows in input order.
func (s *ContentService) SaveChunks(ctx context.Context, chunks []models.Chunk) ([]*ent.Chunk, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	ids := make([]uuid.UUID, len(chunks))
	builders := make([]*ent.ChunkCreate, len(chunks))
	for i, c := range chunks {
		if c.SourceID == uuid.Nil {
			return nil, NewValidationError("source_id", "required")
		}
		if c.DocumentID == uuid.Nil {
			return nil, NewValidationError("document_id", "required")
		}
		id := c.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		ids[i] = id
		builders[i] = tx.Chunk.Create().
			SetID(id).
			SetSourceID(c.SourceID).
			SetDocumentID(c.DocumentID).
			SetHeaders(c.Headers).
			SetText(c.Text).
			SetContent(c.Content).
			SetTokenCount(c.TokenCount).
			SetPageTitle(c.PageTitle).
			SetPageURL(c.PageURL)
	}

	err = tx.Chunk.CreateBulk(builders...).
		OnConflictColumns(chunk.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, NewDatabaseError("save", "chunk", err)
	}

	rows, err := tx.Chunk.Query().
		Where(chunk.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, NewDatabaseError("save", "chunk", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit chunks: %w", err)
	}

	return sortByIDs(rows, ids, func(c *ent.Chunk) uuid.UUID { return c.ID }), nil
}

// SaveSummary upserts the summary for a source; each source has at most one
func (s *ContentService) SaveSummary(ctx context.Context, summary models.SourceSummary) (models.SourceSummary, error) {
	if summary.SourceID == uuid.Nil {
		return models.SourceSummary{}, NewValidationError("source_id", "required")
	}
	if summary.Summary == "" {
		return models.SourceSummary{}, NewValidationError("summary", "required")
	}

	id := summary.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	err := s.client.SourceSummary.Create().
		SetID(id).
		SetSourceID(summary.SourceID).
		SetSummary(summary.Summary).
		SetKeywords(summary.Keywords).
		OnConflictColumns(sourcesummary.FieldSourceID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return models.SourceSummary{}, NewDatabaseError("save", "source_summary", err)
	}

	// Refetch by source id: on conflict the original row id is kept
	row, err := s.client.SourceSummary.Query().
		Where(sourcesummary.SourceIDEQ(summary.SourceID)).
		Only(ctx)
	if err != nil {
		return models.SourceSummary{}, NewDatabaseError("save", "source_summary", err)
	}

	return summaryModel(row), nil
}

// GetSummary returns the summary of a source, or ErrNotFound if none exists
func (s *ContentService) GetSummary(ctx context.Context, sourceID uuid.UUID) (models.SourceSummary, error) {
	row, err := s.client.SourceSummary.Query().
		Where(sourcesummary.SourceIDEQ(sourceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.SourceSummary{}, ErrNotFound
		}
		return models.SourceSummary{}, NewDatabaseError("get", "source_summary", err)
	}

	return summaryModel(row), nil
}

// ListUserSummaries returns summaries of the user's completed sources, newest
// first. Used to assemble the chat system prompt.
func (s *ContentService) ListUserSummaries(ctx context.Context, userID uuid.UUID) ([]models.SourceSummary, error) {
	rows, err := s.client.SourceSummary.Query().
		Where(sourcesummary.HasSourceWith(
			source.UserIDEQ(userID),
			source.StageEQ(source.StageCompleted),
		)).
		Order(ent.Desc(sourcesummary.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, NewDatabaseError("list", "source_summary", err)
	}

	summaries := make([]models.SourceSummary, len(rows))
	for i, row := range rows {
		summaries[i] = summaryModel(row)
	}
	return summaries, nil
}

// summaryModel maps a summary row onto its domain shape.
func summaryModel(row *ent.SourceSummary) models.SourceSummary {
	return models.SourceSummary{
		ID:       row.ID,
		SourceID: row.SourceID,
		Summary:  row.Summary,
		Keywords: row.Keywords,
	}
}

// CountChunks returns the number of stored chunks for a source
func (s *ContentService) CountChunks(ctx context.Context, sourceID uuid.UUID) (int, error) {
	count, err := s.client.Chunk.Query().
		Where(chunk.SourceIDEQ(sourceID)).
		Count(ctx)
	if err != nil {
		return 0, NewDatabaseError("count", "chunk", err)
	}

	return count, nil
}

// sortByIDs reorders rows to match the id order of the input batch
func sortByIDs[T any](rows []T, ids []uuid.UUID, id func(T) uuid.UUID) []T {
	byID := make(map[uuid.UUID]T, len(rows))
	for _, r := range rows {
		byID[id(r)] = r
	}

	out := make([]T, 0, len(ids))
	for _, want := range ids {
		if r, ok := byID[want]; ok {
			out = append(out, r)
		}
	}

	return out
}
