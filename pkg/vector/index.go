package vector

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// CollectionName derives the fixed per-user collection name from the user id.
func CollectionName(userID uuid.UUID) string {
	return "user_" + hex.EncodeToString(userID[:])
}

// NewQdrantClient connects to qdrant over gRPC.
func NewQdrantClient(cfg *config.QdrantConfig) (*qdrant.Client, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("connect qdrant: %w", err)
	}
	return client, nil
}

// Match is one vector search hit. Qdrant reports cosine similarity; Distance
// is 1 - score so smaller means closer.
type Match struct {
	ID        string
	Content   string
	SourceURL string
	PageTitle string
	Distance  float32
}

// Index stores and searches chunks in per-user collections.
type Index struct {
	client   *qdrant.Client
	embedder Embedder
}

func NewIndex(client *qdrant.Client, embedder Embedder) *Index {
	return &Index{client: client, embedder: embedder}
}

// EnsureCollection creates the user's collection on first use. Concurrent
// creation races resolve to success.
func (ix *Index) EnsureCollection(ctx context.Context, userID uuid.UUID) error {
	name := CollectionName(userID)
	exists, err := ix.client.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check collection %s: %w", name, err)
	}
	if exists {
		return nil
	}
	err = ix.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(ix.embedder.Dimensions()),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		if s, ok := status.FromError(err); ok && s.Code() == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("create collection %s: %w", name, err)
	}
	slog.Info("Vector collection created", "collection", name)
	return nil
}

// AddChunks embeds and upserts the chunks that are not in the collection yet.
// Chunk ids are point ids, so re-adding the same chunks is a no-op.
func (ix *Index) AddChunks(ctx context.Context, userID uuid.UUID, chunks []models.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	if err := ix.EnsureCollection(ctx, userID); err != nil {
		return err
	}
	name := CollectionName(userID)

	ids := make([]*qdrant.PointId, len(chunks))
	for i, chunk := range chunks {
		ids[i] = qdrant.NewID(chunk.ID.String())
	}
	existing, err := ix.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: name,
		Ids:            ids,
		WithPayload:    qdrant.NewWithPayload(false),
		WithVectors:    qdrant.NewWithVectors(false),
	})
	if err != nil {
		return fmt.Errorf("check existing points in %s: %w", name, err)
	}
	present := make(map[string]struct{}, len(existing))
	for _, point := range existing {
		present[point.Id.GetUuid()] = struct{}{}
	}

	var missing []models.Chunk
	for _, chunk := range chunks {
		if _, ok := present[chunk.ID.String()]; !ok {
			missing = append(missing, chunk)
		}
	}
	if len(missing) == 0 {
		slog.Info("Chunks already indexed", "collection", name, "count", len(chunks))
		return nil
	}

	contents := make([]string, len(missing))
	for i, chunk := range missing {
		contents[i] = chunk.Content
	}
	vectors, err := ix.embedder.Embed(ctx, contents)
	if err != nil {
		return fmt.Errorf("embed %d chunks: %w", len(missing), err)
	}
	if len(vectors) != len(missing) {
		return fmt.Errorf("embed %d chunks: got %d vectors", len(missing), len(vectors))
	}

	points := make([]*qdrant.PointStruct, len(missing))
	for i, chunk := range missing {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(chunk.ID.String()),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				"content":    chunk.Content,
				"source_url": chunk.PageURL,
				"page_title": chunk.PageTitle,
			}),
		}
	}
	if _, err := ix.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: name,
		Points:         points,
		Wait:           qdrant.PtrOf(true),
	}); err != nil {
		return fmt.Errorf("upsert %d points into %s: %w", len(points), name, err)
	}
	slog.Info("Chunks indexed",
		"collection", name,
		"added", len(points),
		"skipped", len(chunks)-len(points))
	return nil
}

// Query embeds every query string, searches once per query, and merges the
// hits deduplicated by point id keeping the smallest distance, closest
// first. A user with no indexed sources has no collection yet and gets an
// empty result.
func (ix *Index) Query(ctx context.Context, userID uuid.UUID, queries []string, topK int) ([]Match, error) {
	if len(queries) == 0 {
		return nil, nil
	}
	name := CollectionName(userID)
	vectors, err := ix.embedder.Embed(ctx, queries)
	if err != nil {
		return nil, fmt.Errorf("embed %d queries: %w", len(queries), err)
	}

	var matches []Match
	for _, vec := range vectors {
		points, err := ix.client.Query(ctx, &qdrant.QueryPoints{
			CollectionName: name,
			Query:          qdrant.NewQuery(vec...),
			Limit:          qdrant.PtrOf(uint64(topK)),
			WithPayload:    qdrant.NewWithPayload(true),
		})
		if err != nil {
			if s, ok := status.FromError(err); ok && s.Code() == codes.NotFound {
				return nil, nil
			}
			return nil, fmt.Errorf("query collection %s: %w", name, err)
		}
		for _, point := range points {
			matches = append(matches, Match{
				ID:        point.Id.GetUuid(),
				Content:   point.Payload["content"].GetStringValue(),
				SourceURL: point.Payload["source_url"].GetStringValue(),
				PageTitle: point.Payload["page_title"].GetStringValue(),
				Distance:  1 - point.Score,
			})
		}
	}
	return dedupeMatches(matches), nil
}

// dedupeMatches collapses hits by id keeping the smallest distance, then
// orders closest first. Ties keep first-seen order.
func dedupeMatches(matches []Match) []Match {
	best := make(map[string]Match, len(matches))
	order := make([]string, 0, len(matches))
	for _, match := range matches {
		prev, seen := best[match.ID]
		if !seen {
			best[match.ID] = match
			order = append(order, match.ID)
			continue
		}
		if match.Distance < prev.Distance {
			best[match.ID] = match
		}
	}
	out := make([]Match, 0, len(order))
	for _, id := range order {
		out = append(out, best[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}
