package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// Chunk holds the schema definition for the Chunk entity.
// A retrieval unit cut from a document; the embedded text lives in the
// vector index under the same id.
type Chunk struct {
	ent.Schema
}

// Fields of the Chunk.
func (Chunk) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("chunk_id").
			Default(uuid.New).
			Unique().
			Immutable(),
		field.UUID("source_id", uuid.UUID{}).
			Immutable(),
		field.UUID("document_id", uuid.UUID{}).
			Immutable(),
		field.JSON("headers", models.ChunkHeaders{}).
			Optional().
			Comment("h1/h2/h3 path at the chunk position"),
		field.Text("text").
			Comment("Chunk body without headers"),
		field.Text("content").
			Comment("Headers + body, the embedded form"),
		field.Int("token_count"),
		field.String("page_title").
			Optional(),
		field.String("page_url").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Chunk.
func (Chunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source", Source.Type).
			Ref("chunks").
			Field("source_id").
			Unique().
			Required().
			Immutable(),
		edge.From("document", Document.Type).
			Ref("chunks").
			Field("document_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Chunk.
func (Chunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_id"),
		index.Fields("document_id"),
	}
}
