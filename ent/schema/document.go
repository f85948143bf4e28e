package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// Document holds the schema definition for the Document entity.
// One crawled page in markdown form.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("document_id").
			Default(uuid.New).
			Unique().
			Immutable(),
		field.UUID("source_id", uuid.UUID{}).
			Immutable(),
		field.Text("content").
			Comment("Page markdown"),
		field.JSON("metadata", models.DocumentMetadata{}).
			Optional().
			Comment("Title, description, and URL provenance"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source", Source.Type).
			Ref("documents").
			Field("source_id").
			Unique().
			Required().
			Immutable(),
		edge.To("chunks", Chunk.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_id"),
	}
}
