package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// SourceSummary holds the schema definition for the SourceSummary entity.
// One generated summary per source, injected into the chat system prompt.
type SourceSummary struct {
	ent.Schema
}

// Fields of the SourceSummary.
func (SourceSummary) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("summary_id").
			Default(uuid.New).
			Unique().
			Immutable(),
		field.UUID("source_id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.Text("summary"),
		field.JSON("keywords", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SourceSummary.
func (SourceSummary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source", Source.Type).
			Ref("summary").
			Field("source_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SourceSummary.
func (SourceSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_id").
			Unique(),
	}
}
