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

// Source holds the schema definition for the Source entity.
// A source is one ingested knowledge base (e.g. a crawled documentation site).
type Source struct {
	ent.Schema
}

// Fields of the Source.
func (Source) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("source_id").
			Default(uuid.New).
			Unique().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable().
			Comment("Owner of the source; scopes the vector collection"),
		field.UUID("request_id", uuid.UUID{}).
			Immutable().
			Comment("Client-supplied id of the originating add request"),
		field.Enum("source_type").
			Values("web", "github", "jira", "confluence").
			Default("web"),
		field.Enum("stage").
			Values("created", "crawling_started", "processing_scheduled",
				"chunks_generated", "summary_generated", "completed", "failed").
			Default("created").
			Comment("Ingestion progress; failed is absorbing"),
		field.UUID("job_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Active ingestion job"),
		field.JSON("metadata", models.SourceMetadata{}).
			Optional().
			Comment("Crawl configuration and page counters"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Source.
func (Source) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chunks", Chunk.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("summary", SourceSummary.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Source.
func (Source) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("stage"),

		// Listing a user's sources by state
		index.Fields("user_id", "stage"),
		index.Fields("user_id", "created_at"),
	}
}
