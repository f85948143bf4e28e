package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Job holds the schema definition for the Job entity.
// Jobs are the durable work queue: crawl jobs wait for the external
// crawler, processing jobs run the ingestion pipeline.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("job_id").
			Default(uuid.New).
			Unique().
			Immutable(),
		field.Enum("job_type").
			Values("crawl", "processing").
			Immutable(),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("details", json.RawMessage{}).
			Comment("Typed payload envelope; data->>'firecrawl_id' locates crawl jobs"),
		field.UUID("result_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Entity produced by a completed job"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the job"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("job_type"),

		// Claim ordering: oldest pending first
		index.Fields("status", "created_at"),
		// Orphan scans
		index.Fields("status", "last_heartbeat_at"),
	}
}
