package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Conversation holds the schema definition for the Conversation entity.
// Durable conversation metadata; the hot message window lives in Redis.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("conversation_id").
			Default(uuid.New).
			Unique().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("title").
			Optional().
			Comment("Derived from the first user message"),
		field.JSON("message_ids", []uuid.UUID{}).
			Optional().
			Comment("Message ordering"),
		field.Int("token_count").
			Default(0).
			Comment("Estimated size of the materialized history"),
		field.JSON("data_sources", []uuid.UUID{}).
			Optional().
			Comment("Sources available to this conversation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", ConversationMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),

		// Listing ordered by recency
		index.Fields("user_id", "updated_at"),
	}
}
