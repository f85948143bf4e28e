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

// ConversationMessage holds the schema definition for the
// ConversationMessage entity. Messages are append-only.
type ConversationMessage struct {
	ent.Schema
}

// Fields of the ConversationMessage.
func (ConversationMessage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("message_id").
			Default(uuid.New).
			Unique().
			Immutable(),
		field.UUID("conversation_id", uuid.UUID{}).
			Immutable(),
		field.Enum("role").
			Values("user", "assistant").
			Immutable(),
		field.JSON("content", models.ContentBlocks{}).
			Comment("Tagged content blocks: text, tool_use, tool_result"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ConversationMessage.
func (ConversationMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ConversationMessage.
func (ConversationMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id"),

		// Message ordering
		index.Fields("conversation_id", "created_at"),
	}
}
