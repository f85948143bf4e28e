// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Chunk is the predicate function for chunk builders.
type Chunk func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// ConversationMessage is the predicate function for conversationmessage builders.
type ConversationMessage func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Source is the predicate function for source builders.
type Source func(*sql.Selector)

// SourceSummary is the predicate function for sourcesummary builders.
type SourceSummary func(*sql.Selector)
