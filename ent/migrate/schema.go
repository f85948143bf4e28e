// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChunksColumns holds the columns for the "chunks" table.
	ChunksColumns = []*schema.Column{
		{Name: "chunk_id", Type: field.TypeUUID, Unique: true},
		{Name: "headers", Type: field.TypeJSON, Nullable: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "token_count", Type: field.TypeInt},
		{Name: "page_title", Type: field.TypeString, Nullable: true},
		{Name: "page_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "source_id", Type: field.TypeUUID},
	}
	// ChunksTable holds the schema information for the "chunks" table.
	ChunksTable = &schema.Table{
		Name:       "chunks",
		Columns:    ChunksColumns,
		PrimaryKey: []*schema.Column{ChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chunks_documents_chunks",
				Columns:    []*schema.Column{ChunksColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "chunks_sources_chunks",
				Columns:    []*schema.Column{ChunksColumns[9]},
				RefColumns: []*schema.Column{SourcesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chunk_source_id",
				Unique:  false,
				Columns: []*schema.Column{ChunksColumns[9]},
			},
			{
				Name:    "chunk_document_id",
				Unique:  false,
				Columns: []*schema.Column{ChunksColumns[8]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeUUID, Unique: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "message_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "token_count", Type: field.TypeInt, Default: 0},
		{Name: "data_sources", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_user_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1]},
			},
			{
				Name:    "conversation_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1], ConversationsColumns[7]},
			},
		},
	}
	// ConversationMessagesColumns holds the columns for the "conversation_messages" table.
	ConversationMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeUUID, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeUUID},
	}
	// ConversationMessagesTable holds the schema information for the "conversation_messages" table.
	ConversationMessagesTable = &schema.Table{
		Name:       "conversation_messages",
		Columns:    ConversationMessagesColumns,
		PrimaryKey: []*schema.Column{ConversationMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversation_messages_conversations_messages",
				Columns:    []*schema.Column{ConversationMessagesColumns[4]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversationmessage_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationMessagesColumns[4]},
			},
			{
				Name:    "conversationmessage_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationMessagesColumns[4], ConversationMessagesColumns[3]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "document_id", Type: field.TypeUUID, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "source_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_sources_documents",
				Columns:    []*schema.Column{DocumentsColumns[4]},
				RefColumns: []*schema.Column{SourcesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_source_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[4]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeUUID, Unique: true},
		{Name: "job_type", Type: field.TypeEnum, Enums: []string{"crawl", "processing"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "details", Type: field.TypeJSON},
		{Name: "result_id", Type: field.TypeUUID, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2]},
			},
			{
				Name:    "job_job_type",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1]},
			},
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[8]},
			},
			{
				Name:    "job_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[7]},
			},
		},
	}
	// SourcesColumns holds the columns for the "sources" table.
	SourcesColumns = []*schema.Column{
		{Name: "source_id", Type: field.TypeUUID, Unique: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "request_id", Type: field.TypeUUID},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"web", "github", "jira", "confluence"}, Default: "web"},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"created", "crawling_started", "processing_scheduled", "chunks_generated", "summary_generated", "completed", "failed"}, Default: "created"},
		{Name: "job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SourcesTable holds the schema information for the "sources" table.
	SourcesTable = &schema.Table{
		Name:       "sources",
		Columns:    SourcesColumns,
		PrimaryKey: []*schema.Column{SourcesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "source_user_id",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[1]},
			},
			{
				Name:    "source_stage",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[4]},
			},
			{
				Name:    "source_user_id_stage",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[1], SourcesColumns[4]},
			},
			{
				Name:    "source_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[1], SourcesColumns[8]},
			},
		},
	}
	// SourceSummariesColumns holds the columns for the "source_summaries" table.
	SourceSummariesColumns = []*schema.Column{
		{Name: "summary_id", Type: field.TypeUUID, Unique: true},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "source_id", Type: field.TypeUUID, Unique: true},
	}
	// SourceSummariesTable holds the schema information for the "source_summaries" table.
	SourceSummariesTable = &schema.Table{
		Name:       "source_summaries",
		Columns:    SourceSummariesColumns,
		PrimaryKey: []*schema.Column{SourceSummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "source_summaries_sources_summary",
				Columns:    []*schema.Column{SourceSummariesColumns[4]},
				RefColumns: []*schema.Column{SourcesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sourcesummary_source_id",
				Unique:  true,
				Columns: []*schema.Column{SourceSummariesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChunksTable,
		ConversationsTable,
		ConversationMessagesTable,
		DocumentsTable,
		JobsTable,
		SourcesTable,
		SourceSummariesTable,
	}
)

func init() {
	ChunksTable.ForeignKeys[0].RefTable = DocumentsTable
	ChunksTable.ForeignKeys[1].RefTable = SourcesTable
	ConversationMessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	DocumentsTable.ForeignKeys[0].RefTable = SourcesTable
	SourceSummariesTable.ForeignKeys[0].RefTable = SourcesTable
}
