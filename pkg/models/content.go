package models

import "github.com/google/uuid"

// DocumentMetadata is the JSON metadata column of a document.
type DocumentMetadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	SourceURL   string `json:"source_url,omitempty"`
	OGURL       string `json:"og_url,omitempty"`
}

// Document is one crawled page belonging to a source. Content is the page
// rendered as markdown.
type Document struct {
	ID       uuid.UUID        `json:"document_id"`
	SourceID uuid.UUID        `json:"source_id"`
	Content  string           `json:"content"`
	Metadata DocumentMetadata `json:"metadata"`
}

// ChunkHeaders is the h1/h2/h3 header path a chunk was extracted under.
// Absent levels are empty strings.
type ChunkHeaders struct {
	H1 string `json:"h1,omitempty"`
	H2 string `json:"h2,omitempty"`
	H3 string `json:"h3,omitempty"`
}

// Merge unions two header paths, preferring non-empty values per level.
func (h ChunkHeaders) Merge(other ChunkHeaders) ChunkHeaders {
	out := h
	if out.H1 == "" {
		out.H1 = other.H1
	}
	if out.H2 == "" {
		out.H2 = other.H2
	}
	if out.H3 == "" {
		out.H3 = other.H3
	}
	return out
}

// Chunk is a token-bounded slice of a document, the unit of indexing.
// Content is the headers and text concatenated, used for embedding.
type Chunk struct {
	ID         uuid.UUID    `json:"chunk_id"`
	SourceID   uuid.UUID    `json:"source_id"`
	DocumentID uuid.UUID    `json:"document_id"`
	Headers    ChunkHeaders `json:"headers"`
	Text       string       `json:"text"`
	Content    string       `json:"content"`
	TokenCount int          `json:"token_count"`
	PageTitle  string       `json:"page_title,omitempty"`
	PageURL    string       `json:"page_url,omitempty"`
}

// SourceSummary is the LLM-authored summary of a completed source.
type SourceSummary struct {
	ID       uuid.UUID `json:"summary_id"`
	SourceID uuid.UUID `json:"source_id"`
	Summary  string    `json:"summary"`
	Keywords []string  `json:"keywords"`
}
