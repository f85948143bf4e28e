package llm

import (
	"github.com/anthropics/anthropic-sdk-go"
)

// RagSearchToolName is the single retrieval tool exposed to the chat model.
const RagSearchToolName = "rag_search"

const multiQueryToolName = "multi_query_tool"

// ToolSpec describes a tool offered to the model: its name, what it does,
// and the JSON schema of its input object.
type ToolSpec struct {
	Name        string
	Description string
	Properties  map[string]any
	Required    []string
}

// param converts the spec into the SDK tool parameter. The input schema is
// assembled as a plain map and attached through ExtraFields so it serializes
// as a standard JSON Schema object.
func (t ToolSpec) param() anthropic.ToolUnionParam {
	schema := map[string]any{
		"type":       "object",
		"properties": t.Properties,
	}
	if len(t.Required) > 0 {
		schema["required"] = t.Required
	}
	u := anthropic.ToolUnionParamOfTool(anthropic.ToolInputSchemaParam{ExtraFields: schema}, t.Name)
	if u.OfTool != nil && t.Description != "" {
		u.OfTool.Description = anthropic.String(t.Description)
	}
	return u
}

// ragSearchTool is the retrieval tool advertised on every chat turn.
func ragSearchTool() ToolSpec {
	return ToolSpec{
		Name: RagSearchToolName,
		Description: "Search the user's indexed documentation sources for passages relevant to a query. " +
			"Use this before answering any question the loaded sources might cover.",
		Properties: map[string]any{
			"rag_query": map[string]any{
				"type":        "string",
				"description": "A focused, self-contained search query.",
			},
		},
		Required: []string{"rag_query"},
	}
}

// multiQueryTool records query expansions during retrieval. It is forced via
// tool choice, never advertised to the chat model.
func multiQueryTool() ToolSpec {
	return ToolSpec{
		Name:        multiQueryToolName,
		Description: "Record alternative phrasings of a search query.",
		Properties: map[string]any{
			"queries": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Alternative phrasings of the query, each self-contained.",
			},
		},
		Required: []string{"queries"},
	}
}
