// Package registry holds the static catalog of tools exposed by the gateway.
// The catalog is defined once at init and never mutated, so it is safe to
// share across requests.
package registry

import "github.com/mark3labs/mcp-go/mcp"

// DefaultBranch is the branch used when a caller does not name one.
const DefaultBranch = "command-center"

var tools = []mcp.Tool{
	{
		Name: "boswell_brief",
		Description: "Get a quick context brief of current Boswell state - recent commits, pending sessions, " +
			"all branches. Use this at conversation start to understand what's been happening.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"branch": map[string]any{
					"type":        "string",
					"description": "Branch to focus on (default: " + DefaultBranch + ")",
					"default":     DefaultBranch,
				},
			},
		},
	},
	{
		Name: "boswell_branches",
		Description: "List all cognitive branches in Boswell. Branches are: tint-atlanta (CRM/business), " +
			"iris (research/BCI), tint-empire (franchise), family (personal), command-center (infrastructure), " +
			"boswell (memory system).",
		InputSchema: mcp.ToolInputSchema{Type: "object", Properties: map[string]any{}},
	},
	{
		Name:        "boswell_head",
		Description: "Get the current HEAD commit for a specific branch.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"branch": map[string]any{"type": "string", "description": "Branch name"},
			},
			Required: []string{"branch"},
		},
	},
	{
		Name:        "boswell_log",
		Description: "Get commit history for a branch. Shows what memories have been recorded.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"branch": map[string]any{"type": "string", "description": "Branch name"},
				"limit":  map[string]any{"type": "integer", "description": "Max commits (default: 10)", "default": 10},
			},
			Required: []string{"branch"},
		},
	},
	{
		Name:        "boswell_search",
		Description: "Search memories across all branches by keyword. Returns matching content with commit info.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"query":  map[string]any{"type": "string", "description": "Search query"},
				"branch": map[string]any{"type": "string", "description": "Optional: limit to branch"},
				"limit":  map[string]any{"type": "integer", "description": "Max results (default: 10)", "default": 10},
			},
			Required: []string{"query"},
		},
	},
	{
		Name:        "boswell_recall",
		Description: "Recall a specific memory by its blob hash or commit hash.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"hash":   map[string]any{"type": "string", "description": "Blob hash"},
				"commit": map[string]any{"type": "string", "description": "Or commit hash"},
			},
		},
	},
	{
		Name:        "boswell_links",
		Description: "List resonance links between memories. Shows cross-branch connections.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"branch":    map[string]any{"type": "string", "description": "Optional: filter by branch"},
				"link_type": map[string]any{"type": "string", "description": "Optional: resonance, causal, etc."},
			},
		},
	},
	{
		Name:        "boswell_graph",
		Description: "Get the full memory graph - all nodes and edges.",
		InputSchema: mcp.ToolInputSchema{Type: "object", Properties: map[string]any{}},
	},
	{
		Name:        "boswell_reflect",
		Description: "Get AI-surfaced insights - highly connected memories and patterns.",
		InputSchema: mcp.ToolInputSchema{Type: "object", Properties: map[string]any{}},
	},
	{
		Name:        "boswell_commit",
		Description: "Commit a new memory to Boswell. Preserves important decisions and context.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"branch":  map[string]any{"type": "string", "description": "Branch to commit to"},
				"content": map[string]any{"type": "object", "description": "Memory content as JSON"},
				"message": map[string]any{"type": "string", "description": "Commit message"},
				"tags": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Optional tags",
				},
			},
			Required: []string{"branch", "content", "message"},
		},
	},
	{
		Name:        "boswell_link",
		Description: "Create a resonance link between two memories across branches.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"source_blob":   map[string]any{"type": "string"},
				"target_blob":   map[string]any{"type": "string"},
				"source_branch": map[string]any{"type": "string"},
				"target_branch": map[string]any{"type": "string"},
				"link_type":     map[string]any{"type": "string", "default": "resonance"},
				"reasoning":     map[string]any{"type": "string", "description": "Why connected"},
			},
			Required: []string{"source_blob", "target_blob", "source_branch", "target_branch", "reasoning"},
		},
	},
	{
		Name:        "boswell_checkout",
		Description: "Switch focus to a different cognitive branch.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"branch": map[string]any{"type": "string", "description": "Branch to check out"},
			},
			Required: []string{"branch"},
		},
	},
}

// List returns the tool descriptors in their fixed, stable order.
// Callers must not modify the returned slice.
func List() []mcp.Tool {
	return tools
}

// Count returns the number of registered tools.
func Count() int {
	return len(tools)
}
