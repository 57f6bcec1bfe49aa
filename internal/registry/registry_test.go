package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReturnsFixedCatalog(t *testing.T) {
	wantNames := []string{
		"boswell_brief",
		"boswell_branches",
		"boswell_head",
		"boswell_log",
		"boswell_search",
		"boswell_recall",
		"boswell_links",
		"boswell_graph",
		"boswell_reflect",
		"boswell_commit",
		"boswell_link",
		"boswell_checkout",
	}

	tools := List()
	require.Len(t, tools, len(wantNames))
	assert.Equal(t, len(wantNames), Count())

	for i, tool := range tools {
		assert.Equal(t, wantNames[i], tool.Name, "tool order must be stable")
		assert.NotEmpty(t, tool.Description, "tool %s must have a description", tool.Name)
		assert.Equal(t, "object", tool.InputSchema.Type)
	}
}

func TestListIsStableAcrossCalls(t *testing.T) {
	first := List()
	second := List()
	require.Equal(t, first, second)
}

func TestRequiredArguments(t *testing.T) {
	want := map[string][]string{
		"boswell_brief":    nil,
		"boswell_branches": nil,
		"boswell_head":     {"branch"},
		"boswell_log":      {"branch"},
		"boswell_search":   {"query"},
		"boswell_recall":   nil,
		"boswell_links":    nil,
		"boswell_graph":    nil,
		"boswell_reflect":  nil,
		"boswell_commit":   {"branch", "content", "message"},
		"boswell_link":     {"source_blob", "target_blob", "source_branch", "target_branch", "reasoning"},
		"boswell_checkout": {"branch"},
	}

	for _, tool := range List() {
		required, ok := want[tool.Name]
		require.True(t, ok, "unexpected tool %s", tool.Name)
		if required == nil {
			assert.Empty(t, tool.InputSchema.Required, "tool %s", tool.Name)
		} else {
			assert.Equal(t, required, tool.InputSchema.Required, "tool %s", tool.Name)
		}
	}
}

func TestAdvertisedDefaults(t *testing.T) {
	byName := make(map[string]map[string]any)
	for _, tool := range List() {
		byName[tool.Name] = tool.InputSchema.Properties
	}

	branch, ok := byName["boswell_brief"]["branch"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, DefaultBranch, branch["default"])

	limit, ok := byName["boswell_log"]["limit"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 10, limit["default"])

	linkType, ok := byName["boswell_link"]["link_type"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "resonance", linkType["default"])
}
