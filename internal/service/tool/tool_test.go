package tool

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boswell-ai/boswell-mcp/internal/boswell"
	"github.com/stretchr/testify/assert"
	testifyrequire "github.com/stretchr/testify/require"
)

// stubBackend records every request the dispatcher sends.
type stubBackend struct {
	calls   int
	method  string
	path    string
	query   map[string]string
	body    map[string]any
	status  int
	payload string
}

func newStubBackend(t *testing.T) (*stubBackend, *Service) {
	stub := &stubBackend{status: http.StatusOK, payload: `{"ok": true}`}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.calls++
		stub.method = r.Method
		stub.path = r.URL.Path
		stub.query = map[string]string{}
		for k := range r.URL.Query() {
			stub.query[k] = r.URL.Query().Get(k)
		}
		if r.Method == http.MethodPost {
			raw, _ := io.ReadAll(r.Body)
			stub.body = nil
			_ = json.Unmarshal(raw, &stub.body)
		}
		w.WriteHeader(stub.status)
		_, _ = w.Write([]byte(stub.payload))
	}))
	t.Cleanup(srv.Close)

	return stub, NewService(boswell.New(srv.URL, nil), nil, nil)
}

func TestExecuteReadTools(t *testing.T) {
	tests := []struct {
		name      string
		tool      string
		args      map[string]any
		wantPath  string
		wantQuery map[string]string
	}{
		{
			name:      "brief defaults branch",
			tool:      "boswell_brief",
			args:      map[string]any{},
			wantPath:  "/quick-brief",
			wantQuery: map[string]string{"branch": "command-center"},
		},
		{
			name:      "brief with explicit branch",
			tool:      "boswell_brief",
			args:      map[string]any{"branch": "iris"},
			wantPath:  "/quick-brief",
			wantQuery: map[string]string{"branch": "iris"},
		},
		{
			name:      "branches takes no parameters",
			tool:      "boswell_branches",
			args:      map[string]any{},
			wantPath:  "/branches",
			wantQuery: map[string]string{},
		},
		{
			name:      "head forwards branch",
			tool:      "boswell_head",
			args:      map[string]any{"branch": "family"},
			wantPath:  "/head",
			wantQuery: map[string]string{"branch": "family"},
		},
		{
			name:      "log omits absent limit",
			tool:      "boswell_log",
			args:      map[string]any{"branch": "iris"},
			wantPath:  "/log",
			wantQuery: map[string]string{"branch": "iris"},
		},
		{
			name:      "log renders integer limit",
			tool:      "boswell_log",
			args:      map[string]any{"branch": "iris", "limit": float64(5)},
			wantPath:  "/log",
			wantQuery: map[string]string{"branch": "iris", "limit": "5"},
		},
		{
			name:      "search maps query to q",
			tool:      "boswell_search",
			args:      map[string]any{"query": "resonance", "limit": float64(3)},
			wantPath:  "/search",
			wantQuery: map[string]string{"q": "resonance", "limit": "3"},
		},
		{
			name:      "search forwards string limit untouched",
			tool:      "boswell_search",
			args:      map[string]any{"query": "x", "limit": "7"},
			wantPath:  "/search",
			wantQuery: map[string]string{"q": "x", "limit": "7"},
		},
		{
			name:      "recall by hash",
			tool:      "boswell_recall",
			args:      map[string]any{"hash": "abc123"},
			wantPath:  "/recall",
			wantQuery: map[string]string{"hash": "abc123"},
		},
		{
			name:      "links with filters",
			tool:      "boswell_links",
			args:      map[string]any{"branch": "iris", "link_type": "causal"},
			wantPath:  "/links",
			wantQuery: map[string]string{"branch": "iris", "link_type": "causal"},
		},
		{
			name:      "graph",
			tool:      "boswell_graph",
			args:      map[string]any{},
			wantPath:  "/graph",
			wantQuery: map[string]string{},
		},
		{
			name:      "reflect",
			tool:      "boswell_reflect",
			args:      map[string]any{},
			wantPath:  "/reflect",
			wantQuery: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub, svc := newStubBackend(t)
			result := svc.Execute(context.Background(), tt.tool, tt.args)

			testifyrequire.Equal(t, 1, stub.calls)
			assert.Equal(t, http.MethodGet, stub.method)
			assert.Equal(t, tt.wantPath, stub.path)
			assert.Equal(t, tt.wantQuery, stub.query)
			assert.Equal(t, map[string]any{"ok": true}, result)
		})
	}
}

func TestExecuteCommitInjectsProvenance(t *testing.T) {
	stub, svc := newStubBackend(t)
	content := map[string]any{"decision": "ship it"}

	result := svc.Execute(context.Background(), "boswell_commit", map[string]any{
		"branch":  "command-center",
		"content": content,
		"message": "record decision",
		"tags":    []any{"infra"},
	})

	testifyrequire.Equal(t, 1, stub.calls)
	assert.Equal(t, http.MethodPost, stub.method)
	assert.Equal(t, "/commit", stub.path)
	assert.Equal(t, map[string]any{
		"branch":  "command-center",
		"content": content,
		"message": "record decision",
		"tags":    []any{"infra"},
		"author":  "boswell-mcp",
		"type":    "memory",
	}, stub.body)
	assert.Equal(t, map[string]any{"ok": true}, result)
}

func TestExecuteLinkDefaultsLinkType(t *testing.T) {
	stub, svc := newStubBackend(t)

	args := map[string]any{
		"source_blob":   "blob-a",
		"target_blob":   "blob-b",
		"source_branch": "iris",
		"target_branch": "family",
		"reasoning":     "same theme",
	}
	svc.Execute(context.Background(), "boswell_link", args)

	testifyrequire.Equal(t, 1, stub.calls)
	assert.Equal(t, "/link", stub.path)
	assert.Equal(t, "resonance", stub.body["link_type"])
	assert.Equal(t, "boswell-mcp", stub.body["created_by"])

	// explicit link_type wins over the default
	args["link_type"] = "causal"
	svc.Execute(context.Background(), "boswell_link", args)
	assert.Equal(t, "causal", stub.body["link_type"])
}

func TestExecuteCheckout(t *testing.T) {
	stub, svc := newStubBackend(t)
	svc.Execute(context.Background(), "boswell_checkout", map[string]any{"branch": "boswell"})

	testifyrequire.Equal(t, 1, stub.calls)
	assert.Equal(t, http.MethodPost, stub.method)
	assert.Equal(t, "/checkout", stub.path)
	assert.Equal(t, map[string]any{"branch": "boswell"}, stub.body)
}

func TestExecuteMissingRequiredArgumentSkipsBackend(t *testing.T) {
	tests := []struct {
		tool    string
		args    map[string]any
		missing string
	}{
		{tool: "boswell_head", args: map[string]any{}, missing: "branch"},
		{tool: "boswell_log", args: map[string]any{"limit": float64(5)}, missing: "branch"},
		{tool: "boswell_search", args: map[string]any{"branch": "iris"}, missing: "query"},
		{tool: "boswell_checkout", args: map[string]any{}, missing: "branch"},
		{
			tool:    "boswell_commit",
			args:    map[string]any{"branch": "iris", "content": map[string]any{}},
			missing: "message",
		},
		{
			tool: "boswell_link",
			args: map[string]any{
				"source_blob": "a", "target_blob": "b",
				"source_branch": "iris", "target_branch": "family",
			},
			missing: "reasoning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.tool+" without "+tt.missing, func(t *testing.T) {
			stub, svc := newStubBackend(t)
			result := svc.Execute(context.Background(), tt.tool, tt.args)

			assert.Zero(t, stub.calls, "backend must not be contacted")
			assert.Equal(t, map[string]any{"error": "missing required argument: " + tt.missing}, result)
		})
	}
}

func TestExecuteUnknownToolSkipsBackend(t *testing.T) {
	stub, svc := newStubBackend(t)
	result := svc.Execute(context.Background(), "boswell_teleport", map[string]any{})

	assert.Zero(t, stub.calls)
	assert.Equal(t, map[string]any{"error": "Unknown tool: boswell_teleport"}, result)
}

func TestExecutePassesBackendErrorThrough(t *testing.T) {
	stub, svc := newStubBackend(t)
	stub.status = http.StatusNotFound
	stub.payload = `{"detail": "no such branch"}`

	result := svc.Execute(context.Background(), "boswell_head", map[string]any{"branch": "ghost"})

	testifyrequire.Equal(t, 1, stub.calls)
	be, ok := result.(*boswell.Error)
	testifyrequire.True(t, ok, "expected backend error value, got %T", result)
	assert.Equal(t, "HTTP 404", be.Err)
	assert.Equal(t, `{"detail": "no such branch"}`, be.Details)
}
