package tool

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/boswell-ai/boswell-mcp/internal/registry"
	"github.com/boswell-ai/boswell-mcp/pkg/version"
)

// Provenance constants injected into write payloads so the backend can tell
// which writes originated from this gateway.
const (
	commitAuthor    = version.ServerName
	commitType      = "memory"
	defaultLinkType = "resonance"
)

// builderFunc translates caller arguments into the one backend request the
// tool maps to. A returned error means a required argument was missing; the
// backend is never contacted in that case.
type builderFunc func(args map[string]any) (*backendRequest, error)

// builders is the authoritative tool table. It is kept in lockstep with the
// schemas advertised by the registry package.
var builders = map[string]builderFunc{
	"boswell_brief":    buildBrief,
	"boswell_branches": buildBranches,
	"boswell_head":     buildHead,
	"boswell_log":      buildLog,
	"boswell_search":   buildSearch,
	"boswell_recall":   buildRecall,
	"boswell_links":    buildLinks,
	"boswell_graph":    buildGraph,
	"boswell_reflect":  buildReflect,
	"boswell_commit":   buildCommit,
	"boswell_link":     buildLink,
	"boswell_checkout": buildCheckout,
}

func buildBrief(args map[string]any) (*backendRequest, error) {
	branch := registry.DefaultBranch
	if v, ok := args["branch"]; ok {
		branch = queryValue(v)
	}
	return get("/quick-brief", url.Values{"branch": {branch}}), nil
}

func buildBranches(map[string]any) (*backendRequest, error) {
	return get("/branches", nil), nil
}

func buildHead(args map[string]any) (*backendRequest, error) {
	branch, err := require(args, "branch")
	if err != nil {
		return nil, err
	}
	return get("/head", url.Values{"branch": {queryValue(branch)}}), nil
}

func buildLog(args map[string]any) (*backendRequest, error) {
	branch, err := require(args, "branch")
	if err != nil {
		return nil, err
	}
	query := url.Values{"branch": {queryValue(branch)}}
	setOptional(query, args, "limit")
	return get("/log", query), nil
}

func buildSearch(args map[string]any) (*backendRequest, error) {
	q, err := require(args, "query")
	if err != nil {
		return nil, err
	}
	query := url.Values{"q": {queryValue(q)}}
	setOptional(query, args, "branch")
	setOptional(query, args, "limit")
	return get("/search", query), nil
}

func buildRecall(args map[string]any) (*backendRequest, error) {
	query := url.Values{}
	setOptional(query, args, "hash")
	setOptional(query, args, "commit")
	return get("/recall", query), nil
}

func buildLinks(args map[string]any) (*backendRequest, error) {
	query := url.Values{}
	setOptional(query, args, "branch")
	setOptional(query, args, "link_type")
	return get("/links", query), nil
}

func buildGraph(map[string]any) (*backendRequest, error) {
	return get("/graph", nil), nil
}

func buildReflect(map[string]any) (*backendRequest, error) {
	return get("/reflect", nil), nil
}

func buildCommit(args map[string]any) (*backendRequest, error) {
	payload := map[string]any{
		"author": commitAuthor,
		"type":   commitType,
	}
	for _, key := range []string{"branch", "content", "message"} {
		v, err := require(args, key)
		if err != nil {
			return nil, err
		}
		payload[key] = v
	}
	if tags, ok := args["tags"]; ok {
		payload["tags"] = tags
	}
	return post("/commit", payload), nil
}

func buildLink(args map[string]any) (*backendRequest, error) {
	payload := map[string]any{
		"link_type":  defaultLinkType,
		"created_by": version.ServerName,
	}
	for _, key := range []string{"source_blob", "target_blob", "source_branch", "target_branch", "reasoning"} {
		v, err := require(args, key)
		if err != nil {
			return nil, err
		}
		payload[key] = v
	}
	if linkType, ok := args["link_type"]; ok {
		payload["link_type"] = linkType
	}
	return post("/link", payload), nil
}

func buildCheckout(args map[string]any) (*backendRequest, error) {
	branch, err := require(args, "branch")
	if err != nil {
		return nil, err
	}
	return post("/checkout", map[string]any{"branch": branch}), nil
}

// require fetches a required argument. Only presence is checked: values are
// forwarded as given, without type validation or coercion.
func require(args map[string]any, key string) (any, error) {
	v, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("missing required argument: %s", key)
	}
	return v, nil
}

// setOptional adds the key to the query only when the caller supplied it,
// leaving the backend to apply its own default otherwise.
func setOptional(query url.Values, args map[string]any, key string) {
	if v, ok := args[key]; ok {
		query.Set(key, queryValue(v))
	}
}

// queryValue renders an argument as a query parameter. JSON numbers decode
// as float64, so integral values are formatted without a decimal point.
func queryValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
