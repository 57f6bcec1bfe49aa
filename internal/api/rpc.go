package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/boswell-ai/boswell-mcp/internal/registry"
	"github.com/boswell-ai/boswell-mcp/pkg/types"
	"github.com/boswell-ai/boswell-mcp/pkg/version"
	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// protocolVersion is the MCP protocol revision the gateway implements.
const protocolVersion = "2024-11-05"

// rpcHandler serves the JSON-RPC envelope over plain POST.
func (s *Server) rpcHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := decodeRequest(c)
		if !ok {
			return
		}

		resp := s.processRequest(c.Request.Context(), req)
		if resp == nil {
			// notifications get no envelope
			c.Status(http.StatusNoContent)
			return
		}

		// The only envelope-level error is an unknown method; tool failures
		// are carried inside result and keep HTTP 200.
		status := http.StatusOK
		if resp.Error != nil {
			status = http.StatusBadRequest
		}
		c.JSON(status, resp)
	}
}

// decodeRequest parses the request body. A malformed body is rejected with a
// plain error object, not an RPC envelope; remote connector clients depend on
// this exact shape.
func decodeRequest(c *gin.Context) (*types.Request, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return nil, false
	}
	var req types.Request
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return nil, false
	}
	return &req, true
}

// processRequest runs one JSON-RPC request to completion and returns the
// response envelope, or nil when the method is a notification that takes no
// response.
func (s *Server) processRequest(ctx context.Context, req *types.Request) *types.Response {
	id := req.RequestID()
	params := req.Params
	if params == nil {
		params = map[string]any{}
	}

	var result any
	switch req.Method {
	case "initialize":
		result = map[string]any{
			"protocolVersion": protocolVersion,
			"serverInfo": map[string]any{
				"name":    version.ServerName,
				"version": version.GetVersion(),
			},
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
		}

	case "notifications/initialized":
		return nil

	case "tools/list":
		result = map[string]any{"tools": registry.List()}

	case "tools/call":
		name, _ := params["name"].(string)
		args, _ := params["arguments"].(map[string]any)
		if args == nil {
			args = map[string]any{}
		}
		result = s.callTool(ctx, name, args)

	case "ping":
		result = map[string]any{}

	default:
		return types.NewErrorResponse(
			id, types.CodeMethodNotFound, fmt.Sprintf("Unknown method: %s", req.Method),
		)
	}

	return types.NewResponse(id, result)
}

// callTool dispatches the tool and wraps whatever comes back, success or
// error value alike, as pretty-printed text content.
func (s *Server) callTool(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	value := s.tools.Execute(ctx, name, args)
	text, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		s.logger.Error("failed to render tool result", zap.String("tool", name), zap.Error(err))
		text = fmt.Appendf(nil, "%v", value)
	}
	return mcp.NewToolResultText(string(text))
}
