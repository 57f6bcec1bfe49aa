// Package tool dispatches MCP tool calls to the Boswell backend.
// Each tool maps to exactly one backend request; the backend's response is
// returned as an opaque value without reinterpretation.
package tool

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/boswell-ai/boswell-mcp/internal/boswell"
	"github.com/boswell-ai/boswell-mcp/internal/telemetry"
	"go.uber.org/zap"
)

// Service executes tool calls against the backend.
type Service struct {
	client  *boswell.Client
	metrics telemetry.CustomMetrics
	logger  *zap.Logger
}

// NewService creates a dispatcher backed by the given client.
func NewService(client *boswell.Client, metrics telemetry.CustomMetrics, logger *zap.Logger) *Service {
	if metrics == nil {
		metrics = telemetry.NewNoopCustomMetrics()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, metrics: metrics, logger: logger}
}

// Execute runs the named tool with the given arguments and returns the
// backend's JSON result. Failures of any kind (unknown tool, missing
// argument, backend error) come back as an error-shaped value, never as a
// Go error: tool failures are part of the result payload by protocol
// contract, so the RPC call itself still succeeds.
func (s *Service) Execute(ctx context.Context, name string, args map[string]any) any {
	started := time.Now()
	outcome := telemetry.ToolCallOutcomeError
	defer func() {
		s.metrics.RecordToolCall(ctx, name, outcome, time.Since(started))
	}()

	build, ok := builders[name]
	if !ok {
		return errValue("Unknown tool: %s", name)
	}

	req, err := build(args)
	if err != nil {
		return errValue("%s", err.Error())
	}

	result, err := s.client.Call(ctx, req.method, req.path, req.query, req.body)
	if err != nil {
		s.logger.Warn("tool call failed", zap.String("tool", name), zap.Error(err))
		var be *boswell.Error
		if errors.As(err, &be) {
			return be
		}
		return errValue("%s", err.Error())
	}

	outcome = telemetry.ToolCallOutcomeSuccess
	return result
}

// backendRequest is the single upstream call a tool resolved to.
type backendRequest struct {
	method string
	path   string
	query  url.Values
	body   map[string]any
}

func get(path string, query url.Values) *backendRequest {
	return &backendRequest{method: http.MethodGet, path: path, query: query}
}

func post(path string, body map[string]any) *backendRequest {
	return &backendRequest{method: http.MethodPost, path: path, body: body}
}

func errValue(format string, a ...any) map[string]any {
	return map[string]any{"error": fmt.Sprintf(format, a...)}
}
