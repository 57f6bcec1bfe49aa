// Package client provides a Go client for the gateway's MCP endpoint.
// It is used by the CLI and is suitable for any program that wants to talk
// to a running gateway without hand-rolling the JSON-RPC envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/boswell-ai/boswell-mcp/pkg/types"
	"github.com/mark3labs/mcp-go/mcp"
)

// Client talks JSON-RPC to a gateway at BaseURL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the gateway at baseURL. If httpClient is
// nil, http.DefaultClient is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// call POSTs one request to the gateway's /mcp endpoint and decodes the
// response envelope.
func (c *Client) call(ctx context.Context, method string, params map[string]any) (any, error) {
	reqBody, err := json.Marshal(types.Request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      json.RawMessage("1"),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/mcp", bytes.NewReader(reqBody),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope types.Response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("gateway returned HTTP %d: %s", resp.StatusCode, string(raw))
	}
	if envelope.Error != nil {
		return nil, fmt.Errorf("rpc error %d: %s", envelope.Error.Code, envelope.Error.Message)
	}
	return envelope.Result, nil
}

// InitializeResult is the handshake response.
type InitializeResult struct {
	ProtocolVersion string `json:"protocolVersion"`
	ServerInfo      struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"serverInfo"`
}

// Initialize performs the MCP handshake.
func (c *Client) Initialize(ctx context.Context) (*InitializeResult, error) {
	result, err := c.call(ctx, "initialize", nil)
	if err != nil {
		return nil, err
	}
	var out InitializeResult
	if err := reparse(result, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTools fetches the gateway's tool catalog.
func (c *Client) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	result, err := c.call(ctx, "tools/list", nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Tools []mcp.Tool `json:"tools"`
	}
	if err := reparse(result, &out); err != nil {
		return nil, err
	}
	return out.Tools, nil
}

// CallTool invokes a tool and returns the text payload of the result.
// Tool-level failures (unknown tool, backend errors) arrive inside that
// payload, not as a Go error.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	if args == nil {
		args = map[string]any{}
	}
	result, err := c.call(ctx, "tools/call", map[string]any{"name": name, "arguments": args})
	if err != nil {
		return "", err
	}
	var out struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := reparse(result, &out); err != nil {
		return "", err
	}
	if len(out.Content) == 0 {
		return "", fmt.Errorf("tool %s returned no content", name)
	}
	return out.Content[0].Text, nil
}

// Ping checks that the gateway is responsive.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.call(ctx, "ping", nil)
	return err
}

// reparse converts a decoded JSON value into a typed structure.
func reparse(value any, out any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
