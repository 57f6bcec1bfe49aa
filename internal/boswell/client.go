// Package boswell provides a minimal HTTP client for the Boswell memory-graph
// API. The backend is treated as an opaque JSON-over-HTTP service: responses
// are passed through without reinterpretation.
package boswell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// callTimeout bounds every outbound call. There is exactly one attempt per
// call: retry policy belongs to the caller or the backend, not this relay.
const callTimeout = 30 * time.Second

// Error describes a failed backend call. It marshals to the error payload
// callers receive as a tool result.
type Error struct {
	Err     string `json:"error"`
	Details string `json:"details,omitempty"`

	// StatusCode is the backend's HTTP status, or 0 for transport failures.
	StatusCode int `json:"-"`
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Err + ": " + e.Details
	}
	return e.Err
}

// Client performs calls against the Boswell API at a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New returns a client for the backend at baseURL.
func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: callTimeout},
		logger:  logger,
	}
}

// Call performs a single request against the backend and returns the decoded
// JSON body. Any status in [200, 300) is a success; a non-JSON success body
// is returned as a raw string. Failures are reported as *Error and never
// escalate past this boundary.
func (c *Client) Call(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Err: fmt.Sprintf("encode request body: %v", err)}
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, payload)
	if err != nil {
		return nil, &Error{Err: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend call failed", zap.String("path", path), zap.Error(err))
		return nil, &Error{Err: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Err: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("backend returned error status",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return nil, &Error{
			Err:        fmt.Sprintf("HTTP %d", resp.StatusCode),
			Details:    string(raw),
			StatusCode: resp.StatusCode,
		}
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// Tolerate non-JSON success bodies by passing them through verbatim.
		return string(raw), nil
	}
	return decoded, nil
}
