// Package types defines the JSON-RPC 2.0 envelope exchanged between MCP
// clients and the gateway.
package types

import "encoding/json"

// CodeMethodNotFound is the JSON-RPC 2.0 error code for an unknown method.
const CodeMethodNotFound = -32601

// Request is an inbound JSON-RPC request. The id is kept raw so that
// string, number and null forms round-trip byte for byte.
type Request struct {
	JSONRPC string          `json:"jsonrpc,omitempty"`
	Method  string          `json:"method"`
	Params  map[string]any  `json:"params,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

// RequestID returns the id to echo in the response.
// Requests without an id still get a correlated response with id null,
// so notifications are answered like any other request.
func (r *Request) RequestID() json.RawMessage {
	if len(r.ID) == 0 {
		return json.RawMessage("null")
	}
	return r.ID
}

// Response is an outbound JSON-RPC response. Exactly one of Result and
// Error is set.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewResponse creates a successful response envelope.
func NewResponse(id json.RawMessage, result any) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Result: result}
}

// NewErrorResponse creates an error response envelope.
func NewErrorResponse(id json.RawMessage, code int, message string) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Error: &Error{Code: code, Message: message}}
}
