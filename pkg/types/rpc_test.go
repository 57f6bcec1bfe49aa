package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDRoundTrips(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "number", body: `{"method":"ping","id":42}`, want: "42"},
		{name: "string", body: `{"method":"ping","id":"abc-1"}`, want: `"abc-1"`},
		{name: "null", body: `{"method":"ping","id":null}`, want: "null"},
		{name: "absent", body: `{"method":"ping"}`, want: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req Request
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, string(req.RequestID()))
		})
	}
}

func TestResponseMarshalsExactlyOneOfResultError(t *testing.T) {
	success, err := json.Marshal(NewResponse(json.RawMessage("1"), map[string]any{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":{}}`, string(success))

	failure, err := json.Marshal(NewErrorResponse(json.RawMessage("1"), CodeMethodNotFound, "Unknown method: x"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"Unknown method: x"}}`, string(failure))
}
