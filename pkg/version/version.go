// Package version holds the gateway's identity as advertised over the wire.
package version

const (
	// ServerName is the name reported in the MCP handshake, the health
	// endpoint and the provenance fields of write operations.
	ServerName = "boswell-mcp"

	version = "1.0.0"
)

// GetVersion returns the gateway version string.
func GetVersion() string {
	return version
}
