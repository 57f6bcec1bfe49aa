// Package cmd contains the gateway's CLI commands.
package cmd

import (
	"os"

	"github.com/boswell-ai/boswell-mcp/pkg/client"
	"github.com/spf13/cobra"
)

// GatewayURLEnvVar points client commands at a running gateway.
const GatewayURLEnvVar = "BOSWELL_MCP_SERVER"

const gatewayURLDefault = "http://127.0.0.1:8080"

type subCommandGroup string

const (
	subCommandGroupBasic subCommandGroup = "basic"
)

var rootCmdGatewayURL string

// apiClient talks to a running gateway. It is initialized before any client
// command runs; the start command does not use it.
var apiClient *client.Client

var rootCmd = &cobra.Command{
	Use:   "boswell-mcp",
	Short: "MCP gateway for the Boswell memory graph",
	Long: "boswell-mcp exposes the Boswell memory-graph API as MCP tools\n" +
		"for AI-assistant connectors, over plain HTTP and SSE transports.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		url := rootCmdGatewayURL
		if url == "" {
			url = os.Getenv(GatewayURLEnvVar)
		}
		if url == "" {
			url = gatewayURLDefault
		}
		apiClient = client.NewClient(url, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&rootCmdGatewayURL,
		"server",
		"",
		"URL of a running gateway for client commands (overrides env var "+GatewayURLEnvVar+")",
	)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
