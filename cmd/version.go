package cmd

import (
	"github.com/boswell-ai/boswell-mcp/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gateway version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("%s %s\n", version.ServerName, version.GetVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
