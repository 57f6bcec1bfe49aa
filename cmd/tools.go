package cmd

import (
	"slices"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools exposed by a running gateway",
	RunE:  runListTools,
	Annotations: map[string]string{
		"group": string(subCommandGroupBasic),
		"order": "2",
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runListTools(cmd *cobra.Command, args []string) error {
	tools, err := apiClient.ListTools(cmd.Context())
	if err != nil {
		return err
	}
	for _, t := range tools {
		cmd.Println(t.Name)
		cmd.Println("  " + t.Description)
		if len(t.InputSchema.Required) > 0 {
			required := slices.Clone(t.InputSchema.Required)
			slices.Sort(required)
			cmd.Print("  required:")
			for _, k := range required {
				cmd.Print(" " + k)
			}
			cmd.Println()
		}
		cmd.Println()
	}
	return nil
}
