package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var callCmdArgsJSON string

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Invoke a tool on a running gateway",
	Long: "Invokes a tool and prints the result payload.\n" +
		"Arguments are passed as a JSON object, eg:\n" +
		"  boswell-mcp call boswell_log --args '{\"branch\": \"command-center\", \"limit\": 5}'",
	Args: cobra.ExactArgs(1),
	RunE: runCallTool,
	Annotations: map[string]string{
		"group": string(subCommandGroupBasic),
		"order": "3",
	},
}

func init() {
	callCmd.Flags().StringVar(&callCmdArgsJSON, "args", "{}", "tool arguments as a JSON object")
	rootCmd.AddCommand(callCmd)
}

func runCallTool(cmd *cobra.Command, args []string) error {
	var toolArgs map[string]any
	if err := json.Unmarshal([]byte(callCmdArgsJSON), &toolArgs); err != nil {
		return fmt.Errorf("invalid --args value, expected a JSON object: %w", err)
	}

	text, err := apiClient.CallTool(cmd.Context(), args[0], toolArgs)
	if err != nil {
		return fmt.Errorf("failed to call tool '%s': %w", args[0], err)
	}
	cmd.Println(text)
	return nil
}
