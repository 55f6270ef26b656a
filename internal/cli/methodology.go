package cli

import (
	"github.com/danieljhkim/tddguard/internal/checks"
	"github.com/danieljhkim/tddguard/internal/hook"
	"github.com/spf13/cobra"
)

// methodologyCmd is a PostToolUse hook: it checks that components carry both
// a unit test and a story with play functions.
var methodologyCmd = &cobra.Command{
	Use:   "methodology",
	Short: "Check component testing methodology (PostToolUse hook)",
	Long: `Verify the two-layer testing pattern for the file named in the hook
request: unit tests for structure and rendering, Storybook play functions for
user interactions.

Reads a JSON hook request from stdin and answers with one JSON decision on
stdout. The check is advisory: gaps annotate the allow, they never block.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		hook.Run(cmd.InOrStdin(), cmd.OutOrStdout(), func(req *hook.Request) hook.Response {
			filePath := req.ToolInput.FilePath
			if filePath == "" {
				return hook.AllowResponse()
			}
			return responseFrom(checks.NewMethodologyCheck().Evaluate(filePath))
		})
	},
}
