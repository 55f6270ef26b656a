package cli

import (
	"github.com/danieljhkim/tddguard/internal/checks"
	"github.com/danieljhkim/tddguard/internal/hook"
	"github.com/spf13/cobra"
)

// storybookCmd is a PostToolUse hook: it nudges toward a Storybook story
// when a UI component is written without one.
var storybookCmd = &cobra.Command{
	Use:   "storybook",
	Short: "Check a UI component for a Storybook story (PostToolUse hook)",
	Long: `Look for a story file matching the component named in the hook request.

Reads a JSON hook request from stdin and answers with one JSON decision on
stdout. The check is advisory: a missing story annotates the allow with a
suggested story path, it never blocks.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		hook.Run(cmd.InOrStdin(), cmd.OutOrStdout(), func(req *hook.Request) hook.Response {
			filePath := req.ToolInput.FilePath
			if filePath == "" {
				return hook.AllowResponse()
			}
			return responseFrom(checks.NewStorybookCheck().Evaluate(filePath))
		})
	},
}
