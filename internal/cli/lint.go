package cli

import (
	"github.com/danieljhkim/tddguard/internal/checks"
	"github.com/danieljhkim/tddguard/internal/hook"
	"github.com/spf13/cobra"
)

// lintCmd is the PostToolUse hook: it lints a file that was just written and
// blocks when the linter reports problems.
var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint a just-written file (PostToolUse hook)",
	Long: `Lint the file named in the hook request.

Reads a JSON hook request from stdin and answers with one JSON decision on
stdout. Files the linter does not cover, and internal failures of any kind,
resolve to allow.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		hook.Run(cmd.InOrStdin(), cmd.OutOrStdout(), func(req *hook.Request) hook.Response {
			filePath := req.ToolInput.FilePath
			if filePath == "" {
				return hook.AllowResponse()
			}

			check := checks.NewLintCheck(checks.NewExecRunner(checks.LintTimeout), loadConfig())
			return responseFrom(check.Evaluate(cmd.Context(), filePath))
		})
	},
}
