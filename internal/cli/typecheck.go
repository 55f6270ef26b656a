package cli

import (
	"github.com/danieljhkim/tddguard/internal/checks"
	"github.com/danieljhkim/tddguard/internal/hook"
	"github.com/spf13/cobra"
)

// typecheckCmd is the PostToolUse hook: it type-checks the project containing
// a just-written TypeScript file and blocks on type errors in that file.
var typecheckCmd = &cobra.Command{
	Use:   "typecheck",
	Short: "Type-check a just-written TypeScript file (PostToolUse hook)",
	Long: `Run the TypeScript compiler over the project containing the file named in
the hook request, and block when it reports errors for that file.

Reads a JSON hook request from stdin and answers with one JSON decision on
stdout. Non-TypeScript files, declaration files, and internal failures of any
kind resolve to allow.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		hook.Run(cmd.InOrStdin(), cmd.OutOrStdout(), func(req *hook.Request) hook.Response {
			filePath := req.ToolInput.FilePath
			if filePath == "" {
				return hook.AllowResponse()
			}

			check := checks.NewTypecheckCheck(checks.NewExecRunner(checks.TypecheckTimeout), loadConfig())
			return responseFrom(check.Evaluate(cmd.Context(), filePath))
		})
	},
}
