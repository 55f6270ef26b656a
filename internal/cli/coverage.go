package cli

import (
	"os"

	"github.com/danieljhkim/tddguard/internal/checks"
	"github.com/danieljhkim/tddguard/internal/hook"
	"github.com/danieljhkim/tddguard/internal/log"
	"github.com/spf13/cobra"
)

// coverageCmd is the Stop hook: it blocks the end of a turn when test
// coverage falls below the configured threshold.
var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Check test coverage against the threshold (Stop hook)",
	Long: `Run the project's coverage command and compare against the threshold.

Reads a JSON hook request from stdin and answers with one JSON decision on
stdout. Projects without a test script, and internal failures of any kind,
resolve to allow.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		hook.Run(cmd.InOrStdin(), cmd.OutOrStdout(), func(req *hook.Request) hook.Response {
			cwd, err := os.Getwd()
			if err != nil {
				log.Warn("failed to resolve working directory, allowing: %v", err)
				return hook.AllowResponse()
			}

			check := checks.NewCoverageCheck(checks.NewExecRunner(checks.CoverageTimeout), loadConfig())
			return responseFrom(check.Evaluate(cmd.Context(), cwd))
		})
	},
}
