package cli

import (
	"github.com/danieljhkim/tddguard/internal/engine"
	"github.com/danieljhkim/tddguard/internal/hook"
	"github.com/danieljhkim/tddguard/internal/log"
	"github.com/spf13/cobra"
)

// enforceCmd is the PreToolUse hook: it decides whether a file write may
// proceed under the TDD rule.
var enforceCmd = &cobra.Command{
	Use:   "enforce",
	Short: "Gate a file write on the session's recorded tests (PreToolUse hook)",
	Long: `Evaluate one write-intent against the TDD session state.

Reads a JSON hook request from stdin and writes one JSON decision to stdout.
Test writes are always allowed and recorded; implementation writes are blocked
until a plausibly matching test file has been touched this session. Any
internal error resolves to allow.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		hook.Run(cmd.InOrStdin(), cmd.OutOrStdout(), func(req *hook.Request) hook.Response {
			eng, err := newEngine()
			if err != nil {
				log.Warn("failed to initialize engine, allowing: %v", err)
				return hook.AllowResponse()
			}

			decision := eng.Enforce(&engine.EnforceRequest{FilePath: req.ToolInput.FilePath})
			if decision.Allowed() {
				return hook.AllowResponse()
			}
			return hook.BlockResponse(decision.Reason)
		})
	},
}
