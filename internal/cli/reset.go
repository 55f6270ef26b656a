package cli

import (
	"encoding/json"

	"github.com/danieljhkim/tddguard/internal/log"
	"github.com/spf13/cobra"
)

// resetStatus is the confirmation document emitted after a session reset.
type resetStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// resetCmd is the SessionStart hook: it clears the TDD session state so each
// conversation starts with a clean slate.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the TDD session state (SessionStart hook)",
	Long: `Reset the recorded-test set at the start of a new session.

The reset is unconditional: the store is overwritten with an empty state and
null identifiers, created if missing. Any session-start payload on stdin is
ignored.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if eng, err := newEngine(); err != nil {
			log.Warn("failed to initialize engine for reset: %v", err)
		} else if err := eng.Reset(); err != nil {
			log.Warn("failed to reset session state: %v", err)
		}

		// Hooks expect JSON or empty output; confirm regardless of outcome
		status := resetStatus{Status: "reset", Message: "TDD session state cleared"}
		if err := json.NewEncoder(cmd.OutOrStdout()).Encode(status); err != nil {
			log.Error("failed to write reset confirmation: %v", err)
		}
	},
}
