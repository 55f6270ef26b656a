package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statusCmd inspects the current TDD session state. Unlike the hook commands
// it is meant for humans, so failures surface as errors instead of allow.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current TDD session state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return fmt.Errorf("failed to initialize engine: %w", err)
		}

		st := eng.Status()

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), st)
		}

		PrintSection("TDD Session")

		session := "(none)"
		if st.SessionID != nil && *st.SessionID != "" {
			session = *st.SessionID
		}
		PrintLabelValue("Session", session)

		started := "(unknown)"
		if st.StartedAt != nil {
			started = st.StartedAt.Format("2006-01-02 15:04:05")
		}
		PrintLabelValue("Started", started)

		fmt.Println()
		if len(st.TestFilesModified) == 0 {
			PrintEmptyState("No test files recorded this session")
		} else {
			PrintSuccess(fmt.Sprintf("%d test file(s) recorded", len(st.TestFilesModified)))
			PrintList(st.TestFilesModified)
		}

		return nil
	},
}
