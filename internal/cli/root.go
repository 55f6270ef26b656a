package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for tddguard.
var rootCmd = &cobra.Command{
	Use:     "tddguard",
	Version: "dev",
	Short:   "TDD enforcement hooks for coding agents",
	Long: `tddguard gates the actions of an automated coding agent at lifecycle points.

Each hook subcommand reads one JSON request on stdin and answers with one JSON
decision on stdout. The core rule: implementation writes are blocked until a
plausibly matching test file has been touched in the current session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc renders grouped commands under colored section titles.
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long + "\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:") + "\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	for _, group := range cmd.Groups() {
		writeCommandSection(&help, groupTitleColor.Sprint(group.Title), cmd, group.ID)
	}
	writeCommandSection(&help, sectionTitleColor.Sprint("Additional Commands:"), cmd, "")

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:") + "\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages() + "\n")
	}

	fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// writeCommandSection appends one titled command block; empty blocks are skipped.
func writeCommandSection(b *strings.Builder, title string, cmd *cobra.Command, groupID string) {
	var lines []string
	for _, c := range cmd.Commands() {
		if c.GroupID == groupID && !c.Hidden {
			lines = append(lines, fmt.Sprintf("  %-12s %s\n", c.Name(), c.Short))
		}
	}
	if len(lines) == 0 {
		return
	}

	b.WriteString(title + "\n")
	for _, line := range lines {
		b.WriteString(line)
	}
	b.WriteString("\n")
}

func init() {
	// Set custom help function to color group titles
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "hook-lifecycle",
		Title: "Hook Lifecycle:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "validators",
		Title: "Validators:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the tddguard CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	// Add help command to CLI & Tooling group
	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	// Add completion command to CLI & Tooling group
	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for tddguard for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(os.Stdout, true)
		},
	})
	rootCmd.AddCommand(completionCmd)

	// Hook Lifecycle commands
	enforceCmd.GroupID = "hook-lifecycle"
	resetCmd.GroupID = "hook-lifecycle"
	rootCmd.AddCommand(enforceCmd)
	rootCmd.AddCommand(resetCmd)

	// Validator commands
	coverageCmd.GroupID = "validators"
	lintCmd.GroupID = "validators"
	typecheckCmd.GroupID = "validators"
	storybookCmd.GroupID = "validators"
	methodologyCmd.GroupID = "validators"
	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(typecheckCmd)
	rootCmd.AddCommand(storybookCmd)
	rootCmd.AddCommand(methodologyCmd)

	// CLI & Tooling commands
	statusCmd.GroupID = "cli-tooling"
	rootCmd.AddCommand(statusCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		PrintError(err.Error())
		return err
	}
	return nil
}
