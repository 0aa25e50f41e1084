package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"coderly.dev/code/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "code",
		Short: "code wraps the feature branch workflow around git and GitHub",
		Long: `code wraps the feature branch workflow around git and GitHub.

Feature branches start from the development branch, hotfixes from the master
branch. Publishing pushes the branch and opens labeled pull requests; finishing
or cancelling returns to the development branch and deletes the feature.

Only one code command should run against a working tree at a time.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			tui.ConfigureColors()
		},
	}

	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newHotfixCmd())
	rootCmd.AddCommand(newSwitchCmd())
	rootCmd.AddCommand(newPublishCmd())
	rootCmd.AddCommand(newFinishCmd())
	rootCmd.AddCommand(newCancelCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newBranchesCmd())
	rootCmd.AddCommand(newPruneRemoteBranchesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
// Errors are printed in red.
func Execute(version, commit, date string) int {
	rootCmd := NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		tui.ConfigureColors()
		tui.NewSplog().Error(tui.ColorRed(err.Error()))
		return 1
	}
	return 0
}
