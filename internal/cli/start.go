package cli

import (
	"github.com/spf13/cobra"

	"coderly.dev/code/internal/cli/helpers"
	"coderly.dev/code/internal/runtime"
	"coderly.dev/code/internal/utils"
)

// newStartCmd creates the start command
func newStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start <name...>",
		Short: "Start a feature branch from the development branch",
		Long: `Start a feature branch from the development branch.

The development branch is pulled first. Uncommitted changes are stashed and
restored on the new branch. Words are joined with dashes, so
"code start add login page" creates add-login-page.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := ctx.Engine.Start(ctx, utils.BranchNameFromWords(args...))
				return err
			})
		},
	}

	return cmd
}

// newHotfixCmd creates the hotfix command
func newHotfixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotfix <name...>",
		Short: "Start a hotfix branch from the master branch",
		Long: `Start a hotfix branch from the master branch.

The branch name is prefixed with "hotfix-". Publishing a hotfix opens pull
requests into both the development and the master branch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := ctx.Engine.Hotfix(ctx, utils.BranchNameFromWords(args...))
				return err
			})
		},
	}

	return cmd
}
