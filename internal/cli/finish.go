package cli

import (
	"github.com/spf13/cobra"

	"coderly.dev/code/internal/cli/helpers"
	"coderly.dev/code/internal/runtime"
)

// newFinishCmd creates the finish command
func newFinishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Return to the development branch and delete the merged feature",
		Long: `Check out and update the development branch, then delete the branch
that was checked out. The delete fails if the branch is not merged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return ctx.Engine.Finish(ctx)
			})
		},
	}

	return cmd
}

// newCancelCmd creates the cancel command
func newCancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Abandon the current feature branch",
		Long: `Check out the development branch and force delete the branch that was
checked out, discarding its unmerged commits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return ctx.Engine.Cancel(ctx)
			})
		},
	}

	return cmd
}

// newPruneRemoteBranchesCmd creates the prune-remote-branches command
func newPruneRemoteBranchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune-remote-branches",
		Short: "Remove remote-tracking branches deleted on origin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return ctx.Engine.PruneRemoteBranches(ctx)
			})
		},
	}

	return cmd
}
