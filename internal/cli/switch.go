package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"coderly.dev/code/internal/branch"
	"coderly.dev/code/internal/cli/helpers"
	"coderly.dev/code/internal/runtime"
	"coderly.dev/code/internal/tui"
)

// newSwitchCmd creates the switch command
func newSwitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "switch [patterns...]",
		Aliases: []string{"sw"},
		Short:   "Switch to the branch matching the patterns",
		Long: `Switch to the first branch containing every pattern.

Patterns match case-insensitively and in any order: "code switch login feat"
finds feature-login. Without patterns an interactive selector opens.`,
		ValidArgsFunction: helpers.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				if len(args) > 0 {
					_, err := ctx.Engine.Switch(ctx, args...)
					return err
				}

				if !tui.InteractiveAllowed() || !tui.IsTTY() {
					return fmt.Errorf("no branch patterns given and the terminal is not interactive")
				}

				branches, err := ctx.Engine.Branches(ctx)
				if err != nil {
					return err
				}
				current, err := ctx.Engine.CurrentBranch(ctx)
				if err != nil {
					return err
				}

				// the selector owns the screen until it returns
				ctx.Splog.SetQuiet(true)
				selected, err := tui.PromptBranchSelection("Switch to branch", branchNames(branches), current.Name())
				ctx.Splog.SetQuiet(false)
				if err != nil {
					return err
				}
				_, err = ctx.Engine.SwitchTo(ctx, selected)
				return err
			})
		},
	}

	return cmd
}

func branchNames(branches []*branch.Branch) []string {
	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.Name()
	}
	return names
}
