package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"coderly.dev/code/internal/cli/helpers"
	"coderly.dev/code/internal/runtime"
	"coderly.dev/code/internal/tui"
)

// newSearchCmd creates the search command
func newSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <patterns...>",
		Short: "Find files in the repository by name",
		Long: `List tracked and untracked (not ignored) files containing every pattern,
best matches first. A file whose path is exactly the patterns in order ranks
highest.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				ranked, err := ctx.Engine.Search(ctx, args...)
				if err != nil {
					return err
				}
				if len(ranked) == 0 {
					return fmt.Errorf("no file matches %s", strings.Join(args, " "))
				}
				for i, r := range ranked {
					if limit > 0 && i == limit {
						break
					}
					ctx.Splog.Info(r.Value)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many files")

	return cmd
}

// newBranchesCmd creates the branches command
func newBranchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "branches [patterns...]",
		Aliases: []string{"ls"},
		Short:   "List branches, best matches first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				branches, err := ctx.Engine.Branches(ctx, args...)
				if err != nil {
					return err
				}
				current, err := ctx.Engine.CurrentBranch(ctx)
				if err != nil {
					return err
				}
				for _, b := range branches {
					ctx.Splog.Info(describeBranch(b.Name(), b.Equal(current), b.IsProtected(), b.IsHotfix(), b.IsPrivate()))
				}
				return nil
			})
		},
	}

	return cmd
}

func describeBranch(name string, current, protected, hotfix, private bool) string {
	marker := "  "
	if current {
		marker = "* "
		name = tui.ColorCyan(name)
	}
	switch {
	case protected:
		name += tui.ColorDim(" (protected)")
	case hotfix:
		name += tui.ColorYellow(" (hotfix)")
	case private:
		name += tui.ColorDim(" (local only)")
	}
	return marker + name
}
