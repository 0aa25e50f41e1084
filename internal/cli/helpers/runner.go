// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"coderly.dev/code/internal/runtime"
)

// Run opens the repository the command was invoked in, runs fn against it
// and closes the log file afterwards. Failures are recorded in the debug log.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return err
	}
	defer ctx.Close()

	ctx.Splog.Debug("running %s in %s", cmd.CommandPath(), ctx.RepoRoot)
	if err := fn(ctx); err != nil {
		ctx.Splog.Debug("%s failed: %v", cmd.CommandPath(), err)
		return err
	}
	return nil
}
