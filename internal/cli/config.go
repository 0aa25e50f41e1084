package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"coderly.dev/code/internal/cli/helpers"
	"coderly.dev/code/internal/config"
	"coderly.dev/code/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set repository configuration",
		Long: fmt.Sprintf(`Get and set the values stored in %s at the repository root.

Keys:
%s
Examples:
  code config get master-branch-name
  code config set development-branch-name develop
  code config list`, config.FileName, keyHelp()),
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigListCmd())

	return cmd
}

// keyHelp lists every key with its question and default
func keyHelp() string {
	var b strings.Builder
	for _, d := range config.Definitions() {
		fmt.Fprintf(&b, "  %-24s %s (default: %s)\n", d.Key, d.Question, d.Default)
	}
	return b.String()
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "get <key>",
		Short:     "Get a configuration value, asking for it when missing",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				value, err := ctx.Config.Get(args[0])
				if err != nil {
					return err
				}
				ctx.Splog.Info(value)
				return nil
			})
		},
	}

	return cmd
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Set a configuration value",
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				key := args[0]
				value := strings.Join(args[1:], " ")
				if err := ctx.Config.Set(key, value); err != nil {
					return err
				}
				ctx.Splog.Info("Set %s to: %s", key, value)
				return nil
			})
		},
	}

	return cmd
}

// newConfigListCmd creates the config list command
func newConfigListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				all := ctx.Config.All()
				for _, key := range ctx.Config.SortedKeys() {
					ctx.Splog.Info("%s=%s", key, all[key])
				}
				return nil
			})
		},
	}

	return cmd
}
