package cli

import (
	"github.com/spf13/cobra"

	"coderly.dev/code/internal/cli/helpers"
	"coderly.dev/code/internal/runtime"
	"coderly.dev/code/internal/workflow"
)

// newPublishCmd creates the publish command
func newPublishCmd() *cobra.Command {
	var (
		base    string
		message string
		body    string
		noOpen  bool
	)

	cmd := &cobra.Command{
		Use:     "publish",
		Aliases: []string{"pr"},
		Short:   "Push the current branch and open its pull requests",
		Long: `Push the current feature branch and open a pull request for it.

The pull request targets the development branch and is labeled as ready for
review. A hotfix branch gets two pull requests, into development and master,
both labeled as hotfix. The working tree must be clean.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := ctx.Engine.Publish(ctx, workflow.PublishOptions{
					Base:    base,
					Message: message,
					Body:    body,
					Open:    !noOpen,
				})
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&base, "base", "b", "", "Branch to merge into (defaults to the development branch)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Pull request title (defaults to the branch name as a sentence)")
	cmd.Flags().StringVar(&body, "body", "", "Pull request description")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Do not open the pull request in the browser")

	_ = cmd.RegisterFlagCompletionFunc("base", helpers.CompleteBranches)

	return cmd
}
