package git

import (
	"context"
	"fmt"
)

// Push pushes a branch to the identically named ref on the remote and
// records it as the upstream
func (r *Runner) Push(ctx context.Context, name string) error {
	_, err := r.Run(ctx, "push", "-u", r.remote, name+":"+name)
	if err != nil {
		return fmt.Errorf("failed to push branch %s: %w", name, err)
	}
	return nil
}

// DeleteRemoteBranch deletes a branch on the remote
func (r *Runner) DeleteRemoteBranch(ctx context.Context, name string) error {
	_, err := r.Run(ctx, "push", r.remote, ":"+name)
	if err != nil {
		return fmt.Errorf("failed to delete remote branch %s: %w", name, err)
	}
	return nil
}
