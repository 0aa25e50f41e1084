package git

import (
	"context"
	"fmt"
)

// Pull merges the remote branch into the current branch
func (r *Runner) Pull(ctx context.Context, name string) error {
	_, err := r.Run(ctx, "pull", r.remote, name)
	if err != nil {
		return fmt.Errorf("failed to pull %s: %w", name, err)
	}
	return nil
}

// Fetch updates remote-tracking refs
func (r *Runner) Fetch(ctx context.Context) error {
	_, err := r.Run(ctx, "fetch", r.remote)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", r.remote, err)
	}
	return nil
}
