package git

import (
	"context"
	"fmt"
)

// CreateBranch creates a branch at HEAD without checking it out
func (r *Runner) CreateBranch(ctx context.Context, name string) error {
	_, err := r.Run(ctx, "branch", name)
	if err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// Checkout checks out an existing branch
func (r *Runner) Checkout(ctx context.Context, name string) error {
	_, err := r.Run(ctx, "checkout", name)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", name, err)
	}
	return nil
}

// DeleteBranch deletes a local branch. Without force git refuses to delete
// a branch that is not merged.
func (r *Runner) DeleteBranch(ctx context.Context, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := r.Run(ctx, "branch", flag, name)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	return nil
}

// StashPush stashes tracked changes
func (r *Runner) StashPush(ctx context.Context, message string) error {
	args := []string{"stash", "push"}
	if message != "" {
		args = append(args, "-m", message)
	}
	_, err := r.Run(ctx, args...)
	if err != nil {
		return fmt.Errorf("stash push failed: %w", err)
	}
	return nil
}

// StashPop applies and drops the most recent stash entry
func (r *Runner) StashPop(ctx context.Context) error {
	_, err := r.Run(ctx, "stash", "pop")
	if err != nil {
		return fmt.Errorf("stash pop failed: %w", err)
	}
	return nil
}

// HasUncommittedChanges reports whether tracked files differ from HEAD.
// Untracked files are ignored.
func (r *Runner) HasUncommittedChanges(ctx context.Context) (bool, error) {
	output, err := r.runQuiet(ctx, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false, fmt.Errorf("failed to read status: %w", err)
	}
	return output != "", nil
}
