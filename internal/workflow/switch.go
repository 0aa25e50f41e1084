package workflow

import (
	"context"

	"coderly.dev/code/internal/branch"
	codeerrors "coderly.dev/code/internal/errors"
)

// Switch checks out the first branch the patterns match
func (e *Engine) Switch(ctx context.Context, patterns ...string) (*branch.Branch, error) {
	repo, err := e.repository()
	if err != nil {
		return nil, err
	}

	target, err := repo.Matching(ctx, patterns...)
	if err != nil {
		return nil, err
	}
	return e.switchTo(ctx, repo, target)
}

// SwitchTo checks out the branch with exactly this name
func (e *Engine) SwitchTo(ctx context.Context, name string) (*branch.Branch, error) {
	repo, err := e.repository()
	if err != nil {
		return nil, err
	}

	target := repo.Branch(name)
	exists, err := target.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, codeerrors.NewBranchNotFoundError([]string{name}, nil)
	}
	return e.switchTo(ctx, repo, target)
}

func (e *Engine) switchTo(ctx context.Context, repo *branch.Repository, target *branch.Branch) (*branch.Branch, error) {
	current, err := repo.Current(ctx)
	if err != nil {
		return nil, err
	}
	if current.Equal(target) {
		e.splog.Info("Already on %s", target.Name())
		return target, nil
	}

	if _, err := target.Checkout(ctx); err != nil {
		return nil, err
	}
	e.splog.Info("Switched to %s", target.Name())
	return target, nil
}
