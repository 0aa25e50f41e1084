package workflow

import (
	"context"
	"strings"

	"coderly.dev/code/internal/branch"
	codeerrors "coderly.dev/code/internal/errors"
)

// Start creates a feature branch off the freshly pulled integration line and
// checks it out. Uncommitted changes are carried over through the stash.
func (e *Engine) Start(ctx context.Context, name string) (*branch.Branch, error) {
	repo, err := e.repository()
	if err != nil {
		return nil, err
	}
	return e.begin(ctx, repo, name, repo.IntegrationLine())
}

// Hotfix creates a hotfix branch off the freshly pulled main line
func (e *Engine) Hotfix(ctx context.Context, name string) (*branch.Branch, error) {
	repo, err := e.repository()
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(name, branch.HotfixPrefix) {
		name = branch.HotfixPrefix + name
	}
	return e.begin(ctx, repo, name, repo.MainLine())
}

// begin runs stash, switch to base, pull, create, checkout, unstash
func (e *Engine) begin(ctx context.Context, repo *branch.Repository, name string, base *branch.Branch) (*branch.Branch, error) {
	feature := repo.Branch(name)
	exists, err := feature.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, codeerrors.NewFeatureExistsError(name)
	}

	// HEAD is read before anything is stashed
	current, err := repo.Current(ctx)
	if err != nil {
		return nil, err
	}
	dirty, err := e.git.HasUncommittedChanges(ctx)
	if err != nil {
		return nil, err
	}
	if dirty {
		e.splog.Info("Stashing uncommitted changes")
		if err := e.git.StashPush(ctx, "code: moving changes to "+name); err != nil {
			return nil, err
		}
	}

	// keeps the stash hint on every failure below
	fail := func(err error) (*branch.Branch, error) {
		if dirty {
			return nil, stashed(err)
		}
		return nil, err
	}

	if !current.Equal(base) {
		if _, err := base.Checkout(ctx); err != nil {
			return fail(err)
		}
	}
	if err := base.Pull(ctx); err != nil {
		return fail(err)
	}

	created, err := repo.Create(ctx, name)
	if err != nil {
		return fail(err)
	}
	if _, err := created.Checkout(ctx); err != nil {
		return fail(err)
	}

	if dirty {
		if err := e.git.StashPop(ctx); err != nil {
			return fail(err)
		}
	}

	e.splog.Info("Started %s from %s", created.Name(), base.Name())
	e.splog.Tip("Run `code publish` when it is ready for review")
	return created, nil
}
