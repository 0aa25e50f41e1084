package workflow

import (
	"context"

	codeerrors "coderly.dev/code/internal/errors"
)

// Finish returns to the up to date integration line and deletes the branch
// that was checked out. The delete refuses unmerged work.
func (e *Engine) Finish(ctx context.Context) error {
	repo, err := e.repository()
	if err != nil {
		return err
	}

	previous, err := repo.Current(ctx)
	if err != nil {
		return err
	}
	if previous.IsDetachedHead() {
		return codeerrors.NewNotOnFeatureBranchError(previous.String())
	}
	if previous.IsProtected() {
		return codeerrors.NewProtectedBranchError(previous.Name())
	}

	integration, err := repo.IntegrationLine().Checkout(ctx)
	if err != nil {
		return err
	}
	if err := e.git.Fetch(ctx); err != nil {
		return err
	}
	if err := integration.Pull(ctx); err != nil {
		return err
	}

	if err := previous.Delete(ctx, false); err != nil {
		return err
	}
	e.splog.Info("Finished %s", previous.Name())
	return nil
}

// Cancel abandons the current branch: it checks out the integration line and
// force deletes the branch. On the integration line it does nothing.
func (e *Engine) Cancel(ctx context.Context) error {
	repo, err := e.repository()
	if err != nil {
		return err
	}

	previous, err := repo.Current(ctx)
	if err != nil {
		return err
	}
	integration := repo.IntegrationLine()
	if previous.Equal(integration) {
		e.splog.Info("Nothing to cancel (already on %s)", integration.Name())
		return nil
	}
	if previous.IsDetachedHead() {
		return codeerrors.NewNotOnFeatureBranchError(previous.String())
	}
	if previous.IsProtected() {
		return codeerrors.NewProtectedBranchError(previous.Name())
	}

	if _, err := integration.Checkout(ctx); err != nil {
		return err
	}
	if err := previous.Delete(ctx, true); err != nil {
		return err
	}
	e.splog.Info("Cancelled %s", previous.Name())
	return nil
}

// PruneRemoteBranches drops remote-tracking refs whose remote branch is gone
func (e *Engine) PruneRemoteBranches(ctx context.Context) error {
	return e.git.PruneRemote(ctx)
}
