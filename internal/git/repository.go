package git

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// openRepository opens the repository containing the runner's working directory.
// It is reopened for every query so reads observe writes made by the git binary.
func (r *Runner) openRepository() (*git.Repository, error) {
	path := r.workingDir
	if path == "" {
		path = "."
	}
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return repo, nil
}

// RepoRoot returns the top-level directory of the working tree
func (r *Runner) RepoRoot(_ context.Context) (string, error) {
	repo, err := r.openRepository()
	if err != nil {
		return "", err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	return worktree.Filesystem.Root(), nil
}

// BranchNames returns all local branch names sorted the way `git branch` lists them
func (r *Runner) BranchNames(_ context.Context) ([]string, error) {
	repo, err := r.openRepository()
	if err != nil {
		return nil, err
	}

	branches, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

// CurrentBranch returns the branch HEAD points at, including an unborn one.
// A detached HEAD is on no branch and yields an empty name.
func (r *Runner) CurrentBranch(_ context.Context) (string, error) {
	repo, err := r.openRepository()
	if err != nil {
		return "", err
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", nil
	}

	return head.Target().Short(), nil
}

// BranchExists reports whether refs/heads/<name> exists
func (r *Runner) BranchExists(_ context.Context, name string) (bool, error) {
	repo, err := r.openRepository()
	if err != nil {
		return false, err
	}

	_, err = repo.Reference(plumbing.NewBranchReferenceName(name), false)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up branch %s: %w", name, err)
	}
	return true, nil
}

// RemoteURL returns the first URL configured for the runner's remote
func (r *Runner) RemoteURL(_ context.Context) (string, error) {
	repo, err := r.openRepository()
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote(r.remote)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", r.remote, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", r.remote)
	}
	return urls[0], nil
}
