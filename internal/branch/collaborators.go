package branch

import (
	"context"

	"coderly.dev/code/internal/github"
)

// Git is the version-control collaborator. It is implemented by git.Runner.
type Git interface {
	BranchNames(ctx context.Context) ([]string, error)
	// CurrentBranch returns "" when HEAD is detached
	CurrentBranch(ctx context.Context) (string, error)
	BranchExists(ctx context.Context, name string) (bool, error)
	CreateBranch(ctx context.Context, name string) error
	Checkout(ctx context.Context, name string) error
	DeleteBranch(ctx context.Context, name string, force bool) error
	DeleteRemoteBranch(ctx context.Context, name string) error
	Push(ctx context.Context, name string) error
	Pull(ctx context.Context, name string) error
	Fetch(ctx context.Context) error
	StashPush(ctx context.Context, message string) error
	StashPop(ctx context.Context) error
	HasUncommittedChanges(ctx context.Context) (bool, error)
	PruneRemote(ctx context.Context) error
}

// PullRequests is the pull request gateway. It is implemented by github.Client.
type PullRequests interface {
	ListForBranch(ctx context.Context, branchName string) ([]github.PullRequest, error)
	AddLabel(ctx context.Context, number int, label string) error
	Create(ctx context.Context, opts github.CreateOptions) (*github.PullRequest, error)
}
