package branch

import (
	"context"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	codeerrors "coderly.dev/code/internal/errors"
	"coderly.dev/code/internal/github"
)

const (
	// HotfixPrefix starts the name of every hotfix branch
	HotfixPrefix = "hotfix-"
	// PrivateSuffix ends the name of every branch that must stay local
	PrivateSuffix = "-local"
)

var errDetached = errors.New("branch is not attached to a repository")

// Rules names the two long-lived lines of a repository
type Rules struct {
	MainLine        string
	IntegrationLine string
}

// Branch is a named branch together with the rules that classify it.
// A Branch never changes once created.
type Branch struct {
	name  string
	rules Rules
	repo  *Repository
}

// New creates a branch that can be classified but not operated on.
// Use Repository.Branch for a branch backed by git.
func New(name string, rules Rules) *Branch {
	return &Branch{name: name, rules: rules}
}

// Name returns the branch name
func (b *Branch) Name() string {
	return b.name
}

func (b *Branch) String() string {
	if b.IsDetachedHead() {
		return "HEAD"
	}
	return b.name
}

// IsProtected reports whether the branch is the main line or the integration line
func (b *Branch) IsProtected() bool {
	return b.name == b.rules.MainLine || b.name == b.rules.IntegrationLine
}

// IsPrivate reports whether the branch must never be pushed
func (b *Branch) IsPrivate() bool {
	return strings.HasSuffix(b.name, PrivateSuffix)
}

// IsHotfix reports whether the branch carries the hotfix prefix
func (b *Branch) IsHotfix() bool {
	return strings.HasPrefix(b.name, HotfixPrefix)
}

// IsDetachedHead reports whether this stands for a detached HEAD rather than a branch
func (b *Branch) IsDetachedHead() bool {
	return b.name == ""
}

// IsFeature reports whether the branch is a real branch that is not protected
func (b *Branch) IsFeature() bool {
	return !b.IsDetachedHead() && !b.IsProtected()
}

// Equal compares branches by exact name
func (b *Branch) Equal(other *Branch) bool {
	return other != nil && b.name == other.name
}

// Message derives a human readable title from the branch name:
// "some-branch-name" becomes "Some branch name".
func (b *Branch) Message() string {
	message := strings.ReplaceAll(b.name, "-", " ")
	r, size := utf8.DecodeRuneInString(message)
	if r == utf8.RuneError {
		return message
	}
	return string(unicode.ToUpper(r)) + message[size:]
}

// Exists reports whether the branch exists locally
func (b *Branch) Exists(ctx context.Context) (bool, error) {
	if b.repo == nil {
		return false, errDetached
	}
	return b.repo.Git.BranchExists(ctx, b.name)
}

// Checkout checks out the branch and returns it for chaining
func (b *Branch) Checkout(ctx context.Context) (*Branch, error) {
	if b.repo == nil {
		return nil, errDetached
	}
	if err := b.repo.Git.Checkout(ctx, b.name); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete deletes the local branch. Protected branches are refused whatever force says.
func (b *Branch) Delete(ctx context.Context, force bool) error {
	if b.IsProtected() {
		return codeerrors.NewProtectedBranchError(b.name)
	}
	if b.repo == nil {
		return errDetached
	}
	return b.repo.Git.DeleteBranch(ctx, b.name, force)
}

// DeleteRemote deletes the branch on the remote. Protected branches are refused.
func (b *Branch) DeleteRemote(ctx context.Context) error {
	if b.IsProtected() {
		return codeerrors.NewProtectedBranchError(b.name)
	}
	if b.repo == nil {
		return errDetached
	}
	return b.repo.Git.DeleteRemoteBranch(ctx, b.name)
}

// Push pushes the branch to the identically named remote branch.
// Private branches are refused before any command runs.
func (b *Branch) Push(ctx context.Context) error {
	if b.IsPrivate() {
		return codeerrors.NewPrivateBranchError(b.name)
	}
	if b.repo == nil {
		return errDetached
	}
	return b.repo.Git.Push(ctx, b.name)
}

// Pull merges the remote branch of the same name into the current branch
func (b *Branch) Pull(ctx context.Context) error {
	if b.repo == nil {
		return errDetached
	}
	return b.repo.Git.Pull(ctx, b.name)
}

// PullRequests returns the open pull requests whose head is this branch
func (b *Branch) PullRequests(ctx context.Context) ([]github.PullRequest, error) {
	if b.repo == nil || b.repo.PullRequests == nil {
		return nil, errDetached
	}
	return b.repo.PullRequests.ListForBranch(ctx, b.name)
}

// MarkAsAwaitingReview labels every pull request of the branch with label
func (b *Branch) MarkAsAwaitingReview(ctx context.Context, label string) error {
	return b.label(ctx, label)
}

// MarkAsHotfix labels every pull request of the branch with label
func (b *Branch) MarkAsHotfix(ctx context.Context, label string) error {
	return b.label(ctx, label)
}

func (b *Branch) label(ctx context.Context, label string) error {
	prs, err := b.PullRequests(ctx)
	if err != nil {
		return err
	}
	if len(prs) == 0 {
		return codeerrors.NewNoPullRequestError(b.name)
	}
	for _, pr := range prs {
		if err := b.repo.PullRequests.AddLabel(ctx, pr.Number, label); err != nil {
			return err
		}
	}
	return nil
}

// OpenPullRequest opens a pull request from the branch into base
func (b *Branch) OpenPullRequest(ctx context.Context, base *Branch, title, body string) (*github.PullRequest, error) {
	if b.repo == nil || b.repo.PullRequests == nil {
		return nil, errDetached
	}
	return b.repo.PullRequests.Create(ctx, github.CreateOptions{
		Title: title,
		Body:  body,
		Head:  b.name,
		Base:  base.Name(),
	})
}
