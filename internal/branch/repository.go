package branch

import (
	"context"

	codeerrors "coderly.dev/code/internal/errors"
	"coderly.dev/code/internal/match"
)

// suggestionLimit caps the "did you mean" list of a failed match
const suggestionLimit = 3

// Repository hands out branches backed by its collaborators
type Repository struct {
	Git          Git
	PullRequests PullRequests
	Rules        Rules
}

// Branch returns the branch with the given name; it need not exist yet
func (r *Repository) Branch(name string) *Branch {
	return &Branch{name: name, rules: r.Rules, repo: r}
}

// MainLine returns the configured main-line branch
func (r *Repository) MainLine() *Branch {
	return r.Branch(r.Rules.MainLine)
}

// IntegrationLine returns the configured integration-line branch
func (r *Repository) IntegrationLine() *Branch {
	return r.Branch(r.Rules.IntegrationLine)
}

// Current returns the checked out branch. On a detached HEAD it returns a
// branch for which IsDetachedHead is true; it equals no real branch.
func (r *Repository) Current(ctx context.Context) (*Branch, error) {
	name, err := r.Git.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}
	return r.Branch(name), nil
}

// All returns every local branch in the order git enumerates them
func (r *Repository) All(ctx context.Context) ([]*Branch, error) {
	names, err := r.Git.BranchNames(ctx)
	if err != nil {
		return nil, err
	}
	branches := make([]*Branch, len(names))
	for i, name := range names {
		branches[i] = r.Branch(name)
	}
	return branches, nil
}

// Matching returns the first branch, in enumeration order, that the patterns
// match. A failed match returns a BranchNotFoundError with suggestions.
func (r *Repository) Matching(ctx context.Context, patterns ...string) (*Branch, error) {
	names, err := r.Git.BranchNames(ctx)
	if err != nil {
		return nil, err
	}

	scorer := match.NewScorer(patterns...)
	name, ok := scorer.First(names)
	if !ok {
		return nil, codeerrors.NewBranchNotFoundError(
			scorer.Patterns(),
			match.Suggest(scorer.Patterns(), names, suggestionLimit),
		)
	}
	return r.Branch(name), nil
}

// Ranked returns the branches the patterns match, best first.
// With no patterns every branch is returned in enumeration order.
func (r *Repository) Ranked(ctx context.Context, patterns ...string) ([]*Branch, error) {
	names, err := r.Git.BranchNames(ctx)
	if err != nil {
		return nil, err
	}

	scorer := match.NewScorer(patterns...)
	if len(scorer.Patterns()) > 0 {
		names = match.Values(scorer.Rank(names))
	}

	branches := make([]*Branch, len(names))
	for i, name := range names {
		branches[i] = r.Branch(name)
	}
	return branches, nil
}

// Create creates the branch at HEAD and returns it; it is not checked out
func (r *Repository) Create(ctx context.Context, name string) (*Branch, error) {
	if err := r.Git.CreateBranch(ctx, name); err != nil {
		return nil, err
	}
	return r.Branch(name), nil
}
