package workflow

import (
	"context"
	"fmt"

	"coderly.dev/code/internal/branch"
	"coderly.dev/code/internal/match"
)

// Search ranks the files of the working tree against the patterns, best first
func (e *Engine) Search(ctx context.Context, patterns ...string) ([]match.Ranked, error) {
	if e.files == nil {
		return nil, fmt.Errorf("file listing is not available")
	}
	scorer := match.NewScorer(patterns...)
	if len(scorer.Patterns()) == 0 {
		return nil, fmt.Errorf("search needs at least one pattern")
	}

	files, err := e.files.ListFiles(ctx)
	if err != nil {
		return nil, err
	}
	return scorer.Rank(files), nil
}

// Branches lists the branches matching the patterns, best first, or every
// branch when no pattern is given
func (e *Engine) Branches(ctx context.Context, patterns ...string) ([]*branch.Branch, error) {
	repo, err := e.repository()
	if err != nil {
		return nil, err
	}
	return repo.Ranked(ctx, patterns...)
}

// CurrentBranch returns the checked out branch
func (e *Engine) CurrentBranch(ctx context.Context) (*branch.Branch, error) {
	repo, err := e.repository()
	if err != nil {
		return nil, err
	}
	return repo.Current(ctx)
}
