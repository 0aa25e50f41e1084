package workflow

import (
	"context"

	"coderly.dev/code/internal/branch"
	"coderly.dev/code/internal/config"
	codeerrors "coderly.dev/code/internal/errors"
	"coderly.dev/code/internal/github"
)

// PublishOptions configures Publish
type PublishOptions struct {
	// Base is the target of a feature pull request; defaults to the integration line
	Base string
	// Message is the pull request title; defaults to the branch message
	Message string
	// Body is the pull request description
	Body string
	// Open opens the first pull request in the browser
	Open bool
}

// Publish pushes the current feature branch and opens its pull requests.
// A hotfix gets one pull request into each long-lived line, labeled as a
// hotfix; any other branch gets one labeled as ready for review.
func (e *Engine) Publish(ctx context.Context, opts PublishOptions) ([]github.PullRequest, error) {
	repo, err := e.repository()
	if err != nil {
		return nil, err
	}

	current, err := repo.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !current.IsFeature() {
		return nil, codeerrors.NewNotOnFeatureBranchError(current.String())
	}

	dirty, err := e.git.HasUncommittedChanges(ctx)
	if err != nil {
		return nil, err
	}
	if dirty {
		return nil, codeerrors.NewUncommittedChangesError(current.Name())
	}

	if err := current.Push(ctx); err != nil {
		return nil, err
	}

	title := opts.Message
	if title == "" {
		title = current.Message()
	}

	var (
		bases    []*branch.Branch
		labelKey string
	)
	if current.IsHotfix() {
		bases = []*branch.Branch{repo.IntegrationLine(), repo.MainLine()}
		labelKey = config.KeyHotfixLabel
	} else {
		base := repo.IntegrationLine()
		if opts.Base != "" {
			base = repo.Branch(opts.Base)
		}
		bases = []*branch.Branch{base}
		labelKey = config.KeyReadyLabel
	}

	label, err := e.config.Get(labelKey)
	if err != nil {
		return nil, err
	}

	existing, err := current.PullRequests(ctx)
	if err != nil {
		return nil, err
	}

	published := make([]github.PullRequest, 0, len(bases))
	for _, base := range bases {
		if pr, ok := findByBase(existing, base.Name()); ok {
			e.splog.Info("Pull request #%d into %s is already open", pr.Number, base.Name())
			published = append(published, pr)
			continue
		}
		pr, err := current.OpenPullRequest(ctx, base, title, opts.Body)
		if err != nil {
			return published, err
		}
		e.splog.Info("Opened pull request #%d into %s: %s", pr.Number, base.Name(), pr.HTMLURL)
		published = append(published, *pr)
	}

	if current.IsHotfix() {
		err = current.MarkAsHotfix(ctx, label)
	} else {
		err = current.MarkAsAwaitingReview(ctx, label)
	}
	if err != nil {
		return published, err
	}

	if opts.Open && e.browser != nil && len(published) > 0 {
		if err := e.browser(published[0].HTMLURL); err != nil {
			e.splog.Warn("Could not open %s: %v", published[0].HTMLURL, err)
		}
	}

	e.splog.Tip("Run `code finish` once %s is merged", current.Name())
	return published, nil
}

func findByBase(prs []github.PullRequest, base string) (github.PullRequest, bool) {
	for _, pr := range prs {
		if pr.Base == base {
			return pr, true
		}
	}
	return github.PullRequest{}, false
}
