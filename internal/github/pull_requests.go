package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v62/github"
)

// ListForBranch returns the open pull requests whose head is {owner}:{branch}
func (c *Client) ListForBranch(ctx context.Context, branchName string) ([]PullRequest, error) {
	prs, _, err := c.api.PullRequests.List(ctx, c.repo.Owner, c.repo.Repo, &github.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.repo.Owner, branchName),
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	})
	if err != nil {
		return nil, gatewayError("list pull requests for "+branchName, err)
	}

	result := make([]PullRequest, 0, len(prs))
	for _, pr := range prs {
		result = append(result, toPullRequest(pr))
	}
	return result, nil
}

// AddLabel attaches a label to a pull request
func (c *Client) AddLabel(ctx context.Context, number int, label string) error {
	_, _, err := c.api.Issues.AddLabelsToIssue(ctx, c.repo.Owner, c.repo.Repo, number, []string{label})
	if err != nil {
		return gatewayError(fmt.Sprintf("label pull request #%d", number), err)
	}
	return nil
}

// Create opens a pull request and returns it
func (c *Client) Create(ctx context.Context, opts CreateOptions) (*PullRequest, error) {
	newPR := &github.NewPullRequest{
		Title: github.String(opts.Title),
		Head:  github.String(opts.Head),
		Base:  github.String(opts.Base),
	}
	if opts.Body != "" {
		newPR.Body = github.String(opts.Body)
	}

	created, _, err := c.api.PullRequests.Create(ctx, c.repo.Owner, c.repo.Repo, newPR)
	if err != nil {
		return nil, gatewayError(fmt.Sprintf("create pull request %s -> %s", opts.Head, opts.Base), err)
	}

	pr := toPullRequest(created)
	return &pr, nil
}
