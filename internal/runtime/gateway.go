package runtime

import (
	"context"
	"sync"

	"coderly.dev/code/internal/github"
)

// LazyPullRequests connects to GitHub on first use, so that commands which
// never touch pull requests never ask for a token
type LazyPullRequests struct {
	connect func(ctx context.Context) (*github.Client, error)

	mu     sync.Mutex
	client *github.Client
}

// NewLazyPullRequests creates a gateway that calls connect on first use
func NewLazyPullRequests(connect func(ctx context.Context) (*github.Client, error)) *LazyPullRequests {
	return &LazyPullRequests{connect: connect}
}

func (l *LazyPullRequests) get(ctx context.Context) (*github.Client, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.client != nil {
		return l.client, nil
	}
	client, err := l.connect(ctx)
	if err != nil {
		return nil, err
	}
	l.client = client
	return client, nil
}

// ListForBranch returns the open pull requests of a branch
func (l *LazyPullRequests) ListForBranch(ctx context.Context, branchName string) ([]github.PullRequest, error) {
	client, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return client.ListForBranch(ctx, branchName)
}

// AddLabel adds a label to a pull request
func (l *LazyPullRequests) AddLabel(ctx context.Context, number int, label string) error {
	client, err := l.get(ctx)
	if err != nil {
		return err
	}
	return client.AddLabel(ctx, number, label)
}

// Create opens a pull request
func (l *LazyPullRequests) Create(ctx context.Context, opts github.CreateOptions) (*github.PullRequest, error) {
	client, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return client.Create(ctx, opts)
}
