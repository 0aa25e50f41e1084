package testhelpers

import (
	"context"
	"testing"

	"github.com/google/go-github/v62/github"

	githubpkg "coderly.dev/code/internal/github"
)

// NewMockGitHubGateway creates a pull request gateway backed by a mock server
func NewMockGitHubGateway(t *testing.T, config *MockGitHubServerConfig) *githubpkg.Client {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}
	api := NewMockGitHubAPIClient(t, config)
	return githubpkg.NewClient(api, githubpkg.RepoInfo{
		Hostname: "github.com",
		Owner:    config.Owner,
		Repo:     config.Repo,
	})
}

// NewMockAPIClientFactory returns a factory that points every client it builds
// at a mock server, authenticated with the token it is given
func NewMockAPIClientFactory(t *testing.T, config *MockGitHubServerConfig) func(ctx context.Context, hostname, token string) (*github.Client, error) {
	server := NewMockGitHubServer(t, config)
	return func(_ context.Context, _ string, token string) (*github.Client, error) {
		return newAPIClientFor(server, token), nil
	}
}
