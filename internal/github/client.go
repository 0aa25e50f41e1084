// Package github is the pull request gateway: it lists, creates and labels
// pull requests through the GitHub REST API.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	codeerrors "coderly.dev/code/internal/errors"
)

// PullRequest contains information about a pull request
// This is a simplified struct to avoid coupling to go-github library
type PullRequest struct {
	Number  int
	HTMLURL string
	Title   string
	Base    string
	Head    string
}

// CreateOptions contains options for creating a pull request
type CreateOptions struct {
	Title string
	Body  string
	Head  string
	Base  string
}

// Client is the pull request gateway for a single repository
type Client struct {
	api  *github.Client
	repo RepoInfo
}

// NewClient wraps an authenticated go-github client for the given repository
func NewClient(api *github.Client, repo RepoInfo) *Client {
	return &Client{api: api, repo: repo}
}

// Repo returns the repository the client talks to
func (c *Client) Repo() RepoInfo {
	return c.repo
}

// NewAPIClient creates a GitHub client configured for the given hostname
// Supports both github.com and GitHub Enterprise instances
func NewAPIClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	// Configure for GitHub Enterprise if not github.com
	if hostname != "" && hostname != "github.com" {
		// REST API: https://hostname/api/v3/
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
		}

		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}

	// CODE_GITHUB_API_URL points the client at another REST endpoint
	if apiURL := os.Getenv("CODE_GITHUB_API_URL"); apiURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(apiURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("failed to parse CODE_GITHUB_API_URL %s: %w", apiURL, err)
		}
		client.BaseURL = baseURL
	}

	return client, nil
}

// Connect resolves the repository from its remote URL, makes sure a token
// is available and returns a gateway for it
func Connect(ctx context.Context, remoteURL string, auth *Authorizer) (*Client, error) {
	repo, err := ParseGitHubRemoteURL(remoteURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository info: %w", err)
	}

	token, err := auth.EnsureAuthorized(ctx, repo.Hostname)
	if err != nil {
		return nil, err
	}

	api, err := auth.newAPIClient(ctx, repo.Hostname, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return NewClient(api, *repo), nil
}

// gatewayError classifies a go-github failure
func gatewayError(operation string, err error) error {
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode == http.StatusUnauthorized {
		return codeerrors.NewMissingAuthorizationError("GitHub rejected the stored token")
	}
	return codeerrors.NewGatewayError(operation, err)
}

// toPullRequest converts a github.PullRequest to PullRequest
func toPullRequest(pr *github.PullRequest) PullRequest {
	return PullRequest{
		Number:  pr.GetNumber(),
		HTMLURL: pr.GetHTMLURL(),
		Title:   pr.GetTitle(),
		Base:    pr.GetBase().GetRef(),
		Head:    pr.GetHead().GetRef(),
	}
}
