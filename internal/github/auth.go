package github

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/google/go-github/v62/github"

	codeerrors "coderly.dev/code/internal/errors"
)

// TokenConfigKey is the git config key the token is stored under
const TokenConfigKey = "oauth.token"

// ConfigStore reads and writes git config
type ConfigStore interface {
	GetConfig(ctx context.Context, key string) (string, error)
	SetGlobalConfig(ctx context.Context, key, value string) error
}

// Prompter asks the user for credentials
type Prompter interface {
	Input(message, defaultValue string) (string, error)
	Password(message string) (string, error)
}

// Authorizer finds a GitHub token, or obtains one from the user the first
// time none is available
type Authorizer struct {
	Store    ConfigStore
	Prompter Prompter

	// APIClientFactory builds the client used to verify a new token.
	// Defaults to NewAPIClient.
	APIClientFactory func(ctx context.Context, hostname, token string) (*github.Client, error)

	// GHToken asks the gh CLI for its token. Defaults to `gh auth token`.
	GHToken func(ctx context.Context) (string, error)
}

// LookupToken returns the first token found in git config, GITHUB_TOKEN or
// the gh CLI, or "" when there is none
func (a *Authorizer) LookupToken(ctx context.Context) (string, error) {
	token, err := a.Store.GetConfig(ctx, TokenConfigKey)
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	ghToken := a.GHToken
	if ghToken == nil {
		ghToken = ghAuthToken
	}
	// A missing or logged-out gh CLI just means no token
	if token, err := ghToken(ctx); err == nil && token != "" {
		return token, nil
	}

	return "", nil
}

// EnsureAuthorized returns a usable token. When none is configured it asks
// for a GitHub username and personal access token, checks that the token
// belongs to that user and stores it in the global git config.
func (a *Authorizer) EnsureAuthorized(ctx context.Context, hostname string) (string, error) {
	token, err := a.LookupToken(ctx)
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}

	if a.Prompter == nil {
		return "", codeerrors.NewMissingAuthorizationError("no token configured")
	}

	username, err := a.Prompter.Input("GitHub username:", "")
	if err != nil {
		return "", codeerrors.NewMissingAuthorizationError(err.Error())
	}
	token, err = a.Prompter.Password("GitHub personal access token (repo scope):")
	if err != nil {
		return "", codeerrors.NewMissingAuthorizationError(err.Error())
	}
	username = strings.TrimSpace(username)
	token = strings.TrimSpace(token)
	if username == "" || token == "" {
		return "", codeerrors.NewMissingAuthorizationError("username and token are required")
	}

	api, err := a.newAPIClient(ctx, hostname, token)
	if err != nil {
		return "", err
	}
	user, _, err := api.Users.Get(ctx, "")
	if err != nil {
		return "", codeerrors.NewMissingAuthorizationError(fmt.Sprintf("GitHub rejected the token: %v", err))
	}
	if !strings.EqualFold(user.GetLogin(), username) {
		return "", codeerrors.NewMissingAuthorizationError(
			fmt.Sprintf("the token belongs to %s, not %s", user.GetLogin(), username))
	}

	if err := a.Store.SetGlobalConfig(ctx, TokenConfigKey, token); err != nil {
		return "", err
	}
	return token, nil
}

func (a *Authorizer) newAPIClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	if a.APIClientFactory != nil {
		return a.APIClientFactory(ctx, hostname, token)
	}
	return NewAPIClient(ctx, hostname, token)
}

// ghAuthToken gets the token the gh CLI is logged in with
func ghAuthToken(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "gh", "auth", "token")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", codeerrors.NewGitCommandError("gh", []string{"auth", "token"}, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
