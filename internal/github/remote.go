package github

import (
	"fmt"
	"strings"
)

// RepoInfo contains parsed information from a git remote URL
type RepoInfo struct {
	Hostname string
	Owner    string
	Repo     string
}

// Slug returns owner/repo
func (r RepoInfo) Slug() string {
	return r.Owner + "/" + r.Repo
}

// ParseGitHubRemoteURL parses a git remote URL and extracts hostname, owner, and repo
// Supports both github.com and GitHub Enterprise URLs
// Examples:
//   - https://github.com/owner/repo.git
//   - git@github.com:owner/repo.git
//   - https://github.company.com/owner/repo.git
//   - git@github.company.com:owner/repo.git
func ParseGitHubRemoteURL(remoteURL string) (*RepoInfo, error) {
	remoteURL = strings.TrimSpace(remoteURL)
	remoteURL = strings.TrimSuffix(remoteURL, "/")
	remoteURL = strings.TrimSuffix(remoteURL, ".git")

	var hostname, owner, repo string

	if strings.Contains(remoteURL, "@") && !strings.Contains(remoteURL, "://") {
		// SSH format: git@hostname:owner/repo
		parts := strings.SplitN(remoteURL, "@", 2)
		hostPathParts := strings.SplitN(parts[1], ":", 2)
		if len(hostPathParts) != 2 {
			return nil, fmt.Errorf("invalid SSH remote URL: %s", remoteURL)
		}
		hostname = hostPathParts[0]

		pathParts := strings.Split(hostPathParts[1], "/")
		if len(pathParts) < 2 {
			return nil, fmt.Errorf("invalid SSH remote URL: path must be owner/repo")
		}
		owner = pathParts[len(pathParts)-2]
		repo = pathParts[len(pathParts)-1]
	} else {
		// URL format: https://hostname/owner/repo or ssh://git@hostname/owner/repo
		if idx := strings.Index(remoteURL, "://"); idx >= 0 {
			remoteURL = remoteURL[idx+3:]
		}
		if idx := strings.Index(remoteURL, "@"); idx >= 0 {
			remoteURL = remoteURL[idx+1:]
		}

		parts := strings.Split(remoteURL, "/")
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid remote URL %s: must be protocol://hostname/owner/repo", remoteURL)
		}

		hostname = parts[0]
		owner = parts[len(parts)-2]
		repo = parts[len(parts)-1]
	}

	// ssh://git@host:22/owner/repo
	if idx := strings.Index(hostname, ":"); idx >= 0 {
		hostname = hostname[:idx]
	}

	if hostname == "" || owner == "" || repo == "" {
		return nil, fmt.Errorf("failed to parse hostname, owner, or repo from remote URL")
	}

	return &RepoInfo{
		Hostname: hostname,
		Owner:    owner,
		Repo:     repo,
	}, nil
}
