// Package testhelpers provides testing utilities for the code CLI:
// scratch repositories and scenes, a fake GitHub API, a recording git fake
// and assertions over repository state.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func sorted(values []string) []string {
	out := append([]string{}, values...)
	sort.Strings(out)
	return out
}

// ExpectBranches asserts that the repository has exactly the expected local branches, in any order
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	out, err := repo.git("for-each-ref", "refs/heads/", "--format=%(refname:short)")
	require.NoError(t, err, "Failed to list branches")
	require.Equal(t, sorted(expected), sorted(lines(out)), "Branches do not match")
}

// ExpectCommits asserts the most recent commit subjects on a branch, newest first.
// Older commits beyond len(expected) are ignored.
func ExpectCommits(t *testing.T, repo *GitRepo, branch string, expected []string) {
	t.Helper()

	out, err := repo.git("log", "--format=%s", branch)
	require.NoError(t, err, "Failed to list commits")

	subjects := lines(out)
	require.GreaterOrEqual(t, len(subjects), len(expected), "Not enough commits on %s", branch)
	require.Equal(t, expected, subjects[:len(expected)], "Commits do not match")
}

// ExpectRemoteBranches asserts that the remote holds exactly the expected branches
func ExpectRemoteBranches(t *testing.T, repo *GitRepo, remote string, expected []string) {
	t.Helper()

	branches, err := repo.RemoteBranches(remote)
	require.NoError(t, err, "Failed to list remote branches")
	require.Equal(t, sorted(expected), sorted(branches), "Remote branches do not match")
}
