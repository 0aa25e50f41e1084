package workflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"coderly.dev/code/internal/match"
	"coderly.dev/code/internal/workflow"
	"coderly.dev/code/testhelpers"
)

type staticFiles []string

func (f staticFiles) ListFiles(context.Context) ([]string, error) {
	return f, nil
}

func TestSearch(t *testing.T) {
	engine := workflow.New(workflow.Deps{
		Git:    testhelpers.NewFakeGit("development"),
		Files:  staticFiles{"lib/random_file", "random_file", "non_random_file", "other", "random_other_file"},
		Config: defaultConfig(),
	})

	t.Run("ranks files best first", func(t *testing.T) {
		ranked, err := engine.Search(context.Background(), "random file")
		require.NoError(t, err)
		require.Equal(t, []string{
			"random_file",
			"random_other_file",
			"lib/random_file",
			"non_random_file",
		}, match.Values(ranked))
	})

	t.Run("needs a pattern", func(t *testing.T) {
		_, err := engine.Search(context.Background(), " ")
		require.Error(t, err)
	})
}

func TestBranches(t *testing.T) {
	engine := workflow.New(workflow.Deps{
		Git:    testhelpers.NewFakeGit("development", "master", "my-test-branch", "test-branch"),
		Config: defaultConfig(),
	})

	t.Run("lists every branch without patterns", func(t *testing.T) {
		branches, err := engine.Branches(context.Background())
		require.NoError(t, err)
		require.Len(t, branches, 4)
	})

	t.Run("ranks matching branches", func(t *testing.T) {
		branches, err := engine.Branches(context.Background(), "test", "branch")
		require.NoError(t, err)
		require.Len(t, branches, 2)
		require.Equal(t, "test-branch", branches[0].Name())
		require.Equal(t, "my-test-branch", branches[1].Name())
	})
}
