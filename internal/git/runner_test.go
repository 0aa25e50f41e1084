package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	codeerrors "coderly.dev/code/internal/errors"
	"coderly.dev/code/internal/git"
	"coderly.dev/code/testhelpers"
)

func TestBranchQueries(t *testing.T) {
	t.Run("lists branches in sorted order", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateBranch("zeta"))
		require.NoError(t, scene.Repo.CreateBranch("alpha"))
		require.NoError(t, scene.Repo.CreateBranch("hotfix-x"))

		names, err := git.NewRunner(scene.Dir).BranchNames(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"alpha", "hotfix-x", "main", "zeta"}, names)
	})

	t.Run("reports the current branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))

		current, err := git.NewRunner(scene.Dir).CurrentBranch(context.Background())
		require.NoError(t, err)
		require.Equal(t, "feature", current)
	})

	t.Run("reports no branch on a detached HEAD", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.RunGitCommand("checkout", "--quiet", "--detach", "HEAD"))

		current, err := git.NewRunner(scene.Dir).CurrentBranch(context.Background())
		require.NoError(t, err)
		require.Empty(t, current)
	})

	t.Run("reports an unborn current branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		current, err := git.NewRunner(scene.Dir).CurrentBranch(context.Background())
		require.NoError(t, err)
		require.Equal(t, "main", current)
	})

	t.Run("works from a subdirectory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		sub := filepath.Join(scene.Dir, "nested", "dir")
		require.NoError(t, os.MkdirAll(sub, 0750))

		runner := git.NewRunner(sub)
		current, err := runner.CurrentBranch(context.Background())
		require.NoError(t, err)
		require.Equal(t, "main", current)

		root, err := runner.RepoRoot(context.Background())
		require.NoError(t, err)
		require.Equal(t, scene.Dir, root)
	})
}

func TestBranchLifecycle(t *testing.T) {
	t.Run("exists after create and not after delete", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewRunner(scene.Dir)
		ctx := context.Background()

		exists, err := runner.BranchExists(ctx, "test-branch")
		require.NoError(t, err)
		require.False(t, exists)

		require.NoError(t, runner.CreateBranch(ctx, "test-branch"))
		exists, err = runner.BranchExists(ctx, "test-branch")
		require.NoError(t, err)
		require.True(t, exists)

		require.NoError(t, runner.DeleteBranch(ctx, "test-branch", false))
		exists, err = runner.BranchExists(ctx, "test-branch")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("refuses to delete an unmerged branch without force", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("unmerged"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("work", "work"))
		require.NoError(t, scene.Repo.CheckoutBranch("main"))

		runner := git.NewRunner(scene.Dir)
		err := runner.DeleteBranch(context.Background(), "unmerged", false)
		require.Error(t, err)
		require.ErrorIs(t, err, codeerrors.ErrCommandFailed)
		testhelpers.ExpectBranches(t, scene.Repo, []string{"main", "unmerged"})

		require.NoError(t, runner.DeleteBranch(context.Background(), "unmerged", true))
		testhelpers.ExpectBranches(t, scene.Repo, []string{"main"})
	})

	t.Run("checks out a branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateBranch("other"))

		require.NoError(t, git.NewRunner(scene.Dir).Checkout(context.Background(), "other"))

		current, err := scene.Repo.CurrentBranchName()
		require.NoError(t, err)
		require.Equal(t, "other", current)
	})

	t.Run("failing commands carry git's output", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := git.NewRunner(scene.Dir).Checkout(context.Background(), "missing")
		var cmdErr *codeerrors.GitCommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, []string{"checkout", "missing"}, cmdErr.Args)
		require.NotEmpty(t, cmdErr.Stderr)
	})
}

func TestOnCommand(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	runner := git.NewRunner(scene.Dir)

	var echoed [][]string
	runner.OnCommand = func(args []string) {
		echoed = append(echoed, args)
	}

	ctx := context.Background()
	require.NoError(t, runner.CreateBranch(ctx, "feature"))
	_, err := runner.BranchNames(ctx)
	require.NoError(t, err)
	_, err = runner.HasUncommittedChanges(ctx)
	require.NoError(t, err)
	require.NoError(t, runner.Checkout(ctx, "feature"))

	require.Equal(t, [][]string{
		{"branch", "feature"},
		{"checkout", "feature"},
	}, echoed)
}

func TestUncommittedChanges(t *testing.T) {
	t.Run("clean tree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		dirty, err := git.NewRunner(scene.Dir).HasUncommittedChanges(context.Background())
		require.NoError(t, err)
		require.False(t, dirty)
	})

	t.Run("ignores untracked files", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, os.WriteFile(filepath.Join(scene.Dir, "scratch.txt"), []byte("x"), 0600))

		dirty, err := git.NewRunner(scene.Dir).HasUncommittedChanges(context.Background())
		require.NoError(t, err)
		require.False(t, dirty)
	})

	t.Run("modified tracked file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.ModifyTrackedFile("changed", "1"))

		dirty, err := git.NewRunner(scene.Dir).HasUncommittedChanges(context.Background())
		require.NoError(t, err)
		require.True(t, dirty)
	})

	t.Run("stash round trip restores the change", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.ModifyTrackedFile("changed", "1"))
		runner := git.NewRunner(scene.Dir)
		ctx := context.Background()

		require.NoError(t, runner.StashPush(ctx, "code: test"))
		dirty, err := runner.HasUncommittedChanges(ctx)
		require.NoError(t, err)
		require.False(t, dirty)

		count, err := scene.Repo.StashCount()
		require.NoError(t, err)
		require.Equal(t, 1, count)

		require.NoError(t, runner.StashPop(ctx))
		dirty, err = runner.HasUncommittedChanges(ctx)
		require.NoError(t, err)
		require.True(t, dirty)
	})
}

func TestRemoteOperations(t *testing.T) {
	setup := func(s *testhelpers.Scene) error {
		if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
			return err
		}
		if _, err := s.Repo.CreateBareRemote("origin"); err != nil {
			return err
		}
		return s.Repo.PushBranch("origin", "main")
	}

	t.Run("push publishes the branch under the same name", func(t *testing.T) {
		scene := testhelpers.NewScene(t, setup)
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("feature", "feat"))

		runner := git.NewRunner(scene.Dir)
		require.NoError(t, runner.Push(context.Background(), "feature"))
		testhelpers.ExpectRemoteBranches(t, scene.Repo, "origin", []string{"feature", "main"})

		upstream, err := scene.Repo.RunGitCommandAndGetOutput("config", "branch.feature.remote")
		require.NoError(t, err)
		require.Equal(t, "origin", upstream)
	})

	t.Run("delete remote branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, setup)
		require.NoError(t, scene.Repo.CreateBranch("feature"))
		require.NoError(t, scene.Repo.PushBranch("origin", "feature"))

		require.NoError(t, git.NewRunner(scene.Dir).DeleteRemoteBranch(context.Background(), "feature"))
		testhelpers.ExpectRemoteBranches(t, scene.Repo, "origin", []string{"main"})
	})

	t.Run("pull and fetch pick up remote commits", func(t *testing.T) {
		scene := testhelpers.NewScene(t, setup)
		before, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)

		// Advance origin/main from a second clone
		clone := scene.Dir + "-clone"
		t.Cleanup(func() { os.RemoveAll(clone) })
		require.NoError(t, scene.Repo.RunGitCommand("clone", "--quiet", "-b", "main", scene.Dir+"-origin.git", clone))
		other := &testhelpers.GitRepo{Dir: clone}
		require.NoError(t, other.SetConfig("user.name", "Other"))
		require.NoError(t, other.SetConfig("user.email", "other@example.com"))
		require.NoError(t, other.CreateChangeAndCommit("upstream", "up"))
		require.NoError(t, other.PushBranch("origin", "main"))

		runner := git.NewRunner(scene.Dir)
		ctx := context.Background()
		require.NoError(t, runner.Fetch(ctx))
		require.NoError(t, runner.Pull(ctx, "main"))

		after, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.NotEqual(t, before, after)
	})

	t.Run("prune removes stale tracking refs", func(t *testing.T) {
		scene := testhelpers.NewScene(t, setup)
		require.NoError(t, scene.Repo.CreateBranch("gone"))
		require.NoError(t, scene.Repo.PushBranch("origin", "gone"))
		// Remove it on the remote behind the tracking ref's back
		require.NoError(t, scene.Repo.RunGitCommand("--git-dir", scene.Dir+"-origin.git", "branch", "-D", "gone"))

		require.NoError(t, git.NewRunner(scene.Dir).PruneRemote(context.Background()))

		refs, err := scene.Repo.RunGitCommandAndGetOutput("branch", "-r")
		require.NoError(t, err)
		require.NotContains(t, refs, "origin/gone")
	})

	t.Run("reads the origin url", func(t *testing.T) {
		scene := testhelpers.NewScene(t, setup)
		url, err := git.NewRunner(scene.Dir).RemoteURL(context.Background())
		require.NoError(t, err)
		require.Equal(t, scene.Dir+"-origin.git", url)
	})
}

func TestConfig(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	runner := git.NewRunner(scene.Dir)
	ctx := context.Background()

	value, err := runner.GetConfig(ctx, "oauth.token")
	require.NoError(t, err)
	require.Empty(t, value)

	require.NoError(t, runner.SetGlobalConfig(ctx, "oauth.token", "secret"))
	value, err = runner.GetConfig(ctx, "oauth.token")
	require.NoError(t, err)
	require.Equal(t, "secret", value)

	written, err := os.ReadFile(scene.GlobalConfigPath())
	require.NoError(t, err)
	require.Contains(t, string(written), "secret")
}

func TestListFiles(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, os.WriteFile(filepath.Join(scene.Dir, "untracked.go"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(scene.Dir, ".gitignore"), []byte("ignored.log\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(scene.Dir, "ignored.log"), []byte("x"), 0600))
	require.NoError(t, scene.WriteConfig(map[string]string{"ready-label": "ready"}))

	files, err := git.NewRunner(scene.Dir).ListFiles(context.Background())
	require.NoError(t, err)
	require.ElementsMatch(t, []string{".gitignore", "1_test.txt", "untracked.go"}, files)
}
