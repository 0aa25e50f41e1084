package testhelpers

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir    string
	Repo   *GitRepo
	oldDir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// The process works inside the repository until the test ends, and git reads
// an empty per-test global config so nothing leaks into the user's.
// It automatically handles cleanup using t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	// Create temporary directory
	tmpDir, err := os.MkdirTemp("", "code-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	// macOS hands out /var paths that resolve to /private/var
	if resolved, err := filepath.EvalSymlinks(tmpDir); err == nil {
		tmpDir = resolved
	}

	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(tmpDir+"-home", ".gitconfig"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	if err := os.MkdirAll(tmpDir+"-home", 0750); err != nil {
		t.Fatalf("Failed to create home dir: %v", err)
	}

	// Save current directory
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	// Initialize Git repository
	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:    tmpDir,
		Repo:   repo,
		oldDir: oldDir,
	}

	// Change to temp directory
	if err := os.Chdir(tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to change directory: %v", err)
	}

	// Keep the workflow config out of `git status` and `git ls-files`
	if err := scene.excludeConfigFile(); err != nil {
		os.Chdir(oldDir)
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to write exclude file: %v", err)
	}

	// Run custom setup if provided
	if setup != nil {
		if err := setup(scene); err != nil {
			os.Chdir(oldDir)
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	// Register cleanup
	t.Cleanup(func() {
		os.Chdir(oldDir)
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
			os.RemoveAll(tmpDir + "-home")
			os.RemoveAll(tmpDir + "-origin.git")
		}
	})

	return scene
}

// GlobalConfigPath returns the global git config file the scene isolates git to
func (s *Scene) GlobalConfigPath() string {
	return filepath.Join(s.Dir+"-home", ".gitconfig")
}

func (s *Scene) excludeConfigFile() error {
	excludePath := filepath.Join(s.Dir, ".git", "info", "exclude")
	if err := os.MkdirAll(filepath.Dir(excludePath), 0750); err != nil {
		return err
	}
	f, err := os.OpenFile(excludePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString("\n.codeconfig\n")
	return err
}

// WriteConfig writes a .codeconfig file at the repository root
func (s *Scene) WriteConfig(values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k + ": " + quoteYAML(values[k]) + "\n")
	}
	return os.WriteFile(filepath.Join(s.Dir, ".codeconfig"), []byte(b.String()), 0600)
}

func quoteYAML(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// WorkflowSceneSetup creates the two long-lived lines of a workflow repository:
// main (configured as the main line) and development, both pushed to a bare origin.
func WorkflowSceneSetup(scene *Scene) error {
	if err := scene.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
		return err
	}
	if _, err := scene.Repo.CreateBareRemote("origin"); err != nil {
		return err
	}
	if err := scene.Repo.PushBranch("origin", "main"); err != nil {
		return err
	}
	if err := scene.Repo.CreateAndCheckoutBranch("development"); err != nil {
		return err
	}
	if err := scene.Repo.PushBranch("origin", "development"); err != nil {
		return err
	}
	return scene.WriteConfig(map[string]string{
		"master-branch-name":      "main",
		"development-branch-name": "development",
		"ready-label":             "ready for review",
		"hotfix-label":            "hotfix",
	})
}
