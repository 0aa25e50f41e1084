package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo is a scratch repository driven through the git binary.
// Commands inherit the environment, so a Scene's isolated global config applies.
type GitRepo struct {
	Dir string
}

// NewGitRepo runs `git init -b main` in dir and sets a commit identity
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}
	if _, err := repo.git("init", "-b", "main", "--quiet"); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}
	for key, value := range map[string]string{
		"user.name":     "Test User",
		"user.email":    "test@example.com",
		"core.autocrlf": "false",
		"pull.rebase":   "false",
	} {
		if err := repo.SetConfig(key, value); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

// git runs a command in the repository and returns its trimmed stdout.
// Failures carry the command's stderr.
func (r *GitRepo) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(string(out)), nil
}

func lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// RunGitCommand runs an arbitrary git command
func (r *GitRepo) RunGitCommand(args ...string) error {
	_, err := r.git(args...)
	return err
}

// RunGitCommandAndGetOutput runs an arbitrary git command and returns its trimmed output
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	return r.git(args...)
}

// CreateChange writes textValue to <prefix>_test.txt, staging it unless unstaged is set
func (r *GitRepo) CreateChange(textValue string, prefix string, unstaged bool) error {
	name := "test.txt"
	if prefix != "" {
		name = prefix + "_" + name
	}
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(textValue), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if unstaged {
		return nil
	}
	return r.RunGitCommand("add", path)
}

// CreateChangeAndCommit writes a file and commits it with textValue as the message
func (r *GitRepo) CreateChangeAndCommit(textValue string, prefix string) error {
	if err := r.CreateChange(textValue, prefix, false); err != nil {
		return err
	}
	return r.RunGitCommand("commit", "--quiet", "-m", textValue)
}

// ModifyTrackedFile rewrites a file created by CreateChange without staging it
func (r *GitRepo) ModifyTrackedFile(textValue string, prefix string) error {
	return r.CreateChange(textValue, prefix, true)
}

// CreateBranch creates a branch at HEAD without checking it out
func (r *GitRepo) CreateBranch(name string) error {
	return r.RunGitCommand("branch", name)
}

// CreateAndCheckoutBranch creates a branch at HEAD and checks it out
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	return r.RunGitCommand("checkout", "--quiet", "-b", name)
}

// CheckoutBranch checks out an existing branch
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.RunGitCommand("checkout", "--quiet", name)
}

// DeleteBranch force-deletes a branch
func (r *GitRepo) DeleteBranch(name string) error {
	return r.RunGitCommand("branch", "-D", name)
}

// CurrentBranchName returns the checked out branch
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.git("branch", "--show-current")
}

// GetRevision resolves a revision to its SHA
func (r *GitRepo) GetRevision(rev string) (string, error) {
	return r.git("rev-parse", rev)
}

// GetCurrentSHA resolves HEAD
func (r *GitRepo) GetCurrentSHA() (string, error) {
	return r.GetRevision("HEAD")
}

// SetConfig sets a value in the repository's local git config
func (r *GitRepo) SetConfig(key, value string) error {
	return r.RunGitCommand("config", key, value)
}

// CreateBareRemote creates a bare repository next to the working tree,
// at <Dir>-<name>.git, and registers it as a remote. Its HEAD is main
// whatever the host's init.defaultBranch.
func (r *GitRepo) CreateBareRemote(name string) (string, error) {
	bareDir := r.Dir + "-" + name + ".git"
	if _, err := r.git("init", "--bare", "--quiet", "-b", "main", bareDir); err != nil {
		return "", fmt.Errorf("failed to create bare repo: %w", err)
	}
	if err := r.RunGitCommand("remote", "add", name, bareDir); err != nil {
		return "", fmt.Errorf("failed to add remote: %w", err)
	}
	return bareDir, nil
}

// PushBranch pushes a branch and sets its upstream
func (r *GitRepo) PushBranch(remote, branch string) error {
	return r.RunGitCommand("push", "--quiet", "-u", remote, branch)
}

// RemoteBranches lists the branch heads a remote holds
func (r *GitRepo) RemoteBranches(remote string) ([]string, error) {
	out, err := r.git("ls-remote", "--heads", remote)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range lines(out) {
		if fields := strings.Fields(line); len(fields) == 2 {
			names = append(names, strings.TrimPrefix(fields[1], "refs/heads/"))
		}
	}
	return names, nil
}

// HasUnstagedChanges reports unstaged changes to tracked files
func (r *GitRepo) HasUnstagedChanges() (bool, error) {
	out, err := r.git("diff", "--name-only")
	return out != "", err
}

// HasUntrackedFiles reports files git neither tracks nor ignores
func (r *GitRepo) HasUntrackedFiles() (bool, error) {
	out, err := r.git("ls-files", "--others", "--exclude-standard")
	return out != "", err
}

// StashCount returns the number of stash entries
func (r *GitRepo) StashCount() (int, error) {
	out, err := r.git("stash", "list")
	return len(lines(out)), err
}
