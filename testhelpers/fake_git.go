package testhelpers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	codeerrors "coderly.dev/code/internal/errors"
	githubpkg "coderly.dev/code/internal/github"
)

// FakeGit is an in-memory git collaborator that records every mutating
// command in the form the real runner would issue it.
type FakeGit struct {
	mu sync.Mutex

	// Branches holds local branch names in enumeration order
	Branches []string
	// Current is the checked out branch
	Current string
	// Dirty reports uncommitted changes to tracked files
	Dirty bool
	// Stashes counts stash entries
	Stashes int
	// Commands records mutating commands, e.g. "branch -d feature"
	Commands []string
	// Failures makes the command with the given text fail
	Failures map[string]error
}

// NewFakeGit creates a fake repository with the given branches, the first checked out
func NewFakeGit(branches ...string) *FakeGit {
	f := &FakeGit{Branches: append([]string(nil), branches...), Failures: map[string]error{}}
	if len(branches) > 0 {
		f.Current = branches[0]
	}
	return f
}

// Recorded returns a snapshot of the recorded commands
func (f *FakeGit) Recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Commands...)
}

// Fail makes the given command fail with a command error
func (f *FakeGit) Fail(command string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Failures[command] = codeerrors.NewGitCommandError("git", strings.Fields(command), "", "fatal: "+command, errors.New("exit status 1"))
}

func (f *FakeGit) record(command string) error {
	f.Commands = append(f.Commands, command)
	if err, ok := f.Failures[command]; ok {
		return err
	}
	return nil
}

func (f *FakeGit) hasBranch(name string) bool {
	for _, b := range f.Branches {
		if b == name {
			return true
		}
	}
	return false
}

// BranchNames returns the branches in enumeration order
func (f *FakeGit) BranchNames(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Branches...), nil
}

// CurrentBranch returns the checked out branch
func (f *FakeGit) CurrentBranch(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Current, nil
}

// BranchExists reports whether the branch is known
func (f *FakeGit) BranchExists(_ context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasBranch(name), nil
}

// CreateBranch adds a branch
func (f *FakeGit) CreateBranch(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("branch " + name); err != nil {
		return err
	}
	if f.hasBranch(name) {
		return fmt.Errorf("fatal: a branch named '%s' already exists", name)
	}
	f.Branches = append(f.Branches, name)
	sort.Strings(f.Branches)
	return nil
}

// Checkout switches the current branch
func (f *FakeGit) Checkout(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("checkout " + name); err != nil {
		return err
	}
	if !f.hasBranch(name) {
		return fmt.Errorf("error: pathspec '%s' did not match", name)
	}
	f.Current = name
	return nil
}

// DeleteBranch removes a branch
func (f *FakeGit) DeleteBranch(_ context.Context, name string, force bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	flag := "-d"
	if force {
		flag = "-D"
	}
	if err := f.record("branch " + flag + " " + name); err != nil {
		return err
	}
	kept := f.Branches[:0]
	for _, b := range f.Branches {
		if b != name {
			kept = append(kept, b)
		}
	}
	f.Branches = kept
	return nil
}

// DeleteRemoteBranch records the remote delete
func (f *FakeGit) DeleteRemoteBranch(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("push origin :" + name)
}

// Push records the push
func (f *FakeGit) Push(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("push -u origin " + name + ":" + name)
}

// Pull records the pull
func (f *FakeGit) Pull(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("pull origin " + name)
}

// Fetch records the fetch
func (f *FakeGit) Fetch(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("fetch origin")
}

// StashPush stashes the dirty state
func (f *FakeGit) StashPush(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("stash push"); err != nil {
		return err
	}
	f.Dirty = false
	f.Stashes++
	return nil
}

// StashPop restores the stashed state
func (f *FakeGit) StashPop(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("stash pop"); err != nil {
		return err
	}
	if f.Stashes == 0 {
		return errors.New("no stash entries found")
	}
	f.Stashes--
	f.Dirty = true
	return nil
}

// HasUncommittedChanges reports Dirty
func (f *FakeGit) HasUncommittedChanges(_ context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Dirty, nil
}

// PruneRemote records the prune
func (f *FakeGit) PruneRemote(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("remote prune origin")
}

// FakePullRequests is an in-memory pull request gateway
type FakePullRequests struct {
	mu sync.Mutex

	// Open maps head branch names to their pull requests
	Open map[string][]githubpkg.PullRequest
	// Created records created pull requests in order
	Created []githubpkg.PullRequest
	// Labels maps pull request numbers to the labels added to them
	Labels map[int][]string
	// Err, when set, is returned by every call
	Err error

	next int
}

// NewFakePullRequests creates an empty gateway
func NewFakePullRequests() *FakePullRequests {
	return &FakePullRequests{
		Open:   map[string][]githubpkg.PullRequest{},
		Labels: map[int][]string{},
		next:   1,
	}
}

// ListForBranch returns the open pull requests for a head branch
func (f *FakePullRequests) ListForBranch(_ context.Context, branchName string) ([]githubpkg.PullRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]githubpkg.PullRequest(nil), f.Open[branchName]...), nil
}

// AddLabel records a label
func (f *FakePullRequests) AddLabel(_ context.Context, number int, label string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Labels[number] = append(f.Labels[number], label)
	return nil
}

// Create opens a pull request
func (f *FakePullRequests) Create(_ context.Context, opts githubpkg.CreateOptions) (*githubpkg.PullRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	pr := githubpkg.PullRequest{
		Number:  f.next,
		HTMLURL: fmt.Sprintf("https://github.com/owner/repo/pull/%d", f.next),
		Title:   opts.Title,
		Base:    opts.Base,
		Head:    opts.Head,
	}
	f.next++
	f.Created = append(f.Created, pr)
	f.Open[opts.Head] = append(f.Open[opts.Head], pr)
	return &pr, nil
}
