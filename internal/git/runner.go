package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	codeerrors "coderly.dev/code/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// DefaultRemote is the remote every workflow command talks to
const DefaultRemote = "origin"

// Runner executes git commands against a single working tree
type Runner struct {
	workingDir string
	remote     string

	// OnCommand is called with the arguments of every mutating git command
	// before it runs. It may be nil.
	OnCommand func(args []string)
}

// NewRunner creates a Runner for the repository containing workingDir.
// An empty workingDir means the process working directory.
func NewRunner(workingDir string) *Runner {
	return &Runner{workingDir: workingDir, remote: DefaultRemote}
}

// WorkingDir returns the directory git commands are run in
func (r *Runner) WorkingDir() string {
	return r.workingDir
}

// Remote returns the name of the remote used for push, pull and fetch
func (r *Runner) Remote() string {
	return r.remote
}

// Run executes a mutating git command and returns its trimmed output
func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	if r.OnCommand != nil {
		r.OnCommand(args)
	}
	return r.run(ctx, args...)
}

// runQuiet executes a git command without reporting it through OnCommand
func (r *Runner) runQuiet(ctx context.Context, args ...string) (string, error) {
	return r.run(ctx, args...)
}

// RunLines executes a read-only git command and returns its output as lines
func (r *Runner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.runQuiet(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

func (r *Runner) run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", codeerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", codeerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// exitCode returns the exit status carried by a failed git command, or -1
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
