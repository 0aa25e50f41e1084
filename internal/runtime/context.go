package runtime

import (
	"context"
	"fmt"
	"os"

	"coderly.dev/code/internal/config"
	"coderly.dev/code/internal/git"
	"coderly.dev/code/internal/github"
	"coderly.dev/code/internal/tui"
	"coderly.dev/code/internal/utils"
	"coderly.dev/code/internal/workflow"
)

// Context provides access to the repository and output for commands
type Context struct {
	context.Context
	Splog    *tui.Splog
	RepoRoot string
	Git      *git.Runner
	Config   *config.Store
	Engine   *workflow.Engine
}

// Options configures NewContext
type Options struct {
	// WorkingDir is any directory inside the repository
	WorkingDir string
	// Splog defaults to console output plus the log file
	Splog *tui.Splog
	// Interactive enables prompts for missing configuration and credentials
	Interactive bool
}

// NewContext opens the repository containing opts.WorkingDir
func NewContext(ctx context.Context, opts Options) (*Context, error) {
	splog := opts.Splog
	if splog == nil {
		splog = newSplog()
	}

	runner := git.NewRunner(opts.WorkingDir)
	repoRoot, err := runner.RepoRoot(ctx)
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	runner = git.NewRunner(repoRoot)
	runner.OnCommand = splog.Command

	var (
		configPrompter config.Prompter
		authPrompter   github.Prompter
	)
	if opts.Interactive {
		configPrompter = tui.Prompter{}
		authPrompter = tui.Prompter{}
	}

	store, err := config.Open(repoRoot, configPrompter)
	if err != nil {
		return nil, err
	}

	auth := &github.Authorizer{Store: runner, Prompter: authPrompter}
	gateway := NewLazyPullRequests(func(ctx context.Context) (*github.Client, error) {
		remoteURL, err := runner.RemoteURL(ctx)
		if err != nil {
			return nil, err
		}
		return github.Connect(ctx, remoteURL, auth)
	})

	engine := workflow.New(workflow.Deps{
		Git:          runner,
		Files:        runner,
		PullRequests: gateway,
		Config:       store,
		Splog:        splog,
		Browser:      utils.OpenBrowser,
	})

	return &Context{
		Context:  ctx,
		Splog:    splog,
		RepoRoot: repoRoot,
		Git:      runner,
		Config:   store,
		Engine:   engine,
	}, nil
}

// GetContext returns the context for the repository of the current directory
func GetContext(ctx context.Context) (*Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewContext(ctx, Options{
		WorkingDir:  wd,
		Interactive: tui.InteractiveAllowed() && tui.IsTTY(),
	})
}

// Close releases the log file
func (c *Context) Close() error {
	return c.Splog.Close()
}

func newSplog() *tui.Splog {
	splog, err := tui.NewSplogWithConfig(os.Stdout, tui.GetLogFilePath())
	if err != nil {
		splog = tui.NewSplog()
		splog.Debug("file logging disabled: %v", err)
	}
	return splog
}
