package workflow

import (
	"context"
	"fmt"

	"coderly.dev/code/internal/branch"
	"coderly.dev/code/internal/config"
	"coderly.dev/code/internal/tui"
)

// Config supplies configured values, asking for them when missing
type Config interface {
	Get(key string) (string, error)
}

// FileLister enumerates the files of the working tree
type FileLister interface {
	ListFiles(ctx context.Context) ([]string, error)
}

// Deps holds the collaborators of an Engine
type Deps struct {
	Git          branch.Git
	Files        FileLister
	PullRequests branch.PullRequests
	Config       Config
	Splog        *tui.Splog
	// Browser opens a URL; nil disables opening
	Browser func(url string) error
}

// Engine runs workflow transitions against one repository
type Engine struct {
	git     branch.Git
	files   FileLister
	prs     branch.PullRequests
	config  Config
	splog   *tui.Splog
	browser func(url string) error
}

// New creates an Engine
func New(deps Deps) *Engine {
	splog := deps.Splog
	if splog == nil {
		splog = tui.NewSplog()
	}
	return &Engine{
		git:     deps.Git,
		files:   deps.Files,
		prs:     deps.PullRequests,
		config:  deps.Config,
		splog:   splog,
		browser: deps.Browser,
	}
}

// Rules reads the main-line and integration-line names from the configuration
func (e *Engine) Rules() (branch.Rules, error) {
	mainLine, err := e.config.Get(config.KeyMasterBranch)
	if err != nil {
		return branch.Rules{}, err
	}
	integrationLine, err := e.config.Get(config.KeyDevelopmentBranch)
	if err != nil {
		return branch.Rules{}, err
	}
	return branch.Rules{MainLine: mainLine, IntegrationLine: integrationLine}, nil
}

func (e *Engine) repository() (*branch.Repository, error) {
	rules, err := e.Rules()
	if err != nil {
		return nil, err
	}
	return &branch.Repository{Git: e.git, PullRequests: e.prs, Rules: rules}, nil
}

// stashed wraps a failure that happened while local changes sit in the stash
func stashed(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w\nyour uncommitted changes are still stashed; run `git stash pop` to restore them", err)
}
