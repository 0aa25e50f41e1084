// Package errors provides sentinel errors and custom error types for the code application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrFeatureExists indicates that a branch with the requested name already exists
	ErrFeatureExists = errors.New("feature already exists")

	// ErrBranchProtected indicates a destructive operation on a protected branch
	ErrBranchProtected = errors.New("branch is protected")

	// ErrBranchPrivate indicates an attempt to push a private branch
	ErrBranchPrivate = errors.New("branch is private")

	// ErrNotOnFeatureBranch indicates that HEAD is on a protected branch
	ErrNotOnFeatureBranch = errors.New("not on a feature branch")

	// ErrUncommittedChanges indicates that the working tree is dirty
	ErrUncommittedChanges = errors.New("uncommitted changes present")

	// ErrBranchNotFound indicates that no branch matched the given name or patterns
	ErrBranchNotFound = errors.New("branch not found")

	// ErrNoPullRequest indicates that no pull request exists for a branch
	ErrNoPullRequest = errors.New("no pull request for branch")

	// ErrCommandFailed indicates that git or the pull request gateway reported a failure
	ErrCommandFailed = errors.New("command failed")

	// ErrMissingAuthorization indicates that no usable GitHub token is available
	ErrMissingAuthorization = errors.New("missing authorization")
)

// FeatureExistsError represents an attempt to start a branch that already exists
type FeatureExistsError struct {
	BranchName string
}

func (e *FeatureExistsError) Error() string {
	return fmt.Sprintf("the %s feature already exists", e.BranchName)
}

// Is returns true if the target error is ErrFeatureExists
func (e *FeatureExistsError) Is(target error) bool {
	return target == ErrFeatureExists
}

// NewFeatureExistsError creates a new FeatureExistsError
func NewFeatureExistsError(branchName string) *FeatureExistsError {
	return &FeatureExistsError{BranchName: branchName}
}

// ProtectedBranchError represents a delete of a protected branch
type ProtectedBranchError struct {
	BranchName string
}

func (e *ProtectedBranchError) Error() string {
	return fmt.Sprintf("the %s branch is protected", e.BranchName)
}

// Is returns true if the target error is ErrBranchProtected
func (e *ProtectedBranchError) Is(target error) bool {
	return target == ErrBranchProtected
}

// NewProtectedBranchError creates a new ProtectedBranchError
func NewProtectedBranchError(branchName string) *ProtectedBranchError {
	return &ProtectedBranchError{BranchName: branchName}
}

// PrivateBranchError represents a push of a private branch
type PrivateBranchError struct {
	BranchName string
}

func (e *PrivateBranchError) Error() string {
	return fmt.Sprintf("the %s branch is private and must not be pushed", e.BranchName)
}

// Is returns true if the target error is ErrBranchPrivate
func (e *PrivateBranchError) Is(target error) bool {
	return target == ErrBranchPrivate
}

// NewPrivateBranchError creates a new PrivateBranchError
func NewPrivateBranchError(branchName string) *PrivateBranchError {
	return &PrivateBranchError{BranchName: branchName}
}

// NotOnFeatureBranchError represents a publish attempted from a protected branch
type NotOnFeatureBranchError struct {
	BranchName string
}

func (e *NotOnFeatureBranchError) Error() string {
	return fmt.Sprintf("%s is not a feature branch", e.BranchName)
}

// Is returns true if the target error is ErrNotOnFeatureBranch
func (e *NotOnFeatureBranchError) Is(target error) bool {
	return target == ErrNotOnFeatureBranch
}

// NewNotOnFeatureBranchError creates a new NotOnFeatureBranchError
func NewNotOnFeatureBranchError(branchName string) *NotOnFeatureBranchError {
	return &NotOnFeatureBranchError{BranchName: branchName}
}

// UncommittedChangesError represents a dirty working tree where a clean one is required
type UncommittedChangesError struct {
	BranchName string
}

func (e *UncommittedChangesError) Error() string {
	return fmt.Sprintf("%s has uncommitted changes; please stash or commit your code", e.BranchName)
}

// Is returns true if the target error is ErrUncommittedChanges
func (e *UncommittedChangesError) Is(target error) bool {
	return target == ErrUncommittedChanges
}

// NewUncommittedChangesError creates a new UncommittedChangesError
func NewUncommittedChangesError(branchName string) *UncommittedChangesError {
	return &UncommittedChangesError{BranchName: branchName}
}

// BranchNotFoundError represents an error when no branch matches a name or pattern set
type BranchNotFoundError struct {
	Patterns    []string
	Suggestions []string
}

func (e *BranchNotFoundError) Error() string {
	msg := fmt.Sprintf("no branch matching %s exists", strings.Join(e.Patterns, " "))
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(patterns []string, suggestions []string) *BranchNotFoundError {
	return &BranchNotFoundError{Patterns: patterns, Suggestions: suggestions}
}

// NoPullRequestError represents a label operation on a branch without pull requests
type NoPullRequestError struct {
	BranchName string
}

func (e *NoPullRequestError) Error() string {
	return fmt.Sprintf("no pull request exists for branch %s", e.BranchName)
}

// Is returns true if the target error is ErrNoPullRequest
func (e *NoPullRequestError) Is(target error) bool {
	return target == ErrNoPullRequest
}

// NewNoPullRequestError creates a new NoPullRequestError
func NewNoPullRequestError(branchName string) *NoPullRequestError {
	return &NoPullRequestError{BranchName: branchName}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("%s command failed: %s", e.Command, e.Command)
	if len(e.Args) > 0 {
		msg += " " + strings.Join(e.Args, " ")
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", strings.TrimSpace(e.Stderr))
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", strings.TrimSpace(e.Stdout))
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommandFailed
func (e *GitCommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// GatewayError represents a failed call to the pull request gateway
type GatewayError struct {
	Operation string
	Err       error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommandFailed
func (e *GatewayError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewGatewayError creates a new GatewayError
func NewGatewayError(operation string, err error) *GatewayError {
	return &GatewayError{Operation: operation, Err: err}
}

// MissingAuthorizationError represents an absent or rejected GitHub token
type MissingAuthorizationError struct {
	Reason string
}

func (e *MissingAuthorizationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("GitHub authorization missing: %s", e.Reason)
	}
	return "GitHub authorization missing"
}

// Is returns true if the target error is ErrMissingAuthorization
func (e *MissingAuthorizationError) Is(target error) bool {
	return target == ErrMissingAuthorization
}

// NewMissingAuthorizationError creates a new MissingAuthorizationError
func NewMissingAuthorizationError(reason string) *MissingAuthorizationError {
	return &MissingAuthorizationError{Reason: reason}
}
