// Package git runs git for the workflow commands.
//
// Read-only queries (branch enumeration, the current branch, ref existence,
// the origin URL and the repository root) are answered with go-git. Every
// command that changes the repository is shelled out to the git binary and
// reported through Runner.OnCommand before it runs.
//
// This package should be the only place where git commands are executed.
package git
