// Package workflow implements the branch workflow: starting feature and
// hotfix branches, switching between branches, publishing them as pull
// requests and finishing or cancelling them.
//
// Each transition runs to completion in one process. Only one instance is
// expected to operate on a working tree at a time; nothing is locked.
// A transition that fails part way is not rolled back. When changes were
// stashed before the failure the error says so.
package workflow
