// Package runtime provides the execution context for code commands.
//
// It wires the shared dependencies of a command: the logger, the git
// runner of the current repository, its configuration, the pull request
// gateway and the workflow engine.
package runtime
