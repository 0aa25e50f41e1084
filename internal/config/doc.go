// Package config manages the workflow configuration of a repository.
//
// Values live in a .codeconfig YAML file at the repository root. A value that
// is missing is asked for the first time it is needed and written back, so a
// stored answer is never replaced without the user running `code config set`.
package config
