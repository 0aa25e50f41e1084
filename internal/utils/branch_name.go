package utils

import (
	"regexp"
	"strings"
)

// MaxBranchNameByteLength is the longest branch name produced by SanitizeBranchName
const MaxBranchNameByteLength = 244

var (
	// BranchNameReplaceRegex matches characters that are not valid in branch names
	// Valid characters: letters, numbers, -, _, /, .
	BranchNameReplaceRegex = regexp.MustCompile(`[^-_/.a-zA-Z0-9]+`)

	// BranchNameIgnoreRegex matches trailing slashes and dots that should be removed
	BranchNameIgnoreRegex = regexp.MustCompile(`[/.]*$`)

	hyphenRunRegex = regexp.MustCompile(`-+`)
)

// SanitizeBranchName sanitizes a branch name by replacing invalid characters
func SanitizeBranchName(name string) string {
	name = BranchNameIgnoreRegex.ReplaceAllString(name, "")
	name = BranchNameReplaceRegex.ReplaceAllString(name, "-")
	name = hyphenRunRegex.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")

	if len(name) > MaxBranchNameByteLength {
		name = strings.TrimSuffix(name[:MaxBranchNameByteLength], "-")
	}

	return name
}

// BranchNameFromWords turns command line words into a branch name, so that
// `code start add login page` creates add-login-page.
func BranchNameFromWords(words ...string) string {
	return SanitizeBranchName(strings.Join(strings.Fields(strings.Join(words, " ")), "-"))
}
