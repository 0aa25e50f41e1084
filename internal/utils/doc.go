// Package utils provides small helpers shared by the command line layer:
// branch name sanitizing and opening URLs in the user's browser.
package utils
