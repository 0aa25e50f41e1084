//go:build darwin

package utils

import (
	"os/exec"
)

func openCommand(url string) *exec.Cmd {
	return exec.Command("open", url)
}
