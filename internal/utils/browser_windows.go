//go:build windows

package utils

import (
	"os/exec"
)

func openCommand(url string) *exec.Cmd {
	return exec.Command("cmd", "/c", "start", url)
}
