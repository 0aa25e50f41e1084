package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If CODE_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.code/logs/code.log
func GetLogFilePath() string {
	if customPath := os.Getenv("CODE_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "code.log"
	}

	return filepath.Join(homeDir, ".code", "logs", "code.log")
}
