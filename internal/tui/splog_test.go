package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestSplog(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	t.Run("writes plain messages with level markers", func(t *testing.T) {
		var out bytes.Buffer
		splog, err := NewSplogWithConfig(&out, "")
		require.NoError(t, err)

		splog.Info("Switched to %s", "master")
		splog.Warn("careful")
		splog.Error("broken")
		splog.Tip("run %s", "code finish")

		require.Equal(t, "Switched to master\n⚠️  careful\n❌ broken\n💡 run code finish\n", out.String())
	})

	t.Run("echoes commands", func(t *testing.T) {
		var out bytes.Buffer
		splog, err := NewSplogWithConfig(&out, "")
		require.NoError(t, err)

		splog.Command([]string{"checkout", "development"})
		require.Equal(t, "git checkout development\n", out.String())
	})

	t.Run("quiet mode suppresses console output", func(t *testing.T) {
		var out bytes.Buffer
		splog, err := NewSplogWithConfig(&out, "")
		require.NoError(t, err)

		splog.SetQuiet(true)
		require.True(t, splog.IsQuiet())
		splog.Info("hidden")
		splog.Command([]string{"status"})
		require.Empty(t, out.String())
	})

	t.Run("debug lines reach the log file only", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		var out bytes.Buffer
		logPath := filepath.Join(t.TempDir(), "logs", "code.log")
		splog, err := NewSplogWithConfig(&out, logPath)
		require.NoError(t, err)

		splog.Debug("resolved %s", "test-branch")
		splog.Command([]string{"push", "origin", ":old"})
		require.NoError(t, splog.Close())

		require.NotContains(t, out.String(), "resolved")

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "resolved test-branch")
		require.Contains(t, string(data), "git push origin :old")
	})
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("CODE_LOG_FILE", "/tmp/custom.log")
	require.Equal(t, "/tmp/custom.log", GetLogFilePath())

	t.Setenv("CODE_LOG_FILE", "")
	require.True(t, strings.HasSuffix(GetLogFilePath(), filepath.Join(".code", "logs", "code.log")))
}
