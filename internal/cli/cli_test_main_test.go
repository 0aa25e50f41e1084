package cli_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"coderly.dev/code/testhelpers"
)

func TestMain(m *testing.M) {
	testhelpers.TestMain(m, nil)
}

// getCodeBinary returns the path to the pre-built code binary.
func getCodeBinary(t *testing.T) string {
	t.Helper()
	binaryPath := testhelpers.GetSharedBinaryPath()
	if binaryPath == "" {
		if err := testhelpers.GetBinaryError(); err != nil {
			t.Fatalf("failed to build code binary: %v", err)
		}
		t.Fatal("code binary not built")
	}
	return binaryPath
}

// runCode runs the binary in the scene without prompts and returns its combined output
func runCode(t *testing.T, scene *testhelpers.Scene, env []string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getCodeBinary(t), args...)
	cmd.Dir = scene.Dir
	cmd.Env = append(os.Environ(),
		"CODE_NON_INTERACTIVE=1",
		"NO_COLOR=1",
		"GITHUB_TOKEN=",
		"CODE_LOG_FILE="+filepath.Join(t.TempDir(), "code.log"),
	)
	cmd.Env = append(cmd.Env, env...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}
