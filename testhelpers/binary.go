package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	binaryOnce sync.Once
	binaryPath string
	binaryErr  error
)

// GetSharedBinaryPath returns the code binary, building it on first use
// when TestMain has not done so already.
func GetSharedBinaryPath() string {
	binaryOnce.Do(func() {
		binaryPath, _, binaryErr = buildBinary()
	})
	return binaryPath
}

// GetBinaryError returns the error from building the binary, if any
func GetBinaryError() error {
	return binaryErr
}

// TestMain builds the code binary once, runs the package's tests and
// removes the binary again. cleanup, when non-nil, runs after the tests.
func TestMain(m *testing.M, cleanup func()) {
	var remove func()
	binaryOnce.Do(func() {
		binaryPath, remove, binaryErr = buildBinary()
	})
	if binaryErr != nil {
		fmt.Fprintf(os.Stderr, "Failed to build code binary: %v\n", binaryErr)
		os.Exit(1)
	}

	code := m.Run()

	remove()
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

// buildBinary compiles ./cmd/code into a temporary directory
func buildBinary() (string, func(), error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	root := findModuleRoot(wd)
	if root == "" {
		return "", nil, fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "code-test-binary-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	remove := func() { _ = os.RemoveAll(tmpDir) }

	path := filepath.Join(tmpDir, "code")
	cmd := exec.Command("go", "build", "-o", path, "./cmd/code")
	cmd.Dir = root
	if output, err := cmd.CombinedOutput(); err != nil {
		remove()
		return "", nil, fmt.Errorf("failed to build: %s: %w", output, err)
	}
	return path, remove, nil
}

// findModuleRoot returns the nearest ancestor of dir holding a go.mod
func findModuleRoot(dir string) string {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
