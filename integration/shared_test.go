//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedGovscopePath holds the path to a shared govscope binary built once for all tests.
	sharedGovscopePath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getGovscopeBinary returns the path to the govscope binary, building it once if needed.
func getGovscopeBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "govscope-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		govscopePath := filepath.Join(tempDir, "govscope")
		buildCmd := exec.Command("go", "build", "-o", govscopePath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build govscope: %v", err))
		}

		sharedGovscopePath = govscopePath
	})

	return sharedGovscopePath
}

// activityFixture returns the absolute path to the checked-in activity export.
func activityFixture(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("testdata", "activity.json"))
	if err != nil {
		t.Fatalf("failed to resolve fixture path: %v", err)
	}
	return path
}

// runGovscopeCommand runs the shared binary and returns combined output.
func runGovscopeCommand(t *testing.T, env []string, args ...string) (string, error) {
	t.Helper()
	govscopePath := getGovscopeBinary()
	cmd := exec.Command(govscopePath, args...)
	cmd.Dir = "../" // Run from project root
	cmd.Env = append(os.Environ(), env...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}
