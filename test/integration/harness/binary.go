package harness

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// BuildVersion is stamped into the test binary through ldflags
const BuildVersion = "integration"

// Drawing commands run one git commit per calendar commit, so allow more
// than a plain query needs
const defaultTimeout = 60 * time.Second

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// CommandResult holds the result of running a CLI command
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles the gitartist binary once per test run.
// Call this from TestMain before running tests.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		var root, dir string
		if root, buildErr = moduleRoot(); buildErr != nil {
			return
		}
		if dir, buildErr = os.MkdirTemp("", "gitartist-integration-*"); buildErr != nil {
			return
		}
		binaryPath = filepath.Join(dir, "gitartist")

		cmd := exec.Command("go", "build",
			"-ldflags", "-X gitartist/internal/version.Version="+BuildVersion,
			"-o", binaryPath, "./cmd")
		cmd.Dir = root
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		buildErr = cmd.Run()
	})

	return binaryPath, buildErr
}

// CleanupBinary removes the compiled binary and its temp directory.
// Call this from TestMain after tests complete.
func CleanupBinary() {
	if binaryPath == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
		log.Printf("Warning: failed to cleanup binary directory: %v", err)
	}
}

// RunCommand executes the gitartist binary inside env using the default timeout.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return RunCommandWithTimeout(tb, env, defaultTimeout, args...)
}

// RunCommandWithTimeout executes the gitartist binary inside env.
// The working directory is the isolated home and stdin is empty, so a
// prompt fails instead of hanging.
func RunCommandWithTimeout(tb testing.TB, env *TestEnvironment, timeout time.Duration, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Dir = env.Home
	cmd.Env = env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{}
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("Command timed out after %v: gitartist %v", timeout, args)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("Command execution error: %v", err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// moduleRoot asks the go tool where the module lives.
func moduleRoot() (string, error) {
	out, err := exec.Command("go", "list", "-m", "-f", "{{.Dir}}").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
