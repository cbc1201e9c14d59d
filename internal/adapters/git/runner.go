package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"gitartist/internal/logging"
)

// GitError is a failed git invocation with its captured stderr
type GitError struct {
	Args   []string
	Err    error
	Stderr string
}

// Error implements the error interface
func (e *GitError) Error() string {
	op := "command"
	if len(e.Args) > 0 {
		op = e.Args[0]
	}
	msg := fmt.Sprintf("git %s failed", op)
	if e.Stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Stderr)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying exec error
func (e *GitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the git exit status, or -1 when git did not run
func (e *GitError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// invocation is a single git command
type invocation struct {
	args   []string
	config []string // -c key=value pairs, never logged
	dir    string
	env    []string
}

// run executes git and returns trimmed stdout
func run(ctx context.Context, inv invocation) (string, error) {
	args := make([]string, 0, len(inv.config)*2+len(inv.args))
	for _, kv := range inv.config {
		args = append(args, "-c", kv)
	}
	args = append(args, inv.args...)

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = inv.dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	cmd.Env = append(cmd.Env, inv.env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	logging.Logger.Debug("git command",
		"args", inv.args,
		"dir", inv.dir,
		"duration", time.Since(start),
		"error", err)

	if err != nil {
		return "", &GitError{
			Args:   inv.args,
			Err:    err,
			Stderr: strings.TrimSpace(stderr.String()),
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}
