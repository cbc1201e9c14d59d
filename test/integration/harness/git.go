package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestGitSetup holds paths for a complete git test environment.
// It creates a bare repo (simulating the GitHub remote) and a clone with origin configured.
type TestGitSetup struct {
	BareRepoPath string // Acts as "origin" remote
	ClonePath    string // Drawing repo with origin configured
	tb           testing.TB
}

// NewTestGitSetup creates a complete git environment with origin.
//  1. Creates a bare repo (simulates origin)
//  2. Clones it to create a working repo with origin remote
//  3. Creates and pushes an initial commit on main
//
// Setup structure:
//
//	tb.TempDir()/
//	├── bare/   <- git init --bare (acts as origin)
//	└── clone/  <- git clone bare/ clone/ (the drawing repo)
func NewTestGitSetup(tb testing.TB) *TestGitSetup {
	tb.Helper()

	baseDir := tb.TempDir()
	bareRepoPath := filepath.Join(baseDir, "bare")
	clonePath := filepath.Join(baseDir, "clone")

	runGitCommand(tb, baseDir, "init", "--bare", bareRepoPath)
	runGitCommand(tb, baseDir, "clone", bareRepoPath, clonePath)

	runGitCommand(tb, clonePath, "config", "user.email", "test@example.com")
	runGitCommand(tb, clonePath, "config", "user.name", "Test User")

	readme := filepath.Join(clonePath, "README.md")
	if err := os.WriteFile(readme, []byte("# Canvas\n"), 0644); err != nil {
		tb.Fatalf("Failed to create README: %v", err)
	}
	runGitCommand(tb, clonePath, "add", "README.md")
	runGitCommand(tb, clonePath, "commit", "-m", "Initial commit")

	// git might default to "master"
	runGitCommand(tb, clonePath, "branch", "-M", "main")
	runGitCommand(tb, clonePath, "push", "-u", "origin", "main")

	return &TestGitSetup{
		BareRepoPath: bareRepoPath,
		ClonePath:    clonePath,
		tb:           tb,
	}
}

// Head returns the HEAD hash of the clone.
func (g *TestGitSetup) Head() string {
	g.tb.Helper()
	return GitOutput(g.tb, g.ClonePath, "rev-parse", "HEAD")
}

// CommitCount returns the number of commits reachable from HEAD in the clone.
func (g *TestGitSetup) CommitCount() int {
	g.tb.Helper()
	return countCommits(g.tb, g.ClonePath, "HEAD")
}

// RemoteCommitCount returns the number of commits on main in the bare repo.
func (g *TestGitSetup) RemoteCommitCount() int {
	g.tb.Helper()
	return countCommits(g.tb, g.BareRepoPath, "main")
}

func countCommits(tb testing.TB, dir, ref string) int {
	tb.Helper()
	out := GitOutput(tb, dir, "rev-list", "--count", ref)
	n, err := strconv.Atoi(out)
	if err != nil {
		tb.Fatalf("Unexpected rev-list output %q: %v", out, err)
	}
	return n
}

// GitOutput runs a git command in dir and returns its trimmed stdout.
func GitOutput(tb testing.TB, dir string, args ...string) string {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v", args, dir, err)
	}
	return strings.TrimSpace(string(out))
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	runGitCommand(tb, dir, args...)
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}
