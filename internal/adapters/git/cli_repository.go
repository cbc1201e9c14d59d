package git

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gitartist/internal/domain"
	"gitartist/internal/logging"
	"gitartist/internal/ports"
)

// DefaultInitialBranch is the branch name given to freshly initialized repositories
const DefaultInitialBranch = "main"

// gitDateFormat is the strict ISO 8601 form git accepts in GIT_*_DATE
const gitDateFormat = "2006-01-02T15:04:05-07:00"

// logFieldSep separates fields in git log output
const logFieldSep = "\x1f"

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct {
	token string
}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository. When token is not empty it is
// sent as an HTTP header on pushes to https remotes.
func NewCLIRepository(token string) *CLIRepository {
	return &CLIRepository{token: token}
}

// RepoInspector methods

// IsGitRepo reports whether path is the top level of a work tree
func (r *CLIRepository) IsGitRepo(ctx context.Context, path string) bool {
	top, err := run(ctx, invocation{dir: path, args: []string{"rev-parse", "--show-toplevel"}})
	if err != nil {
		return false
	}
	return samePath(top, path)
}

// HeadCommit returns the full hash of HEAD, or domain.ErrNoCommits on an unborn branch
func (r *CLIRepository) HeadCommit(ctx context.Context, repoPath string) (string, error) {
	out, err := run(ctx, invocation{dir: repoPath, args: []string{"rev-parse", "--verify", "--quiet", "HEAD^{commit}"}})
	if err != nil {
		var gitErr *GitError
		if errors.As(err, &gitErr) && gitErr.ExitCode() == 1 {
			return "", domain.ErrNoCommits
		}
		return "", err
	}
	return out, nil
}

// CurrentBranch returns the checked out branch, including unborn ones
func (r *CLIRepository) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	return run(ctx, invocation{dir: repoPath, args: []string{"symbolic-ref", "--short", "HEAD"}})
}

// CommitCount returns the number of commits reachable from HEAD
func (r *CLIRepository) CommitCount(ctx context.Context, repoPath string) (int, error) {
	if _, err := r.HeadCommit(ctx, repoPath); err != nil {
		if errors.Is(err, domain.ErrNoCommits) {
			return 0, nil
		}
		return 0, err
	}

	out, err := run(ctx, invocation{dir: repoPath, args: []string{"rev-list", "--count", "HEAD"}})
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", out, err)
	}
	return count, nil
}

// ListBranches returns the local branch names
func (r *CLIRepository) ListBranches(ctx context.Context, repoPath string) ([]string, error) {
	out, err := run(ctx, invocation{dir: repoPath, args: []string{"for-each-ref", "--format=%(refname:short)", "refs/heads"}})
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// Log returns up to limit commits from HEAD, newest first
func (r *CLIRepository) Log(ctx context.Context, repoPath string, limit int) ([]domain.CommitInfo, error) {
	if _, err := r.HeadCommit(ctx, repoPath); err != nil {
		if errors.Is(err, domain.ErrNoCommits) {
			return nil, nil
		}
		return nil, err
	}

	format := strings.Join([]string{"%H", "%an", "%ae", "%aI", "%cI", "%s"}, logFieldSep)
	args := []string{"log", "--format=" + format}
	if limit > 0 {
		args = append(args, "-n", strconv.Itoa(limit))
	}

	out, err := run(ctx, invocation{dir: repoPath, args: args})
	if err != nil {
		return nil, err
	}

	var commits []domain.CommitInfo
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		commit, err := parseLogLine(line)
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

func parseLogLine(line string) (domain.CommitInfo, error) {
	fields := strings.SplitN(line, logFieldSep, 6)
	if len(fields) != 6 {
		return domain.CommitInfo{}, fmt.Errorf("unexpected log line %q", line)
	}
	authorDate, err := time.Parse(time.RFC3339, fields[3])
	if err != nil {
		return domain.CommitInfo{}, fmt.Errorf("invalid author date %q: %w", fields[3], err)
	}
	committerDate, err := time.Parse(time.RFC3339, fields[4])
	if err != nil {
		return domain.CommitInfo{}, fmt.Errorf("invalid committer date %q: %w", fields[4], err)
	}
	return domain.CommitInfo{
		AuthorDate:    authorDate,
		AuthorEmail:   fields[2],
		AuthorName:    fields[1],
		CommitterDate: committerDate,
		Hash:          fields[0],
		Subject:       fields[5],
	}, nil
}

// RemoteURL returns the fetch URL of remote, empty when it is not configured
func (r *CLIRepository) RemoteURL(ctx context.Context, repoPath, remote string) (string, error) {
	out, err := run(ctx, invocation{dir: repoPath, args: []string{"remote", "get-url", remote}})
	if err != nil {
		var gitErr *GitError
		if errors.As(err, &gitErr) && gitErr.ExitCode() == 2 {
			return "", nil
		}
		return "", err
	}
	return out, nil
}

// RepoInitializer methods

// Init creates a repository at repoPath on DefaultInitialBranch
func (r *CLIRepository) Init(ctx context.Context, repoPath string) error {
	logging.Logger.Info("Initializing repository", "path", repoPath)
	_, err := run(ctx, invocation{dir: repoPath, args: []string{"init", "--initial-branch=" + DefaultInitialBranch}})
	return err
}

// AddRemote registers a remote
func (r *CLIRepository) AddRemote(ctx context.Context, repoPath, name, url string) error {
	_, err := run(ctx, invocation{dir: repoPath, args: []string{"remote", "add", name, url}})
	return err
}

// Committer methods

// Add stages a single file
func (r *CLIRepository) Add(ctx context.Context, repoPath, file string) error {
	_, err := run(ctx, invocation{dir: repoPath, args: []string{"add", "--", file}})
	return err
}

// Commit records the index with author and committer dates pinned to opts.Date.
// A zero date or an empty identity leaves that part to git's own configuration.
func (r *CLIRepository) Commit(ctx context.Context, repoPath string, opts ports.CommitOptions) error {
	var env []string
	if !opts.Date.IsZero() {
		date := opts.Date.Format(gitDateFormat)
		env = append(env, "GIT_AUTHOR_DATE="+date, "GIT_COMMITTER_DATE="+date)
	}
	if name := strings.TrimSpace(opts.Author.Name); name != "" {
		env = append(env, "GIT_AUTHOR_NAME="+name, "GIT_COMMITTER_NAME="+name)
	}
	if email := strings.TrimSpace(opts.Author.Email); email != "" {
		env = append(env, "GIT_AUTHOR_EMAIL="+email, "GIT_COMMITTER_EMAIL="+email)
	}

	_, err := run(ctx, invocation{
		dir:    repoPath,
		config: []string{"commit.gpgsign=false"},
		args:   []string{"commit", "--no-verify", "--quiet", "-m", opts.Message},
		env:    env,
	})
	return err
}

// HistoryRewriter methods

// ResetHard moves the current branch and work tree to ref
func (r *CLIRepository) ResetHard(ctx context.Context, repoPath, ref string) error {
	logging.Logger.Info("Resetting repository", "path", repoPath, "ref", ref)
	_, err := run(ctx, invocation{dir: repoPath, args: []string{"reset", "--hard", ref}})
	return err
}

// CheckoutOrphan starts a new branch with no history
func (r *CLIRepository) CheckoutOrphan(ctx context.Context, repoPath, branch string) error {
	_, err := run(ctx, invocation{dir: repoPath, args: []string{"checkout", "--quiet", "--orphan", branch}})
	return err
}

// DeleteBranch force-deletes a local branch
func (r *CLIRepository) DeleteBranch(ctx context.Context, repoPath, branch string) error {
	_, err := run(ctx, invocation{dir: repoPath, args: []string{"branch", "-D", branch}})
	return err
}

// RenameBranch renames the current branch, replacing any branch called newName
func (r *CLIRepository) RenameBranch(ctx context.Context, repoPath, newName string) error {
	_, err := run(ctx, invocation{dir: repoPath, args: []string{"branch", "-M", newName}})
	return err
}

// RemoteSync methods

// Push publishes branch to remote and sets it as upstream
func (r *CLIRepository) Push(ctx context.Context, repoPath, remote, branch string, force bool) error {
	args := []string{"push", "--quiet", "-u", remote, branch}
	if force {
		args = append(args, "--force")
	}

	inv := invocation{dir: repoPath, args: args}
	if r.token != "" {
		url, err := r.RemoteURL(ctx, repoPath, remote)
		if err != nil {
			return err
		}
		if strings.HasPrefix(url, "https://") {
			inv.config = append(inv.config, "http.extraHeader="+authHeader(r.token))
		}
	}

	logging.Logger.Info("Pushing branch", "path", repoPath, "remote", remote, "branch", branch, "force", force)
	_, err := run(ctx, inv)
	return err
}

// authHeader builds the basic auth header GitHub accepts for tokens
func authHeader(token string) string {
	creds := base64.StdEncoding.EncodeToString([]byte("x-access-token:" + token))
	return "Authorization: Basic " + creds
}

func samePath(a, b string) bool {
	ra, err := filepath.EvalSymlinks(a)
	if err != nil {
		ra = a
	}
	rb, err := filepath.EvalSymlinks(b)
	if err != nil {
		rb = b
	}
	absA, _ := filepath.Abs(ra)
	absB, _ := filepath.Abs(rb)
	return filepath.Clean(absA) == filepath.Clean(absB)
}
