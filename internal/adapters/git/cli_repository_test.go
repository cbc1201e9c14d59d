package git

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitartist/internal/domain"
	"gitartist/internal/ports"
)

var testAuthor = domain.Author{Name: "Pixel Painter", Email: "painter@example.com"}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
	return strings.TrimSpace(string(out))
}

// setupRepoWithOrigin creates a bare origin and an empty work tree pointing at it
func setupRepoWithOrigin(t *testing.T) (repoPath, originPath string) {
	t.Helper()
	originPath = filepath.Join(t.TempDir(), "origin.git")
	gitOutput(t, t.TempDir(), "init", "--bare", "--initial-branch=main", originPath)

	repoPath = t.TempDir()
	repo := NewCLIRepository("")
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx, repoPath))
	require.NoError(t, repo.AddRemote(ctx, repoPath, "origin", originPath))
	return repoPath, originPath
}

func commitFile(t *testing.T, repo *CLIRepository, repoPath, content string, date time.Time) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, os.WriteFile(filepath.Join(repoPath, "data.json"), []byte(content), 0644))
	require.NoError(t, repo.Add(ctx, repoPath, "data.json"))
	require.NoError(t, repo.Commit(ctx, repoPath, ports.CommitOptions{
		Author:  testAuthor,
		Date:    date,
		Message: "paint " + content,
	}))
}

func TestCLIRepository_UnbornRepository(t *testing.T) {
	repoPath, _ := setupRepoWithOrigin(t)
	repo := NewCLIRepository("")
	ctx := context.Background()

	branch, err := repo.CurrentBranch(ctx, repoPath)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)

	_, err = repo.HeadCommit(ctx, repoPath)
	assert.ErrorIs(t, err, domain.ErrNoCommits)

	count, err := repo.CommitCount(ctx, repoPath)
	require.NoError(t, err)
	assert.Zero(t, count)

	commits, err := repo.Log(ctx, repoPath, 10)
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestCLIRepository_CommitPinsDates(t *testing.T) {
	repoPath, _ := setupRepoWithOrigin(t)
	repo := NewCLIRepository("")
	ctx := context.Background()
	date := time.Date(2024, 1, 24, 12, 0, 0, 0, time.UTC)

	commitFile(t, repo, repoPath, "one", date)

	commits, err := repo.Log(ctx, repoPath, 1)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.True(t, commits[0].AuthorDate.Equal(date), "author date %s", commits[0].AuthorDate)
	assert.True(t, commits[0].CommitterDate.Equal(date), "committer date %s", commits[0].CommitterDate)
	assert.Equal(t, "Pixel Painter", commits[0].AuthorName)
	assert.Equal(t, "painter@example.com", commits[0].AuthorEmail)
	assert.Equal(t, "paint one", commits[0].Subject)

	head, err := repo.HeadCommit(ctx, repoPath)
	require.NoError(t, err)
	assert.Equal(t, head, commits[0].Hash)
}

func TestCLIRepository_PushAndReset(t *testing.T) {
	repoPath, originPath := setupRepoWithOrigin(t)
	repo := NewCLIRepository("")
	ctx := context.Background()
	day := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)

	commitFile(t, repo, repoPath, "one", day)
	first, err := repo.HeadCommit(ctx, repoPath)
	require.NoError(t, err)
	commitFile(t, repo, repoPath, "two", day.AddDate(0, 0, 1))

	require.NoError(t, repo.Push(ctx, repoPath, "origin", "main", true))
	assert.Equal(t, gitOutput(t, repoPath, "rev-parse", "HEAD"), gitOutput(t, originPath, "rev-parse", "main"))

	require.NoError(t, repo.ResetHard(ctx, repoPath, first))
	require.NoError(t, repo.Push(ctx, repoPath, "origin", "main", true))

	count, err := repo.CommitCount(ctx, repoPath)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, first, gitOutput(t, originPath, "rev-parse", "main"))
}

func TestCLIRepository_OrphanBranchLifecycle(t *testing.T) {
	repoPath, _ := setupRepoWithOrigin(t)
	repo := NewCLIRepository("")
	ctx := context.Background()
	day := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)

	commitFile(t, repo, repoPath, "one", day)
	commitFile(t, repo, repoPath, "two", day)

	require.NoError(t, repo.CheckoutOrphan(ctx, repoPath, "reset-tmp"))
	commitFile(t, repo, repoPath, "reset", day)
	require.NoError(t, repo.DeleteBranch(ctx, repoPath, "main"))
	require.NoError(t, repo.RenameBranch(ctx, repoPath, "main"))

	branches, err := repo.ListBranches(ctx, repoPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, branches)

	count, err := repo.CommitCount(ctx, repoPath)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCLIRepository_RemoteURL(t *testing.T) {
	repoPath, originPath := setupRepoWithOrigin(t)
	repo := NewCLIRepository("")
	ctx := context.Background()

	url, err := repo.RemoteURL(ctx, repoPath, "origin")
	require.NoError(t, err)
	assert.Equal(t, originPath, url)

	url, err = repo.RemoteURL(ctx, repoPath, "upstream")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestCLIRepository_IsGitRepo(t *testing.T) {
	repoPath, _ := setupRepoWithOrigin(t)
	repo := NewCLIRepository("")
	ctx := context.Background()

	sub := filepath.Join(repoPath, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	assert.True(t, repo.IsGitRepo(ctx, repoPath))
	assert.False(t, repo.IsGitRepo(ctx, sub), "subdirectory is not a repository root")
	assert.False(t, repo.IsGitRepo(ctx, t.TempDir()))
}

func TestCLIRepository_CommitFailureIsGitError(t *testing.T) {
	repoPath, _ := setupRepoWithOrigin(t)
	repo := NewCLIRepository("")

	err := repo.Commit(context.Background(), repoPath, ports.CommitOptions{
		Author:  testAuthor,
		Date:    time.Now(),
		Message: "nothing staged",
	})

	var gitErr *GitError
	require.True(t, errors.As(err, &gitErr))
	assert.Equal(t, "commit", gitErr.Args[0])
	assert.NotEqual(t, -1, gitErr.ExitCode())
	assert.Contains(t, gitErr.Error(), "git commit failed")
}

func TestAuthHeader(t *testing.T) {
	header := authHeader("s3cret")

	require.True(t, strings.HasPrefix(header, "Authorization: Basic "))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Authorization: Basic "))
	require.NoError(t, err)
	assert.Equal(t, "x-access-token:s3cret", string(decoded))
}
