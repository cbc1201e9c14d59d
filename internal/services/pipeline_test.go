package services

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitartist/internal/adapters/git"
	"gitartist/internal/adapters/storage"
	"gitartist/internal/domain"
)

// pipeline wires the services to a real git work tree, a bare origin and a
// temporary state database
type pipeline struct {
	gitRepo  *git.CLIRepository
	origin   string
	paint    *PaintService
	repoPath string
	status   *StatusService
	undo     *UndoService
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
	return strings.TrimSpace(string(out))
}

func setupPipeline(t *testing.T) *pipeline {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	ctx := context.Background()
	origin := filepath.Join(t.TempDir(), "origin.git")
	gitOutput(t, t.TempDir(), "init", "--bare", "--initial-branch=main", origin)

	repoPath := t.TempDir()
	gitRepo := git.NewCLIRepository("")
	require.NoError(t, gitRepo.Init(ctx, repoPath))
	require.NoError(t, gitRepo.AddRemote(ctx, repoPath, "origin", origin))

	store, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	undo := NewUndoService(gitRepo, store, "origin", "main")
	return &pipeline{
		gitRepo:  gitRepo,
		origin:   origin,
		paint:    NewPaintService(gitRepo, oneCommitPerPixel(), undo, "origin"),
		repoPath: repoPath,
		status:   NewStatusService(gitRepo, store, "origin"),
		undo:     undo,
	}
}

func (p *pipeline) draw(t *testing.T, pixels ...domain.Pixel) *PaintResult {
	t.Helper()
	result, err := p.paint.Paint(context.Background(), PaintParams{
		Anchor:   testAnchor,
		Author:   testAuthor,
		Pixels:   pixels,
		RepoPath: p.repoPath,
	})
	require.NoError(t, err)
	require.NoError(t, result.PushErr)
	return result
}

func TestPipeline_PinsCommitDates(t *testing.T) {
	p := setupPipeline(t)

	p.draw(t, domain.Pixel{Week: 0, Day: 3, Density: domain.DensityLight})

	commits, err := p.gitRepo.Log(context.Background(), p.repoPath, 0)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "2024-01-24", commits[0].AuthorDate.Format(time.DateOnly))
	assert.Equal(t, "2024-01-24", commits[0].CommitterDate.Format(time.DateOnly))
	assert.Equal(t, testAuthor.Email, commits[0].AuthorEmail)
	assert.Equal(t, "feat: auto-commit for 2024-01-24", commits[0].Subject)

	assert.Equal(t, commits[0].Hash, gitOutput(t, p.origin, "rev-parse", "main"), "origin should hold the pushed tip")
}

func TestPipeline_UndoTwice(t *testing.T) {
	p := setupPipeline(t)
	ctx := context.Background()

	p.draw(t, domain.Pixel{Week: 0, Day: 0, Density: domain.DensityLight})
	base, err := p.gitRepo.HeadCommit(ctx, p.repoPath)
	require.NoError(t, err)

	p.draw(t,
		domain.Pixel{Week: 1, Day: 1, Density: domain.DensityLight},
		domain.Pixel{Week: 1, Day: 2, Density: domain.DensityLight},
	)
	count, err := p.gitRepo.CommitCount(ctx, p.repoPath)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	result, err := p.undo.Undo(ctx, p.repoPath)
	require.NoError(t, err)
	require.NoError(t, result.PushErr)

	head, err := p.gitRepo.HeadCommit(ctx, p.repoPath)
	require.NoError(t, err)
	assert.Equal(t, base, head)
	assert.Equal(t, base, gitOutput(t, p.origin, "rev-parse", "main"))

	_, err = p.undo.Undo(ctx, p.repoPath)
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)
}

func TestPipeline_UndoFirstDrawingHasNothingToUndo(t *testing.T) {
	p := setupPipeline(t)
	ctx := context.Background()

	p.draw(t, domain.Pixel{Week: 0, Day: 0, Density: domain.DensityLight})

	_, err := p.undo.Undo(ctx, p.repoPath)
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)

	count, err := p.gitRepo.CommitCount(ctx, p.repoPath)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "history must be untouched")
}

func TestPipeline_WipeLeavesSingleCommit(t *testing.T) {
	p := setupPipeline(t)
	ctx := context.Background()

	p.draw(t,
		domain.Pixel{Week: 0, Day: 0, Density: domain.DensityLight},
		domain.Pixel{Week: 0, Day: 1, Density: domain.DensityLight},
	)
	gitOutput(t, p.repoPath, "branch", "scratch")

	result, err := p.undo.Wipe(ctx, p.repoPath, testAuthor)
	require.NoError(t, err)
	require.NoError(t, result.PushErr)
	assert.Equal(t, "main", result.Branch)

	commits, err := p.gitRepo.Log(ctx, p.repoPath, 0)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "chore: repository reset", commits[0].Subject)

	branches, err := p.gitRepo.ListBranches(ctx, p.repoPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, branches)

	data, err := os.ReadFile(filepath.Join(p.repoPath, DataFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"reset"`)

	assert.Equal(t, "1", gitOutput(t, p.origin, "rev-list", "--count", "main"))

	// The wipe itself can be undone
	_, err = p.undo.Undo(ctx, p.repoPath)
	require.NoError(t, err)
	count, err := p.gitRepo.CommitCount(ctx, p.repoPath)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPipeline_Status(t *testing.T) {
	p := setupPipeline(t)
	ctx := context.Background()

	status, err := p.status.Status(ctx, p.repoPath)
	require.NoError(t, err)
	assert.Equal(t, "main", status.Branch)
	assert.Empty(t, status.HeadCommit)
	assert.Zero(t, status.CommitCount)
	assert.Equal(t, p.origin, status.RemoteURL)
	assert.Nil(t, status.Checkpoint)

	p.draw(t, domain.Pixel{Week: 0, Day: 0, Density: domain.DensityLight})

	status, err = p.status.Status(ctx, p.repoPath)
	require.NoError(t, err)
	assert.Equal(t, 1, status.CommitCount)
	assert.Len(t, status.RecentCommits, 1)
	require.NotNil(t, status.Checkpoint)
	assert.True(t, status.Checkpoint.IsNoHistory())
}
