package integration_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitartist/test/integration/harness"
)

func drawHeart(t *testing.T, env *harness.TestEnvironment, git *harness.TestGitSetup) {
	t.Helper()
	result := harness.RunCommand(t, env, "draw", "--shape", "heart", "--date", "2024-01-21", git.ClonePath)
	harness.AssertSuccess(t, result)
}

func TestUndo_RestoresHeadBeforeDrawing(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetAuthor("Pixel Painter", "painter@example.com")
	git := harness.NewTestGitSetup(t)
	before := git.Head()
	drawHeart(t, env, git)

	result := harness.RunCommand(t, env, "undo", git.ClonePath)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Reset main to "+before[:7])
	assert.Equal(t, before, git.Head())
	assert.Equal(t, 1, git.RemoteCommitCount(), "undo is force pushed")
}

func TestUndo_NothingToUndo(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)

	result := harness.RunCommand(t, env, "undo", git.ClonePath)

	harness.AssertErrorHint(t, result)
}

func TestUndo_SecondUndoFails(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetAuthor("Pixel Painter", "painter@example.com")
	git := harness.NewTestGitSetup(t)
	drawHeart(t, env, git)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "undo", git.ClonePath))
	result := harness.RunCommand(t, env, "undo", git.ClonePath)

	harness.AssertFailure(t, result)
}

func TestWipe_ReplacesHistory(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetAuthor("Pixel Painter", "painter@example.com")
	git := harness.NewTestGitSetup(t)
	drawHeart(t, env, git)

	result := harness.RunCommand(t, env, "wipe", "--yes", git.ClonePath)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "single commit on main")
	assert.Equal(t, 1, git.CommitCount())
	assert.Equal(t, 1, git.RemoteCommitCount(), "wipe is force pushed")
	assert.FileExists(t, filepath.Join(git.ClonePath, "data.json"))
}

func TestWipe_ThenUndo(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetAuthor("Pixel Painter", "painter@example.com")
	git := harness.NewTestGitSetup(t)
	drawHeart(t, env, git)
	drawn := git.Head()

	harness.AssertSuccess(t, harness.RunCommand(t, env, "wipe", "--yes", git.ClonePath))
	result := harness.RunCommand(t, env, "undo", git.ClonePath)

	harness.AssertSuccess(t, result)
	assert.Equal(t, drawn, git.Head())
}
