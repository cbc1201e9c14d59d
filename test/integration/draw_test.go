package integration_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitartist/test/integration/harness"
)

func TestDraw_DryRunLeavesRepositoryUntouched(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetAuthor("Pixel Painter", "painter@example.com")
	git := harness.NewTestGitSetup(t)
	head := git.Head()

	result := harness.RunCommand(t, env, "draw", "--text", "HI", "--date", "2024-01-21", "--dry-run", git.ClonePath)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Would write")
	assert.Equal(t, head, git.Head())
}

func TestDraw_CommitsAndPushes(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetAuthor("Pixel Painter", "painter@example.com")
	git := harness.NewTestGitSetup(t)

	result := harness.RunCommand(t, env, "draw", "--shape", "heart", "--date", "2024-01-21", "--week-offset", "0", git.ClonePath)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Wrote")
	harness.AssertStdoutContains(t, result, "Pushed main to origin")

	commits := git.CommitCount()
	assert.Greater(t, commits, 1)
	assert.Equal(t, commits, git.RemoteCommitCount(), "remote matches local")

	dates := harness.GitOutput(t, git.ClonePath, "log", "--format=%ad %ae", "--date=short", "-n", "1")
	assert.Contains(t, dates, "painter@example.com")
	assert.True(t, strings.HasPrefix(dates, "2024-"), "commit is back-dated: %s", dates)
}

func TestDraw_RequiresAuthor(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	head := git.Head()

	result := harness.RunCommand(t, env, "draw", "--text", "HI", git.ClonePath)

	harness.AssertErrorHint(t, result)
	assert.Equal(t, head, git.Head())
}

func TestDraw_AuthorFromSettings(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(map[string]any{
		"author_email": "settings@example.com",
		"author_name":  "Settings Author",
	})
	git := harness.NewTestGitSetup(t)

	result := harness.RunCommand(t, env, "draw", "--shape", "heart", "--date", "2024-01-21", git.ClonePath)

	harness.AssertSuccess(t, result)
	email := harness.GitOutput(t, git.ClonePath, "log", "--format=%ae", "-n", "1")
	assert.Equal(t, "settings@example.com", email)
}

func TestDraw_TemplateFile(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetAuthor("Pixel Painter", "painter@example.com")
	git := harness.NewTestGitSetup(t)
	template := filepath.Join(t.TempDir(), "dots.yaml")
	require.NoError(t, os.WriteFile(template, []byte("pixels:\n  - [0, 0, 1]\n  - [0, 3, 1]\n"), 0644))

	result := harness.RunCommand(t, env, "draw", "--template", template, "--date", "2024-01-21", "--week-offset", "0", git.ClonePath)

	harness.AssertSuccess(t, result)
	commits := git.CommitCount()
	assert.GreaterOrEqual(t, commits, 3, "initial commit plus at least one per pixel")
	assert.LessOrEqual(t, commits, 5, "light pixels get at most two commits")

	dates := strings.Split(harness.GitOutput(t, git.ClonePath, "log", "--format=%ad", "--date=short", "-n", strconv.Itoa(commits-1)), "\n")
	assert.Equal(t, "2024-01-24", dates[0])
	assert.Equal(t, "2024-01-21", dates[len(dates)-1])
}
