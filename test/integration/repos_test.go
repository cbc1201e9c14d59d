package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitartist/test/integration/harness"
)

type savedRepo struct {
	CreatedAt string `json:"created_at"`
	LocalPath string `json:"local_path"`
	Name      string `json:"name"`
	RemoteURL string `json:"remote_url"`
}

func TestRepos_EmptyList(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "repos")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No saved repositories")
}

func TestRepos_AddThenList(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "repos", "add", git.ClonePath))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "repos", "add", git.ClonePath))

	result := harness.RunCommand(t, env, "repos", "list", "--format", "json")

	harness.AssertSuccess(t, result)
	var repos []savedRepo
	harness.AssertValidJSON(t, result, &repos)
	require.Len(t, repos, 1, "adding twice keeps one record")
	assert.Equal(t, "clone", repos[0].Name)
	assert.Equal(t, git.BareRepoPath, repos[0].RemoteURL)
	assert.FileExists(t, env.DBPath())
}

func TestRepos_AddRejectsNonRepository(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "repos", "add", t.TempDir())

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "not the root of a git repository")
}

func TestRepos_CreateWithoutToken(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "repos", "create", "my-canvas")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "GITHUB_PAT")
}

func TestRepos_CreateRejectsInvalidName(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "repos", "create", "not/valid")

	harness.AssertFailure(t, result)
}
