package integration_test

import (
	"testing"

	"gitartist/test/integration/harness"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, env *harness.TestEnvironment, git *harness.TestGitSetup)
		validate func(t *testing.T, result harness.CommandResult, git *harness.TestGitSetup)
	}{
		{
			name: "fresh clone has no undo point",
			validate: func(t *testing.T, result harness.CommandResult, git *harness.TestGitSetup) {
				harness.AssertStdoutContains(t, result, "main")
				harness.AssertStdoutContains(t, result, git.BareRepoPath)
				harness.AssertStdoutContains(t, result, "(none)")
				harness.AssertStdoutContains(t, result, "Initial commit")
			},
		},
		{
			name: "after drawing the undo point is the previous head",
			setup: func(t *testing.T, env *harness.TestEnvironment, git *harness.TestGitSetup) {
				env.SetAuthor("Pixel Painter", "painter@example.com")
				drawHeart(t, env, git)
			},
			validate: func(t *testing.T, result harness.CommandResult, git *harness.TestGitSetup) {
				initial := harness.GitOutput(t, git.ClonePath, "rev-list", "--max-parents=0", "HEAD")
				harness.AssertStdoutContains(t, result, initial[:7])
				harness.AssertStdoutContains(t, result, "Recent commits")
				harness.AssertStdoutNotContains(t, result, "(none)")
			},
		},
		{
			name: "remote removed",
			setup: func(t *testing.T, env *harness.TestEnvironment, git *harness.TestGitSetup) {
				harness.RunGitCommand(t, git.ClonePath, "remote", "remove", "origin")
			},
			validate: func(t *testing.T, result harness.CommandResult, git *harness.TestGitSetup) {
				harness.AssertStdoutContains(t, result, "(origin not configured)")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			git := harness.NewTestGitSetup(t)
			if tt.setup != nil {
				tt.setup(t, env, git)
			}

			result := harness.RunCommand(t, env, "status", git.ClonePath)

			harness.AssertSuccess(t, result)
			tt.validate(t, result, git)
		})
	}
}
