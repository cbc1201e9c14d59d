package integration_test

import (
	"testing"

	"gitartist/test/integration/harness"
)

func TestRun_RequiresAPIKey(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env)

	harness.AssertExitCode(t, result, 1)
	harness.AssertStderrContains(t, result, "GOOGLE_API_KEY")
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "gitartist "+harness.BuildVersion)
}
