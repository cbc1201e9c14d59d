package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess verifies the command exited 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertExitCode(tb, result, 0)
}

// AssertFailure verifies the command exited non-zero.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode,
		"expected a failure, got success.\nstdout: %s", result.Stdout)
}

// AssertExitCode verifies the command exited with expected.
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode,
		"unexpected exit code.\nstdout: %s\nstderr: %s", result.Stdout, result.Stderr)
}

// AssertStdoutContains verifies stdout contains expected.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "stderr: %s", result.Stderr)
}

// AssertStdoutNotContains verifies stdout does not contain unexpected.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected)
}

// AssertStderrContains verifies stderr contains expected.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "stdout: %s", result.Stdout)
}

// AssertErrorHint verifies the command failed with the formatted error
// block: an "Error:" line followed by a "Hint:" line on stderr.
func AssertErrorHint(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertFailure(tb, result)
	AssertStderrContains(tb, result, "Error:")
	AssertStderrContains(tb, result, "Hint:")
}

// AssertValidJSON decodes stdout into target, failing the test when it is not JSON.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target),
		"expected JSON on stdout, got: %s", result.Stdout)
}
