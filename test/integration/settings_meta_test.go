package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitartist/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name: "table format (default)",
			args: []string{"settings"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file: "+env.SettingsPath())
				harness.AssertStdoutContains(t, result, "author_email")
				harness.AssertStdoutContains(t, result, "GITHUB_PAT")
			},
		},
		{
			name: "json format",
			args: []string{"settings", "meta", "--format", "json"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var output struct {
					Format       map[string]any `json:"format"`
					SettingsFile string         `json:"settings_file"`
				}
				harness.AssertValidJSON(t, result, &output)
				assert.Equal(t, env.SettingsPath(), output.SettingsFile)
				assert.Equal(t, "53-weeks", output.Format["anchor_policy"])
				assert.Contains(t, output.Format, "week_offset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, env, result)
		})
	}
}

func TestSettingsMeta_InvalidSettingsFallBack(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(map[string]any{"week_offset": -2})

	result := harness.RunCommand(t, env, "settings", "meta")

	harness.AssertSuccess(t, result)
	harness.AssertStderrContains(t, result, "week_offset")
}

func TestSettingsEdit_CreatesFile(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "edit", "--editor", "true")

	harness.AssertSuccess(t, result)
	assert.FileExists(t, env.SettingsPath())
}
