package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitartist/internal/domain"
)

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("GITARTIST_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
	assert.Equal(t, domain.AnchorFiftyThreeWeeks, settings.Anchor())
	assert.Equal(t, "main", settings.Branch())
	assert.Equal(t, "origin", settings.Remote())
	assert.Equal(t, 1, settings.Offset())
}

func TestLoadSettings_ReadsValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GITARTIST_HOME", home)
	content := `{
  "anchor_policy": "one-year",
  "author_name": "Ada",
  "author_email": "ada@example.com",
  "primary_branch": "trunk",
  "week_offset": 3
}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, domain.AnchorOneYear, settings.Anchor())
	assert.Equal(t, domain.Author{Name: "Ada", Email: "ada@example.com"}, settings.Author())
	assert.Equal(t, "trunk", settings.Branch())
	assert.Equal(t, 3, settings.Offset())
}

func TestLoadSettings_RejectsUnknownAnchorPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"anchor_policy":"average"}`), 0644))

	_, err := LoadSettingsFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "anchor_policy")
}

func TestLoadSettings_RejectsNegativeOffset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"week_offset":-2}`), 0644))

	_, err := LoadSettingsFrom(path)

	require.Error(t, err)
}

func TestLoadSettings_RejectsInvalidBranch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"primary_branch":"my branch"}`), 0644))

	_, err := LoadSettingsFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary_branch")
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	t.Setenv("GITARTIST_HOME", filepath.Join(t.TempDir(), "fresh"))
	offset := 4

	require.NoError(t, SaveSettings(&Settings{AuthorName: "Grace", WeekOffset: &offset}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "Grace", settings.AuthorName)
	assert.Equal(t, 4, settings.Offset())
}

func TestGetSettingsExample_CoversAllFields(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{"anchor_policy", "author_email", "author_name", "debug", "gemini_model", "max_log_files", "primary_branch", "remote_name", "repos_dir", "week_offset"} {
		assert.Contains(t, example, key)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "art"), ExpandPath("~/art"))
	assert.Equal(t, "/tmp/x", ExpandPath("/tmp/x"))
}
