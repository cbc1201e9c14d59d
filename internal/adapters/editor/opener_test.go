package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEditor_Priority(t *testing.T) {
	t.Setenv("GITARTIST_EDITOR", "from-gitartist")
	t.Setenv("VISUAL", "from-visual")
	t.Setenv("EDITOR", "from-editor")

	assert.Equal(t, "from-flag", findEditor("from-flag"))
	assert.Equal(t, "from-gitartist", findEditor(""))

	t.Setenv("GITARTIST_EDITOR", "")
	assert.Equal(t, "from-visual", findEditor(""))

	t.Setenv("VISUAL", "")
	assert.Equal(t, "from-editor", findEditor(""))
}

func TestOpen_MissingFile(t *testing.T) {
	err := NewOpener().Open(filepath.Join(t.TempDir(), "missing.json"), "true")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestOpen_RunsEditorToCompletion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	assert.NoError(t, NewOpener().Open(path, "true"))
	assert.Error(t, NewOpener().Open(path, "false"))
}
