package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DisabledReturnsNoPath(t *testing.T) {
	t.Setenv("GITARTIST_DEBUG", "")
	t.Setenv("GITARTIST_DEBUG_FILE", "")

	path, err := Initialize(Options{MaxFiles: DefaultMaxLogFiles})

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomFile(t *testing.T) {
	t.Setenv("GITARTIST_DEBUG", "")
	t.Setenv("GITARTIST_DEBUG_FILE", "")
	logFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(Options{File: logFile, MaxFiles: DefaultMaxLogFiles})
	require.NoError(t, err)
	assert.Equal(t, logFile, path)

	Logger.Info("hello from test")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestRotateLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log", "d.log"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0644))
		modTime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"c.log", "d.log", "notes.txt"}, names)
}

func TestOptions_FromEnv(t *testing.T) {
	t.Setenv("GITARTIST_DEBUG", "1")
	t.Setenv("GITARTIST_DEBUG_FILE", "/tmp/inherited.log")
	t.Setenv("GITARTIST_MAX_LOG_FILES", "7")

	opts := Options{MaxFiles: DefaultMaxLogFiles}.fromEnv()
	assert.True(t, opts.Debug)
	assert.Equal(t, "/tmp/inherited.log", opts.File)
	assert.Equal(t, 7, opts.MaxFiles)

	explicit := Options{File: "/tmp/mine.log", MaxFiles: 3}.fromEnv()
	assert.Equal(t, "/tmp/mine.log", explicit.File)
	assert.Equal(t, 3, explicit.MaxFiles)
}

func TestRotateLogs_UnderLimitKeepsAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 5))

	assert.FileExists(t, filepath.Join(dir, "a.log"))
}
