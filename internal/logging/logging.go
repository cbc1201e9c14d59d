package logging

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the rotation limit when none is configured
const DefaultMaxLogFiles = 200

// Logger is shared by every package. It discards records until Initialize
// turns debug output on.
var Logger = discard()

// Options controls where debug records go
type Options struct {
	Debug bool
	// File, when set, receives all records and disables rotation
	File string
	// MaxFiles caps the number of per-run files kept in the log directory; 0 disables rotation
	MaxFiles int
}

// fromEnv fills options a parent process exported. Explicit values win.
func (o Options) fromEnv() Options {
	if os.Getenv("GITARTIST_DEBUG") == "1" {
		o.Debug = true
	}
	if o.File == "" {
		o.File = os.Getenv("GITARTIST_DEBUG_FILE")
	}
	if o.MaxFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(os.Getenv("GITARTIST_MAX_LOG_FILES")); err == nil {
			o.MaxFiles = n
		}
	}
	return o
}

// Initialize installs the logger described by opts.
// Returns the log file path, empty when logging is disabled.
func Initialize(opts Options) (string, error) {
	opts = opts.fromEnv()

	if !opts.Debug && opts.File == "" {
		Logger = discard()
		return "", nil
	}

	path, err := logPath(opts)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", path, "pid", os.Getpid())

	// stdout may carry json output
	fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", path)
	return path, nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// logPath picks the file for this run, rotating the log directory when
// no explicit file was requested
func logPath(opts Options) (string, error) {
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.File, nil
	}

	dir, err := LogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxFiles > 0 {
		if err := rotateLogs(dir, opts.MaxFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(dir, uuid.NewString()+".log"), nil
}

// rotateLogs deletes the oldest .log files so that, with the file about
// to be created, at most maxFiles remain
func rotateLogs(dir string, maxFiles int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFile struct {
		modTime time.Time
		path    string
	}
	var files []logFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{modTime: info.ModTime(), path: filepath.Join(dir, entry.Name())})
	}

	excess := len(files) - maxFiles + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(files, func(a, b logFile) int { return a.modTime.Compare(b.modTime) })
	for _, f := range files[:min(excess, len(files))] {
		if err := os.Remove(f.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", f.path, err)
		}
	}
	return nil
}

// LogDir returns the per-OS directory rotated log files live in
func LogDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "gitartist"), nil
	case "windows":
		return filepath.Join(cmp.Or(os.Getenv("LOCALAPPDATA"), filepath.Join(home, "AppData", "Local")), "gitartist", "logs"), nil
	case "linux":
		return filepath.Join(cmp.Or(os.Getenv("XDG_STATE_HOME"), filepath.Join(home, ".local", "state")), "gitartist"), nil
	default:
		return filepath.Join(home, ".gitartist", "logs"), nil
	}
}
