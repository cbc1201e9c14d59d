package editor

import (
	"fmt"
	"os"
	"os/exec"

	"gitartist/internal/logging"
	"gitartist/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct{}

// Verify interface compliance at compile time
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// Open edits the file at path and waits for the editor to exit.
// Priority: cliEditor → $GITARTIST_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) Open(path string, cliEditor string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	editor := findEditor(cliEditor)
	if editor == "" {
		return fmt.Errorf("no suitable editor found. Set --editor flag, $GITARTIST_EDITOR, $VISUAL, or $EDITOR")
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", editor, err)
	}
	return nil
}

func findEditor(cliEditor string) string {
	if cliEditor != "" {
		return cliEditor
	}

	for _, key := range []string{"GITARTIST_EDITOR", "VISUAL", "EDITOR"} {
		if editor := os.Getenv(key); editor != "" {
			return editor
		}
	}

	return findPlatformEditor()
}
