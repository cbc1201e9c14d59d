package cmd

import (
	"fmt"
	"path/filepath"

	"gitartist/internal/logging"
	"gitartist/internal/theme"
	"gitartist/internal/ui"
)

// UndoCmd resets a repository to the checkpoint taken before its last drawing
type UndoCmd struct {
	Repo string `arg:"" optional:"" help:"Repository to undo" default:"." type:"existingdir"`
}

// Run executes the undo command
func (u *UndoCmd) Run(cli *CLI) error {
	ctx, cancel := commandContext()
	defer cancel()

	repoPath, err := filepath.Abs(u.Repo)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Executing undo command", "repo", repoPath)

	result, err := cli.Container.UndoService.Undo(ctx, repoPath)
	if err != nil {
		return err
	}

	fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("Reset %s to %s", result.Branch, result.Checkpoint.Short())))
	return result.PushErr
}

// WipeCmd replaces the whole history of a repository with one commit
type WipeCmd struct {
	Repo string `arg:"" optional:"" help:"Repository to wipe" default:"." type:"existingdir"`
	Yes  bool   `help:"Do not ask for confirmation" short:"y"`
}

// Run executes the wipe command
func (w *WipeCmd) Run(cli *CLI) error {
	ctx, cancel := commandContext()
	defer cancel()

	repoPath, err := filepath.Abs(w.Repo)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Executing wipe command", "repo", repoPath, "yes", w.Yes)

	if !w.Yes {
		ok, err := ui.ConfirmWipe(repoPath)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Wipe cancelled.")
			return nil
		}
	}

	result, err := cli.Container.UndoService.Wipe(ctx, repoPath, cli.defaultAuthor())
	if err != nil {
		return err
	}

	fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("History of %s replaced by a single commit on %s", repoPath, result.Branch)))
	fmt.Printf("Undo point: %s\n", result.Checkpoint.Short())
	return result.PushErr
}
