package cmd

import (
	"fmt"

	"gitartist/internal/domain"
	"gitartist/internal/logging"
	"gitartist/internal/ui"
)

// RunCmd starts the interactive menu
type RunCmd struct{}

// Run executes the interactive menu
func (r *RunCmd) Run(cli *CLI) error {
	if !cli.Container.HasArtist {
		return fmt.Errorf("%w: GOOGLE_API_KEY is not set", domain.ErrMissingCredentials)
	}

	logging.Logger.Info("Starting interactive menu")

	ctx, cancel := commandContext()
	defer cancel()

	app := ui.NewApp(ui.Services{
		Art:   cli.Container.ArtService,
		Paint: cli.Container.PaintService,
		Repos: cli.Container.RepoService,
		Undo:  cli.Container.UndoService,
	}, ui.Options{
		AnchorPolicy: domain.AnchorPolicy(cli.AnchorPolicy),
		Author:       cli.defaultAuthor(),
		ReposDir:     cli.ReposDir,
		WeekOffset:   cli.weekOffset(),
	})

	if err := app.Run(ctx); err != nil {
		logging.Logger.Error("Interactive menu error", "error", err)
		return fmt.Errorf("error running menu: %w", err)
	}

	logging.Logger.Info("Interactive menu exited normally")
	return nil
}
