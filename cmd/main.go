package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"gitartist/internal/cmd"
	"gitartist/internal/config"
	"gitartist/internal/ui"
	"gitartist/internal/version"
)

func main() {
	// A missing .env is fine; real environment variables win over it
	_ = godotenv.Load()

	// Load settings from $GITARTIST_HOME/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{} // Use empty settings
	}

	// Parse CLI arguments with Kong
	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings) // Set settings before parsing
	ctx := kong.Parse(&cli,
		kong.Name("gitartist"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	// Execute the selected command
	err = ctx.Run()
	cli.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err))
		os.Exit(1)
	}
}
