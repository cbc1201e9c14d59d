package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"gitartist/internal/config"
	"gitartist/internal/logging"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Edit SettingsEditCmd `cmd:"edit" help:"Open settings.json in an editor"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure gitartist.")
	fmt.Println("All settings are optional. Flags and GITARTIST_* environment variables take precedence.")
	fmt.Println("Secrets are read from the environment only: GOOGLE_API_KEY, GITHUB_PAT.")

	return nil
}

// SettingsEditCmd opens the settings file, creating it when missing
type SettingsEditCmd struct {
	Editor string `help:"Editor to use (default $GITARTIST_EDITOR, $VISUAL, $EDITOR)"`
}

// Run executes the edit command
func (s *SettingsEditCmd) Run(cli *CLI) error {
	path := config.GetSettingsPath()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := config.SaveSettings(&config.Settings{}); err != nil {
			return err
		}
		logging.Logger.Info("Created settings file", "path", path)
	}

	if err := cli.Container.Editor.Open(path, s.Editor); err != nil {
		return err
	}

	if _, err := config.LoadSettings(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return nil
}
