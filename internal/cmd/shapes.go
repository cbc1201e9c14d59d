package cmd

import (
	"encoding/json"
	"fmt"

	"gitartist/internal/ui"
)

// ShapesCmd lists the built-in shapes
type ShapesCmd struct {
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Preview bool   `help:"Render every shape" short:"p"`
}

// Run executes the shapes command
func (s *ShapesCmd) Run(cli *CLI) error {
	names := cli.Container.ArtService.ShapeNames()

	if s.Format == "json" {
		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for _, name := range names {
		fmt.Println(name)
		if !s.Preview {
			continue
		}
		pixels, err := cli.Container.ArtService.FromShape(name)
		if err != nil {
			return err
		}
		fmt.Println(ui.Preview(pixels))
	}
	return nil
}
