package patterns

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"gitartist/internal/domain"
	"gitartist/internal/logging"
)

// Template is a drawing stored on disk. Pixels holds [week, day, density]
// triples; Grid holds day-major rows in the built-in shape notation.
// Pixels wins when both are present.
type Template struct {
	Grid   []string `json:"grid" yaml:"grid"`
	Name   string   `json:"name" yaml:"name"`
	Pixels []any    `json:"pixels" yaml:"pixels"`
}

// LoadTemplate reads a .json, .yaml or .yml template file
func LoadTemplate(path string) ([]domain.Pixel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	var tmpl Template
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &tmpl)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &tmpl)
	default:
		return nil, fmt.Errorf("unsupported template format %q (use .json, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid template %s: %w", filepath.Base(path), err)
	}

	if len(tmpl.Pixels) == 0 {
		return parseGrid(tmpl.Grid), nil
	}

	pixels, dropped := DecodePixels(tmpl.Pixels)
	if dropped > 0 {
		logging.Logger.Warn("Dropped invalid template pixels", "path", path, "dropped", dropped)
	}
	return pixels, nil
}
