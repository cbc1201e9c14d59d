package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "#40c463" // Green - app name, titles
	ColorSecondary Color = "86"      // Cyan - subtitles
)

// Calendar density shades, lightest first. Index 0 is an empty day.
const (
	ColorDensityNone   Color = "#161b22"
	ColorDensityLight  Color = "#9be9a8"
	ColorDensityMedium Color = "#40c463"
	ColorDensityHigh   Color = "#30a14e"
	ColorDensityMax    Color = "#216e39"
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "2"   // Green
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "214" // Orange
)

// DensityColors maps a density level (0..4) to its calendar shade
var DensityColors = []Color{
	ColorDensityNone,
	ColorDensityLight,
	ColorDensityMedium,
	ColorDensityHigh,
	ColorDensityMax,
}
