package theme

import "github.com/charmbracelet/lipgloss"

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Status line styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)

// Hint styles
var (
	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	HintTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Calendar preview styles
var (
	DayLabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(4)

	PreviewBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMuted).
				Padding(0, 1)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// CellStyle returns the style of a calendar cell of density d (0 = empty)
func CellStyle(d int) lipgloss.Style {
	if d < 0 || d >= len(DensityColors) {
		d = 0
	}
	return lipgloss.NewStyle().Foreground(DensityColors[d])
}
