package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitartist/internal/domain"
	"gitartist/internal/theme"
)

const (
	cellFilled = "■"
	cellEmpty  = "·"
)

var dayLabels = [domain.DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// densityGrid lays pixels out as seven day rows by week columns. Cells hit
// more than once keep their highest density.
func densityGrid(pixels []domain.Pixel) [][]int {
	width := domain.Width(pixels)
	grid := make([][]int, domain.DaysPerWeek)
	for day := range grid {
		grid[day] = make([]int, width)
	}
	for _, p := range pixels {
		if p.Validate() != nil {
			continue
		}
		if int(p.Density) > grid[p.Day][p.Week] {
			grid[p.Day][p.Week] = int(p.Density)
		}
	}
	return grid
}

// Preview renders pixels the way the contribution calendar shows them
func Preview(pixels []domain.Pixel) string {
	if len(pixels) == 0 {
		return theme.HintTextStyle.Render("(empty drawing)")
	}

	grid := densityGrid(pixels)
	rows := make([]string, 0, len(grid)+2)
	for day, cols := range grid {
		var line strings.Builder
		line.WriteString(theme.DayLabelStyle.Render(dayLabels[day]))
		for _, d := range cols {
			if d == 0 {
				line.WriteString(theme.CellStyle(0).Render(cellEmpty))
			} else {
				line.WriteString(theme.CellStyle(d).Render(cellFilled))
			}
			line.WriteString(" ")
		}
		rows = append(rows, strings.TrimRight(line.String(), " "))
	}
	rows = append(rows, "", legend())

	return theme.PreviewBorderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func legend() string {
	var b strings.Builder
	b.WriteString(theme.HintTextStyle.Render("Less "))
	for d := 0; d < len(theme.DensityColors); d++ {
		cell := cellFilled
		if d == 0 {
			cell = cellEmpty
		}
		b.WriteString(theme.CellStyle(d).Render(cell))
		b.WriteString(" ")
	}
	b.WriteString(theme.HintTextStyle.Render("More"))
	return b.String()
}
