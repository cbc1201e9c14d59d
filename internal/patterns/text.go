package patterns

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gitartist/internal/domain"
)

// TextDensity is the density used for every lit cell of rendered text
const TextDensity = domain.DensityMax

// upper upper-cases s. Casers are stateful, so each call gets its own.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// RenderText draws text with the built-in font, one blank week between
// glyphs. Letters are upper-cased first; characters without a glyph render
// as a space. Pixels are emitted column by column.
func RenderText(text string) []domain.Pixel {
	var pixels []domain.Pixel
	offset := 0

	for _, r := range upper(text) {
		glyph := glyphFor(r)
		width := len(glyph[0])
		for col := 0; col < width; col++ {
			for row := 0; row < domain.DaysPerWeek; row++ {
				if glyph[row][col] == '#' {
					pixels = append(pixels, domain.Pixel{Week: offset + col, Day: row, Density: TextDensity})
				}
			}
		}
		offset += width + 1
	}

	return pixels
}

// TextWidth returns the number of weeks RenderText occupies, without the
// trailing gap
func TextWidth(text string) int {
	width := 0
	for _, r := range upper(text) {
		width += len(glyphFor(r)[0]) + 1
	}
	if width > 0 {
		width--
	}
	return width
}
