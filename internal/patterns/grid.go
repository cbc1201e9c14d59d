package patterns

import "gitartist/internal/domain"

// parseGrid turns day-major rows into pixels. '1'..'4' are densities,
// '#' is full density and anything else is blank. Rows beyond the
// seventh are ignored.
func parseGrid(rows []string) []domain.Pixel {
	var pixels []domain.Pixel
	for day, row := range rows {
		if day >= domain.DaysPerWeek {
			break
		}
		for week, ch := range []rune(row) {
			density := cellDensity(ch)
			if density == 0 {
				continue
			}
			pixels = append(pixels, domain.Pixel{Week: week, Day: day, Density: density})
		}
	}
	return pixels
}

func cellDensity(ch rune) domain.Density {
	switch {
	case ch == '#':
		return domain.DensityMax
	case ch >= '1' && ch <= '4':
		return domain.Density(ch - '0')
	default:
		return 0
	}
}
