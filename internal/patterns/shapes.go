package patterns

import (
	"fmt"
	"sort"
	"strings"

	"gitartist/internal/domain"
)

// shapes are day-major density grids, Sunday first
var shapes = map[string][]string{
	"arrow": {
		"....3...",
		"....43..",
		"2222443.",
		"22224444",
		"2222443.",
		"....43..",
		"....3...",
	},
	"checkerboard": {
		"42424242424242",
		"24242424242424",
		"42424242424242",
		"24242424242424",
		"42424242424242",
		"24242424242424",
		"42424242424242",
	},
	"diamond": {
		"...4...",
		"..434..",
		".43234.",
		"4321234",
		".43234.",
		"..434..",
		"...4...",
	},
	"heart": {
		".34...43.",
		"344434443",
		"344444443",
		".3444443.",
		"..34443..",
		"...343...",
		"....3....",
	},
	"house": {
		"....4....",
		"...444...",
		"..44444..",
		".4444444.",
		".3333333.",
		".3311133.",
		".3311133.",
	},
	"invader": {
		"..4.....4..",
		"...4...4...",
		"..4444444..",
		".44.444.44.",
		"44444444444",
		"4.4444444.4",
		"4.4.....4.4",
	},
	"smiley": {
		"..44444..",
		".4.....4.",
		"4..4.4..4",
		"4.......4",
		"4.3...3.4",
		".4.333.4.",
		"..44444..",
	},
	"star": {
		"....4....",
		"...444...",
		"334444433",
		".3444443.",
		"..34443..",
		".344.443.",
		"33.....33",
	},
	"tree": {
		"...4...",
		"..444..",
		".44444.",
		"..444..",
		".44444.",
		"4444444",
		"...2...",
	},
	"wave": {
		"..33......33....",
		".4..4....4..4...",
		"4....4..4....4..",
		"......44......44",
		"................",
		"2222222222222222",
		"1111111111111111",
	},
}

// ShapeNames returns the names of the built-in shapes, sorted
func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Shape returns the pixels of a built-in shape, row by row
func Shape(name string) ([]domain.Pixel, error) {
	grid, ok := shapes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", domain.ErrUnknownShape, name, strings.Join(ShapeNames(), ", "))
	}
	return parseGrid(grid), nil
}
