package domain

import "fmt"

// DaysPerWeek is the height of the contribution calendar
const DaysPerWeek = 7

// Density is the intensity of a single calendar cell
type Density int

const (
	DensityLight  Density = 1
	DensityMedium Density = 2
	DensityHigh   Density = 3
	DensityMax    Density = 4
)

// Valid reports whether d is one of the four known levels
func (d Density) Valid() bool {
	return d >= DensityLight && d <= DensityMax
}

// Pixel is one cell of a drawing: a column (week), a row (day, 0 = Sunday)
// and a density level
type Pixel struct {
	Day     int
	Density Density
	Week    int
}

// Validate checks that the pixel fits the calendar grid
func (p Pixel) Validate() error {
	if p.Week < 0 {
		return fmt.Errorf("%w: week %d is negative", ErrInvalidPixel, p.Week)
	}
	if p.Day < 0 || p.Day >= DaysPerWeek {
		return fmt.Errorf("%w: day %d outside 0..6", ErrInvalidPixel, p.Day)
	}
	if !p.Density.Valid() {
		return fmt.Errorf("%w: density %d outside 1..4", ErrInvalidPixel, p.Density)
	}
	return nil
}

// ShiftPixels moves every pixel right by weeks columns. Order is preserved.
func ShiftPixels(pixels []Pixel, weeks int) []Pixel {
	shifted := make([]Pixel, len(pixels))
	for i, p := range pixels {
		p.Week += weeks
		shifted[i] = p
	}
	return shifted
}

// Width returns the number of week columns the drawing spans, counted from week 0
func Width(pixels []Pixel) int {
	width := 0
	for _, p := range pixels {
		if p.Week+1 > width {
			width = p.Week + 1
		}
	}
	return width
}
