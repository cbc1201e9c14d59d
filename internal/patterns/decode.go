package patterns

import (
	"encoding/json"
	"math"

	"gitartist/internal/domain"
)

// DecodePixels converts untrusted [week, day, density] triples into pixels.
// Entries that are not three integers or fail validation are dropped; the
// number of dropped entries is returned alongside the kept pixels.
func DecodePixels(raw []any) ([]domain.Pixel, int) {
	pixels := make([]domain.Pixel, 0, len(raw))
	dropped := 0

	for _, entry := range raw {
		triple, ok := entry.([]any)
		if !ok || len(triple) != 3 {
			dropped++
			continue
		}

		week, okWeek := toInt(triple[0])
		day, okDay := toInt(triple[1])
		density, okDensity := toInt(triple[2])
		if !okWeek || !okDay || !okDensity {
			dropped++
			continue
		}

		p := domain.Pixel{Week: week, Day: day, Density: domain.Density(density)}
		if p.Validate() != nil {
			dropped++
			continue
		}
		pixels = append(pixels, p)
	}

	return pixels, dropped
}

// Sanitize drops invalid pixels, keeping the order of the rest
func Sanitize(pixels []domain.Pixel) ([]domain.Pixel, int) {
	kept := make([]domain.Pixel, 0, len(pixels))
	for _, p := range pixels {
		if p.Validate() == nil {
			kept = append(kept, p)
		}
	}
	return kept, len(pixels) - len(kept)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.Abs(n) > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
