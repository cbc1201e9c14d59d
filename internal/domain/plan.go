package domain

import (
	"encoding/json"
	"time"
)

// commitHour keeps pinned timestamps away from midnight so a viewer in a
// neighbouring timezone still sees the commit on the intended day
const commitHour = 12

// PlanEntry is a pixel resolved to a concrete calendar date
type PlanEntry struct {
	Date    time.Time
	Density Density
}

// DateFor returns the calendar date of a pixel relative to anchor
func DateFor(anchor time.Time, p Pixel) time.Time {
	d := anchor.AddDate(0, 0, p.Week*DaysPerWeek+p.Day)
	y, m, day := d.Date()
	return time.Date(y, m, day, commitHour, 0, 0, 0, anchor.Location())
}

// BuildPlan maps every pixel to a dated entry, keeping the pixel order.
// Entries are intentionally not sorted by date.
func BuildPlan(pixels []Pixel, anchor time.Time) []PlanEntry {
	plan := make([]PlanEntry, len(pixels))
	for i, p := range pixels {
		plan[i] = PlanEntry{
			Date:    DateFor(anchor, p),
			Density: p.Density,
		}
	}
	return plan
}

// CommitRange is an inclusive commit count range
type CommitRange struct {
	Max int
	Min int
}

var densityRanges = map[Density]CommitRange{
	DensityLight:  {Min: 1, Max: 2},
	DensityMedium: {Min: 3, Max: 5},
	DensityHigh:   {Min: 6, Max: 9},
	DensityMax:    {Min: 10, Max: 15},
}

// RangeFor returns the commit count range of a density level.
// Unknown levels get the range of DensityLight.
func RangeFor(d Density) CommitRange {
	if r, ok := densityRanges[d]; ok {
		return r
	}
	return densityRanges[DensityLight]
}

// CommitOp is a single commit to be written on Date
type CommitOp struct {
	Date     time.Time
	Nonce    string
	Sequence int
}

// DateString formats the op date as YYYY-MM-DD
func (op CommitOp) DateString() string {
	return op.Date.Format(time.DateOnly)
}

// Payload is the data file content for this op. It only needs to differ
// from the previous commit's content.
func (op CommitOp) Payload() ([]byte, error) {
	return json.Marshal(struct {
		Date     string `json:"date"`
		Sequence int    `json:"c"`
		Nonce    string `json:"r"`
	}{
		Date:     op.DateString(),
		Sequence: op.Sequence,
		Nonce:    op.Nonce,
	})
}
