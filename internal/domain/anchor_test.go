package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfWeek_RoundsDownToSunday(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{"sunday stays", time.Date(2024, 1, 7, 15, 30, 0, 0, time.UTC), time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)},
		{"saturday goes back six days", time.Date(2024, 1, 13, 23, 59, 0, 0, time.UTC), time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)},
		{"wednesday", time.Date(2024, 1, 24, 8, 0, 0, 0, time.UTC), time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)},
		{"across month boundary", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC)},
		{"across year boundary", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StartOfWeek(tt.input))
		})
	}
}

func TestResolveAnchor_AlwaysPastSunday(t *testing.T) {
	start := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	for _, policy := range []AnchorPolicy{AnchorFiftyThreeWeeks, AnchorOneYear, AnchorPolicy("bogus")} {
		for i := 0; i < 800; i++ {
			now := start.AddDate(0, 0, i)
			anchor := ResolveAnchor(now, policy)

			require.Equal(t, time.Sunday, anchor.Weekday(), "policy %s now %s", policy, now)
			require.False(t, anchor.After(now), "policy %s now %s", policy, now)
		}
	}
}

func TestResolveAnchor_FiftyThreeWeeks(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) // Monday

	anchor := ResolveAnchor(now, AnchorFiftyThreeWeeks)

	assert.Equal(t, time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC), anchor)
}

func TestResolveAnchor_OneYear(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	anchor := ResolveAnchor(now, AnchorOneYear)

	// 2025-10-19 is a Sunday
	assert.Equal(t, time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC), anchor)
}

func TestResolveAnchor_UnknownPolicyUsesDefault(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, ResolveAnchor(now, DefaultAnchorPolicy), ResolveAnchor(now, ""))
}

func TestAnchorFromDate(t *testing.T) {
	date := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC) // Saturday

	assert.Equal(t, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), AnchorFromDate(date))
}
