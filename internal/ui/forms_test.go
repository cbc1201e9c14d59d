package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitartist/internal/domain"
)

func TestDrawRequest_AnchorAuto(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC)
	req := DrawRequest{AnchorMode: AnchorAuto}

	anchor, err := req.Anchor(now, domain.AnchorFiftyThreeWeeks)

	require.NoError(t, err)
	assert.Equal(t, domain.ResolveAnchor(now, domain.AnchorFiftyThreeWeeks), anchor)
	assert.Equal(t, time.Sunday, anchor.Weekday())
}

func TestDrawRequest_AnchorDateSnapsToSunday(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC)
	req := DrawRequest{AnchorMode: AnchorDate, AnchorDate: " 2024-01-24 "}

	anchor, err := req.Anchor(now, domain.AnchorFiftyThreeWeeks)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC), anchor)
}

func TestDrawRequest_AnchorDateInvalid(t *testing.T) {
	req := DrawRequest{AnchorMode: AnchorDate, AnchorDate: "24/01/2024"}

	_, err := req.Anchor(time.Now(), domain.AnchorFiftyThreeWeeks)

	assert.Error(t, err)
}

func TestParseWeekOffset(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "", want: 0},
		{input: "1", want: 1},
		{input: " 12 ", want: 12},
		{input: "-1", wantErr: true},
		{input: "two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseWeekOffset(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDrawRequest_AuthorTrimmed(t *testing.T) {
	req := DrawRequest{AuthorName: " Ada ", AuthorEmail: " ada@example.com "}

	assert.Equal(t, domain.Author{Name: "Ada", Email: "ada@example.com"}, req.Author())
	assert.NoError(t, validateEmail("ada@example.com"))
	assert.Error(t, validateEmail("not-an-email"))
}
