package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gitartist/internal/domain"
	"gitartist/internal/services"
)

// PatternSource selects what to draw. Exactly one field must be set.
type PatternSource struct {
	Prompt   string `help:"Describe the drawing in your own words (needs GOOGLE_API_KEY)" xor:"source"`
	Shape    string `help:"Built-in shape name (see 'gitartist shapes')" xor:"source"`
	Template string `help:"JSON or YAML file with a pixels list" type:"existingfile" xor:"source"`
	Text     string `help:"Text to write with the built-in font" xor:"source"`
}

// Pixels produces the drawing selected by the source flags
func (s *PatternSource) Pixels(ctx context.Context, art *services.ArtService) (*domain.ArtIntent, error) {
	var (
		pixels []domain.Pixel
		err    error
	)
	switch {
	case s.Text != "":
		pixels, err = art.FromText(s.Text)
		return &domain.ArtIntent{Kind: domain.IntentText, Pixels: pixels, Text: s.Text}, err
	case s.Shape != "":
		pixels, err = art.FromShape(s.Shape)
		return &domain.ArtIntent{Kind: domain.IntentKnownShape, Pixels: pixels, ShapeName: s.Shape}, err
	case s.Template != "":
		pixels, err = art.FromTemplate(s.Template)
		return &domain.ArtIntent{Kind: domain.IntentCustomShape, Pixels: pixels, Description: s.Template}, err
	case s.Prompt != "":
		return art.Interpret(ctx, s.Prompt)
	}
	return nil, fmt.Errorf("one of --text, --shape, --template or --prompt is required")
}

// Placement positions a drawing on the calendar
type Placement struct {
	Date       string `help:"Start on the Sunday of the week holding this date (YYYY-MM-DD); default is the calendar's left edge"`
	WeekOffset *int   `help:"Empty weeks before the drawing (default from settings, else 1)"`
}

// Resolve returns the anchor and the pixels shifted by the week offset
func (p *Placement) Resolve(cli *CLI, pixels []domain.Pixel, now time.Time) (time.Time, []domain.Pixel, error) {
	anchor := domain.ResolveAnchor(now, domain.AnchorPolicy(cli.AnchorPolicy))
	if p.Date != "" {
		date, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(p.Date), now.Location())
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("--date must look like YYYY-MM-DD: %w", err)
		}
		anchor = domain.AnchorFromDate(date)
	}

	offset := cli.weekOffset()
	if p.WeekOffset != nil {
		offset = *p.WeekOffset
	}
	if offset < 0 {
		return time.Time{}, nil, fmt.Errorf("week offset cannot be negative (got %d)", offset)
	}

	return anchor, domain.ShiftPixels(pixels, offset), nil
}
