package services

import (
	"context"
	"fmt"
	"strings"

	"gitartist/internal/domain"
	"gitartist/internal/logging"
	"gitartist/internal/patterns"
	"gitartist/internal/ports"
)

// ArtService turns text, shapes, templates and free-form requests into pixels
type ArtService struct {
	artist ports.PatternArtist
}

// NewArtService creates a new ArtService. artist may be nil; Interpret and
// Refine then fail with ErrMissingCredentials.
func NewArtService(artist ports.PatternArtist) *ArtService {
	return &ArtService{artist: artist}
}

// ShapeNames lists the built-in shapes
func (s *ArtService) ShapeNames() []string {
	return patterns.ShapeNames()
}

// FromText renders text with the built-in font
func (s *ArtService) FromText(text string) ([]domain.Pixel, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}
	return sanitize(patterns.RenderText(text)), nil
}

// FromShape returns a built-in shape
func (s *ArtService) FromShape(name string) ([]domain.Pixel, error) {
	pixels, err := patterns.Shape(name)
	if err != nil {
		return nil, err
	}
	return sanitize(pixels), nil
}

// FromTemplate loads a drawing from a JSON or YAML file
func (s *ArtService) FromTemplate(path string) ([]domain.Pixel, error) {
	pixels, err := patterns.LoadTemplate(path)
	if err != nil {
		return nil, err
	}
	return sanitize(pixels), nil
}

// Interpret classifies a free-form request and produces its pixels. Text
// and known shapes are rendered locally; custom shapes are drawn by the artist.
func (s *ArtService) Interpret(ctx context.Context, request string) (*domain.ArtIntent, error) {
	if s.artist == nil {
		return nil, fmt.Errorf("%w: GOOGLE_API_KEY is required to interpret requests", domain.ErrMissingCredentials)
	}
	request = strings.TrimSpace(request)
	if request == "" {
		return nil, fmt.Errorf("request cannot be empty")
	}

	intent, err := s.artist.Classify(ctx, request, patterns.ShapeNames())
	if err != nil {
		return nil, fmt.Errorf("failed to classify request: %w", err)
	}
	logging.Logger.Info("Request classified", "kind", intent.Kind, "subject", intent.Subject())

	switch intent.Kind {
	case domain.IntentText:
		intent.Pixels, err = s.FromText(intent.Text)
	case domain.IntentKnownShape:
		intent.Pixels, err = s.FromShape(intent.ShapeName)
	default:
		intent.Kind = domain.IntentCustomShape
		if intent.Description == "" {
			intent.Description = request
		}
		intent.Pixels, err = s.draw(ctx, intent.Description)
	}
	if err != nil {
		return nil, err
	}
	return intent, nil
}

// Refine redraws a custom shape with a refinement appended to its description
func (s *ArtService) Refine(ctx context.Context, description, refinement string) (*domain.ArtIntent, error) {
	if s.artist == nil {
		return nil, fmt.Errorf("%w: GOOGLE_API_KEY is required to refine drawings", domain.ErrMissingCredentials)
	}

	refined := fmt.Sprintf("%s, but %s", description, strings.TrimSpace(refinement))
	pixels, err := s.draw(ctx, refined)
	if err != nil {
		return nil, err
	}
	return &domain.ArtIntent{
		Description: refined,
		Kind:        domain.IntentCustomShape,
		Pixels:      pixels,
		Plan:        fmt.Sprintf("Generating a custom pixel art of %s.", refined),
	}, nil
}

func (s *ArtService) draw(ctx context.Context, description string) ([]domain.Pixel, error) {
	pixels, err := s.artist.Draw(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("failed to draw %q: %w", description, err)
	}
	return sanitize(pixels), nil
}

func sanitize(pixels []domain.Pixel) []domain.Pixel {
	kept, dropped := patterns.Sanitize(pixels)
	if dropped > 0 {
		logging.Logger.Warn("Dropped invalid pixels", "dropped", dropped, "kept", len(kept))
	}
	return kept
}
