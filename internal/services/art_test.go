package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitartist/internal/domain"
	"gitartist/internal/patterns"
	portsmocks "gitartist/internal/ports/mocks"
)

func TestArtService_FromText(t *testing.T) {
	service := NewArtService(nil)

	pixels, err := service.FromText("hi")

	require.NoError(t, err)
	assert.Equal(t, patterns.RenderText("HI"), pixels)

	_, err = service.FromText("   ")
	assert.Error(t, err)
}

func TestArtService_FromShape(t *testing.T) {
	service := NewArtService(nil)

	pixels, err := service.FromShape("heart")
	require.NoError(t, err)
	assert.NotEmpty(t, pixels)

	_, err = service.FromShape("unicorn")
	assert.ErrorIs(t, err, domain.ErrUnknownShape)
}

func TestArtService_InterpretWithoutArtist(t *testing.T) {
	service := NewArtService(nil)

	_, err := service.Interpret(context.Background(), "a heart")

	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestArtService_InterpretTextRendersLocally(t *testing.T) {
	artist := portsmocks.NewMockPatternArtist(t)
	artist.EXPECT().Classify(mock.Anything, "write hello", patterns.ShapeNames()).
		Return(&domain.ArtIntent{Kind: domain.IntentText, Text: "HELLO", Plan: "Writing HELLO"}, nil)

	service := NewArtService(artist)

	intent, err := service.Interpret(context.Background(), "write hello")

	require.NoError(t, err)
	assert.Equal(t, domain.IntentText, intent.Kind)
	assert.Equal(t, patterns.RenderText("HELLO"), intent.Pixels)
}

func TestArtService_InterpretKnownShapeRendersLocally(t *testing.T) {
	artist := portsmocks.NewMockPatternArtist(t)
	artist.EXPECT().Classify(mock.Anything, "a star", mock.Anything).
		Return(&domain.ArtIntent{Kind: domain.IntentKnownShape, ShapeName: "star"}, nil)

	service := NewArtService(artist)

	intent, err := service.Interpret(context.Background(), "a star")

	require.NoError(t, err)
	want, err := patterns.Shape("star")
	require.NoError(t, err)
	assert.Equal(t, want, intent.Pixels)
}

func TestArtService_InterpretCustomShapeDropsInvalidPixels(t *testing.T) {
	artist := portsmocks.NewMockPatternArtist(t)
	artist.EXPECT().Classify(mock.Anything, "a cat", mock.Anything).
		Return(&domain.ArtIntent{Kind: domain.IntentCustomShape, Description: "a cat"}, nil)
	artist.EXPECT().Draw(mock.Anything, "a cat").Return([]domain.Pixel{
		{Week: 0, Day: 0, Density: 4},
		{Week: 0, Day: 7, Density: 4},
		{Week: 1, Day: 1, Density: 9},
		{Week: 2, Day: 6, Density: 1},
	}, nil)

	service := NewArtService(artist)

	intent, err := service.Interpret(context.Background(), "a cat")

	require.NoError(t, err)
	assert.Equal(t, []domain.Pixel{
		{Week: 0, Day: 0, Density: 4},
		{Week: 2, Day: 6, Density: 1},
	}, intent.Pixels)
}

func TestArtService_InterpretClassifyFailure(t *testing.T) {
	artist := portsmocks.NewMockPatternArtist(t)
	artist.EXPECT().Classify(mock.Anything, "a cat", mock.Anything).Return(nil, errors.New("quota exceeded"))

	service := NewArtService(artist)

	_, err := service.Interpret(context.Background(), "a cat")

	assert.ErrorContains(t, err, "quota exceeded")
}

func TestArtService_Refine(t *testing.T) {
	artist := portsmocks.NewMockPatternArtist(t)
	artist.EXPECT().Draw(mock.Anything, "a cat, but bigger ears").
		Return([]domain.Pixel{{Week: 0, Day: 0, Density: 2}}, nil)

	service := NewArtService(artist)

	intent, err := service.Refine(context.Background(), "a cat", " bigger ears ")

	require.NoError(t, err)
	assert.Equal(t, "a cat, but bigger ears", intent.Description)
	assert.Equal(t, domain.IntentCustomShape, intent.Kind)
	assert.Len(t, intent.Pixels, 1)
}
