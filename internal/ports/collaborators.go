package ports

import (
	"context"

	"gitartist/internal/domain"
)

// CreateRepoParams describes a repository to create on the hosting service
type CreateRepoParams struct {
	Description string
	Name        string
	Private     bool
}

// RepoHost creates repositories on a remote hosting service.
// Failures wrap domain.ErrHostAuth or domain.ErrRepositoryExists when known.
type RepoHost interface {
	CreateRepository(ctx context.Context, params CreateRepoParams) (*domain.RemoteRepository, error)
}

// PatternArtist turns free text into drawings. Its output is untrusted.
type PatternArtist interface {
	// Classify decides whether a request is text, a known shape or a custom shape
	Classify(ctx context.Context, request string, knownShapes []string) (*domain.ArtIntent, error)
	// Draw returns pixels for a description; an unusable answer yields no pixels
	Draw(ctx context.Context, description string) ([]domain.Pixel, error)
}
