package ports

import (
	"context"

	"gitartist/internal/domain"
)

// CheckpointStore persists the single undo checkpoint of each repository
type CheckpointStore interface {
	// DeleteCheckpoint removes the checkpoint; deleting a missing one is not an error
	DeleteCheckpoint(ctx context.Context, repoPath string) error
	// LoadCheckpoint returns domain.ErrNoCheckpoint when nothing is stored
	LoadCheckpoint(ctx context.Context, repoPath string) (domain.Checkpoint, error)
	// SaveCheckpoint overwrites any previous checkpoint
	SaveCheckpoint(ctx context.Context, repoPath string, cp domain.Checkpoint) error
}

// RepositoryStore remembers repositories created or registered by the tool
type RepositoryStore interface {
	// AddRepository is a no-op when the local path is already known
	AddRepository(ctx context.Context, repo domain.SavedRepository) error
	GetRepository(ctx context.Context, localPath string) (*domain.SavedRepository, error)
	ListRepositories(ctx context.Context) ([]domain.SavedRepository, error)
}

// StateRepository is the composite interface
type StateRepository interface {
	CheckpointStore
	RepositoryStore
	Close() error
}
