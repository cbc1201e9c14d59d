package services

import (
	"context"
	"time"

	"gitartist/internal/domain"
)

// DataFile is the file rewritten by every generated commit
const DataFile = "data.json"

// ProgressFunc receives the number of commits written so far and the total
type ProgressFunc func(done, total int)

// Checkpointer records the rollback point taken before history changes
type Checkpointer interface {
	Checkpoint(ctx context.Context, repoPath string) (domain.Checkpoint, error)
}

// PaintParams contains parameters for painting pixels into a repository
type PaintParams struct {
	Anchor   time.Time
	Author   domain.Author
	DryRun   bool
	Pixels   []domain.Pixel
	Progress ProgressFunc
	RepoPath string
}

// PaintResult contains the result of a paint run
type PaintResult struct {
	Branch     string
	Checkpoint *domain.Checkpoint
	Commits    int
	Days       int
	DryRun     bool
	FirstDate  time.Time
	LastDate   time.Time
	PushErr    error
	Pushed     bool
}

// UndoResult contains the result of an undo
type UndoResult struct {
	Branch     string
	Checkpoint domain.Checkpoint
	PushErr    error
}

// WipeResult contains the result of a history reset
type WipeResult struct {
	Branch     string
	Checkpoint domain.Checkpoint
	PushErr    error
}

// CreateRepoParams contains parameters for creating a drawing repository
type CreateRepoParams struct {
	Description string
	Name        string
	ParentDir   string
	Private     bool
}
