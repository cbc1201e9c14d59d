package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gitartist/internal/domain"
	"gitartist/internal/logging"
	"gitartist/internal/ports"
)

// tempBranch is the orphan branch a wipe builds the fresh history on
const tempBranch = "gitartist-reset"

// resetMessage is the subject of the single commit left after a wipe
const resetMessage = "chore: repository reset"

// UndoService keeps the single undo checkpoint and rewrites history
type UndoService struct {
	checkpoints   ports.CheckpointStore
	gitRepo       ports.GitRepository
	now           func() time.Time
	primaryBranch string
	remote        string
}

// NewUndoService creates a new UndoService
func NewUndoService(
	gitRepo ports.GitRepository,
	checkpoints ports.CheckpointStore,
	remote string,
	primaryBranch string,
) *UndoService {
	return &UndoService{
		checkpoints:   checkpoints,
		gitRepo:       gitRepo,
		now:           time.Now,
		primaryBranch: primaryBranch,
		remote:        remote,
	}
}

// Checkpoint records the current tip of repoPath, replacing any previous checkpoint
func (s *UndoService) Checkpoint(ctx context.Context, repoPath string) (domain.Checkpoint, error) {
	cp := domain.NoHistoryYet()

	head, err := s.gitRepo.HeadCommit(ctx, repoPath)
	switch {
	case errors.Is(err, domain.ErrNoCommits):
	case err != nil:
		return domain.Checkpoint{}, fmt.Errorf("failed to read tip commit: %w", err)
	default:
		cp = domain.CheckpointAt(head)
	}

	if err := s.checkpoints.SaveCheckpoint(ctx, repoPath, cp); err != nil {
		return domain.Checkpoint{}, err
	}

	logging.Logger.Info("Undo point saved", "repo", repoPath, "checkpoint", cp.Short())
	return cp, nil
}

// Undo resets repoPath to its checkpoint and force-pushes the result.
// Returns domain.ErrNothingToUndo when there is no checkpoint or the
// repository had no commits when it was taken.
func (s *UndoService) Undo(ctx context.Context, repoPath string) (*UndoResult, error) {
	cp, err := s.checkpoints.LoadCheckpoint(ctx, repoPath)
	if err != nil {
		if errors.Is(err, domain.ErrNoCheckpoint) {
			return nil, fmt.Errorf("%w: no undo point saved for %s", domain.ErrNothingToUndo, repoPath)
		}
		return nil, err
	}
	if cp.IsNoHistory() {
		return nil, fmt.Errorf("%w: the repository had no commits before the last drawing", domain.ErrNothingToUndo)
	}

	logging.Logger.Info("Undoing last drawing", "repo", repoPath, "checkpoint", cp.Short())

	if err := s.gitRepo.ResetHard(ctx, repoPath, cp.Commit()); err != nil {
		return nil, fmt.Errorf("failed to reset to %s: %w", cp.Short(), err)
	}
	if err := s.checkpoints.DeleteCheckpoint(ctx, repoPath); err != nil {
		return nil, err
	}

	result := &UndoResult{Checkpoint: cp}
	result.Branch, result.PushErr = s.pushCurrent(ctx, repoPath)
	return result, nil
}

// Wipe replaces the whole history of repoPath with a single reset commit on
// the primary branch and force-pushes it. A checkpoint is taken first.
func (s *UndoService) Wipe(ctx context.Context, repoPath string, author domain.Author) (*WipeResult, error) {
	cp, err := s.Checkpoint(ctx, repoPath)
	if err != nil {
		return nil, err
	}

	logging.Logger.Warn("Wiping repository history", "repo", repoPath, "checkpoint", cp.Short())

	// A leftover branch from an interrupted wipe is expected to be missing
	if err := s.gitRepo.DeleteBranch(ctx, repoPath, tempBranch); err != nil {
		logging.Logger.Debug("No stale reset branch", "error", err)
	}

	if err := s.gitRepo.CheckoutOrphan(ctx, repoPath, tempBranch); err != nil {
		return nil, fmt.Errorf("failed to start fresh history: %w", err)
	}

	marker, err := json.Marshal(map[string]string{"reset": s.now().UTC().Format(time.RFC3339)})
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(repoPath, DataFile), marker, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", DataFile, err)
	}
	if err := s.gitRepo.Add(ctx, repoPath, DataFile); err != nil {
		return nil, err
	}
	if err := s.gitRepo.Commit(ctx, repoPath, ports.CommitOptions{Author: author, Message: resetMessage}); err != nil {
		return nil, fmt.Errorf("failed to commit reset: %w", err)
	}

	branches, err := s.gitRepo.ListBranches(ctx, repoPath)
	if err != nil {
		return nil, err
	}
	for _, branch := range branches {
		if branch == tempBranch {
			continue
		}
		if err := s.gitRepo.DeleteBranch(ctx, repoPath, branch); err != nil {
			return nil, fmt.Errorf("failed to delete branch %s: %w", branch, err)
		}
	}

	if err := s.gitRepo.RenameBranch(ctx, repoPath, s.primaryBranch); err != nil {
		return nil, fmt.Errorf("failed to rename reset branch to %s: %w", s.primaryBranch, err)
	}

	result := &WipeResult{Branch: s.primaryBranch, Checkpoint: cp}
	if err := s.gitRepo.Push(ctx, repoPath, s.remote, s.primaryBranch, true); err != nil {
		logging.Logger.Error("Push after wipe failed", "repo", repoPath, "error", err)
		result.PushErr = fmt.Errorf("%w: %v", domain.ErrPushFailed, err)
	}
	return result, nil
}

func (s *UndoService) pushCurrent(ctx context.Context, repoPath string) (string, error) {
	branch, err := s.gitRepo.CurrentBranch(ctx, repoPath)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve current branch: %v", domain.ErrPushFailed, err)
	}
	if err := s.gitRepo.Push(ctx, repoPath, s.remote, branch, true); err != nil {
		logging.Logger.Error("Push after undo failed", "repo", repoPath, "error", err)
		return branch, fmt.Errorf("%w: %v", domain.ErrPushFailed, err)
	}
	return branch, nil
}
