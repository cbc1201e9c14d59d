package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"gitartist/internal/domain"
	"gitartist/internal/logging"
	"gitartist/internal/ports"
)

// recentCommitLimit is how many commits a status shows
const recentCommitLimit = 5

// StatusService reports on drawing repositories without changing them
type StatusService struct {
	checkpoints ports.CheckpointStore
	gitRepo     ports.GitRepository
	remote      string
}

// NewStatusService creates a new StatusService
func NewStatusService(gitRepo ports.GitRepository, checkpoints ports.CheckpointStore, remote string) *StatusService {
	return &StatusService{
		checkpoints: checkpoints,
		gitRepo:     gitRepo,
		remote:      remote,
	}
}

// Status gathers branch, tip, commit count, remote, recent commits and the
// undo checkpoint of repoPath concurrently
func (s *StatusService) Status(ctx context.Context, repoPath string) (*domain.RepoStatus, error) {
	logging.Logger.Debug("Fetching repository status", "path", repoPath)

	status := &domain.RepoStatus{Path: repoPath}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		branch, err := s.gitRepo.CurrentBranch(ctx, repoPath)
		if err != nil {
			return err
		}
		status.Branch = branch
		return nil
	})

	g.Go(func() error {
		head, err := s.gitRepo.HeadCommit(ctx, repoPath)
		if err != nil && !errors.Is(err, domain.ErrNoCommits) {
			return err
		}
		status.HeadCommit = head
		return nil
	})

	g.Go(func() error {
		count, err := s.gitRepo.CommitCount(ctx, repoPath)
		if err != nil {
			return err
		}
		status.CommitCount = count
		return nil
	})

	g.Go(func() error {
		commits, err := s.gitRepo.Log(ctx, repoPath, recentCommitLimit)
		if err != nil {
			return err
		}
		status.RecentCommits = commits
		return nil
	})

	g.Go(func() error {
		url, err := s.gitRepo.RemoteURL(ctx, repoPath, s.remote)
		if err != nil {
			logging.Logger.Debug("Failed to read remote", "error", err)
			// Non-fatal
			return nil
		}
		status.RemoteURL = url
		return nil
	})

	g.Go(func() error {
		cp, err := s.checkpoints.LoadCheckpoint(ctx, repoPath)
		if errors.Is(err, domain.ErrNoCheckpoint) {
			return nil
		}
		if err != nil {
			return err
		}
		status.Checkpoint = &cp
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return status, nil
}
