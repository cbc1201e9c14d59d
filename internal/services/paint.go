package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gitartist/internal/domain"
	"gitartist/internal/logging"
	"gitartist/internal/ports"
)

// PaintService writes back-dated commits that draw pixels on the calendar
type PaintService struct {
	checkpointer Checkpointer
	gitRepo      ports.GitRepository
	remote       string
	translator   *DensityTranslator
}

// NewPaintService creates a new PaintService. checkpointer may be nil.
func NewPaintService(
	gitRepo ports.GitRepository,
	translator *DensityTranslator,
	checkpointer Checkpointer,
	remote string,
) *PaintService {
	return &PaintService{
		checkpointer: checkpointer,
		gitRepo:      gitRepo,
		remote:       remote,
		translator:   translator,
	}
}

// Paint commits every pixel in order, then force-pushes the current branch.
// A failed commit stops the run and leaves the commits made so far in place.
// A failed push is reported in PaintResult.PushErr, not as an error.
func (s *PaintService) Paint(ctx context.Context, params PaintParams) (*PaintResult, error) {
	if len(params.Pixels) == 0 {
		logging.Logger.Info("Nothing to paint", "repo", params.RepoPath)
		return &PaintResult{DryRun: params.DryRun}, nil
	}

	if err := params.Author.Validate(); err != nil {
		return nil, err
	}
	for _, p := range params.Pixels {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	plan := domain.BuildPlan(params.Pixels, params.Anchor)
	ops := s.translator.ExpandPlan(plan)
	result := &PaintResult{
		Commits: len(ops),
		Days:    len(plan),
		DryRun:  params.DryRun,
	}
	result.FirstDate, result.LastDate = dateBounds(plan)

	logging.Logger.Info("Painting",
		"repo", params.RepoPath,
		"pixels", len(params.Pixels),
		"commits", len(ops),
		"anchor", params.Anchor.Format("2006-01-02"),
		"dry_run", params.DryRun)

	if params.DryRun {
		return result, nil
	}

	if s.checkpointer != nil {
		cp, err := s.checkpointer.Checkpoint(ctx, params.RepoPath)
		if err != nil {
			return nil, fmt.Errorf("failed to save undo checkpoint: %w", err)
		}
		result.Checkpoint = &cp
	}

	dataPath := filepath.Join(params.RepoPath, DataFile)
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("painting cancelled after %d of %d commits: %w", i, len(ops), err)
		}
		if err := s.commitOp(ctx, params, dataPath, op); err != nil {
			logging.Logger.Error("Commit failed", "index", i+1, "total", len(ops), "date", op.DateString(), "error", err)
			return nil, fmt.Errorf("commit %d of %d (%s) failed: %w", i+1, len(ops), op.DateString(), err)
		}
		if params.Progress != nil {
			params.Progress(i+1, len(ops))
		}
	}

	branch, err := s.gitRepo.CurrentBranch(ctx, params.RepoPath)
	if err != nil {
		result.PushErr = fmt.Errorf("%w: cannot resolve current branch: %v", domain.ErrPushFailed, err)
		return result, nil
	}
	result.Branch = branch

	if err := s.gitRepo.Push(ctx, params.RepoPath, s.remote, branch, true); err != nil {
		logging.Logger.Error("Push failed", "repo", params.RepoPath, "branch", branch, "error", err)
		result.PushErr = fmt.Errorf("%w: %v", domain.ErrPushFailed, err)
		return result, nil
	}
	result.Pushed = true

	logging.Logger.Info("Painting pushed", "repo", params.RepoPath, "branch", branch, "commits", len(ops))
	return result, nil
}

func (s *PaintService) commitOp(ctx context.Context, params PaintParams, dataPath string, op domain.CommitOp) error {
	payload, err := op.Payload()
	if err != nil {
		return err
	}
	if err := os.WriteFile(dataPath, payload, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", DataFile, err)
	}
	if err := s.gitRepo.Add(ctx, params.RepoPath, DataFile); err != nil {
		return err
	}
	return s.gitRepo.Commit(ctx, params.RepoPath, ports.CommitOptions{
		Author:  params.Author,
		Date:    op.Date,
		Message: fmt.Sprintf("feat: auto-commit for %s", op.DateString()),
	})
}

func dateBounds(plan []domain.PlanEntry) (first, last time.Time) {
	for i, e := range plan {
		if i == 0 || e.Date.Before(first) {
			first = e.Date
		}
		if i == 0 || e.Date.After(last) {
			last = e.Date
		}
	}
	return first, last
}
