package ports

import (
	"context"
	"time"

	"gitartist/internal/domain"
)

// CommitOptions describes a commit with a pinned timestamp
type CommitOptions struct {
	Author  domain.Author
	Date    time.Time
	Message string
}

// RepoInspector queries repository information
type RepoInspector interface {
	CommitCount(ctx context.Context, repoPath string) (int, error)
	CurrentBranch(ctx context.Context, repoPath string) (string, error)
	HeadCommit(ctx context.Context, repoPath string) (string, error)
	IsGitRepo(ctx context.Context, path string) bool
	ListBranches(ctx context.Context, repoPath string) ([]string, error)
	Log(ctx context.Context, repoPath string, limit int) ([]domain.CommitInfo, error)
	RemoteURL(ctx context.Context, repoPath, remote string) (string, error)
}

// RepoInitializer creates local repositories
type RepoInitializer interface {
	AddRemote(ctx context.Context, repoPath, name, url string) error
	Init(ctx context.Context, repoPath string) error
}

// Committer stages files and records commits
type Committer interface {
	Add(ctx context.Context, repoPath, file string) error
	Commit(ctx context.Context, repoPath string, opts CommitOptions) error
}

// HistoryRewriter moves branch tips and rewrites branches
type HistoryRewriter interface {
	CheckoutOrphan(ctx context.Context, repoPath, branch string) error
	DeleteBranch(ctx context.Context, repoPath, branch string) error
	RenameBranch(ctx context.Context, repoPath, newName string) error
	ResetHard(ctx context.Context, repoPath, ref string) error
}

// RemoteSync publishes local history
type RemoteSync interface {
	Push(ctx context.Context, repoPath, remote, branch string, force bool) error
}

// GitRepository is the composite interface
type GitRepository interface {
	Committer
	HistoryRewriter
	RemoteSync
	RepoInitializer
	RepoInspector
}
