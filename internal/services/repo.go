package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gitartist/internal/domain"
	"gitartist/internal/logging"
	"gitartist/internal/ports"
)

// validRepoName matches names GitHub accepts: alphanumeric, hyphens,
// underscores and dots
var validRepoName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateRepoName checks a repository name before anything is created
func ValidateRepoName(name string) error {
	if name == "" {
		return fmt.Errorf("repository name cannot be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("repository name is too long (max 100 characters)")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("repository name cannot be %q", name)
	}
	if !validRepoName.MatchString(name) {
		return fmt.Errorf("repository name %q may only contain letters, digits, '.', '-' and '_'", name)
	}
	return nil
}

// RepoService manages drawing repositories, local and remote
type RepoService struct {
	gitRepo ports.GitRepository
	host    ports.RepoHost
	now     func() time.Time
	remote  string
	store   ports.RepositoryStore
}

// NewRepoService creates a new RepoService. host may be nil when no hosting
// credentials are configured; Create then fails with ErrMissingCredentials.
func NewRepoService(
	gitRepo ports.GitRepository,
	host ports.RepoHost,
	store ports.RepositoryStore,
	remote string,
) *RepoService {
	return &RepoService{
		gitRepo: gitRepo,
		host:    host,
		now:     time.Now,
		remote:  remote,
		store:   store,
	}
}

// Create makes a repository on the hosting service, initializes a local
// clone target under ParentDir linked to it and remembers it.
func (s *RepoService) Create(ctx context.Context, params CreateRepoParams) (*domain.SavedRepository, error) {
	name := strings.TrimSpace(params.Name)
	if err := ValidateRepoName(name); err != nil {
		return nil, err
	}

	parent, err := filepath.Abs(params.ParentDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", params.ParentDir, err)
	}
	localPath := filepath.Join(parent, name)

	if _, err := os.Stat(localPath); err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryExists, localPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to check %s: %w", localPath, err)
	}

	if s.host == nil {
		return nil, fmt.Errorf("%w: GITHUB_PAT is required to create repositories", domain.ErrMissingCredentials)
	}

	remote, err := s.host.CreateRepository(ctx, ports.CreateRepoParams{
		Description: params.Description,
		Name:        name,
		Private:     params.Private,
	})
	if err != nil {
		return nil, err
	}
	logging.Logger.Info("Remote repository created", "name", remote.FullName, "url", remote.CloneURL)

	if err := os.MkdirAll(localPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", localPath, err)
	}
	if err := s.gitRepo.Init(ctx, localPath); err != nil {
		return nil, fmt.Errorf("failed to initialize %s: %w", localPath, err)
	}
	if err := s.gitRepo.AddRemote(ctx, localPath, s.remote, remote.CloneURL); err != nil {
		return nil, fmt.Errorf("failed to add remote: %w", err)
	}

	saved := domain.SavedRepository{
		CreatedAt: s.now(),
		LocalPath: localPath,
		Name:      name,
		RemoteURL: remote.CloneURL,
	}
	if err := s.store.AddRepository(ctx, saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Register remembers an existing local repository. Registering the same
// path twice keeps the first record.
func (s *RepoService) Register(ctx context.Context, localPath string) (*domain.SavedRepository, error) {
	abs, err := filepath.Abs(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", localPath, err)
	}
	if !s.gitRepo.IsGitRepo(ctx, abs) {
		return nil, fmt.Errorf("%s is not the root of a git repository", abs)
	}

	url, err := s.gitRepo.RemoteURL(ctx, abs, s.remote)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote %s: %w", s.remote, err)
	}

	err = s.store.AddRepository(ctx, domain.SavedRepository{
		CreatedAt: s.now(),
		LocalPath: abs,
		Name:      filepath.Base(abs),
		RemoteURL: url,
	})
	if err != nil {
		return nil, err
	}
	return s.store.GetRepository(ctx, abs)
}

// List returns every remembered repository
func (s *RepoService) List(ctx context.Context) ([]domain.SavedRepository, error) {
	return s.store.ListRepositories(ctx)
}

// Get returns the remembered repository at localPath
func (s *RepoService) Get(ctx context.Context, localPath string) (*domain.SavedRepository, error) {
	abs, err := filepath.Abs(localPath)
	if err != nil {
		return nil, err
	}
	return s.store.GetRepository(ctx, abs)
}

// IsRepository reports whether path is the root of a git work tree
func (s *RepoService) IsRepository(ctx context.Context, path string) bool {
	return s.gitRepo.IsGitRepo(ctx, path)
}
