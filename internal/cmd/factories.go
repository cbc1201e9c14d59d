package cmd

import (
	adaptereditor "gitartist/internal/adapters/editor"
	adaptergemini "gitartist/internal/adapters/gemini"
	adaptergit "gitartist/internal/adapters/git"
	adaptergithub "gitartist/internal/adapters/github"
	adapterstorage "gitartist/internal/adapters/storage"
	"gitartist/internal/logging"
	"gitartist/internal/ports"
	"gitartist/internal/services"
)

// ContainerConfig holds what the container needs to build its adapters
type ContainerConfig struct {
	DBPath        string
	GeminiAPIKey  string
	GeminiModel   string
	GitHubToken   string
	PrimaryBranch string
	Remote        string
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	ArtService    *services.ArtService
	PaintService  *services.PaintService
	RepoService   *services.RepoService
	StatusService *services.StatusService
	UndoService   *services.UndoService

	// Adapters used directly by commands
	Editor ports.EditorOpener

	// HasArtist reports whether GOOGLE_API_KEY was configured
	HasArtist bool

	// Internal - for cleanup only
	stateRepo ports.StateRepository
}

// NewContainer creates a new Container with all dependencies wired.
// Hosting and AI adapters are only created when their credentials are set.
func NewContainer(cfg ContainerConfig) (*Container, error) {
	// Create adapters
	stateRepo, err := adapterstorage.NewSQLiteRepository(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	gitRepo := adaptergit.NewCLIRepository(cfg.GitHubToken)

	var host ports.RepoHost
	if cfg.GitHubToken != "" {
		client, err := adaptergithub.NewClient(cfg.GitHubToken)
		if err != nil {
			_ = stateRepo.Close()
			return nil, err
		}
		host = client
	} else {
		logging.Logger.Debug("GITHUB_PAT not set, repository creation disabled")
	}

	var artist ports.PatternArtist
	if cfg.GeminiAPIKey != "" {
		client, err := adaptergemini.NewClient(adaptergemini.Config{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		})
		if err != nil {
			_ = stateRepo.Close()
			return nil, err
		}
		artist = client
	} else {
		logging.Logger.Debug("GOOGLE_API_KEY not set, request interpretation disabled")
	}

	// Create services
	undoService := services.NewUndoService(gitRepo, stateRepo, cfg.Remote, cfg.PrimaryBranch)
	paintService := services.NewPaintService(gitRepo, services.NewDensityTranslator(), undoService, cfg.Remote)
	repoService := services.NewRepoService(gitRepo, host, stateRepo, cfg.Remote)
	statusService := services.NewStatusService(gitRepo, stateRepo, cfg.Remote)
	artService := services.NewArtService(artist)

	return &Container{
		ArtService:    artService,
		Editor:        adaptereditor.NewOpener(),
		HasArtist:     artist != nil,
		PaintService:  paintService,
		RepoService:   repoService,
		StatusService: statusService,
		UndoService:   undoService,
		stateRepo:     stateRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.stateRepo != nil {
		return c.stateRepo.Close()
	}
	return nil
}
