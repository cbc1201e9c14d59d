package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strconv"

	"github.com/alecthomas/kong"

	"gitartist/internal/config"
	"gitartist/internal/domain"
	"gitartist/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"200"`

	AnchorPolicy  string `help:"How the automatic start date is computed (53-weeks or one-year)" env:"GITARTIST_ANCHOR_POLICY"`
	GeminiModel   string `help:"Gemini model used to interpret requests" env:"GITARTIST_GEMINI_MODEL"`
	PrimaryBranch string `help:"Branch left behind by a wipe" env:"GITARTIST_PRIMARY_BRANCH"`
	Remote        string `help:"Remote drawings are pushed to" env:"GITARTIST_REMOTE"`
	ReposDir      string `help:"Directory new repositories are created in" env:"GITARTIST_REPOS_DIR"`

	Run      RunCmd      `cmd:"" help:"Start the interactive menu (default)" default:"1"`
	Draw     DrawCmd     `cmd:"draw" help:"Draw text, a shape, a template or a described picture into a repository"`
	Preview  PreviewCmd  `cmd:"preview" help:"Show a drawing and its dates without committing"`
	Undo     UndoCmd     `cmd:"undo" help:"Reset a repository to the state before its last drawing"`
	Wipe     WipeCmd     `cmd:"wipe" help:"Replace a repository's whole history with a single commit"`
	Status   StatusCmd   `cmd:"status" help:"Show branch, commits, remote and undo point of a repository"`
	Shapes   ShapesCmd   `cmd:"shapes" help:"List the built-in shapes"`
	Repos    ReposCmd    `cmd:"repos" help:"Manage saved repositories (list, add, create)"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults.
	// String flags without a kong default are empty only when neither a flag nor
	// its env var was given.
	c.AnchorPolicy = firstNonEmpty(c.AnchorPolicy, string(c.settings.Anchor()))
	c.GeminiModel = firstNonEmpty(c.GeminiModel, c.settings.Model())
	c.PrimaryBranch = firstNonEmpty(c.PrimaryBranch, c.settings.Branch())
	c.Remote = firstNonEmpty(c.Remote, c.settings.Remote())
	c.ReposDir = firstNonEmpty(config.ExpandPath(c.ReposDir), c.settings.ReposRoot())

	if !slices.Contains(domain.ValidAnchorPolicies(), c.AnchorPolicy) {
		return fmt.Errorf("anchor policy must be one of %v, got %q", domain.ValidAnchorPolicies(), c.AnchorPolicy)
	}
	if err := domain.ValidateRefName("primary branch", c.PrimaryBranch); err != nil {
		return err
	}
	if err := domain.ValidateRefName("remote", c.Remote); err != nil {
		return err
	}

	if c.settings != nil {
		// Apply MaxLogFiles setting
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("GITARTIST_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		// Apply Debug setting
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("GITARTIST_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(logging.Options{
		Debug:    c.Debug,
		File:     c.DebugFile,
		MaxFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}

	// git subprocesses and the gorm logger read these
	if c.Debug || c.DebugFile != "" {
		os.Setenv("GITARTIST_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("GITARTIST_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("GITARTIST_MAX_LOG_FILES", strconv.Itoa(c.MaxLogFiles))
	}

	logging.Logger.Debug("Configuration resolved",
		"anchor_policy", c.AnchorPolicy,
		"gemini_model", c.GeminiModel,
		"primary_branch", c.PrimaryBranch,
		"remote", c.Remote,
		"repos_dir", c.ReposDir)

	// Create container AFTER logging is initialized so the gorm logger has a sink
	container, err := NewContainer(ContainerConfig{
		DBPath:        config.GetDBPath(),
		GeminiAPIKey:  os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:   c.GeminiModel,
		GitHubToken:   os.Getenv("GITHUB_PAT"),
		PrimaryBranch: c.PrimaryBranch,
		Remote:        c.Remote,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// defaultAuthor returns the commit identity from settings
func (c *CLI) defaultAuthor() domain.Author {
	return c.settings.Author()
}

// weekOffset returns the configured default week offset
func (c *CLI) weekOffset() int {
	return c.settings.Offset()
}

// commandContext returns a context cancelled on Ctrl+C
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
