package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gitartist/internal/domain"
)

// Defaults applied when neither flags, env nor settings.json say otherwise
const (
	DefaultGeminiModel   = "gemini-2.0-flash"
	DefaultPrimaryBranch = "main"
	DefaultRemoteName    = "origin"
	DefaultWeekOffset    = 1
)

// Settings represents the structure of $GITARTIST_HOME/settings.json
type Settings struct {
	AnchorPolicy  string `json:"anchor_policy,omitempty"`
	AuthorEmail   string `json:"author_email,omitempty"`
	AuthorName    string `json:"author_name,omitempty"`
	Debug         *bool  `json:"debug,omitempty"`
	GeminiModel   string `json:"gemini_model,omitempty"`
	MaxLogFiles   *int   `json:"max_log_files,omitempty"`
	PrimaryBranch string `json:"primary_branch,omitempty"`
	RemoteName    string `json:"remote_name,omitempty"`
	ReposDir      string `json:"repos_dir,omitempty"`
	WeekOffset    *int   `json:"week_offset,omitempty"`
}

// Validate checks values that cannot be corrected silently
func (s *Settings) Validate() error {
	if s.AnchorPolicy != "" && !slices.Contains(domain.ValidAnchorPolicies(), s.AnchorPolicy) {
		return fmt.Errorf("anchor_policy must be one of %v, got %q", domain.ValidAnchorPolicies(), s.AnchorPolicy)
	}
	if s.PrimaryBranch != "" {
		if err := domain.ValidateRefName("primary_branch", s.PrimaryBranch); err != nil {
			return err
		}
	}
	if s.RemoteName != "" {
		if err := domain.ValidateRefName("remote_name", s.RemoteName); err != nil {
			return err
		}
	}
	if s.WeekOffset != nil && *s.WeekOffset < 0 {
		return fmt.Errorf("week_offset cannot be negative (got %d)", *s.WeekOffset)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files cannot be negative (got %d)", *s.MaxLogFiles)
	}
	return nil
}

// Anchor returns the configured anchor policy or the default
func (s *Settings) Anchor() domain.AnchorPolicy {
	if s == nil || s.AnchorPolicy == "" {
		return domain.DefaultAnchorPolicy
	}
	return domain.AnchorPolicy(s.AnchorPolicy)
}

// Branch returns the primary branch name used after a wipe
func (s *Settings) Branch() string {
	if s == nil || s.PrimaryBranch == "" {
		return DefaultPrimaryBranch
	}
	return s.PrimaryBranch
}

// Remote returns the remote drawings are pushed to
func (s *Settings) Remote() string {
	if s == nil || s.RemoteName == "" {
		return DefaultRemoteName
	}
	return s.RemoteName
}

// Model returns the Gemini model name
func (s *Settings) Model() string {
	if s == nil || s.GeminiModel == "" {
		return DefaultGeminiModel
	}
	return s.GeminiModel
}

// Offset returns the default week offset
func (s *Settings) Offset() int {
	if s == nil || s.WeekOffset == nil {
		return DefaultWeekOffset
	}
	return *s.WeekOffset
}

// Author returns the default commit author, possibly incomplete
func (s *Settings) Author() domain.Author {
	if s == nil {
		return domain.Author{}
	}
	return domain.Author{Name: s.AuthorName, Email: s.AuthorEmail}
}

// ReposRoot returns the directory new repositories are created in.
// Defaults to the current working directory.
func (s *Settings) ReposRoot() string {
	if s != nil && s.ReposDir != "" {
		return ExpandPath(s.ReposDir)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// LoadSettings loads settings from $GITARTIST_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $GITARTIST_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
