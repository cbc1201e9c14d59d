package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Author is the identity stamped on generated commits
type Author struct {
	Email string
	Name  string
}

// Validate checks that both name and email are usable by git
func (a Author) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidAuthor)
	}
	if strings.TrimSpace(a.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidAuthor)
	}
	if _, err := mail.ParseAddress(a.Email); err != nil {
		return fmt.Errorf("%w: %q is not an email address", ErrInvalidAuthor, a.Email)
	}
	return nil
}

// String formats the author as git expects it: "Name <email>"
func (a Author) String() string {
	return fmt.Sprintf("%s <%s>", strings.TrimSpace(a.Name), strings.TrimSpace(a.Email))
}

// SavedRepository is a drawing repository remembered between runs
type SavedRepository struct {
	CreatedAt time.Time
	LocalPath string
	Name      string
	RemoteURL string
}

// RemoteRepository is a repository created on the hosting service
type RemoteRepository struct {
	CloneURL string
	FullName string
	HTMLURL  string
	Name     string
	Private  bool
}

// RepoStatus is a read-only summary of a drawing repository
type RepoStatus struct {
	Branch        string
	Checkpoint    *Checkpoint
	CommitCount   int
	HeadCommit    string
	Path          string
	RecentCommits []CommitInfo
	RemoteURL     string
}

// CommitInfo is one line of git log
type CommitInfo struct {
	AuthorDate    time.Time
	AuthorEmail   string
	AuthorName    string
	CommitterDate time.Time
	Hash          string
	Subject       string
}
