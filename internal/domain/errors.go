package domain

import "errors"

var (
	ErrDirectoryExists    = errors.New("directory already exists")
	ErrHostAuth           = errors.New("hosting authentication failed")
	ErrInvalidAuthor      = errors.New("invalid commit author")
	ErrInvalidPixel       = errors.New("invalid pixel")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrNoCheckpoint       = errors.New("no checkpoint stored")
	ErrNoCommits          = errors.New("repository has no commits")
	ErrNothingToUndo      = errors.New("nothing to undo")
	ErrPushFailed         = errors.New("push to remote failed")
	ErrRepositoryExists   = errors.New("repository already exists on remote")
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrUnknownShape       = errors.New("unknown shape")
)
