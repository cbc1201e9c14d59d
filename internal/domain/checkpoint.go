package domain

import "strings"

// noHistorySentinel is how NoHistoryYet is persisted
const noHistorySentinel = "initial"

// Checkpoint is the single rollback point of a repository.
// It is either NoHistoryYet or a commit hash.
type Checkpoint struct {
	commit string
}

// NoHistoryYet is the checkpoint of a repository without commits
func NoHistoryYet() Checkpoint {
	return Checkpoint{}
}

// CheckpointAt returns a checkpoint pointing at commit
func CheckpointAt(commit string) Checkpoint {
	return Checkpoint{commit: commit}
}

// IsNoHistory reports whether the repository had no commits at checkpoint time
func (c Checkpoint) IsNoHistory() bool {
	return c.commit == ""
}

// Commit returns the commit hash, empty for NoHistoryYet
func (c Checkpoint) Commit() string {
	return c.commit
}

// Short returns an abbreviated hash for display
func (c Checkpoint) Short() string {
	if c.IsNoHistory() {
		return noHistorySentinel
	}
	if len(c.commit) > 7 {
		return c.commit[:7]
	}
	return c.commit
}

// Encode returns the storage representation
func (c Checkpoint) Encode() string {
	if c.IsNoHistory() {
		return noHistorySentinel
	}
	return c.commit
}

// ParseCheckpoint decodes a stored checkpoint value
func ParseCheckpoint(s string) Checkpoint {
	s = strings.TrimSpace(s)
	if s == "" || s == noHistorySentinel {
		return NoHistoryYet()
	}
	return CheckpointAt(s)
}
