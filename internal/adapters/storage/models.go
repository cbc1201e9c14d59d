package storage

import "time"

// RepositoryModel is the GORM model for repositories table
type RepositoryModel struct {
	CreatedAt time.Time
	LocalPath string `gorm:"primaryKey"`
	Name      string `gorm:"not null;default:''"`
	RemoteURL string `gorm:"not null;default:''"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (RepositoryModel) TableName() string { return "repositories" }

// CheckpointModel is the GORM model for checkpoints table.
// CommitHash holds a hash or the "initial" sentinel.
type CheckpointModel struct {
	CommitHash string `gorm:"not null"`
	CreatedAt  time.Time
	RepoPath   string `gorm:"primaryKey"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (CheckpointModel) TableName() string { return "checkpoints" }
