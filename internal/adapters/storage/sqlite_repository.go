package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"gitartist/internal/config"
	"gitartist/internal/domain"
	"gitartist/internal/logging"
	"gitartist/internal/ports"
)

const maxRetries = 5

// SQLiteRepository implements ports.StateRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.StateRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the gitartist logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("GITARTIST_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the state database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&RepositoryModel{}, &CheckpointModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logging.Logger.Debug("State database ready", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AddRepository implements RepositoryStore.AddRepository
func (r *SQLiteRepository) AddRepository(ctx context.Context, repo domain.SavedRepository) error {
	model := domainToRepositoryModel(repo)
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now().UTC()
	}

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model).Error
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to save repository %s: %w", repo.LocalPath, err)
	}
	return nil
}

// GetRepository implements RepositoryStore.GetRepository
func (r *SQLiteRepository) GetRepository(ctx context.Context, localPath string) (*domain.SavedRepository, error) {
	var model RepositoryModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("local_path = ?", localPath).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRepositoryNotFound, localPath)
		}
		return nil, fmt.Errorf("failed to load repository %s: %w", localPath, err)
	}

	repo := repositoryModelToDomain(model)
	return &repo, nil
}

// ListRepositories implements RepositoryStore.ListRepositories
func (r *SQLiteRepository) ListRepositories(ctx context.Context) ([]domain.SavedRepository, error) {
	var models []RepositoryModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("created_at ASC, local_path ASC").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	repos := make([]domain.SavedRepository, 0, len(models))
	for _, m := range models {
		repos = append(repos, repositoryModelToDomain(m))
	}
	return repos, nil
}

// SaveCheckpoint implements CheckpointStore.SaveCheckpoint
func (r *SQLiteRepository) SaveCheckpoint(ctx context.Context, repoPath string, cp domain.Checkpoint) error {
	model := CheckpointModel{
		CommitHash: cp.Encode(),
		RepoPath:   repoPath,
	}

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "repo_path"}},
				DoUpdates: clause.AssignmentColumns([]string{"commit_hash", "updated_at"}),
			}).
			Create(&model).Error
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to save checkpoint for %s: %w", repoPath, err)
	}

	logging.Logger.Info("Checkpoint saved", "repo", repoPath, "checkpoint", cp.Encode())
	return nil
}

// LoadCheckpoint implements CheckpointStore.LoadCheckpoint
func (r *SQLiteRepository) LoadCheckpoint(ctx context.Context, repoPath string) (domain.Checkpoint, error) {
	var model CheckpointModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("repo_path = ?", repoPath).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Checkpoint{}, domain.ErrNoCheckpoint
		}
		return domain.Checkpoint{}, fmt.Errorf("failed to load checkpoint for %s: %w", repoPath, err)
	}
	return checkpointModelToDomain(model), nil
}

// DeleteCheckpoint implements CheckpointStore.DeleteCheckpoint
func (r *SQLiteRepository) DeleteCheckpoint(ctx context.Context, repoPath string) error {
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("repo_path = ?", repoPath).Delete(&CheckpointModel{}).Error
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to delete checkpoint for %s: %w", repoPath, err)
	}
	return nil
}

// withRetry retries fn while sqlite reports the database busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
