package storage

import (
	"gitartist/internal/domain"
)

// repositoryModelToDomain converts a RepositoryModel (GORM) to domain.SavedRepository
func repositoryModelToDomain(m RepositoryModel) domain.SavedRepository {
	return domain.SavedRepository{
		CreatedAt: m.CreatedAt,
		LocalPath: m.LocalPath,
		Name:      m.Name,
		RemoteURL: m.RemoteURL,
	}
}

// domainToRepositoryModel converts a domain.SavedRepository to RepositoryModel (GORM)
func domainToRepositoryModel(r domain.SavedRepository) RepositoryModel {
	return RepositoryModel{
		CreatedAt: r.CreatedAt,
		LocalPath: r.LocalPath,
		Name:      r.Name,
		RemoteURL: r.RemoteURL,
	}
}

func checkpointModelToDomain(m CheckpointModel) domain.Checkpoint {
	return domain.ParseCheckpoint(m.CommitHash)
}
