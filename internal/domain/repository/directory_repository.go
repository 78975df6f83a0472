package repository

import "doctor-directory/internal/domain/entity"

// DirectoryRepository holds the single fetched directory. It starts out
// pending and is written once by the loader.
type DirectoryRepository interface {
	Snapshot() entity.DirectorySnapshot
	Store(snapshot entity.DirectorySnapshot)
}
