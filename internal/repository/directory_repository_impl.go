package repository

import (
	"sync"

	"doctor-directory/internal/domain/entity"
	domainRepo "doctor-directory/internal/domain/repository"
)

type directoryRepository struct {
	mu       sync.RWMutex
	snapshot entity.DirectorySnapshot
}

func NewDirectoryRepository() domainRepo.DirectoryRepository {
	return &directoryRepository{snapshot: entity.PendingSnapshot()}
}

func (r *directoryRepository) Snapshot() entity.DirectorySnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

func (r *directoryRepository) Store(snapshot entity.DirectorySnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = snapshot
}
