package service

import (
	"context"
	"errors"
	"sync"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// ErrAlreadyLoaded is returned when Load is called after the directory
// fetch has been issued.
var ErrAlreadyLoaded = errors.New("directory already loaded")

// RecordFetcher is the remote directory endpoint.
type RecordFetcher interface {
	FetchRecords(ctx context.Context) ([]map[string]any, error)
}

// DirectoryLoader issues the one directory fetch of the process and
// publishes its outcome to the repository.
type DirectoryLoader interface {
	Load(ctx context.Context) error
}

type directoryLoader struct {
	once          sync.Once
	log           *logrus.Logger
	fetcher       RecordFetcher
	directoryRepo repository.DirectoryRepository
}

func NewDirectoryLoader(log *logrus.Logger, fetcher RecordFetcher, directoryRepo repository.DirectoryRepository) DirectoryLoader {
	return &directoryLoader{
		log:           log,
		fetcher:       fetcher,
		directoryRepo: directoryRepo,
	}
}

// Load fetches and normalizes the directory. A failed fetch is stored as a
// failure snapshot, not returned: the directory stays browsable with an
// empty list. There are no retries.
func (s *directoryLoader) Load(ctx context.Context) error {
	loaded := false
	s.once.Do(func() {
		loaded = true
		s.directoryRepo.Store(entity.PendingSnapshot())

		records, err := s.fetcher.FetchRecords(ctx)
		if err != nil {
			s.log.Errorf("Failed to fetch or process doctors: %+v", err)
			s.directoryRepo.Store(entity.FailedSnapshot("Failed to load doctor data. " + err.Error()))
			return
		}

		doctors := converter.RecordsToDoctors(records)
		s.directoryRepo.Store(entity.LoadedSnapshot(doctors))
		s.log.WithField("count", len(doctors)).Info("Doctor directory loaded")
	})

	if !loaded {
		return ErrAlreadyLoaded
	}
	return nil
}
