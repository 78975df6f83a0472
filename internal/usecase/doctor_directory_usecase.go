package usecase

import (
	"context"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/derivation"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
	"doctor-directory/internal/querystate"

	"github.com/sirupsen/logrus"
)

// SuggestionLimit caps the autocomplete list.
const SuggestionLimit = 3

type DoctorDirectoryUsecase interface {
	ListDoctors(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorListResponse, error)
	SuggestDoctors(ctx context.Context, term string) (*dto.SuggestionListResponse, error)
	ListSpecialties(ctx context.Context, filter entity.DoctorFilter) (*dto.SpecialtyListResponse, error)

	UpdateSearch(ctx context.Context, location *querystate.Location, req *dto.UpdateSearchRequest) (*dto.FilterStateResponse, error)
	UpdateConsultation(ctx context.Context, location *querystate.Location, req *dto.UpdateConsultationRequest) (*dto.FilterStateResponse, error)
	UpdateSpecialty(ctx context.Context, location *querystate.Location, req *dto.UpdateSpecialtyRequest) (*dto.FilterStateResponse, error)
	UpdateSort(ctx context.Context, location *querystate.Location, req *dto.UpdateSortRequest) (*dto.FilterStateResponse, error)
}

type doctorDirectoryUsecase struct {
	log           *logrus.Logger
	directoryRepo repository.DirectoryRepository
}

func NewDoctorDirectoryUsecase(log *logrus.Logger, directoryRepo repository.DirectoryRepository) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:           log,
		directoryRepo: directoryRepo,
	}
}

func (u *doctorDirectoryUsecase) ListDoctors(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot := u.directoryRepo.Snapshot()
	derived := derivation.Derive(snapshot.Doctors, filter)

	u.log.WithFields(logrus.Fields{
		"status":  snapshot.Status,
		"records": len(snapshot.Doctors),
		"matches": len(derived),
	}).Debug("Derived doctor list")

	return converter.SnapshotToListResponse(snapshot, filter, derived), nil
}

func (u *doctorDirectoryUsecase) SuggestDoctors(ctx context.Context, term string) (*dto.SuggestionListResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	suggestions := derivation.Suggest(u.directoryRepo.Snapshot().Doctors, term, SuggestionLimit)

	return &dto.SuggestionListResponse{
		Suggestions: converter.DoctorsToSuggestions(suggestions),
	}, nil
}

func (u *doctorDirectoryUsecase) ListSpecialties(ctx context.Context, filter entity.DoctorFilter) (*dto.SpecialtyListResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return converter.SpecialtiesToResponse(entity.AvailableSpecialties, filter), nil
}

func (u *doctorDirectoryUsecase) UpdateSearch(ctx context.Context, location *querystate.Location, req *dto.UpdateSearchRequest) (*dto.FilterStateResponse, error) {
	location.SetSearch(req.Value)
	return u.filterState(ctx, location)
}

func (u *doctorDirectoryUsecase) UpdateConsultation(ctx context.Context, location *querystate.Location, req *dto.UpdateConsultationRequest) (*dto.FilterStateResponse, error) {
	location.SetConsultation(req.Value)
	return u.filterState(ctx, location)
}

func (u *doctorDirectoryUsecase) UpdateSpecialty(ctx context.Context, location *querystate.Location, req *dto.UpdateSpecialtyRequest) (*dto.FilterStateResponse, error) {
	location.SetSpecialty(req.Specialty, req.Checked)
	return u.filterState(ctx, location)
}

func (u *doctorDirectoryUsecase) UpdateSort(ctx context.Context, location *querystate.Location, req *dto.UpdateSortRequest) (*dto.FilterStateResponse, error) {
	location.SetSort(req.Value)
	return u.filterState(ctx, location)
}

func (u *doctorDirectoryUsecase) filterState(ctx context.Context, location *querystate.Location) (*dto.FilterStateResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &dto.FilterStateResponse{
		Query:    location.Query(),
		Location: location.String(),
		Filter:   converter.FilterToResponse(location.Filter()),
	}, nil
}
