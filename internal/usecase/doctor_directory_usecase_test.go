package usecase_test

import (
	"context"
	"testing"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/querystate"
	"doctor-directory/internal/repository"
	"doctor-directory/internal/usecase"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsecase(snapshot *entity.DirectorySnapshot) usecase.DoctorDirectoryUsecase {
	log, _ := test.NewNullLogger()
	repo := repository.NewDirectoryRepository()
	if snapshot != nil {
		repo.Store(*snapshot)
	}
	return usecase.NewDoctorDirectoryUsecase(log, repo)
}

func loaded(records ...map[string]any) *entity.DirectorySnapshot {
	snapshot := entity.LoadedSnapshot(converter.RecordsToDoctors(records))
	return &snapshot
}

func TestListDoctors_Pending(t *testing.T) {
	uc := newUsecase(nil)

	resp, err := uc.ListDoctors(context.Background(), entity.DoctorFilter{})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, converter.MessageLoading, resp.Message)
	assert.Empty(t, resp.Doctors)
}

func TestListDoctors_Failure(t *testing.T) {
	failed := entity.FailedSnapshot("Failed to load doctor data. HTTP error! status: 500 - Internal Server Error")
	uc := newUsecase(&failed)

	resp, err := uc.ListDoctors(context.Background(), entity.DoctorFilter{SearchTerm: "a"})

	require.NoError(t, err)
	assert.Equal(t, "failure", resp.Status)
	assert.Contains(t, resp.Error, "500")
	assert.Equal(t, "Error: "+failed.Error, resp.Message)
	assert.Empty(t, resp.Doctors)
	assert.Equal(t, "a", resp.Filter.Search)
}

func TestListDoctors_MalformedPayloadIsEmptyNotError(t *testing.T) {
	uc := newUsecase(loaded())

	resp, err := uc.ListDoctors(context.Background(), entity.DoctorFilter{})

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, converter.MessageEmpty, resp.Message)
	assert.Equal(t, 0, resp.Total)
}

func TestListDoctors_Derived(t *testing.T) {
	uc := newUsecase(loaded(
		map[string]any{"id": "1", "name": "Dr Rao", "fees": "₹ 800", "specialties": []any{"ENT"}},
		map[string]any{"name": "Dr Raj", "fees": "200"},
	))

	resp, err := uc.ListDoctors(context.Background(), entity.DoctorFilter{SortOption: entity.SortByFees})

	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, dto.DoctorResponse{Key: "0", Name: "Dr Raj", Specialty: "N/A", Experience: "N/A", Fees: "200"}, resp.Doctors[0])
	assert.Equal(t, "1", resp.Doctors[1].Key)
	assert.Equal(t, "ENT", resp.Doctors[1].Specialty)
}

func TestListDoctors_CanceledContext(t *testing.T) {
	uc := newUsecase(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.ListDoctors(ctx, entity.DoctorFilter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSuggestDoctors(t *testing.T) {
	uc := newUsecase(loaded(
		map[string]any{"id": "a", "name": "Dr Amit"},
		map[string]any{"id": "b", "name": "Dr Amita"},
		map[string]any{"id": "c", "name": "Dr Samit"},
		map[string]any{"id": "d", "name": "Dr Amitabh"},
	))

	resp, err := uc.SuggestDoctors(context.Background(), "AMIT")

	require.NoError(t, err)
	assert.Equal(t, []dto.SuggestionResponse{
		{Key: "a", Name: "Dr Amit"},
		{Key: "b", Name: "Dr Amita"},
		{Key: "c", Name: "Dr Samit"},
	}, resp.Suggestions)
}

func TestListSpecialties_MarksSelected(t *testing.T) {
	uc := newUsecase(nil)

	resp, err := uc.ListSpecialties(context.Background(), entity.DoctorFilter{Specialties: []string{"ENT"}})

	require.NoError(t, err)
	require.Len(t, resp.Specialties, len(entity.AvailableSpecialties))
	for _, s := range resp.Specialties {
		assert.Equal(t, s.Name == "ENT", s.Selected, s.Name)
	}
}

func TestUpdateFilters(t *testing.T) {
	uc := newUsecase(nil)
	ctx := context.Background()
	loc := querystate.NewLocation("/api/v1/doctors", "ref=x&specialty=ENT")

	_, err := uc.UpdateSearch(ctx, loc, &dto.UpdateSearchRequest{Value: "rao"})
	require.NoError(t, err)
	_, err = uc.UpdateConsultation(ctx, loc, &dto.UpdateConsultationRequest{Value: entity.ConsultationInClinic})
	require.NoError(t, err)
	_, err = uc.UpdateSpecialty(ctx, loc, &dto.UpdateSpecialtyRequest{Specialty: "ENT", Checked: false})
	require.NoError(t, err)
	resp, err := uc.UpdateSort(ctx, loc, &dto.UpdateSortRequest{Value: entity.SortByFees})
	require.NoError(t, err)

	assert.Equal(t, "ref=x&search=rao&consultation=In+Clinic&sort=fees", resp.Query)
	assert.Equal(t, "/api/v1/doctors?"+resp.Query, resp.Location)
	assert.Equal(t, dto.FilterResponse{
		Search:       "rao",
		Consultation: entity.ConsultationInClinic,
		Specialties:  []string{},
		Sort:         entity.SortByFees,
	}, resp.Filter)
}
