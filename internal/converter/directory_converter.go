package converter

import (
	"regexp"
	"strings"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// FilterToResponse converts a DoctorFilter to its DTO
func FilterToResponse(filter entity.DoctorFilter) dto.FilterResponse {
	specialties := make([]string, len(filter.Specialties))
	copy(specialties, filter.Specialties)

	return dto.FilterResponse{
		Search:       filter.SearchTerm,
		Consultation: filter.ConsultationType,
		Specialties:  specialties,
		Sort:         filter.SortOption,
	}
}

// SnapshotToListResponse makes the single rendering decision for the
// directory: loading, error, empty or the derived list.
func SnapshotToListResponse(snapshot entity.DirectorySnapshot, filter entity.DoctorFilter, derived []entity.Doctor) *dto.DoctorListResponse {
	response := &dto.DoctorListResponse{
		Status:  string(snapshot.Status),
		Filter:  FilterToResponse(filter),
		Doctors: []dto.DoctorResponse{},
	}

	switch snapshot.Status {
	case entity.LoadStatusPending:
		response.Message = MessageLoading
	case entity.LoadStatusFailure:
		response.Error = snapshot.Error
		response.Message = "Error: " + snapshot.Error
	default:
		response.Doctors = DoctorsToResponses(derived)
		response.Total = len(response.Doctors)
		if response.Total == 0 {
			response.Message = MessageEmpty
		}
	}

	return response
}

// SpecialtyTestID returns the UI test id of a specialty checkbox.
func SpecialtyTestID(specialty string) string {
	sanitized := nonAlphanumeric.ReplaceAllString(specialty, "-")
	return "filter-specialty-" + strings.Trim(sanitized, "-")
}

func SpecialtiesToResponse(available []string, filter entity.DoctorFilter) *dto.SpecialtyListResponse {
	specialties := make([]dto.SpecialtyResponse, len(available))
	for i, name := range available {
		specialties[i] = dto.SpecialtyResponse{
			Name:     name,
			TestID:   SpecialtyTestID(name),
			Selected: filter.HasSpecialty(name),
		}
	}
	return &dto.SpecialtyListResponse{Specialties: specialties}
}
