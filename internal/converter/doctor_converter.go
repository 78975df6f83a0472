package converter

import (
	"encoding/json"
	"strconv"
	"strings"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/derivation"
	"doctor-directory/internal/domain/entity"
)

const (
	unnamedDoctor   = "Unnamed Doctor"
	notApplicable   = "N/A"
	feesUnavailable = "Not available"

	MessageLoading = "Loading doctors..."
	MessageEmpty   = "No doctors found matching your criteria."
)

// RecordToDoctor normalizes one decoded payload record. Numbers in record
// are expected as json.Number.
func RecordToDoctor(record map[string]any) entity.Doctor {
	doctor := entity.Doctor{
		ID:             scalarText(record["id"]),
		Name:           stringField(record, "name"),
		Specialties:    recordSpecialties(record),
		ExperienceText: scalarText(record["experience"]),
		FeesText:       scalarText(record["fees"]),
		Experience:     derivation.NumericKey(record["experience"]),
		Fees:           derivation.NumericKey(record["fees"]),
		Consultation:   stringField(record, "consultation"),
		VideoConsult:   record["video_consult"] == true,
		InClinic:       record["in_clinic"] == true,
	}

	doctor.NameKey = derivation.Fold(doctor.Name)
	doctor.ConsultationKey = derivation.Fold(doctor.Consultation)
	doctor.SpecialtyKeys = make([]string, len(doctor.Specialties))
	for i, s := range doctor.Specialties {
		doctor.SpecialtyKeys[i] = derivation.Fold(s)
	}

	return doctor
}

// RecordsToDoctors normalizes a slice of payload records
func RecordsToDoctors(records []map[string]any) []entity.Doctor {
	doctors := make([]entity.Doctor, len(records))
	for i, record := range records {
		doctors[i] = RecordToDoctor(record)
	}
	return doctors
}

// recordSpecialties prefers the "specialties" sequence and falls back to
// the scalar "speciality" only when no sequence is present.
func recordSpecialties(record map[string]any) []string {
	specialties := []string{}

	if list, ok := record["specialties"].([]any); ok {
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				specialties = append(specialties, s)
			}
		}
		return specialties
	}

	if s, ok := record["speciality"].(string); ok && s != "" {
		specialties = append(specialties, s)
	}
	return specialties
}

func stringField(record map[string]any, key string) string {
	s, _ := record[key].(string)
	return s
}

func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func displayOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// DoctorToResponse converts a Doctor entity to its card view. index is the
// doctor's position in the displayed list and keys records without an id.
func DoctorToResponse(doctor entity.Doctor, index int) dto.DoctorResponse {
	key := doctor.ID
	if key == "" {
		key = strconv.Itoa(index)
	}

	specialty := notApplicable
	if len(doctor.Specialties) > 0 {
		specialty = strings.Join(doctor.Specialties, ", ")
	}

	return dto.DoctorResponse{
		Key:        key,
		ID:         doctor.ID,
		Name:       displayOr(doctor.Name, unnamedDoctor),
		Specialty:  specialty,
		Experience: displayOr(doctor.ExperienceText, notApplicable),
		Fees:       displayOr(doctor.FeesText, feesUnavailable),
		Mode:       doctor.Consultation,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to card views
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = DoctorToResponse(doctor, i)
	}
	return responses
}

func DoctorsToSuggestions(doctors []entity.Doctor) []dto.SuggestionResponse {
	suggestions := make([]dto.SuggestionResponse, len(doctors))
	for i, doctor := range doctors {
		response := DoctorToResponse(doctor, i)
		suggestions[i] = dto.SuggestionResponse{Key: response.Key, Name: doctor.Name}
	}
	return suggestions
}
