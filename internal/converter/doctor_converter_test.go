package converter_test

import (
	"encoding/json"
	"testing"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecordToDoctor_SpecialtySequence(t *testing.T) {
	doctor := converter.RecordToDoctor(map[string]any{
		"name":        "Dr Kapoor",
		"specialties": []any{"Dentist", nil, "", 12, "ENT"},
		"speciality":  "Ignored",
	})

	assert.Equal(t, []string{"Dentist", "ENT"}, doctor.Specialties)
	assert.Equal(t, []string{"dentist", "ent"}, doctor.SpecialtyKeys)
}

func TestRecordToDoctor_SpecialtyScalar(t *testing.T) {
	doctor := converter.RecordToDoctor(map[string]any{"speciality": "Cardiologist"})
	assert.Equal(t, []string{"Cardiologist"}, doctor.Specialties)

	none := converter.RecordToDoctor(map[string]any{"speciality": ""})
	assert.NotNil(t, none.Specialties)
	assert.Empty(t, none.Specialties)
}

func TestRecordToDoctor_NumericFields(t *testing.T) {
	doctor := converter.RecordToDoctor(map[string]any{
		"fees":       json.Number("450"),
		"experience": "13 Years of experience",
	})

	assert.True(t, decimal.NewFromInt(450).Equal(doctor.Fees))
	assert.True(t, decimal.NewFromInt(13).Equal(doctor.Experience))
	assert.Equal(t, "450", doctor.FeesText)
	assert.Equal(t, "13 Years of experience", doctor.ExperienceText)
}

func TestRecordToDoctor_ConsultationFlags(t *testing.T) {
	doctor := converter.RecordToDoctor(map[string]any{
		"consultation":  "Video Consult",
		"video_consult": true,
		"in_clinic":     "yes",
	})

	assert.True(t, doctor.VideoConsult)
	assert.False(t, doctor.InClinic)
	assert.Equal(t, "video consult", doctor.ConsultationKey)
}

func TestRecordToDoctor_NonStringName(t *testing.T) {
	doctor := converter.RecordToDoctor(map[string]any{"name": json.Number("7"), "id": json.Number("42")})

	assert.Empty(t, doctor.Name)
	assert.Equal(t, "42", doctor.ID)
}

func TestDoctorToResponse_Fallbacks(t *testing.T) {
	resp := converter.DoctorToResponse(entity.Doctor{}, 4)

	assert.Equal(t, dto.DoctorResponse{
		Key:        "4",
		Name:       "Unnamed Doctor",
		Specialty:  "N/A",
		Experience: "N/A",
		Fees:       "Not available",
	}, resp)
}

func TestDoctorToResponse_Full(t *testing.T) {
	doctor := converter.RecordToDoctor(map[string]any{
		"id":           "d1",
		"name":         "Dr Sen",
		"specialties":  []any{"Dentist", "ENT"},
		"experience":   "9 years",
		"fees":         "₹ 600",
		"consultation": "In Clinic",
	})

	assert.Equal(t, dto.DoctorResponse{
		Key:        "d1",
		ID:         "d1",
		Name:       "Dr Sen",
		Specialty:  "Dentist, ENT",
		Experience: "9 years",
		Fees:       "₹ 600",
		Mode:       "In Clinic",
	}, converter.DoctorToResponse(doctor, 0))
}
