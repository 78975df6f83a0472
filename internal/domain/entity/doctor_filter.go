package entity

const (
	ConsultationVideo    = "Video Consult"
	ConsultationInClinic = "In Clinic"
)

const (
	SortByFees       = "fees"
	SortByExperience = "experience"
)

// DoctorFilter is the typed view of what the user currently wants to see.
// Every field is optional; the zero value shows the whole directory in
// payload order.
type DoctorFilter struct {
	SearchTerm       string
	ConsultationType string
	// Specialties is treated as a set; order only mirrors the URL.
	Specialties []string
	SortOption  string
}

func (f DoctorFilter) HasSpecialty(name string) bool {
	for _, s := range f.Specialties {
		if s == name {
			return true
		}
	}
	return false
}
