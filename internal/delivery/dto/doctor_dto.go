package dto

// Request DTOs

type UpdateSearchRequest struct {
	Value string `json:"value" validate:"max=200"`
}

type UpdateConsultationRequest struct {
	Value string `json:"value" validate:"omitempty,oneof='Video Consult' 'In Clinic'"`
}

type UpdateSpecialtyRequest struct {
	Specialty string `json:"specialty" validate:"required,specialty"`
	Checked   bool   `json:"checked"`
}

type UpdateSortRequest struct {
	Value string `json:"value" validate:"omitempty,oneof=fees experience"`
}

// Response DTOs

// DoctorResponse is the card view of a single doctor.
type DoctorResponse struct {
	Key        string `json:"key"`
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Experience string `json:"experience"`
	Fees       string `json:"fees"`
	Mode       string `json:"mode,omitempty"`
}

type FilterResponse struct {
	Search       string   `json:"search"`
	Consultation string   `json:"consultation"`
	Specialties  []string `json:"specialties"`
	Sort         string   `json:"sort"`
}

type DoctorListResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message,omitempty"`
	Error   string           `json:"error,omitempty"`
	Filter  FilterResponse   `json:"filter"`
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type SuggestionResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

type SpecialtyResponse struct {
	Name     string `json:"name"`
	TestID   string `json:"test_id"`
	Selected bool   `json:"selected"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
}

// FilterStateResponse describes the URL entry after a filter mutation.
type FilterStateResponse struct {
	Query    string         `json:"query"`
	Location string         `json:"location"`
	Filter   FilterResponse `json:"filter"`
}
