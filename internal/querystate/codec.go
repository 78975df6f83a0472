package querystate

import "doctor-directory/internal/domain/entity"

const (
	ParamSearch       = "search"
	ParamConsultation = "consultation"
	ParamSpecialty    = "specialty"
	ParamSort         = "sort"
)

// Parse decodes a raw query string into a DoctorFilter. Missing parameters
// take their zero value and unknown parameters are ignored.
func Parse(rawQuery string) entity.DoctorFilter {
	return FromParams(ParseParams(rawQuery))
}

func FromParams(p *Params) entity.DoctorFilter {
	search, _ := p.Get(ParamSearch)
	consultation, _ := p.Get(ParamConsultation)
	sort, _ := p.Get(ParamSort)

	specialties := []string{}
	for _, s := range p.GetAll(ParamSpecialty) {
		if !contains(specialties, s) {
			specialties = append(specialties, s)
		}
	}

	return entity.DoctorFilter{
		SearchTerm:       search,
		ConsultationType: consultation,
		Specialties:      specialties,
		SortOption:       sort,
	}
}

// Encode renders filter as a canonical query string. Empty fields are
// omitted and specialties keep their order.
func Encode(filter entity.DoctorFilter) string {
	p := &Params{}
	SetSearch(p, filter.SearchTerm)
	SetConsultation(p, filter.ConsultationType)
	for _, s := range filter.Specialties {
		SetSpecialty(p, s, true)
	}
	SetSort(p, filter.SortOption)
	return p.Encode()
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
