package entity

import "github.com/shopspring/decimal"

// Doctor is the canonical form of one directory record. Shape ambiguity of
// the remote payload is resolved once at ingestion (see converter).
type Doctor struct {
	ID   string
	Name string

	// Specialties holds the non-empty specialty names in payload order.
	Specialties []string

	// Experience and Fees keep the payload's text for display; the numeric
	// keys are the best-effort extraction used for sorting.
	ExperienceText string
	FeesText       string
	Experience     decimal.Decimal
	Fees           decimal.Decimal

	Consultation string
	VideoConsult bool
	InClinic     bool

	// Folded (lower-cased) forms used by filters.
	NameKey         string
	SpecialtyKeys   []string
	ConsultationKey string
}

// HasSpecialty reports whether key, already folded, is one of the doctor's specialties.
func (d Doctor) HasSpecialty(key string) bool {
	for _, s := range d.SpecialtyKeys {
		if s == key {
			return true
		}
	}
	return false
}

// AvailableSpecialties is the catalogue offered by the specialty filter.
var AvailableSpecialties = []string{
	"General Physician", "Dentist", "Dermatologist", "Paediatrician",
	"Gynaecologist", "ENT", "Diabetologist", "Cardiologist",
	"Physiotherapist", "Endocrinologist", "Orthopaedic", "Ophthalmologist",
	"Gastroenterologist", "Pulmonologist", "Psychiatrist", "Urologist",
	"Dietitian-Nutritionist", "Psychologist", "Sexologist", "Nephrologist",
	"Neurologist", "Oncologist", "Ayurveda", "Homeopath",
}

func IsAvailableSpecialty(name string) bool {
	for _, s := range AvailableSpecialties {
		if s == name {
			return true
		}
	}
	return false
}
