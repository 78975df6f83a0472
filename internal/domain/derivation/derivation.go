// Package derivation turns the raw directory and the current filter into
// the list that is displayed. Everything here is pure: inputs are never
// mutated and equal inputs always give equal outputs.
package derivation

import (
	"encoding/json"
	"regexp"
	"slices"
	"strings"

	"doctor-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Fold lower-cases s for case-insensitive comparison.
func Fold(s string) string {
	// A Caser keeps state between calls, so it is not shared.
	return cases.Lower(language.Und).String(s)
}

// NumericKey extracts the sort key of a fee or experience value. Numbers
// are used as they are; strings yield their first run of decimal digits;
// anything else is zero.
func NumericKey(v any) decimal.Decimal {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case string:
		run := digitRun.FindString(n)
		if run == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(run)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// Derive applies search, consultation and specialty filters, in that order,
// then the requested sort. Without a known sort option the filtered order
// is kept.
func Derive(doctors []entity.Doctor, filter entity.DoctorFilter) []entity.Doctor {
	result := slices.Clone(doctors)
	if result == nil {
		result = []entity.Doctor{}
	}

	if filter.SearchTerm != "" {
		term := Fold(filter.SearchTerm)
		result = slices.DeleteFunc(result, func(d entity.Doctor) bool {
			return !strings.Contains(d.NameKey, term)
		})
	}

	if filter.ConsultationType != "" {
		result = slices.DeleteFunc(result, func(d entity.Doctor) bool {
			return !MatchesConsultation(d, filter.ConsultationType)
		})
	}

	if len(filter.Specialties) > 0 {
		selected := make([]string, 0, len(filter.Specialties))
		for _, s := range filter.Specialties {
			selected = append(selected, Fold(s))
		}
		result = slices.DeleteFunc(result, func(d entity.Doctor) bool {
			return !slices.ContainsFunc(selected, d.HasSpecialty)
		})
	}

	switch filter.SortOption {
	case entity.SortByFees:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return a.Fees.Cmp(b.Fees)
		})
	case entity.SortByExperience:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return b.Experience.Cmp(a.Experience)
		})
	}

	return result
}

// MatchesConsultation reports whether d offers the requested mode, either
// through its consultation text or through the matching boolean flag.
func MatchesConsultation(d entity.Doctor, requested string) bool {
	if d.ConsultationKey != "" && d.ConsultationKey == Fold(requested) {
		return true
	}
	if requested == entity.ConsultationVideo && d.VideoConsult {
		return true
	}
	if requested == entity.ConsultationInClinic && d.InClinic {
		return true
	}
	return false
}

// Suggest returns up to limit doctors whose name contains term, in
// directory order. A blank term suggests nothing.
func Suggest(doctors []entity.Doctor, term string, limit int) []entity.Doctor {
	suggestions := []entity.Doctor{}
	if strings.TrimSpace(term) == "" || limit <= 0 {
		return suggestions
	}

	key := Fold(term)
	for _, d := range doctors {
		if strings.Contains(d.NameKey, key) {
			suggestions = append(suggestions, d)
			if len(suggestions) == limit {
				break
			}
		}
	}
	return suggestions
}
