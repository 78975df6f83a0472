package querystate

import (
	"sync"

	"doctor-directory/internal/domain/entity"
)

// Location is the current URL entry. It can only be replaced, never
// pushed, so stepping back never walks through individual filter toggles.
type Location struct {
	mu     sync.RWMutex
	path   string
	params *Params
}

func NewLocation(path, rawQuery string) *Location {
	return &Location{path: path, params: ParseParams(rawQuery)}
}

func (l *Location) Filter() entity.DoctorFilter {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return FromParams(l.params)
}

func (l *Location) Query() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.params.Encode()
}

func (l *Location) String() string {
	query := l.Query()
	if query == "" {
		return l.path
	}
	return l.path + "?" + query
}

// Replace applies mutate to a copy of the current parameters and swaps
// the copy in as the new entry.
func (l *Location) Replace(mutate func(p *Params)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	next := l.params.Clone()
	mutate(next)
	l.params = next
}

func (l *Location) SetSearch(term string) {
	l.Replace(func(p *Params) { SetSearch(p, term) })
}

func (l *Location) SetConsultation(consultationType string) {
	l.Replace(func(p *Params) { SetConsultation(p, consultationType) })
}

func (l *Location) SetSpecialty(specialty string, checked bool) {
	l.Replace(func(p *Params) { SetSpecialty(p, specialty, checked) })
}

func (l *Location) SetSort(sortOption string) {
	l.Replace(func(p *Params) { SetSort(p, sortOption) })
}
