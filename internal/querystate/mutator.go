package querystate

// setScalar never leaves an empty "key=" behind: an empty value removes
// the parameter.
func setScalar(p *Params, key, value string) {
	if value == "" {
		p.Delete(key)
		return
	}
	p.Set(key, value)
}

func SetSearch(p *Params, term string) {
	setScalar(p, ParamSearch, term)
}

func SetConsultation(p *Params, consultationType string) {
	setScalar(p, ParamConsultation, consultationType)
}

func SetSort(p *Params, sortOption string) {
	setScalar(p, ParamSort, sortOption)
}

// SetSpecialty adds specialty when checked, unless already present, or
// removes exactly that specialty while keeping the others in their
// relative order.
func SetSpecialty(p *Params, specialty string, checked bool) {
	current := p.GetAll(ParamSpecialty)

	if checked {
		if !contains(current, specialty) {
			p.Append(ParamSpecialty, specialty)
		}
		return
	}

	p.Delete(ParamSpecialty)
	for _, s := range current {
		if s != specialty {
			p.Append(ParamSpecialty, s)
		}
	}
}
