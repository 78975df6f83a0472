package querystate

import (
	"net/url"
	"strings"
)

type param struct {
	key   string
	value string
	// raw is the segment exactly as it appeared in the query string.
	raw string
}

// Params is an ordered query string. Unlike url.Values it keeps the
// position and the original encoding of every parameter, so a mutation
// leaves the bytes of untouched parameters as they were.
type Params struct {
	items []param
}

// ParseParams reads a raw query string, with or without the leading '?'.
// Malformed escapes are kept literally instead of failing the parse.
func ParseParams(rawQuery string) *Params {
	rawQuery = strings.TrimPrefix(rawQuery, "?")
	p := &Params{}
	if rawQuery == "" {
		return p
	}

	for _, segment := range strings.Split(rawQuery, "&") {
		if segment == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(segment, "=")
		p.items = append(p.items, param{
			key:   unescape(rawKey),
			value: unescape(rawValue),
			raw:   segment,
		})
	}
	return p
}

func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

func newParam(key, value string) param {
	return param{
		key:   key,
		value: value,
		raw:   url.QueryEscape(key) + "=" + url.QueryEscape(value),
	}
}

func (p *Params) Clone() *Params {
	items := make([]param, len(p.items))
	copy(items, p.items)
	return &Params{items: items}
}

// Get returns the first value of key.
func (p *Params) Get(key string) (string, bool) {
	for _, item := range p.items {
		if item.key == key {
			return item.value, true
		}
	}
	return "", false
}

func (p *Params) GetAll(key string) []string {
	values := []string{}
	for _, item := range p.items {
		if item.key == key {
			values = append(values, item.value)
		}
	}
	return values
}

func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Set replaces the first occurrence of key in place and drops the others,
// or appends key when absent.
func (p *Params) Set(key, value string) {
	items := p.items[:0:0]
	found := false
	for _, item := range p.items {
		if item.key != key {
			items = append(items, item)
			continue
		}
		if !found {
			items = append(items, newParam(key, value))
			found = true
		}
	}
	if !found {
		items = append(items, newParam(key, value))
	}
	p.items = items
}

func (p *Params) Append(key, value string) {
	p.items = append(p.items, newParam(key, value))
}

func (p *Params) Delete(key string) {
	items := p.items[:0:0]
	for _, item := range p.items {
		if item.key != key {
			items = append(items, item)
		}
	}
	p.items = items
}

func (p *Params) Len() int {
	return len(p.items)
}

// Encode renders the query string without the leading '?'.
func (p *Params) Encode() string {
	segments := make([]string, len(p.items))
	for i, item := range p.items {
		segments[i] = item.raw
	}
	return strings.Join(segments, "&")
}
