package querystate_test

import (
	"testing"

	"doctor-directory/internal/querystate"

	"github.com/stretchr/testify/assert"
)

func TestParseParams_KeepsOrderAndEncoding(t *testing.T) {
	raw := "utm_source=mail%20box&search=ali&z=1&a=%7E"
	p := querystate.ParseParams("?" + raw)

	assert.Equal(t, 4, p.Len())
	assert.Equal(t, raw, p.Encode())

	v, ok := p.Get("utm_source")
	assert.True(t, ok)
	assert.Equal(t, "mail box", v)
}

func TestParseParams_SkipsEmptySegments(t *testing.T) {
	p := querystate.ParseParams("a=1&&b=2&")
	assert.Equal(t, "a=1&b=2", p.Encode())
}

func TestParseParams_MalformedEscapeIsKept(t *testing.T) {
	p := querystate.ParseParams("search=100%")
	v, _ := p.Get("search")
	assert.Equal(t, "100%", v)
	assert.Equal(t, "search=100%", p.Encode())
}

func TestParams_SetReplacesFirstInPlace(t *testing.T) {
	p := querystate.ParseParams("x=1&sort=fees&y=2&sort=experience")
	p.Set("sort", "experience")
	assert.Equal(t, "x=1&sort=experience&y=2", p.Encode())
}

func TestParams_SetAppendsWhenAbsent(t *testing.T) {
	p := querystate.ParseParams("x=1")
	p.Set("search", "dr a")
	assert.Equal(t, "x=1&search=dr+a", p.Encode())
}

func TestParams_DeleteRemovesAll(t *testing.T) {
	p := querystate.ParseParams("specialty=ENT&x=1&specialty=Dentist")
	p.Delete("specialty")
	assert.Equal(t, "x=1", p.Encode())
	assert.False(t, p.Has("specialty"))
}

func TestParams_CloneIsIndependent(t *testing.T) {
	p := querystate.ParseParams("a=1")
	c := p.Clone()
	c.Append("b", "2")
	assert.Equal(t, "a=1", p.Encode())
	assert.Equal(t, "a=1&b=2", c.Encode())
}
