package vcard

import "strings"

// Well-known parameter names.
const (
	ParamType     = "TYPE"
	ParamLanguage = "LANGUAGE"
	ParamEncoding = "ENCODING"
	ParamCharset  = "CHARSET"
	ParamLabel    = "LABEL"
	ParamValue    = "VALUE"
	ParamPref     = "PREF"
)

// Parameters is an ordered multimap of parameter names to values.
// Names compare case-insensitively; the spelling of the first insertion
// is kept for output. The zero value is empty and ready to use.
type Parameters struct {
	entries []paramEntry
}

type paramEntry struct {
	name   string
	values []string
}

// NewParameters builds a parameter set from name/value pairs.
func NewParameters(pairs ...string) Parameters {
	var p Parameters
	for i := 0; i+1 < len(pairs); i += 2 {
		p.Add(pairs[i], pairs[i+1])
	}
	return p
}

func (p *Parameters) index(name string) int {
	if p == nil {
		return -1
	}
	for i := range p.entries {
		if strings.EqualFold(p.entries[i].name, name) {
			return i
		}
	}
	return -1
}

// Add appends value to the parameter name, creating it if absent.
func (p *Parameters) Add(name, value string) {
	if i := p.index(name); i >= 0 {
		p.entries[i].values = append(p.entries[i].values, value)
		return
	}
	p.entries = append(p.entries, paramEntry{name: name, values: []string{value}})
}

// Set replaces all values of name. Calling Set with no values removes it.
// An existing parameter keeps its position.
func (p *Parameters) Set(name string, values ...string) {
	if len(values) == 0 {
		p.Remove(name)
		return
	}
	copied := append([]string(nil), values...)
	if i := p.index(name); i >= 0 {
		p.entries[i].values = copied
		return
	}
	p.entries = append(p.entries, paramEntry{name: name, values: copied})
}

// Remove deletes name and all of its values.
func (p *Parameters) Remove(name string) {
	if i := p.index(name); i >= 0 {
		p.entries = append(p.entries[:i], p.entries[i+1:]...)
	}
}

// Get returns the first value of name, or "" if absent.
func (p *Parameters) Get(name string) string {
	if i := p.index(name); i >= 0 && len(p.entries[i].values) > 0 {
		return p.entries[i].values[0]
	}
	return ""
}

// Values returns a copy of all values of name.
func (p *Parameters) Values(name string) []string {
	if i := p.index(name); i >= 0 {
		return append([]string(nil), p.entries[i].values...)
	}
	return nil
}

// Has reports whether name is present.
func (p *Parameters) Has(name string) bool {
	return p.index(name) >= 0
}

// Len returns the number of distinct parameter names.
func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Names returns parameter names in insertion order.
func (p *Parameters) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.name
	}
	return names
}

// Each calls fn for every parameter in insertion order.
func (p *Parameters) Each(fn func(name string, values []string)) {
	if p == nil {
		return
	}
	for _, e := range p.entries {
		fn(e.name, e.values)
	}
}

// Clone returns a deep copy.
func (p *Parameters) Clone() Parameters {
	var out Parameters
	if p == nil {
		return out
	}
	out.entries = make([]paramEntry, len(p.entries))
	for i, e := range p.entries {
		out.entries[i] = paramEntry{name: e.name, values: append([]string(nil), e.values...)}
	}
	return out
}

// Merge appends every value of other after the values already present.
func (p *Parameters) Merge(other *Parameters) {
	other.Each(func(name string, values []string) {
		for _, v := range values {
			p.Add(name, v)
		}
	})
}
