package scribe

import (
	"fmt"
	"strings"

	"github.com/wippyai/vcard"
	"github.com/wippyai/vcard/errors"
	"github.com/wippyai/vcard/textenc"
)

// Builtins returns fresh instances of the built-in scribes.
func Builtins() []Scribe {
	return []Scribe{
		StructuredName{},
		Address{},
		Member{},
		Agent{},
		Raw{},
		NewTextScribe(vcard.KindFormattedName, func(p vcard.Property) (string, bool) {
			fn, ok := p.(*vcard.FormattedName)
			if !ok {
				return "", false
			}
			return fn.Value, true
		}),
		NewTextScribe(vcard.KindLabel, func(p vcard.Property) (string, bool) {
			l, ok := p.(*vcard.Label)
			if !ok {
				return "", false
			}
			return l.Value, true
		}),
		NewTextScribe(vcard.KindNote, func(p vcard.Property) (string, bool) {
			n, ok := p.(*vcard.Note)
			if !ok {
				return "", false
			}
			return n.Value, true
		}),
		NewTextScribe(vcard.KindProductID, func(p vcard.Property) (string, bool) {
			id, ok := p.(*vcard.ProductID)
			if !ok {
				return "", false
			}
			return id.Value, true
		}),
		NewTextScribe(vcard.KindEntityKind, func(p vcard.Property) (string, bool) {
			k, ok := p.(*vcard.EntityKind)
			if !ok {
				return "", false
			}
			return k.Value, true
		}),
		NewTextScribe(vcard.KindMailer, func(p vcard.Property) (string, bool) {
			m, ok := p.(*vcard.Mailer)
			if !ok {
				return "", false
			}
			return m.Value, true
		}),
	}
}

// TextScribe writes a single free-text value under the kind's name.
type TextScribe struct {
	text func(vcard.Property) (string, bool)
	kind vcard.Kind
}

// NewTextScribe returns a scribe for kind whose value is extracted by text.
// text reports false when handed a property of the wrong type.
func NewTextScribe(kind vcard.Kind, text func(vcard.Property) (string, bool)) TextScribe {
	return TextScribe{kind: kind, text: text}
}

func (s TextScribe) Kind() vcard.Kind { return s.kind }

func (s TextScribe) Name(vcard.Property, vcard.Version) string { return string(s.kind) }

func (s TextScribe) Parameters(p vcard.Property, _ *Context) (*vcard.Parameters, error) {
	return cloneParams(p), nil
}

func (s TextScribe) Value(p vcard.Property, ctx *Context) (string, error) {
	text, ok := s.text(p)
	if !ok {
		return "", errors.TypeMismatch(string(s.kind), p)
	}
	return textenc.EscapeValue(text, ctx.Version, false), nil
}

// StructuredName writes N as family;given;additional;prefixes;suffixes.
type StructuredName struct{}

func (StructuredName) Kind() vcard.Kind { return vcard.KindStructuredName }

func (StructuredName) Name(vcard.Property, vcard.Version) string { return "N" }

func (StructuredName) Parameters(p vcard.Property, _ *Context) (*vcard.Parameters, error) {
	return cloneParams(p), nil
}

func (StructuredName) Value(p vcard.Property, ctx *Context) (string, error) {
	n, ok := p.(*vcard.StructuredName)
	if !ok {
		return "", errors.TypeMismatch("N", p)
	}
	v := ctx.Version
	return strings.Join([]string{
		textenc.EscapeValue(n.Family, v, true),
		textenc.EscapeValue(n.Given, v, true),
		joinList(n.Additional, v),
		joinList(n.Prefixes, v),
		joinList(n.Suffixes, v),
	}, ";"), nil
}

// joinList writes a multi-valued component as comma-separated items.
func joinList(items []string, v vcard.Version) string {
	return textenc.JoinComponents(items, ",", v)
}

// Address writes ADR with its seven components. In 4.0 a free-form label
// becomes the LABEL parameter; earlier versions get a separate LABEL
// property from the writer.
type Address struct{}

func (Address) Kind() vcard.Kind { return vcard.KindAddress }

func (Address) Name(vcard.Property, vcard.Version) string { return "ADR" }

func (Address) Parameters(p vcard.Property, ctx *Context) (*vcard.Parameters, error) {
	adr, ok := p.(*vcard.Address)
	if !ok {
		return nil, errors.TypeMismatch("ADR", p)
	}
	if ctx.Version != vcard.V40 || adr.Label == "" {
		return cloneParams(p), nil
	}

	params := vcard.NewParameters(vcard.ParamLabel, adr.Label)
	own := p.Parameters().Clone()
	own.Remove(vcard.ParamLabel)
	params.Merge(&own)
	return &params, nil
}

func (Address) Value(p vcard.Property, ctx *Context) (string, error) {
	adr, ok := p.(*vcard.Address)
	if !ok {
		return "", errors.TypeMismatch("ADR", p)
	}
	return textenc.JoinComponents([]string{
		adr.POBox,
		adr.Extended,
		adr.Street,
		adr.Locality,
		adr.Region,
		adr.PostalCode,
		adr.Country,
	}, ";", ctx.Version), nil
}

// Member writes MEMBER. It is only valid in a record whose KIND is group;
// other records skip it.
type Member struct{}

func (Member) Kind() vcard.Kind { return vcard.KindMember }

func (Member) Name(vcard.Property, vcard.Version) string { return "MEMBER" }

func (Member) Parameters(p vcard.Property, ctx *Context) (*vcard.Parameters, error) {
	if ctx.Record == nil || !ctx.Record.EntityKind().IsGroup() {
		return nil, errors.Skipped("MEMBER", `requires KIND to be "group"`)
	}
	return cloneParams(p), nil
}

func (Member) Value(p vcard.Property, _ *Context) (string, error) {
	m, ok := p.(*vcard.Member)
	if !ok {
		return "", errors.TypeMismatch("MEMBER", p)
	}
	return m.URI, nil
}

// Agent writes AGENT, either as an embedded record or as a URL.
type Agent struct{}

func (Agent) Kind() vcard.Kind { return vcard.KindAgent }

func (Agent) Name(vcard.Property, vcard.Version) string { return "AGENT" }

func (Agent) Parameters(p vcard.Property, ctx *Context) (*vcard.Parameters, error) {
	a, ok := p.(*vcard.Agent)
	if !ok {
		return nil, errors.TypeMismatch("AGENT", p)
	}
	if a.Record == nil && a.URL == "" {
		return nil, errors.Skipped("AGENT", "neither an embedded record nor a URL is set")
	}

	params := cloneParams(p)
	if a.Record == nil {
		if ctx.Version == vcard.V21 {
			params.Set(vcard.ParamValue, "URL")
		} else {
			params.Set(vcard.ParamValue, "uri")
		}
	}
	return params, nil
}

func (Agent) Value(p vcard.Property, _ *Context) (string, error) {
	a, ok := p.(*vcard.Agent)
	if !ok {
		return "", errors.TypeMismatch("AGENT", p)
	}
	return a.URL, nil
}

func (Agent) Embedded(p vcard.Property) *vcard.Record {
	if a, ok := p.(*vcard.Agent); ok {
		return a.Record
	}
	return nil
}

// EmbedValue writes 2.1 records verbatim. Later versions carry the whole
// record as one escaped text value.
func (Agent) EmbedValue(nested string, v vcard.Version) (string, bool) {
	if v == vcard.V21 {
		return nested, true
	}
	return textenc.EscapeValue(nested, v, false), false
}

func (Agent) FoldNested(v vcard.Version) bool {
	return v == vcard.V21
}

// Raw is the catch-all scribe for vcard.Raw properties. The value is
// written as given apart from newline escaping.
type Raw struct{}

func (Raw) Kind() vcard.Kind { return vcard.KindRaw }

func (Raw) Name(p vcard.Property, _ vcard.Version) string {
	if r, ok := p.(*vcard.Raw); ok {
		return strings.ToUpper(r.Name)
	}
	return ""
}

func (Raw) Parameters(p vcard.Property, _ *Context) (*vcard.Parameters, error) {
	r, ok := p.(*vcard.Raw)
	if !ok {
		return nil, errors.TypeMismatch("raw", p)
	}
	if r.Name == "" {
		return nil, errors.Skipped("raw", "property name is empty")
	}
	if !textenc.ValidName(r.Name) {
		return nil, errors.Skipped("raw", fmt.Sprintf("invalid property name %q", r.Name))
	}
	return cloneParams(p), nil
}

func (Raw) Value(p vcard.Property, ctx *Context) (string, error) {
	r, ok := p.(*vcard.Raw)
	if !ok {
		return "", errors.TypeMismatch("raw", p)
	}
	return textenc.EscapeNewlines(r.Value, ctx.Version), nil
}

var (
	_ Scribe   = TextScribe{}
	_ Scribe   = StructuredName{}
	_ Scribe   = Address{}
	_ Scribe   = Member{}
	_ Scribe   = Agent{}
	_ Embedder = Agent{}
	_ Scribe   = Raw{}
)
